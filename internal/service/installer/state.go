package installer

// Settings collects everything the wizard asks for. The env tags line
// up with the config package so the saved .env file round-trips.
type Settings struct {
	OpenAIKey      string `env:"OPENAI_API_KEY"`
	AnthropicKey   string `env:"ANTHROPIC_API_KEY"`
	EnableTelegram bool   `env:"ENABLE_TELEGRAM"`
	TelegramToken  string `env:"TELEGRAM_TOKEN"`
	TelegramOwner  int64  `env:"TELEGRAM_OWNER_ID"`
}

type InstallState struct {
	Settings Settings
}

func NewInstallState() *InstallState {
	return &InstallState{}
}
