package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/studykb/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"STUDYKB_RUNTIME_PATH" envDefault:".studykb"`

	// Transport flags
	EnableHTTP     bool `env:"ENABLE_HTTP" envDefault:"true"`
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

// GetRuntimePath resolves relative paths against the home directory,
// matching GetRuntimePath in runtime.go.
func (c AppConfig) GetRuntimePath() string {
	if filepath.IsAbs(c.RuntimePath) {
		return c.RuntimePath
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, c.RuntimePath)
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.GetRuntimePath(), "studykb.db")
}

func (c AppConfig) IsHTTPSelected() bool {
	return c.EnableHTTP
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}
