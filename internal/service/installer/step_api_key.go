package installer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	providerOpenAI    = "openai"
	providerAnthropic = "anthropic"
)

// APIKeyStep collects one provider API key. Both keys are optional;
// with no keys the app falls back to template answers.
type APIKeyStep struct {
	input    textinput.Model
	provider string
	title    string
}

func NewAPIKeyStep(provider string) Step {
	s := &APIKeyStep{provider: provider}

	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	switch provider {
	case providerOpenAI:
		s.title = "OpenAI API Key"
		ti.Placeholder = "sk-..."
	case providerAnthropic:
		s.title = "Anthropic API Key"
		ti.Placeholder = "sk-ant-..."
	}

	s.input = ti
	return s
}

func (s *APIKeyStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *APIKeyStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			switch s.provider {
			case providerOpenAI:
				state.Settings.OpenAIKey = s.input.Value()
			case providerAnthropic:
				state.Settings.AnthropicKey = s.input.Value()
			}
			return nil, nil
		}
	}
	return s, cmd
}

func (s *APIKeyStep) View(state *InstallState) string {
	return fmt.Sprintf("Enter your %s (optional - press Enter to skip):\n\n%s\n\n(press enter to confirm)\n",
		s.title, s.input.View())
}
