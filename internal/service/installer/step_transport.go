package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// TransportStep selects which transports to run besides the HTTP API
type TransportStep struct {
	choices []string
	cursor  int
}

func NewTransportStep() Step {
	return &TransportStep{
		choices: []string{"HTTP API only", "HTTP API + Telegram bot"},
		cursor:  0,
	}
}

func (s *TransportStep) Init() tea.Cmd {
	return nil
}

func (s *TransportStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			state.Settings.EnableTelegram = s.cursor == 1
			return nil, nil
		}
	}
	return s, nil
}

func (s *TransportStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Select your transports:\n\n")
	for i, choice := range s.choices {
		cursor := " "
		if s.cursor == i {
			cursor = "❯"
			b.WriteString(selStyle.Render(fmt.Sprintf("%s %s", cursor, choice)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("%s %s", cursor, choice)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
