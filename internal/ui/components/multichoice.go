package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. Choosing an option calls
// OnChoose; feedback colors appear once Reveal is called.
type MultiChoice struct {
	Options  []string
	Cursor   int
	OnChoose func(option string) tea.Cmd

	revealed bool
	answer   string
	chosen   string
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(options []string, onChoose func(string) tea.Cmd) MultiChoice {
	return MultiChoice{
		Options:  options,
		OnChoose: onChoose,
	}
}

// Reveal switches to feedback: answer is highlighted as correct and chosen,
// if different, as incorrect.
func (m *MultiChoice) Reveal(answer, chosen string) {
	m.revealed = true
	m.answer = answer
	m.chosen = chosen
}

// Revealed reports whether feedback is showing.
func (m MultiChoice) Revealed() bool {
	return m.revealed
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.revealed || len(m.Options) == 0 {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter":
		return m, m.choose(m.Cursor)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(key[0] - '1')
		if i < len(m.Options) {
			m.Cursor = i
			return m, m.choose(i)
		}
	}

	return m, nil
}

func (m MultiChoice) choose(i int) tea.Cmd {
	if m.OnChoose == nil {
		return nil
	}
	return m.OnChoose(m.Options[i])
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch {
		case m.revealed && opt == m.answer:
			style = theme.Correct
			line += "  ✓"
		case m.revealed && opt == m.chosen:
			style = theme.Incorrect
			line += "  ✗"
		case m.revealed:
			style = theme.Muted
		case i == m.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
