package results

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// ResultsScreen displays the grade of a finished multiple-choice quiz.
type ResultsScreen struct {
	view quiz.View
	menu components.Menu
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.Syncer = (*ResultsScreen)(nil)

// New creates a ResultsScreen.
func New(v quiz.View) *ResultsScreen {
	s := &ResultsScreen{}
	s.Sync(v)
	return s
}

// Sync rebuilds the actions for v.
func (s *ResultsScreen) Sync(v quiz.View) {
	s.view = v

	items := []components.MenuItem{{
		Label:  "Back to start",
		Action: func() tea.Cmd { return screen.Send(screen.RestartMsg{}) },
	}}
	if v.MistakeCount > 0 {
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("Review mistakes (%d)", v.MistakeCount),
			Action: func() tea.Cmd { return screen.Send(screen.ReviewMistakesMsg{}) },
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Play again",
		Action: func() tea.Cmd { return screen.Send(screen.StartQuizMsg{Mode: quiz.ModeMultipleChoice}) },
	})
	s.menu = components.NewMenu(items).WithSelected(s.menu.Selected)
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back to start"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, screen.Send(screen.RestartMsg{})
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	r := s.view.Result
	if r == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	heading := "Quiz complete!"
	if r.Review {
		heading = "Review complete!"
	}
	b.WriteString(theme.Title.Width(width).Render(heading))
	b.WriteString("\n")
	if r.Passed() {
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("★ Passed ★"))
	}
	b.WriteString("\n\n")

	gradeStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(bandColor(r.Band))
	b.WriteString(gradeStyle.Render(fmt.Sprintf("%.1f / %d", r.Grade, quiz.GradeScale)))
	b.WriteString("\n")
	b.WriteString(gradeStyle.UnsetBold().Render(r.Band.String()))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Correct: %d        Incorrect: %d        Questions: %d",
		r.Score, r.Incorrect, r.Total)
	b.WriteString(theme.Subtitle.Width(width).Render(stats))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", layout.ContentWidth(width)))
	b.WriteString(layout.Centered(divider, width))
	b.WriteString("\n\n")

	menu := lipgloss.NewStyle().Width(layout.ContentWidth(width)).Render(s.menu.View())
	b.WriteString(layout.Centered(menu, width))
	return b.String()
}

func bandColor(b quiz.Band) color.Color {
	switch b {
	case quiz.BandExcellent:
		return theme.Success
	case quiz.BandGood:
		return theme.Secondary
	case quiz.BandFair:
		return theme.Warning
	}
	return theme.Error
}
