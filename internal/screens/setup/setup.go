package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// SetupScreen shows the course card and the ways to start a quiz.
type SetupScreen struct {
	view quiz.View
	menu components.Menu
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)
var _ screen.Syncer = (*SetupScreen)(nil)

// New creates a SetupScreen.
func New(v quiz.View) *SetupScreen {
	s := &SetupScreen{}
	s.Sync(v)
	return s
}

// Sync rebuilds the menu, keeping the cursor where it was.
func (s *SetupScreen) Sync(v quiz.View) {
	selected := s.menu.Selected
	s.view = v
	s.menu = components.NewMenu(menuItems(v)).WithSelected(selected)
}

func menuItems(v quiz.View) []components.MenuItem {
	items := []components.MenuItem{{
		Label:  "Start quiz",
		Detail: "multiple choice",
		Action: func() tea.Cmd { return screen.Send(screen.StartQuizMsg{Mode: quiz.ModeMultipleChoice}) },
	}}
	if v.HasDescriptive {
		items = append(items, components.MenuItem{
			Label:  "Descriptive questions",
			Detail: "self-graded",
			Action: func() tea.Cmd { return screen.Send(screen.StartQuizMsg{Mode: quiz.ModeDescriptive}) },
		})
	}
	if v.MistakeCount > 0 {
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("Review mistakes (%d)", v.MistakeCount),
			Action: func() tea.Cmd { return screen.Send(screen.StartReviewMsg{}) },
		})
	}
	if v.CanGoBack {
		items = append(items, components.MenuItem{
			Label:  "Choose another course",
			Action: func() tea.Cmd { return screen.Send(screen.BackMsg{}) },
		})
	}
	return items
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	if s.view.Course == nil {
		return "Setup"
	}
	return s.view.Course.Title
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if s.view.CanGoBack {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Courses"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		if s.view.CanGoBack {
			return s, screen.Send(screen.BackMsg{})
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	if c := s.view.Course; c != nil {
		b.WriteString(layout.Centered(s.renderInfoCard(layout.ContentWidth(width)), width))
		b.WriteString("\n\n")
	}

	if s.view.MistakeCount > 0 {
		b.WriteString(theme.Subtitle.Width(width).Render(
			fmt.Sprintf("%d question(s) waiting for review", s.view.MistakeCount)))
	} else {
		b.WriteString(theme.Subtitle.Width(width).Render("No mistakes recorded yet"))
	}
	b.WriteString("\n\n")

	menu := lipgloss.NewStyle().Width(layout.ContentWidth(width)).Render(s.menu.View())
	b.WriteString(layout.Centered(menu, width))
	return b.String()
}

// renderInfoCard shows the course title, instructor, and exam schedule.
func (s *SetupScreen) renderInfoCard(width int) string {
	c := s.view.Course

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(c.Title))
	if c.Instructor != "" {
		lines = append(lines, infoLine("Instructor", c.Instructor))
	}
	if c.ExamDate != "" {
		lines = append(lines, infoLine("Exam date", c.ExamDate))
	}
	if c.ExamTime != "" {
		lines = append(lines, infoLine("Exam time", c.ExamTime))
	}

	return theme.Card.Width(width).Render(strings.Join(lines, "\n"))
}

func infoLine(label, value string) string {
	return theme.Muted.Render(label+": ") + theme.Body.Render(value)
}
