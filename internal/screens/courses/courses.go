package courses

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// CoursesScreen lists the available courses.
type CoursesScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*CoursesScreen)(nil)
var _ screen.KeyHintProvider = (*CoursesScreen)(nil)

// New creates a CoursesScreen for v.Courses.
func New(v quiz.View) *CoursesScreen {
	return &CoursesScreen{menu: components.NewMenu(menuItems(v.Courses))}
}

func menuItems(courses []catalog.Info) []components.MenuItem {
	items := make([]components.MenuItem, 0, len(courses))
	for _, c := range courses {
		id := c.ID
		items = append(items, components.MenuItem{
			Label:  c.Title,
			Detail: c.Instructor,
			Action: func() tea.Cmd { return screen.Send(screen.SelectCourseMsg{ID: id}) },
		})
	}
	return items
}

func (s *CoursesScreen) Init() tea.Cmd {
	return nil
}

func (s *CoursesScreen) Title() string {
	return "Courses"
}

func (s *CoursesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open course"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *CoursesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *CoursesScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Choose a course"))
	b.WriteString("\n\n")

	if len(s.menu.Items) == 0 {
		b.WriteString(theme.Subtitle.Width(width).Render("No courses available."))
		return b.String()
	}

	menu := lipgloss.NewStyle().Width(layout.ContentWidth(width)).Render(s.menu.View())
	b.WriteString(layout.Centered(menu, width))
	return b.String()
}
