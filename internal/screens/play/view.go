package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	v := s.view
	inner := layout.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n")

	label := fmt.Sprintf("%d/%d", v.Index+1, v.Total)
	if v.Review {
		label = "Review " + label
	}
	bar := components.NewProgressBar(label, v.Progress(), false, inner).View()
	b.WriteString(layout.Centered(bar, width))
	b.WriteString("\n\n")

	if s.confirmQuit {
		b.WriteString(theme.Notice.Width(width).Align(lipgloss.Center).
			Render("Leave this quiz and return to the start? (y/n)"))
		b.WriteString("\n\n")
	}

	prompt := lipgloss.NewStyle().
		Width(inner).
		Foreground(theme.Text).
		Bold(true)

	switch {
	case v.Question != nil:
		b.WriteString(layout.Centered(prompt.Render(v.Question.Prompt), width))
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(lipgloss.NewStyle().Width(inner).Render(s.choice.View()), width))
		if v.Revealed {
			b.WriteString("\n")
			b.WriteString(s.renderFeedback(width, inner))
		}

	case v.Descriptive != nil:
		b.WriteString(layout.Centered(prompt.Render(v.Descriptive.Prompt), width))
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(lipgloss.NewStyle().Width(inner).Render(s.draft.View()), width))
		if v.Revealed {
			b.WriteString("\n\n")
			b.WriteString(s.renderReference(width, inner))
		}
	}

	return b.String()
}

// renderFeedback shows the verdict, the hint if any, and the next action.
func (s *PlayScreen) renderFeedback(width, inner int) string {
	v := s.view

	var b strings.Builder
	if v.Correct {
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Width(width).Render("Correct answer: " + v.Question.Answer))
	}
	b.WriteString("\n")

	if hint := v.Question.Hint; hint != "" {
		b.WriteString("\n")
		b.WriteString(layout.Centered(theme.Hint.Width(inner).Render("Hint: "+hint), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(layout.Centered(components.NewButton(v.NextLabel(), true, nil).View(), width))
	return b.String()
}

// renderReference shows the reference answer of a descriptive question.
func (s *PlayScreen) renderReference(width, inner int) string {
	v := s.view

	card := theme.Card.Width(inner).Render(
		theme.Muted.Render("Reference answer") + "\n\n" + theme.Body.Render(v.Descriptive.Answer))

	return layout.Centered(card, width) + "\n\n" +
		layout.Centered(components.NewButton(v.NextLabel(), true, nil).View(), width)
}
