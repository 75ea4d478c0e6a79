package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

// Intent messages are emitted by screens and applied to the quiz machine by
// the app model.

type SelectCourseMsg struct{ ID string }

type BackMsg struct{}

type StartQuizMsg struct{ Mode quiz.Mode }

type StartReviewMsg struct{}

type AnswerMsg struct{ Answer string }

type RevealMsg struct{}

type NextMsg struct{}

type RestartMsg struct{}

type ReviewMistakesMsg struct{}

// Send wraps msg in a command.
func Send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
