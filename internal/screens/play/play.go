package play

import (
	tea "charm.land/bubbletea/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
)

// draftWidth caps the descriptive draft answer length.
const draftWidth = 200

// PlayScreen renders the current question of a running quiz.
type PlayScreen struct {
	view quiz.View

	// questionID identifies the question the widgets were built for.
	questionID string

	choice components.MultiChoice
	draft  components.TextInput

	confirmQuit bool
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.Syncer = (*PlayScreen)(nil)

// New creates a PlayScreen.
func New(v quiz.View) *PlayScreen {
	s := &PlayScreen{}
	s.Sync(v)
	return s
}

// Sync updates the screen for v, rebuilding the widgets when the question
// changed.
func (s *PlayScreen) Sync(v quiz.View) {
	s.view = v

	id := currentID(v)
	if id != s.questionID {
		s.questionID = id
		s.confirmQuit = false
		s.choice = components.NewMultiChoice(v.Options, func(opt string) tea.Cmd {
			return screen.Send(screen.AnswerMsg{Answer: opt})
		})
		s.draft = components.NewTextInput("Type your answer, then press Enter to compare", draftWidth)
	}

	if v.Revealed {
		if v.Question != nil && !s.choice.Revealed() {
			s.choice.Reveal(v.Question.Answer, v.Selected)
		}
		s.draft.Blur()
	}
}

func currentID(v quiz.View) string {
	switch {
	case v.Question != nil:
		return v.Question.ID
	case v.Descriptive != nil:
		return "d:" + v.Descriptive.ID
	}
	return ""
}

func (s *PlayScreen) Init() tea.Cmd {
	if s.view.Mode == quiz.ModeDescriptive {
		return s.draft.Init()
	}
	return nil
}

func (s *PlayScreen) Title() string {
	if s.view.Review {
		return "Review"
	}
	if s.view.Mode == quiz.ModeDescriptive {
		return "Descriptive"
	}
	return "Quiz"
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "y", Description: "Leave quiz"},
			{Key: "n", Description: "Keep going"},
		}
	case s.view.Revealed:
		return []layout.KeyHint{
			{Key: "Enter", Description: s.view.NextLabel()},
			{Key: "Esc", Description: "Close"},
		}
	case s.view.Mode == quiz.ModeDescriptive:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Show answer"},
			{Key: "Tab", Description: "Skip"},
			{Key: "Esc", Description: "Close"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Close"},
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.view.Mode == quiz.ModeDescriptive && !s.view.Revealed {
			var cmd tea.Cmd
			s.draft, cmd = s.draft.Update(msg)
			return s, cmd
		}
		return s, nil
	}
	key := kmsg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s, screen.Send(screen.RestartMsg{})
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if key == "esc" {
		s.confirmQuit = true
		return s, nil
	}

	if s.view.Revealed {
		switch key {
		case "enter", "space", "n":
			return s, screen.Send(screen.NextMsg{})
		}
		return s, nil
	}

	if s.view.Mode == quiz.ModeDescriptive {
		switch key {
		case "enter":
			return s, screen.Send(screen.RevealMsg{})
		case "tab":
			return s, screen.Send(screen.NextMsg{})
		}
		var cmd tea.Cmd
		s.draft, cmd = s.draft.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}
