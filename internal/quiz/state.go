// Package quiz implements the quiz session state machine.
//
// A Machine owns the active course, the running session, and the transitions
// between course selection, setup, quiz, and results. Presentation code calls
// the intent methods and renders the returned View.
package quiz

import (
	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/store"
)

// State is the top-level machine state.
type State int

const (
	StateCourseSelection State = iota // Choosing a catalog
	StateSetup                        // Course fixed, choosing how to play
	StateQuiz                         // Answering questions
	StateResults                      // Score summary after a multiple-choice run
)

func (s State) String() string {
	switch s {
	case StateCourseSelection:
		return "COURSE_SELECTION"
	case StateSetup:
		return "SETUP"
	case StateQuiz:
		return "QUIZ"
	case StateResults:
		return "RESULTS"
	}
	return "UNKNOWN"
}

// Mode selects which question list a quiz plays.
type Mode int

const (
	ModeMultipleChoice Mode = iota
	ModeDescriptive
)

func (m Mode) String() string {
	if m == ModeDescriptive {
		return "descriptive"
	}
	return "multiple_choice"
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "multiple_choice":
		return ModeMultipleChoice, true
	case "descriptive":
		return ModeDescriptive, true
	}
	return 0, false
}

// Session is one quiz run. It is created on start and discarded when the
// machine returns to setup or a new quiz begins.
type Session struct {
	ID       string
	Mode     Mode
	CourseID string

	// Questions is the shuffled multiple-choice snapshot (ModeMultipleChoice).
	Questions []catalog.Question

	// Descriptive is the shuffled descriptive snapshot (ModeDescriptive).
	Descriptive []catalog.DescriptiveQuestion

	// Index is the 0-based position of the current question.
	Index int

	// Score counts correct answers so far.
	Score int

	// Selected is the answer picked for the current question ("" before feedback).
	Selected string

	// Revealed is true while answer feedback is showing.
	Revealed bool

	// Review is true when the run replays persisted mistakes.
	Review bool

	// Mistakes holds ids answered incorrectly during this run.
	Mistakes store.IDSet

	// Options are the choices shown for the current multiple-choice question.
	Options []string
}

// Total returns the number of questions in the run.
func (s *Session) Total() int {
	if s.Mode == ModeDescriptive {
		return len(s.Descriptive)
	}
	return len(s.Questions)
}

// last reports whether the current question is the final one.
func (s *Session) last() bool {
	return s.Index >= s.Total()-1
}

func (s *Session) current() *catalog.Question {
	if s.Mode != ModeMultipleChoice || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

func (s *Session) currentDescriptive() *catalog.DescriptiveQuestion {
	if s.Mode != ModeDescriptive || s.Index >= len(s.Descriptive) {
		return nil
	}
	return &s.Descriptive[s.Index]
}
