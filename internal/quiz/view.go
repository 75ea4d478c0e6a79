package quiz

import (
	"slices"

	"github.com/quizdeck/quizdeck/internal/catalog"
)

// View is a read-only snapshot of the machine for rendering.
type View struct {
	State State
	Mode  Mode

	// Course is the active course, nil during course selection.
	Course *catalog.Info

	// Courses lists every course; used by course selection.
	Courses []catalog.Info

	// CanGoBack is true when setup can return to course selection.
	CanGoBack bool

	// HasDescriptive is true when the active course has descriptive questions.
	HasDescriptive bool

	// Question is the current multiple-choice question, if any.
	Question *catalog.Question

	// Descriptive is the current descriptive question, if any.
	Descriptive *catalog.DescriptiveQuestion

	Options  []string
	Selected string
	Revealed bool

	// Correct is meaningful only while Revealed in multiple-choice mode.
	Correct bool

	Score int
	Index int
	Total int

	// Last is true on the final question of the run.
	Last bool

	MistakeCount int
	Review       bool

	// FeedbackEpoch identifies the current feedback period for timers.
	FeedbackEpoch uint64

	// Result is set in StateResults.
	Result *Result
}

// View returns the current render state.
func (m *Machine) View() View {
	v := View{
		State:         m.state,
		Courses:       m.courses.Courses(),
		MistakeCount:  m.mistakeSet.Len(),
		FeedbackEpoch: m.epoch,
	}
	v.CanGoBack = len(v.Courses) > 1

	if m.course != nil {
		info := m.course.Info
		v.Course = &info
		v.HasDescriptive = len(m.course.Descriptive) > 0
	}

	if m.result != nil {
		r := *m.result
		v.Result = &r
		v.Score = r.Score
		v.Total = r.Total
		v.Review = r.Review
	}

	if s := m.sess; s != nil && m.state == StateQuiz {
		v.Mode = s.Mode
		v.Options = slices.Clone(s.Options)
		v.Selected = s.Selected
		v.Revealed = s.Revealed
		v.Score = s.Score
		v.Index = s.Index
		v.Total = s.Total()
		v.Last = s.last()
		v.Review = s.Review
		if q := s.current(); q != nil {
			qc := *q
			v.Question = &qc
			v.Correct = s.Revealed && s.Selected == q.Answer
		}
		if d := s.currentDescriptive(); d != nil {
			dc := *d
			v.Descriptive = &dc
		}
	}
	return v
}

// Progress returns the fraction of the run reached, counting the current
// question, in [0, 1].
func (v View) Progress() float64 {
	if v.State != StateQuiz || v.Total == 0 {
		return 0
	}
	return float64(v.Index+1) / float64(v.Total)
}

// NextLabel is the label of the advance action for the current question.
func (v View) NextLabel() string {
	switch {
	case !v.Last:
		return "Next question"
	case v.Mode == ModeDescriptive:
		return "Back to start"
	}
	return "See results"
}
