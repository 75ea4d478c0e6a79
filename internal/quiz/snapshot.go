package quiz

import (
	"slices"

	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/store"
)

func snapshotOf(s *Session) *store.SessionSnapshot {
	return &store.SessionSnapshot{
		SessionID:            s.ID,
		GameState:            StateQuiz.String(),
		CourseID:             s.CourseID,
		Mode:                 s.Mode.String(),
		Questions:            slices.Clone(s.Questions),
		Descriptive:          slices.Clone(s.Descriptive),
		CurrentQuestionIndex: s.Index,
		Score:                s.Score,
		Options:              slices.Clone(s.Options),
		SelectedAnswer:       s.Selected,
		ShowFeedback:         s.Revealed,
		IsReviewMode:         s.Review,
		SessionMistakes:      s.Mistakes.Sorted(),
	}
}

// sessionFromSnapshot rebuilds a session. It fails when the snapshot's mode
// is unknown or does not match the question lists it carries.
func sessionFromSnapshot(snap *store.SessionSnapshot) (*Session, bool) {
	if snap.GameState != StateQuiz.String() {
		return nil, false
	}
	mode, ok := ParseMode(snap.Mode)
	if !ok {
		return nil, false
	}

	s := &Session{
		ID:       snap.SessionID,
		Mode:     mode,
		CourseID: snap.CourseID,
		Index:    snap.CurrentQuestionIndex,
		Score:    snap.Score,
		Options:  snap.Options,
		Selected: snap.SelectedAnswer,
		Revealed: snap.ShowFeedback,
		Review:   snap.IsReviewMode,
		Mistakes: store.NewIDSet(snap.SessionMistakes...),
	}
	if mode == ModeDescriptive {
		s.Descriptive = snap.Descriptive
		s.Selected = ""
	} else {
		s.Questions = snap.Questions
	}

	if s.Index < 0 || s.Index >= s.Total() || s.Score > s.Total() {
		return nil, false
	}
	return s, true
}

// rebind replaces the snapshot's copies of the questions with the catalog's
// current ones. It fails when any question is no longer in c, so a stale
// session can never record an id the catalog does not own.
func rebind(s *Session, c *catalog.Catalog) bool {
	mc := make(map[string]catalog.Question, len(c.Questions))
	for _, q := range c.Questions {
		mc[q.ID] = q
	}
	for i, q := range s.Questions {
		cur, ok := mc[q.ID]
		if !ok {
			return false
		}
		s.Questions[i] = cur
	}

	desc := make(map[string]catalog.DescriptiveQuestion, len(c.Descriptive))
	for _, d := range c.Descriptive {
		desc[d.ID] = d
	}
	for i, d := range s.Descriptive {
		cur, ok := desc[d.ID]
		if !ok {
			return false
		}
		s.Descriptive[i] = cur
	}

	mistakes := store.IDSet{}
	for id := range s.Mistakes {
		if _, ok := mc[id]; ok {
			mistakes.Add(id)
		}
	}
	s.Mistakes = mistakes
	return true
}
