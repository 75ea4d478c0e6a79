package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/quizdeck/quizdeck/internal/catalog"
)

// SnapshotVersion is bumped when SessionSnapshot changes shape.
const SnapshotVersion = 1

// SessionSnapshot captures an in-progress quiz so a relaunch can resume it.
type SessionSnapshot struct {
	Version              int                           `json:"version"`
	SessionID            string                        `json:"sessionId"`
	GameState            string                        `json:"gameState"`
	CourseID             string                        `json:"courseId"`
	Mode                 string                        `json:"mode"`
	Questions            []catalog.Question            `json:"questions,omitempty"`
	Descriptive          []catalog.DescriptiveQuestion `json:"descriptiveQuestions,omitempty"`
	CurrentQuestionIndex int                           `json:"currentQuestionIndex"`
	Score                int                           `json:"score"`
	Options              []string                      `json:"options,omitempty"`
	SelectedAnswer       string                        `json:"selectedAnswer,omitempty"`
	ShowFeedback         bool                          `json:"showFeedback"`
	IsReviewMode         bool                          `json:"isReviewMode"`
	SessionMistakes      []string                      `json:"sessionMistakes,omitempty"`
	SavedAt              time.Time                     `json:"savedAt"`
}

// Total returns the number of questions in the snapshot.
func (s *SessionSnapshot) Total() int {
	return len(s.Questions) + len(s.Descriptive)
}

// SnapshotRepo manages the single resumable session snapshot.
type SnapshotRepo interface {
	// Save replaces the stored snapshot.
	Save(ctx context.Context, snap *SessionSnapshot) error

	// Latest returns the stored snapshot, or nil if none exists or it is corrupt.
	Latest(ctx context.Context) (*SessionSnapshot, error)

	// Clear removes the stored snapshot.
	Clear(ctx context.Context) error
}

// snapshotRepo implements SnapshotRepo over a KV.
type snapshotRepo struct {
	kv   KV
	keys Keys
	log  zerolog.Logger
}

// NewSnapshotRepo returns a SnapshotRepo backed by kv.
func NewSnapshotRepo(kv KV, keys Keys, log zerolog.Logger) SnapshotRepo {
	return &snapshotRepo{kv: kv, keys: keys, log: log}
}

func (r *snapshotRepo) Save(ctx context.Context, snap *SessionSnapshot) error {
	if snap.Version == 0 {
		snap.Version = SnapshotVersion
	}
	if snap.SavedAt.IsZero() {
		snap.SavedAt = time.Now().UTC()
	}
	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := r.kv.Set(ctx, r.keys.Session(), string(b)); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*SessionSnapshot, error) {
	raw, err := r.kv.Get(ctx, r.keys.Session())
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap SessionSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil || !snap.valid() {
		r.log.Warn().Err(err).Msg("discarding corrupt session snapshot")
		if delErr := r.Clear(ctx); delErr != nil {
			return nil, delErr
		}
		return nil, nil
	}
	return &snap, nil
}

func (r *snapshotRepo) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, r.keys.Session()); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}

// valid reports whether the snapshot can be resumed.
func (s *SessionSnapshot) valid() bool {
	if s.Version != SnapshotVersion || s.CourseID == "" {
		return false
	}
	total := s.Total()
	return total > 0 &&
		s.CurrentQuestionIndex >= 0 && s.CurrentQuestionIndex < total &&
		s.Score >= 0 && s.Score <= total
}
