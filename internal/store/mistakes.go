package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// MistakeRepo persists, per course, the ids of questions answered incorrectly.
type MistakeRepo interface {
	// Load returns the course's mistake set. Absent or corrupt entries yield
	// an empty set; corrupt entries are purged.
	Load(ctx context.Context, courseID string) (IDSet, error)

	// Save replaces the course's mistake set.
	Save(ctx context.Context, courseID string, ids IDSet) error

	// Add records id as a mistake and returns the updated set.
	Add(ctx context.Context, courseID, id string) (IDSet, error)

	// Remove drops id from the mistakes and returns the updated set.
	Remove(ctx context.Context, courseID, id string) (IDSet, error)
}

// MistakeStore implements MistakeRepo over a KV. Each value is a JSON array
// of question ids.
type MistakeStore struct {
	kv   KV
	keys Keys
	log  zerolog.Logger
}

var _ MistakeRepo = (*MistakeStore)(nil)

// NewMistakeStore returns a MistakeStore.
func NewMistakeStore(kv KV, keys Keys, log zerolog.Logger) *MistakeStore {
	return &MistakeStore{kv: kv, keys: keys, log: log}
}

func (m *MistakeStore) Load(ctx context.Context, courseID string) (IDSet, error) {
	key := m.keys.Mistakes(courseID)
	raw, err := m.kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return IDSet{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load mistakes: %w", err)
	}

	ids, err := decodeIDs(raw)
	if err != nil {
		m.log.Warn().
			Err(err).
			Str("course", courseID).
			Msg("discarding corrupt mistake set")
		if delErr := m.kv.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("purge corrupt mistakes: %w", delErr)
		}
		return IDSet{}, nil
	}
	return NewIDSet(ids...), nil
}

func (m *MistakeStore) Save(ctx context.Context, courseID string, ids IDSet) error {
	sorted := ids.Sorted()
	if sorted == nil {
		sorted = []string{}
	}
	b, err := json.Marshal(sorted)
	if err != nil {
		return fmt.Errorf("marshal mistakes: %w", err)
	}
	if err := m.kv.Set(ctx, m.keys.Mistakes(courseID), string(b)); err != nil {
		return fmt.Errorf("save mistakes: %w", err)
	}
	return nil
}

func (m *MistakeStore) Add(ctx context.Context, courseID, id string) (IDSet, error) {
	ids, err := m.Load(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if ids.Has(id) {
		return ids, nil
	}
	ids.Add(id)
	if err := m.Save(ctx, courseID, ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (m *MistakeStore) Remove(ctx context.Context, courseID, id string) (IDSet, error) {
	ids, err := m.Load(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !ids.Has(id) {
		return ids, nil
	}
	ids.Remove(id)
	if err := m.Save(ctx, courseID, ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Clear deletes the course's mistake set.
func (m *MistakeStore) Clear(ctx context.Context, courseID string) error {
	if err := m.kv.Delete(ctx, m.keys.Mistakes(courseID)); err != nil {
		return fmt.Errorf("clear mistakes: %w", err)
	}
	return nil
}

// Courses lists the course ids that have a stored mistake entry.
func (m *MistakeStore) Courses(ctx context.Context) ([]string, error) {
	keys, err := m.kv.Keys(ctx, m.keys.MistakePrefix())
	if err != nil {
		return nil, err
	}
	var courses []string
	for _, k := range keys {
		if c, ok := m.keys.CourseFromMistakeKey(k); ok {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

// decodeIDs parses a JSON array of strings. Any other shape is an error.
func decodeIDs(raw string) ([]string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode mistake set: %w", err)
	}
	ids := make([]string, 0, len(items))
	for i, item := range items {
		var id string
		if err := json.Unmarshal(item, &id); err != nil {
			return nil, fmt.Errorf("element %d is not a string", i)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
