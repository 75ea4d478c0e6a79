package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizdeck/quizdeck/internal/catalog"
)

func testSnapshot() *SessionSnapshot {
	return &SessionSnapshot{
		SessionID: "abc",
		GameState: "QUIZ",
		CourseID:  "geo",
		Mode:      "multiple_choice",
		Questions: []catalog.Question{
			{ID: "q1", Prompt: "?", Answer: "a"},
			{ID: "q2", Prompt: "??", Answer: "b"},
		},
		CurrentQuestionIndex: 1,
		Score:                1,
	}
}

func TestSnapshotRepo_SaveLatestClear(t *testing.T) {
	kv := NewMemoryKV()
	repo := NewSnapshotRepo(kv, NewKeys(""), zerolog.Nop())
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)

	require.NoError(t, repo.Save(ctx, testSnapshot()))

	snap, err = repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, SnapshotVersion, snap.Version)
	assert.Equal(t, "geo", snap.CourseID)
	assert.Equal(t, 1, snap.CurrentQuestionIndex)
	assert.Len(t, snap.Questions, 2)
	assert.False(t, snap.SavedAt.IsZero())

	require.NoError(t, repo.Clear(ctx))
	snap, err = repo.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestSnapshotRepo_CorruptIsPurged(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *SessionSnapshot)
		raw    string
	}{
		{name: "not json", raw: "nope"},
		{name: "index out of range", mutate: func(s *SessionSnapshot) { s.CurrentQuestionIndex = 5 }},
		{name: "no questions", mutate: func(s *SessionSnapshot) { s.Questions = nil }},
		{name: "score too high", mutate: func(s *SessionSnapshot) { s.Score = 3 }},
		{name: "missing course", mutate: func(s *SessionSnapshot) { s.CourseID = "" }},
		{name: "future version", mutate: func(s *SessionSnapshot) { s.Version = SnapshotVersion + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemoryKV()
			keys := NewKeys("")
			repo := NewSnapshotRepo(kv, keys, zerolog.Nop())
			ctx := context.Background()

			if tt.raw != "" {
				require.NoError(t, kv.Set(ctx, keys.Session(), tt.raw))
			} else {
				snap := testSnapshot()
				tt.mutate(snap)
				require.NoError(t, repo.Save(ctx, snap))
			}

			snap, err := repo.Latest(ctx)
			require.NoError(t, err)
			assert.Nil(t, snap)

			_, err = kv.Get(ctx, keys.Session())
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}
