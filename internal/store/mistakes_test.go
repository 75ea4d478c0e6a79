package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMistakeStore(t *testing.T) (*MistakeStore, *MemoryKV) {
	t.Helper()
	kv := NewMemoryKV()
	return NewMistakeStore(kv, NewKeys(""), zerolog.Nop()), kv
}

func TestMistakeStore_LoadAbsent(t *testing.T) {
	m, _ := newTestMistakeStore(t)
	ids, err := m.Load(context.Background(), "geo")
	require.NoError(t, err)
	assert.Equal(t, 0, ids.Len())
}

func TestMistakeStore_SaveLoad(t *testing.T) {
	m, kv := newTestMistakeStore(t)
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, "geo", NewIDSet("q2", "q1")))

	raw, err := kv.Get(ctx, "quizdeck:mistakes:geo")
	require.NoError(t, err)
	assert.JSONEq(t, `["q1","q2"]`, raw)

	ids, err := m.Load(ctx, "geo")
	require.NoError(t, err)
	assert.Equal(t, []string{"q1", "q2"}, ids.Sorted())
}

func TestMistakeStore_EmptySaveWritesArray(t *testing.T) {
	m, kv := newTestMistakeStore(t)
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, "geo", IDSet{}))
	raw, err := kv.Get(ctx, "quizdeck:mistakes:geo")
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestMistakeStore_PerCourseIsolation(t *testing.T) {
	m, _ := newTestMistakeStore(t)
	ctx := context.Background()

	_, err := m.Add(ctx, "geo", "q1")
	require.NoError(t, err)

	other, err := m.Load(ctx, "science")
	require.NoError(t, err)
	assert.Equal(t, 0, other.Len())
}

func TestMistakeStore_AddRemove(t *testing.T) {
	m, _ := newTestMistakeStore(t)
	ctx := context.Background()

	ids, err := m.Add(ctx, "geo", "q1")
	require.NoError(t, err)
	assert.True(t, ids.Has("q1"))

	ids, err = m.Add(ctx, "geo", "q1")
	require.NoError(t, err)
	assert.Equal(t, 1, ids.Len())

	_, err = m.Add(ctx, "geo", "q2")
	require.NoError(t, err)

	ids, err = m.Remove(ctx, "geo", "q1")
	require.NoError(t, err)
	assert.Equal(t, []string{"q2"}, ids.Sorted())

	loaded, err := m.Load(ctx, "geo")
	require.NoError(t, err)
	assert.Equal(t, []string{"q2"}, loaded.Sorted())

	// Removing an absent id is a no-op.
	ids, err = m.Remove(ctx, "geo", "nope")
	require.NoError(t, err)
	assert.Equal(t, 1, ids.Len())
}

func TestMistakeStore_CorruptIsPurged(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{{{"},
		{"object", `{"q1": true}`},
		{"numbers", `[1, 2, 3]`},
		{"mixed", `["q1", 2]`},
		{"string", `"q1"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, kv := newTestMistakeStore(t)
			ctx := context.Background()
			require.NoError(t, kv.Set(ctx, "quizdeck:mistakes:geo", tt.raw))

			ids, err := m.Load(ctx, "geo")
			require.NoError(t, err)
			assert.Equal(t, 0, ids.Len())

			_, err = kv.Get(ctx, "quizdeck:mistakes:geo")
			assert.ErrorIs(t, err, ErrNotFound, "corrupt entry should be deleted")
		})
	}
}

func TestMistakeStore_CoursesAndClear(t *testing.T) {
	m, kv := newTestMistakeStore(t)
	ctx := context.Background()

	_, err := m.Add(ctx, "geo", "q1")
	require.NoError(t, err)
	_, err = m.Add(ctx, "science", "s1")
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "quizdeck:session", "{}"))

	courses, err := m.Courses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"geo", "science"}, courses)

	require.NoError(t, m.Clear(ctx, "geo"))
	courses, err = m.Courses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"science"}, courses)
}

func TestMistakeStore_SQLiteBackend(t *testing.T) {
	s := openTestStore(t)
	m := NewMistakeStore(s.KV(), NewKeys(""), zerolog.Nop())
	ctx := context.Background()

	_, err := m.Add(ctx, "geo", "q3")
	require.NoError(t, err)

	ids, err := m.Load(ctx, "geo")
	require.NoError(t, err)
	assert.True(t, ids.Has("q3"))
}

func TestMistakeStore_RedisCorruptIsPurged(t *testing.T) {
	kv, mr := newTestRedisKV(t, "")
	m := NewMistakeStore(kv, NewKeys(""), zerolog.Nop())
	require.NoError(t, mr.Set("quizdeck:mistakes:geo", "not-json"))

	ids, err := m.Load(context.Background(), "geo")
	require.NoError(t, err)
	assert.Equal(t, 0, ids.Len())
	assert.False(t, mr.Exists("quizdeck:mistakes:geo"))
}
