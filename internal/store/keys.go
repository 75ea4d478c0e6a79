package store

import "strings"

// DefaultKeyPrefix namespaces every key the app writes.
const DefaultKeyPrefix = "quizdeck:"

// Keys builds the store keys used by the app.
type Keys struct {
	prefix string
}

// NewKeys returns a key builder. An empty prefix uses DefaultKeyPrefix.
func NewKeys(prefix string) Keys {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return Keys{prefix: prefix}
}

// MistakePrefix is the prefix shared by every per-course mistake key.
func (k Keys) MistakePrefix() string {
	return k.prefix + "mistakes:"
}

// Mistakes returns the key holding the mistake set for courseID.
func (k Keys) Mistakes(courseID string) string {
	return k.MistakePrefix() + courseID
}

// CourseFromMistakeKey extracts the course id from a mistake key.
func (k Keys) CourseFromMistakeKey(key string) (string, bool) {
	course, ok := strings.CutPrefix(key, k.MistakePrefix())
	return course, ok && course != ""
}

// Session returns the key holding the in-progress quiz snapshot.
func (k Keys) Session() string {
	return k.prefix + "session"
}
