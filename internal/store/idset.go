package store

import (
	"maps"
	"slices"
)

// IDSet is a set of question ids.
type IDSet map[string]struct{}

// NewIDSet returns a set holding ids.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Add(id string) {
	s[id] = struct{}{}
}

func (s IDSet) Remove(id string) {
	delete(s, id)
}

func (s IDSet) Len() int {
	return len(s)
}

// Sorted returns the ids in lexical order.
func (s IDSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// Bools returns the set as a map[string]bool for lookups.
func (s IDSet) Bools() map[string]bool {
	out := make(map[string]bool, len(s))
	for id := range s {
		out[id] = true
	}
	return out
}
