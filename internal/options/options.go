// Package options builds the answer choices shown for a multiple-choice question.
package options

import (
	"fmt"
	"slices"

	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/shuffle"
)

const (
	// MaxOptions caps the number of choices shown.
	MaxOptions = 4

	// MinOptions is the floor; tiny catalogs are padded up to it.
	MinOptions = 2

	// maxDistractors is MaxOptions minus the correct answer.
	maxDistractors = MaxOptions - 1
)

// Generator builds option lists.
type Generator struct {
	shuffler *shuffle.Shuffler
}

// New returns a Generator. A nil shuffler uses the process-wide one.
func New(s *shuffle.Shuffler) *Generator {
	if s == nil {
		s = shuffle.Default()
	}
	return &Generator{shuffler: s}
}

// Universe picks the answer pool distractors are drawn from: every answer in
// the catalog, or the current quiz subset when the catalog has fewer than
// MaxOptions distinct answers.
func Universe(all []catalog.Question, subset []catalog.Question) []string {
	answers := answersOf(all)
	if len(distinct(answers)) < MaxOptions {
		return answersOf(subset)
	}
	return answers
}

// For returns the options for q. Distractors come from the pre-authored
// options when q has them, otherwise from universe.
func (g *Generator) For(q catalog.Question, universe []string) []string {
	if q.HasOptions() {
		return g.Generate(q.Answer, q.Options)
	}
	return g.Generate(q.Answer, universe)
}

// Generate returns the correct answer plus up to three unique distractors from
// universe, shuffled. The result always holds between MinOptions and
// MaxOptions entries and contains correct exactly once.
func (g *Generator) Generate(correct string, universe []string) []string {
	pool := distinct(universe)
	pool = slices.DeleteFunc(pool, func(a string) bool { return a == correct })

	distractors := shuffle.Slice(g.shuffler, pool)
	if len(distractors) > maxDistractors {
		distractors = distractors[:maxDistractors]
	}

	opts := shuffle.Slice(g.shuffler, append([]string{correct}, distractors...))

	if len(opts) < MinOptions {
		opts = pad(opts, universe)
	}

	if len(opts) > MaxOptions {
		opts = opts[:MaxOptions]
	}
	return shuffle.Slice(g.shuffler, opts)
}

// pad fills opts up to MinOptions, first from universe answers not yet
// present, then with placeholder labels.
func pad(opts []string, universe []string) []string {
	for _, a := range universe {
		if len(opts) >= MinOptions {
			return opts
		}
		if !slices.Contains(opts, a) {
			opts = append(opts, a)
		}
	}
	for i := 0; len(opts) < MinOptions; i++ {
		p := Placeholder(i)
		if !slices.Contains(opts, p) {
			opts = append(opts, p)
		}
	}
	return opts
}

// Placeholder returns the i-th synthetic option label ("Option A", "Option B", ...).
func Placeholder(i int) string {
	return fmt.Sprintf("Option %c", 'A'+rune(i%26))
}

// distinct removes duplicates by exact text, keeping first occurrences.
func distinct(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, a := range in {
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	return out
}

func answersOf(qs []catalog.Question) []string {
	out := make([]string, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.Answer)
	}
	return out
}
