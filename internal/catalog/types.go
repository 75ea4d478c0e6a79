// Package catalog holds the static question banks the quiz plays from.
//
// A catalog is read-only for the lifetime of the process. Catalogs come from
// embedded JSON, a directory of JSON files, or .xlsx workbooks.
package catalog

// Info describes a course and its exam.
type Info struct {
	ID         string `json:"id" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Instructor string `json:"instructor,omitempty"`
	ExamDate   string `json:"examDate,omitempty"`
	ExamTime   string `json:"examTime,omitempty"`
}

// Question is a multiple-choice question. Options is optional; when empty the
// option generator builds distractors from other answers in the catalog.
type Question struct {
	ID      string   `json:"id" validate:"required"`
	Prompt  string   `json:"question" validate:"required"`
	Options []string `json:"options,omitempty" validate:"omitempty,min=2,max=4,unique,dive,required"`
	Answer  string   `json:"answer" validate:"required"`
	Hint    string   `json:"hint,omitempty"`
}

// HasOptions reports whether the question ships its own option list.
func (q Question) HasOptions() bool {
	return len(q.Options) > 0
}

// DescriptiveQuestion is an open question with a reference answer that the
// learner reveals and grades themselves.
type DescriptiveQuestion struct {
	ID     string `json:"id" validate:"required"`
	Prompt string `json:"question" validate:"required"`
	Answer string `json:"answer" validate:"required"`
}

// Catalog is the full question bank for one course.
type Catalog struct {
	Info        Info                  `json:"info" validate:"required"`
	Questions   []Question            `json:"questions" validate:"unique=ID,dive"`
	Descriptive []DescriptiveQuestion `json:"descriptiveQuestions" validate:"unique=ID,dive"`
}

// QuestionIDs returns the set of multiple-choice question ids.
func (c *Catalog) QuestionIDs() map[string]bool {
	ids := make(map[string]bool, len(c.Questions))
	for _, q := range c.Questions {
		ids[q.ID] = true
	}
	return ids
}

// QuestionsByID returns the multiple-choice questions whose id is in ids,
// preserving catalog order.
func (c *Catalog) QuestionsByID(ids map[string]bool) []Question {
	var out []Question
	for _, q := range c.Questions {
		if ids[q.ID] {
			out = append(out, q)
		}
	}
	return out
}
