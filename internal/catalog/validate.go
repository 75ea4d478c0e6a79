package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	govalidator "github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *govalidator.Validate {
	v := govalidator.New(govalidator.WithRequiredStructEnabled())
	v.RegisterStructValidation(questionStructLevel, Question{})
	return v
}

// questionStructLevel enforces that a pre-authored option list contains the answer.
func questionStructLevel(sl govalidator.StructLevel) {
	q := sl.Current().Interface().(Question)
	if q.HasOptions() && !slices.Contains(q.Options, q.Answer) {
		sl.ReportError(q.Answer, "Answer", "answer", "answer_in_options", "")
	}
}

// Validate checks structural rules: required fields, unique question ids, and
// answers contained in their option lists.
func Validate(c *Catalog) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var ve govalidator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("validate catalog: %w", err)
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid catalog %q: %s", c.Info.ID, strings.Join(msgs, "; "))
}
