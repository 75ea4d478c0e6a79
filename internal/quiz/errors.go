package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCourse is returned when a course id has no catalog.
	ErrUnknownCourse = errors.New("unknown course")

	// ErrNoQuestions is returned when the requested mode has no questions.
	ErrNoQuestions = errors.New("no questions available")

	// ErrNothingToReview is returned when the course has no recorded mistakes.
	ErrNothingToReview = errors.New("no questions to review")
)

// Notice is an error meant to be shown to the player. Err is the underlying
// cause and matches with errors.Is.
type Notice struct {
	Message string
	Err     error
}

func (n *Notice) Error() string {
	if n.Err == nil {
		return n.Message
	}
	return fmt.Sprintf("%s: %v", n.Message, n.Err)
}

func (n *Notice) Unwrap() error {
	return n.Err
}

func notice(err error, msg string) error {
	return &Notice{Message: msg, Err: err}
}

// NoticeMessage returns the player-facing text for err.
func NoticeMessage(err error) string {
	var n *Notice
	if errors.As(err, &n) {
		return n.Message
	}
	return "Something went wrong: " + err.Error()
}
