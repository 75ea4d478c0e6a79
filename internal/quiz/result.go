package quiz

import "math"

// GradeScale is the maximum grade shown on the results screen.
const GradeScale = 20

// Band classifies a grade.
type Band int

const (
	BandTryAgain Band = iota
	BandFair
	BandGood
	BandExcellent
)

func (b Band) String() string {
	switch b {
	case BandExcellent:
		return "Excellent"
	case BandGood:
		return "Good"
	case BandFair:
		return "Fair"
	}
	return "Try again"
}

// Result summarizes a finished multiple-choice run.
type Result struct {
	Score     int
	Total     int
	Incorrect int
	Grade     float64
	Band      Band
	Review    bool
}

// Passed reports whether the grade reaches half the scale.
func (r Result) Passed() bool {
	return r.Grade >= GradeScale/2
}

// NewResult grades score out of total on a 20-point scale rounded to one
// decimal place.
func NewResult(score, total int, review bool) Result {
	r := Result{Score: score, Total: total, Incorrect: total - score, Review: review}
	if total > 0 {
		r.Grade = math.Round(float64(score)/float64(total)*GradeScale*10) / 10
	}
	switch {
	case r.Grade >= 16:
		r.Band = BandExcellent
	case r.Grade >= 12:
		r.Band = BandGood
	case r.Grade >= 8:
		r.Band = BandFair
	default:
		r.Band = BandTryAgain
	}
	return r
}
