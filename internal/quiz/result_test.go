package quiz

import (
	"errors"
	"testing"
)

func TestNewResult(t *testing.T) {
	tests := []struct {
		score, total int
		grade        float64
		band         Band
		passed       bool
	}{
		{4, 4, 20, BandExcellent, true},
		{4, 5, 16, BandExcellent, true},
		{3, 4, 15, BandGood, true},
		{2, 3, 13.3, BandGood, true},
		{2, 4, 10, BandFair, true},
		{2, 5, 8, BandFair, false},
		{1, 4, 5, BandTryAgain, false},
		{0, 0, 0, BandTryAgain, false},
	}

	for _, tt := range tests {
		r := NewResult(tt.score, tt.total, false)
		if r.Grade != tt.grade {
			t.Errorf("NewResult(%d, %d).Grade = %v, want %v", tt.score, tt.total, r.Grade, tt.grade)
		}
		if r.Band != tt.band {
			t.Errorf("NewResult(%d, %d).Band = %v, want %v", tt.score, tt.total, r.Band, tt.band)
		}
		if r.Passed() != tt.passed {
			t.Errorf("NewResult(%d, %d).Passed() = %v, want %v", tt.score, tt.total, r.Passed(), tt.passed)
		}
		if r.Incorrect != tt.total-tt.score {
			t.Errorf("NewResult(%d, %d).Incorrect = %d", tt.score, tt.total, r.Incorrect)
		}
	}
}

func TestBandString(t *testing.T) {
	tests := []struct {
		band Band
		want string
	}{
		{BandExcellent, "Excellent"},
		{BandGood, "Good"},
		{BandFair, "Fair"},
		{BandTryAgain, "Try again"},
	}
	for _, tt := range tests {
		if got := tt.band.String(); got != tt.want {
			t.Errorf("Band(%d).String() = %q, want %q", tt.band, got, tt.want)
		}
	}
}

func TestModeRoundTrip(t *testing.T) {
	for _, m := range []Mode{ModeMultipleChoice, ModeDescriptive} {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseMode("essay"); ok {
		t.Error("ParseMode accepted an unknown mode")
	}
}

func TestNoticeMessage(t *testing.T) {
	err := notice(ErrNoQuestions, "No questions were found for this quiz.")
	if got := NoticeMessage(err); got != "No questions were found for this quiz." {
		t.Errorf("NoticeMessage = %q", got)
	}
	if !errors.Is(err, ErrNoQuestions) {
		t.Error("notice should unwrap to its cause")
	}
	if got := NoticeMessage(errors.New("boom")); got != "Something went wrong: boom" {
		t.Errorf("NoticeMessage(plain) = %q", got)
	}
}

func TestViewProgress(t *testing.T) {
	v := View{State: StateQuiz, Index: 1, Total: 4}
	if got := v.Progress(); got != 0.5 {
		t.Errorf("Progress() = %v, want 0.5", got)
	}
	if got := (View{State: StateSetup}).Progress(); got != 0 {
		t.Errorf("Progress() outside quiz = %v, want 0", got)
	}
}
