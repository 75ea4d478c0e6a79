package play

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func mcView() quiz.View {
	return quiz.View{
		State: quiz.StateQuiz,
		Mode:  quiz.ModeMultipleChoice,
		Question: &catalog.Question{
			ID: "q1", Prompt: "Capital of France?", Answer: "Paris", Hint: "City of light.",
		},
		Options: []string{"Rome", "Paris", "Oslo", "Madrid"},
		Index:   0,
		Total:   4,
	}
}

func descriptiveView() quiz.View {
	return quiz.View{
		State:       quiz.StateQuiz,
		Mode:        quiz.ModeDescriptive,
		Descriptive: &catalog.DescriptiveQuestion{ID: "d1", Prompt: "Explain erosion.", Answer: "Wearing away."},
		Index:       1,
		Total:       2,
		Last:        true,
	}
}

func TestPlayScreen_NumberKeyAnswers(t *testing.T) {
	s := New(mcView())
	_, cmd := s.Update(keyPress('2'))
	if cmd == nil {
		t.Fatal("expected a command on '2'")
	}
	msg, ok := cmd().(screen.AnswerMsg)
	if !ok || msg.Answer != "Paris" {
		t.Errorf("got %#v, want AnswerMsg{Paris}", cmd())
	}
}

func TestPlayScreen_FeedbackShowsHint(t *testing.T) {
	v := mcView()
	s := New(v)
	if strings.Contains(s.View(80, 24), "City of light.") {
		t.Error("hint should be hidden before answering")
	}

	v.Selected = "Rome"
	v.Revealed = true
	s.Sync(v)

	view := s.View(80, 24)
	for _, want := range []string{"Not quite", "Correct answer: Paris", "Hint: City of light.", "Next question"} {
		if !strings.Contains(view, want) {
			t.Errorf("feedback view missing %q", want)
		}
	}
}

func TestPlayScreen_RevealedEnterAdvances(t *testing.T) {
	v := mcView()
	v.Selected = "Paris"
	v.Revealed = true
	v.Correct = true
	s := New(v)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(screen.NextMsg); !ok {
		t.Errorf("got %#v, want NextMsg", cmd())
	}

	// Answer keys are ignored during feedback.
	if _, cmd := s.Update(keyPress('1')); cmd != nil {
		t.Error("answer keys should be ignored while feedback shows")
	}
}

func TestPlayScreen_QuitConfirm(t *testing.T) {
	s := New(mcView())

	s.Update(specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("expected quit confirm after Esc")
	}
	if !strings.Contains(s.View(80, 24), "Leave this quiz") {
		t.Error("expected confirm prompt in view")
	}

	s.Update(keyPress('n'))
	if s.confirmQuit {
		t.Error("'n' should dismiss the confirm")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command on 'y'")
	}
	if _, ok := cmd().(screen.RestartMsg); !ok {
		t.Errorf("got %#v, want RestartMsg", cmd())
	}
}

func TestPlayScreen_SyncRebuildsOnNewQuestion(t *testing.T) {
	v := mcView()
	s := New(v)
	s.Update(specialKey(tea.KeyDown))
	if s.choice.Cursor != 1 {
		t.Fatalf("Cursor = %d, want 1", s.choice.Cursor)
	}

	next := mcView()
	next.Question = &catalog.Question{ID: "q2", Prompt: "Capital of Italy?", Answer: "Rome"}
	next.Index = 1
	s.Sync(next)
	if s.choice.Cursor != 0 {
		t.Errorf("Cursor = %d after new question, want 0", s.choice.Cursor)
	}
}

func TestPlayScreen_DescriptiveRevealAndSkip(t *testing.T) {
	s := New(descriptiveView())

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(screen.RevealMsg); !ok {
		t.Errorf("got %#v, want RevealMsg", cmd())
	}

	_, cmd = s.Update(specialKey(tea.KeyTab))
	if cmd == nil {
		t.Fatal("expected a command on Tab")
	}
	if _, ok := cmd().(screen.NextMsg); !ok {
		t.Errorf("got %#v, want NextMsg", cmd())
	}
}

func TestPlayScreen_DescriptiveReference(t *testing.T) {
	v := descriptiveView()
	v.Revealed = true
	s := New(v)

	view := s.View(80, 30)
	for _, want := range []string{"Explain erosion.", "Reference answer", "Wearing away.", "Back to start"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestPlayScreen_Title(t *testing.T) {
	v := mcView()
	v.Review = true
	if got := New(v).Title(); got != "Review" {
		t.Errorf("Title = %q, want Review", got)
	}
	if got := New(descriptiveView()).Title(); got != "Descriptive" {
		t.Errorf("Title = %q, want Descriptive", got)
	}
}
