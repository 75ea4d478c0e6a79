package app

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/screens/play"
	"github.com/quizdeck/quizdeck/internal/screens/results"
	"github.com/quizdeck/quizdeck/internal/screens/setup"
	"github.com/quizdeck/quizdeck/internal/shuffle"
	"github.com/quizdeck/quizdeck/internal/store"
)

func testMachine(t *testing.T) *quiz.Machine {
	t.Helper()
	lib, err := catalog.NewLibrary(&catalog.Catalog{
		Info: catalog.Info{ID: "geo", Title: "Capitals"},
		Questions: []catalog.Question{
			{ID: "q1", Prompt: "Capital of France?", Answer: "Paris"},
			{ID: "q2", Prompt: "Capital of Italy?", Answer: "Rome"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	kv := store.NewMemoryKV()
	keys := store.NewKeys("")
	m, err := quiz.New(context.Background(), lib,
		store.NewMistakeStore(kv, keys, zerolog.Nop()),
		store.NewSnapshotRepo(kv, keys, zerolog.Nop()),
		zerolog.Nop(), quiz.Config{Shuffler: shuffle.NewSeeded(3)})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func send(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return am, cmd
}

func TestApp_StartsAtSetupForSingleCourse(t *testing.T) {
	m := New(context.Background(), testMachine(t), Options{})
	if _, ok := m.router.Active().(*setup.SetupScreen); !ok {
		t.Errorf("active screen = %T, want *setup.SetupScreen", m.router.Active())
	}
}

func TestApp_FullRound(t *testing.T) {
	machine := testMachine(t)
	m := New(context.Background(), machine, Options{})

	m, _ = send(t, m, screen.StartQuizMsg{Mode: quiz.ModeMultipleChoice})
	if _, ok := m.router.Active().(*play.PlayScreen); !ok {
		t.Fatalf("active screen = %T, want *play.PlayScreen", m.router.Active())
	}

	for i := 0; i < 2; i++ {
		v := machine.View()
		m, _ = send(t, m, screen.AnswerMsg{Answer: v.Question.Answer})
		m, _ = send(t, m, screen.NextMsg{})
	}

	if _, ok := m.router.Active().(*results.ResultsScreen); !ok {
		t.Fatalf("active screen = %T, want *results.ResultsScreen", m.router.Active())
	}
	if got := machine.View().Result.Score; got != 2 {
		t.Errorf("score = %d, want 2", got)
	}

	m, _ = send(t, m, screen.RestartMsg{})
	if _, ok := m.router.Active().(*setup.SetupScreen); !ok {
		t.Errorf("active screen = %T, want *setup.SetupScreen", m.router.Active())
	}
}

func TestApp_NoticeOnEmptyReview(t *testing.T) {
	m := New(context.Background(), testMachine(t), Options{})
	m.width, m.height = 100, 30

	m, _ = send(t, m, screen.StartReviewMsg{})
	if m.notice != "You have no incorrect answers to review!" {
		t.Errorf("notice = %q", m.notice)
	}
	if !strings.Contains(m.render(), "no incorrect answers") {
		t.Error("notice missing from footer")
	}

	// Any key clears the notice.
	m, _ = send(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	if m.notice != "" {
		t.Errorf("notice = %q after key press, want empty", m.notice)
	}
}

func TestApp_AutoAdvance(t *testing.T) {
	machine := testMachine(t)
	m := New(context.Background(), machine, Options{AutoAdvance: time.Second})

	m, _ = send(t, m, screen.StartQuizMsg{Mode: quiz.ModeMultipleChoice})
	m, cmd := send(t, m, screen.AnswerMsg{Answer: machine.View().Question.Answer})
	if cmd == nil {
		t.Fatal("expected an auto-advance tick after answering")
	}
	epoch := machine.Epoch()
	if m.scheduled != epoch {
		t.Errorf("scheduled = %d, want %d", m.scheduled, epoch)
	}

	// A stale tick is ignored.
	m, _ = send(t, m, autoAdvanceMsg{Epoch: epoch - 1})
	if machine.View().Index != 0 {
		t.Fatal("stale tick advanced the quiz")
	}

	m, _ = send(t, m, autoAdvanceMsg{Epoch: epoch})
	if machine.View().Index != 1 {
		t.Errorf("Index = %d after tick, want 1", machine.View().Index)
	}
}

func TestApp_NoAutoAdvanceWhenDisabled(t *testing.T) {
	machine := testMachine(t)
	m := New(context.Background(), machine, Options{})

	m, _ = send(t, m, screen.StartQuizMsg{Mode: quiz.ModeMultipleChoice})
	_, cmd := send(t, m, screen.AnswerMsg{Answer: machine.View().Question.Answer})
	if cmd != nil {
		t.Error("expected no tick with auto-advance off")
	}
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := New(context.Background(), testMachine(t), Options{})
	_, cmd := send(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("got %T, want tea.QuitMsg", cmd())
	}
}
