package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/screen"
)

// stubScreen records what the router did to it.
type stubScreen struct {
	state   quiz.State
	initRan bool
	synced  []quiz.View
	keys    int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		s.keys++
	}
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.state.String() }
func (s *stubScreen) Title() string        { return s.state.String() }
func (s *stubScreen) Sync(v quiz.View)     { s.synced = append(s.synced, v) }

// builder returns a Builder and the screens it has built so far.
func builder() (Builder, *[]*stubScreen) {
	var built []*stubScreen
	return func(v quiz.View) screen.Screen {
		s := &stubScreen{state: v.State}
		built = append(built, s)
		return s
	}, &built
}

func TestNewBuildsForInitialState(t *testing.T) {
	build, built := builder()
	r := New(build, quiz.View{State: quiz.StateSetup})

	if len(*built) != 1 {
		t.Fatalf("built %d screens, want 1", len(*built))
	}
	if r.State() != quiz.StateSetup {
		t.Errorf("State = %v, want SETUP", r.State())
	}
	if got := r.View(10, 10); got != "SETUP" {
		t.Errorf("View = %q, want SETUP", got)
	}

	r.Init()
	if !(*built)[0].initRan {
		t.Error("expected Init() to run on the initial screen")
	}
}

func TestSyncSameStateUpdatesActive(t *testing.T) {
	build, built := builder()
	r := New(build, quiz.View{State: quiz.StateQuiz})

	r.Sync(quiz.View{State: quiz.StateQuiz, Index: 1})

	if len(*built) != 1 {
		t.Fatalf("built %d screens, want 1", len(*built))
	}
	s := (*built)[0]
	if len(s.synced) != 1 || s.synced[0].Index != 1 {
		t.Errorf("synced = %+v, want one view at index 1", s.synced)
	}
}

func TestSyncStateChangeSwapsScreen(t *testing.T) {
	build, built := builder()
	r := New(build, quiz.View{State: quiz.StateQuiz})

	r.Sync(quiz.View{State: quiz.StateResults})

	if len(*built) != 2 {
		t.Fatalf("built %d screens, want 2", len(*built))
	}
	next := (*built)[1]
	if r.Active() != screen.Screen(next) {
		t.Error("active screen was not swapped")
	}
	if !next.initRan {
		t.Error("expected Init() to run on the new screen")
	}
	if len((*built)[0].synced) != 0 {
		t.Error("old screen must not be synced on a state change")
	}
	if r.State() != quiz.StateResults {
		t.Errorf("State = %v, want RESULTS", r.State())
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	build, built := builder()
	r := New(build, quiz.View{State: quiz.StateSetup})

	r.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if got := (*built)[0].keys; got != 1 {
		t.Errorf("keys = %d, want 1", got)
	}
}
