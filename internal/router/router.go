// Package router keeps the active screen in step with the quiz machine.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/screen"
)

// Builder creates the screen for a machine state.
type Builder func(v quiz.View) screen.Screen

// Router owns the active screen and the machine state it was built for.
type Router struct {
	build  Builder
	state  quiz.State
	active screen.Screen
}

// New creates a Router showing the screen for v.
func New(build Builder, v quiz.View) *Router {
	return &Router{
		build:  build,
		state:  v.State,
		active: build(v),
	}
}

// Init runs the active screen's Init.
func (r *Router) Init() tea.Cmd {
	return r.active.Init()
}

// Sync shows v. A state change swaps in a freshly built screen and returns
// its Init command; otherwise the active screen is handed v if it accepts
// updates.
func (r *Router) Sync(v quiz.View) tea.Cmd {
	if v.State != r.state {
		r.state = v.State
		r.active = r.build(v)
		return r.active.Init()
	}
	if s, ok := r.active.(screen.Syncer); ok {
		s.Sync(v)
	}
	return nil
}

// State returns the machine state the active screen was built for.
func (r *Router) State() quiz.State {
	return r.state
}

// Active returns the active screen.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Update forwards msg to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.active.View(width, height)
}
