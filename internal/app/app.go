package app

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/screens/courses"
	"github.com/quizdeck/quizdeck/internal/screens/play"
	"github.com/quizdeck/quizdeck/internal/screens/results"
	"github.com/quizdeck/quizdeck/internal/screens/setup"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	// AutoAdvance moves past multiple-choice feedback after this delay.
	// Zero waits for the player.
	AutoAdvance time.Duration

	Logger zerolog.Logger
}

// autoAdvanceMsg fires when an auto-advance delay elapses. Epoch is the
// feedback epoch it was scheduled for.
type autoAdvanceMsg struct {
	Epoch uint64
}

// AppModel is the root Bubble Tea model. It applies screen intents to the
// quiz machine and keeps the active screen in step with the machine state.
type AppModel struct {
	ctx     context.Context
	machine *quiz.Machine
	router  *router.Router
	opts    Options

	// scheduled is the feedback epoch with a pending auto-advance tick.
	scheduled uint64

	notice string
	width  int
	height int
}

// New creates the root model for machine.
func New(ctx context.Context, machine *quiz.Machine, opts Options) AppModel {
	return AppModel{
		ctx:     ctx,
		machine: machine,
		router:  router.New(screenFor, machine.View()),
		opts:    opts,
	}
}

func screenFor(v quiz.View) screen.Screen {
	switch v.State {
	case quiz.StateSetup:
		return setup.New(v)
	case quiz.StateQuiz:
		return play.New(v)
	case quiz.StateResults:
		return results.New(v)
	}
	return courses.New(v)
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Init(), m.scheduleAutoAdvance(m.machine.View()))
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.notice = ""

	case autoAdvanceMsg:
		if m.machine.AutoAdvance(m.ctx, msg.Epoch) {
			return m.sync()
		}
		return m, nil

	case screen.SelectCourseMsg:
		return m.apply(m.machine.SelectCourse(m.ctx, msg.ID))
	case screen.BackMsg:
		m.machine.Back()
		return m.sync()
	case screen.StartQuizMsg:
		return m.apply(m.machine.StartNewQuiz(m.ctx, msg.Mode))
	case screen.StartReviewMsg:
		return m.apply(m.machine.StartReviewQuiz(m.ctx))
	case screen.ReviewMistakesMsg:
		return m.apply(m.machine.ReviewMistakes(m.ctx))
	case screen.AnswerMsg:
		_, err := m.machine.SelectAnswer(m.ctx, msg.Answer)
		return m.apply(err)
	case screen.RevealMsg:
		m.machine.Reveal(m.ctx)
		return m.sync()
	case screen.NextMsg:
		m.machine.Advance(m.ctx)
		return m.sync()
	case screen.RestartMsg:
		m.machine.Restart(m.ctx)
		return m.sync()
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// apply records err as a notice and re-syncs the screen.
func (m AppModel) apply(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.notice = quiz.NoticeMessage(err)
		m.opts.Logger.Debug().Err(err).Msg("intent rejected")
	}
	return m.sync()
}

// sync shows the machine's current view and schedules auto-advance.
func (m AppModel) sync() (tea.Model, tea.Cmd) {
	v := m.machine.View()
	cmd := m.router.Sync(v)

	if tick := m.scheduleAutoAdvance(v); tick != nil {
		m.scheduled = v.FeedbackEpoch
		cmd = tea.Batch(cmd, tick)
	}
	return m, cmd
}

// scheduleAutoAdvance returns a tick for the current feedback period, or nil
// when auto-advance is off or already scheduled.
func (m AppModel) scheduleAutoAdvance(v quiz.View) tea.Cmd {
	if m.opts.AutoAdvance <= 0 || v.State != quiz.StateQuiz || !v.Revealed ||
		v.Mode != quiz.ModeMultipleChoice || v.FeedbackEpoch == m.scheduled {
		return nil
	}
	epoch := v.FeedbackEpoch
	return tea.Tick(m.opts.AutoAdvance, func(time.Time) tea.Msg {
		return autoAdvanceMsg{Epoch: epoch}
	})
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), m.status(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.notice, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// status is the header's right-hand text.
func (m AppModel) status() string {
	qv := m.machine.View()
	switch qv.State {
	case quiz.StateQuiz:
		return fmt.Sprintf("✓ %d  ", qv.Score)
	case quiz.StateCourseSelection:
		return ""
	}
	return fmt.Sprintf("✗ %d to review  ", qv.MistakeCount)
}

// Run starts the Bubble Tea program.
func Run(ctx context.Context, machine *quiz.Machine, opts Options) error {
	p := tea.NewProgram(New(ctx, machine, opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
