package quiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/options"
	"github.com/quizdeck/quizdeck/internal/shuffle"
	"github.com/quizdeck/quizdeck/internal/store"
)

// Config tunes machine behavior.
type Config struct {
	// PersistReviewMisses also records misses made during a review quiz in
	// the persisted mistake set. By default they stay in the session only.
	PersistReviewMisses bool

	// Shuffler orders questions and options. Nil uses the process-wide one.
	Shuffler *shuffle.Shuffler

	// NewID generates session ids. Nil uses random UUIDs.
	NewID func() string
}

// Machine is the quiz session state machine. It is not safe for concurrent
// use; the TUI delivers one intent at a time.
type Machine struct {
	courses   catalog.Provider
	mistakes  store.MistakeRepo
	snapshots store.SnapshotRepo
	shuffler  *shuffle.Shuffler
	options   *options.Generator
	newID     func() string
	log       zerolog.Logger
	cfg       Config

	state      State
	course     *catalog.Catalog
	mistakeSet store.IDSet
	sess       *Session
	result     *Result

	// epoch increments on every entry into or exit from answer feedback.
	// Timers carry the epoch they were scheduled under.
	epoch uint64
}

// New creates a Machine. With a single catalog the machine starts at setup
// for that course; otherwise it starts at course selection. snapshots may be
// nil to disable resume.
func New(ctx context.Context, courses catalog.Provider, mistakes store.MistakeRepo, snapshots store.SnapshotRepo, log zerolog.Logger, cfg Config) (*Machine, error) {
	list := courses.Courses()
	if len(list) == 0 {
		return nil, errors.New("no courses available")
	}

	shuf := cfg.Shuffler
	if shuf == nil {
		shuf = shuffle.Default()
	}
	newID := cfg.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	m := &Machine{
		courses:   courses,
		mistakes:  mistakes,
		snapshots: snapshots,
		shuffler:  shuf,
		options:   options.New(shuf),
		newID:     newID,
		log:       log,
		cfg:       cfg,
		state:     StateCourseSelection,
	}

	if len(list) == 1 {
		if err := m.SelectCourse(ctx, list[0].ID); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// State returns the current machine state.
func (m *Machine) State() State {
	return m.state
}

// Epoch returns the current feedback epoch.
func (m *Machine) Epoch() uint64 {
	return m.epoch
}

// Courses lists the available courses.
func (m *Machine) Courses() []catalog.Info {
	return m.courses.Courses()
}

// MistakeCount returns the size of the active course's persisted mistake set.
func (m *Machine) MistakeCount() int {
	return m.mistakeSet.Len()
}

// SelectCourse fixes the active course and loads its mistake set.
func (m *Machine) SelectCourse(ctx context.Context, id string) error {
	if m.state != StateCourseSelection && m.state != StateSetup {
		return nil
	}
	c, ok := m.courses.Catalog(id)
	if !ok {
		return notice(fmt.Errorf("%w: %q", ErrUnknownCourse, id), "That course does not exist.")
	}

	set, err := m.mistakes.Load(ctx, id)
	if err != nil {
		return notice(err, "Could not load your saved mistakes.")
	}

	m.course = c
	m.mistakeSet = m.ownedBy(c, set)
	m.state = StateSetup

	m.log.Debug().
		Str("course", id).
		Int("mistakes", m.mistakeSet.Len()).
		Msg("course selected")
	return nil
}

// Back returns from setup to course selection. It does nothing when only
// one course exists.
func (m *Machine) Back() {
	if m.state != StateSetup || len(m.courses.Courses()) < 2 {
		return
	}
	m.course = nil
	m.mistakeSet = nil
	m.state = StateCourseSelection
}

// StartNewQuiz begins a shuffled run over every question of mode.
func (m *Machine) StartNewQuiz(ctx context.Context, mode Mode) error {
	if m.course == nil || (m.state != StateSetup && m.state != StateResults) {
		return nil
	}

	sess := &Session{Mode: mode, CourseID: m.course.Info.ID}
	switch mode {
	case ModeDescriptive:
		sess.Descriptive = shuffle.Slice(m.shuffler, m.course.Descriptive)
	default:
		sess.Questions = shuffle.Slice(m.shuffler, m.course.Questions)
	}

	if sess.Total() == 0 {
		m.toSetup()
		return notice(ErrNoQuestions, "No questions were found for this quiz.")
	}

	m.begin(ctx, sess)
	return nil
}

// StartReviewQuiz begins a run over the persisted mistakes of the active
// course. With no mistakes it returns ErrNothingToReview and leaves the state
// unchanged.
func (m *Machine) StartReviewQuiz(ctx context.Context) error {
	if m.course == nil || (m.state != StateSetup && m.state != StateResults) {
		return nil
	}

	set, err := m.mistakes.Load(ctx, m.course.Info.ID)
	if err != nil {
		return notice(err, "Could not load your saved mistakes.")
	}
	m.mistakeSet = m.ownedBy(m.course, set)

	qs := m.course.QuestionsByID(m.mistakeSet.Bools())
	if len(qs) == 0 {
		return notice(ErrNothingToReview, "You have no incorrect answers to review!")
	}

	m.begin(ctx, &Session{
		Mode:      ModeMultipleChoice,
		CourseID:  m.course.Info.ID,
		Questions: shuffle.Slice(m.shuffler, qs),
		Review:    true,
	})
	return nil
}

// ReviewMistakes starts a review quiz from the results screen.
func (m *Machine) ReviewMistakes(ctx context.Context) error {
	if m.state != StateResults {
		return nil
	}
	return m.StartReviewQuiz(ctx)
}

// SelectAnswer judges answer for the current multiple-choice question. It
// returns false without side effects while feedback is already showing.
// Mistake set changes are persisted before the answer is recorded; on a
// store error the session is left untouched.
func (m *Machine) SelectAnswer(ctx context.Context, answer string) (bool, error) {
	if m.state != StateQuiz || m.sess.Revealed {
		return false, nil
	}
	q := m.sess.current()
	if q == nil {
		return false, nil
	}

	correct := answer == q.Answer
	courseID := m.sess.CourseID

	var (
		set store.IDSet
		err error
	)
	switch {
	case correct && m.sess.Review:
		set, err = m.mistakes.Remove(ctx, courseID, q.ID)
	case !correct && (!m.sess.Review || m.cfg.PersistReviewMisses):
		set, err = m.mistakes.Add(ctx, courseID, q.ID)
	}
	if err != nil {
		return false, notice(err, "Could not save your progress.")
	}
	if set != nil {
		m.mistakeSet = m.ownedBy(m.course, set)
	}

	if correct {
		m.sess.Score++
		m.sess.Mistakes.Remove(q.ID)
	} else {
		m.sess.Mistakes.Add(q.ID)
	}
	m.sess.Selected = answer
	m.sess.Revealed = true
	m.epoch++

	m.log.Debug().
		Str("session", m.sess.ID).
		Str("question", q.ID).
		Bool("correct", correct).
		Bool("review", m.sess.Review).
		Msg("answer judged")

	m.saveSnapshot(ctx)
	return true, nil
}

// Reveal shows the reference answer of the current descriptive question.
func (m *Machine) Reveal(ctx context.Context) bool {
	if m.state != StateQuiz || m.sess.Mode != ModeDescriptive || m.sess.Revealed {
		return false
	}
	m.sess.Revealed = true
	m.epoch++
	m.saveSnapshot(ctx)
	return true
}

// Advance moves past the current question. A multiple-choice question must
// be answered first. After the last question a multiple-choice run shows
// results and a descriptive run returns to setup.
func (m *Machine) Advance(ctx context.Context) {
	if m.state != StateQuiz {
		return
	}
	if m.sess.Mode == ModeMultipleChoice && !m.sess.Revealed {
		return
	}

	m.sess.Selected = ""
	m.sess.Revealed = false
	m.epoch++

	if !m.sess.last() {
		m.sess.Index++
		m.refreshOptions()
		m.saveSnapshot(ctx)
		return
	}

	m.clearSnapshot(ctx)
	if m.sess.Mode == ModeDescriptive {
		m.log.Info().Str("session", m.sess.ID).Msg("descriptive quiz finished")
		m.toSetup()
		return
	}

	r := NewResult(m.sess.Score, m.sess.Total(), m.sess.Review)
	m.result = &r
	m.log.Info().
		Str("session", m.sess.ID).
		Int("score", r.Score).
		Int("total", r.Total).
		Float64("grade", r.Grade).
		Bool("review", r.Review).
		Msg("quiz finished")
	m.sess = nil
	m.state = StateResults
}

// AutoAdvance advances only if epoch is still current and feedback is still
// showing. Ticks scheduled before any later transition are ignored.
func (m *Machine) AutoAdvance(ctx context.Context, epoch uint64) bool {
	if m.state != StateQuiz || !m.sess.Revealed || epoch != m.epoch {
		return false
	}
	m.Advance(ctx)
	return true
}

// Restart abandons the quiz or leaves results and returns to setup.
func (m *Machine) Restart(ctx context.Context) {
	if m.state != StateQuiz && m.state != StateResults {
		return
	}
	if m.state == StateQuiz {
		m.clearSnapshot(ctx)
	}
	m.toSetup()
}

// Resume restores an in-progress quiz from the stored snapshot. It reports
// whether a quiz was resumed. Snapshots for unknown courses, or holding
// questions the course no longer has, are discarded.
func (m *Machine) Resume(ctx context.Context) (bool, error) {
	if m.snapshots == nil {
		return false, nil
	}
	snap, err := m.snapshots.Latest(ctx)
	if err != nil || snap == nil {
		return false, err
	}

	sess, ok := sessionFromSnapshot(snap)
	c, known := m.courses.Catalog(snap.CourseID)
	if !ok || !known || !rebind(sess, c) {
		m.log.Warn().
			Str("course", snap.CourseID).
			Str("mode", snap.Mode).
			Msg("discarding unusable session snapshot")
		m.clearSnapshot(ctx)
		return false, nil
	}

	set, err := m.mistakes.Load(ctx, c.Info.ID)
	if err != nil {
		return false, fmt.Errorf("load mistakes: %w", err)
	}

	m.course = c
	m.mistakeSet = m.ownedBy(c, set)
	m.sess = sess
	m.result = nil
	m.state = StateQuiz
	m.epoch++
	if !m.validOptions() {
		m.refreshOptions()
	}

	m.log.Info().
		Str("session", sess.ID).
		Str("course", sess.CourseID).
		Int("index", sess.Index).
		Msg("quiz resumed")
	return true, nil
}

func (m *Machine) begin(ctx context.Context, sess *Session) {
	sess.ID = m.newID()
	sess.Mistakes = store.IDSet{}

	m.sess = sess
	m.result = nil
	m.state = StateQuiz
	m.epoch++
	m.refreshOptions()

	m.log.Info().
		Str("session", sess.ID).
		Str("course", sess.CourseID).
		Str("mode", sess.Mode.String()).
		Int("questions", sess.Total()).
		Bool("review", sess.Review).
		Msg("quiz started")

	m.clearSnapshot(ctx)
	m.saveSnapshot(ctx)
}

func (m *Machine) toSetup() {
	if m.sess != nil && m.sess.Revealed {
		m.epoch++
	}
	m.sess = nil
	m.result = nil
	m.state = StateSetup
}

// refreshOptions builds the choices for the current multiple-choice question.
func (m *Machine) refreshOptions() {
	q := m.sess.current()
	if q == nil {
		m.sess.Options = nil
		return
	}
	universe := options.Universe(m.course.Questions, m.sess.Questions)
	m.sess.Options = m.options.For(*q, universe)
}

// validOptions reports whether the restored options can be shown for the
// current question.
func (m *Machine) validOptions() bool {
	q := m.sess.current()
	if q == nil {
		return true
	}
	hasAnswer, hasSelected := false, m.sess.Selected == ""
	for _, o := range m.sess.Options {
		hasAnswer = hasAnswer || o == q.Answer
		hasSelected = hasSelected || o == m.sess.Selected
	}
	return hasAnswer && hasSelected && len(m.sess.Options) <= options.MaxOptions
}

// ownedBy drops ids that do not belong to c.
func (m *Machine) ownedBy(c *catalog.Catalog, set store.IDSet) store.IDSet {
	ids := c.QuestionIDs()
	out := make(store.IDSet, set.Len())
	for id := range set {
		if ids[id] {
			out.Add(id)
		}
	}
	return out
}

func (m *Machine) saveSnapshot(ctx context.Context) {
	if m.snapshots == nil || m.sess == nil {
		return
	}
	if err := m.snapshots.Save(ctx, snapshotOf(m.sess)); err != nil {
		m.log.Warn().Err(err).Str("session", m.sess.ID).Msg("save session snapshot")
	}
}

func (m *Machine) clearSnapshot(ctx context.Context) {
	if m.snapshots == nil {
		return
	}
	if err := m.snapshots.Clear(ctx); err != nil {
		m.log.Warn().Err(err).Msg("clear session snapshot")
	}
}
