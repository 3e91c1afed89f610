// Package drill implements the quiz state machine: menu, playing,
// feedback, results and best scores. It is driven by logical keys and
// clock ticks and never blocks on timers of its own.
package drill

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
)

// FeedbackDelay is how long feedback stays up before advancing on its own.
const FeedbackDelay = 1500 * time.Millisecond

// Machine owns the quiz lifecycle. It is not safe for concurrent use.
type Machine struct {
	state State

	mode       problemgen.OpMode
	difficulty problemgen.Difficulty
	field      MenuField

	session *session.Session
	gen     problemgen.Generator
	repo    store.BestStatsRepo
	logger  *slog.Logger
	newID   func() string

	best map[problemgen.Difficulty]*store.BestStats

	background bool
	redraw     bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSessionIDs overrides the session id generator.
func WithSessionIDs(fn func() string) Option {
	return func(m *Machine) {
		m.newID = fn
	}
}

// WithSelection preselects the operation mode and difficulty on the menu.
func WithSelection(mode problemgen.OpMode, d problemgen.Difficulty) Option {
	return func(m *Machine) {
		m.mode = mode
		m.difficulty = d
	}
}

// NewMachine creates a machine on the menu with Addition and Easy selected.
// repo may be nil, in which case nothing is loaded or saved.
func NewMachine(gen problemgen.Generator, repo store.BestStatsRepo, opts ...Option) *Machine {
	m := &Machine{
		state:      Menu{Field: FieldOperation},
		mode:       problemgen.Single(problemgen.OpAdd),
		difficulty: problemgen.Easy,
		gen:        gen,
		repo:       repo,
		logger:     slog.New(slog.DiscardHandler),
		newID:      uuid.NewString,
		best:       make(map[problemgen.Difficulty]*store.BestStats),
		redraw:     true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// HandleKeys dispatches a batch of keys in order, stopping at the first
// one that requests quit, then checks the feedback timeout once.
func (m *Machine) HandleKeys(keys []Key, now time.Duration) bool {
	for _, k := range keys {
		if m.HandleKey(k, now) {
			return true
		}
	}
	m.Tick(now)
	return false
}

// HandleKey applies one key press and reports whether quit was requested.
func (m *Machine) HandleKey(k Key, now time.Duration) bool {
	switch s := m.state.(type) {
	case Menu:
		return m.handleMenu(s, k, now)
	case Playing:
		m.handlePlaying(s, k, now)
	case Feedback:
		if k.Kind == KeyEnter || k.Kind == KeySpace {
			m.advance(now)
		}
	case Results:
		if k.Kind == KeyEnter || k.Kind == KeySpace || k.Kind == KeyMenu {
			m.session = nil
			m.toMenu()
		}
	case BestScores:
		if k.Kind == KeyEnter || k.Kind == KeyLeft || k.Kind == KeyMenu {
			m.toMenu()
		}
	}
	return false
}

// Tick advances out of Feedback once FeedbackDelay has passed.
func (m *Machine) Tick(now time.Duration) {
	fb, ok := m.state.(Feedback)
	if !ok {
		return
	}
	if now-fb.Since >= FeedbackDelay {
		m.advance(now)
	}
}

// Background pauses redraws. The session is not saved.
func (m *Machine) Background() {
	m.background = true
}

// Foreground resumes redraws and reloads the cached best scores.
func (m *Machine) Foreground() {
	m.background = false
	m.RefreshBest()
	if _, ok := m.state.(BestScores); ok {
		m.state = BestScores{Records: m.records()}
	}
	m.redraw = true
}

// NeedsRedraw reports whether the view changed since the last ClearRedraw.
// It is always false while in the background.
func (m *Machine) NeedsRedraw() bool {
	return m.redraw && !m.background
}

// ClearRedraw resets the redraw flag after a frame was drawn.
func (m *Machine) ClearRedraw() {
	m.redraw = false
}

// State returns the active phase data.
func (m *Machine) State() State { return m.state }

// Phase returns the active phase.
func (m *Machine) Phase() Phase { return m.state.Phase() }

// Mode returns the selected operation mode.
func (m *Machine) Mode() problemgen.OpMode { return m.mode }

// Difficulty returns the selected difficulty.
func (m *Machine) Difficulty() problemgen.Difficulty { return m.difficulty }

// Session returns the active session, or nil outside a run. Callers must
// not modify it.
func (m *Machine) Session() *session.Session { return m.session }

// Best returns the cached best record for d, or nil.
func (m *Machine) Best(d problemgen.Difficulty) *store.BestStats { return m.best[d] }

// Progress returns the 1-based number of the problem on screen and the
// session length. Outside a run it returns 0, 0.
func (m *Machine) Progress() (current, total int) {
	if m.session == nil {
		return 0, 0
	}
	current = m.session.Index()
	if _, ok := m.state.(Playing); ok {
		current++
	}
	return current, session.Length
}

func (m *Machine) setState(s State) {
	m.state = s
	m.redraw = true
}

func (m *Machine) toMenu() {
	m.setState(Menu{Field: m.field})
}

func (m *Machine) handleMenu(s Menu, k Key, now time.Duration) bool {
	switch k.Kind {
	case KeyMenu:
		return true
	case KeyUp:
		m.field = s.Field.Prev()
		m.setState(Menu{Field: m.field})
	case KeyDown:
		m.field = s.Field.Next()
		m.setState(Menu{Field: m.field})
	case KeyLeft, KeyRight, KeyEnter:
		switch s.Field {
		case FieldOperation:
			m.mode = m.mode.Next()
			m.redraw = true
		case FieldDifficulty:
			m.difficulty = m.difficulty.Next()
			m.redraw = true
		case FieldStart:
			if k.Kind == KeyEnter {
				m.start(now)
			}
		case FieldBestScores:
			if k.Kind == KeyEnter {
				m.RefreshBest()
				m.setState(BestScores{Records: m.records()})
			}
		}
	}
	return false
}

func (m *Machine) handlePlaying(s Playing, k Key, now time.Duration) {
	switch k.Kind {
	case KeyMenu:
		m.logger.Info("session aborted",
			"session_id", m.session.ID,
			"completed", m.session.Index(),
		)
		m.session = nil
		m.toMenu()
	case KeyDigit:
		if len(s.Buffer) < problemgen.MaxAnswerLen && k.Digit >= '0' && k.Digit <= '9' {
			s.Buffer += string(k.Digit)
			m.setState(s)
		}
	case KeyMinus:
		if s.Buffer == "" {
			s.Buffer = "-"
			m.setState(s)
		}
	case KeyBackspace:
		if s.Buffer != "" {
			s.Buffer = s.Buffer[:len(s.Buffer)-1]
			m.setState(s)
		}
	case KeyEnter:
		if s.Buffer == "" {
			return
		}
		answer := problemgen.ParseAnswer(s.Buffer)
		turn := m.session.Submit(s.Problem, answer, now-s.TurnStart)
		m.logger.Debug("answer submitted",
			"session_id", m.session.ID,
			"problem", s.Problem.Text(),
			"answer", problemgen.FormatAnswer(answer),
			"correct", turn.Correct,
			"elapsed_ms", turn.Elapsed.Milliseconds(),
		)
		m.setState(Feedback{Turn: turn, Since: now})
	}
}

func (m *Machine) start(now time.Duration) {
	m.session = session.New(m.newID(), m.mode, m.difficulty)
	m.logger.Info("session started",
		"session_id", m.session.ID,
		"mode", m.mode.Label(),
		"difficulty", m.difficulty.Key(),
	)
	m.nextProblem(now)
}

func (m *Machine) nextProblem(now time.Duration) {
	p := problemgen.ForMode(m.gen, m.mode, m.difficulty)
	m.setState(Playing{Problem: p, TurnStart: now})
}

func (m *Machine) advance(now time.Duration) {
	if m.session.Done() {
		m.finish()
		return
	}
	m.nextProblem(now)
}

func (m *Machine) finish() {
	summary := m.session.Summarize()
	key := m.difficulty.Key()

	prev := m.load(key)
	if session.IsNewBest(prev, summary.Stats()) {
		summary.NewBest = true
		stats := summary.Stats()
		if m.save(key, stats) {
			m.best[m.difficulty] = &stats
		}
	} else {
		m.best[m.difficulty] = prev
	}

	m.logger.Info("session finished",
		"session_id", m.session.ID,
		"difficulty", key,
		"correct", summary.Correct,
		"total", summary.Total,
		"best_streak", summary.BestStreak,
		"avg_ms", summary.AvgMs,
		"new_best", summary.NewBest,
	)
	m.setState(Results{Summary: summary})
}

// load returns the stored record for key. Failures count as no record.
func (m *Machine) load(key string) *store.BestStats {
	if m.repo == nil {
		return nil
	}
	st, err := m.repo.Load(context.Background(), key)
	if err != nil {
		m.logger.Warn("load best stats failed", "difficulty", key, "error", err)
		return nil
	}
	return st
}

func (m *Machine) save(key string, stats store.BestStats) bool {
	if m.repo == nil {
		return false
	}
	if err := m.repo.Save(context.Background(), key, stats); err != nil {
		m.logger.Warn("save best stats failed", "difficulty", key, "error", err)
		return false
	}
	return true
}

// RefreshBest reloads the cached best record for every difficulty.
func (m *Machine) RefreshBest() {
	for _, d := range problemgen.Difficulties {
		m.best[d] = m.load(d.Key())
	}
}

func (m *Machine) records() []Record {
	out := make([]Record, 0, len(problemgen.Difficulties))
	for _, d := range problemgen.Difficulties {
		out = append(out, Record{Difficulty: d, Stats: m.best[d]})
	}
	return out
}
