// Package drill is the Bubble Tea screen that drives the quiz machine.
package drill

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/drill"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/ui/layout"
)

// TickInterval is how often the feedback timeout is polled.
const TickInterval = 100 * time.Millisecond

type tickMsg time.Time

// DrillScreen adapts a drill.Machine to the screen interface.
type DrillScreen struct {
	machine *drill.Machine
	clock   drill.Clock
	keys    keyMap

	// last rendered frame, reused until stale or resized
	stale        bool
	cached       string
	cachedWidth  int
	cachedHeight int
}

var _ screen.Screen = (*DrillScreen)(nil)

// New creates the screen and loads the best-score cache.
func New(m *drill.Machine, clock drill.Clock) *DrillScreen {
	m.RefreshBest()
	s := &DrillScreen{
		machine: m,
		clock:   clock,
		keys:    defaultKeyMap(),
	}
	s.takeRedraw()
	return s
}

func (s *DrillScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tickMsg:
		s.machine.Tick(s.clock.Now())
		cmd = tick()

	case tea.FocusMsg:
		s.machine.Foreground()

	case tea.BlurMsg:
		s.machine.Background()

	case tea.PasteMsg:
		cmd = s.dispatch(drill.KeysFor(msg.Content))

	case tea.KeyPressMsg:
		cmd = s.dispatch(s.keys.translate(msg))
	}
	s.takeRedraw()
	return s, cmd
}

// takeRedraw moves the machine's redraw flag onto the screen.
func (s *DrillScreen) takeRedraw() {
	if s.machine.NeedsRedraw() {
		s.stale = true
		s.machine.ClearRedraw()
	}
}

func (s *DrillScreen) dispatch(keys []drill.Key) tea.Cmd {
	if s.machine.HandleKeys(keys, s.clock.Now()) {
		return tea.Quit
	}
	return nil
}

func (s *DrillScreen) View(width, height int) string {
	if !s.stale && s.cached != "" && width == s.cachedWidth && height == s.cachedHeight {
		return s.cached
	}

	var out string
	switch st := s.machine.State().(type) {
	case drill.Menu:
		out = s.viewMenu(st, width, height)
	case drill.Playing:
		out = s.viewPlaying(st, width, height)
	case drill.Feedback:
		out = s.viewFeedback(st, width, height)
	case drill.Results:
		out = s.viewResults(st, width, height)
	case drill.BestScores:
		out = s.viewBestScores(st, width, height)
	}

	s.cached, s.cachedWidth, s.cachedHeight = out, width, height
	s.stale = false
	return out
}

func (s *DrillScreen) Title() string {
	switch s.machine.Phase() {
	case drill.PhasePlaying:
		cur, total := s.machine.Progress()
		return fmt.Sprintf("Problem %d of %d", cur, total)
	case drill.PhaseFeedback:
		return "Feedback"
	case drill.PhaseResults:
		return "Results"
	case drill.PhaseBestScores:
		return "Best Scores"
	}
	return "Menu"
}

// Status shows the difficulty, plus the live streak during a run.
func (s *DrillScreen) Status() string {
	label := s.machine.Difficulty().Label()
	if sess := s.machine.Session(); sess != nil {
		return fmt.Sprintf("%s  streak %d", label, sess.Streak)
	}
	return label
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	switch s.machine.Phase() {
	case drill.PhasePlaying:
		return []layout.KeyHint{
			{Key: "0-9 -", Description: "Type"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Abort"},
		}
	case drill.PhaseFeedback:
		return []layout.KeyHint{
			{Key: "Enter/Space", Description: "Next"},
		}
	case drill.PhaseResults:
		return []layout.KeyHint{
			{Key: "Enter/Esc", Description: "Menu"},
		}
	case drill.PhaseBestScores:
		return []layout.KeyHint{
			{Key: "Enter/←/Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→/Enter", Description: "Change"},
		{Key: "Esc", Description: "Quit"},
	}
}
