package drill

import (
	"strconv"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathdrill/internal/drill"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/rng"
	"github.com/abhisek/mathdrill/internal/session"
)

type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Now() time.Duration { return c.now }

func newTestScreen() (*DrillScreen, *fakeClock) {
	gen := problemgen.New(rng.New(rng.NewSeededSource(1), nil))
	clock := &fakeClock{}
	return New(drill.NewMachine(gen, nil), clock), clock
}

func press(s *DrillScreen, msgs ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = s.Update(m)
	}
	return cmd
}

var (
	keyUp    = tea.KeyPressMsg{Code: tea.KeyUp}
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyEsc   = tea.KeyPressMsg{Code: tea.KeyEscape}
)

func typeText(s *DrillScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func start(t *testing.T, s *DrillScreen) {
	t.Helper()
	press(s, keyDown, keyDown, keyEnter)
	require.Equal(t, drill.PhasePlaying, s.machine.Phase())
}

func TestInitStartsTicking(t *testing.T) {
	s, _ := newTestScreen()
	assert.NotNil(t, s.Init())
}

func TestEscOnMenuQuits(t *testing.T) {
	s, _ := newTestScreen()

	cmd := press(s, keyEsc)
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok, "expected tea.QuitMsg")
}

func TestEscWhilePlayingReturnsToMenu(t *testing.T) {
	s, _ := newTestScreen()
	start(t, s)

	cmd := press(s, keyEsc)
	assert.Nil(t, cmd)
	assert.Equal(t, drill.PhaseMenu, s.machine.Phase())
}

func TestPlayingViewShowsProblemAndBuffer(t *testing.T) {
	s, _ := newTestScreen()
	start(t, s)

	typeText(s, "42")
	view := s.View(80, 30)

	p := s.machine.State().(drill.Playing).Problem
	assert.Contains(t, view, p.Text())
	assert.Contains(t, view, "42_")
	assert.Contains(t, view, "1/10")
	assert.Equal(t, "Problem 1 of 10", s.Title())
	assert.Contains(t, s.Status(), "streak 0")
}

func TestTickAdvancesFeedback(t *testing.T) {
	s, clock := newTestScreen()
	start(t, s)

	p := s.machine.State().(drill.Playing).Problem
	typeText(s, strconv.Itoa(int(p.Answer)))
	press(s, keyEnter)
	require.Equal(t, drill.PhaseFeedback, s.machine.Phase())
	assert.Contains(t, s.View(80, 30), "Correct!")

	clock.now = drill.FeedbackDelay - time.Millisecond
	_, cmd := s.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd, "ticks keep rescheduling")
	assert.Equal(t, drill.PhaseFeedback, s.machine.Phase())

	clock.now = drill.FeedbackDelay
	s.Update(tickMsg(time.Now()))
	assert.Equal(t, drill.PhasePlaying, s.machine.Phase())
}

func TestWrongAnswerShowsSolution(t *testing.T) {
	s, _ := newTestScreen()
	start(t, s)
	p := s.machine.State().(drill.Playing).Problem

	typeText(s, "-1")
	press(s, keyEnter)

	view := s.View(80, 30)
	assert.Contains(t, view, "Not quite.")
	assert.Contains(t, view, p.Solution())
}

func TestFullSessionResultsView(t *testing.T) {
	s, _ := newTestScreen()
	start(t, s)

	for i := 0; i < session.Length; i++ {
		p := s.machine.State().(drill.Playing).Problem
		typeText(s, strconv.Itoa(int(p.Answer)))
		press(s, keyEnter)
		s.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	}
	require.Equal(t, drill.PhaseResults, s.machine.Phase())

	view := s.View(80, 40)
	assert.Contains(t, view, "100%")
	assert.Contains(t, view, "Score 10/10")
	assert.Contains(t, view, "NEW BEST")
	assert.Contains(t, view, "✓")
	assert.Equal(t, "Results", s.Title())

	press(s, keyEnter)
	assert.Equal(t, drill.PhaseMenu, s.machine.Phase())
}

func TestBestScoresView(t *testing.T) {
	s, _ := newTestScreen()
	press(s, keyUp, keyEnter)
	require.Equal(t, drill.PhaseBestScores, s.machine.Phase())

	view := s.View(80, 30)
	assert.Contains(t, view, "Best Scores")
	assert.Equal(t, 3, strings.Count(view, "no record"))
}

func TestBlurFreezesFrame(t *testing.T) {
	s, _ := newTestScreen()
	first := s.View(80, 30)

	s.Update(tea.BlurMsg{})
	press(s, keyDown)
	assert.Equal(t, first, s.View(80, 30), "no redraw while blurred")

	s.Update(tea.FocusMsg{})
	assert.NotEqual(t, first, s.View(80, 30))
}

func TestUpdateTakesRedrawFlag(t *testing.T) {
	s, _ := newTestScreen()
	assert.False(t, s.machine.NeedsRedraw())

	press(s, keyDown)
	assert.False(t, s.machine.NeedsRedraw(), "flag moves to the screen in Update")
	assert.True(t, s.stale)

	first := s.View(80, 30)
	assert.False(t, s.stale)
	assert.Equal(t, first, s.View(80, 30), "repeated View reuses the frame")
	assert.False(t, s.machine.NeedsRedraw())
}

func TestFunctionKeysDoNotType(t *testing.T) {
	s, _ := newTestScreen()
	start(t, s)

	press(s, tea.KeyPressMsg{Code: tea.KeyF1}, tea.KeyPressMsg{Code: tea.KeyF12})
	assert.Empty(t, s.machine.State().(drill.Playing).Buffer)
}

func TestPasteIsBatched(t *testing.T) {
	s, _ := newTestScreen()
	start(t, s)

	s.Update(tea.PasteMsg{Content: "123"})
	assert.Equal(t, "123", s.machine.State().(drill.Playing).Buffer)
}

func TestKeyHintsPerPhase(t *testing.T) {
	s, _ := newTestScreen()
	assert.Equal(t, "Esc", s.KeyHints()[len(s.KeyHints())-1].Key)

	start(t, s)
	assert.Equal(t, "Submit", s.KeyHints()[1].Description)
}
