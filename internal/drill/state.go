package drill

import (
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
)

// Phase identifies the active screen of the machine.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseFeedback
	PhaseResults
	PhaseBestScores
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseFeedback:
		return "feedback"
	case PhaseResults:
		return "results"
	case PhaseBestScores:
		return "best-scores"
	}
	return "unknown"
}

// MenuField is a focusable row on the menu.
type MenuField int

const (
	FieldOperation MenuField = iota
	FieldDifficulty
	FieldStart
	FieldBestScores

	menuFieldCount = 4
)

// Next moves focus down, wrapping to the top.
func (f MenuField) Next() MenuField {
	return (f + 1) % menuFieldCount
}

// Prev moves focus up, wrapping to the bottom.
func (f MenuField) Prev() MenuField {
	return (f + menuFieldCount - 1) % menuFieldCount
}

// State is the data for one phase. Exactly one is active at a time.
type State interface {
	Phase() Phase
	sealed()
}

// Menu lets the player pick an operation and difficulty.
type Menu struct {
	Field MenuField
}

// Playing collects the answer for the current problem.
type Playing struct {
	Problem   problemgen.Problem
	Buffer    string
	TurnStart time.Duration
}

// Feedback shows the outcome of the last submitted turn.
type Feedback struct {
	Turn  session.Turn
	Since time.Duration
}

// Results shows the summary of a finished session.
type Results struct {
	Summary session.Summary
}

// Record is one row of the best-scores table. Stats is nil when the
// difficulty has never been completed.
type Record struct {
	Difficulty problemgen.Difficulty
	Stats      *store.BestStats
}

// BestScores lists the stored record for each difficulty.
type BestScores struct {
	Records []Record
}

func (Menu) Phase() Phase       { return PhaseMenu }
func (Playing) Phase() Phase    { return PhasePlaying }
func (Feedback) Phase() Phase   { return PhaseFeedback }
func (Results) Phase() Phase    { return PhaseResults }
func (BestScores) Phase() Phase { return PhaseBestScores }

func (Menu) sealed()       {}
func (Playing) sealed()    {}
func (Feedback) sealed()   {}
func (Results) sealed()    {}
func (BestScores) sealed() {}
