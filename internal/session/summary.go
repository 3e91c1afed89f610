package session

import (
	"fmt"
	"math"
	"time"

	"github.com/abhisek/mathdrill/internal/store"
)

// Summary is the read-only result of a finished session.
type Summary struct {
	Correct    uint32
	Total      uint32
	BestStreak uint32
	AvgMs      uint32
	Review     []Turn

	// NewBest is true when the run replaced the stored record.
	NewBest bool
}

// Percent returns the share of correct answers, 0 to 100.
func (s Summary) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return int(s.Correct * 100 / s.Total)
}

// Stats converts the summary to the persisted record.
func (s Summary) Stats() store.BestStats {
	return store.BestStats{
		Streak:  s.BestStreak,
		Correct: s.Correct,
		Total:   s.Total,
		AvgMs:   s.AvgMs,
	}
}

// AvgTimeMs divides the cumulative time by completed problems, in whole
// milliseconds. Returns 0 when nothing was completed.
func AvgTimeMs(cumulative time.Duration, completed int) uint32 {
	if completed <= 0 || cumulative <= 0 {
		return 0
	}
	avg := cumulative.Milliseconds() / int64(completed)
	if avg > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(avg)
}

// Summarize builds the results summary. NewBest is left for the caller,
// which knows the stored record.
func (s *Session) Summarize() Summary {
	review := make([]Turn, len(s.History))
	copy(review, s.History)
	return Summary{
		Correct:    s.Correct,
		Total:      uint32(len(s.History)),
		BestStreak: s.BestStreak,
		AvgMs:      AvgTimeMs(s.Cumulative, len(s.History)),
		Review:     review,
	}
}

// IsNewBest reports whether cand should replace prev. A higher streak wins
// on its own even when correct and average time are worse.
func IsNewBest(prev *store.BestStats, cand store.BestStats) bool {
	if prev == nil {
		return true
	}
	if cand.Correct > prev.Correct {
		return true
	}
	if cand.Correct == prev.Correct && cand.AvgMs < prev.AvgMs {
		return true
	}
	return cand.Streak > prev.Streak
}

// FormatMs renders a millisecond count as seconds, e.g. "1.25s".
func FormatMs(ms uint32) string {
	return fmt.Sprintf("%.2fs", float64(ms)/1000)
}
