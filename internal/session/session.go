// Package session keeps the score for one drill run: turns, streaks and
// timing, and decides whether the finished run beats the stored best.
package session

import (
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

// Length is the fixed number of problems in a session.
const Length = 10

// Turn is one completed problem-answer pair.
type Turn struct {
	Problem    problemgen.Problem
	UserAnswer int32
	Correct    bool
	Elapsed    time.Duration
}

// Session accumulates the results of an active drill run.
type Session struct {
	// ID correlates log lines for a single run.
	ID string

	Mode       problemgen.OpMode
	Difficulty problemgen.Difficulty

	Correct    uint32
	Streak     uint32
	BestStreak uint32

	// Cumulative is the summed answer time over completed turns.
	Cumulative time.Duration

	History []Turn
}

// New starts an empty session.
func New(id string, mode problemgen.OpMode, d problemgen.Difficulty) *Session {
	return &Session{
		ID:         id,
		Mode:       mode,
		Difficulty: d,
		History:    make([]Turn, 0, Length),
	}
}

// Index is the number of completed problems, which is also the 0-based
// index of the problem being answered.
func (s *Session) Index() int {
	return len(s.History)
}

// Done reports whether all problems have been answered.
func (s *Session) Done() bool {
	return len(s.History) >= Length
}

// Submit scores answer against p and appends the turn to the history.
func (s *Session) Submit(p problemgen.Problem, answer int32, elapsed time.Duration) Turn {
	if elapsed < 0 {
		elapsed = 0
	}
	turn := Turn{
		Problem:    p,
		UserAnswer: answer,
		Correct:    p.Check(answer),
		Elapsed:    elapsed,
	}

	if turn.Correct {
		s.Correct++
		s.Streak++
		if s.Streak > s.BestStreak {
			s.BestStreak = s.Streak
		}
	} else {
		s.Streak = 0
	}

	s.Cumulative += elapsed
	s.History = append(s.History, turn)
	return turn
}
