package session

import (
	"testing"
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/store"
)

func addProblem(a, b int32) problemgen.Problem {
	return problemgen.Problem{A: a, B: b, Op: problemgen.OpAdd, Answer: a + b}
}

func testSession() *Session {
	return New("test-session-id", problemgen.Single(problemgen.OpAdd), problemgen.Easy)
}

func TestSubmit_StreakRules(t *testing.T) {
	s := testSession()
	p := addProblem(2, 3)

	steps := []struct {
		answer     int32
		wantStreak uint32
		wantBest   uint32
	}{
		{5, 1, 1},
		{5, 2, 2},
		{4, 0, 2},
		{5, 1, 2},
		{5, 2, 2},
		{5, 3, 3},
		{problemgen.WrongAnswer, 0, 3},
	}

	for i, st := range steps {
		s.Submit(p, st.answer, time.Millisecond)
		if s.Streak != st.wantStreak {
			t.Errorf("step %d: Streak = %d, want %d", i, s.Streak, st.wantStreak)
		}
		if s.BestStreak != st.wantBest {
			t.Errorf("step %d: BestStreak = %d, want %d", i, s.BestStreak, st.wantBest)
		}
	}
	if s.Correct != 5 {
		t.Errorf("Correct = %d, want 5", s.Correct)
	}
	if s.Index() != len(steps) {
		t.Errorf("Index = %d, want %d", s.Index(), len(steps))
	}
}

func TestSubmit_RecordsTurn(t *testing.T) {
	s := testSession()
	p := addProblem(4, 4)

	turn := s.Submit(p, 7, 1200*time.Millisecond)

	if turn.Correct {
		t.Error("expected 4 + 4 = 7 to be wrong")
	}
	if turn.UserAnswer != 7 {
		t.Errorf("UserAnswer = %d, want 7", turn.UserAnswer)
	}
	if len(s.History) != 1 || s.History[0] != turn {
		t.Errorf("History = %+v, want single turn %+v", s.History, turn)
	}
	if s.Cumulative != 1200*time.Millisecond {
		t.Errorf("Cumulative = %v, want 1.2s", s.Cumulative)
	}
}

func TestDone(t *testing.T) {
	s := testSession()
	for i := 0; i < Length; i++ {
		if s.Done() {
			t.Fatalf("Done after %d turns", i)
		}
		s.Submit(addProblem(1, 1), 2, 0)
	}
	if !s.Done() {
		t.Error("expected Done after 10 turns")
	}
}

func TestAvgTimeMs(t *testing.T) {
	tests := []struct {
		cumulative time.Duration
		completed  int
		want       uint32
	}{
		{0, 0, 0},
		{5 * time.Second, 0, 0},
		{10 * time.Second, 10, 1000},
		{1999 * time.Millisecond, 2, 999},
		{1500 * time.Microsecond, 1, 1},
	}
	for _, tt := range tests {
		if got := AvgTimeMs(tt.cumulative, tt.completed); got != tt.want {
			t.Errorf("AvgTimeMs(%v, %d) = %d, want %d", tt.cumulative, tt.completed, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := testSession()
	for i := 0; i < Length; i++ {
		s.Submit(addProblem(1, 2), 3, 500*time.Millisecond)
	}

	sum := s.Summarize()
	if sum.Correct != 10 || sum.Total != 10 || sum.BestStreak != 10 {
		t.Errorf("summary = %+v, want 10/10 streak 10", sum)
	}
	if sum.AvgMs != 500 {
		t.Errorf("AvgMs = %d, want 500", sum.AvgMs)
	}
	if sum.Percent() != 100 {
		t.Errorf("Percent = %d, want 100", sum.Percent())
	}
	if len(sum.Review) != Length {
		t.Errorf("Review has %d turns, want %d", len(sum.Review), Length)
	}

	want := store.BestStats{Streak: 10, Correct: 10, Total: 10, AvgMs: 500}
	if sum.Stats() != want {
		t.Errorf("Stats = %+v, want %+v", sum.Stats(), want)
	}
}

func TestSummary_PercentEmpty(t *testing.T) {
	if got := (Summary{}).Percent(); got != 0 {
		t.Errorf("Percent = %d, want 0", got)
	}
	if got := (Summary{Correct: 7, Total: 10}).Percent(); got != 70 {
		t.Errorf("Percent = %d, want 70", got)
	}
}

func TestIsNewBest(t *testing.T) {
	prior := &store.BestStats{Streak: 5, Correct: 8, Total: 10, AvgMs: 1000}

	tests := []struct {
		name string
		prev *store.BestStats
		cand store.BestStats
		want bool
	}{
		{"no prior record", nil, store.BestStats{}, true},
		{"more correct", prior, store.BestStats{Streak: 1, Correct: 9, AvgMs: 9000}, true},
		{"same correct faster", prior, store.BestStats{Streak: 5, Correct: 8, AvgMs: 999}, true},
		{"same correct same avg", prior, store.BestStats{Streak: 5, Correct: 8, AvgMs: 1000}, false},
		{"same correct slower", prior, store.BestStats{Streak: 5, Correct: 8, AvgMs: 1001}, false},
		{"fewer correct", prior, store.BestStats{Streak: 4, Correct: 7, AvgMs: 100}, false},
		{"streak alone overwrites", prior, store.BestStats{Streak: 6, Correct: 3, Total: 10, AvgMs: 5000}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNewBest(tt.prev, tt.cand); got != tt.want {
				t.Errorf("IsNewBest(%+v, %+v) = %v, want %v", tt.prev, tt.cand, got, tt.want)
			}
		})
	}
}

func TestFormatMs(t *testing.T) {
	tests := map[uint32]string{
		0:    "0.00s",
		1250: "1.25s",
		999:  "1.00s",
		5000: "5.00s",
	}
	for in, want := range tests {
		if got := FormatMs(in); got != want {
			t.Errorf("FormatMs(%d) = %q, want %q", in, got, want)
		}
	}
}
