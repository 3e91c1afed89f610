package problemgen

import "github.com/abhisek/mathdrill/internal/rng"

// Generator produces arithmetic problems.
type Generator interface {
	// Generate produces a problem for a fixed operation.
	Generate(op Operation, d Difficulty) Problem

	// GenerateMixed produces a problem for a uniformly chosen operation.
	GenerateMixed(d Difficulty) Problem
}

// ForMode dispatches to Generate or GenerateMixed depending on mode.
func ForMode(g Generator, mode OpMode, d Difficulty) Problem {
	if mode.Mixed {
		return g.GenerateMixed(d)
	}
	return g.Generate(mode.Op, d)
}

// Arithmetic draws operands from a bounded random source.
type Arithmetic struct {
	rand *rng.Rand
}

var _ Generator = (*Arithmetic)(nil)

// New creates an Arithmetic generator over r.
func New(r *rng.Rand) *Arithmetic {
	return &Arithmetic{rand: r}
}

func (g *Arithmetic) draw(d Difficulty) int32 {
	min, max := d.Range()
	return int32(g.rand.UniformInclusive(min, max))
}

// Generate produces a problem for op. Subtraction never goes negative, and
// division is built from answer and divisor so it always divides evenly.
func (g *Arithmetic) Generate(op Operation, d Difficulty) Problem {
	switch op {
	case OpSubtract:
		a, b := g.draw(d), g.draw(d)
		if b > a {
			a, b = b, a
		}
		return Problem{A: a, B: b, Op: op, Answer: a - b}
	case OpMultiply:
		a, b := g.draw(d), g.draw(d)
		return Problem{A: a, B: b, Op: op, Answer: a * b}
	case OpDivide:
		answer, b := g.draw(d), g.draw(d)
		return Problem{A: answer * b, B: b, Op: op, Answer: answer}
	default:
		a, b := g.draw(d), g.draw(d)
		return Problem{A: a, B: b, Op: OpAdd, Answer: a + b}
	}
}

// GenerateMixed picks one of the four operations uniformly.
func (g *Arithmetic) GenerateMixed(d Difficulty) Problem {
	idx := g.rand.Uniform(uint32(len(Operations)))
	return g.Generate(Operations[idx], d)
}
