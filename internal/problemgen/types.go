package problemgen

import (
	"fmt"
	"strings"
)

// Operation is one of the four arithmetic operations.
type Operation int

const (
	OpAdd Operation = iota
	OpSubtract
	OpMultiply
	OpDivide
)

// Operations lists every operation in cycling order.
var Operations = []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}

// Symbol returns the operator as shown in a problem.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "x"
	case OpDivide:
		return "/"
	}
	return "?"
}

// Label returns the long operation name.
func (o Operation) Label() string {
	switch o {
	case OpAdd:
		return "Addition"
	case OpSubtract:
		return "Subtraction"
	case OpMultiply:
		return "Multiplication"
	case OpDivide:
		return "Division"
	}
	return "Unknown"
}

func (o Operation) String() string {
	return o.Label()
}

// Difficulty selects the inclusive operand range.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists every difficulty in cycling order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Range returns the inclusive operand bounds.
func (d Difficulty) Range() (min, max uint32) {
	switch d {
	case Medium:
		return 2, 19
	case Hard:
		return 2, 49
	default:
		return 1, 9
	}
}

// Key is the stable identifier used by the best-score store.
func (d Difficulty) Key() string {
	switch d {
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "easy"
	}
}

// Label returns the menu text, including the operand range.
func (d Difficulty) Label() string {
	min, max := d.Range()
	switch d {
	case Medium:
		return fmt.Sprintf("Medium (%d-%d)", min, max)
	case Hard:
		return fmt.Sprintf("Hard (%d-%d)", min, max)
	default:
		return fmt.Sprintf("Easy (%d-%d)", min, max)
	}
}

// Next returns the following difficulty, wrapping Hard back to Easy.
func (d Difficulty) Next() Difficulty {
	return Difficulties[(int(d)+1)%len(Difficulties)]
}

// ParseDifficulty maps a store key back to a Difficulty.
func ParseDifficulty(key string) (Difficulty, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, d := range Difficulties {
		if d.Key() == key {
			return d, nil
		}
	}
	return Easy, fmt.Errorf("unknown difficulty %q", key)
}

// OpMode is the operation selection for a whole session: a single
// operation, or a random one per problem.
type OpMode struct {
	Mixed bool
	Op    Operation
}

// Single returns the mode that always uses op.
func Single(op Operation) OpMode {
	return OpMode{Op: op}
}

// MixedMode returns the mode that picks an operation per problem.
func MixedMode() OpMode {
	return OpMode{Mixed: true}
}

// ParseOpMode maps a command-line name to a mode. It accepts the long
// names, their first three letters, the operator symbols and "mixed".
func ParseOpMode(s string) (OpMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "addition", "+":
		return Single(OpAdd), nil
	case "sub", "subtract", "subtraction", "-":
		return Single(OpSubtract), nil
	case "mul", "multiply", "multiplication", "x", "*":
		return Single(OpMultiply), nil
	case "div", "divide", "division", "/":
		return Single(OpDivide), nil
	case "mix", "mixed":
		return MixedMode(), nil
	}
	return OpMode{}, fmt.Errorf("unknown operation %q", s)
}

// Label returns the menu text.
func (m OpMode) Label() string {
	if m.Mixed {
		return "Mixed"
	}
	return m.Op.Label()
}

// Next cycles Add, Subtract, Multiply, Divide, Mixed and back to Add.
func (m OpMode) Next() OpMode {
	if m.Mixed {
		return Single(OpAdd)
	}
	if m.Op == OpDivide {
		return MixedMode()
	}
	return Single(m.Op + 1)
}

// Problem is a single arithmetic problem with its exact answer.
type Problem struct {
	A      int32
	B      int32
	Op     Operation
	Answer int32
}

// Text renders the problem as shown to the player, e.g. "7 x 8 = ?".
func (p Problem) Text() string {
	return fmt.Sprintf("%d %s %d = ?", p.A, p.Op.Symbol(), p.B)
}

// Solution renders the problem with its answer filled in.
func (p Problem) Solution() string {
	return fmt.Sprintf("%d %s %d = %d", p.A, p.Op.Symbol(), p.B, p.Answer)
}

// Check reports whether answer is the correct result.
func (p Problem) Check(answer int32) bool {
	return answer == p.Answer
}
