package problemgen

import "fmt"

// ValidationError describes a problem that breaks a generation invariant.
type ValidationError struct {
	Check   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("check %q: %s", e.Check, e.Message)
}

// Validate recomputes the answer and checks the operand invariants for d.
func Validate(p Problem, d Difficulty) error {
	min, max := d.Range()
	lo, hi := int32(min), int32(max)

	switch p.Op {
	case OpAdd:
		if p.A+p.B != p.Answer {
			return mathErr(p)
		}
	case OpSubtract:
		if p.A < p.B {
			return &ValidationError{Check: "non-negative", Message: fmt.Sprintf("%d < %d", p.A, p.B)}
		}
		if p.A-p.B != p.Answer {
			return mathErr(p)
		}
	case OpMultiply:
		if p.A*p.B != p.Answer {
			return mathErr(p)
		}
	case OpDivide:
		if p.B == 0 || p.A%p.B != 0 {
			return &ValidationError{Check: "exact-division", Message: fmt.Sprintf("%d is not divisible by %d", p.A, p.B)}
		}
		if p.A/p.B != p.Answer {
			return mathErr(p)
		}
		// The dividend is derived, so only divisor and quotient are range-checked.
		if !inRange(p.B, lo, hi) || !inRange(p.Answer, lo, hi) {
			return rangeErr(p, d)
		}
		return nil
	default:
		return &ValidationError{Check: "operation", Message: fmt.Sprintf("unknown operation %d", p.Op)}
	}

	if !inRange(p.A, lo, hi) || !inRange(p.B, lo, hi) {
		return rangeErr(p, d)
	}
	return nil
}

func inRange(v, lo, hi int32) bool {
	return v >= lo && v <= hi
}

func mathErr(p Problem) error {
	return &ValidationError{Check: "math", Message: fmt.Sprintf("%s is wrong", p.Solution())}
}

func rangeErr(p Problem, d Difficulty) error {
	return &ValidationError{Check: "range", Message: fmt.Sprintf("%s outside %s", p.Text(), d.Label())}
}
