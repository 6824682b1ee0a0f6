package sequence

import (
	"fmt"
	"math/big"
)

// Sign is the sign a pentagonal term carries in the partition recurrence.
type Sign int

const (
	// Add marks a term that is added to the running total.
	Add Sign = iota
	// Subtract marks a term that is subtracted from the running total.
	Subtract
)

func (s Sign) String() string {
	switch s {
	case Add:
		return "+"
	case Subtract:
		return "-"
	default:
		return fmt.Sprintf("Sign(%d)", int(s))
	}
}

// Apply adds term to acc or subtracts it from acc, in place, and returns acc.
func (s Sign) Apply(acc, term *big.Int) *big.Int {
	if s == Subtract {
		return acc.Sub(acc, term)
	}
	return acc.Add(acc, term)
}

var _ Generator[Sign] = (*SignCycle)(nil)

// SignCycle emits Add, Add, Subtract, Subtract, Add, Add, ... forever.
//
// It remembers the previous and the current sign. Each step flips exactly one
// of the two, so every sign is emitted exactly twice in a row.
type SignCycle struct {
	previous Sign
	current  Sign
}

// NewSignCycle starts the cycle at (Subtract, Subtract) so that the first two
// emissions are Add, Add.
func NewSignCycle() *SignCycle {
	return &SignCycle{previous: Subtract, current: Subtract}
}

// Next advances the cycle by one step.
func (sc *SignCycle) Next() Sign {
	switch {
	case sc.previous == Add && sc.current == Add:
		sc.current = Subtract
		return Subtract
	case sc.previous == Add && sc.current == Subtract:
		sc.previous = Subtract
		return Subtract
	case sc.previous == Subtract && sc.current == Subtract:
		sc.current = Add
		return Add
	default: // (Subtract, Add)
		sc.previous = Add
		return Add
	}
}
