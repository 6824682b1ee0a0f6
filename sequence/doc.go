// Package sequence provides the lazy, infinite generators behind Euler's
// pentagonal-number recurrence for the partition function.
//
// Every generator is an explicit cursor object exposing Next. None of them
// can be rewound: a fresh enumeration needs a fresh instance.
//
// The generators compose bottom-up:
//
//	NaturalSequence ─┐
//	                 ├─> PentagonalGapSequence ─> PentagonalNumberSequence
//	OddSequence ─────┘
//
// SignCycle runs beside PentagonalNumberSequence and yields the sign each
// pentagonal term carries in the recurrence: +, +, -, -, +, +, ...
//
// Example:
//
//	ps, signs := sequence.NewPentagonalNumberSequence(), sequence.NewSignCycle()
//	for g := ps.Next(); g <= n; g = ps.Next() {
//	    s := signs.Next()
//	    // combine p(n-g) according to s
//	}
package sequence
