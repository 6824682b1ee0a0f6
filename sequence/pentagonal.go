package sequence

var (
	_ Generator[int64] = (*PentagonalGapSequence)(nil)
	_ Generator[int64] = (*PentagonalNumberSequence)(nil)
)

// PentagonalGapSequence emits the differences between consecutive generalized
// pentagonal numbers: 1, 3, 2, 5, 3, 7, 4, 9, ...
//
// Even phases pull from an OddSequence, odd phases from a NaturalSequence.
type PentagonalGapSequence struct {
	i       int64
	natural *NaturalSequence
	odd     *OddSequence
}

// NewPentagonalGapSequence consumes the leading 1 of its OddSequence, which
// is the first generalized pentagonal number itself rather than a gap.
func NewPentagonalGapSequence() *PentagonalGapSequence {
	odd := NewOddSequence()
	odd.Next()
	return &PentagonalGapSequence{
		i:       2,
		natural: NewNaturalSequence(),
		odd:     odd,
	}
}

func (gs *PentagonalGapSequence) Next() int64 {
	gs.i++
	if gs.i%2 == 0 {
		return gs.odd.Next()
	}
	return gs.natural.Next()
}

// PentagonalNumberSequence emits the generalized pentagonal numbers in
// increasing order: 1, 2, 5, 7, 12, 15, 22, 26, ...
//
// It is the running sum of a PentagonalGapSequence seeded with 1.
type PentagonalNumberSequence struct {
	i     int64
	value int64
	gaps  *PentagonalGapSequence
}

func NewPentagonalNumberSequence() *PentagonalNumberSequence {
	return &PentagonalNumberSequence{
		value: 1,
		gaps:  NewPentagonalGapSequence(),
	}
}

func (ps *PentagonalNumberSequence) Next() int64 {
	if ps.i == 0 {
		ps.i = 1
		return ps.value
	}
	ps.i++
	ps.value += ps.gaps.Next()
	return ps.value
}

// Term is a generalized pentagonal number paired with its sign.
type Term struct {
	Pentagonal int64
	Sign       Sign
}

// PentagonalTermsUpTo walks a fresh PentagonalNumberSequence and a fresh
// SignCycle in lockstep and returns every term whose pentagonal number does
// not exceed n. It returns nil for n < 1.
func PentagonalTermsUpTo(n int64) []Term {
	var terms []Term
	ps, signs := NewPentagonalNumberSequence(), NewSignCycle()
	for g := ps.Next(); g <= n; g = ps.Next() {
		terms = append(terms, Term{Pentagonal: g, Sign: signs.Next()})
	}
	return terms
}
