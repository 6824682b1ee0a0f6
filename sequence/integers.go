package sequence

var (
	_ Generator[int64] = (*NaturalSequence)(nil)
	_ Generator[int64] = (*OddSequence)(nil)
)

// NaturalSequence emits 1, 2, 3, ...
type NaturalSequence struct {
	i int64
}

func NewNaturalSequence() *NaturalSequence {
	return &NaturalSequence{}
}

func (ns *NaturalSequence) Next() int64 {
	ns.i++
	return ns.i
}

// OddSequence emits 1, 3, 5, ...
//
// The counter starts at 1. The first two calls are special-cased only to
// seed it; from the third call on it moves in steps of two.
type OddSequence struct {
	i int64
}

func NewOddSequence() *OddSequence {
	return &OddSequence{i: 1}
}

func (o *OddSequence) Next() int64 {
	switch o.i {
	case 1:
		o.i++
		return 1
	case 2:
		o.i++
		return o.i
	default:
		o.i += 2
		return o.i
	}
}
