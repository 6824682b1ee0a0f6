package partition

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/on-the-ground/partitions/memo"
	"github.com/on-the-ground/partitions/sequence"
)

// Cache maps n to p(n). Stored values must not be mutated.
type Cache = memo.Store[int64, *big.Int]

// ErrNegative is returned for n < 0, where p is not defined.
var ErrNegative = errors.New("n must be non-negative")

// NewCache returns an empty single-owner cache.
func NewCache() Cache {
	return memo.NewMapStore[int64, *big.Int](0)
}

// Evaluate returns p(n), recursing top-down through cache.
//
// A cached n is answered without any recursive call. Otherwise the
// pentagonal numbers g ≤ n are walked in lockstep with a SignCycle and
// each p(n−g) is added or subtracted. Recursion depth is bounded by n.
// The returned value is a copy the caller may modify.
func Evaluate(cache Cache, n int64) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegative, n)
	}
	p := memo.Tableize(cache, recurrence)
	return new(big.Int).Set(p(n)), nil
}

func recurrence(p func(int64) *big.Int, n int64) *big.Int {
	if n == 0 {
		return big.NewInt(1)
	}
	total := new(big.Int)
	ps, signs := sequence.NewPentagonalNumberSequence(), sequence.NewSignCycle()
	for g := ps.Next(); g <= n; g = ps.Next() {
		signs.Next().Apply(total, p(n-g))
	}
	return total
}

// EvaluateIterative returns p(n) by filling cache bottom-up for 0..n.
//
// Keys already present are kept as they are. The pentagonal terms are
// generated once for n and reused for every k, and the stack depth stays
// constant. The result equals Evaluate's.
func EvaluateIterative(cache Cache, n int64) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegative, n)
	}
	if v, ok := cache.Load(n); ok {
		return new(big.Int).Set(v), nil
	}

	terms := sequence.PentagonalTermsUpTo(n)
	var last *big.Int
	for k := int64(0); k <= n; k++ {
		if v, ok := cache.Load(k); ok {
			last = v
			continue
		}
		last, _ = cache.InsertIfAbsent(k, sumTerms(cache, terms, k))
	}
	return new(big.Int).Set(last), nil
}

// sumTerms combines p(k−g) over the terms with g ≤ k. Every p(j) for j < k
// must already be cached.
func sumTerms(cache Cache, terms []sequence.Term, k int64) *big.Int {
	if k == 0 {
		return big.NewInt(1)
	}
	total := new(big.Int)
	for _, t := range terms {
		if t.Pentagonal > k {
			break
		}
		prev, ok := cache.Load(k - t.Pentagonal)
		if !ok {
			panic(fmt.Sprintf("partition: p(%d) missing while computing p(%d)", k-t.Pentagonal, k))
		}
		t.Sign.Apply(total, prev)
	}
	return total
}
