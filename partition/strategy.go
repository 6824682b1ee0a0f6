package partition

import (
	"errors"
	"fmt"
	"math/big"
)

// Strategy selects how p(n) is evaluated.
type Strategy string

const (
	// StrategyRecursive evaluates top-down with memoized recursion.
	StrategyRecursive Strategy = "recursive"
	// StrategyIterative fills the cache bottom-up.
	StrategyIterative Strategy = "iterative"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(s); st {
	case StrategyRecursive, StrategyIterative:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Compute evaluates p(n) with the given strategy.
func Compute(cache Cache, n int64, strategy Strategy) (*big.Int, error) {
	switch strategy {
	case StrategyRecursive:
		return Evaluate(cache, n)
	case StrategyIterative:
		return EvaluateIterative(cache, n)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}
