// Package service runs one partition computation inside an effect scope:
// configuration comes from the binding effect and progress goes to the log
// effect, while the evaluation itself stays pure.
package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/on-the-ground/partitions/effects"
	"github.com/on-the-ground/partitions/effects/binding"
	"github.com/on-the-ground/partitions/effects/configkeys"
	"github.com/on-the-ground/partitions/effects/log"
	"github.com/on-the-ground/partitions/memo"
	"github.com/on-the-ground/partitions/partition"
)

// Cache kinds accepted under configkeys.ConfigPartitionCacheKind.
const (
	CacheMap     = "map"
	CacheSharded = "sharded"
	CacheMemDB   = "memdb"
)

const (
	DefaultStrategy  = partition.StrategyRecursive
	DefaultCacheKind = CacheMap
	DefaultShards    = 16
)

var ErrUnknownCache = errors.New("unknown cache kind")

// Result describes one finished computation.
type Result struct {
	N        int64
	Value    *big.Int
	Strategy partition.Strategy
	Cache    memo.Stats
	Span     effects.TimeSpan
}

// NewCache builds an empty cache of the given kind.
func NewCache(kind string, shards int) (partition.Cache, error) {
	switch kind {
	case CacheMap:
		return partition.NewCache(), nil
	case CacheSharded:
		return memo.NewShardedStore[int64, *big.Int](shards), nil
	case CacheMemDB:
		return memo.NewMemDBStore[int64, *big.Int]()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCache, kind)
	}
}

// Run computes p(n). ctx must carry a log handler and a binding handler;
// unbound configuration keys fall back to the defaults above.
func Run(ctx context.Context, n int64) (Result, error) {
	strategy, kind, shards, err := loadConfig(ctx)
	if err != nil {
		return Result{}, err
	}
	cache, err := NewCache(kind, shards)
	if err != nil {
		return Result{}, err
	}
	counting := memo.Counting(cache)

	log.Effect(ctx, log.LogDebug, "computing partition number", map[string]interface{}{
		"n":        n,
		"strategy": string(strategy),
		"cache":    kind,
	})

	var value *big.Int
	span := effects.Measure(func() {
		value, err = partition.Compute(counting, n, strategy)
	})
	if err != nil {
		log.Effect(ctx, log.LogError, "partition computation failed", map[string]interface{}{
			"n":     n,
			"error": err.Error(),
		})
		return Result{}, err
	}

	res := Result{
		N:        n,
		Value:    value,
		Strategy: strategy,
		Cache:    counting.Stats(),
		Span:     span,
	}
	log.Effect(ctx, log.LogInfo, "partition number computed", map[string]interface{}{
		"n":           n,
		"digits":      len(value.String()),
		"cache_size":  res.Cache.Size,
		"cache_hits":  res.Cache.Hits,
		"cache_miss":  res.Cache.Misses,
		"elapsed":     span.Duration().String(),
		"started_at":  span.Start(),
		"finished_at": span.End(),
	})
	return res, nil
}

func loadConfig(ctx context.Context) (partition.Strategy, string, int, error) {
	rawStrategy, err := binding.GetOrDefault(ctx, configkeys.ConfigPartitionStrategy, string(DefaultStrategy))
	if err != nil {
		return "", "", 0, fmt.Errorf("read %s: %w", configkeys.ConfigPartitionStrategy, err)
	}
	strategy, err := partition.ParseStrategy(rawStrategy)
	if err != nil {
		return "", "", 0, err
	}
	kind, err := binding.GetOrDefault(ctx, configkeys.ConfigPartitionCacheKind, DefaultCacheKind)
	if err != nil {
		return "", "", 0, fmt.Errorf("read %s: %w", configkeys.ConfigPartitionCacheKind, err)
	}
	shards, err := binding.GetOrDefault(ctx, configkeys.ConfigPartitionCacheShards, DefaultShards)
	if err != nil {
		return "", "", 0, fmt.Errorf("read %s: %w", configkeys.ConfigPartitionCacheShards, err)
	}
	return strategy, kind, shards, nil
}
