package memo

import "sync"

var _ Store[int, any] = (*ShardedStore[int, any])(nil)

// ShardedStore spreads keys over independently locked shards chosen by
// xxhash. It is safe for concurrent use.
type ShardedStore[K comparable, V any] struct {
	shards []*shard[K, V]
}

type shard[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

// NewShardedStore creates numShards shards, at least one.
func NewShardedStore[K comparable, V any](numShards int) *ShardedStore[K, V] {
	if numShards <= 0 {
		numShards = 1
	}
	shards := make([]*shard[K, V], numShards)
	for i := range shards {
		shards[i] = &shard[K, V]{m: make(map[K]V)}
	}
	return &ShardedStore[K, V]{shards: shards}
}

func (s *ShardedStore[K, V]) shardOf(key K) *shard[K, V] {
	if len(s.shards) == 1 {
		return s.shards[0]
	}
	return s.shards[hashKey(key)%uint64(len(s.shards))]
}

func (s *ShardedStore[K, V]) Load(key K) (V, bool) {
	sh := s.shardOf(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	v, ok := sh.m[key]
	return v, ok
}

func (s *ShardedStore[K, V]) InsertIfAbsent(key K, value V) (V, bool) {
	sh := s.shardOf(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if old, ok := sh.m[key]; ok {
		return old, false
	}
	sh.m[key] = value
	return value, true
}

func (s *ShardedStore[K, V]) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		n += len(sh.m)
		sh.mu.RUnlock()
	}
	return n
}

// NumShards reports the shard count.
func (s *ShardedStore[K, V]) NumShards() int {
	return len(s.shards)
}
