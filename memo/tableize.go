package memo

import "sync/atomic"

// Tableize memoizes an open-recursive pure function over store.
//
// openFn receives the memoized function itself as self and must recurse
// only through it. Every computed value goes into store with
// InsertIfAbsent; a key already in the store is answered without calling
// openFn.
//
//	var fib func(int) int
//	fib = memo.Tableize[int, int](memo.NewMapStore[int, int](0), func(self func(int) int, n int) int {
//	    if n <= 1 {
//	        return n
//	    }
//	    return self(n-1) + self(n-2)
//	})
func Tableize[K comparable, V any](
	store Store[K, V],
	openFn func(self func(K) V, key K) V,
) func(K) V {
	if store == nil {
		panic("Tableize: nil store")
	}
	var tableized func(K) V
	tableized = func(key K) V {
		if v, ok := store.Load(key); ok {
			return v
		}
		actual, _ := store.InsertIfAbsent(key, openFn(tableized, key))
		return actual
	}
	return tableized
}

// CountingStore wraps a Store and counts lookups that hit and miss.
type CountingStore[K comparable, V any] struct {
	Store[K, V]
	hits   atomic.Uint64
	misses atomic.Uint64
}

func Counting[K comparable, V any](store Store[K, V]) *CountingStore[K, V] {
	return &CountingStore[K, V]{Store: store}
}

func (c *CountingStore[K, V]) Load(key K) (V, bool) {
	v, ok := c.Store.Load(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Stats is a snapshot of a CountingStore's counters.
type Stats struct {
	Hits   uint64
	Misses uint64
	Size   int
}

func (c *CountingStore[K, V]) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.Store.Len(),
	}
}
