package memo_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/on-the-ground/partitions/memo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]memo.Store[int64, string] {
	t.Helper()
	mdb, err := memo.NewMemDBStore[int64, string]()
	require.NoError(t, err)
	return map[string]memo.Store[int64, string]{
		"map":     memo.NewMapStore[int64, string](4),
		"sharded": memo.NewShardedStore[int64, string](8),
		"memdb":   mdb,
	}
}

func TestStore_BasicUsage(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok := store.Load(1)
			assert.False(t, ok)

			actual, inserted := store.InsertIfAbsent(1, "one")
			assert.True(t, inserted)
			assert.Equal(t, "one", actual)

			v, ok := store.Load(1)
			assert.True(t, ok)
			assert.Equal(t, "one", v)

			// wrong key
			_, ok = store.Load(2)
			assert.False(t, ok)
			assert.Equal(t, 1, store.Len())
		})
	}
}

func TestStore_FirstWriteWins(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			store.InsertIfAbsent(7, "first")

			actual, inserted := store.InsertIfAbsent(7, "second")
			assert.False(t, inserted)
			assert.Equal(t, "first", actual)

			v, _ := store.Load(7)
			assert.Equal(t, "first", v)
			assert.Equal(t, 1, store.Len())
		})
	}
}

func TestConcurrentStores_InsertOnce(t *testing.T) {
	mdb, err := memo.NewMemDBStore[int64, string]()
	require.NoError(t, err)

	for name, store := range map[string]memo.Store[int64, string]{
		"sharded": memo.NewShardedStore[int64, string](4),
		"memdb":   mdb,
	} {
		t.Run(name, func(t *testing.T) {
			const writers = 16
			var wg sync.WaitGroup
			var mu sync.Mutex
			winners := 0
			for w := range writers {
				wg.Add(1)
				go func(w int) {
					defer wg.Done()
					for k := int64(0); k < 50; k++ {
						if _, inserted := store.InsertIfAbsent(k, fmt.Sprintf("w%d", w)); inserted {
							mu.Lock()
							winners++
							mu.Unlock()
						}
					}
				}(w)
			}
			wg.Wait()

			assert.Equal(t, 50, winners)
			assert.Equal(t, 50, store.Len())
		})
	}
}

func TestShardedStore_ClampsShardCount(t *testing.T) {
	s := memo.NewShardedStore[string, int](0)
	assert.Equal(t, 1, s.NumShards())

	s.InsertIfAbsent("a", 1)
	v, ok := s.Load("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

type point struct{ x, y int }

func (p point) String() string { return fmt.Sprintf("(%d,%d)", p.x, p.y) }

func TestMemDBStore_StringerKeys(t *testing.T) {
	s, err := memo.NewMemDBStore[point, int]()
	require.NoError(t, err)

	s.InsertIfAbsent(point{1, 2}, 3)
	v, ok := s.Load(point{1, 2})
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = s.Load(point{2, 1})
	assert.False(t, ok)
}
