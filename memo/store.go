package memo

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Store is a write-once key/value table.
type Store[K comparable, V any] interface {
	// Load returns the value stored for key, if any.
	Load(key K) (value V, ok bool)
	// InsertIfAbsent stores value under key unless key is already present.
	// It returns the value that ends up stored and whether this call wrote it.
	InsertIfAbsent(key K, value V) (actual V, inserted bool)
	// Len reports the number of stored keys.
	Len() int
}

// keyString renders a key for stores that index by string.
// Stringers are rendered through String, everything else through %v.
func keyString(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case fmt.Stringer:
		return k.String()
	default:
		return fmt.Sprintf("%v", k)
	}
}

func hashKey(key any) uint64 {
	var buf [8]byte
	switch k := key.(type) {
	case int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
		return xxhash.Sum64(buf[:])
	case int:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
		return xxhash.Sum64(buf[:])
	case uint64:
		binary.LittleEndian.PutUint64(buf[:], k)
		return xxhash.Sum64(buf[:])
	default:
		return xxhash.Sum64String(keyString(key))
	}
}
