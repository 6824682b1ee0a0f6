// Package memo provides write-once memo tables for pure functions.
//
// A memo table answers one question: has f(k) already been computed? If so
// the stored value is returned and f is never called again for k. Values are
// inserted with insert-if-absent semantics, so the first value written for a
// key wins and a key never maps to two different results.
//
// Stores:
//   - MapStore: plain map, single owner, no locking.
//   - ShardedStore: xxhash-partitioned shards behind RWMutexes, safe for
//     concurrent use.
//   - MemDBStore: go-memdb table with transactional insert-if-absent.
//
// Tableize turns an open-recursive pure function into a memoized one backed
// by any Store. Counting wraps a Store and tallies hits and misses.
//
// Nothing is ever evicted. Do not tableize impure functions.
package memo
