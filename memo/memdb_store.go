package memo

import (
	"fmt"
	"sync/atomic"

	memdb "github.com/hashicorp/go-memdb"
)

const (
	memdbTable = "memo"
	memdbIndex = "id"
)

var _ Store[int, any] = (*MemDBStore[int, any])(nil)

// MemDBStore keeps memo entries in a go-memdb table indexed by the key's
// string form. Two keys with the same string form share an entry.
// It is safe for concurrent use.
type MemDBStore[K comparable, V any] struct {
	db   *memdb.MemDB
	size atomic.Int64
}

type memdbEntry[V any] struct {
	Key   string
	Value V
}

func NewMemDBStore[K comparable, V any]() (*MemDBStore[K, V], error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			memdbTable: {
				Name: memdbTable,
				Indexes: map[string]*memdb.IndexSchema{
					memdbIndex: {
						Name:    memdbIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Key"},
					},
				},
			},
		},
	}
	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("fail to create memo table: %w", err)
	}
	return &MemDBStore[K, V]{db: db}, nil
}

func (s *MemDBStore[K, V]) Load(key K) (V, bool) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	return s.first(txn, key)
}

func (s *MemDBStore[K, V]) InsertIfAbsent(key K, value V) (V, bool) {
	txn := s.db.Txn(true)
	defer txn.Abort()

	if old, ok := s.first(txn, key); ok {
		return old, false
	}
	if err := txn.Insert(memdbTable, &memdbEntry[V]{Key: keyString(key), Value: value}); err != nil {
		// the schema is fixed, so an insert failure is a bug
		panic(fmt.Sprintf("memo: insert into memdb failed: %v", err))
	}
	txn.Commit()
	s.size.Add(1)
	return value, true
}

func (s *MemDBStore[K, V]) Len() int {
	return int(s.size.Load())
}

func (s *MemDBStore[K, V]) first(txn *memdb.Txn, key K) (V, bool) {
	var zero V
	raw, err := txn.First(memdbTable, memdbIndex, keyString(key))
	if err != nil {
		panic(fmt.Sprintf("memo: lookup in memdb failed: %v", err))
	}
	if raw == nil {
		return zero, false
	}
	entry, ok := raw.(*memdbEntry[V])
	if !ok {
		return zero, false
	}
	return entry.Value, true
}
