package memo

var _ Store[int, any] = (*MapStore[int, any])(nil)

// MapStore is a Store over a plain map. It must have a single owner.
type MapStore[K comparable, V any] struct {
	m map[K]V
}

func NewMapStore[K comparable, V any](sizeHint int) *MapStore[K, V] {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &MapStore[K, V]{m: make(map[K]V, sizeHint)}
}

func (s *MapStore[K, V]) Load(key K) (V, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *MapStore[K, V]) InsertIfAbsent(key K, value V) (V, bool) {
	if old, ok := s.m[key]; ok {
		return old, false
	}
	s.m[key] = value
	return value, true
}

func (s *MapStore[K, V]) Len() int {
	return len(s.m)
}
