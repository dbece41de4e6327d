package overlay

import (
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// orderedMap is an insertion-ordered map. Re-putting an existing key keeps
// its original position.
type orderedMap[K comparable, V any] struct {
	m *linkedhashmap.Map
}

func newOrderedMap[K comparable, V any]() *orderedMap[K, V] {
	return &orderedMap[K, V]{m: linkedhashmap.New()}
}

func (o *orderedMap[K, V]) Put(key K, value V) {
	o.m.Put(key, value)
}

func (o *orderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := o.m.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// Remove deletes key and reports whether it was present.
func (o *orderedMap[K, V]) Remove(key K) bool {
	if _, ok := o.m.Get(key); !ok {
		return false
	}
	o.m.Remove(key)
	return true
}

func (o *orderedMap[K, V]) Len() int {
	return o.m.Size()
}

// All iterates entries in insertion order. The map must not be modified
// during iteration.
func (o *orderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := o.m.Iterator()
		for it.Next() {
			if !yield(it.Key().(K), it.Value().(V)) {
				return
			}
		}
	}
}
