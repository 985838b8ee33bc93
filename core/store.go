// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: OrderedStore – the key-ordered container behind Graph's node catalog.
// Policy:
//   - First write wins: Insert never overwrites.
//   - Enumeration is ascending by key, lazy and restartable.
//   - No deletion (nodes are permanent once created).
// Concurrency:
//   - None. The B-tree runs in NoLocks mode; callers serialize writers.

package core

import (
	"cmp"
	"iter"

	"github.com/tidwall/btree"
)

// storeDegree is the B-tree node fan-out.
const storeDegree = 32

// entry is one key/value slot of the B-tree.
type entry[K cmp.Ordered, V any] struct {
	key K
	val V
}

// OrderedStore maps unique, totally-ordered keys to values.
//
// Implementation:
//   - A tidwall/btree generic B-tree ordered by entry.key.
//
// Complexity:
//   - Insert/Find O(log n); All/Values O(n) over a full enumeration.
type OrderedStore[K cmp.Ordered, V any] struct {
	tree *btree.BTreeG[entry[K, V]]
}

// NewOrderedStore returns an empty store.
func NewOrderedStore[K cmp.Ordered, V any]() *OrderedStore[K, V] {
	less := func(a, b entry[K, V]) bool { return cmp.Less(a.key, b.key) }

	return &OrderedStore[K, V]{
		tree: btree.NewBTreeGOptions(less, btree.Options{Degree: storeDegree, NoLocks: true}),
	}
}

// Insert stores v under k unless k is already present.
// It reports whether the value was stored.
func (s *OrderedStore[K, V]) Insert(k K, v V) bool {
	if _, ok := s.tree.Get(entry[K, V]{key: k}); ok {
		return false // first writer wins
	}
	s.tree.Set(entry[K, V]{key: k, val: v})

	return true
}

// Find returns the value stored under k.
func (s *OrderedStore[K, V]) Find(k K) (V, bool) {
	e, ok := s.tree.Get(entry[K, V]{key: k})

	return e.val, ok
}

// Len returns the number of stored keys.
func (s *OrderedStore[K, V]) Len() int { return s.tree.Len() }

// All yields every key/value pair in ascending key order.
// Each range over the returned sequence starts a fresh scan.
func (s *OrderedStore[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		s.tree.Scan(func(e entry[K, V]) bool {
			return yield(e.key, e.val)
		})
	}
}

// Values yields the stored values in ascending key order.
func (s *OrderedStore[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		s.tree.Scan(func(e entry[K, V]) bool {
			return yield(e.val)
		})
	}
}
