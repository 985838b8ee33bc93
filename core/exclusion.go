// SPDX-License-Identifier: MIT
//
// File: exclusion.go
// Role: ExclusionSet – caller-owned set of impassable connections, threaded through searches.
// Policy:
//   - Pairs are unordered: (a,b) and (b,a) are the same member.
//   - The graph never stores or retains an ExclusionSet.
//   - A nil *ExclusionSet behaves as the empty set for queries.

package core

import (
	"cmp"
	"slices"
)

// Pair is an unordered pair of node keys stored with A <= B.
type Pair[K cmp.Ordered] struct {
	A, B K
}

// MakePair returns the normalized pair for a and b.
func MakePair[K cmp.Ordered](a, b K) Pair[K] {
	if cmp.Less(b, a) {
		a, b = b, a
	}

	return Pair[K]{A: a, B: b}
}

// ExclusionSet holds connections that searches must not traverse.
type ExclusionSet[K cmp.Ordered] struct {
	pairs map[Pair[K]]struct{}
}

// NewExclusionSet returns a set containing the given pairs (normalized).
func NewExclusionSet[K cmp.Ordered](pairs ...Pair[K]) *ExclusionSet[K] {
	s := &ExclusionSet[K]{pairs: make(map[Pair[K]]struct{}, len(pairs))}
	for _, p := range pairs {
		s.Add(p.A, p.B)
	}

	return s
}

// Add marks the a↔b connection as impassable. It reports whether the pair was new.
func (s *ExclusionSet[K]) Add(a, b K) bool {
	p := MakePair(a, b)
	if _, ok := s.pairs[p]; ok {
		return false
	}
	if s.pairs == nil {
		s.pairs = make(map[Pair[K]]struct{})
	}
	s.pairs[p] = struct{}{}

	return true
}

// Remove clears the a↔b pair. It reports whether the pair was present.
func (s *ExclusionSet[K]) Remove(a, b K) bool {
	p := MakePair(a, b)
	if _, ok := s.pairs[p]; !ok {
		return false
	}
	delete(s.pairs, p)

	return true
}

// Contains reports whether a↔b is excluded, regardless of argument order.
func (s *ExclusionSet[K]) Contains(a, b K) bool {
	if s == nil || len(s.pairs) == 0 {
		return false
	}
	_, ok := s.pairs[MakePair(a, b)]

	return ok
}

// Len returns the number of excluded pairs.
func (s *ExclusionSet[K]) Len() int {
	if s == nil {
		return 0
	}

	return len(s.pairs)
}

// Pairs returns the members sorted by (A, B).
func (s *ExclusionSet[K]) Pairs() []Pair[K] {
	if s == nil {
		return nil
	}
	out := make([]Pair[K], 0, len(s.pairs))
	for p := range s.pairs {
		out = append(out, p)
	}
	slices.SortFunc(out, func(x, y Pair[K]) int {
		if c := cmp.Compare(x.A, y.A); c != 0 {
			return c
		}

		return cmp.Compare(x.B, y.B)
	})

	return out
}

// Clone returns an independent copy. Cloning nil yields an empty set.
func (s *ExclusionSet[K]) Clone() *ExclusionSet[K] {
	out := &ExclusionSet[K]{pairs: make(map[Pair[K]]struct{}, s.Len()+1)}
	if s != nil {
		for p := range s.pairs {
			out.pairs[p] = struct{}{}
		}
	}

	return out
}

// With returns a copy of s that additionally excludes a↔b. s itself is unchanged.
func (s *ExclusionSet[K]) With(a, b K) *ExclusionSet[K] {
	out := s.Clone()
	out.Add(a, b)

	return out
}
