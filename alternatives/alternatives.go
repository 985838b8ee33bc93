// Package alternatives finds a handful of distinct, loop-free routes between
// two nodes: the shortest one plus detours around each of its connections.
//
// Method (edge elimination):
//
//  1. Compute the base shortest route under the caller's exclusions.
//  2. For every connection on the base route, in travel order, close it on top
//     of the caller's exclusions and search again.
//  3. Keep each found route that is loop-free and not already collected
//     (in either travel direction), until the limit is reached.
//  4. Sort ascending by length; equal lengths by node-key sequence.
//
// This is cheaper than full k-shortest-path enumeration and does not promise the
// true k-th shortest route; it yields "some other reasonable ways".
//
// Complexity: O(L · (V + E) log V) where L is the base route's hop count.
package alternatives

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dijkstra"
)

// Alternatives returns up to Limit routes from start to end, shortest first.
//
// The base shortest route is always part of the result. An empty result
// (and nil error) means start and end are not connected under the exclusions.
// Errors are ErrBadLimit or whatever dijkstra.Dijkstra reports.
func Alternatives[K cmp.Ordered, V, E, W any](g *core.Graph[K, V, E, W], start, end K, opts ...Option[K]) ([]Route[K, W], error) {
	cfg := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	base, err := shortest(g, start, end, cfg.Exclusions)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return []Route[K, W]{}, nil
	}

	routes := []Route[K, W]{*base}
	for i := 1; i < len(base.Path) && len(routes) < cfg.Limit; i++ {
		closed := cfg.Exclusions.With(base.Path[i-1], base.Path[i])
		detour, err := shortest(g, start, end, closed)
		if err != nil {
			return nil, err
		}
		if detour == nil || !loopFree(detour.Path) || seen(routes, detour.Path) {
			continue
		}
		routes = append(routes, *detour)
	}

	alg := g.Algebra()
	slices.SortStableFunc(routes, func(a, b Route[K, W]) int {
		if c := alg.Compare(a.Length, b.Length); c != 0 {
			return c
		}

		return slices.Compare(a.Path, b.Path)
	})

	return routes, nil
}

// shortest runs one search; a nil route means no path.
func shortest[K cmp.Ordered, V, E, W any](g *core.Graph[K, V, E, W], start, end K, closed *core.ExclusionSet[K]) (*Route[K, W], error) {
	res, err := dijkstra.Dijkstra(g, start, end, dijkstra.WithExclusions(closed))
	if err != nil {
		return nil, fmt.Errorf("alternatives: %w", err)
	}
	path, ok := res.Path()
	if !ok {
		return nil, nil
	}
	length, _ := res.Length()

	return &Route[K, W]{Path: path, Length: length}, nil
}

// loopFree reports whether no node repeats along path.
func loopFree[K cmp.Ordered](path []K) bool {
	visited := make(map[K]struct{}, len(path))
	for _, k := range path {
		if _, dup := visited[k]; dup {
			return false
		}
		visited[k] = struct{}{}
	}

	return true
}

// seen reports whether path equals a collected route in either direction.
func seen[K cmp.Ordered, W any](routes []Route[K, W], path []K) bool {
	for _, r := range routes {
		if slices.Equal(r.Path, path) || reversedEqual(r.Path, path) {
			return true
		}
	}

	return false
}

func reversedEqual[K cmp.Ordered](a, b []K) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[len(b)-1-i] {
			return false
		}
	}

	return true
}
