// Package dijkstra defines result types and configuration options
// for the single-source, single-target shortest-path search.
//
// Options:
//
//	– WithExclusions: connections that must not be traversed during this call.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrNilAlgebra     if the graph carries no weight algebra.
//	– ErrNegativeWeight if an edge weight orders below the algebra's zero.
//
// An unknown source, unknown target or disconnected pair is NOT an error:
// the Result simply reports no path.
package dijkstra

import (
	"cmp"
	"errors"

	"github.com/katalvlaran/roadnet/core"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilAlgebra indicates that the graph was constructed without a weight algebra.
	ErrNilAlgebra = errors.New("dijkstra: graph has no weight algebra")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	// On an undirected graph such an edge is a negative cycle.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures one search.
//
// Exclusions – caller-owned set of impassable connections; nil means none.
type Options[K cmp.Ordered] struct {
	Exclusions *core.ExclusionSet[K]
}

// Option represents a functional option for configuring Dijkstra.
type Option[K cmp.Ordered] func(*Options[K])

// WithExclusions makes the search skip every connection in set.
// The set is read during the call only and never retained.
func WithExclusions[K cmp.Ordered](set *core.ExclusionSet[K]) Option[K] {
	return func(o *Options[K]) {
		o.Exclusions = set
	}
}

// DefaultOptions returns an Options with no exclusions.
func DefaultOptions[K cmp.Ordered]() Options[K] {
	return Options[K]{}
}

// Result is the outcome of a single search.
//
//   - Prev maps each reached node (except Start) to the node it was reached from.
//   - Dist holds the best known distance for every node in the graph;
//     nodes never reached keep the algebra's Unreachable value.
//
// Because the search stops as soon as End is settled, only the entries on the
// path to End are guaranteed final.
type Result[K cmp.Ordered, W any] struct {
	Start, End K
	Prev       map[K]K
	Dist       map[K]W

	found bool // Start is a graph node
}

// Path walks Prev back from End to Start and returns the route in travel order.
// It reports false when End cannot be traced back to Start.
func (r *Result[K, W]) Path() ([]K, bool) {
	if !r.found {
		return nil, false
	}
	path := []K{r.End}
	for cur := r.End; cur != r.Start; {
		prev, ok := r.Prev[cur]
		if !ok {
			return nil, false
		}
		path = append(path, prev)
		cur = prev
		if len(path) > len(r.Prev)+1 {
			return nil, false // corrupted chain; cannot happen for a search result
		}
	}
	// reverse to get Start → End
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// Length returns the total weight of the path to End, if one exists.
func (r *Result[K, W]) Length() (W, bool) {
	if _, ok := r.Path(); !ok {
		var zero W
		return zero, false
	}

	return r.Dist[r.End], true
}
