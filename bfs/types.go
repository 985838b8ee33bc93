// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start key is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[K cmp.Ordered] func(*BFSOptions[K])

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions[K cmp.Ordered] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Exclusions are connections the walk must not cross.
	Exclusions *core.ExclusionSet[K]

	// OnEnqueue is called when a node is enqueued, before visiting.
	// Receives node key and its depth (hop count) from the start.
	OnEnqueue func(id K, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(id K, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id K, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no exclusions, no depth limit
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions[K cmp.Ordered]() BFSOptions[K] {
	return BFSOptions[K]{
		Ctx:       context.Background(),
		OnEnqueue: func(K, int) {},
		OnDequeue: func(K, int) {},
		OnVisit:   func(K, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[K cmp.Ordered](ctx context.Context) Option[K] {
	return func(o *BFSOptions[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithExclusions makes the walk skip every connection in set.
func WithExclusions[K cmp.Ordered](set *core.ExclusionSet[K]) Option[K] {
	return func(o *BFSOptions[K]) {
		o.Exclusions = set
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[K cmp.Ordered](fn func(id K, depth int)) Option[K] {
	return func(o *BFSOptions[K]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[K cmp.Ordered](fn func(id K, depth int)) Option[K] {
	return func(o *BFSOptions[K]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[K cmp.Ordered](fn func(id K, depth int) error) Option[K] {
	return func(o *BFSOptions[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[K cmp.Ordered](d int) Option[K] {
	return func(o *BFSOptions[K]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: map from node key to its distance (in hops) from the start.
//   - Parent: map from node key to its predecessor in the BFS tree.
type BFSResult[K cmp.Ordered] struct {
	Order  []K
	Depth  map[K]int
	Parent map[K]K
}

// Reached reports whether id was reached.
func (r *BFSResult[K]) Reached(id K) bool {
	_, ok := r.Depth[id]

	return ok
}

// PathTo reconstructs the fewest-hop path from the start node to dest.
// Returns an error if dest was not reached.
func (r *BFSResult[K]) PathTo(dest K) ([]K, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	// build reversed path
	path := []K{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
