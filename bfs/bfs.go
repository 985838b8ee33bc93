// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count distances, parent links, and visit order.
//
// Edge weights are ignored; closed connections (an exclusion set) are not crossed.
// The typical question it answers is "which places can still be reached
// from here with these roads closed".
package bfs

import (
	"cmp"
	"context"
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// queueItem pairs a node key with its BFS depth.
type queueItem[K cmp.Ordered] struct {
	id    K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K cmp.Ordered, V, E, W any] struct {
	graph   *core.Graph[K, V, E, W]
	opts    BFSOptions[K]
	ctx     context.Context
	queue   []queueItem[K]
	visited map[K]bool
	res     *BFSResult[K]
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, a context error on cancellation,
// or any user-supplied hook error.
func BFS[K cmp.Ordered, V, E, W any](g *core.Graph[K, V, E, W], startID K, opts ...Option[K]) (*BFSResult[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasNode(startID) {
		return nil, ErrStartVertexNotFound
	}

	// Prepare walker
	n := g.NodeCount()
	w := &walker[K, V, E, W]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[K], 0, n),
		visited: make(map[K]bool, n),
		res: &BFSResult[K]{
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(startID, 0)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks id visited at depth d, calls OnEnqueue, and adds it to the queue.
func (w *walker[K, V, E, W]) enqueue(id K, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[K]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[K, V, E, W]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[K, V, E, W]) dequeue() queueItem[K] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker[K, V, E, W]) visit(item queueItem[K]) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors walks the adjacency list, skips closed connections,
// applies MaxDepth, and enqueues each unseen neighbor.
func (w *walker[K, V, E, W]) enqueueNeighbors(item queueItem[K]) {
	node, ok := w.graph.GetNode(item.id)
	if !ok {
		return
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for e := range node.Adjacent() {
		if w.opts.Exclusions.Contains(item.id, e.To) {
			continue
		}
		// first time seen?
		if !w.visited[e.To] {
			w.res.Parent[e.To] = item.id
			w.enqueue(e.To, nextDepth)
		}
	}
}
