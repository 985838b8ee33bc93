// Package dijkstra implements Dijkstra's shortest-path algorithm over a core.Graph,
// generic over the graph's weight algebra and honoring a per-call exclusion set.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Each heap operation (Push/Pop) costs O(log N), where N ≤ V + E.
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We use a “lazy” decrease-key strategy: improved distances are pushed again and
//     stale entries are simply re-processed when popped. Relaxation only accepts
//     strictly smaller candidates, so re-processing is harmless and terminates.
//   - There is no visited set; the only short-circuit is stopping when the target is popped.
//   - Equal priorities pop in push order, so results are reproducible.
package dijkstra

import (
	"cmp"
	"container/heap"
	"fmt"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/weight"
)

// Dijkstra computes the shortest route from start to end in g.
//
// Returns:
//
//   - *Result: predecessor chain and full distance table; use Result.Path.
//   - err: ErrNilGraph, ErrNilAlgebra or a wrapped ErrNegativeWeight.
//
// Behavior:
//
//   - Unknown start: distances all stay Unreachable, Prev is empty, no path.
//   - start == end (present): path [start] with length Zero.
//   - Unknown or unreachable end: no path.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[K cmp.Ordered, V, E, W any](g *core.Graph[K, V, E, W], start, end K, opts ...Option[K]) (*Result[K, W], error) {
	// 1) Build Options
	cfg := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	alg := g.Algebra()
	if alg == nil {
		return nil, ErrNilAlgebra
	}

	// 3) Pre-scan all connections to detect negative weights.
	for c := range g.Connections() {
		if weight.IsNegative(alg, c.Weight) {
			return nil, fmt.Errorf("%w: edge %v–%v weight=%v", ErrNegativeWeight, c.A, c.B, c.Weight)
		}
	}

	// 4) Prepare state and run.
	n := g.NodeCount()
	r := &runner[K, V, E, W]{
		g:    g,
		alg:  alg,
		excl: cfg.Exclusions,
		end:  end,
		res: &Result[K, W]{
			Start: start,
			End:   end,
			Prev:  make(map[K]K, n),
			Dist:  make(map[K]W, n),
		},
		pq: make(nodePQ[K, W], 0, n),
	}
	r.init()
	r.process()

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[K cmp.Ordered, V, E, W any] struct {
	g    *core.Graph[K, V, E, W] // The input graph; read-only within Dijkstra.
	alg  weight.Algebra[W]       // Weight algebra of g.
	excl *core.ExclusionSet[K]   // Impassable connections for this call.
	end  K                       // Target key; popping it stops the loop.
	res  *Result[K, W]           // Output under construction.
	pq   nodePQ[K, W]            // Min-heap for the lazy priority queue.
	seq  uint64                  // Push counter for FIFO tie-breaks.
}

// init sets every distance to Unreachable and seeds the heap with the source.
func (r *runner[K, V, E, W]) init() {
	inf := r.alg.Unreachable()
	for node := range r.g.Nodes() {
		r.res.Dist[node.Key()] = inf
	}

	heap.Init(&r.pq)
	if !r.g.HasNode(r.res.Start) {
		return // nothing is ever set to zero; no path is reconstructible
	}
	r.res.found = true
	r.res.Dist[r.res.Start] = r.alg.Zero()
	r.push(r.res.Start, r.alg.Zero())
}

// process pops the closest entry until the heap drains or the target is popped.
func (r *runner[K, V, E, W]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[K, W])
		if item.id == r.end {
			break
		}
		r.relax(item.id)
	}
}

// relax tries to improve every neighbor of u through u.
func (r *runner[K, V, E, W]) relax(u K) {
	node, ok := r.g.GetNode(u)
	if !ok {
		return
	}
	du := r.res.Dist[u]
	for e := range node.Adjacent() {
		if r.excl.Contains(u, e.To) {
			continue
		}

		candidate := r.alg.Add(du, e.Weight)
		current, ok := r.res.Dist[e.To]
		if !ok {
			current = r.alg.Unreachable()
		}
		// strictly better only; equal candidates keep the first predecessor
		if r.alg.Compare(candidate, current) >= 0 {
			continue
		}

		r.res.Dist[e.To] = candidate
		r.res.Prev[e.To] = u
		r.push(e.To, candidate)
	}
}

func (r *runner[K, V, E, W]) push(id K, d W) {
	r.seq++
	heap.Push(&r.pq, &nodeItem[K, W]{id: id, dist: d, seq: r.seq, cmp: r.alg.Compare})
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem[K cmp.Ordered, W any] struct {
	id   K
	dist W
	seq  uint64
	cmp  func(a, b W) int
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by push order.
// Duplicate ids are allowed (lazy decrease-key).
type nodePQ[K cmp.Ordered, W any] []*nodeItem[K, W]

// Len returns the number of items in the heap.
func (pq nodePQ[K, W]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority, then FIFO.
func (pq nodePQ[K, W]) Less(i, j int) bool {
	if c := pq[i].cmp(pq[i].dist, pq[j].dist); c != 0 {
		return c < 0
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ[K, W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ[K, W]) Push(x any) { *pq = append(*pq, x.(*nodeItem[K, W])) }

// Pop removes and returns the last element (heap.Pop has already moved the minimum there).
func (pq *nodePQ[K, W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
