// Package network is the concrete road network used by the editor and the CLI:
// string keys, planar positions, road names and float64 travel costs, plus the
// line-oriented text format it is saved in.
package network

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/roadnet/alternatives"
	"github.com/katalvlaran/roadnet/bfs"
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/weight"
)

// Network is a road graph: places keyed by name, positioned on the plane,
// connected by named roads with a travel cost.
type Network = core.Graph[string, orb.Point, string, float64]

// Blocked is the set of closed roads.
type Blocked = core.ExclusionSet[string]

// Place is one node of a Network.
type Place = core.Node[string, orb.Point, string, float64]

// Road is one undirected connection as listed by Network.Connections.
type Road = core.Connection[string, string, float64]

// Route is a path between two places and its total cost.
type Route = alternatives.Route[string, float64]

// New returns an empty network.
func New() *Network {
	return core.NewGraph[string, orb.Point, string, float64](weight.Float64())
}

// NewBlocked returns an empty set of closed roads.
func NewBlocked() *Blocked {
	return core.NewExclusionSet[string]()
}

// ShortestRoute returns the cheapest route from -> to avoiding blocked roads.
// ok is false when no route exists.
func ShortestRoute(net *Network, from, to string, blocked *Blocked) (route Route, ok bool, err error) {
	res, err := dijkstra.Dijkstra(net, from, to, dijkstra.WithExclusions(blocked))
	if err != nil {
		return Route{}, false, err
	}
	path, ok := res.Path()
	if !ok {
		return Route{}, false, nil
	}
	length, _ := res.Length()

	return Route{Path: path, Length: length}, true, nil
}

// AlternativeRoutes returns up to limit distinct routes, shortest first.
// limit <= 0 selects alternatives.DefaultLimit.
func AlternativeRoutes(net *Network, from, to string, blocked *Blocked, limit int) ([]Route, error) {
	opts := []alternatives.Option[string]{alternatives.WithExclusions(blocked)}
	if limit > 0 {
		opts = append(opts, alternatives.WithLimit[string](limit))
	}

	return alternatives.Alternatives(net, from, to, opts...)
}

// Reachable lists every place reachable from start without crossing blocked
// roads, in breadth-first order, with hop counts.
func Reachable(net *Network, from string, blocked *Blocked) (*bfs.BFSResult[string], error) {
	return bfs.BFS(net, from, bfs.WithExclusions(blocked))
}
