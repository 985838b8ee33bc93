package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/roadnet/network"
)

const (
	SHOW_SUBCMD         = "show"
	ADD_NODE_SUBCMD     = "add-node"
	ADD_EDGE_SUBCMD     = "add-edge"
	REMOVE_EDGE_SUBCMD  = "remove-edge"
	UPDATE_EDGE_SUBCMD  = "update-edge"
	BLOCK_SUBCMD        = "block"
	UNBLOCK_SUBCMD      = "unblock"
	UNBLOCK_ALL_SUBCMD  = "unblock-all"
	FIND_NODE_SUBCMD    = "find-node"
	FIND_EDGE_SUBCMD    = "find-edge"
	ROUTE_SUBCMD        = "route"
	ALTERNATIVES_SUBCMD = "alternatives"
	REACH_SUBCMD        = "reach"
)

// command is one subcommand. run reports whether the network changed and
// must be saved.
type command struct {
	name    string
	args    string
	arity   int
	summary string
	mutates bool
	run     func(s *session, args []string) (changed bool, err error)
}

var COMMANDS = []*command{
	{name: SHOW_SUBCMD, arity: 0, summary: "list places, roads and closures", run: runShow},
	{name: ADD_NODE_SUBCMD, args: "key x y", arity: 3, mutates: true, summary: "add a place", run: runAddNode},
	{name: ADD_EDGE_SUBCMD, args: "a b label weight", arity: 4, mutates: true, summary: "add a road between two places", run: runAddEdge},
	{name: REMOVE_EDGE_SUBCMD, args: "a b", arity: 2, mutates: true, summary: "remove every road between two places", run: runRemoveEdge},
	{name: UPDATE_EDGE_SUBCMD, args: "a b label weight", arity: 4, mutates: true, summary: "rename and re-weight the first road between two places", run: runUpdateEdge},
	{name: BLOCK_SUBCMD, args: "a b", arity: 2, mutates: true, summary: "close the roads between two places", run: runBlock},
	{name: UNBLOCK_SUBCMD, args: "a b", arity: 2, mutates: true, summary: "reopen the roads between two places", run: runUnblock},
	{name: UNBLOCK_ALL_SUBCMD, arity: 0, mutates: true, summary: "reopen every closed road", run: runUnblockAll},
	{name: FIND_NODE_SUBCMD, args: "key", arity: 1, summary: "show one place and the roads leaving it", run: runFindNode},
	{name: FIND_EDGE_SUBCMD, args: "a-b|label", arity: 1, summary: "find a road by its ends or by name (case-insensitive)", run: runFindEdge},
	{name: ROUTE_SUBCMD, args: "from to", arity: 2, summary: "shortest open route", run: runRoute},
	{name: ALTERNATIVES_SUBCMD, args: "from to", arity: 2, summary: "shortest route and a few detours", run: runAlternatives},
	{name: REACH_SUBCMD, args: "from", arity: 1, summary: "places reachable over open roads, with hop counts", run: runReach},
}

func usageErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// parseWeight accepts the travel costs the file format can load back.
func parseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(w) || w < 0 {
		return 0, usageErr("weight %q must be a non-negative number", s)
	}
	return w, nil
}

func (s *session) requirePlaces(keys ...string) error {
	for _, k := range keys {
		if !s.net.HasNode(k) {
			return fmt.Errorf("unknown place %q", k)
		}
	}
	return nil
}

func (s *session) printRoad(r network.Road) {
	state := ""
	if s.blocked.Contains(r.A, r.B) {
		state = "  [closed]"
	}
	fmt.Fprintf(s.out, "%s - %s  %s  %s%s\n", r.A, r.B, r.Label, strconv.FormatFloat(r.Weight, 'f', -1, 64), state)
}

func (s *session) printPlace(n *network.Place) {
	p := n.Data()
	fmt.Fprintf(s.out, "%s  (%g, %g)  %d road end(s)\n", n.Key(), p.X(), p.Y(), n.Degree())
}

func (s *session) printRoute(r network.Route) {
	fmt.Fprintf(s.out, "%s  (%s)\n", strings.Join(r.Path, " -> "), strconv.FormatFloat(r.Length, 'f', -1, 64))
}

//**********************************************************
// editing
//**********************************************************

func runShow(s *session, _ []string) (bool, error) {
	fmt.Fprintf(s.out, "places (%d):\n", s.net.NodeCount())
	for n := range s.net.Nodes() {
		fmt.Fprint(s.out, "  ")
		s.printPlace(n)
	}
	fmt.Fprintf(s.out, "roads (%d):\n", s.net.ConnectionCount())
	for r := range s.net.Connections() {
		fmt.Fprint(s.out, "  ")
		s.printRoad(r)
	}
	fmt.Fprintf(s.out, "closed (%d):\n", s.blocked.Len())
	for _, p := range s.blocked.Pairs() {
		fmt.Fprintf(s.out, "  %s - %s\n", p.A, p.B)
	}
	return false, nil
}

func runAddNode(s *session, args []string) (bool, error) {
	key := strings.TrimSpace(args[0])
	if key == "" {
		return false, usageErr("place key must not be empty")
	}
	x, errX := strconv.ParseFloat(args[1], 64)
	y, errY := strconv.ParseFloat(args[2], 64)
	if errX != nil || errY != nil || math.IsNaN(x) || math.IsNaN(y) {
		return false, usageErr("coordinates %q %q must be numbers", args[1], args[2])
	}
	if !s.net.AddNode(key, orb.Point{x, y}) {
		return false, fmt.Errorf("place %q already exists", key)
	}
	s.logger.Debug().Str("key", key).Float64("x", x).Float64("y", y).Msg("place added")
	return true, nil
}

func runAddEdge(s *session, args []string) (bool, error) {
	a, b, label := args[0], args[1], strings.TrimSpace(args[2])
	if a == b {
		return false, usageErr("a road must connect two different places")
	}
	if label == "" {
		return false, usageErr("road name must not be empty")
	}
	w, err := parseWeight(args[3])
	if err != nil {
		return false, err
	}
	if err := s.requirePlaces(a, b); err != nil {
		return false, err
	}
	s.net.AddEdge(a, b, label, w)
	s.logger.Debug().Str("a", a).Str("b", b).Str("label", label).Float64("weight", w).Msg("road added")
	return true, nil
}

func runRemoveEdge(s *session, args []string) (bool, error) {
	a, b := args[0], args[1]
	if !s.net.RemoveEdge(a, b) {
		return false, fmt.Errorf("no road between %q and %q", a, b)
	}
	// a closure without a road behind it is meaningless
	s.blocked.Remove(a, b)
	return true, nil
}

func runUpdateEdge(s *session, args []string) (bool, error) {
	a, b, label := args[0], args[1], strings.TrimSpace(args[2])
	if label == "" {
		return false, usageErr("road name must not be empty")
	}
	w, err := parseWeight(args[3])
	if err != nil {
		return false, err
	}
	if !s.net.UpdateEdge(a, b, label, w) {
		return false, fmt.Errorf("no road between %q and %q", a, b)
	}
	return true, nil
}

func runBlock(s *session, args []string) (bool, error) {
	a, b := args[0], args[1]
	if !s.net.HasEdge(a, b) {
		return false, fmt.Errorf("no road between %q and %q", a, b)
	}
	if !s.blocked.Add(a, b) {
		fmt.Fprintf(s.out, "%s - %s is already closed\n", a, b)
		return false, nil
	}
	return true, nil
}

func runUnblock(s *session, args []string) (bool, error) {
	a, b := args[0], args[1]
	if !s.blocked.Remove(a, b) {
		fmt.Fprintf(s.out, "%s - %s is not closed\n", a, b)
		return false, nil
	}
	return true, nil
}

func runUnblockAll(s *session, _ []string) (bool, error) {
	n := s.blocked.Len()
	if n == 0 {
		fmt.Fprintln(s.out, "no roads are closed")
		return false, nil
	}
	s.blocked = network.NewBlocked()
	fmt.Fprintf(s.out, "reopened %d road(s)\n", n)
	return true, nil
}

func runFindNode(s *session, args []string) (bool, error) {
	key := strings.TrimSpace(args[0])
	n, ok := s.net.GetNode(key)
	if !ok {
		return false, fmt.Errorf("no place %q", key)
	}
	s.printPlace(n)
	for _, e := range n.Edges() {
		fmt.Fprint(s.out, "  ")
		s.printRoad(network.Road{A: key, B: e.To, Label: e.Label, Weight: e.Weight})
	}
	return false, nil
}

// runFindEdge looks the query up as "a-b" first, then as a road name.
func runFindEdge(s *session, args []string) (bool, error) {
	query := strings.TrimSpace(args[0])

	var (
		road network.Road
		ok   bool
	)
	if a, b, found := strings.Cut(query, "-"); found {
		a, b = strings.TrimSpace(a), strings.TrimSpace(b)
		road, ok = s.net.FindConnection(func(r network.Road) bool {
			return (r.A == a && r.B == b) || (r.A == b && r.B == a)
		})
	}
	if !ok {
		road, ok = s.net.FindConnection(func(r network.Road) bool {
			return strings.EqualFold(r.Label, query)
		})
	}
	if !ok {
		return false, fmt.Errorf("no road matches %q", query)
	}
	s.printRoad(road)
	return false, nil
}

//**********************************************************
// queries
//**********************************************************

func runRoute(s *session, args []string) (bool, error) {
	from, to := args[0], args[1]
	if err := s.requirePlaces(from, to); err != nil {
		return false, err
	}
	route, ok, err := network.ShortestRoute(s.net, from, to, s.blocked)
	if err != nil {
		return false, err
	}
	if !ok {
		fmt.Fprintf(s.out, "no open route from %s to %s\n", from, to)
		return false, nil
	}
	s.printRoute(route)
	return false, nil
}

func runAlternatives(s *session, args []string) (bool, error) {
	from, to := args[0], args[1]
	if err := s.requirePlaces(from, to); err != nil {
		return false, err
	}
	routes, err := network.AlternativeRoutes(s.net, from, to, s.blocked, s.config.Alternatives.Limit)
	if err != nil {
		return false, err
	}
	if len(routes) == 0 {
		fmt.Fprintf(s.out, "no open route from %s to %s\n", from, to)
		return false, nil
	}
	for i, r := range routes {
		fmt.Fprintf(s.out, "%d. ", i+1)
		s.printRoute(r)
	}
	return false, nil
}

func runReach(s *session, args []string) (bool, error) {
	from := args[0]
	if err := s.requirePlaces(from); err != nil {
		return false, err
	}
	res, err := network.Reachable(s.net, from, s.blocked)
	if err != nil {
		return false, err
	}
	for _, key := range res.Order {
		fmt.Fprintf(s.out, "%s  %d\n", key, res.Depth[key])
	}
	if cut := s.net.NodeCount() - len(res.Order); cut > 0 {
		fmt.Fprintf(s.out, "%d place(s) cut off\n", cut)
	}
	return false, nil
}
