// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/roadnet/network"
)

// Constructor adds places and roads to net according to cfg.
// Constructors return sentinel-wrapped errors and never panic.
type Constructor func(net *network.Network, cfg builderConfig) error

// BuildNetwork creates an empty network, resolves bopts once and applies
// each constructor in order. Keys already present are kept (first write wins),
// so constructors can be layered to stitch layouts together.
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*network.Network, error) {
	net := network.New()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(net, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return net, nil
}

// connect adds a priced road between two existing places.
func connect(net *network.Network, cfg builderConfig, a, b, label string) {
	pa, _ := net.GetNode(a)
	pb, _ := net.GetNode(b)
	if pa == nil || pb == nil {
		return
	}
	net.AddEdge(a, b, label, cfg.weightFn(cfg.rng, pa.Data(), pb.Data()))
}

// place adds a node; duplicates are ignored by the network itself.
func place(net *network.Network, key string, x, y float64) {
	net.AddNode(key, orb.Point{x, y})
}
