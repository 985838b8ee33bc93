// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
	"strconv"
)

// BuilderOption customizes a builderConfig before construction begins.
// Option constructors panic on meaningless input; constructors never do.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	// idFn maps an index to a place key for the linear layouts.
	idFn func(int) string
	// rng drives stochastic choices; nil means no randomness.
	rng *rand.Rand
	// weightFn prices each road.
	weightFn WeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     strconv.Itoa,
		weightFn: DistanceWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the index -> key mapping used by Path, Cycle, Star and RandomSparse.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG, locking outcomes for tests.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides how roads are priced.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
