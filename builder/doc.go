// SPDX-License-Identifier: MIT

// Package builder generates synthetic road networks for tests, benchmarks
// and demos: city grids, single roads, ring roads, hub-and-spoke layouts and
// random sparse regions.
//
// Every constructor places its nodes on the plane and, unless a WeightFn is
// supplied, weights each road by the planar distance between its ends.
// Output is deterministic for equal parameters and seed.
//
//	net, err := builder.BuildNetwork(
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Grid(4, 4),
//	)
package builder
