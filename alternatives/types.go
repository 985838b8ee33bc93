// Package alternatives provides tunable options and result types
// for the alternative-route search.
package alternatives

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// DefaultLimit is the number of routes returned when WithLimit is not given.
// The limit counts every returned route, the shortest one included.
const DefaultLimit = 5

// Sentinel errors for alternative-route search.
var (
	// ErrBadLimit is returned when WithLimit receives a value below 1.
	ErrBadLimit = errors.New("alternatives: limit must be at least 1")
)

// Route is one way from start to end with its total weight.
type Route[K cmp.Ordered, W any] struct {
	Path   []K
	Length W
}

// Options holds the parameters of one search.
type Options[K cmp.Ordered] struct {
	// Exclusions are connections closed for every candidate route.
	Exclusions *core.ExclusionSet[K]

	// Limit caps the number of returned routes (base route included).
	Limit int

	// internal error recorded during option parsing
	err error
}

// Option configures the search via functional arguments.
// An invalid Option is recorded and surfaced when Alternatives is invoked.
type Option[K cmp.Ordered] func(*Options[K])

// DefaultOptions returns no exclusions and DefaultLimit.
func DefaultOptions[K cmp.Ordered]() Options[K] {
	return Options[K]{Limit: DefaultLimit}
}

// WithExclusions closes the given connections for the base route and every detour.
func WithExclusions[K cmp.Ordered](set *core.ExclusionSet[K]) Option[K] {
	return func(o *Options[K]) {
		o.Exclusions = set
	}
}

// WithLimit sets the maximum number of returned routes.
//
//	k >= 1: at most k routes
//	k < 1:  invalid option → ErrBadLimit
func WithLimit[K cmp.Ordered](k int) Option[K] {
	return func(o *Options[K]) {
		if k < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrBadLimit, k)
			return
		}
		o.Limit = k
	}
}
