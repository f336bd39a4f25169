// Package graphdist defines the cache, granularity tags, options, and
// error set for pairwise graph-distance features.
package graphdist

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for distance computation.
var (
	// ErrNilCache is returned when the caller-supplied cache is nil.
	ErrNilCache = errors.New("graphdist: cache is nil")

	// ErrBadShape is returned when the node count is not positive.
	ErrBadShape = errors.New("graphdist: number of nodes must be > 0")

	// ErrNonSquare is returned when the adjacency matrix is not square.
	ErrNonSquare = errors.New("graphdist: adjacency matrix is not square")

	// ErrDimensionMismatch is returned when the adjacency dimensions
	// disagree with the declared node count.
	ErrDimensionMismatch = errors.New("graphdist: adjacency dimensions do not match node count")

	// ErrDisconnectedGraph is returned when a node pair has no connecting
	// path and no unreachable-distance policy was configured.
	ErrDisconnectedGraph = errors.New("graphdist: graph is not fully connected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("graphdist: invalid option supplied")
)

// Level identifies the structural granularity of a computed feature, so
// the feature-assembly pipeline can route it to the right positional
// encoding slot.
type Level string

// Granularity tags used by the featurization pipeline.
const (
	// LevelNode marks one value per node.
	LevelNode Level = "node"

	// LevelEdge marks one value per edge.
	LevelEdge Level = "edge"

	// LevelPair marks one value per ordered node pair.
	LevelPair Level = "pair"

	// LevelGraph marks one value per graph.
	LevelGraph Level = "graph"
)

// CacheKey is the fixed key under which Distances memoizes its result.
const CacheKey = "graphormer"

// Cache maps a feature name to a previously computed artifact for one
// graph. The caller creates it once per graph, passes it into every
// feature computation on that graph, and owns invalidation: this package
// only inserts entries, never clears them. Reusing one Cache across
// different graphs without clearing it is a caller error.
type Cache map[string]*mat.Dense

// Option configures Distances via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Distances is invoked.
type Option func(*options)

// options holds resolved configuration for one Distances call.
type options struct {
	unreachable    float64
	hasUnreachable bool

	// internal error recorded during option parsing
	err error
}

// defaultOptions returns the baseline configuration: disconnected input
// fails with ErrDisconnectedGraph.
func defaultOptions() options {
	return options{}
}

// WithUnreachable substitutes d as the distance for node pairs with no
// connecting path, instead of failing with ErrDisconnectedGraph.
// Typical sentinels are +Inf, -1, or the node count.
// NaN is rejected → ErrOptionViolation.
func WithUnreachable(d float64) Option {
	return func(o *options) {
		if math.IsNaN(d) {
			o.err = fmt.Errorf("%w: unreachable distance must not be NaN", ErrOptionViolation)
			return
		}
		o.unreachable = d
		o.hasUnreachable = true
	}
}
