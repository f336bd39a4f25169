package graphdist

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
	"gonum.org/v1/gonum/mat"
)

// Distances computes the matrix of shortest-path distances, in edge hops,
// between every pair of nodes in the graph described by adj, memoizing the
// result in cache under CacheKey.
//
// adj may be any mat.Matrix implementation; non-dense encodings are
// densified before graph construction. The graph is taken as undirected:
// any nonzero off-diagonal entry in either triangle contributes an edge.
// Self-loops are ignored (dist[i][i] is always 0).
//
// If cache already holds an entry under CacheKey, that matrix is returned
// without recomputation — at most one computation per cache lifetime. The
// returned matrix is always a fresh copy, so callers may mutate it freely
// without corrupting the cache.
//
// The second return value tags the output's granularity for the
// feature-assembly pipeline; it is always LevelPair.
//
// Distances is pure aside from the cache insertion. Concurrent calls are
// safe with independent caches; callers racing on one uncached key may
// both compute and redundantly overwrite (idempotent, but wasteful), so
// share a Cache only under external synchronization.
//
// Complexity: O(V·(V+E)) — one BFS sweep per node on an unweighted graph.
func Distances(adj mat.Matrix, numNodes int, cache Cache, opts ...Option) (*mat.Dense, Level, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, "", o.err
	}

	if cache == nil {
		return nil, "", ErrNilCache
	}
	if numNodes <= 0 {
		return nil, "", ErrBadShape
	}
	r, c := adj.Dims()
	if r != c {
		return nil, "", ErrNonSquare
	}
	if r != numNodes {
		return nil, "", ErrDimensionMismatch
	}

	// Cache hit: short-circuit without touching the graph.
	if cached, ok := cache[CacheKey]; ok {
		return mat.DenseCopyOf(cached), LevelPair, nil
	}

	dense, ok := adj.(*mat.Dense)
	if !ok {
		dense = mat.DenseCopyOf(adj)
	}

	dist, err := allPairsHops(buildUndirected(dense, numNodes), numNodes, o)
	if err != nil {
		return nil, "", err
	}

	cache[CacheKey] = dist

	return mat.DenseCopyOf(dist), LevelPair, nil
}

// buildUndirected constructs an undirected graph with one node per matrix
// index and an edge for every nonzero off-diagonal entry in either
// triangle of adj.
func buildUndirected(adj *mat.Dense, n int) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adj.At(i, j) != 0 || adj.At(j, i) != 0 {
				g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}

	return g
}

// allPairsHops runs one breadth-first walk per source node and assembles
// the n×n hop-distance matrix. Pairs never reached by a walk either take
// the configured unreachable distance or abort with ErrDisconnectedGraph.
func allPairsHops(g *simple.UndirectedGraph, n int, o options) (*mat.Dense, error) {
	dist := mat.NewDense(n, n, nil)
	var bf traverse.BreadthFirst

	for i := 0; i < n; i++ {
		if o.hasUnreachable {
			// prefill; the walk overwrites every reached entry
			for j := 0; j < n; j++ {
				dist.Set(i, j, o.unreachable)
			}
		}
		reached := 0
		bf.Walk(g, g.Node(int64(i)), func(v graph.Node, depth int) bool {
			dist.Set(i, int(v.ID()), float64(depth))
			reached++
			return false
		})
		bf.Reset()

		if reached < n && !o.hasUnreachable {
			return nil, ErrDisconnectedGraph
		}
	}

	return dist, nil
}
