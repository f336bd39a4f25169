// Package graphdist computes pairwise shortest-path (hop count) features
// over a graph's adjacency matrix, with memoization in a caller-owned
// cache.
//
// 🚀 What is graphdist?
//
//	Transformer-style graph models encode structural position as the
//	number of edges on the shortest path between every pair of nodes.
//	graphdist turns an adjacency matrix into that num_nodes×num_nodes
//	distance matrix, tagged LevelPair so the feature-assembly pipeline
//	can route it next to node-, edge-, and graph-level features.
//
// ✨ Key properties:
//   - at-most-once computation per Cache lifetime (fixed key CacheKey)
//   - BFS from every node — O(V·(V+E)) on unweighted graphs
//   - accepts any mat.Matrix adjacency; sparse encodings are densified
//   - symmetric output with zero diagonal for undirected input
//   - returned matrices are copies; the cache can never be corrupted
//     through a returned value
//
// ⚙️ Usage:
//
//	cache := graphdist.Cache{} // one per graph, caller-owned
//	dist, level, err := graphdist.Distances(adj, n, cache)
//	// second call on the same cache returns the memoized matrix
//
// Disconnected input fails with ErrDisconnectedGraph by default; opt into
// a sentinel distance with WithUnreachable (e.g. +Inf or -1).
//
// See example_test.go for runnable examples.
package graphdist
