// Package graphfeat provides the numeric building blocks of a molecular
// graph machine-learning pipeline that must survive ahead-of-time compiled
// execution: shape-stable NaN-masked losses/metrics, and memoized pairwise
// graph-distance features.
//
// 🚀 What is graphfeat?
//
//	A small, pure-Go library with two independent components:
//	  • graphdist  — all-pairs shortest-path (hop count) features over a
//	    molecular graph's adjacency matrix, memoized in a caller-owned cache
//	  • nanmetrics — losses and classification metrics that treat NaN
//	    targets as "missing label" without ever changing tensor shape
//
// ✨ Why shape-stable masking?
//
//	Multi-task molecular datasets are sparse: most molecules carry labels
//	for only a few tasks. Accelerator compilers forbid dynamic shapes, so
//	missing labels cannot simply be filtered out. Instead every operation
//	here neutralizes missing positions on private clones, zeroes their
//	weight, and rescales the aggregate so the score reflects only the
//	observed entries.
//
// Both components are deterministic pure functions: no I/O, no global
// state, no internal concurrency. They are safe to call concurrently as
// long as concurrent callers do not share one graphdist.Cache.
//
// See the graphdist and nanmetrics package documentation for contracts,
// error sets, and examples.
package graphfeat
