// Package dtpcentrality computes betweenness centrality over power-flow
// networks using Dominating-Theta-Path (DTP) search: a generalised
// Dijkstra that tracks every Pareto-optimal label at a vertex instead
// of collapsing to a single shortest distance, so that betweenness
// reflects every electrically-equivalent optimal path rather than an
// arbitrary tie-break among them.
//
// The module is organised under six subpackages:
//
//	graph/      — the static int-indexed vertex/edge substrate and the
//	              Sequential/Breakable/Parallel execution-policy dispatch
//	              shared by every traversal in this module
//	label/      — the two label flavours (susceptance-norm,
//	              voltage-angle-difference) and their domination rules
//	pqueue/     — the binary heap and vertex-keyed decrease-key heap the
//	              engine uses for its per-vertex and global frontiers
//	bucket/     — the per-vertex dominance bucket L(v)
//	dtp/        — the Engine itself: Run, Result, and the path-counting
//	              methods the centrality driver folds into its counters
//	centrality/ — the betweenness driver: full and generator-restricted
//	              variants, parallel source dispatch, CSV statistics
package dtpcentrality
