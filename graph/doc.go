// Package graph is the static graph substrate the DTP engine and the
// centrality driver traverse.
//
// Unlike the mutable, string-keyed graphs elsewhere in this module's
// ancestry, a Graph here is built once (AddVertex/AddEdge, in insertion
// order) and then borrowed read-only by every downstream component:
// vertex and edge identifiers are small nonnegative ints assigned in
// insertion order, giving O(1) VertexAt/EdgeAt/degree/adjacency access.
//
// Edges are logically undirected for traversal: Other(v) returns the
// opposite endpoint regardless of which side was recorded as From. The
// From/To orientation only matters for EdgeID(u, v) lookups and for the
// deterministic ordering of ForAllEdgesAt, which always visits in-edges
// before out-edges, each in insertion order.
//
// ExecutionPolicy (Sequential, Breakable, Parallel) is a switch taken
// by the graph's For-all traversals and by the centrality driver's
// outer loop over sources, so sequential callers pay no goroutine
// overhead and parallel callers get worker dispatch. The heap and
// bucket walks take no policy: they always visit one element at a time
// and stop when the callback returns false.
package graph
