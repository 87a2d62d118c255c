// Package centrality implements the betweenness-centrality driver of
// §4.6: it runs the dtp package's Engine once per source vertex, folds
// each run's path-counting contribution into shared vertex and edge
// counters, and normalises the result by the number of source-target
// pairs considered.
//
// Two modes are supported: Run computes full betweenness (every vertex
// is both a candidate source and a candidate target, m_B =
// |V|*(|V|-1)); RunGeneratorBased computes the restricted variant
// where only graph.RoleGenerator vertices are sources and only
// graph.RoleLoad vertices are targets (m_B = |generators|*|loads|),
// matching the two betweenness variants named in §4.6 and §8.
//
// The outer loop over sources dispatches through the same
// graph.ExecutionPolicy used throughout this module (§4.7); its
// Parallel case is backed by golang.org/x/sync/errgroup with a bounded
// concurrency limit, one Engine instance per in-flight source so that
// no mutable engine state is ever shared across goroutines. The bound
// itself is tunable via the Option passed to NewDriver (WithMaxParallel).
//
// NewDriver's edgePolicy parameter is a hard precondition (it panics
// on graph.Parallel, since that would race one source's search against
// itself) rather than an Option; Option is reserved for ambient knobs
// whose misuse is a recoverable, reported error rather than programmer
// error.
package centrality
