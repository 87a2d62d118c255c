// SPDX-License-Identifier: MIT
// Package: dtpcentrality/graph
//
// policy.go — the execution-policy dispatch used by the graph's For-all
// traversals (§4.7). Sequential and Breakable never spawn a goroutine;
// Parallel fans the callback out across goroutines and joins before
// returning, so reads are safe but writes made inside the callback must
// target per-call-index storage or be serialised by the caller. The
// heap and bucket walks take no policy, and centrality.Driver runs its
// own source loop (errgroup under Parallel) rather than this dispatch.

package graph

import "sync"

// ExecutionPolicy selects how a For-all traversal dispatches its callback.
type ExecutionPolicy int

const (
	// Sequential visits elements one at a time, in container order.
	// The callback's return value is ignored.
	Sequential ExecutionPolicy = iota

	// Breakable visits elements one at a time, in container order, and
	// stops as soon as the callback returns false.
	Breakable

	// Parallel dispatches the callback once per element across
	// goroutines with no ordering guarantee, then joins. The callback's
	// return value is ignored, matching Sequential.
	Parallel
)

// String implements fmt.Stringer for ExecutionPolicy.
func (p ExecutionPolicy) String() string {
	switch p {
	case Sequential:
		return "Sequential"
	case Breakable:
		return "Breakable"
	case Parallel:
		return "Parallel"
	default:
		return "ExecutionPolicy(?)"
	}
}

// ForAllInts dispatches fn(i) for i in [0, n) according to policy. It
// is the primitive behind ForAllVertexIdentifiers.
func ForAllInts(policy ExecutionPolicy, n int, fn func(i int) bool) {
	switch policy {
	case Parallel:
		var wg sync.WaitGroup
		wg.Add(n)
		for i := 0; i < n; i++ {
			go func(i int) {
				defer wg.Done()
				fn(i)
			}(i)
		}
		wg.Wait()
	case Breakable:
		for i := 0; i < n; i++ {
			if !fn(i) {
				break
			}
		}
	default: // Sequential
		for i := 0; i < n; i++ {
			fn(i)
		}
	}
}

// ForAllVertexIdentifiers dispatches fn(v) for every vertex id in the graph.
func (g *Graph) ForAllVertexIdentifiers(policy ExecutionPolicy, fn func(id int) bool) {
	ForAllInts(policy, g.NumberOfVertices(), fn)
}

// ForAllEdgesAt dispatches fn(e) for every edge incident to v, in-edges
// before out-edges, each in insertion order — the ordering that makes
// tie-breaking in the DTP engine's bucket deterministic (§4.5).
func (g *Graph) ForAllEdgesAt(policy ExecutionPolicy, v int, fn func(e *Edge) bool) {
	in := g.InEdges(v)
	out := g.OutEdges(v)
	ids := make([]int, 0, len(in)+len(out))
	ids = append(ids, in...)
	ids = append(ids, out...)

	switch policy {
	case Parallel:
		var wg sync.WaitGroup
		wg.Add(len(ids))
		for _, id := range ids {
			go func(id int) {
				defer wg.Done()
				fn(g.EdgeAt(id))
			}(id)
		}
		wg.Wait()
	case Breakable:
		for _, id := range ids {
			if !fn(g.EdgeAt(id)) {
				break
			}
		}
	default: // Sequential
		for _, id := range ids {
			fn(g.EdgeAt(id))
		}
	}
}
