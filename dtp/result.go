// SPDX-License-Identifier: MIT
// Package: dtpcentrality/dtp
//
// result.go — Result subgraph reconstruction and the two path-counting
// methods the centrality driver folds into betweenness counters.

package dtp

import "github.com/egoa-go/dtpcentrality/graph"

// Subgraph is the induced subgraph of every vertex and edge lying on
// at least one optimal path to a Result call's target.
type Subgraph struct {
	Vertices []int
	Edges    []int
}

// Result walks every Pareto-optimal path from the current source to
// target and returns the subgraph their union induces, together with
// the shared optimum scalar (all optima at a vertex share the same
// Value() by construction — that is what makes them optima). Returns
// a zero Subgraph and 0 if target is unreachable from the source.
//
// Precondition: Run has completed.
func (e *Engine) Result(target int) (Subgraph, float64) {
	optima := e.buckets[target].Optima()
	if len(optima) == 0 {
		return Subgraph{}, 0
	}

	seenV := make(map[int]bool)
	seenE := make(map[int]bool)
	var sub Subgraph

	for _, opt := range optima {
		vertexID := opt.Vertex()
		labelID := opt.Index()
		for {
			l := e.labelAt(vertexID, labelID)
			if !seenV[vertexID] {
				seenV[vertexID] = true
				sub.Vertices = append(sub.Vertices, vertexID)
			}

			prevVertex := l.PrevVertex()
			prevLabel := l.PrevLabelIndex()
			if prevVertex == graph.None || prevLabel == graph.None {
				break
			}

			edgeID := e.g.EdgeID(prevVertex, vertexID)
			if edgeID == graph.None {
				panic("dtp: no edge between consecutive path vertices")
			}
			if !seenE[edgeID] {
				seenE[edgeID] = true
				sub.Edges = append(sub.Edges, edgeID)
			}

			vertexID, labelID = prevVertex, prevLabel
		}
	}

	return sub, optima[0].Value()
}

// NumberOfPathsThroughVertex walks every optimal path to target and,
// for each, adds 1/k (k = number of optima) to rel[v] and 1 to
// counts[v] for every vertex v on that path — including target itself,
// counted unconditionally once per optimum and without deduplicating
// against other optima's paths (§9, preserved as-is from the reference
// walk rather than deduped the way Result's subgraph is).
//
// Precondition: len(counts) == len(rel) == g.NumberOfVertices(); Run
// has completed for the current source.
func (e *Engine) NumberOfPathsThroughVertex(target int, counts []int, rel []float64) {
	optima := e.buckets[target].Optima()
	k := len(optima)
	if k == 0 {
		return
	}
	w := 1.0 / float64(k)

	for _, opt := range optima {
		vertexID := opt.Vertex()
		labelID := opt.Index()
		for {
			l := e.labelAt(vertexID, labelID)
			counts[vertexID]++
			rel[vertexID] += w

			prevVertex := l.PrevVertex()
			prevLabel := l.PrevLabelIndex()
			if prevVertex == graph.None || prevLabel == graph.None {
				break
			}
			vertexID, labelID = prevVertex, prevLabel
		}
	}
}

// NumberOfPathsThroughEdge mirrors NumberOfPathsThroughVertex for
// edges: it stops one step earlier, at the source label, so the
// source-to-first-hop edge is counted but no phantom edge is ever
// attributed to the source label itself (§9).
//
// Precondition: same as NumberOfPathsThroughVertex, with counts/rel
// sized to g.NumberOfEdges().
func (e *Engine) NumberOfPathsThroughEdge(target int, counts []int, rel []float64) {
	optima := e.buckets[target].Optima()
	k := len(optima)
	if k == 0 {
		return
	}
	w := 1.0 / float64(k)

	for _, opt := range optima {
		vertexID := opt.Vertex()
		labelID := opt.Index()
		for {
			l := e.labelAt(vertexID, labelID)

			prevVertex := l.PrevVertex()
			prevLabel := l.PrevLabelIndex()
			if prevVertex == graph.None || prevLabel == graph.None {
				break
			}

			edgeID := e.g.EdgeID(prevVertex, vertexID)
			if edgeID == graph.None {
				panic("dtp: no edge between consecutive path vertices")
			}
			counts[edgeID]++
			rel[edgeID] += w

			vertexID, labelID = prevVertex, prevLabel
		}
	}
}

// TotalNumberOfPathsThroughVertex folds NumberOfPathsThroughVertex over
// every vertex of the graph as target, accumulating the full
// betweenness contribution of the current source in one pass.
//
// Precondition: same as NumberOfPathsThroughVertex.
func (e *Engine) TotalNumberOfPathsThroughVertex(counts []int, rel []float64) {
	e.g.ForAllVertexIdentifiers(graph.Sequential, func(target int) bool {
		e.NumberOfPathsThroughVertex(target, counts, rel)

		return true
	})
}

// TotalNumberOfPathsThroughEdge folds NumberOfPathsThroughEdge over
// every vertex of the graph as target.
//
// Precondition: same as NumberOfPathsThroughEdge.
func (e *Engine) TotalNumberOfPathsThroughEdge(counts []int, rel []float64) {
	e.g.ForAllVertexIdentifiers(graph.Sequential, func(target int) bool {
		e.NumberOfPathsThroughEdge(target, counts, rel)

		return true
	})
}
