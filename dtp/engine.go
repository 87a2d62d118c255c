// SPDX-License-Identifier: MIT
// Package: dtpcentrality/dtp
//
// engine.go — Engine: SetSource, Run, and the shared source-label
// factories for the two label flavours.

package dtp

import (
	"time"

	"github.com/egoa-go/dtpcentrality/bucket"
	"github.com/egoa-go/dtpcentrality/graph"
	"github.com/egoa-go/dtpcentrality/label"
	"github.com/egoa-go/dtpcentrality/pqueue"
)

// SourceLabelFunc constructs the zero-key label for a source vertex.
// SusceptanceNormSource and VoltageAngleDifferenceSource are the two
// ready-made factories; an Engine is parameterised over exactly one of
// them for its entire lifetime (§4.2).
type SourceLabelFunc func(source int) label.Label

// SusceptanceNormSource builds single-criterion source labels.
func SusceptanceNormSource(source int) label.Label {
	return label.NewSusceptanceNormSourceLabel(source)
}

// VoltageAngleDifferenceSource builds two-criterion source labels.
func VoltageAngleDifferenceSource(source int) label.Label {
	return label.NewVoltageAngleDifferenceSourceLabel(source)
}

// Engine is the generalised multi-label Dijkstra search of §4.5. One
// Engine instance runs one source at a time; SetSource resets it to a
// clean state so a single instance can be reused across many sources.
// The centrality driver does not reuse instances; it constructs one
// Engine per source.
type Engine struct {
	g       *graph.Graph
	carrier graph.Carrier
	crit    label.DominationCriterion
	newSrc  SourceLabelFunc
	policy  graph.ExecutionPolicy

	buckets []*bucket.Bucket
	q       *pqueue.MappingHeap
	source  int

	stats StatsRow
}

// NewEngine constructs an Engine bound to g for its entire lifetime.
// carrier selects which susceptance Extend reads; crit is the
// domination criterion every bucket enforces; newSrc selects the label
// flavour (SusceptanceNormSource or VoltageAngleDifferenceSource);
// policy governs the Sequential/Breakable dispatch of the per-vertex
// incident-edge relaxation loop (§4.7).
//
// Precondition: policy != graph.Parallel. Run's edge-relaxation
// callback mutates this Engine's buckets, frontier and stats counters
// with no synchronisation — §5 fixes one source's search as
// single-threaded cooperative, and reserves data-parallel dispatch for
// the centrality driver's outer loop *across* sources, each with its
// own Engine. Passing graph.Parallel here would race; it is a
// programmer error and panics rather than silently racing.
func NewEngine(g *graph.Graph, carrier graph.Carrier, crit label.DominationCriterion, newSrc SourceLabelFunc, policy graph.ExecutionPolicy) *Engine {
	if policy == graph.Parallel {
		panic("dtp: NewEngine policy must not be graph.Parallel; the per-source search is single-threaded cooperative (see §5)")
	}

	return &Engine{g: g, carrier: carrier, crit: crit, newSrc: newSrc, policy: policy}
}

// SetSource clears all engine state and seeds the search at s: a fresh
// bucket per vertex, a fresh frontier holding only s, and a fresh
// StatsRow naming s as SourceId.
func (e *Engine) SetSource(s int) {
	n := e.g.NumberOfVertices()
	e.buckets = make([]*bucket.Bucket, n)
	for i := range e.buckets {
		e.buckets[i] = bucket.New(e.crit)
	}
	e.q = pqueue.NewMappingHeap()
	e.source = s

	generators, loads := 0, 0
	e.g.ForAllVertexIdentifiers(graph.Sequential, func(id int) bool {
		switch e.g.VertexAt(id).Role {
		case graph.RoleGenerator:
			generators++
		case graph.RoleLoad:
			loads++
		}

		return true
	})

	e.stats = StatsRow{
		SourceId:           s,
		NumberOfVertices:   n,
		NumberOfGenerators: generators,
		NumberOfLoads:      loads,
		NumberOfEdges:      e.g.NumberOfEdges(),
	}

	src := e.newSrc(s)
	e.buckets[s].Merge(src)
	e.q.Insert(s, src)
}

// Run executes the search to completion (§4.5): repeatedly pop the
// globally-smallest unprocessed label, finalise it, and relax every
// incident edge, until the frontier is exhausted. Stats accumulates
// the counters §7 describes.
//
// Precondition: SetSource has been called at least once.
func (e *Engine) Run() {
	start := time.Now()

	for !e.q.Empty() {
		u, labelU := e.q.DeleteTop()
		e.buckets[u].Pop() // finalises labelU's Index via the shared pointer

		if !e.buckets[u].UnprocessedEmpty() {
			e.q.Insert(u, e.buckets[u].Top())
		}

		e.g.ForAllEdgesAt(e.policy, u, func(edge *graph.Edge) bool {
			e.stats.NumberOfScannedEdges++

			next, ok := labelU.Extend(edge, e.carrier)
			if !ok {
				return true // would revisit a vertex already on this path
			}
			e.stats.NumberOfEdgesProducingNoCycle++
			next.SetPrev(u, labelU.Index())

			v := next.Vertex()
			if !e.buckets[v].Merge(next) {
				return true // dominated, discarded
			}
			e.stats.NumberOfRelaxedEdges++

			if !e.q.HasKeyOf(v) {
				e.q.Insert(v, next)
			} else if next.Less(e.q.KeyOf(v)) {
				e.q.ChangeKey(v, next)
			}

			return true
		})
	}

	total := 0
	for _, b := range e.buckets {
		total += b.Size()
	}
	e.stats.NumberOfLabels = total
	e.stats.GlobalElapsedMilliseconds = float64(time.Since(start)) / float64(time.Millisecond)
}

// Stats returns the StatsRow accumulated by the most recent Run.
func (e *Engine) Stats() StatsRow { return e.stats }

// Source returns the vertex SetSource most recently seeded the search with.
func (e *Engine) Source() int { return e.source }

func (e *Engine) labelAt(vertex, index int) label.Label {
	return e.buckets[vertex].ProcessedAt(index)
}
