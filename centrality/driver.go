// SPDX-License-Identifier: MIT
// Package: dtpcentrality/centrality
//
// driver.go — Driver: Run (full betweenness) and RunGeneratorBased
// (restricted betweenness), both folding per-source dtp.Engine runs
// into shared counter vectors.

package centrality

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/egoa-go/dtpcentrality/dtp"
	"github.com/egoa-go/dtpcentrality/graph"
	"github.com/egoa-go/dtpcentrality/label"
)

// defaultMaxParallel bounds the number of concurrent Engine runs when
// dispatched under graph.Parallel, mirroring the SetLimit discipline
// used for bounded goroutine fan-out elsewhere in the ecosystem this
// module draws its stack from.
const defaultMaxParallel = 32

// Driver computes betweenness centrality over a fixed graph by
// repeatedly running a dtp.Engine from each candidate source.
type Driver struct {
	g       *graph.Graph
	carrier graph.Carrier
	crit    label.DominationCriterion
	newSrc  dtp.SourceLabelFunc

	edgePolicy  graph.ExecutionPolicy // passed to each Engine for its incident-edge relaxation loop
	maxParallel int
	optErr      error // accumulated by opts; surfaced from Run/RunGeneratorBased
}

// NewDriver constructs a Driver bound to g. edgePolicy governs each
// worker Engine's internal incident-edge dispatch (§4.7); it is
// independent of the outer source-loop policy passed to Run and must
// not be graph.Parallel — see dtp.NewEngine, which this constructs one
// of per source and which panics on that value. outerPolicy is where
// this module's data parallelism actually lives: one Engine per
// source, never shared across goroutines.
//
// opts configures ambient knobs such as WithMaxParallel via the same
// functional-options pattern as bfs.Option: an invalid opt is recorded
// rather than panicking, and is returned the next time Run or
// RunGeneratorBased is called.
func NewDriver(g *graph.Graph, carrier graph.Carrier, crit label.DominationCriterion, newSrc dtp.SourceLabelFunc, edgePolicy graph.ExecutionPolicy, opts ...Option) *Driver {
	if edgePolicy == graph.Parallel {
		panic("centrality: NewDriver edgePolicy must not be graph.Parallel; see dtp.NewEngine")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Driver{g: g, carrier: carrier, crit: crit, newSrc: newSrc, edgePolicy: edgePolicy, maxParallel: o.maxParallel, optErr: o.err}
}

// Result holds the two counter pairs §6 names as the core's result
// outputs: TotalNumberOfPaths (integer, unnormalised path-traversal
// counts) and TotalRelativeNumberOfPaths (real, normalised into
// [0, 1] by the betweenness variant's m_B).
type Result struct {
	VertexCounts   []int
	VertexRelative []float64
	EdgeCounts     []int
	EdgeRelative   []float64
}

// sourceResult is one source's contribution, computed independently so
// goroutines never share mutable state.
type sourceResult struct {
	vertexCounts   []int
	vertexRelative []float64
	edgeCounts     []int
	edgeRelative   []float64
	stats          dtp.StatsRow
}

// runSources dispatches runOne across sources according to outerPolicy
// and returns one sourceResult per source, in the same order. Parallel
// dispatch is bounded by d.maxParallel via errgroup.SetLimit; Sequential
// and Breakable both run in source order on the calling goroutine
// (Breakable has no early-exit condition here, so it behaves as
// Sequential).
func (d *Driver) runSources(outerPolicy graph.ExecutionPolicy, sources []int, runOne func(source int) sourceResult) ([]sourceResult, error) {
	results := make([]sourceResult, len(sources))

	if outerPolicy != graph.Parallel {
		for i, s := range sources {
			results[i] = runOne(s)
		}

		return results, nil
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(d.maxParallel)
	for i, s := range sources {
		i, s := i, s
		g.Go(func() error {
			results[i] = runOne(s)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Run computes full betweenness centrality (§4.6): every vertex is
// both a source and a target, normalised by m_B = |V|*(|V|-1).
func (d *Driver) Run(outerPolicy graph.ExecutionPolicy) (result Result, stats StatsCollection, err error) {
	if d.optErr != nil {
		return Result{}, StatsCollection{}, d.optErr
	}

	n := d.g.NumberOfVertices()
	m := d.g.NumberOfEdges()

	sources := make([]int, n)
	for i := range sources {
		sources[i] = i
	}

	results, err := d.runSources(outerPolicy, sources, func(source int) sourceResult {
		e := dtp.NewEngine(d.g, d.carrier, d.crit, d.newSrc, d.edgePolicy)
		e.SetSource(source)
		e.Run()

		vc := make([]int, n)
		vr := make([]float64, n)
		ec := make([]int, m)
		er := make([]float64, m)
		e.TotalNumberOfPathsThroughVertex(vc, vr)
		e.TotalNumberOfPathsThroughEdge(ec, er)

		return sourceResult{vertexCounts: vc, vertexRelative: vr, edgeCounts: ec, edgeRelative: er, stats: e.Stats()}
	})
	if err != nil {
		return Result{}, StatsCollection{}, err
	}

	result = reduce(results, n, m)
	rows := make([]dtp.StatsRow, len(results))
	for i, r := range results {
		rows[i] = r.stats
	}

	mB := float64(n) * float64(n-1)
	if mB == 0 {
		// |V| < 2: no source-target pair exists to normalise over (§4.6,
		// §7 "numeric degeneracies ... yield zeroed outputs without
		// division"). Zero the counters rather than leave a
		// self-to-self path-count artefact in them.
		return Result{VertexCounts: make([]int, n), VertexRelative: make([]float64, n), EdgeCounts: make([]int, m), EdgeRelative: make([]float64, m)}, StatsCollection{Rows: rows}, nil
	}
	normalize(result.VertexRelative, mB)
	normalize(result.EdgeRelative, mB)

	return result, StatsCollection{Rows: rows}, nil
}

// RunGeneratorBased computes the restricted betweenness variant of
// §4.6/§8: only graph.RoleGenerator vertices act as sources, only
// graph.RoleLoad vertices are counted as targets, and the result is
// normalised by m_B = |generators|*|loads|.
func (d *Driver) RunGeneratorBased(outerPolicy graph.ExecutionPolicy) (result Result, stats StatsCollection, err error) {
	if d.optErr != nil {
		return Result{}, StatsCollection{}, d.optErr
	}

	n := d.g.NumberOfVertices()
	m := d.g.NumberOfEdges()

	var generators, loads []int
	d.g.ForAllVertexIdentifiers(graph.Sequential, func(id int) bool {
		switch d.g.VertexAt(id).Role {
		case graph.RoleGenerator:
			generators = append(generators, id)
		case graph.RoleLoad:
			loads = append(loads, id)
		}

		return true
	})

	results, err := d.runSources(outerPolicy, generators, func(source int) sourceResult {
		e := dtp.NewEngine(d.g, d.carrier, d.crit, d.newSrc, d.edgePolicy)
		e.SetSource(source)
		e.Run()

		vc := make([]int, n)
		vr := make([]float64, n)
		ec := make([]int, m)
		er := make([]float64, m)
		for _, target := range loads {
			e.NumberOfPathsThroughVertex(target, vc, vr)
			e.NumberOfPathsThroughEdge(target, ec, er)
		}

		return sourceResult{vertexCounts: vc, vertexRelative: vr, edgeCounts: ec, edgeRelative: er, stats: e.Stats()}
	})
	if err != nil {
		return Result{}, StatsCollection{}, err
	}

	result = reduce(results, n, m)
	rows := make([]dtp.StatsRow, len(results))
	for i, r := range results {
		rows[i] = r.stats
	}

	mB := float64(len(generators)) * float64(len(loads))
	normalize(result.VertexRelative, mB)
	normalize(result.EdgeRelative, mB)

	return result, StatsCollection{Rows: rows}, nil
}

// reduce element-wise sums every sourceResult's counter pairs into one
// Result sized (n, m). Summation of nonnegative integers/reals is
// commutative and associative, so the result is identical regardless
// of the order in which parallel workers produced results (§5).
func reduce(results []sourceResult, n, m int) Result {
	out := Result{
		VertexCounts:   make([]int, n),
		VertexRelative: make([]float64, n),
		EdgeCounts:     make([]int, m),
		EdgeRelative:   make([]float64, m),
	}
	for _, r := range results {
		for v, c := range r.vertexCounts {
			out.VertexCounts[v] += c
		}
		for v, c := range r.vertexRelative {
			out.VertexRelative[v] += c
		}
		for e, c := range r.edgeCounts {
			out.EdgeCounts[e] += c
		}
		for e, c := range r.edgeRelative {
			out.EdgeRelative[e] += c
		}
	}

	return out
}

// normalize divides every entry of v by mB in place, unless mB is zero
// (no source-target pairs exist), in which case v is left as all
// zeros rather than dividing by zero.
func normalize(v []float64, mB float64) {
	if mB == 0 {
		return
	}
	for i := range v {
		v[i] /= mB
	}
}
