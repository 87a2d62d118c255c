// SPDX-License-Identifier: MIT
// Package: dtpcentrality/dtp
//
// stats.go — the per-run StatsRow, summable across parallel workers.

package dtp

import "fmt"

// StatsRow is the per-source runtime row described in §7: one instance
// per Engine.Run call, in the exact column order the CSV writer in the
// centrality package emits.
type StatsRow struct {
	NameOfProblem string
	Name          string
	SourceId      int

	NumberOfVertices  int
	NumberOfGenerators int
	NumberOfLoads      int
	NumberOfEdges      int

	NumberOfScannedEdges          int
	NumberOfEdgesProducingNoCycle int
	NumberOfRelaxedEdges          int
	NumberOfLabels                int

	GlobalElapsedMilliseconds float64
}

// Header returns the CSV header line, in the same column order Fields
// emits values.
func (StatsRow) Header() string {
	return "NameOfProblem,Name,SourceId,NumberOfVertices,NumberOfGenerators," +
		"NumberOfLoads,NumberOfEdges,NumberOfScannedEdges,NumberOfEdgesProducingNoCycle," +
		"NumberOfRelaxedEdges,NumberOfLabels,GlobalElapsedMilliseconds"
}

// Fields renders the row as a CSV line.
func (r StatsRow) Fields() string {
	return fmt.Sprintf("%s,%s,%d,%d,%d,%d,%d,%d,%d,%d,%d,%f",
		r.NameOfProblem, r.Name, r.SourceId,
		r.NumberOfVertices, r.NumberOfGenerators, r.NumberOfLoads, r.NumberOfEdges,
		r.NumberOfScannedEdges, r.NumberOfEdgesProducingNoCycle, r.NumberOfRelaxedEdges,
		r.NumberOfLabels, r.GlobalElapsedMilliseconds)
}

// Add accumulates the edge/label counters and elapsed time of other
// into r, leaving the identifying fields (NameOfProblem, Name,
// SourceId, graph-size fields) untouched — used by the centrality
// driver to fold per-source rows into a running total (§7, "summable
// via += for parallel aggregation").
func (r *StatsRow) Add(other StatsRow) {
	r.NumberOfScannedEdges += other.NumberOfScannedEdges
	r.NumberOfEdgesProducingNoCycle += other.NumberOfEdgesProducingNoCycle
	r.NumberOfRelaxedEdges += other.NumberOfRelaxedEdges
	r.NumberOfLabels += other.NumberOfLabels
	r.GlobalElapsedMilliseconds += other.GlobalElapsedMilliseconds
}
