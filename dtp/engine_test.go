package dtp_test

import (
	"testing"

	"github.com/egoa-go/dtpcentrality/dtp"
	"github.com/egoa-go/dtpcentrality/graph"
	"github.com/egoa-go/dtpcentrality/label"
	"github.com/stretchr/testify/require"
)

// triangle builds a 3-vertex, 3-edge graph (0-1, 1-2, 0-2) with unit
// susceptance and unit capacity on every edge.
func triangle(t *testing.T) (*graph.Graph, [3]int) {
	t.Helper()
	g := graph.NewGraph()
	v0 := g.AddVertex()
	v1 := g.AddVertex()
	v2 := g.AddVertex()
	_, err := g.AddEdge(v0, v1, 1, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(v1, v2, 1, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(v0, v2, 1, 1)
	require.NoError(t, err)

	return g, [3]int{v0, v1, v2}
}

func TestEngineRunRejectsTheDominatedDetour(t *testing.T) {
	g, v := triangle(t)
	e := dtp.NewEngine(g, graph.CarrierAC, label.DominationStrict, dtp.SusceptanceNormSource, graph.Sequential)
	e.SetSource(v[0])
	e.Run()

	sub, value := e.Result(v[2])
	require.Equal(t, 1.0, value)
	require.ElementsMatch(t, []int{v[0], v[2]}, sub.Vertices)
	require.ElementsMatch(t, []int{g.EdgeID(v[0], v[2])}, sub.Edges)
}

func TestEngineRunUnreachableTargetReturnsEmptyResult(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddVertex()
	isolated := g.AddVertex()

	e := dtp.NewEngine(g, graph.CarrierAC, label.DominationStrict, dtp.SusceptanceNormSource, graph.Sequential)
	e.SetSource(a)
	e.Run()

	sub, value := e.Result(isolated)
	require.Zero(t, value)
	require.Empty(t, sub.Vertices)
	require.Empty(t, sub.Edges)
}

func TestEngineStatsCountEveryScannedEdge(t *testing.T) {
	g, v := triangle(t)
	e := dtp.NewEngine(g, graph.CarrierAC, label.DominationStrict, dtp.SusceptanceNormSource, graph.Sequential)
	e.SetSource(v[0])
	e.Run()

	stats := e.Stats()
	require.Equal(t, v[0], stats.SourceId)
	require.Equal(t, 3, stats.NumberOfVertices)
	require.Equal(t, 3, stats.NumberOfEdges)
	require.Positive(t, stats.NumberOfScannedEdges)
	require.Positive(t, stats.NumberOfLabels)
}

func TestTotalNumberOfPathsThroughVertexCountsTargetUnconditionally(t *testing.T) {
	g, v := triangle(t)
	e := dtp.NewEngine(g, graph.CarrierAC, label.DominationStrict, dtp.SusceptanceNormSource, graph.Sequential)
	e.SetSource(v[0])
	e.Run()

	counts := make([]int, g.NumberOfVertices())
	rel := make([]float64, g.NumberOfVertices())
	e.TotalNumberOfPathsThroughVertex(counts, rel)

	// Source 0 lies on every optimal path to 0, 1 and 2: once for
	// target 0 itself, and once more for each of the other two targets.
	require.Equal(t, 3, counts[v[0]])
	require.Equal(t, 1, counts[v[1]])
	require.Equal(t, 1, counts[v[2]])
}

func TestTotalNumberOfPathsThroughEdgeSkipsTheSourceStep(t *testing.T) {
	g, v := triangle(t)
	e := dtp.NewEngine(g, graph.CarrierAC, label.DominationStrict, dtp.SusceptanceNormSource, graph.Sequential)
	e.SetSource(v[0])
	e.Run()

	counts := make([]int, g.NumberOfEdges())
	rel := make([]float64, g.NumberOfEdges())
	e.TotalNumberOfPathsThroughEdge(counts, rel)

	e01 := g.EdgeID(v[0], v[1])
	e02 := g.EdgeID(v[0], v[2])
	e12 := g.EdgeID(v[1], v[2])

	require.Equal(t, 1, counts[e01])
	require.Equal(t, 1, counts[e02])
	require.Equal(t, 0, counts[e12])
}

func TestNewEngineRejectsParallelEdgePolicy(t *testing.T) {
	g, _ := triangle(t)
	require.Panics(t, func() {
		dtp.NewEngine(g, graph.CarrierAC, label.DominationStrict, dtp.SusceptanceNormSource, graph.Parallel)
	})
}

func TestEngineSupportsVoltageAngleDifferenceLabels(t *testing.T) {
	g, v := triangle(t)
	e := dtp.NewEngine(g, graph.CarrierAC, label.DominationStrict, dtp.VoltageAngleDifferenceSource, graph.Sequential)
	e.SetSource(v[0])
	e.Run()

	_, value := e.Result(v[2])
	require.Equal(t, 1.0, value) // bnorm=1, minCap=1 on the direct edge
}
