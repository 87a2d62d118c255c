package label_test

import (
	"testing"

	"github.com/egoa-go/dtpcentrality/graph"
	"github.com/egoa-go/dtpcentrality/label"
	"github.com/stretchr/testify/require"
)

func buildPath(t *testing.T) (*graph.Graph, int, int, int) {
	t.Helper()
	g := graph.NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	_, err := g.AddEdge(a, b, 2.0, 10.0)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, 4.0, 5.0)
	require.NoError(t, err)

	return g, a, b, c
}

func TestSusceptanceNormSourceLabel(t *testing.T) {
	l := label.NewSusceptanceNormSourceLabel(7)
	require.Equal(t, 7, l.Vertex())
	require.Equal(t, 0.0, l.Value())
	require.Equal(t, label.None, l.PrevVertex())
	require.True(t, l.Visited().Has(7))
}

func TestSusceptanceNormExtendRejectsCycle(t *testing.T) {
	g, a, b, _ := buildPath(t)
	src := label.NewSusceptanceNormSourceLabel(a)
	eAB := g.EdgeAt(g.EdgeID(a, b))

	extended, ok := src.Extend(eAB, graph.CarrierAC)
	require.True(t, ok)
	require.Equal(t, b, extended.Vertex())
	require.InDelta(t, 0.5, extended.(*label.SusceptanceNormLabel).Bnorm, 1e-12)

	// Extending back across the same edge revisits a, which is already visited.
	_, ok = extended.Extend(eAB, graph.CarrierAC)
	require.False(t, ok)
}

func TestVoltageAngleDifferenceExtend(t *testing.T) {
	g, a, b, c := buildPath(t)
	src := label.NewVoltageAngleDifferenceSourceLabel(a)
	eAB := g.EdgeAt(g.EdgeID(a, b))
	eBC := g.EdgeAt(g.EdgeID(b, c))

	l1, ok := src.Extend(eAB, graph.CarrierAC)
	require.True(t, ok)
	v1 := l1.(*label.VoltageAngleDifferenceLabel)
	require.InDelta(t, 0.5, v1.Bnorm, 1e-12)
	require.Equal(t, 10.0, v1.MinCap)

	l2, ok := l1.Extend(eBC, graph.CarrierAC)
	require.True(t, ok)
	v2 := l2.(*label.VoltageAngleDifferenceLabel)
	require.InDelta(t, 0.75, v2.Bnorm, 1e-12)
	require.Equal(t, 5.0, v2.MinCap) // min(10, 5)
	require.InDelta(t, 0.75*5.0, v2.Value(), 1e-9)
}

func TestDominationStrictVsWeak(t *testing.T) {
	a := &label.VoltageAngleDifferenceLabel{Bnorm: 1.0, MinCap: 5.0}
	b := &label.VoltageAngleDifferenceLabel{Bnorm: 1.0, MinCap: 5.0}

	require.False(t, a.Dominates(b, label.DominationStrict))
	require.True(t, a.Dominates(b, label.DominationWeak))
	require.False(t, a.Dominates(b, label.DominationNone))

	better := &label.VoltageAngleDifferenceLabel{Bnorm: 0.5, MinCap: 5.0}
	require.True(t, better.Dominates(a, label.DominationStrict))
	require.False(t, a.Dominates(better, label.DominationStrict))

	incomparable := &label.VoltageAngleDifferenceLabel{Bnorm: 0.5, MinCap: 1.0}
	require.False(t, incomparable.Dominates(a, label.DominationStrict))
	require.False(t, a.Dominates(incomparable, label.DominationStrict))
}

func TestLessTiebreaksOnCapacity(t *testing.T) {
	lo := &label.VoltageAngleDifferenceLabel{Bnorm: 1.0, MinCap: 10.0}
	hi := &label.VoltageAngleDifferenceLabel{Bnorm: 1.0, MinCap: 2.0}
	require.True(t, lo.Less(hi)) // same bnorm, larger capacity sorts first
	require.False(t, hi.Less(lo))
}
