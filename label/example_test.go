package label_test

import (
	"fmt"

	"github.com/egoa-go/dtpcentrality/graph"
	"github.com/egoa-go/dtpcentrality/label"
)

// Example demonstrates relaxing a two-criterion label across one edge.
func Example() {
	g := graph.NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()
	_, _ = g.AddEdge(a, b, 2.0, 10.0)

	src := label.NewVoltageAngleDifferenceSourceLabel(a)
	eAB := g.EdgeAt(g.EdgeID(a, b))
	next, inserted := src.Extend(eAB, graph.CarrierAC)

	fmt.Println(inserted, next.Vertex(), next.Value())
	// Output: true 1 5
}
