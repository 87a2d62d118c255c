package centrality_test

import (
	"fmt"

	"github.com/egoa-go/dtpcentrality/centrality"
	"github.com/egoa-go/dtpcentrality/dtp"
	"github.com/egoa-go/dtpcentrality/graph"
	"github.com/egoa-go/dtpcentrality/label"
)

// Example computes full betweenness centrality over a 3-bus path and
// reports how many sources were processed.
func Example() {
	g := graph.NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	g.AddEdge(a, b, 1, 1)
	g.AddEdge(b, c, 1, 1)

	d := centrality.NewDriver(g, graph.CarrierAC, label.DominationStrict, dtp.SusceptanceNormSource, graph.Sequential)
	_, stats, _ := d.Run(graph.Sequential)

	fmt.Println(len(stats.Rows))
	// Output: 3
}
