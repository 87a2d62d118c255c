package dtp_test

import (
	"fmt"

	"github.com/egoa-go/dtpcentrality/dtp"
	"github.com/egoa-go/dtpcentrality/graph"
	"github.com/egoa-go/dtpcentrality/label"
)

// Example runs a DTP search over a 3-bus triangle and reports the
// dominating-theta-path value from bus 0 to bus 2.
func Example() {
	g := graph.NewGraph()
	a := g.AddVertex(graph.WithLabel("bus-A"))
	b := g.AddVertex(graph.WithLabel("bus-B"))
	c := g.AddVertex(graph.WithLabel("bus-C"))
	g.AddEdge(a, b, 2.0, 100)
	g.AddEdge(b, c, 2.0, 100)
	g.AddEdge(a, c, 1.0, 100)

	e := dtp.NewEngine(g, graph.CarrierAC, label.DominationStrict, dtp.SusceptanceNormSource, graph.Sequential)
	e.SetSource(a)
	e.Run()

	_, value := e.Result(c)
	fmt.Println(value)
	// Output: 1
}
