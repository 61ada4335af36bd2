package taskgraph_test

import (
	"fmt"

	"github.com/arvonhall/pcsched/taskgraph"
)

// ExampleGraph builds a three-task fan-in and reports its derived
// attributes.
func ExampleGraph() {
	g := taskgraph.Create()

	a, _ := g.Vertex(3, nil)       // depends on the source
	b, _ := g.Vertex(5, nil)       // depends on the source
	_, _ = g.Vertex(2, []int{a, b}) // depends on both a and b

	_ = g.Build()

	fmt.Println("size:", g.Size())
	fmt.Println("critical path:", g.Level(g.Source()))
	fmt.Println("sink preds:", len(g.Preds(g.Sink())))

	// Output:
	// size: 5
	// critical path: 7
	// sink preds: 1
}
