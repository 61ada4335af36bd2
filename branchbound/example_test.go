package branchbound_test

import (
	"fmt"

	"github.com/arvonhall/pcsched/boundengine"
	"github.com/arvonhall/pcsched/branchbound"
	"github.com/arvonhall/pcsched/taskgraph"
)

// ExampleSearch finds the exact optimal makespan for the "5-then-5-twos"
// scenario across three machine counts.
func ExampleSearch() {
	weights := []int{5, 2, 2, 2, 2, 2}

	for _, m := range []int{2, 3, 4} {
		g := taskgraph.Create()
		for _, w := range weights {
			_, _ = g.Vertex(w, nil)
		}
		_ = g.Build()

		makespan, err := branchbound.Search(g, branchbound.Config{
			Machines:       m,
			TimeoutSeconds: -1,
			Mode:           boundengine.Fernandez,
		})
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Printf("m=%d makespan=%d\n", m, makespan)
	}

	// Output:
	// m=2 makespan=8
	// m=3 makespan=6
	// m=4 makespan=5
}
