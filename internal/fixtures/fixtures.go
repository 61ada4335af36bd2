// Package fixtures builds the seed-suite graphs from the scheduling core's
// testable-properties scenarios, shared across taskgraph, partialschedule,
// boundengine and branchbound tests so the fixtures are defined exactly
// once.
package fixtures

import "github.com/arvonhall/pcsched/taskgraph"

// mustVertex panics on error; fixtures are fixed at compile time so any
// error here is a programmer mistake in the fixture itself.
func mustVertex(g *taskgraph.Graph, weight int, deps []int) int {
	id, err := g.Vertex(weight, deps)
	if err != nil {
		panic(err)
	}

	return id
}

// DiamondOfDiamonds builds spec scenario A: 11 user tasks a..k with
// weights [1..11] and dependencies
//
//	a->b, c->d, {b,d}->e, e->f, (source)->g, {f,g}->h, f->i, {h,i}->j, j->k
//
// g declares no dependency, so it is wired directly to the source — this
// is what gives the source its 3 successors (a, c, g).
//
// After Build: Size()==13, Level(source)==48, Level(g)==36, source has 3
// successors, sink has 1 predecessor.
func DiamondOfDiamonds() (g *taskgraph.Graph, ids map[string]int) {
	g = taskgraph.Create()
	ids = make(map[string]int, 11)

	ids["a"] = mustVertex(g, 1, nil)
	ids["b"] = mustVertex(g, 2, []int{ids["a"]})
	ids["c"] = mustVertex(g, 3, nil)
	ids["d"] = mustVertex(g, 4, []int{ids["c"]})
	ids["e"] = mustVertex(g, 5, []int{ids["b"], ids["d"]})
	ids["f"] = mustVertex(g, 6, []int{ids["e"]})
	ids["g"] = mustVertex(g, 7, nil) // rooted directly at source, per original_source/tests.c
	ids["h"] = mustVertex(g, 8, []int{ids["f"], ids["g"]})
	ids["i"] = mustVertex(g, 9, []int{ids["f"]})
	ids["j"] = mustVertex(g, 10, []int{ids["h"], ids["i"]})
	ids["k"] = mustVertex(g, 11, []int{ids["j"]})

	if err := g.Build(); err != nil {
		panic(err)
	}

	return g, ids
}

// Letters names the same graph as DiamondOfDiamonds, cross-referenced
// against original_source/tests.c's test_dag/test_schedule assertions
// (dag_weight(e)==5, dag_nsuccs(source)==3, dag_npreds(sink)==1, ...),
// which exercise this exact fixture under its C name.
func Letters() (g *taskgraph.Graph, ids map[string]int) {
	return DiamondOfDiamonds()
}

// DiamondOfDiamondsFullOrder returns the complete valid order
// [source,a,c,b,d,e,g,f,h,i,j,k,sink] from spec scenario A, which yields
// length 48 on m=2 machines.
func DiamondOfDiamondsFullOrder(g *taskgraph.Graph, ids map[string]int) []int {
	return []int{g.Source(), ids["a"], ids["c"], ids["b"], ids["d"], ids["e"],
		ids["g"], ids["f"], ids["h"], ids["i"], ids["j"], ids["k"], g.Sink()}
}

// FiveThenFiveTwos builds spec scenario B: six independent tasks rooted
// directly at the source with weights [5,2,2,2,2,2].
func FiveThenFiveTwos() (g *taskgraph.Graph, ids []int) {
	g = taskgraph.Create()
	weights := []int{5, 2, 2, 2, 2, 2}
	ids = make([]int, len(weights))
	for i, w := range weights {
		ids[i] = mustVertex(g, w, nil)
	}
	if err := g.Build(); err != nil {
		panic(err)
	}

	return g, ids
}
