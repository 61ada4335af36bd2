package taskgraph

import "github.com/arvonhall/pcsched/internal/obs"

// Create returns an empty Graph containing only the source task (id 0,
// weight 0, no predecessors).
//
// Complexity: O(1).
func Create(opts ...Option) *Graph {
	g := &Graph{tasks: []task{{}}, log: obs.Nop()}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Vertex appends a task with the given weight and dependency ids, returning
// its newly assigned id. An empty deps slice wires the source (id 0) as the
// task's sole dependency. Every id in deps must already exist (have been
// returned by an earlier Vertex call, or be 0); this is what makes the
// graph acyclic by construction — a task can never depend on itself or on
// anything declared after it.
//
// Returns ErrInvalidDependency if any dependency id is out of range, or
// ErrAlreadyBuilt if Build has already frozen the graph.
//
// Complexity: O(len(deps)).
func (g *Graph) Vertex(weight int, deps []int) (int, error) {
	if g.built {
		return 0, ErrAlreadyBuilt
	}
	idx := len(g.tasks)
	if len(deps) == 0 {
		deps = []int{0}
	}
	for _, d := range deps {
		if d < 0 || d >= idx {
			return 0, ErrInvalidDependency
		}
	}
	t := task{weight: weight, preds: append([]int(nil), deps...)}
	g.tasks = append(g.tasks, t)
	for _, d := range deps {
		g.tasks[d].succs = append(g.tasks[d].succs, idx)
	}

	return idx, nil
}

// Build idempotently appends the sink as a successor of every task that
// currently has none, then computes every task's level. Calling Build more
// than once has no further effect.
//
// Complexity: O(V + E).
func (g *Graph) Build() error {
	if g.built {
		return nil
	}

	var exits []int
	for i := range g.tasks {
		if len(g.tasks[i].succs) == 0 {
			exits = append(exits, i)
		}
	}
	sink, err := g.Vertex(0, exits)
	if err != nil {
		return err
	}
	g.sink = sink
	g.built = true
	g.computeLevels()
	g.log.Debug("graph built", "size", g.Size(), "critical_path", g.tasks[0].level)

	return nil
}

// Size returns the number of tasks in the graph, including source and
// (once built) sink.
func (g *Graph) Size() int { return len(g.tasks) }

// Source returns the source task id, always 0.
func (g *Graph) Source() int { return 0 }

// Sink returns the sink task id. Valid only after Build.
func (g *Graph) Sink() int {
	if !g.built {
		panic("taskgraph: Sink called before Build")
	}

	return g.sink
}

func (g *Graph) checkID(id int) {
	if id < 0 || id >= len(g.tasks) {
		panic("taskgraph: task id out of range")
	}
}

// Weight returns the processing time of task id.
func (g *Graph) Weight(id int) int {
	g.checkID(id)

	return g.tasks[id].weight
}

// Level returns the critical-path distance from task id to the sink,
// inclusive of id's own weight. Valid only after Build.
func (g *Graph) Level(id int) int {
	g.checkID(id)
	if !g.built {
		panic("taskgraph: Level called before Build")
	}

	return g.tasks[id].level
}

// Preds returns the direct predecessor ids of task id. The returned slice
// must not be mutated by the caller.
func (g *Graph) Preds(id int) []int {
	g.checkID(id)

	return g.tasks[id].preds
}

// Succs returns the direct successor ids of task id. The returned slice
// must not be mutated by the caller.
func (g *Graph) Succs(id int) []int {
	g.checkID(id)

	return g.tasks[id].succs
}

// NPreds returns len(Preds(id)).
func (g *Graph) NPreds(id int) int {
	g.checkID(id)

	return len(g.tasks[id].preds)
}

// NSuccs returns len(Succs(id)).
func (g *Graph) NSuccs(id int) int {
	g.checkID(id)

	return len(g.tasks[id].succs)
}
