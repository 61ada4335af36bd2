package taskgraph

// computeLevels performs the reverse-topological relaxation described in
// spec §4.1: level(sink) = 0, and level(p) = weight(p) + max level over
// p's successors once every one of p's successors has a finalized level.
// The worklist is seeded with the sink; a task is enqueued the instant it
// is finalized, so each task is visited exactly once regardless of
// worklist order (acyclicity guarantees termination).
func (g *Graph) computeLevels() {
	n := len(g.tasks)
	finished := make([]bool, n)
	ready := make([]int, 0, n)

	g.tasks[g.sink].level = 0
	finished[g.sink] = true
	ready = append(ready, g.sink)

	for len(ready) > 0 {
		idx := ready[len(ready)-1]
		ready = ready[:len(ready)-1]

		for _, pred := range g.tasks[idx].preds {
			if finished[pred] {
				continue
			}
			allDone := true
			maxLevel := 0
			for _, succ := range g.tasks[pred].succs {
				if !finished[succ] {
					allDone = false
					break
				}
				if g.tasks[succ].level > maxLevel {
					maxLevel = g.tasks[succ].level
				}
			}
			if allDone {
				g.tasks[pred].level = g.tasks[pred].weight + maxLevel
				finished[pred] = true
				ready = append(ready, pred)
			}
		}
	}
}
