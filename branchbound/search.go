package branchbound

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/arvonhall/pcsched/boundengine"
	"github.com/arvonhall/pcsched/internal/obs"
	"github.com/arvonhall/pcsched/partialschedule"
	"github.com/arvonhall/pcsched/taskgraph"
)

// Search runs an exact branch-and-bound search for the minimum
// list-scheduled makespan of g under cfg. It is the bbsearch(graph, m,
// timeout_seconds) entry point.
//
// cfg.TimeoutSeconds < 0 disables the deadline. A non-negative value
// bounds total wall-clock search time; on expiry Search returns
// ErrTimedOut and discards whatever incumbent it had found.
//
// Panics if g is nil or cfg.Machines < 1 — both precondition violations,
// not runtime conditions.
func Search(g *taskgraph.Graph, cfg Config) (int, error) {
	if g == nil {
		panic("branchbound: nil graph")
	}
	if cfg.Machines < 1 {
		panic("branchbound: Machines must be >= 1")
	}

	e := &engine{
		g:    g,
		s:    partialschedule.New(g, cfg.Machines),
		mode: cfg.Mode,
		log:  obs.OrNop(cfg.Logger),
	}
	if cfg.TimeoutSeconds >= 0 {
		e.hasDeadline = true
		e.deadline = time.Now().Add(time.Duration(cfg.TimeoutSeconds) * time.Second)
	}

	ready := make([]bool, g.Size())
	e.s.Add(g.Source())
	for _, succ := range g.Succs(g.Source()) {
		ready[succ] = true
	}

	const unbounded = int(^uint(0) >> 1)

	e.log.Debug("search starting", "tasks", g.Size(), "machines", cfg.Machines, "bound_mode", cfg.Mode)
	best, err := e.bb(ready, unbounded)
	if err == nil {
		e.log.Info("search finished", "nodes", e.nodes, "makespan", best)
	} else {
		e.log.Warn("search aborted", "nodes", e.nodes, "reason", err)
	}

	return best, err
}

// bb is the recursive driver: spec §4.6's bb(S, R, best).
func (e *engine) bb(ready []bool, best int) (int, error) {
	e.nodes++
	if e.hasDeadline && time.Now().After(e.deadline) {
		e.log.Debug("deadline hit", "nodes", e.nodes)

		return 0, ErrTimedOut
	}

	if err := e.s.Build(0); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}

	if e.s.IsComplete() {
		length := e.s.Length()
		if length < best {
			e.log.Info("new incumbent", "makespan", length, "nodes", e.nodes)

			return length, nil
		}

		return best, nil
	}

	if e.mode != boundengine.None {
		bound, err := e.bound()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
		}
		if bound >= best {
			return best, nil
		}
	}

	var h levelHeap
	for i := 0; i < e.g.Size(); i++ {
		if ready[i] {
			h = append(h, readyItem{id: i, level: e.g.Level(i)})
		}
	}
	heap.Init(&h)

	for h.Len() > 0 {
		id := heap.Pop(&h).(readyItem).id
		e.s.Add(id)

		var newReady []int
		for _, succ := range e.g.Succs(id) {
			allScheduled := true
			for _, p := range e.g.Preds(succ) {
				if !e.s.Contains(p) {
					allScheduled = false
					break
				}
			}
			if allScheduled {
				newReady = append(newReady, succ)
				ready[succ] = true
			}
		}

		ready[id] = false
		soln, err := e.bb(ready, best)
		ready[id] = true
		if err != nil {
			return 0, err
		}
		if soln < best {
			best = soln
		}

		for _, r := range newReady {
			ready[r] = false
		}
		e.s.Pop()
	}

	return best, nil
}

// bound computes the configured lower bound against the current prefix.
// e.s must already reflect that prefix (the caller calls s.Build(0) first).
func (e *engine) bound() (int, error) {
	switch e.mode {
	case boundengine.Fernandez:
		return boundengine.FernandezBound(e.s), nil
	case boundengine.FujitaIterative:
		return boundengine.Iterative(e.s)
	default:
		return 0, nil
	}
}
