package taskgraph

import (
	"errors"

	"github.com/arvonhall/pcsched/internal/obs"
)

// Sentinel errors for taskgraph construction.
var (
	// ErrInvalidDependency is returned by Vertex when a dependency id does
	// not already refer to a task declared earlier in the graph.
	ErrInvalidDependency = errors.New("taskgraph: dependency id not yet declared")

	// ErrAlreadyBuilt is returned by Vertex once Build has frozen the graph.
	ErrAlreadyBuilt = errors.New("taskgraph: vertex added after build")

	// ErrOutOfMemory mirrors the historical allocation-failure sentinel. No
	// function in this package returns it: Go allocation failures are not
	// recoverable errors.
	ErrOutOfMemory = errors.New("taskgraph: out of memory")
)

// task holds per-vertex data. Tasks are owned by Graph.tasks and referenced
// everywhere else by dense integer id; preds/succs are never followed as
// ownership edges — arena storage plus dense indices, in place of a
// pointer-graph with back-reference ownership cycles.
type task struct {
	weight int
	preds  []int
	succs  []int
	level  int
}

// Graph is the weighted DAG: a finite set of tasks plus a synthetic source
// (id 0) and, after Build, a synthetic sink (the last id). Task ids are
// dense integers in [0, Size), assigned in insertion order.
type Graph struct {
	tasks []task
	built bool
	sink  int // meaningful only once built
	log   obs.Logger
}

// Option configures a Graph at Create time.
type Option func(*Graph)

// WithLogger attaches a structured logger for build milestones (final
// size, critical path length) — never called on a per-vertex basis. A nil
// logger (the default) discards everything.
func WithLogger(l obs.Logger) Option {
	return func(g *Graph) { g.log = obs.OrNop(l) }
}
