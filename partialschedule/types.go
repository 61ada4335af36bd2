package partialschedule

import (
	"errors"

	"github.com/arvonhall/pcsched/internal/obs"
	"github.com/arvonhall/pcsched/taskgraph"
)

// ErrOutOfMemory mirrors the historical allocation-failure sentinel. No
// function in this package returns it.
var ErrOutOfMemory = errors.New("partialschedule: out of memory")

// Schedule is the ordered prefix S described in spec §3 "Partial schedule
// S", together with its derived list-scheduling attributes.
type Schedule struct {
	g *taskgraph.Graph
	m int

	order    []int
	contains []bool

	length int
	minEnd []int
	// maxStart[i] is the latest start time task i may take without
	// lengthening the target makespan T used by the last Build call.
	maxStart []int

	// scratch buffers reused across Build calls; sized once at New.
	machineBusy []int
	machineOf   []int
	finish      []int
	worklist    []int
	finished    []bool

	log obs.Logger
}

// Option configures a Schedule at New time.
type Option func(*Schedule)

// WithLogger attaches a structured logger. New is the only place this
// schedule logs anything — Build, Add, and Pop run once per search node
// and must stay silent. A nil logger (the default) discards everything.
func WithLogger(l obs.Logger) Option {
	return func(s *Schedule) { s.log = obs.OrNop(l) }
}

// New creates an empty Schedule over g with m identical machines.
//
// Panics if g is nil or m < 1 (precondition violations per the scheduling
// core's assertion discipline).
func New(g *taskgraph.Graph, m int, opts ...Option) *Schedule {
	if g == nil {
		panic("partialschedule: nil graph")
	}
	if m < 1 {
		panic("partialschedule: m must be >= 1")
	}
	n := g.Size()

	s := &Schedule{
		g:           g,
		m:           m,
		order:       make([]int, 0, n),
		contains:    make([]bool, n),
		minEnd:      make([]int, n),
		maxStart:    make([]int, n),
		machineBusy: make([]int, m),
		machineOf:   make([]int, n),
		finish:      make([]int, n),
		worklist:    make([]int, 0, n),
		finished:    make([]bool, n),
		log:         obs.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log.Debug("schedule created", "tasks", n, "machines", m)

	return s
}

// Graph returns the graph this schedule is attached to.
func (s *Schedule) Graph() *taskgraph.Graph { return s.g }

// Machines returns the configured machine count m.
func (s *Schedule) Machines() int { return s.m }

// Size returns len(order).
func (s *Schedule) Size() int { return len(s.order) }

// At returns the task id at position idx in order.
func (s *Schedule) At(idx int) int {
	if idx < 0 || idx >= len(s.order) {
		panic("partialschedule: index out of range")
	}

	return s.order[idx]
}

// Contains reports whether task id is currently in order.
func (s *Schedule) Contains(id int) bool {
	if id < 0 || id >= len(s.contains) {
		panic("partialschedule: task id out of range")
	}

	return s.contains[id]
}

// IsComplete reports whether every task in the graph has been scheduled.
func (s *Schedule) IsComplete() bool { return len(s.order) == s.g.Size() }
