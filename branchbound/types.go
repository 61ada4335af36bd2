package branchbound

import (
	"errors"
	"time"

	"github.com/arvonhall/pcsched/boundengine"
	"github.com/arvonhall/pcsched/internal/obs"
	"github.com/arvonhall/pcsched/partialschedule"
	"github.com/arvonhall/pcsched/taskgraph"
)

// ErrOutOfMemory mirrors the historical allocation-failure sentinel,
// propagated from the evaluator or a bound engine.
var ErrOutOfMemory = errors.New("branchbound: out of memory")

// ErrTimedOut signals that the configured deadline was reached before the
// search completed. The incumbent found so far, if any, is discarded — the
// caller sees only this sentinel.
var ErrTimedOut = errors.New("branchbound: timed out")

// Config configures a Search call: the machine count, the optional
// deadline, the bound mode, and an optional logger for milestone events
// (search start and finish, new incumbent, deadline hit). The zero value is not
// usable directly — Machines must be set to at least 1.
type Config struct {
	// Machines is the number of identical machines to schedule on. Must
	// be >= 1.
	Machines int

	// TimeoutSeconds bounds total wall-clock search time. Negative
	// disables the deadline.
	TimeoutSeconds int

	// Mode selects the lower bound consulted before each recursive
	// descent. The zero value is boundengine.None.
	Mode boundengine.Mode

	// Logger receives milestone events. A nil Logger discards everything.
	Logger obs.Logger
}

// engine carries all mutable search state across one Search call: the
// schedule under construction, the ready-set bitmap, and the configured
// bound and deadline policy. A dedicated struct (rather than closures over
// Search's locals) keeps recursion arguments to the minimum the algorithm
// actually needs: the ready set and the incumbent.
type engine struct {
	g    *taskgraph.Graph
	s    *partialschedule.Schedule
	mode boundengine.Mode
	log  obs.Logger

	hasDeadline bool
	deadline    time.Time

	nodes int

	heap     levelHeap
	newReady []int
}
