// Package partialschedule implements the evaluator for a prefix of a task
// ordering: list-scheduling makespan on m identical machines, and the
// min_end / max_start interval-propagation passes the bound engines
// consume.
//
// A Schedule holds an ordered prefix (order) of distinct task ids plus a
// membership bitmap, attached to one taskgraph.Graph and machine count.
// Callers append with Add and remove from the tail with Pop as the
// branch-and-bound driver descends and backtracks; Build recomputes the
// derived attributes (Length, MinEnd, MaxStart) for the current prefix.
// All per-search scratch buffers are allocated once, at Schedule creation,
// and reused across every Add/Pop/Build cycle — their sizes are bounded by
// the graph size and known up front.
//
// Schedule is not safe for concurrent use; the driver that owns it holds
// exclusive access throughout a search, per the scheduling core's
// single-threaded concurrency model.
package partialschedule
