// Package boundengine computes admissible lower bounds on makespan (and, for
// the Fujita family, dual lower bounds on the machine count required to hit a
// target makespan) from a partialschedule.Schedule's current min_end/max_start
// coordinates.
//
// Nothing here mutates the schedule except through its own Build method, and
// nothing retains a reference across calls: every bound is a pure function of
// the schedule's current propagated state.
package boundengine
