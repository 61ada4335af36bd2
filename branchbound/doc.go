// Package branchbound implements the exact depth-first branch-and-bound
// search for the precedence-constrained multiprocessor scheduling problem:
// given a task graph and a machine count, it finds the minimum achievable
// list-scheduled makespan.
//
// Search owns a single partialschedule.Schedule and a ready-set bitmap for
// the duration of one call; neither is shared across concurrent searches,
// and nothing in this package is safe to call from more than one goroutine
// at a time.
package branchbound
