// Package taskgraph implements the weighted directed task graph that
// underlies precedence-constrained multiprocessor scheduling.
//
// A Graph stores tasks (vertices) identified by dense, stable integer
// identifiers assigned strictly in insertion order: every dependency a
// caller names in Vertex must already exist, so edges only ever point from
// a lower id toward a higher one and the graph is acyclic by construction,
// not by a separate cycle-detection pass. Build augments the user-declared
// task set with a synthetic sink (successor of every task that has none)
// and computes each task's level — its critical-path distance to the sink,
// own weight inclusive — with a single reverse-topological relaxation pass
// seeded at the sink.
//
// Graph is mutable only between Create and Build; Build freezes it. Per the
// scheduling core's concurrency model it is not safe for concurrent
// mutation — the branch-and-bound driver that is its only intended caller
// builds a Graph once, synchronously, before any search begins.
package taskgraph
