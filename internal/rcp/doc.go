// Package rcp parses the Patterson activity-network format (".rcp" files)
// into a taskgraph.Graph. It is a minimal reader, not a resource-constrained
// scheduling format: the header's resource count is read and ignored, and
// the task lines it accepts carry no resource capacities or per-task
// resource demands, since this module schedules on identical machines, not
// resource pools.
package rcp
