package partialschedule

// Add appends task id to the tail of order.
//
// Panics if id is out of range or the schedule is already full — both
// precondition violations, never triggered by a correctly driven search.
func (s *Schedule) Add(id int) {
	if id < 0 || id >= len(s.contains) {
		panic("partialschedule: task id out of range")
	}
	if len(s.order) >= s.g.Size() {
		panic("partialschedule: schedule already full")
	}
	s.contains[id] = true
	s.order = append(s.order, id)
}

// Pop removes the last task from order.
//
// Panics if the schedule is empty.
func (s *Schedule) Pop() {
	n := len(s.order)
	if n == 0 {
		panic("partialschedule: pop from empty schedule")
	}
	last := s.order[n-1]
	s.order = s.order[:n-1]
	s.contains[last] = false
}

// IsValid reports whether, for every task in order, all of its
// predecessors occur at a strictly earlier index — the validity invariant
// from spec §3.
func (s *Schedule) IsValid() bool {
	seen := make([]bool, len(s.contains))
	for _, id := range s.order {
		for _, p := range s.g.Preds(id) {
			if !seen[p] {
				return false
			}
		}
		seen[id] = true
	}

	return true
}
