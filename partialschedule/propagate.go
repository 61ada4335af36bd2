package partialschedule

import "math"

// Build recomputes length, MinEnd and MaxStart for the current prefix
// against a target horizon totalTime. totalTime == 0 defaults to the
// critical path length, level(source), per spec §4.3.
//
// Deterministic; the returned error is always nil in this implementation.
func (s *Schedule) Build(totalTime int) error {
	if totalTime == 0 {
		totalTime = s.g.Level(s.g.Source())
	}
	s.listSchedule()
	s.propagateMinEnd()
	s.propagateMaxStart(totalTime)

	return nil
}

// MinEnd returns the earliest finish time of task id consistent with the
// prefix computed by the last Build call: the actual finish time for a
// scheduled task, or a forward propagation over the DAG for an
// unscheduled one.
func (s *Schedule) MinEnd(id int) int {
	if id < 0 || id >= len(s.minEnd) {
		panic("partialschedule: task id out of range")
	}

	return s.minEnd[id]
}

// MaxStart returns the latest start time task id may take without
// lengthening the horizon passed to the last Build call.
func (s *Schedule) MaxStart(id int) int {
	if id < 0 || id >= len(s.maxStart) {
		panic("partialschedule: task id out of range")
	}

	return s.maxStart[id]
}

// propagateMinEnd implements the forward pass of spec §4.3: scheduled
// tasks seed their actual finish times; everything else is finalized in
// topological order once every predecessor is finalized.
func (s *Schedule) propagateMinEnd() {
	for i := range s.finished {
		s.finished[i] = false
	}
	s.worklist = s.worklist[:0]
	for _, id := range s.order {
		s.minEnd[id] = s.finish[id]
		s.finished[id] = true
		s.worklist = append(s.worklist, id)
	}

	for len(s.worklist) > 0 {
		idx := s.worklist[len(s.worklist)-1]
		s.worklist = s.worklist[:len(s.worklist)-1]

		for _, succ := range s.g.Succs(idx) {
			if s.finished[succ] {
				continue
			}
			allDone := true
			maxPred := 0
			for _, p := range s.g.Preds(succ) {
				if !s.finished[p] {
					allDone = false
					break
				}
				if s.minEnd[p] > maxPred {
					maxPred = s.minEnd[p]
				}
			}
			if allDone {
				s.minEnd[succ] = s.g.Weight(succ) + maxPred
				s.finished[succ] = true
				s.worklist = append(s.worklist, succ)
			}
		}
	}
}

// propagateMaxStart implements the backward pass of spec §4.3: scheduled
// tasks seed start = finish - weight; the sink is forced to total
// regardless of whether it is scheduled; everything else is finalized in
// reverse topological order once every successor is finalized. The whole
// result is then shifted by Δ = total - level(source) so coordinates align
// with a horizon of total rather than the critical path length.
func (s *Schedule) propagateMaxStart(total int) {
	for i := range s.finished {
		s.finished[i] = false
	}
	for _, id := range s.order {
		s.maxStart[id] = s.finish[id] - s.g.Weight(id)
		s.finished[id] = true
	}

	sink := s.g.Sink()
	s.maxStart[sink] = total
	s.finished[sink] = true
	s.worklist = s.worklist[:0]
	s.worklist = append(s.worklist, sink)

	for len(s.worklist) > 0 {
		idx := s.worklist[len(s.worklist)-1]
		s.worklist = s.worklist[:len(s.worklist)-1]

		for _, pred := range s.g.Preds(idx) {
			if s.finished[pred] {
				continue
			}
			allDone := true
			minSucc := math.MaxInt
			for _, succ := range s.g.Succs(pred) {
				if !s.finished[succ] {
					allDone = false
					break
				}
				if s.maxStart[succ] < minSucc {
					minSucc = s.maxStart[succ]
				}
			}
			if allDone {
				v := minSucc - s.g.Weight(pred)
				if v > total {
					v = total
				}
				s.maxStart[pred] = v
				s.finished[pred] = true
				s.worklist = append(s.worklist, pred)
			}
		}
	}

	delta := total - s.g.Level(s.g.Source())
	for i := range s.maxStart {
		s.maxStart[i] += delta
	}
}
