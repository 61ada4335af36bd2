package partialschedule

// listSchedule dispatches order onto s.m identical machines in sequence,
// implementing spec §4.2 exactly: the machine-selection and predecessor-
// wait tie-break rule is part of the contract and influences which
// orderings are optimal under this evaluator, so it must be reproduced
// precisely, not merely approximated by "any valid list schedule".
//
// On return, s.finish[id] holds the finish time of every scheduled task
// and s.length holds the makespan (max over machines of busy-until time).
func (s *Schedule) listSchedule() {
	for i := range s.machineBusy {
		s.machineBusy[i] = 0
	}

	for _, t := range s.order {
		// 1. Earliest-free machine, ties broken by smallest index.
		bestMachine := 0
		bestBusy := s.machineBusy[0]
		for mu := 1; mu < s.m; mu++ {
			if s.machineBusy[mu] < bestBusy {
				bestBusy = s.machineBusy[mu]
				bestMachine = mu
			}
		}

		// 2. Latest-finishing predecessor and its machine.
		maxPredFinish := 0
		predMachine := 0
		for _, p := range s.g.Preds(t) {
			if s.finish[p] > maxPredFinish {
				maxPredFinish = s.finish[p]
				predMachine = s.machineOf[p]
			}
		}

		// 3. Bias toward the predecessor's machine when its wait dominates.
		chosenMachine := bestMachine
		start := bestBusy
		if maxPredFinish > bestBusy {
			chosenMachine = predMachine
			start = maxPredFinish
		}

		finish := start + s.g.Weight(t)
		s.finish[t] = finish
		s.machineOf[t] = chosenMachine
		s.machineBusy[chosenMachine] = finish
	}

	makespan := 0
	for _, busy := range s.machineBusy {
		if busy > makespan {
			makespan = busy
		}
	}
	s.length = makespan
}

// Length returns the list-scheduled makespan computed by the last Build
// call.
func (s *Schedule) Length() int { return s.length }
