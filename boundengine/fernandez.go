package boundengine

import "github.com/arvonhall/pcsched/partialschedule"

// FernandezBound computes L*, a lower bound on the completion time of any
// extension of s's current prefix on s.Machines() machines.
//
// s must already reflect the prefix to bound: call s.Build(0) first so
// min_end/max_start are current.
func FernandezBound(s *partialschedule.Schedule) int {
	coords := compList(s)
	m := s.Machines()

	maxQ := 0
	for i := 0; i < len(coords)-1; i++ {
		ci := coords[i]
		for j := i + 1; j < len(coords); j++ {
			cj := coords[j]
			w := workDensity(s, ci, cj)
			q := (ci - cj) + ceilDiv(w, m)
			if q > maxQ {
				maxQ = q
			}
		}
	}

	return s.Graph().Level(s.Graph().Source()) + maxQ
}
