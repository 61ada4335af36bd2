package boundengine

import "github.com/arvonhall/pcsched/partialschedule"

// MachineBound computes M(T): the minimum number of machines sufficient to
// finish s's current prefix by the horizon T last passed to s.Build.
//
// Call s.Build(T) before MachineBound to bound a specific horizon.
func MachineBound(s *partialschedule.Schedule) int {
	coords := compList(s)

	maxM := 0
	for i := 0; i < len(coords)-1; i++ {
		ci := coords[i]
		for j := i + 1; j < len(coords); j++ {
			cj := coords[j]
			interval := cj - ci
			if interval == 0 {
				continue
			}
			w := workDensity(s, ci, cj)
			m := ceilDiv(w, interval)
			if m > maxM {
				maxM = m
			}
		}
	}

	return maxM
}

// Iterative computes FB(S, m): the smallest horizon T above level(source)
// such that MachineBound(S rebuilt at T) <= m, found by doubling delta from
// 1 and then binary-searching (level(source)+delta/2, level(source)+delta].
// The horizon level(source) itself is never probed, so the result is always
// at least level(source)+1.
//
// s is rebuilt (via Build) repeatedly against probe horizons; its min_end
// and max_start reflect the last probed horizon, not the caller's original
// one, when Iterative returns. Callers that need the original horizon's
// propagation afterward must call s.Build again.
func Iterative(s *partialschedule.Schedule) (int, error) {
	g := s.Graph()
	critPath := g.Level(g.Source())
	m := s.Machines()

	delta := 1
	for {
		if err := s.Build(critPath + delta); err != nil {
			return 0, err
		}
		if MachineBound(s) <= m {
			break
		}
		if delta > (1<<62)/2 {
			return 0, ErrOutOfMemory
		}
		delta *= 2
	}

	lowTime := critPath + delta/2
	highTime := critPath + delta
	bestTime := highTime
	for {
		curTime := (highTime-lowTime)/2 + lowTime
		if curTime == lowTime {
			break
		}
		if err := s.Build(curTime); err != nil {
			return 0, err
		}
		if MachineBound(s) <= m {
			highTime = curTime
			if curTime < bestTime {
				bestTime = curTime
			}
		} else {
			lowTime = curTime
		}
	}

	return bestTime, nil
}
