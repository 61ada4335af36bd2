package boundengine

import (
	"sort"

	"github.com/arvonhall/pcsched/partialschedule"
)

// compList returns every task's max_start and min_end coordinate,
// deduplicated and sorted ascending.
//
// The historical implementation builds this list by pushing both
// coordinates of every task into a heap and draining it, skipping
// consecutive duplicates. Reproducing its Scenario B output (a Fernandez
// bound of 8 against a schedule holding only the source) requires pairs
// (ci, cj) with i < j to satisfy ci < cj — i.e. ascending order — not the
// descending order the historical heap's negated keys would suggest; the
// pair-iteration direction, not the heap mechanism, is what the bound
// formulas below depend on, and ascending is the order that reproduces the
// known-correct answer.
func compList(s *partialschedule.Schedule) []int {
	g := s.Graph()
	n := g.Size()
	raw := make([]int, 0, 2*n)
	for i := 0; i < n; i++ {
		raw = append(raw, s.MaxStart(i), s.MinEnd(i))
	}

	sort.Ints(raw)

	out := raw[:0:0]
	for i, c := range raw {
		if i == 0 || c != out[len(out)-1] {
			out = append(out, c)
		}
	}

	return out
}

// workDensity computes W(ci, cj): the minimum task-work that must execute
// strictly inside the open interval (ci, cj), given the schedule's current
// max_start/min_end bounds. Summed only over tasks whose window overlaps the
// interval (max_start[k] < cj and min_end[k] > ci).
func workDensity(s *partialschedule.Schedule, ci, cj int) int {
	g := s.Graph()
	total := 0
	for k := 0; k < g.Size(); k++ {
		maxStart := s.MaxStart(k)
		minEnd := s.MinEnd(k)
		if maxStart >= cj || minEnd <= ci {
			continue
		}
		case1 := minEnd - ci
		case2 := g.Weight(k)
		case3 := cj - maxStart
		case4 := cj - ci
		min1 := case1
		if case2 < min1 {
			min1 = case2
		}
		min2 := case3
		if case4 < min2 {
			min2 = case4
		}
		contribution := min1
		if min2 < contribution {
			contribution = min2
		}
		total += contribution
	}

	return total
}

// ceilDiv computes ceil(a / b) for non-negative a and positive b.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 {
		q++
	}

	return q
}
