package branchbound

// readyItem is one task waiting to be branched on, carrying its
// precomputed critical-path level so the heap can order purely on that.
type readyItem struct {
	id    int
	level int
}

// levelHeap is a container/heap.Interface yielding ready tasks in
// decreasing critical-path level — spec's branching order — with ties
// broken by ascending task id for a reproducible, deterministic order.
type levelHeap []readyItem

func (h levelHeap) Len() int { return len(h) }

func (h levelHeap) Less(i, j int) bool {
	if h[i].level != h[j].level {
		return h[i].level > h[j].level
	}

	return h[i].id < h[j].id
}

func (h levelHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *levelHeap) Push(x any) { *h = append(*h, x.(readyItem)) }

func (h *levelHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
