package solver

import (
	"container/heap"

	"github.com/woodgern/ricochet/internal/boardstate"
)

// pathOption is a single frontier entry: a board reached after some number
// of moves, ordered by priority = moves-so-far + heuristic estimate.
type pathOption struct {
	priority int
	distance int // moves taken so far (g-cost)
	fp       uint64
	board    boardstate.Board
	history  history
}

// pathOptionHeap implements container/heap.Interface over a slice of
// pathOption, ordered by ascending priority. This is a plain single-threaded
// min-heap: no mutex, no condition variable, no blocking pop — the solver
// runs to completion on one goroutine.
type pathOptionHeap []pathOption

func (h pathOptionHeap) Len() int { return len(h) }

func (h pathOptionHeap) Less(i, j int) bool { return h[i].priority < h[j].priority }

func (h pathOptionHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pathOptionHeap) Push(x any) {
	*h = append(*h, x.(pathOption))
}

func (h *pathOptionHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// frontier is the solver's open set: a priority queue of pathOption values.
type frontier struct {
	h pathOptionHeap
}

func newFrontier() *frontier {
	f := &frontier{}
	heap.Init(&f.h)
	return f
}

func (f *frontier) push(p pathOption) {
	heap.Push(&f.h, p)
}

func (f *frontier) popMin() (pathOption, bool) {
	if f.h.Len() == 0 {
		return pathOption{}, false
	}
	return heap.Pop(&f.h).(pathOption), true
}

func (f *frontier) empty() bool {
	return f.h.Len() == 0
}
