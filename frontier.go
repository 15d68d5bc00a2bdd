package main

import (
	"container/heap"

	"github.com/zyedidia/generic/queue"
	"github.com/zyedidia/generic/stack"
)

// fifoFrontier hands out paths in insertion order (breadth-first)
type fifoFrontier struct {
	paths *queue.Queue[Path]
	size  int
}

func newFIFOFrontier(initial Path) *fifoFrontier {
	f := &fifoFrontier{paths: queue.New[Path]()}
	f.Push(initial)
	return f
}

func (f *fifoFrontier) Push(p Path) {
	f.paths.Enqueue(p)
	f.size++
}

func (f *fifoFrontier) Pop() (Path, bool) {
	if f.paths.Empty() {
		return nil, false
	}
	f.size--
	return f.paths.Dequeue(), true
}

func (f *fifoFrontier) Len() int { return f.size }

// lifoFrontier hands out the most recently discovered path first (depth-first)
type lifoFrontier struct {
	paths *stack.Stack[Path]
}

func newLIFOFrontier(initial Path) *lifoFrontier {
	f := &lifoFrontier{paths: stack.New[Path]()}
	f.Push(initial)
	return f
}

func (f *lifoFrontier) Push(p Path) {
	f.paths.Push(p)
}

func (f *lifoFrontier) Pop() (Path, bool) {
	if f.paths.Size() == 0 {
		return nil, false
	}
	return f.paths.Pop(), true
}

func (f *lifoFrontier) Len() int { return f.paths.Size() }

// frontierEntry is a path waiting in a priorityFrontier
type frontierEntry struct {
	Path     Path
	Cost     float64 // Cost so far along Path
	Priority float64 // Value the frontier is ordered by
	seq      uint64
	index    int // Index in the heap
}

// entryHeap implements heap.Interface.
// Among equal priorities the most recently pushed entry wins, which is the
// entry a front-to-back scan over a prepend-ordered list would meet first.
type entryHeap []*frontierEntry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}
	return h[i].seq > h[j].seq
}

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap) Push(x interface{}) {
	n := len(*h)
	entry := x.(*frontierEntry)
	entry.index = n
	*h = append(*h, entry)
}

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	entry.index = -1
	*h = old[0 : n-1]
	return entry
}

// priorityFrontier selects the entry with the lowest priority
type priorityFrontier struct {
	entries entryHeap
	nextSeq uint64
}

func newPriorityFrontier() *priorityFrontier {
	f := &priorityFrontier{}
	heap.Init(&f.entries)
	return f
}

func (f *priorityFrontier) Push(path Path, cost, priority float64) {
	heap.Push(&f.entries, &frontierEntry{
		Path:     path,
		Cost:     cost,
		Priority: priority,
		seq:      f.nextSeq,
	})
	f.nextSeq++
}

func (f *priorityFrontier) Pop() (*frontierEntry, bool) {
	if f.entries.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&f.entries).(*frontierEntry), true
}

func (f *priorityFrontier) Len() int { return f.entries.Len() }

// Entries returns the waiting entries in no particular order
func (f *priorityFrontier) Entries() []*frontierEntry {
	out := make([]*frontierEntry, len(f.entries))
	copy(out, f.entries)
	return out
}
