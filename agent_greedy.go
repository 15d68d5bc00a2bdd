package main

import (
	"github.com/iotaledger/hive.go/ds"
	"github.com/iotaledger/hive.go/runtime/options"
)

// GreedyAgent always expands the path whose last cell is closest (straight
// line) to the goal. Cells are recorded as visited when expanded and never
// enqueued again afterwards. The accumulated path cost is ignored, so the
// path it finds is not necessarily the shortest.
type GreedyAgent struct {
	*searcher

	frontier *priorityFrontier
	visited  ds.Set[Position]
}

func NewGreedyAgent(env Environment, opts ...options.Option[Settings]) *GreedyAgent {
	s := newSearcher(AlgorithmGreedy, env, opts)

	a := &GreedyAgent{
		searcher: s,
		frontier: newPriorityFrontier(),
		visited:  ds.NewSet[Position](),
	}
	a.frontier.Push(Path{s.belief.Position}, 0, a.heuristic(s.belief.Position))

	return a
}

// Act expands the frontier path with the lowest heuristic value
func (a *GreedyAgent) Act() (bool, error) {
	if a.done || a.startsAtGoal() || a.stepLimitReached() {
		return true, nil
	}

	entry, ok := a.frontier.Pop()
	if !ok {
		a.exhaust()
		return true, nil
	}

	current := entry.Path.Last()
	if err := a.moveTo(current); err != nil {
		return true, err
	}
	a.visited.Add(current)

	if a.atGoal() {
		a.record(a.frontier.Len(), a.visited.Size())
		a.succeed(entry.Path)
		return true, nil
	}

	// Multiple-path pruning
	for _, next := range a.belief.Available {
		if a.visited.Has(next) {
			continue
		}
		a.frontier.Push(entry.Path.Extend(next), 0, a.heuristic(next))
	}
	a.record(a.frontier.Len(), a.visited.Size())

	return false, nil
}

// Visited returns the cells expanded so far
func (a *GreedyAgent) Visited() []Position {
	return a.visited.ToSlice()
}

// FrontierSize returns the number of paths waiting for expansion
func (a *GreedyAgent) FrontierSize() int {
	return a.frontier.Len()
}

func (a *GreedyAgent) heuristic(p Position) float64 {
	return p.Distance(a.belief.Goal)
}
