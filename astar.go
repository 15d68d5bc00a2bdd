package main

import (
	"github.com/iotaledger/hive.go/ds"
	"github.com/iotaledger/hive.go/runtime/options"
)

// AStarAgent expands the path minimising cost so far plus straight-line
// distance to the goal.
//
// A cell is never re-opened once expanded, even if a cheaper route to it is
// found later. On maps where that happens the returned path can be longer
// than the optimum.
type AStarAgent struct {
	*searcher

	frontier *priorityFrontier
	visited  ds.Set[Position]
}

func NewAStarAgent(env Environment, opts ...options.Option[Settings]) *AStarAgent {
	s := newSearcher(AlgorithmAStar, env, opts)

	a := &AStarAgent{
		searcher: s,
		frontier: newPriorityFrontier(),
		visited:  ds.NewSet[Position](),
	}
	a.frontier.Push(Path{s.belief.Position}, 0, a.heuristic(s.belief.Position))

	return a
}

// Act expands the frontier path with the lowest cost + heuristic
func (a *AStarAgent) Act() (bool, error) {
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

	for _, next := range a.belief.Available {
		if a.visited.Has(next) {
			continue
		}
		cost := entry.Cost + current.Distance(next)
		a.frontier.Push(entry.Path.Extend(next), cost, cost+a.heuristic(next))
	}
	a.record(a.frontier.Len(), a.visited.Size())

	return false, nil
}

// Visited returns the cells expanded so far
func (a *AStarAgent) Visited() []Position {
	return a.visited.ToSlice()
}

// FrontierSize returns the number of paths waiting for expansion
func (a *AStarAgent) FrontierSize() int {
	return a.frontier.Len()
}

func (a *AStarAgent) heuristic(p Position) float64 {
	return p.Distance(a.belief.Goal)
}
