package main

import (
	"github.com/iotaledger/hive.go/runtime/options"
)

// DFSAgent expands the most recently discovered path first.
// A neighbour already on the current path is skipped, so no single path
// cycles, but a cell may still be reached again through a different path.
type DFSAgent struct {
	*searcher

	frontier *lifoFrontier
}

func NewDFSAgent(env Environment, opts ...options.Option[Settings]) *DFSAgent {
	s := newSearcher(AlgorithmDFS, env, opts)

	return &DFSAgent{
		searcher: s,
		frontier: newLIFOFrontier(Path{s.belief.Position}),
	}
}

// Act expands the newest path on the frontier
func (a *DFSAgent) Act() (bool, error) {
	if a.done || a.stepLimitReached() {
		return true, nil
	}

	path, ok := a.frontier.Pop()
	if !ok {
		a.exhaust()
		return true, nil
	}

	if err := a.moveTo(path.Last()); err != nil {
		return true, err
	}

	if a.atGoal() {
		a.record(a.frontier.Len(), 0)
		a.succeed(path)
		return true, nil
	}

	// Pushed in neighbour order: the last neighbour reported is explored first.
	for _, next := range a.belief.Available {
		if path.Contains(next) {
			continue
		}
		a.frontier.Push(path.Extend(next))
	}
	a.record(a.frontier.Len(), 0)

	return false, nil
}

// FrontierSize returns the number of paths waiting for expansion
func (a *DFSAgent) FrontierSize() int {
	return a.frontier.Len()
}
