package main

import (
	"github.com/iotaledger/hive.go/runtime/options"
)

// BFSAgent expands paths in the order they were discovered.
// It does no pruning, a cell may be queued again through every route that reaches it.
type BFSAgent struct {
	*searcher

	frontier *fifoFrontier
}

func NewBFSAgent(env Environment, opts ...options.Option[Settings]) *BFSAgent {
	s := newSearcher(AlgorithmBFS, env, opts)

	return &BFSAgent{
		searcher: s,
		frontier: newFIFOFrontier(Path{s.belief.Position}),
	}
}

// Act expands the oldest path on the frontier
func (a *BFSAgent) Act() (bool, error) {
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

	for _, next := range a.belief.Available {
		a.frontier.Push(path.Extend(next))
	}
	a.record(a.frontier.Len(), 0)

	return false, nil
}

// FrontierSize returns the number of paths waiting for expansion
func (a *BFSAgent) FrontierSize() int {
	return a.frontier.Len()
}
