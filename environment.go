package main

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	ErrInvalidMove  = ierrors.New("invalid move")
	ErrOutOfBounds  = ierrors.New("position outside grid")
	ErrBlockedStart = ierrors.New("start cell is blocked")
)

// Percept is what the environment reports to an agent after every query
type Percept struct {
	Position  Position   `json:"position"`
	Available []Position `json:"availablePositions"`
	Goal      Position   `json:"goal"`
}

// Action is the only message an agent sends to the environment
type Action struct {
	GoTo Position `json:"goTo"`
}

// Environment is the capability an agent needs from the world it acts in
type Environment interface {
	InitialPercepts() Percept
	Signal(action Action) (Percept, error)
}

// GridEnvironment owns the grid, the goal and the agent's current position
type GridEnvironment struct {
	grid     *GridMap
	start    Position
	goal     Position
	position Position
}

// NewEnvironment places the agent at start. The goal may be blocked, which
// makes it unreachable, but both positions must lie inside the grid.
func NewEnvironment(grid *GridMap, start, goal Position) (*GridEnvironment, error) {
	if grid == nil {
		return nil, ErrEmptyGrid
	}
	if !grid.InBounds(start) {
		return nil, ierrors.Wrapf(ErrOutOfBounds, "start %s", start)
	}
	if !grid.InBounds(goal) {
		return nil, ierrors.Wrapf(ErrOutOfBounds, "goal %s", goal)
	}
	if !grid.IsFree(start) {
		return nil, ierrors.Wrapf(ErrBlockedStart, "start %s", start)
	}

	return &GridEnvironment{
		grid:     grid,
		start:    start,
		goal:     goal,
		position: start,
	}, nil
}

// InitialPercepts returns the percept for the configured start without changing state
func (e *GridEnvironment) InitialPercepts() Percept {
	return e.perceptAt(e.start)
}

// Signal moves the agent to action.GoTo and returns the refreshed percept.
// Targets outside the grid or on blocked cells are rejected and leave state unchanged.
func (e *GridEnvironment) Signal(action Action) (Percept, error) {
	if !e.grid.IsFree(action.GoTo) {
		return Percept{}, ierrors.Wrapf(ErrInvalidMove, "cannot go to %s", action.GoTo)
	}

	e.position = action.GoTo

	return e.perceptAt(e.position), nil
}

// Position returns the agent's current position
func (e *GridEnvironment) Position() Position {
	return e.position
}

// Grid returns the occupancy grid
func (e *GridEnvironment) Grid() *GridMap {
	return e.grid
}

// Start returns the configured start position
func (e *GridEnvironment) Start() Position {
	return e.start
}

// Goal returns the configured goal position
func (e *GridEnvironment) Goal() Position {
	return e.goal
}

// Neighbours returns the free in-bounds cells around p in the fixed offset order
func (e *GridEnvironment) Neighbours(p Position) []Position {
	available := make([]Position, 0, len(neighbourOffsets))
	for _, o := range neighbourOffsets {
		candidate := p.Add(o)
		if e.grid.IsFree(candidate) {
			available = append(available, candidate)
		}
	}
	return available
}

func (e *GridEnvironment) perceptAt(p Position) Percept {
	return Percept{
		Position:  p,
		Available: e.Neighbours(p),
		Goal:      e.goal,
	}
}
