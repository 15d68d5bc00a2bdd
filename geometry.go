package main

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Position is a cell coordinate on the grid
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Offset is a single move between neighbouring cells
type Offset struct {
	DRow, DCol int
}

// neighbourOffsets lists the 8 moves in the order they are reported to agents.
// The order defines tie-breaking downstream and must not change.
var neighbourOffsets = []Offset{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

// Add returns the position shifted by an offset
func (p Position) Add(o Offset) Position {
	return Position{Row: p.Row + o.DRow, Col: p.Col + o.DCol}
}

// Point converts the position to a planar point (x = column, y = row)
func (p Position) Point() orb.Point {
	return orb.Point{float64(p.Col), float64(p.Row)}
}

// Distance calculates Euclidean distance between two positions
func (p Position) Distance(other Position) float64 {
	return planar.Distance(p.Point(), other.Point())
}

// IsAdjacent reports whether other is one of the 8 neighbours of p
func (p Position) IsAdjacent(other Position) bool {
	for _, o := range neighbourOffsets {
		if p.Add(o) == other {
			return true
		}
	}
	return false
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// positionFromPair builds a position from a [row, col] pair as used in JSON and YAML input
func positionFromPair(pair []int) (Position, bool) {
	if len(pair) != 2 {
		return Position{}, false
	}
	return Position{Row: pair[0], Col: pair[1]}, true
}
