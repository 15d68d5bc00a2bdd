package main

import (
	"github.com/iotaledger/hive.go/lo"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Path is an ordered sequence of positions starting at the start cell
type Path []Position

// Last returns the final position of the path
func (p Path) Last() Position {
	return p[len(p)-1]
}

// Extend returns a new path with next appended. The receiver is never modified.
func (p Path) Extend(next Position) Path {
	extended := make(Path, len(p), len(p)+1)
	copy(extended, p)
	return append(extended, next)
}

// Contains checks if the position already appears on the path
func (p Path) Contains(pos Position) bool {
	for _, q := range p {
		if q == pos {
			return true
		}
	}
	return false
}

// LineString converts the path to planar geometry
func (p Path) LineString() orb.LineString {
	return orb.LineString(lo.Map(p, Position.Point))
}

// Length is the sum of Euclidean step lengths along the path
func (p Path) Length() float64 {
	if len(p) < 2 {
		return 0
	}
	return planar.Length(p.LineString())
}

// Bound returns the bounding box of the path in planar coordinates
func (p Path) Bound() orb.Bound {
	return p.LineString().Bound()
}

// Pairs returns the path as [row, col] pairs for JSON responses
func (p Path) Pairs() [][2]int {
	return lo.Map(p, func(pos Position) [2]int {
		return [2]int{pos.Row, pos.Col}
	})
}
