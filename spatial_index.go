package main

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// obstacleEntry wraps a blocked cell for R-tree storage
type obstacleEntry struct {
	Position Position
	BBox     rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (o *obstacleEntry) Bounds() rtreego.Rect {
	return o.BBox
}

// ObstacleIndex answers region queries over the blocked cells of a grid.
// Cell (r, c) occupies the unit square [c, c+1] x [r, r+1].
type ObstacleIndex struct {
	tree *rtreego.Rtree
}

// NewObstacleIndex indexes every blocked cell of the grid
func NewObstacleIndex(grid *GridMap) *ObstacleIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	for _, p := range grid.BlockedCells() {
		bbox, err := rtreego.NewRect(
			rtreego.Point{float64(p.Col), float64(p.Row)},
			[]float64{1, 1},
		)
		if err == nil {
			tree.Insert(&obstacleEntry{Position: p, BBox: bbox})
		}
	}

	return &ObstacleIndex{tree: tree}
}

// Size returns the number of indexed obstacles
func (oi *ObstacleIndex) Size() int {
	return oi.tree.Size()
}

// QueryRegion returns the blocked cells whose coordinates fall inside the bound
// (x = column, y = row, both inclusive)
func (oi *ObstacleIndex) QueryRegion(bound orb.Bound) []Position {
	minCol, minRow := math.Ceil(bound.Min[0]), math.Ceil(bound.Min[1])
	maxCol, maxRow := math.Floor(bound.Max[0]), math.Floor(bound.Max[1])
	if maxCol < minCol || maxRow < minRow {
		return []Position{}
	}

	// Shrink to the cell interiors so touching neighbours are not reported.
	query, err := rtreego.NewRect(
		rtreego.Point{minCol + 0.25, minRow + 0.25},
		[]float64{maxCol - minCol + 0.5, maxRow - minRow + 0.5},
	)
	if err != nil {
		return []Position{}
	}

	results := oi.tree.SearchIntersect(query)
	obstacles := make([]Position, 0, len(results))
	for _, item := range results {
		obstacles = append(obstacles, item.(*obstacleEntry).Position)
	}

	return obstacles
}

// ObstaclesNearPath returns blocked cells within margin cells of the path's bounding box
func (oi *ObstacleIndex) ObstaclesNearPath(path Path, margin float64) []Position {
	if len(path) == 0 {
		return []Position{}
	}
	return oi.QueryRegion(path.Bound().Pad(margin))
}
