package main

import (
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
)

// Cell is the occupancy state of a grid cell
type Cell int

const (
	Free    Cell = 0
	Blocked Cell = 1
)

var (
	ErrEmptyGrid   = ierrors.New("grid has no cells")
	ErrRaggedGrid  = ierrors.New("grid rows differ in length")
	ErrInvalidCell = ierrors.New("grid cell must be 0 (free) or 1 (blocked)")
)

// GridMap is an immutable occupancy grid indexed by (row, col)
type GridMap struct {
	cells [][]Cell
	rows  int
	cols  int
}

// NewGridMap builds a grid from rows of 0 (free) and 1 (blocked).
// The input is copied, later changes to it do not affect the grid.
func NewGridMap(cells [][]int) (*GridMap, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	cols := len(cells[0])
	grid := &GridMap{
		cells: make([][]Cell, len(cells)),
		rows:  len(cells),
		cols:  cols,
	}

	for r, row := range cells {
		if len(row) != cols {
			return nil, ierrors.Wrapf(ErrRaggedGrid, "row %d has %d cells, expected %d", r, len(row), cols)
		}
		grid.cells[r] = make([]Cell, cols)
		for c, v := range row {
			switch Cell(v) {
			case Free, Blocked:
				grid.cells[r][c] = Cell(v)
			default:
				return nil, ierrors.Wrapf(ErrInvalidCell, "cell (%d,%d) has value %d", r, c, v)
			}
		}
	}

	return grid, nil
}

// Rows returns the number of rows
func (g *GridMap) Rows() int { return g.rows }

// Cols returns the number of columns
func (g *GridMap) Cols() int { return g.cols }

// InBounds checks if a position lies inside the grid
func (g *GridMap) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// IsFree checks if a position is inside the grid and not blocked
func (g *GridMap) IsFree(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col] == Free
}

// BlockedCells returns all blocked positions in row-major order
func (g *GridMap) BlockedCells() []Position {
	blocked := make([]Position, 0)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == Blocked {
				blocked = append(blocked, Position{Row: r, Col: c})
			}
		}
	}
	return blocked
}

// Cells returns a copy of the grid as rows of 0/1 values
func (g *GridMap) Cells() [][]int {
	out := make([][]int, g.rows)
	for r := range g.cells {
		out[r] = make([]int, g.cols)
		for c, v := range g.cells[r] {
			out[r][c] = int(v)
		}
	}
	return out
}

// Render draws the grid with '#' for blocked and '.' for free cells.
// Cells on the path are drawn as '*', start as 'S' and goal as 'G'.
func (g *GridMap) Render(path Path, start, goal Position) string {
	onPath := make(map[Position]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := Position{Row: r, Col: c}
			switch {
			case p == start:
				sb.WriteByte('S')
			case p == goal:
				sb.WriteByte('G')
			case onPath[p]:
				sb.WriteByte('*')
			case g.cells[r][c] == Blocked:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *GridMap) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == Blocked {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
