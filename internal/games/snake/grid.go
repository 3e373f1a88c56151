package snake

import (
	"math"
	"math/rand"
)

// Grid defaults: 13 cells of 20 world units give a 260x260 play area.
const (
	DefaultCellSize  = 20.0
	DefaultGridCells = 13
)

// Vec2 is a position in world space. Y grows upward.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Position converts an integer cell coordinate into world space.
func Position(cell int, cellSize float64) float64 {
	return float64(cell) * cellSize
}

// PlayArea is the rectangle of cells the apple may spawn in.
// Origin is the world position of the bottom-left cell; the area is
// centred on (0, 0) so the head starts in the middle cell.
type PlayArea struct {
	Origin   Vec2
	Cols     int
	Rows     int
	CellSize float64
}

// NewPlayArea builds a play area of cols x rows cells centred on the origin.
func NewPlayArea(cols, rows int, cellSize float64) PlayArea {
	return PlayArea{
		Origin: Vec2{
			X: Position(-(cols / 2), cellSize),
			Y: Position(-(rows / 2), cellSize),
		},
		Cols:     cols,
		Rows:     rows,
		CellSize: cellSize,
	}
}

// Width returns the play area width in world units.
func (a PlayArea) Width() float64 {
	return Position(a.Cols, a.CellSize)
}

// Height returns the play area height in world units.
func (a PlayArea) Height() float64 {
	return Position(a.Rows, a.CellSize)
}

// cellIndex returns the index of the cell containing coordinate v.
// Coordinates produced by Position are recovered exactly even when the
// cell size is not representable in binary, e.g. 3*0.1/0.1.
func cellIndex(v, cellSize float64) int {
	q := v / cellSize
	if r := math.Round(q); math.Abs(q-r) < alignEpsilon {
		return int(r)
	}
	return int(math.Floor(q))
}

// alignEpsilon absorbs the rounding of one multiply and one divide.
const alignEpsilon = 1e-9

// CellOf returns the column and row containing p, counted from Origin.
// The result may lie outside [0, Cols) x [0, Rows).
func (a PlayArea) CellOf(p Vec2) (col, row int) {
	return cellIndex(p.X, a.CellSize) + a.Cols/2, cellIndex(p.Y, a.CellSize) + a.Rows/2
}

// CellPos returns the world position of the given cell. It is the only
// mapping from cells to world space, so two positions of the same cell
// are bit-identical and compare equal.
func (a PlayArea) CellPos(col, row int) Vec2 {
	return Vec2{
		X: Position(col-a.Cols/2, a.CellSize),
		Y: Position(row-a.Rows/2, a.CellSize),
	}
}

// Contains reports whether p lies in one of the play area's cells.
func (a PlayArea) Contains(p Vec2) bool {
	col, row := a.CellOf(p)
	return col >= 0 && col < a.Cols && row >= 0 && row < a.Rows
}

// Snap moves p down to the boundary of the cell it lies in.
// Positions already on the grid are returned unchanged.
func (a PlayArea) Snap(p Vec2) Vec2 {
	col, row := a.CellOf(p)
	return a.CellPos(col, row)
}

// Step returns the position one cell from p in direction d. The sum is
// snapped back onto the grid, so repeated steps never drift.
func (a PlayArea) Step(p Vec2, d Direction) Vec2 {
	return a.Snap(p.Add(d.Offset(a.CellSize)))
}

// randomPoint picks a uniformly random grid-aligned position inside the area.
func (a PlayArea) randomPoint(rng *rand.Rand) Vec2 {
	p := a.Snap(Vec2{
		X: a.Origin.X + rng.Float64()*a.Width(),
		Y: a.Origin.Y + rng.Float64()*a.Height(),
	})
	if a.Contains(p) {
		return p
	}
	// Float rounding can land exactly on the far edge.
	col, row := a.CellOf(p)
	return a.CellPos(min(max(col, 0), a.Cols-1), min(max(row, 0), a.Rows-1))
}
