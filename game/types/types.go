package types

import "fmt"

// Point is a position on the board, in board units (not cells).
type Point struct {
	X, Y int
}

// Heading is the direction a snake is travelling in.
type Heading int

const (
	HeadingNone Heading = iota
	HeadingUp
	HeadingDown
	HeadingLeft
	HeadingRight
)

// Cardinal lists the four moving headings in a fixed order.
var Cardinal = [4]Heading{HeadingUp, HeadingDown, HeadingLeft, HeadingRight}

// Delta returns the unit offset of the heading in cells.
func (h Heading) Delta() Point {
	switch h {
	case HeadingUp:
		return Point{0, -1}
	case HeadingDown:
		return Point{0, 1}
	case HeadingLeft:
		return Point{-1, 0}
	case HeadingRight:
		return Point{1, 0}
	}
	return Point{}
}

func (h Heading) String() string {
	switch h {
	case HeadingNone:
		return "none"
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	}
	return fmt.Sprintf("heading(%d)", int(h))
}

// Grid represents the board dimensions. Width and Height are in board
// units and are multiples of CellSize.
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// Columns is the number of cells across the board.
func (g Grid) Columns() int {
	return g.Width / g.CellSize
}

// Rows is the number of cells down the board.
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Aligned reports whether p sits on a cell boundary.
func (g Grid) Aligned(p Point) bool {
	return p.X%g.CellSize == 0 && p.Y%g.CellSize == 0
}

// Step moves p by one cell in direction h.
func (g Grid) Step(p Point, h Heading) Point {
	d := h.Delta()
	return Point{
		X: p.X + d.X*g.CellSize,
		Y: p.Y + d.Y*g.CellSize,
	}
}

// Center returns the cell-aligned middle of the board.
func (g Grid) Center() Point {
	return Point{
		X: g.Columns() / 2 * g.CellSize,
		Y: g.Rows() / 2 * g.CellSize,
	}
}

// RandSource is the subset of a pseudo-random generator the game needs.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// Cue identifies a game moment worth a sound.
type Cue int

const (
	CueEat Cue = iota
	CueKill
	CueWin
	CueLose
)
