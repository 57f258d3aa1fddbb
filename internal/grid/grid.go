// Package grid provides tile coordinates and bounds for the dungeon map.
package grid

import "math/rand"

const (
	// DefaultCols and DefaultRows match a 640x480 window split into 32px tiles.
	DefaultCols = 20
	DefaultRows = 15
)

// Position is a (col, row) tile coordinate.
type Position struct {
	X, Y int
}

// Add returns the position offset by the given delta.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Direction is an axis-aligned unit step.
type Direction struct {
	DX, DY int
}

var (
	Up    = Direction{0, -1}
	Down  = Direction{0, 1}
	Left  = Direction{-1, 0}
	Right = Direction{1, 0}
)

// Directions lists the four axis directions in a fixed order.
var Directions = [4]Direction{Right, Left, Down, Up}

// IsUnit reports whether the direction moves exactly one tile along one axis.
func (d Direction) IsUnit() bool {
	return abs(d.DX)+abs(d.DY) == 1
}

// RandomDirection picks one of the four axis directions uniformly.
func RandomDirection(rng *rand.Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}

// Bounds describes the playable area [0,Cols) x [0,Rows).
type Bounds struct {
	Cols, Rows int
}

// DefaultBounds returns the standard dungeon size.
func DefaultBounds() Bounds {
	return Bounds{Cols: DefaultCols, Rows: DefaultRows}
}

// Contains returns true if the position lies inside the bounds.
func (b Bounds) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.Cols && p.Y >= 0 && p.Y < b.Rows
}

// RandomInterior returns a random tile excluding the outer ring,
// i.e. X in [1, Cols-2] and Y in [1, Rows-2].
func (b Bounds) RandomInterior(rng *rand.Rand) Position {
	return Position{
		X: 1 + rng.Intn(b.Cols-2),
		Y: 1 + rng.Intn(b.Rows-2),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
