// Package core provides fundamental types shared by the hunt engine and its
// hosts. It has no external dependencies so game logic stays pure and testable.
package core

import "fmt"

// Coord addresses a grid cell by zero-based row and column.
// Row increases downward, Col increases to the right.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Step returns the neighbouring Coord one step in the given direction.
func (c Coord) Step(d Dir) Coord {
	dr, dc := d.Delta()
	return c.Add(dr, dc)
}

// Dir is one of the four orthogonal movement directions.
type Dir uint8

const (
	DirNone Dir = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Dirs lists the four valid directions in a fixed order.
var Dirs = [4]Dir{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four movement directions.
func (d Dir) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Delta returns the (row, col) unit offset of the direction.
// Up decreases Row, Down increases Row.
func (d Dir) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns the lower-case direction name.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}
