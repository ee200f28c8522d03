// Package hunt implements the treasure hunt engine: grid occupancy, hunter
// movement, treasure and obstacle bookkeeping, the Setup/Play/End stage
// machine and the performance index.
//
// The package is UI-agnostic and deterministic given a random Source. It
// performs no I/O and is not safe for concurrent use; hosts serialize calls.
package hunt

import (
	"fmt"
	"strings"
)

// CellKind tags the variant held by a Cell.
type CellKind uint8

const (
	KindEmpty CellKind = iota
	KindObstacle
	KindTreasure
	KindHunter
)

// String returns the lower-case variant name.
func (k CellKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindObstacle:
		return "obstacle"
	case KindTreasure:
		return "treasure"
	case KindHunter:
		return "hunter"
	default:
		return "unknown"
	}
}

// Treasure values a Treasure cell may carry.
const (
	MinTreasureValue = 5
	MaxTreasureValue = 8
)

// TreasureValues lists every valid treasure value in ascending order.
var TreasureValues = [...]int{5, 6, 7, 8}

// ValidTreasureValue reports whether v is a treasure value.
func ValidTreasureValue(v int) bool {
	return v >= MinTreasureValue && v <= MaxTreasureValue
}

// Cell is the content of one grid coordinate. The zero value is Empty.
// Only Treasure cells carry a value.
type Cell struct {
	kind  CellKind
	value int
}

// EmptyCell returns an empty cell.
func EmptyCell() Cell {
	return Cell{}
}

// ObstacleCell returns an obstacle cell.
func ObstacleCell() Cell {
	return Cell{kind: KindObstacle}
}

// TreasureCell returns a treasure cell with the given value.
// The value is checked when the cell is placed.
func TreasureCell(value int) Cell {
	return Cell{kind: KindTreasure, value: value}
}

// HunterCell returns the hunter cell.
func HunterCell() Cell {
	return Cell{kind: KindHunter}
}

// Kind returns the variant of the cell.
func (c Cell) Kind() CellKind {
	return c.kind
}

// Value returns the treasure value, or 0 for non-treasure cells.
func (c Cell) Value() int {
	return c.value
}

// IsEmpty reports whether the cell is Empty.
func (c Cell) IsEmpty() bool {
	return c.kind == KindEmpty
}

// Passable reports whether the hunter may step onto the cell.
func (c Cell) Passable() bool {
	return c.kind != KindObstacle
}

// String returns a compact description such as "treasure(7)".
func (c Cell) String() string {
	if c.kind == KindTreasure {
		return fmt.Sprintf("treasure(%d)", c.value)
	}
	return c.kind.String()
}

// Symbol returns the single-rune board representation of the cell.
func (c Cell) Symbol() rune {
	switch c.kind {
	case KindObstacle:
		return 'O'
	case KindHunter:
		return 'H'
	case KindTreasure:
		if ValidTreasureValue(c.value) {
			return rune('0' + c.value)
		}
		return '?'
	default:
		return '.'
	}
}

// ParsePlacement converts placement input ("5"-"8", "o", "h") into a Cell.
func ParsePlacement(input string) (Cell, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	switch s {
	case "5", "6", "7", "8":
		return TreasureCell(int(s[0] - '0')), nil
	case "o", "obstacle":
		return ObstacleCell(), nil
	case "h", "hunter":
		return HunterCell(), nil
	}
	return Cell{}, fmt.Errorf("%w: %q (use 5-8, o or h)", ErrInvalidObject, input)
}
