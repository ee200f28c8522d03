// Package layout loads, generates and applies board layouts: the initial
// placement of the hunter, treasures and obstacles on a grid.
package layout

import (
	"fmt"

	"github.com/vovakirdan/treasure-hunt/internal/core"
	"github.com/vovakirdan/treasure-hunt/internal/hunt"
)

// Layout is a complete board definition.
type Layout struct {
	ID       string
	Name     string
	Rows     int
	Cols     int
	Objects  []Object
	FilePath string // empty for built-in and generated layouts
}

// Object is a single placement.
type Object struct {
	Pos  core.Coord
	Cell hunt.Cell
}

// Runtime returns the engine config for this layout with the given seed.
func (l Layout) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{Rows: l.Rows, Cols: l.Cols, Seed: seed}
}

// HasHunter reports whether the layout places a hunter.
func (l Layout) HasHunter() bool {
	for _, o := range l.Objects {
		if o.Cell.Kind() == hunt.KindHunter {
			return true
		}
	}
	return false
}

// Apply resets g to the layout's size, keeping its seed, and places every
// object. The game is left in Setup.
func (l Layout) Apply(g *hunt.Game) error {
	if err := g.Reset(l.Runtime(g.Seed())); err != nil {
		return fmt.Errorf("layout %s: %w", l.ID, err)
	}
	for i, o := range l.Objects {
		if !g.InBounds(o.Pos) {
			return fmt.Errorf("layout %s: object %d at %v: %w", l.ID, i, o.Pos, hunt.ErrOutOfBounds)
		}
		if err := g.PlaceObject(o.Pos, o.Cell); err != nil {
			return fmt.Errorf("layout %s: object %d at %v: %w", l.ID, i, o.Pos, err)
		}
	}
	return nil
}

// NewGame builds a fresh game in Setup with the layout applied.
func (l Layout) NewGame(seed int64, opts ...hunt.Option) (*hunt.Game, error) {
	g, err := hunt.New(l.Runtime(seed), opts...)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", l.ID, err)
	}
	if err := l.Apply(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Summary counts the objects by kind and sums treasure value.
func (l Layout) Summary() (treasures, obstacles, value int) {
	for _, o := range l.Objects {
		switch o.Cell.Kind() {
		case hunt.KindTreasure:
			treasures++
			value += o.Cell.Value()
		case hunt.KindObstacle:
			obstacles++
		}
	}
	return treasures, obstacles, value
}
