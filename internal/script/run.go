package script

import (
	"fmt"

	"github.com/vovakirdan/treasure-hunt/internal/core"
	"github.com/vovakirdan/treasure-hunt/internal/hunt"
)

// Step is one executed command and its outcome.
type Step struct {
	Line    int
	Command string
	Move    *hunt.MoveResult // set for successful moves
	Err     error            // rejection reported by the game
}

// Runner executes scripts against a game.
type Runner struct {
	// Strict stops at the first rejected command. Otherwise rejections are
	// recorded in the step and execution continues, as an interactive
	// player would simply try again.
	Strict bool
	// OnStep is called after every command, if set.
	OnStep func(Step)
}

// Run executes s against g. A grid declaration resets g to that size,
// keeping its seed.
func (r Runner) Run(s *Script, g *hunt.Game) ([]Step, error) {
	if s.Grid != nil {
		cfg := core.RuntimeConfig{Rows: s.Grid.Rows, Cols: s.Grid.Cols, Seed: g.Seed()}
		if err := g.Reset(cfg); err != nil {
			return nil, fmt.Errorf("line %d: %w", s.Grid.Pos.Line, err)
		}
	}

	steps := make([]Step, 0, len(s.Commands))
	for _, c := range s.Commands {
		st := Step{Line: c.Pos.Line, Command: c.String()}
		st.Move, st.Err = exec(c, g)
		steps = append(steps, st)
		if r.OnStep != nil {
			r.OnStep(st)
		}
		if st.Err != nil && r.Strict {
			return steps, fmt.Errorf("line %d: %s: %w", st.Line, st.Command, st.Err)
		}
	}
	return steps, nil
}

func exec(c *Command, g *hunt.Game) (*hunt.MoveResult, error) {
	switch {
	case c.Place != nil:
		pos := core.At(c.Place.Row, c.Place.Col)
		if !g.InBounds(pos) {
			return nil, fmt.Errorf("%w: %v", hunt.ErrOutOfBounds, pos)
		}
		cell, err := c.Place.Object.cell()
		if err != nil {
			return nil, err
		}
		return nil, g.PlaceObject(pos, cell)

	case c.End != nil:
		if *c.End == "setup" {
			return nil, g.EndSetup()
		}
		return nil, g.EndPlay()

	case c.Move != nil:
		d, err := hunt.ParseDir(*c.Move)
		if err != nil {
			return nil, err
		}
		res, err := g.Move(d)
		if err != nil {
			return nil, err
		}
		return &res, nil
	}
	return nil, fmt.Errorf("empty command")
}

func (o *Object) cell() (hunt.Cell, error) {
	switch {
	case o.Hunter:
		return hunt.HunterCell(), nil
	case o.Obstacle:
		return hunt.ObstacleCell(), nil
	case o.Treasure != nil:
		if !hunt.ValidTreasureValue(*o.Treasure) {
			return hunt.Cell{}, fmt.Errorf("%w: got %d", hunt.ErrInvalidTreasure, *o.Treasure)
		}
		return hunt.TreasureCell(*o.Treasure), nil
	}
	return hunt.Cell{}, hunt.ErrInvalidObject
}
