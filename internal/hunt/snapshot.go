package hunt

import (
	"github.com/shopspring/decimal"

	"github.com/vovakirdan/treasure-hunt/internal/core"
)

// Snapshot is a read-only copy of the complete game state. Mutating a
// snapshot never affects the game it was taken from.
type Snapshot struct {
	Rows             int
	Cols             int
	Cells            [][]Cell
	Stage            Stage
	EndReason        EndReason
	Hunter           *core.Coord // nil until a hunter is placed
	Score            int
	Rounds           int
	Treasures        map[int]int // remaining treasures per value
	TotalTreasures   int
	PerformanceIndex decimal.Decimal
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Rows:             g.grid.rows,
		Cols:             g.grid.cols,
		Cells:            g.grid.Matrix(),
		Stage:            g.stage,
		EndReason:        g.endReason,
		Score:            g.score.Score(),
		Rounds:           g.score.Rounds(),
		Treasures:        g.ledger.Counts(),
		TotalTreasures:   g.ledger.Total(),
		PerformanceIndex: g.score.PerformanceIndex(),
	}
	if pos, ok := g.hunter.Position(); ok {
		snap.Hunter = &pos
	}
	return snap
}

// Cell returns the snapshot cell at pos.
func (s Snapshot) Cell(pos core.Coord) Cell {
	return s.Cells[pos.Row][pos.Col]
}
