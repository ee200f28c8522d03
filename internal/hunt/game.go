package hunt

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vovakirdan/treasure-hunt/internal/core"
)

// Game is the stage machine of one hunt session. It composes the grid, the
// treasure ledger, the obstacle spawner, the hunter and the score keeper and
// is the only way to mutate them.
type Game struct {
	grid    *Grid
	ledger  TreasureLedger
	spawner ObstacleSpawner
	hunter  HunterAgent
	score   ScoreKeeper

	stage     Stage
	endReason EndReason

	src        Source
	srcFixed   bool
	seed       int64
	placements int
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithSource injects the random source used by the obstacle spawner.
// It survives Reset; without it every Reset reseeds from the config.
func WithSource(src Source) Option {
	return func(g *Game) {
		g.src = src
		g.srcFixed = true
	}
}

// New creates a game in the Setup stage with an empty rows x cols grid.
func New(cfg core.RuntimeConfig, opts ...Option) (*Game, error) {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.Reset(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset discards the current session and starts a fresh one in Setup.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	if cfg.Rows < 1 || cfg.Cols < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cfg.Rows, cfg.Cols)
	}

	if !g.srcFixed {
		g.src = NewSource(cfg.Seed)
	}
	g.seed = cfg.Seed
	g.grid = newGrid(cfg.Rows, cfg.Cols)
	g.ledger = TreasureLedger{}
	g.spawner = ObstacleSpawner{grid: g.grid, src: g.src}
	g.hunter = HunterAgent{}
	g.score = ScoreKeeper{}
	g.stage = StageSetup
	g.endReason = EndNone
	g.placements = 0
	return nil
}

// Rows returns the number of grid rows.
func (g *Game) Rows() int { return g.grid.rows }

// Cols returns the number of grid columns.
func (g *Game) Cols() int { return g.grid.cols }

// Seed returns the seed the session was configured with.
func (g *Game) Seed() int64 { return g.seed }

// InBounds reports whether pos lies on the grid. Hosts must check it before
// calling PlaceObject with untrusted coordinates.
func (g *Game) InBounds(pos core.Coord) bool { return g.grid.InBounds(pos) }

// Cell returns the content at pos. Out-of-bounds coordinates panic.
func (g *Game) Cell(pos core.Coord) Cell { return g.grid.Get(pos) }

// Stage returns the current stage.
func (g *Game) Stage() Stage { return g.stage }

// EndReason returns why the game ended, or EndNone before StageEnd.
func (g *Game) EndReason() EndReason { return g.endReason }

// Hunter returns the hunter position and whether a hunter is placed.
func (g *Game) Hunter() (core.Coord, bool) { return g.hunter.Position() }

// Score returns the current score.
func (g *Game) Score() int { return g.score.Score() }

// Rounds returns the number of successful moves.
func (g *Game) Rounds() int { return g.score.Rounds() }

// TreasureCount returns the remaining treasures of the given value.
func (g *Game) TreasureCount(value int) int { return g.ledger.Count(value) }

// TotalTreasures returns the remaining treasures across all values.
func (g *Game) TotalTreasures() int { return g.ledger.Total() }

// PerformanceIndex returns score per round, see PerformanceIndex.
func (g *Game) PerformanceIndex() decimal.Decimal { return g.score.PerformanceIndex() }

// Placements returns the number of objects placed during setup.
func (g *Game) Placements() int { return g.placements }

// PlaceObject puts cell at pos during Setup.
//
// pos must be in bounds; an out-of-bounds pos is a caller bug and panics.
// The target must be empty, and at most one hunter may exist.
func (g *Game) PlaceObject(pos core.Coord, cell Cell) error {
	if g.stage != StageSetup {
		return fmt.Errorf("%w: cannot place objects during %s", ErrInvalidStage, g.stage)
	}

	switch cell.kind {
	case KindEmpty:
		return fmt.Errorf("%w: cannot place an empty cell", ErrInvalidObject)
	case KindTreasure:
		if !ValidTreasureValue(cell.value) {
			return fmt.Errorf("%w: got %d", ErrInvalidTreasure, cell.value)
		}
	case KindObstacle, KindHunter:
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidObject, cell.kind)
	}

	if !g.grid.Get(pos).IsEmpty() {
		return fmt.Errorf("%w: %v holds %s", ErrOccupiedCell, pos, g.grid.Get(pos))
	}
	if cell.kind == KindHunter && g.hunter.placed {
		return fmt.Errorf("%w at %v", ErrDuplicateHunter, g.hunter.pos)
	}

	g.grid.set(pos, cell)
	switch cell.kind {
	case KindTreasure:
		g.ledger.add(cell.value)
	case KindHunter:
		g.hunter = HunterAgent{pos: pos, placed: true}
	}
	g.placements++
	return nil
}

// EndSetup moves the game from Setup to Play. A board without treasures
// goes straight on to End.
func (g *Game) EndSetup() error {
	if g.stage != StageSetup {
		return fmt.Errorf("%w: setup already ended", ErrInvalidStage)
	}
	if !g.hunter.placed {
		return ErrNoHunterPlaced
	}

	g.stage = StagePlay
	if g.ledger.Total() == 0 {
		g.end(EndNoTreasures)
	}
	return nil
}

// EndPlay forces the transition from Play to End.
func (g *Game) EndPlay() error {
	if g.stage != StagePlay {
		return fmt.Errorf("%w: cannot end play during %s", ErrInvalidStage, g.stage)
	}
	g.end(EndForced)
	return nil
}

func (g *Game) end(reason EndReason) {
	g.stage = StageEnd
	g.endReason = reason
}

// MoveResult describes the effects of a successful move.
type MoveResult struct {
	From      core.Coord
	To        core.Coord
	Collected int         // treasure value picked up, 0 if none
	Spawned   *core.Coord // obstacle spawned by the pickup, if any
	Ended     bool        // the move finished the game
	EndReason EndReason
}

// String summarizes the move for logs and status lines.
func (r MoveResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v -> %v", r.From, r.To)
	if r.Collected > 0 {
		fmt.Fprintf(&b, ", collected %d", r.Collected)
	}
	if r.Spawned != nil {
		fmt.Fprintf(&b, ", obstacle at %v", *r.Spawned)
	}
	if r.Ended {
		fmt.Fprintf(&b, ", game over (%s)", r.EndReason)
	}
	return b.String()
}

// Move steps the hunter one cell in direction d during Play.
//
// All checks run before any mutation, so a failed move changes nothing.
// Collecting a treasure adds its value to the score and spawns one obstacle
// on a random empty cell; the cell the hunter just left is a candidate.
func (g *Game) Move(d core.Dir) (MoveResult, error) {
	if g.stage != StagePlay {
		return MoveResult{}, fmt.Errorf("%w: cannot move during %s", ErrInvalidStage, g.stage)
	}

	to, err := g.hunter.target(g.grid, d)
	if err != nil {
		return MoveResult{}, err
	}

	from := g.hunter.pos
	res := MoveResult{From: from, To: to}

	g.grid.set(from, EmptyCell())
	if target := g.grid.Get(to); target.kind == KindTreasure {
		g.score.collect(target.value)
		g.ledger.remove(target.value)
		res.Collected = target.value
		if pos, ok := g.spawner.PlaceRandom(); ok {
			res.Spawned = &pos
		}
	}
	g.grid.set(to, HunterCell())
	g.hunter.pos = to
	g.score.completeRound()

	switch {
	case g.ledger.Total() == 0:
		g.end(EndNoTreasures)
	case !g.hunter.canMove(g.grid):
		g.end(EndImmobilized)
	}
	if g.stage == StageEnd {
		res.Ended = true
		res.EndReason = g.endReason
	}
	return res, nil
}

// CanMove reports whether the hunter has at least one legal move.
// It is false when no hunter is placed.
func (g *Game) CanMove() bool {
	return g.hunter.canMove(g.grid)
}
