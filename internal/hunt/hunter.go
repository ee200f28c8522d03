package hunt

import "github.com/vovakirdan/treasure-hunt/internal/core"

// HunterAgent tracks the position of the single hunter.
type HunterAgent struct {
	pos    core.Coord
	placed bool
}

// Position returns the hunter's coordinate and whether a hunter is placed.
func (h *HunterAgent) Position() (core.Coord, bool) {
	return h.pos, h.placed
}

// target validates a step from the current position and returns the
// destination. It does not mutate anything.
func (h *HunterAgent) target(g *Grid, d core.Dir) (core.Coord, error) {
	if !h.placed {
		return core.Coord{}, ErrNoHunterPlaced
	}
	if !d.Valid() {
		return core.Coord{}, ErrInvalidDirection
	}

	to := h.pos.Step(d)
	if !g.InBounds(to) {
		return core.Coord{}, ErrOutOfBounds
	}
	if !g.Get(to).Passable() {
		return core.Coord{}, ErrObstacleBlocked
	}
	return to, nil
}

// canMove reports whether at least one orthogonal neighbour is in bounds and
// not an obstacle.
func (h *HunterAgent) canMove(g *Grid) bool {
	if !h.placed {
		return false
	}
	for _, d := range core.Dirs {
		to := h.pos.Step(d)
		if g.InBounds(to) && g.Get(to).Passable() {
			return true
		}
	}
	return false
}
