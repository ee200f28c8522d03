package hunt

import (
	"math/rand"

	"github.com/vovakirdan/treasure-hunt/internal/core"
)

// Source is a uniform integer source. Intn returns a value in [0, n).
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns the default Source seeded with seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// ObstacleSpawner converts a uniformly chosen empty cell into an obstacle.
type ObstacleSpawner struct {
	grid *Grid
	src  Source
}

// PlaceRandom turns one empty cell into an obstacle and returns its
// coordinate. When the grid has no empty cell it does nothing and returns false.
func (s *ObstacleSpawner) PlaceRandom() (core.Coord, bool) {
	empty := s.grid.EmptyCoords()
	if len(empty) == 0 {
		return core.Coord{}, false
	}

	pos := empty[s.src.Intn(len(empty))]
	s.grid.set(pos, ObstacleCell())
	return pos, true
}
