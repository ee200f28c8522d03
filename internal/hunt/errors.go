package hunt

import "errors"

// Rule violations. Every failing operation returns one of these (possibly
// wrapped) and leaves the game unchanged.
var (
	ErrOccupiedCell     = errors.New("hunt: cell is already occupied")
	ErrDuplicateHunter  = errors.New("hunt: a hunter is already placed")
	ErrNoHunterPlaced   = errors.New("hunt: no hunter placed")
	ErrOutOfBounds      = errors.New("hunt: move leaves the grid")
	ErrObstacleBlocked  = errors.New("hunt: move blocked by obstacle")
	ErrInvalidDirection = errors.New("hunt: invalid direction")
	ErrInvalidStage     = errors.New("hunt: operation not allowed in current stage")
)

// Input validation failures for values a host passes in.
var (
	ErrInvalidObject     = errors.New("hunt: invalid object")
	ErrInvalidTreasure   = errors.New("hunt: treasure value must be 5-8")
	ErrInvalidDimensions = errors.New("hunt: grid dimensions must be positive")
)
