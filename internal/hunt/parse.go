package hunt

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/treasure-hunt/internal/core"
)

// ParseDir converts WASD keys or direction names into a Dir.
func ParseDir(input string) (core.Dir, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "w", "up":
		return core.DirUp, nil
	case "s", "down":
		return core.DirDown, nil
	case "a", "left":
		return core.DirLeft, nil
	case "d", "right":
		return core.DirRight, nil
	}
	return core.DirNone, fmt.Errorf("%w: %q (use w, a, s or d)", ErrInvalidDirection, input)
}
