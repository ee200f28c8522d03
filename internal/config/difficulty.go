package config

import "fmt"

// DifficultyPreset represents a named difficulty level for generated layouts.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Density describes how much of a generated board is filled.
// Fractions are of the total cell count.
type Density struct {
	Treasure float64
	Obstacle float64
	// HighValueBias skews treasure values towards 8 (0 = uniform).
	HighValueBias float64
}

// ParseDifficulty validates a preset name. An empty name means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// DensityForPreset returns the generator density for a difficulty preset.
// Harder boards carry fewer treasures and more obstacles.
func DensityForPreset(preset DifficultyPreset) Density {
	switch preset {
	case DifficultyEasy:
		return Density{Treasure: 0.30, Obstacle: 0.05, HighValueBias: 0.5}
	case DifficultyHard:
		return Density{Treasure: 0.12, Obstacle: 0.30}
	default:
		return Density{Treasure: 0.20, Obstacle: 0.15, HighValueBias: 0.2}
	}
}

// Counts converts the density into object counts for a rows x cols board.
// One cell is always left for the hunter and at least one treasure is placed.
func (d Density) Counts(rows, cols int) (treasures, obstacles int) {
	cells := rows * cols
	free := cells - 1
	if free <= 0 {
		return 0, 0
	}

	treasures = clampI(int(float64(cells)*d.Treasure), 1, free)
	obstacles = clampI(int(float64(cells)*d.Obstacle), 0, free-treasures)
	return treasures, obstacles
}

// clampI restricts an int to [lo, hi].
func clampI(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
