package layout

import (
	"fmt"

	"github.com/vovakirdan/treasure-hunt/internal/config"
	"github.com/vovakirdan/treasure-hunt/internal/core"
	"github.com/vovakirdan/treasure-hunt/internal/hunt"
)

// Generate builds a random layout of rows x cols for the given density.
// The hunter, treasures and obstacles land on distinct cells drawn from src,
// so the same source sequence always yields the same board.
func Generate(rows, cols int, d config.Density, src hunt.Source) (Layout, error) {
	if rows < 1 || cols < 1 {
		return Layout{}, fmt.Errorf("%w: %dx%d", hunt.ErrInvalidDimensions, rows, cols)
	}

	cells := make([]core.Coord, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells = append(cells, core.At(r, c))
		}
	}
	// Fisher-Yates
	for i := len(cells) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		cells[i], cells[j] = cells[j], cells[i]
	}

	treasures, obstacles := d.Counts(rows, cols)
	l := Layout{
		ID:      fmt.Sprintf("random-%dx%d", rows, cols),
		Name:    "Random",
		Rows:    rows,
		Cols:    cols,
		Objects: make([]Object, 0, 1+treasures+obstacles),
	}

	l.Objects = append(l.Objects, Object{Pos: cells[0], Cell: hunt.HunterCell()})
	next := 1
	for i := 0; i < treasures; i++ {
		l.Objects = append(l.Objects, Object{Pos: cells[next], Cell: hunt.TreasureCell(treasureValue(d, src))})
		next++
	}
	for i := 0; i < obstacles; i++ {
		l.Objects = append(l.Objects, Object{Pos: cells[next], Cell: hunt.ObstacleCell()})
		next++
	}
	return l, nil
}

func treasureValue(d config.Density, src hunt.Source) int {
	if d.HighValueBias > 0 && src.Intn(100) < int(d.HighValueBias*100) {
		return hunt.MaxTreasureValue
	}
	return hunt.TreasureValues[src.Intn(len(hunt.TreasureValues))]
}
