package layout

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/treasure-hunt/internal/core"
	"github.com/vovakirdan/treasure-hunt/internal/hunt"
)

// yamlLayout represents the YAML structure for a layout file.
type yamlLayout struct {
	ID      string       `yaml:"id"`
	Name    string       `yaml:"name"`
	Size    yamlSize     `yaml:"size"`
	Objects []yamlObject `yaml:"objects"`
}

// yamlSize represents grid dimensions.
type yamlSize struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// yamlObject represents a single placement in YAML format.
type yamlObject struct {
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
	Kind  string `yaml:"kind"` // hunter, treasure, obstacle
	Value int    `yaml:"value,omitempty"`
}

// Parse parses a YAML layout. Objects are validated for kind, value and
// bounds; occupancy and hunter count are checked when the layout is applied.
func Parse(data []byte) (Layout, error) {
	var yl yamlLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Layout{}, fmt.Errorf("layout has no id")
	}
	if yl.Size.Rows < 1 || yl.Size.Cols < 1 {
		return Layout{}, fmt.Errorf("layout %s: %w: %dx%d", yl.ID, hunt.ErrInvalidDimensions, yl.Size.Rows, yl.Size.Cols)
	}

	l := Layout{
		ID:      yl.ID,
		Name:    yl.Name,
		Rows:    yl.Size.Rows,
		Cols:    yl.Size.Cols,
		Objects: make([]Object, 0, len(yl.Objects)),
	}
	if l.Name == "" {
		l.Name = l.ID
	}

	for i, o := range yl.Objects {
		pos := core.At(o.Row, o.Col)
		if o.Row < 0 || o.Row >= l.Rows || o.Col < 0 || o.Col >= l.Cols {
			return Layout{}, fmt.Errorf("layout %s: object %d at %v: %w", l.ID, i, pos, hunt.ErrOutOfBounds)
		}
		cell, err := cellFor(o)
		if err != nil {
			return Layout{}, fmt.Errorf("layout %s: object %d: %w", l.ID, i, err)
		}
		l.Objects = append(l.Objects, Object{Pos: pos, Cell: cell})
	}

	return l, nil
}

func cellFor(o yamlObject) (hunt.Cell, error) {
	switch strings.ToLower(o.Kind) {
	case "hunter":
		return hunt.HunterCell(), nil
	case "obstacle":
		return hunt.ObstacleCell(), nil
	case "treasure":
		if !hunt.ValidTreasureValue(o.Value) {
			return hunt.Cell{}, fmt.Errorf("%w: got %d", hunt.ErrInvalidTreasure, o.Value)
		}
		return hunt.TreasureCell(o.Value), nil
	default:
		return hunt.Cell{}, fmt.Errorf("%w: kind %q", hunt.ErrInvalidObject, o.Kind)
	}
}

// Encode serializes a layout back to YAML.
func Encode(l Layout) ([]byte, error) {
	yl := yamlLayout{
		ID:      l.ID,
		Name:    l.Name,
		Size:    yamlSize{Rows: l.Rows, Cols: l.Cols},
		Objects: make([]yamlObject, 0, len(l.Objects)),
	}
	for _, o := range l.Objects {
		yl.Objects = append(yl.Objects, yamlObject{
			Row:   o.Pos.Row,
			Col:   o.Pos.Col,
			Kind:  o.Cell.Kind().String(),
			Value: o.Cell.Value(),
		})
	}
	return yaml.Marshal(yl)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
