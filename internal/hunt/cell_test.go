package hunt_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/treasure-hunt/internal/core"
	"github.com/vovakirdan/treasure-hunt/internal/hunt"
)

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		input string
		kind  hunt.CellKind
		value int
		err   bool
	}{
		{"5", hunt.KindTreasure, 5, false},
		{" 8 ", hunt.KindTreasure, 8, false},
		{"o", hunt.KindObstacle, 0, false},
		{"H", hunt.KindHunter, 0, false},
		{"4", 0, 0, true},
		{"x", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			cell, err := hunt.ParsePlacement(tc.input)
			if tc.err {
				if !errors.Is(err, hunt.ErrInvalidObject) {
					t.Errorf("expected ErrInvalidObject, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if cell.Kind() != tc.kind || cell.Value() != tc.value {
				t.Errorf("got %v, expected %s(%d)", cell, tc.kind, tc.value)
			}
		})
	}
}

func TestParseDir(t *testing.T) {
	tests := map[string]core.Dir{
		"w":     core.DirUp,
		"a":     core.DirLeft,
		"S":     core.DirDown,
		"right": core.DirRight,
	}
	for in, want := range tests {
		got, err := hunt.ParseDir(in)
		if err != nil || got != want {
			t.Errorf("ParseDir(%q) = %v, %v; expected %v", in, got, err, want)
		}
	}

	if _, err := hunt.ParseDir("x"); !errors.Is(err, hunt.ErrInvalidDirection) {
		t.Errorf("expected ErrInvalidDirection, got %v", err)
	}
}

func TestCellSymbols(t *testing.T) {
	cells := []hunt.Cell{hunt.EmptyCell(), hunt.ObstacleCell(), hunt.HunterCell(), hunt.TreasureCell(6)}
	var b strings.Builder
	for _, c := range cells {
		b.WriteRune(c.Symbol())
	}
	if b.String() != ".OH6" {
		t.Errorf("symbols = %q, expected %q", b.String(), ".OH6")
	}
	if hunt.TreasureCell(7).String() != "treasure(7)" {
		t.Errorf("String() = %q", hunt.TreasureCell(7).String())
	}
}

func TestRenderShowsBoardAndStatus(t *testing.T) {
	g, err := hunt.New(core.RuntimeConfig{Rows: 2, Cols: 3, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := g.PlaceObject(core.At(0, 0), hunt.HunterCell()); err != nil {
		t.Fatal(err)
	}
	if err := g.PlaceObject(core.At(1, 2), hunt.TreasureCell(7)); err != nil {
		t.Fatal(err)
	}

	w, h := hunt.RequiredSize(2, 3)
	screen := core.NewScreen(w, h)
	cursor := core.At(1, 2)
	g.Render(screen, &cursor)

	out := screen.String()
	for _, want := range []string{"Setup Stage", "H", "[7]", "Treasures placed: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q:\n%s", want, out)
		}
	}

	if err := g.EndSetup(); err != nil {
		t.Fatal(err)
	}
	if err := g.EndPlay(); err != nil {
		t.Fatal(err)
	}
	g.Render(screen, nil)
	out = screen.String()
	for _, want := range []string{"End Stage", "Performance Index: 0.00", "ended by player"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g, err := hunt.New(core.RuntimeConfig{Rows: 10, Cols: 10})
	if err != nil {
		t.Fatal(err)
	}
	screen := core.NewScreen(20, 8)
	g.Render(screen, nil)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small notice")
	}
}
