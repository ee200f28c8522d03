package layout

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/treasure-hunt/internal/config"
	"github.com/vovakirdan/treasure-hunt/internal/core"
	"github.com/vovakirdan/treasure-hunt/internal/hunt"
)

const sampleYAML = `
id: sample
name: Sample
size: {rows: 3, cols: 4}
objects:
  - {row: 0, col: 0, kind: hunter}
  - {row: 0, col: 1, kind: treasure, value: 6}
  - {row: 2, col: 3, kind: obstacle}
`

func TestParse(t *testing.T) {
	l, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if l.ID != "sample" || l.Name != "Sample" {
		t.Errorf("id/name = %q/%q", l.ID, l.Name)
	}
	if l.Rows != 3 || l.Cols != 4 {
		t.Errorf("size = %dx%d, expected 3x4", l.Rows, l.Cols)
	}
	if len(l.Objects) != 3 {
		t.Fatalf("expected 3 objects, got %d", len(l.Objects))
	}
	if l.Objects[1].Pos != core.At(0, 1) || l.Objects[1].Cell != hunt.TreasureCell(6) {
		t.Errorf("object 1 = %+v", l.Objects[1])
	}
	if !l.HasHunter() {
		t.Error("expected hunter")
	}
	tr, ob, val := l.Summary()
	if tr != 1 || ob != 1 || val != 6 {
		t.Errorf("Summary() = %d, %d, %d", tr, ob, val)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"bad dimensions", "id: x\nsize: {rows: 0, cols: 3}\n", hunt.ErrInvalidDimensions},
		{"out of bounds", "id: x\nsize: {rows: 2, cols: 2}\nobjects:\n  - {row: 2, col: 0, kind: obstacle}\n", hunt.ErrOutOfBounds},
		{"bad treasure", "id: x\nsize: {rows: 2, cols: 2}\nobjects:\n  - {row: 0, col: 0, kind: treasure, value: 9}\n", hunt.ErrInvalidTreasure},
		{"bad kind", "id: x\nsize: {rows: 2, cols: 2}\nobjects:\n  - {row: 0, col: 0, kind: dragon}\n", hunt.ErrInvalidObject},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := Parse([]byte("size: {rows: 2, cols: 2}\n")); err == nil {
		t.Error("expected error for missing id")
	}
	if _, err := Parse([]byte("id: [\n")); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	l, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	data, err := Encode(l)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse of encoded layout failed: %v", err)
	}
	if !reflect.DeepEqual(l, back) {
		t.Errorf("round trip mismatch:\n%+v\n%+v", l, back)
	}
}

func TestApply(t *testing.T) {
	l, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}

	g, err := l.NewGame(7)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 4 || g.Seed() != 7 {
		t.Errorf("game = %dx%d seed %d", g.Rows(), g.Cols(), g.Seed())
	}
	if g.Stage() != hunt.StageSetup {
		t.Errorf("stage = %s, expected setup", g.Stage())
	}
	if pos, ok := g.Hunter(); !ok || pos != core.At(0, 0) {
		t.Errorf("hunter = %v, %v", pos, ok)
	}
	if g.TreasureCount(6) != 1 || g.Placements() != 3 {
		t.Errorf("treasures/placements = %d/%d", g.TreasureCount(6), g.Placements())
	}
}

func TestApplyRejectsConflicts(t *testing.T) {
	l := Layout{
		ID:   "twins",
		Rows: 2,
		Cols: 2,
		Objects: []Object{
			{Pos: core.At(0, 0), Cell: hunt.HunterCell()},
			{Pos: core.At(1, 1), Cell: hunt.HunterCell()},
		},
	}
	if _, err := l.NewGame(1); !errors.Is(err, hunt.ErrDuplicateHunter) {
		t.Errorf("expected ErrDuplicateHunter, got %v", err)
	}

	l.Objects = []Object{{Pos: core.At(5, 5), Cell: hunt.ObstacleCell()}}
	if _, err := l.NewGame(1); !errors.Is(err, hunt.ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestBuiltinsAreValid(t *testing.T) {
	list := List()
	if len(list) < 3 {
		t.Fatalf("expected at least 3 built-in layouts, got %d", len(list))
	}
	for i, l := range list {
		if i > 0 && list[i-1].ID >= l.ID {
			t.Errorf("layouts not sorted: %s >= %s", list[i-1].ID, l.ID)
		}
		t.Run(l.ID, func(t *testing.T) {
			g, err := l.NewGame(1)
			if err != nil {
				t.Fatalf("NewGame failed: %v", err)
			}
			if err := g.EndSetup(); err != nil {
				t.Errorf("EndSetup failed: %v", err)
			}
		})
	}

	if _, ok := Builtin("classic"); !ok {
		t.Error("classic layout missing")
	}
}

func TestBuiltinDeadEndImmobilizes(t *testing.T) {
	l, ok := Builtin("dead-end")
	if !ok {
		t.Fatal("dead-end layout missing")
	}
	g, err := l.NewGame(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.EndSetup(); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Move(core.DirRight); err != nil {
		t.Fatal(err)
	}
	if g.EndReason() != hunt.EndImmobilized {
		t.Errorf("reason = %s, expected immobilized", g.EndReason())
	}
}

func TestLoaderAndResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "sample.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("id: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	all, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(all) != 1 || all[0].ID != "sample" || all[0].FilePath != path {
		t.Errorf("LoadAll = %+v", all)
	}

	tests := []struct {
		ref string
		id  string
	}{
		{path, "sample"},
		{"sample", "sample"},
		{"classic", "classic"},
	}
	for _, tc := range tests {
		l, err := Resolve(tc.ref, dir)
		if err != nil {
			t.Errorf("Resolve(%q) failed: %v", tc.ref, err)
			continue
		}
		if l.ID != tc.id {
			t.Errorf("Resolve(%q) = %s, expected %s", tc.ref, l.ID, tc.id)
		}
	}

	if _, err := Resolve("missing", dir); err == nil {
		t.Error("expected error for unknown layout")
	}
}

func TestGenerate(t *testing.T) {
	presets := []config.DifficultyPreset{config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard}
	for _, p := range presets {
		t.Run(string(p), func(t *testing.T) {
			d := config.DensityForPreset(p)
			l, err := Generate(6, 8, d, hunt.NewSource(11))
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}

			wantT, wantO := d.Counts(6, 8)
			tr, ob, _ := l.Summary()
			if tr != wantT || ob != wantO {
				t.Errorf("got %d treasures / %d obstacles, expected %d / %d", tr, ob, wantT, wantO)
			}
			if !l.HasHunter() {
				t.Error("generated layout has no hunter")
			}

			g, err := l.NewGame(11)
			if err != nil {
				t.Fatalf("generated layout does not apply: %v", err)
			}
			if g.TotalTreasures() != wantT {
				t.Errorf("game has %d treasures, expected %d", g.TotalTreasures(), wantT)
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	d := config.DensityForPreset(config.DifficultyNormal)
	a, err := Generate(5, 5, d, hunt.NewSource(3))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(5, 5, d, hunt.NewSource(3))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different layouts")
	}

	if _, err := Generate(0, 5, d, hunt.NewSource(3)); !errors.Is(err, hunt.ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
}
