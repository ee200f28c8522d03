package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home, wd = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(wd); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
	t.Setenv("PWD", wd)
	return home, wd
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded config %+v differs from DefaultConfig() %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "grid:\n  rows: 8\n  cols: 12\nseed: 42\nlog:\n  level: debug\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Rows != 8 || cfg.Grid.Cols != 12 {
		t.Errorf("grid = %dx%d, expected 8x12", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Seed != 42 || cfg.Log.Level != "debug" {
		t.Errorf("seed/level = %d/%s", cfg.Seed, cfg.Log.Level)
	}
	// Missing keys fall back to defaults.
	if cfg.DBPath != "hunt.db" || cfg.SSH.Address != ":2323" {
		t.Errorf("defaults not filled: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "grid: [unclosed\n")
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, wd := isolate(t)

	writeFile(t, filepath.Join(wd, "configs", "hunt.yaml"), "grid:\n  rows: 6\n  cols: 6\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Grid.Rows != 6 {
		t.Errorf("local config not used: rows = %d", cfg.Grid.Rows)
	}

	writeFile(t, filepath.Join(home, ".hunt", "config.yaml"), "grid:\n  rows: 9\n  cols: 9\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Grid.Rows != 9 {
		t.Errorf("user config should win over local: rows = %d", cfg.Grid.Rows)
	}
}

func TestRuntime(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 3
	rt := cfg.Runtime()
	if rt.Rows != 5 || rt.Cols != 5 || rt.Seed != 3 {
		t.Errorf("Runtime() = %+v", rt)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input    string
		expected DifficultyPreset
		err      bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDifficulty(tc.input)
			if (err != nil) != tc.err {
				t.Fatalf("error = %v, expected error %v", err, tc.err)
			}
			if got != tc.expected {
				t.Errorf("got %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestDensityCounts(t *testing.T) {
	tests := []struct {
		name       string
		preset     DifficultyPreset
		rows, cols int
	}{
		{"easy 5x5", DifficultyEasy, 5, 5},
		{"normal 10x10", DifficultyNormal, 10, 10},
		{"hard 3x3", DifficultyHard, 3, 3},
		{"tiny 1x2", DifficultyHard, 1, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr, ob := DensityForPreset(tc.preset).Counts(tc.rows, tc.cols)
			if tr < 1 {
				t.Errorf("treasures = %d, expected at least 1", tr)
			}
			if tr+ob > tc.rows*tc.cols-1 {
				t.Errorf("%d treasures + %d obstacles leave no room for the hunter", tr, ob)
			}
		})
	}

	if tr, ob := DensityForPreset(DifficultyNormal).Counts(1, 1); tr != 0 || ob != 0 {
		t.Errorf("1x1 board should hold only the hunter, got %d/%d", tr, ob)
	}

	easyT, easyO := DensityForPreset(DifficultyEasy).Counts(10, 10)
	hardT, hardO := DensityForPreset(DifficultyHard).Counts(10, 10)
	if easyT <= hardT || easyO >= hardO {
		t.Errorf("easy (%d/%d) should have more treasures and fewer obstacles than hard (%d/%d)", easyT, easyO, hardT, hardO)
	}
}
