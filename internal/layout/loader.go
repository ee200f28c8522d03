package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// Loader handles loading layouts from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new layout loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all layout files.
// Invalid files are skipped. Layouts are sorted by ID.
func (l *Loader) LoadAll() ([]Layout, error) {
	var layouts []Layout

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		lay, err := LoadFile(path)
		if err != nil {
			return nil
		}
		layouts = append(layouts, lay)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})
	return layouts, nil
}

// LoadByID loads a specific layout by ID.
func (l *Loader) LoadByID(id string) (Layout, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return Layout{}, err
	}
	for _, lay := range layouts {
		if lay.ID == id {
			return lay, nil
		}
	}
	return Layout{}, fmt.Errorf("layout not found: %s", id)
}

// LoadFile loads a single layout file.
func LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	lay, err := Parse(data)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	lay.FilePath = path
	return lay, nil
}

// Resolve finds a layout by file path, built-in ID, or ID within dir,
// in that order.
func Resolve(ref, dir string) (Layout, error) {
	if isSupportedExtension(filepath.Ext(ref)) {
		if _, err := os.Stat(ref); err == nil {
			return LoadFile(ref)
		}
	}
	if lay, ok := Builtin(ref); ok {
		return lay, nil
	}
	if dir != "" {
		if lay, err := NewLoader(dir).LoadByID(ref); err == nil {
			return lay, nil
		}
	}
	return Layout{}, fmt.Errorf("layout not found: %s", ref)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(FormatExtensions(), strings.ToLower(ext))
}
