package layout

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"sync"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

var (
	builtins = make(map[string]Layout)
	mu       sync.RWMutex
)

func init() {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("layout: reading built-ins: %v", err))
	}
	for _, e := range entries {
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("layout: reading %s: %v", e.Name(), err))
		}
		lay, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("layout: parsing %s: %v", e.Name(), err))
		}
		Register(lay)
	}
}

// Register adds a built-in layout.
// Panics if a layout with the same ID is already registered.
func Register(l Layout) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := builtins[l.ID]; exists {
		panic(fmt.Sprintf("layout: %q already registered", l.ID))
	}
	builtins[l.ID] = l
}

// Builtin returns the built-in layout with the given ID.
func Builtin(id string) (Layout, bool) {
	mu.RLock()
	defer mu.RUnlock()

	l, ok := builtins[id]
	return l, ok
}

// List returns all built-in layouts, sorted by ID.
func List() []Layout {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Layout, 0, len(builtins))
	for _, l := range builtins {
		result = append(result, l)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}
