package cargo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
)

type crateManifest struct {
	Dependencies map[string]any `toml:"dependencies"`
}

// SharedDependencies scans every direct subdirectory of root that holds a
// Cargo.toml and returns each declared dependency mapped to the sorted names
// of the crates using it. Subdirectories whose manifest cannot be decoded are
// reported as an error.
func SharedDependencies(root string) (map[string][]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading workspace: %w", err)
	}

	shared := make(map[string][]string)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(root, e.Name(), "Cargo.toml")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		var m crateManifest
		if _, err := toml.DecodeFile(path, &m); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		for dep := range m.Dependencies {
			shared[dep] = append(shared[dep], e.Name())
		}
	}
	for dep := range shared {
		sort.Strings(shared[dep])
	}
	return shared, nil
}

// DependencyNames returns the keys of a SharedDependencies result, sorted.
func DependencyNames(shared map[string][]string) []string {
	names := make([]string, 0, len(shared))
	for n := range shared {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
