package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/CyberForgeX/crust-trust/internal/manifest"
)

// Snapshot records what existed in a workspace before a run.
type Snapshot struct {
	Root     string
	Manifest []byte // nil if the root manifest did not exist
	existing map[string]bool
}

// TakeSnapshot records the root manifest and which of the given crate
// directories already exist under root. It does not create anything.
func TakeSnapshot(root string, names []string) (*Snapshot, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}
	s := &Snapshot{Root: root, existing: make(map[string]bool, len(names))}

	data, err := os.ReadFile(filepath.Join(root, manifest.FileName)) //nolint:gosec // workspace manifest path
	switch {
	case err == nil:
		s.Manifest = data
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("reading workspace manifest: %w", err)
	}

	for _, n := range names {
		if ValidateCrateName(n) != nil {
			continue
		}
		if _, err := os.Stat(filepath.Join(root, n)); err == nil {
			s.existing[n] = true
		}
	}
	return s, nil
}

// Existed reports whether the named crate directory was present at snapshot time.
func (s *Snapshot) Existed(name string) bool {
	return s.existing[name]
}

// Restore undoes a run: crate directories in created that did not exist at
// snapshot time are removed, and the root manifest is restored (or removed
// if the run created it). It returns the names of removed crates.
func (s *Snapshot) Restore(created []string) ([]string, error) {
	var removed []string
	for _, n := range created {
		if s.existing[n] || ValidateCrateName(n) != nil {
			continue
		}
		if err := os.RemoveAll(filepath.Join(s.Root, n)); err != nil {
			return removed, fmt.Errorf("removing crate %s: %w", n, err)
		}
		removed = append(removed, n)
	}

	path := filepath.Join(s.Root, manifest.FileName)
	if s.Manifest == nil {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("removing workspace manifest: %w", err)
		}
		return removed, nil
	}
	if err := manifest.WriteFile(path, string(s.Manifest)); err != nil {
		return removed, fmt.Errorf("restoring workspace manifest: %w", err)
	}
	return removed, nil
}
