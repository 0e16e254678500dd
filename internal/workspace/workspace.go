package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CyberForgeX/crust-trust/internal/crate"
	"github.com/CyberForgeX/crust-trust/internal/manifest"
)

// RecordFile is the name of the build record kept in the workspace root.
const RecordFile = ".crust-trust.yaml"

// Context holds the resolved paths for a workspace.
type Context struct {
	Root         string
	ManifestPath string
	RecordPath   string
	Members      *manifest.MemberUpdater
}

func newContext(root string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}
	manifestPath := filepath.Join(root, manifest.FileName)
	return &Context{
		Root:         root,
		ManifestPath: manifestPath,
		RecordPath:   filepath.Join(root, RecordFile),
		Members:      manifest.NewMemberUpdater(manifestPath),
	}, nil
}

// Init creates the workspace directory and, if absent, its root manifest.
// An existing root manifest is left untouched. created reports whether the
// manifest was written by this call.
func Init(root string) (ctx *Context, created bool, err error) {
	ctx, err = newContext(root)
	if err != nil {
		return nil, false, err
	}
	if err := os.MkdirAll(ctx.Root, 0755); err != nil { //nolint:gosec // workspace dir needs to be world-readable
		return nil, false, fmt.Errorf("creating workspace directory: %w", err)
	}
	if _, err := os.Stat(ctx.ManifestPath); err == nil {
		return ctx, false, nil
	} else if !os.IsNotExist(err) {
		return nil, false, fmt.Errorf("checking workspace manifest: %w", err)
	}
	if err := manifest.WriteFile(ctx.ManifestPath, manifest.WorkspaceTemplate()); err != nil {
		return nil, false, fmt.Errorf("writing workspace manifest: %w", err)
	}
	return ctx, true, nil
}

// Load resolves an existing workspace. The root manifest must exist.
func Load(root string) (*Context, error) {
	ctx, err := newContext(root)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(ctx.ManifestPath); err != nil {
		return nil, fmt.Errorf("not a workspace: %w", err)
	}
	return ctx, nil
}

// CrateDir returns the absolute path of the named crate.
func (c *Context) CrateDir(name string) string {
	return filepath.Join(c.Root, name)
}

// MemberNames returns the crate names listed in the root manifest.
func (c *Context) MemberNames() ([]string, error) {
	data, err := os.ReadFile(c.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("reading workspace manifest: %w", err)
	}
	return manifest.Members(string(data)), nil
}

// CreateCrate creates <root>/<name> with a crate manifest and a stub
// src/lib.rs. Existing files are overwritten.
func (c *Context) CreateCrate(spec crate.Spec) error {
	if err := ValidateCrateName(spec.Name); err != nil {
		return err
	}
	dir := c.CrateDir(spec.Name)
	srcDir := filepath.Join(dir, "src")
	if err := os.MkdirAll(srcDir, 0755); err != nil { //nolint:gosec // crate dirs need to be world-readable
		return fmt.Errorf("creating crate directory: %w", err)
	}
	if err := manifest.WriteFile(filepath.Join(dir, manifest.FileName), manifest.Crate(spec.Name, spec.Dependencies)); err != nil {
		return err
	}
	return manifest.WriteFile(filepath.Join(srcDir, "lib.rs"), manifest.LibStub)
}

// ValidateCrateName ensures name is a single relative path element.
func ValidateCrateName(name string) error {
	if name == "" {
		return fmt.Errorf("crate name is required")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid crate name %q", name)
	}
	if filepath.IsAbs(name) || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid crate name %q: must not contain path separators", name)
	}
	return nil
}
