package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
)

type crateToml struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
		Edition string `toml:"edition"`
	} `toml:"package"`
	Dependencies map[string]string `toml:"dependencies"`
}

func TestCrate_decodes(t *testing.T) {
	var got crateToml
	if _, err := toml.Decode(Crate("core", []string{"serde", "log"}), &got); err != nil {
		t.Fatalf("decoding crate manifest: %v", err)
	}
	if got.Package.Name != "core" {
		t.Errorf("name = %q, want core", got.Package.Name)
	}
	if got.Package.Version != CrateVersion {
		t.Errorf("version = %q, want %q", got.Package.Version, CrateVersion)
	}
	if got.Package.Edition != Edition {
		t.Errorf("edition = %q, want %q", got.Package.Edition, Edition)
	}
	if len(got.Dependencies) != 2 || got.Dependencies["serde"] != "*" || got.Dependencies["log"] != "*" {
		t.Errorf("dependencies = %v, want serde and log at *", got.Dependencies)
	}
}

func TestCrate_noDependencies(t *testing.T) {
	content := Crate("util", nil)
	want := "[package]\nname = \"util\"\nversion = \"0.1.0\"\nedition = \"2021\"\n\n[dependencies]\n"
	if content != want {
		t.Errorf("Crate() =\n%s\nwant\n%s", content, want)
	}
}

func TestWorkspaceTemplate_decodes(t *testing.T) {
	var ws struct {
		Workspace struct {
			Members []string `toml:"members"`
		} `toml:"workspace"`
	}
	if _, err := toml.Decode(WorkspaceTemplate(), &ws); err != nil {
		t.Fatalf("decoding workspace template: %v", err)
	}
	if len(ws.Workspace.Members) != 0 {
		t.Errorf("members = %v, want empty", ws.Workspace.Members)
	}
}

func TestWriteFile_replaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	if err := WriteFile(path, "first\n"); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, "second\n"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path) //nolint:gosec // test file
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second\n" {
		t.Errorf("content = %q, want %q", data, "second\n")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only %s in dir, found %d entries", FileName, len(entries))
	}
}

func TestWriteFile_missingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", FileName)
	if err := WriteFile(path, "x"); err == nil {
		t.Fatal("expected error when parent directory is missing")
	}
}
