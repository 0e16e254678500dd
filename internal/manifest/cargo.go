package manifest

import (
	"fmt"
	"strings"
)

const (
	// FileName is the manifest file name for both the workspace and its crates.
	FileName = "Cargo.toml"

	// CrateVersion is the placeholder version written to every new crate.
	CrateVersion = "0.1.0"

	// Edition is the Rust edition written to every new crate.
	Edition = "2021"

	// LibStub is the content of a new crate's src/lib.rs.
	LibStub = "// Default lib.rs content\n"
)

// WorkspaceTemplate returns the content of a fresh workspace manifest.
func WorkspaceTemplate() string {
	return "[workspace]\nmembers = []\n"
}

// Crate renders a crate manifest. Every dependency is pinned to the
// wildcard requirement "*", in the order given.
func Crate(name string, deps []string) string {
	var b strings.Builder
	b.WriteString("[package]\n")
	fmt.Fprintf(&b, "name = %q\n", name)
	fmt.Fprintf(&b, "version = %q\n", CrateVersion)
	fmt.Fprintf(&b, "edition = %q\n", Edition)
	b.WriteString("\n[dependencies]\n")
	for _, d := range deps {
		fmt.Fprintf(&b, "%s = \"*\"\n", d)
	}
	return b.String()
}
