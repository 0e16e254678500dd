// Package crate parses crate specifications from the command line and holds
// them in a Registry that is built once and then shared read-only by the
// goroutines that scaffold the workspace.
package crate
