// Package workspace resolves the paths of a Cargo workspace on disk and
// creates its root manifest and member crates. It also snapshots the
// workspace before a run so a failed run can be rolled back.
package workspace
