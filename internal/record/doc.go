// Package record handles the .crust-trust.yaml build record kept in a
// workspace root. The record tracks which crates a run created, whether each
// toolchain step passed, and whether the workspace was promoted from
// provisional to complete.
package record
