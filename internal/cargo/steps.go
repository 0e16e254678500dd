package cargo

import (
	"fmt"
	"strings"
)

// Step names, in the order they run.
const (
	StepCheck    = "check"
	StepDeps     = "deps"
	StepUpdate   = "update"
	StepBench    = "bench"
	StepMetadata = "metadata"
)

// MetadataFormatVersion is the cargo metadata format requested.
const MetadataFormatVersion = 1

// step describes one toolchain step. Steps with no args run locally.
type step struct {
	name    string
	args    []string
	intro   string // printed before the step runs, may be empty
	passed  string // printed when the step succeeds
	failure string // prefix of the error message when the step fails
}

var allSteps = []step{
	{
		name:    StepCheck,
		args:    []string{"check", "--workspace"},
		passed:  "`cargo check` passed.",
		failure: "`cargo check` failed",
	},
	{
		name:   StepDeps,
		passed: "Dependency report done.",
	},
	{
		name:    StepUpdate,
		args:    []string{"update"},
		intro:   "Running version management...",
		passed:  "Dependency versions updated.",
		failure: "Version management failed",
	},
	{
		name:    StepBench,
		args:    []string{"bench"},
		intro:   "Running `cargo bench`...",
		passed:  "Benchmarking completed.",
		failure: "`cargo bench` failed",
	},
	{
		name:    StepMetadata,
		args:    []string{"metadata", fmt.Sprintf("--format-version=%d", MetadataFormatVersion)},
		intro:   "Generating dependency graph...",
		passed:  "Dependency graph generated.",
		failure: "Failed to generate dependency graph",
	},
}

// StepNames returns every step name in run order.
func StepNames() []string {
	names := make([]string, len(allSteps))
	for i, s := range allSteps {
		names[i] = s.name
	}
	return names
}

// selectSteps returns the known steps named in names, in run order.
// An unknown name is an error.
func selectSteps(names []string) ([]step, error) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(strings.ToLower(n))
		if n == "" {
			continue
		}
		if !isStep(n) {
			return nil, fmt.Errorf("unknown toolchain step %q (must be one of %s)", n, strings.Join(StepNames(), ", "))
		}
		want[n] = true
	}
	var out []step
	for _, s := range allSteps {
		if want[s.name] {
			out = append(out, s)
		}
	}
	return out, nil
}

// ValidateSteps checks that every name is a known step.
func ValidateSteps(names []string) error {
	_, err := selectSteps(names)
	return err
}

func isStep(name string) bool {
	for _, s := range allSteps {
		if s.name == name {
			return true
		}
	}
	return false
}
