package cargo

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/CyberForgeX/crust-trust/internal/testutil"
)

// stubRunner records calls and returns canned results keyed by subcommand.
type stubRunner struct {
	calls   [][]string
	results map[string]Result
	err     error
}

func (s *stubRunner) Run(_ context.Context, _ string, name string, args ...string) (Result, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	if s.err != nil {
		return Result{}, s.err
	}
	if len(args) > 0 {
		if r, ok := s.results[args[0]]; ok {
			return r, nil
		}
	}
	return Result{}, nil
}

func newTestDriver(r Runner) (*Driver, *bytes.Buffer) {
	var out bytes.Buffer
	return &Driver{Runner: r, Binary: "cargo", Out: &out}, &out
}

func TestDriver_runsStepsInOrder(t *testing.T) {
	r := &stubRunner{results: map[string]Result{
		"metadata": {Stdout: `{"packages":[]}`},
	}}
	d, out := newTestDriver(r)

	var seen []string
	d.OnStep = func(name string, err error) {
		if err != nil {
			t.Errorf("step %s failed: %v", name, err)
		}
		seen = append(seen, name)
	}

	// Order of names passed in does not matter.
	if err := d.Run(context.Background(), t.TempDir(), []string{"metadata", "bench", "update", "deps", "check"}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if !reflect.DeepEqual(seen, StepNames()) {
		t.Errorf("steps = %v, want %v", seen, StepNames())
	}
	wantCalls := [][]string{
		{"cargo", "check", "--workspace"},
		{"cargo", "update"},
		{"cargo", "bench"},
		{"cargo", "metadata", "--format-version=1"},
	}
	if !reflect.DeepEqual(r.calls, wantCalls) {
		t.Errorf("calls = %v, want %v", r.calls, wantCalls)
	}
	for _, want := range []string{
		"`cargo check` passed.",
		"Dependency versions updated.",
		"Benchmarking completed.",
		`Dependency Graph: {"packages":[]}`,
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestDriver_failFast(t *testing.T) {
	r := &stubRunner{results: map[string]Result{
		"check": {ExitCode: 101, Stderr: "error[E0432]: unresolved import"},
	}}
	d, _ := newTestDriver(r)

	err := d.Run(context.Background(), t.TempDir(), StepNames())
	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("error = %v, want *StepError", err)
	}
	if stepErr.Step != StepCheck || stepErr.ExitCode != 101 {
		t.Errorf("StepError = %+v", stepErr)
	}
	if !strings.Contains(err.Error(), "error[E0432]: unresolved import") {
		t.Errorf("error should carry stderr: %v", err)
	}
	if len(r.calls) != 1 {
		t.Errorf("expected no steps after the failing one, got calls %v", r.calls)
	}
}

func TestDriver_runnerError(t *testing.T) {
	boom := errors.New("executable file not found")
	d, _ := newTestDriver(&stubRunner{err: boom})

	err := d.Run(context.Background(), t.TempDir(), []string{StepCheck})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapping %v", err, boom)
	}
}

func TestDriver_unknownStep(t *testing.T) {
	d, _ := newTestDriver(&stubRunner{})
	if err := d.Run(context.Background(), t.TempDir(), []string{"publish"}); err == nil {
		t.Fatal("expected error for unknown step")
	}
	if err := ValidateSteps([]string{" Check ", "bench"}); err != nil {
		t.Errorf("ValidateSteps() error: %v", err)
	}
}

func TestDriver_graphOut(t *testing.T) {
	r := &stubRunner{results: map[string]Result{"metadata": {Stdout: `{"version":1}`}}}
	d, _ := newTestDriver(r)
	d.GraphOut = filepath.Join(t.TempDir(), "graph.json")

	if err := d.Run(context.Background(), t.TempDir(), []string{StepMetadata}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(d.GraphOut) //nolint:gosec // test file
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"version":1}` {
		t.Errorf("graph = %q", data)
	}
}

func TestDriver_fakeCargoBench(t *testing.T) {
	bin, logPath := testutil.FakeCargo(t, testutil.FakeCargoOpts{FailOn: "bench", Stderr: "bench exploded"})
	var out bytes.Buffer
	d := NewDriver(bin, &out)

	err := d.Run(context.Background(), t.TempDir(), StepNames())
	var stepErr *StepError
	if !errors.As(err, &stepErr) || stepErr.Step != StepBench {
		t.Fatalf("error = %v, want bench StepError", err)
	}
	if !strings.Contains(stepErr.Stderr, "bench exploded") {
		t.Errorf("stderr = %q", stepErr.Stderr)
	}

	got := testutil.Invocations(t, logPath)
	want := []string{"check --workspace", "update", "bench"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("invocations = %v, want %v", got, want)
	}
}

func TestVersion(t *testing.T) {
	bin, _ := testutil.FakeCargo(t, testutil.FakeCargoOpts{})
	v, err := Version(context.Background(), ExecRunner{}, bin)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(v, "cargo ") {
		t.Errorf("Version() = %q", v)
	}
}
