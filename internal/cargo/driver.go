package cargo

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/CyberForgeX/crust-trust/internal/ui"
)

// StepError reports a fatal toolchain step.
type StepError struct {
	Step     string
	ExitCode int
	Stderr   string
	Err      error // set when the command could not be run at all

	prefix string
}

func (e *StepError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.prefix, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.prefix, e.Stderr)
}

func (e *StepError) Unwrap() error { return e.Err }

// Driver runs toolchain steps against a workspace root.
type Driver struct {
	Runner Runner
	Binary string
	Out    io.Writer

	// GraphOut, if set, receives the raw metadata JSON in addition to Out.
	GraphOut string

	// OnStep is called after every step with its outcome.
	OnStep func(name string, err error)
}

// NewDriver returns a Driver using os/exec and the given cargo binary.
func NewDriver(binary string, out io.Writer) *Driver {
	return &Driver{Runner: ExecRunner{}, Binary: binary, Out: out}
}

// Run executes the named steps in their fixed order. The first external
// step that exits non-zero stops the run and is returned as a *StepError.
// The deps step only reads local files; its errors are reported but not fatal.
func (d *Driver) Run(ctx context.Context, dir string, names []string) error {
	steps, err := selectSteps(names)
	if err != nil {
		return err
	}
	for _, s := range steps {
		if s.intro != "" {
			_, _ = fmt.Fprintln(d.Out, s.intro)
		}

		if s.args == nil {
			err := d.runDeps(dir)
			if err != nil {
				ui.Fail(d.Out, "Dependency report skipped: %v", err)
			} else {
				ui.Pass(d.Out, "%s", s.passed)
			}
			d.report(s.name, err)
			continue
		}

		stdout, err := d.runExternal(ctx, dir, s)
		d.report(s.name, err)
		if err != nil {
			return err
		}

		if s.name == StepMetadata {
			if err := d.writeGraph(stdout); err != nil {
				return err
			}
		}
		ui.Pass(d.Out, "%s", s.passed)
	}
	return nil
}

func (d *Driver) runExternal(ctx context.Context, dir string, s step) (string, error) {
	res, err := d.Runner.Run(ctx, dir, d.Binary, s.args...)
	if err != nil {
		return "", &StepError{Step: s.name, ExitCode: -1, Err: err, prefix: s.failure}
	}
	if res.ExitCode != 0 {
		return "", &StepError{Step: s.name, ExitCode: res.ExitCode, Stderr: res.Stderr, prefix: s.failure}
	}
	return res.Stdout, nil
}

func (d *Driver) runDeps(dir string) error {
	shared, err := SharedDependencies(dir)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(d.Out, "Shared dependencies: [%s]\n", strings.Join(DependencyNames(shared), ", "))
	return nil
}

// writeGraph prints the metadata verbatim and copies it to GraphOut if set.
func (d *Driver) writeGraph(metadata string) error {
	_, _ = fmt.Fprintf(d.Out, "Dependency Graph: %s\n", metadata)
	if d.GraphOut == "" {
		return nil
	}
	if err := os.WriteFile(d.GraphOut, []byte(metadata), 0644); err != nil { //nolint:gosec // graph output needs to be readable
		return fmt.Errorf("writing dependency graph: %w", err)
	}
	return nil
}

func (d *Driver) report(name string, err error) {
	if d.OnStep != nil {
		d.OnStep(name, err)
	}
}

// Version returns the output of `<binary> --version`.
func Version(ctx context.Context, r Runner, binary string) (string, error) {
	res, err := r.Run(ctx, ".", binary, "--version")
	if err != nil {
		return "", fmt.Errorf("%s --version: %w", binary, err)
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("%s --version exited %d: %s", binary, res.ExitCode, strings.TrimSpace(res.Stderr))
	}
	return strings.TrimSpace(res.Stdout), nil
}
