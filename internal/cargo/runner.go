package cargo

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Result holds the captured output of one command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner runs external commands.
// Run returns a Result with ExitCode set whenever the process ran, even if it
// exited non-zero; the error is reserved for failures to run it at all
// (binary not found, context canceled).
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (Result, error)
}

// ExecRunner is the os/exec implementation of Runner.
type ExecRunner struct{}

// Run executes name with args in dir and captures stdout and stderr.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // binary comes from config, args are fixed
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, err
	}
	return res, nil
}

// IsInstalled returns true if binary is available on the system PATH.
func IsInstalled(binary string) (string, bool) {
	p, err := exec.LookPath(binary)
	return p, err == nil
}
