package main

import (
	"bytes"
	"testing"
)

// execute runs the root command with args and returns stdout, stderr and the error.
// HOME is pointed at an empty dir so no user config file is picked up.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CRUST_TRUST_CONFIG", "")

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
