package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/CyberForgeX/crust-trust/internal/testutil"
)

func TestRunDoctor_ok(t *testing.T) {
	bin, _ := testutil.FakeCargo(t, testutil.FakeCargoOpts{})

	out, _, err := execute(t, "--cargo", bin, "doctor")
	if err != nil {
		t.Fatalf("doctor failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "cargo 1.80.0 (fake)") || !strings.Contains(out, "All checks passed.") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRunDoctor_missingCargo(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-cargo")

	out, _, err := execute(t, "--cargo", missing, "doctor")
	if err == nil {
		t.Fatal("expected doctor to fail without cargo")
	}
	if !strings.Contains(out, "NOT FOUND") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
