package main

import (
	"fmt"

	"github.com/CyberForgeX/crust-trust/internal/cargo"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment for common issues",
		Args:  cobra.NoArgs,
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	ok := true

	// Check cargo.
	_, _ = fmt.Fprintf(out, "Checking %s... ", cfg.Cargo.Binary)
	path, found := cargo.IsInstalled(cfg.Cargo.Binary)
	if !found {
		_, _ = fmt.Fprintln(out, "NOT FOUND")
		_, _ = fmt.Fprintln(out, "  cargo is required. Install it from https://rustup.rs/")
		ok = false
	} else {
		_, _ = fmt.Fprintf(out, "found at %s\n", path)

		_, _ = fmt.Fprint(out, "Checking cargo version... ")
		v, verr := cargo.Version(cmd.Context(), cargo.ExecRunner{}, path)
		if verr != nil {
			_, _ = fmt.Fprintln(out, "ERROR")
			_, _ = fmt.Fprintf(out, "  %v\n", verr)
			ok = false
		} else {
			_, _ = fmt.Fprintln(out, v)
		}
	}

	_, _ = fmt.Fprintf(out, "Toolchain steps: %v\n", cfg.Toolchain.Steps)

	if ok {
		_, _ = fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	_, _ = fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}
