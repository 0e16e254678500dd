package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/CyberForgeX/crust-trust/internal/cargo"
	"github.com/CyberForgeX/crust-trust/internal/config"
	"github.com/CyberForgeX/crust-trust/internal/crate"
	"github.com/CyberForgeX/crust-trust/internal/record"
	"github.com/CyberForgeX/crust-trust/internal/scaffold"
	"github.com/CyberForgeX/crust-trust/internal/ui"
	"github.com/CyberForgeX/crust-trust/internal/workspace"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func runCreate(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")
	noToolchain, _ := cmd.Flags().GetBool("no-toolchain")
	interactive, _ := cmd.Flags().GetBool("interactive")

	if len(args) == 1 && interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive mode requires a TTY")
		}
		specs, err := promptCrateSpecs(args[0])
		if err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
		args = append(args, specs...)
	}
	if len(args) < 2 {
		return errUsage
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	name := args[0]
	if err := validateWorkspaceName(name); err != nil {
		return err
	}
	wsDir := filepath.Join(root, name)
	errOut := cmd.ErrOrStderr()
	out := cmd.OutOrStdout()

	reg, skipped := crate.Build(args[1:])
	for _, tok := range skipped {
		_, _ = fmt.Fprintf(errOut, "Warning: ignoring crate spec %q (expected name:dep1,dep2,...)\n", tok)
	}

	snap, err := workspace.TakeSnapshot(wsDir, reg.Names())
	if err != nil {
		return err
	}
	ws, created, err := workspace.Init(wsDir)
	if err != nil {
		return err
	}
	if created {
		_, _ = fmt.Fprintf(out, "Created new workspace at '%s'.\n", wsDir)
	}

	progress := ui.NewProgress(errOut, reg.Len())
	report, runErr := scaffold.Run(ws, reg, scaffold.Options{Jobs: cfg.Build.Jobs, Progress: progress})

	rec := loadRecord(cmd, ws, name)
	for _, res := range report.Results {
		c := &record.Crate{
			Dependencies: res.Spec.Dependencies,
			Created:      res.Created,
			Registered:   res.Registered,
		}
		if res.Err != nil {
			c.Error = res.Err.Error()
		}
		rec.Crates[res.Spec.Name] = c
	}

	if runErr != nil {
		rec.State = record.StateFailed
		saveRecord(cmd, ws, rec)
		return runErr
	}
	saveRecord(cmd, ws, rec)

	if noToolchain {
		_, _ = fmt.Fprintf(out, "Workspace '%s' scaffolded (cargo steps skipped).\n", name)
		return nil
	}

	if err := runToolchain(cmd, cfg, ws, rec); err != nil {
		rec.State = record.StateFailed
		if cfg.Toolchain.Rollback {
			rollback(cmd, snap, report, rec)
		}
		saveRecord(cmd, ws, rec)
		return err
	}

	rec.State = record.StateComplete
	saveRecord(cmd, ws, rec)
	_, _ = fmt.Fprintf(out, "Workspace '%s' created successfully!\n", name)
	return nil
}

func runToolchain(cmd *cobra.Command, cfg config.Config, ws *workspace.Context, rec *record.File) error {
	driver := cargo.NewDriver(cfg.Cargo.Binary, cmd.OutOrStdout())
	driver.GraphOut = cfg.Toolchain.GraphOut
	driver.OnStep = rec.AddStep
	return driver.Run(cmd.Context(), ws.Root, cfg.Toolchain.Steps)
}

func rollback(cmd *cobra.Command, snap *workspace.Snapshot, report scaffold.Report, rec *record.File) {
	errOut := cmd.ErrOrStderr()
	removed, err := snap.Restore(report.Created())
	for _, n := range removed {
		delete(rec.Crates, n)
	}
	if err != nil {
		_, _ = fmt.Fprintf(errOut, "Warning: rollback incomplete: %v\n", err)
		return
	}
	rec.State = record.StateRolledBack
	_, _ = fmt.Fprintf(errOut, "Rolled back %d crate(s): %s\n", len(removed), strings.Join(removed, ", "))
}

// loadRecord returns the workspace's build record for this run. An unreadable
// record is replaced with a fresh one.
func loadRecord(cmd *cobra.Command, ws *workspace.Context, name string) *record.File {
	now := time.Now().Format(time.RFC3339)
	rec, err := record.LoadOrNew(ws.RecordPath, name, now, version)
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: replacing unreadable build record: %v\n", err)
		rec = record.New(name, now, version)
	}
	return rec
}

// saveRecord writes the build record. Failing to write it is reported but
// does not fail the run.
func saveRecord(cmd *cobra.Command, ws *workspace.Context, rec *record.File) {
	if err := record.Save(ws.RecordPath, rec); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
}

func validateWorkspaceName(name string) error {
	if name == "" || name == "." || name == ".." || filepath.IsAbs(name) || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid workspace name %q: must be a simple directory name under --root", name)
	}
	return nil
}
