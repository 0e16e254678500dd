package main

import (
	"errors"

	"github.com/spf13/cobra"
)

const usageLine = "Usage: crust-trust <project> <crates:dependencies>"

var errUsage = errors.New(usageLine)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crust-trust <project> <crate:dep1,dep2>...",
		Short: "Scaffold a Cargo workspace and validate it with cargo",
		Long: `crust-trust creates a Cargo workspace, generates one crate per
<name:dep1,dep2,...> argument, registers each crate in the workspace members
list and then runs cargo check, update, bench and metadata against it.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		RunE:          runCreate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("root", ".", "Directory in which workspaces live")
	cmd.PersistentFlags().String("config", "", "Config file (default ~/.config/crust-trust/config.toml)")
	cmd.PersistentFlags().String("cargo", "", "cargo executable (overrides config)")

	cmd.Flags().Int("jobs", 0, "Crates to create at once (0 = all in parallel)")
	cmd.Flags().StringSlice("steps", nil, "Toolchain steps to run: check, deps, update, bench, metadata")
	cmd.Flags().Bool("no-toolchain", false, "Skip all cargo steps")
	cmd.Flags().Bool("rollback", false, "Remove crates created by this run if a cargo step fails")
	cmd.Flags().String("graph-out", "", "Also write cargo metadata JSON to this file")
	cmd.Flags().BoolP("interactive", "i", false, "Prompt for crate specs when none are given")

	cmd.AddCommand(
		newStatusCmd(),
		newDepsCmd(),
		newDoctorCmd(),
	)

	return cmd
}
