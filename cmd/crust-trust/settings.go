package main

import (
	"fmt"

	"github.com/CyberForgeX/crust-trust/internal/cargo"
	"github.com/CyberForgeX/crust-trust/internal/config"
	"github.com/spf13/cobra"
)

// loadSettings reads config and applies any flags set on the command line.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("cargo") {
		cfg.Cargo.Binary, _ = flags.GetString("cargo")
	}
	if flags.Changed("jobs") {
		cfg.Build.Jobs, _ = flags.GetInt("jobs")
	}
	if flags.Changed("steps") {
		cfg.Toolchain.Steps, _ = flags.GetStringSlice("steps")
	}
	if flags.Changed("rollback") {
		cfg.Toolchain.Rollback, _ = flags.GetBool("rollback")
	}
	if flags.Changed("graph-out") {
		cfg.Toolchain.GraphOut, _ = flags.GetString("graph-out")
	}

	if cfg.Build.Jobs < 0 {
		return config.Config{}, fmt.Errorf("--jobs must be >= 0 (got %d)", cfg.Build.Jobs)
	}
	if err := cargo.ValidateSteps(cfg.Toolchain.Steps); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
