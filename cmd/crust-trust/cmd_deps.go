package main

import (
	"encoding/json"
	"path/filepath"

	"github.com/CyberForgeX/crust-trust/internal/cargo"
	"github.com/CyberForgeX/crust-trust/internal/ui"
	"github.com/CyberForgeX/crust-trust/internal/workspace"
	"github.com/spf13/cobra"
)

func newDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps <project>",
		Short: "List dependencies declared across the workspace's crates",
		Args:  cobra.ExactArgs(1),
		RunE:  runDeps,
	}
	cmd.Flags().Bool("shared", false, "Only show dependencies used by more than one crate")
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type depUsage struct {
	Name   string   `json:"name"`
	Crates []string `json:"crates"`
}

func runDeps(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")
	sharedOnly, _ := cmd.Flags().GetBool("shared")
	asJSON, _ := cmd.Flags().GetBool("json")

	ws, err := workspace.Load(filepath.Join(root, args[0]))
	if err != nil {
		return err
	}
	shared, err := cargo.SharedDependencies(ws.Root)
	if err != nil {
		return err
	}

	usages := make([]depUsage, 0, len(shared))
	for _, name := range cargo.DependencyNames(shared) {
		crates := shared[name]
		if sharedOnly && len(crates) < 2 {
			continue
		}
		usages = append(usages, depUsage{Name: name, Crates: crates})
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(usages)
	}

	tbl := ui.NewTable(out, "DEPENDENCY", "USED BY", "CRATES")
	for _, u := range usages {
		tbl.Row(u.Name, len(u.Crates), u.Crates)
	}
	return tbl.Flush()
}
