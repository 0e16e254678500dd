package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/CyberForgeX/crust-trust/internal/record"
	"github.com/CyberForgeX/crust-trust/internal/ui"
	"github.com/CyberForgeX/crust-trust/internal/workspace"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <project>",
		Short: "Show workspace members and the last build record",
		Args:  cobra.ExactArgs(1),
		RunE:  runStatus,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type crateStatus struct {
	Name         string   `json:"name"`
	Member       bool     `json:"member"`
	Exists       bool     `json:"exists"`
	Dependencies []string `json:"dependencies,omitempty"`
	Error        string   `json:"error,omitempty"`
}

type workspaceStatus struct {
	Name   string        `json:"name"`
	State  record.State  `json:"state,omitempty"`
	Steps  []record.Step `json:"steps,omitempty"`
	Crates []crateStatus `json:"crates"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")
	asJSON, _ := cmd.Flags().GetBool("json")

	ws, err := workspace.Load(filepath.Join(root, args[0]))
	if err != nil {
		return err
	}
	st, err := collectStatus(ws, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}

	state := string(st.State)
	if state == "" {
		state = "no build record"
	}
	ui.Title(out, "Workspace: %s (%s)", st.Name, state)
	tbl := ui.NewTable(out, "CRATE", "MEMBER", "EXISTS", "DEPENDENCIES", "ERROR")
	for _, c := range st.Crates {
		tbl.Row(c.Name, c.Member, c.Exists, c.Dependencies, c.Error)
	}
	if err := tbl.Flush(); err != nil {
		return err
	}
	for _, s := range st.Steps {
		if s.OK {
			ui.Pass(out, "  %s ok", s.Name)
		} else {
			ui.Fail(out, "  %s failed", s.Name)
		}
	}
	return nil
}

// collectStatus merges the members list with the build record, if any.
// Crates appear in members order, then record-only crates in name order.
func collectStatus(ws *workspace.Context, name string) (workspaceStatus, error) {
	st := workspaceStatus{Name: name}

	members, err := ws.MemberNames()
	if err != nil {
		return st, err
	}

	var rec *record.File
	if _, statErr := os.Stat(ws.RecordPath); statErr == nil {
		rec, err = record.Load(ws.RecordPath)
		if err != nil {
			return st, err
		}
		st.State = rec.State
		st.Steps = rec.Steps
	}

	seen := make(map[string]bool)
	add := func(n string, member bool) {
		if seen[n] {
			return
		}
		seen[n] = true
		c := crateStatus{Name: n, Member: member}
		if _, err := os.Stat(ws.CrateDir(n)); err == nil {
			c.Exists = true
		}
		if rec != nil {
			if rc, ok := rec.Crates[n]; ok {
				c.Dependencies = rc.Dependencies
				c.Error = rc.Error
			}
		}
		st.Crates = append(st.Crates, c)
	}

	for _, m := range members {
		add(m, true)
	}
	if rec != nil {
		var extra []string
		for n := range rec.Crates {
			if !seen[n] {
				extra = append(extra, n)
			}
		}
		sort.Strings(extra)
		for _, n := range extra {
			add(n, false)
		}
	}
	if st.Crates == nil {
		st.Crates = []crateStatus{}
	}
	return st, nil
}
