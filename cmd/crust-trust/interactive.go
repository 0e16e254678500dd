package main

import (
	"fmt"
	"strings"

	"github.com/CyberForgeX/crust-trust/internal/crate"
	"github.com/CyberForgeX/crust-trust/internal/workspace"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle  = lipgloss.NewStyle().Faint(true)
	crateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// crateSpecModel collects crate spec tokens one per line. Enter on a valid
// token adds it; enter on an empty line finishes once at least one crate is in.
type crateSpecModel struct {
	workspace string
	input     textinput.Model
	tokens    []string
	specs     []crate.Spec
	errMsg    string
	done      bool
	aborted   bool
}

func newCrateSpecModel(workspaceName string) crateSpecModel {
	ti := textinput.New()
	ti.Placeholder = "core:serde,log"
	ti.Focus()
	return crateSpecModel{workspace: workspaceName, input: ti}
}

func (m crateSpecModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m crateSpecModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		}
	}
	m.errMsg = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m crateSpecModel) submit() (tea.Model, tea.Cmd) {
	tok := strings.TrimSpace(m.input.Value())
	if tok == "" {
		if len(m.tokens) == 0 {
			m.errMsg = "add at least one crate"
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}

	seen := make(map[string]bool, len(m.specs))
	for _, s := range m.specs {
		seen[s.Name] = true
	}
	if err := crateSpecValidator(seen)(tok); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	spec, _ := crate.ParseSpec(tok)
	m.tokens = append(m.tokens, tok)
	m.specs = append(m.specs, spec)
	m.input.SetValue("")
	m.errMsg = ""
	return m, nil
}

func (m crateSpecModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Crates for workspace %q", m.workspace)) + "\n")
	for _, s := range m.specs {
		deps := strings.Join(s.Dependencies, ", ")
		if deps == "" {
			deps = "no dependencies"
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", crateStyle.Render(s.Name), hintStyle.Render("("+deps+")")))
	}
	b.WriteString(m.input.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString(hintStyle.Render("enter: add crate, empty line: done, esc: cancel") + "\n")
	return b.String()
}

// crateSpecValidator accepts "name:dep1,dep2" tokens with a valid, unseen name.
func crateSpecValidator(seen map[string]bool) func(string) error {
	return func(s string) error {
		spec, ok := crate.ParseSpec(strings.TrimSpace(s))
		if !ok {
			return fmt.Errorf("expected name:dep1,dep2 (dependencies may be empty)")
		}
		if err := workspace.ValidateCrateName(spec.Name); err != nil {
			return err
		}
		if seen[spec.Name] {
			return fmt.Errorf("crate %q is already added", spec.Name)
		}
		return nil
	}
}

// promptCrateSpecs runs the crate prompt and returns the collected tokens.
func promptCrateSpecs(workspaceName string) ([]string, error) {
	result, err := tea.NewProgram(newCrateSpecModel(workspaceName)).Run()
	if err != nil {
		return nil, err
	}
	rm := result.(crateSpecModel)
	if rm.aborted {
		return nil, fmt.Errorf("user aborted")
	}
	return rm.tokens, nil
}
