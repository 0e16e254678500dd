package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().Bold(true)
	PassStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	FailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	DimStyle   = lipgloss.NewStyle().Faint(true)
)

// Pass prints a success line for a finished step.
func Pass(out io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(out, PassStyle.Render(fmt.Sprintf(format, args...)))
}

// Fail prints a failure line for a step.
func Fail(out io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(out, FailStyle.Render(fmt.Sprintf(format, args...)))
}

// Title prints a bold heading.
func Title(out io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(out, TitleStyle.Render(fmt.Sprintf(format, args...)))
}
