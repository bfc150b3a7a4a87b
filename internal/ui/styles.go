// Package ui renders user-facing status lines. Output is styled with
// lipgloss only when the destination is a terminal; pipes and buffers get
// plain text.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

var (
	Green = lipgloss.Color("#58D68D")
	Amber = lipgloss.Color("#E59866")
	Pink  = lipgloss.Color("#FF6B9D")
)

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(Green)
	WarningStyle = lipgloss.NewStyle().Foreground(Amber)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Pink).Bold(true)
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

func render(w io.Writer, style lipgloss.Style, s string) string {
	if !IsTerminal(w) {
		return s
	}
	return style.Render(s)
}

// Success writes a success line.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, render(w, SuccessStyle, "✓ "+fmt.Sprintf(format, args...)))
}

// Warning writes a warning line.
func Warning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, render(w, WarningStyle, "! "+fmt.Sprintf(format, args...)))
}

// Error writes an error line prefixed with "Error:".
func Error(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, render(w, ErrorStyle, "Error: "+fmt.Sprintf(format, args...)))
}
