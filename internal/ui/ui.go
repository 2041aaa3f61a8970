package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	symCross = "✖"
)

type fdWriter interface {
	Fd() uintptr
}

func isTTY(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// render styles s only when w is a terminal.
func render(w io.Writer, style lipgloss.Style, s string) string {
	if isTTY(w) {
		return style.Render(s)
	}
	return s
}

// Fail writes a diagnostic line. Callers pass stderr; stdout is reserved for the round.
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, render(w, errorStyle, symCross+" "+msg)) }
