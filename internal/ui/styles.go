// Package ui provides styled console output for progress messages, warnings,
// and the end-of-run summary.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle    = lipgloss.NewStyle()
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// Printer writes styled lines to the configured streams. Progress and summary
// lines go to out; warnings go to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
}

// NewPrinter creates a printer on the given streams
func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{out: out, errOut: errOut}
}

// NewConsolePrinter creates a printer on stdout/stderr
func NewConsolePrinter() *Printer {
	return NewPrinter(os.Stdout, os.Stderr)
}

// Infof prints a plain progress line
func (p *Printer) Infof(format string, args ...any) {
	fmt.Fprintln(p.out, infoStyle.Render(fmt.Sprintf(format, args...)))
}

// Noticef prints a dimmed, non-essential line
func (p *Printer) Noticef(format string, args ...any) {
	fmt.Fprintln(p.out, noticeStyle.Render(fmt.Sprintf(format, args...)))
}

// Warnf prints a warning line to the error stream
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintln(p.errOut, warnStyle.Render(fmt.Sprintf(format, args...)))
}

// Successf prints a highlighted completion line
func (p *Printer) Successf(format string, args ...any) {
	fmt.Fprintln(p.out, successStyle.Render(fmt.Sprintf(format, args...)))
}
