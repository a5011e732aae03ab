// Package output renders user-facing text for the terminal: one-line
// notices where the web client would pop a toast, and tables for listings.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer writes formatted lines to the terminal. Notices go to out,
// failures to err, so scripted use can separate the streams.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// NewPrinter builds a Printer honoring the usual environment signals.
func NewPrinter() *Printer {
	return &Printer{out: os.Stdout, err: os.Stderr, useColors: resolveColors()}
}

// NewPrinterWithWriters is for tests.
func NewPrinterWithWriters(out, err io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: err, useColors: useColors}
}

func resolveColors() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}

// Out exposes the notice stream, for callers rendering tables inline.
func (p *Printer) Out() io.Writer { return p.out }

// Successf prints a confirmation line ("Application submitted!").
func (p *Printer) Successf(format string, args ...any) {
	if p.useColors {
		color.New(color.FgGreen).Fprintf(p.out, format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Noticef prints a neutral informational line.
func (p *Printer) Noticef(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Errorf prints a failure notice. Failures here are transient by design:
// the REPL stays interactive after every one of them.
func (p *Printer) Errorf(format string, args ...any) {
	if p.useColors {
		color.New(color.FgRed).Fprintf(p.err, "Error: "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.err, "Error: "+format+"\n", args...)
}

// MatchScore formats a candidate-facing match percentage, colorized by band
// when colors are on.
func (p *Printer) MatchScore(score float64) string {
	s := fmt.Sprintf("%.0f%% match", score)
	if !p.useColors {
		return s
	}
	switch {
	case score >= 75:
		return color.New(color.FgGreen).Sprint(s)
	case score >= 50:
		return color.New(color.FgYellow).Sprint(s)
	default:
		return color.New(color.FgHiBlack).Sprint(s)
	}
}
