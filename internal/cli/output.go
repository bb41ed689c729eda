package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI color codes
const (
	colorReset   = "\033[0m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorGray    = "\033[90m"
)

// printer formats user-facing output.
type printer struct {
	out   io.Writer
	quiet bool
	color bool
}

// newPrinter builds a printer. Color is only used when requested and out is a terminal.
func newPrinter(out io.Writer, quiet, color bool) *printer {
	return &printer{
		out:   out,
		quiet: quiet,
		color: color && isTerminal(out),
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *printer) mark(symbol, color, msg string) {
	if p.quiet {
		return
	}
	if p.color {
		fmt.Fprintf(p.out, "%s%s%s %s\n", color, symbol, colorReset, msg)
	} else {
		fmt.Fprintf(p.out, "%s %s\n", symbol, msg)
	}
}

// info prints an informational message
func (p *printer) info(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, msg)
}

// success prints a success message
func (p *printer) success(msg string) {
	p.mark("✓", colorGreen, msg)
}

// warning prints a warning message
func (p *printer) warning(msg string) {
	p.mark("⚠", colorYellow, msg)
}

// progress prints a progress indicator
func (p *printer) progress(msg string) {
	p.mark("→", colorBlue, msg)
}

// header prints a section header
func (p *printer) header(title string) {
	if p.quiet {
		return
	}
	if p.color {
		fmt.Fprintf(p.out, "\n%s=== %s ===%s\n", colorMagenta, title, colorReset)
	} else {
		fmt.Fprintf(p.out, "\n=== %s ===\n", title)
	}
}

// dim renders s in gray when color is on.
func (p *printer) dim(s string) string {
	if !p.color {
		return s
	}
	return colorGray + s + colorReset
}
