package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\033[0m"
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiCyan  = "\033[36m"
)

// Console writes user-facing scan output. Whether color is used is decided
// once at construction; there is no process-wide color flag.
type Console struct {
	w     io.Writer
	color bool
}

// NewConsole wraps w. Pass color=false for plain output.
func NewConsole(w io.Writer, color bool) *Console {
	return &Console{w: w, color: color}
}

// ColorSupported reports whether w is a terminal capable of ANSI colors.
func ColorSupported(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *Console) paint(text, color string) string {
	if !c.color {
		return text
	}
	return color + text + ansiReset
}

// Printf writes plain text.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.w, format, args...)
}

// Headerf writes a cyan section header.
func (c *Console) Headerf(format string, args ...any) {
	fmt.Fprintln(c.w, c.paint(fmt.Sprintf(format, args...), ansiCyan))
}

// Successf writes a green status line.
func (c *Console) Successf(format string, args ...any) {
	fmt.Fprintln(c.w, c.paint(fmt.Sprintf(format, args...), ansiGreen))
}

// Errorf writes a red error line.
func (c *Console) Errorf(format string, args ...any) {
	fmt.Fprintln(c.w, c.paint(fmt.Sprintf(format, args...), ansiRed))
}

// OpenPort writes the live notification for a newly discovered open port.
func (c *Console) OpenPort(port int) {
	fmt.Fprintln(c.w, c.paint(fmt.Sprintf("[OPEN] Port %d", port), ansiGreen))
}
