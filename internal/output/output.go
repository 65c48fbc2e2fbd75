package output

import (
	"fmt"
	"io"
	"os"
)

// Mode selects how terminal output is rendered.
type Mode string

const (
	ModeColor Mode = "color"
	ModePlain Mode = "plain"
)

// Writer renders user-facing status output for the importer.
type Writer interface {
	// Printf formats and writes output verbatim.
	Printf(format string, args ...interface{})
	// Header writes a section header.
	Header(text string)
	// Success writes a success message.
	Success(text string)
	// Error writes an error message.
	Error(text string)
	// Bullet writes an indented bullet with a value.
	Bullet(text string, value interface{})
	// Println writes a line break.
	Println()
}

// ColorWriter renders output with ANSI colors.
type ColorWriter struct {
	out io.Writer
}

func (w *ColorWriter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

func (w *ColorWriter) Header(text string) {
	fmt.Fprintf(w.out, "\033[1;34m%s\033[0m\n", text)
}

func (w *ColorWriter) Success(text string) {
	fmt.Fprintf(w.out, "\033[1;32m%s\033[0m\n", text)
}

func (w *ColorWriter) Error(text string) {
	fmt.Fprintf(w.out, "\033[1;31m%s\033[0m\n", text)
}

func (w *ColorWriter) Bullet(text string, value interface{}) {
	fmt.Fprintf(w.out, "  \033[36m•\033[0m %s \033[36m%v\033[0m\n", text, value)
}

func (w *ColorWriter) Println() {
	fmt.Fprintln(w.out)
}

// PlainWriter renders output without colors, for pipes and logs.
type PlainWriter struct {
	out io.Writer
}

func (w *PlainWriter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

func (w *PlainWriter) Header(text string) {
	fmt.Fprintf(w.out, "%s\n", text)
}

func (w *PlainWriter) Success(text string) {
	fmt.Fprintf(w.out, "SUCCESS: %s\n", text)
}

func (w *PlainWriter) Error(text string) {
	fmt.Fprintf(w.out, "ERROR: %s\n", text)
}

func (w *PlainWriter) Bullet(text string, value interface{}) {
	fmt.Fprintf(w.out, "  - %s %v\n", text, value)
}

func (w *PlainWriter) Println() {
	fmt.Fprintln(w.out)
}

// NewWriter creates a Writer for the given mode.
func NewWriter(mode Mode, out io.Writer) Writer {
	if mode == ModeColor {
		return &ColorWriter{out: out}
	}
	return &PlainWriter{out: out}
}

// DetectDefaultMode returns ModeColor when the writer is a terminal.
func DetectDefaultMode(f *os.File) Mode {
	if isTerminal(f) {
		return ModeColor
	}
	return ModePlain
}

// isTerminal reports whether the file is a character device.
func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
