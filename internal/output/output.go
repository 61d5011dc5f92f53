// Package output writes results to stdout and diagnostics to stderr.
package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Writer handles CLI output. Structured results and usage text go to out;
// diagnostics go to err.
type Writer struct {
	out     io.Writer
	err     io.Writer
	color   bool
	quiet   bool
	verbose bool
}

// New creates a Writer on the process stdout and stderr.
func New() *Writer {
	return &Writer{
		out:   os.Stdout,
		err:   os.Stderr,
		color: isTerminal(os.Stderr),
	}
}

// NewWithWriters creates a Writer with custom io.Writers (for testing).
func NewWithWriters(out, err io.Writer, color bool) *Writer {
	return &Writer{
		out:   out,
		err:   err,
		color: color,
	}
}

// SetQuiet suppresses per-file diagnostics.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// SetVerbose enables debug lines on stderr.
func (w *Writer) SetVerbose(verbose bool) {
	w.verbose = verbose
}

// Out returns the result stream.
func (w *Writer) Out() io.Writer {
	return w.out
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Errorln writes a line to stderr.
func (w *Writer) Errorln(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format+"\n", args...)
}

// FileError reports a log that could not be processed. Skipped in quiet mode.
func (w *Writer) FileError(err error) {
	if w.quiet {
		return
	}
	if w.color {
		w.Errorln("%s%v%s", red, err, reset)
	} else {
		w.Errorln("%v", err)
	}
}

// Debug prints a trace line when verbose mode is on.
func (w *Writer) Debug(format string, args ...interface{}) {
	if !w.verbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%sdebug: %s%s", dim, msg, reset)
	} else {
		w.Errorln("debug: %s", msg)
	}
}

// ErrorPrefix prints an error message with the program prefix to stderr.
func (w *Writer) ErrorPrefix(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%sgnu-json-result:%s %s", red, reset, msg)
	} else {
		w.Errorln("gnu-json-result: %s", msg)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)
