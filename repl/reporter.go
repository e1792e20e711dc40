package repl

import (
	"fmt"
	"io"

	"github.com/gookit/color"
)

const arrow = " → "

// Reporter renders everything the engine prints.
type Reporter interface {
	// Stack prints the stack display line.
	Stack(rendered string)
	// Notice prints a command result, prefixed with an arrow.
	Notice(format string, args ...interface{})
	// Printf prints a raw line fragment to standard output.
	Printf(format string, args ...interface{})
	// Error reports an unexpected failure to the error stream.
	Error(err error)
}

// PlainReporter writes uncolored text.
type PlainReporter struct {
	Out io.Writer
	Err io.Writer
}

func (r *PlainReporter) Stack(rendered string) {
	fmt.Fprintf(r.Out, "\nStack: %s\n", rendered)
}

func (r *PlainReporter) Notice(format string, args ...interface{}) {
	fmt.Fprintf(r.Out, arrow+format+"\n", args...)
}

func (r *PlainReporter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(r.Out, format, args...)
}

func (r *PlainReporter) Error(err error) {
	fmt.Fprintf(r.Err, "Error: %v\n", err)
}

// ColorReporter writes the same text as PlainReporter with terminal colors.
type ColorReporter struct {
	Out io.Writer
	Err io.Writer
}

func (r *ColorReporter) Stack(rendered string) {
	fmt.Fprintf(r.Out, "\n%s %s\n", color.Bold.Sprint("Stack:"), color.Yellow.Sprint(rendered))
}

func (r *ColorReporter) Notice(format string, args ...interface{}) {
	fmt.Fprintf(r.Out, "%s%s\n", color.Cyan.Sprint(arrow), fmt.Sprintf(format, args...))
}

func (r *ColorReporter) Printf(format string, args ...interface{}) {
	fmt.Fprint(r.Out, color.Gray.Sprintf(format, args...))
}

func (r *ColorReporter) Error(err error) {
	fmt.Fprintf(r.Err, "%s %v\n", color.Red.Sprint("Error:"), err)
}

// NewReporter picks a ColorReporter or PlainReporter.
func NewReporter(out, errOut io.Writer, useColor bool) Reporter {
	if useColor {
		return &ColorReporter{Out: out, Err: errOut}
	}
	return &PlainReporter{Out: out, Err: errOut}
}
