package show

import (
	"fmt"
	"io"
	"os"
)

// Printer is the output collaborator: it accepts one formatted line per
// Show call and owns the line separator and any buffering or flushing
// policy.
type Printer interface {
	PrintLine(text string) error
}

// NewWriterPrinter wraps an io.Writer into a Printer appending "\n" to
// every line.
func NewWriterPrinter(w io.Writer) Printer {
	return writerPrinter{w: w}
}

type writerPrinter struct {
	w io.Writer
}

func (p writerPrinter) PrintLine(text string) error {
	if _, err := fmt.Fprintln(p.w, text); err != nil {
		return fmt.Errorf("write line: %w", err)
	}

	return nil
}

var printer Printer = NewWriterPrinter(os.Stdout)

// SetPrinter replaces the output collaborator. Not synchronized with
// in-flight Show calls, swap it during setup.
func SetPrinter(p Printer) {
	printer = p
}

// SetOutput points the default line printer at the given writer.
func SetOutput(w io.Writer) {
	printer = NewWriterPrinter(w)
}
