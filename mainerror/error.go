package mainerror

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/next-trace/scg-mainerror/contract"
)

// Error boxes the error that made a program's entry point fail.
//
// Its report is the wrapped error's message followed by one "caused by:" line
// per cause in its chain. An Error is immutable once constructed.
type Error struct {
	err      error
	marker   string
	maxDepth int
	compact  bool
}

// Result is shorthand for the return type of an entry function run by Main.
type Result = *Error

// compile-time guarantees
var (
	_ contract.MainError = (*Error)(nil)
	_ fmt.Formatter      = (*Error)(nil)
	_ fmt.GoStringer     = (*Error)(nil)
	_ slog.LogValuer     = (*Error)(nil)
)

// ------ standard error interface

// Error returns the wrapped error's message, without its causes.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	return e.err.Error()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.err
}

// ------ rendering

// WriteTo writes the report to w and returns the number of bytes written.
// The first write error stops rendering and is returned.
func (e *Error) WriteTo(w io.Writer) (int64, error) {
	if e == nil {
		n, err := io.WriteString(w, "<nil>")
		return int64(n), err
	}

	var total int64

	for i, line := range e.lines() {
		if i > 0 {
			n, err := io.WriteString(w, "\n"+e.marker)
			total += int64(n)

			if err != nil {
				return total, err
			}
		}

		n, err := io.WriteString(w, line)
		total += int64(n)

		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// Report returns the message followed by its cause chain, one cause per line.
func (e *Error) Report() string {
	var b strings.Builder

	// strings.Builder never fails.
	_, _ = e.WriteTo(&b)

	return b.String()
}

// GoString makes %#v-style debug output the readable report.
func (e *Error) GoString() string { return e.Report() }

// Format implements fmt.Formatter.
//
//	%s, %v  the wrapped error's message
//	%+v     the full report
//	%#v     the full report
//	%q      the quoted message
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') || s.Flag('#') {
			_, _ = e.WriteTo(s)
			return
		}

		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(*mainerror.Error=%s)", verb, e.Error())
	}
}

// LogValue renders the error as its report in structured logs.
func (e *Error) LogValue() slog.Value { return slog.StringValue(e.Report()) }
