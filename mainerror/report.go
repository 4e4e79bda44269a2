package mainerror

import (
	"errors"
	"io"
	"os"

	"github.com/next-trace/scg-mainerror/contract"
)

// Prefix starts every report written by Fprint and Exit.
const Prefix = "Error: "

// exitFailure is the status used when no error in the chain carries one.
const exitFailure = 1

// Process is where Exit reports a failure and how it terminates.
// The zero value writes to os.Stderr and calls os.Exit.
type Process struct {
	Stderr io.Writer
	OsExit func(code int)
}

// Swapped by tests.
var process Process

// Fprint writes Prefix, the report of err and a newline to w.
// A nil err writes nothing. An empty report also writes nothing, where a bare
// "Error: " line would otherwise be printed: cli.Exit("", code) uses an empty
// message to exit quietly.
func Fprint(w io.Writer, err error) error {
	e := From(err)
	if e == nil {
		return nil
	}

	report := e.Report()
	if report == "" {
		return nil
	}

	_, werr := io.WriteString(w, Prefix+report+"\n")

	return werr
}

// ExitCode returns the process status for err: 0 for nil, the code of the
// first error in the chain implementing ExitCode() int, and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var coder contract.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}

	return exitFailure
}

// Exit reports err on stderr and terminates the process with ExitCode(err).
// A nil err, including a nil *Error stored in the interface, returns without
// doing anything.
func Exit(err error) { process.Exit(err) }

// Exit reports err on p.Stderr and calls p.OsExit with ExitCode(err).
// A nil err returns without doing anything.
func (p Process) Exit(err error) {
	if From(err) == nil {
		return
	}

	w := p.Stderr
	if w == nil {
		w = os.Stderr
	}

	// Nothing useful can be done if stderr is gone.
	_ = Fprint(w, err)

	exit := p.OsExit
	if exit == nil {
		exit = os.Exit
	}

	exit(ExitCode(err))
}

// Main runs an entry function returning Result and exits on failure.
func Main(fn func() Result) {
	if res := fn(); res != nil {
		Exit(res)
	}
}

// Run runs an entry function returning a plain error and exits on failure.
func Run(fn func() error) {
	Exit(fn())
}
