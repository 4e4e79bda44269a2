// Package clierr reports github.com/urfave/cli/v3 command failures through mainerror.
package clierr

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/next-trace/scg-mainerror/mainerror"
)

// Swapped by tests.
var process mainerror.Process

// ExitErrHandler returns a cli.ExitErrHandlerFunc that prints the error's
// report (with mainerror.Prefix) and leaves exiting to the caller.
//
// Output goes to w; when w is nil, to the command's ErrWriter, then stderr.
func ExitErrHandler(w io.Writer) cli.ExitErrHandlerFunc {
	return func(_ context.Context, cmd *cli.Command, err error) {
		_ = mainerror.Fprint(errWriter(w, cmd), err)
	}
}

// Run runs cmd with args and hands any returned error to the zero
// mainerror.Process (stderr and os.Exit), so the process exits with the error's exit code after printing its report.
// A handler is installed to keep cli from printing or exiting first; an
// ExitErrHandler already set on cmd is left alone.
func Run(ctx context.Context, cmd *cli.Command, args []string) {
	if cmd.ExitErrHandler == nil {
		cmd.ExitErrHandler = func(context.Context, *cli.Command, error) {}
	}

	process.Exit(cmd.Run(ctx, args))
}

func errWriter(w io.Writer, cmd *cli.Command) io.Writer {
	switch {
	case w != nil:
		return w
	case cmd != nil && cmd.ErrWriter != nil:
		return cmd.ErrWriter
	default:
		return os.Stderr
	}
}
