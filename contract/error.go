// Package contract exposes the minimal error interfaces used by other packages.
//
// Implementations must support errors.Unwrap for proper interoperability with
// standard error helpers.
package contract

import "io"

// MainError is the stable surface of an entry-point error wrapper.
//
// Implementations must:
//   - Return the wrapped error's own message from Error() (no prefix).
//   - Render the message and its cause chain from Report() / WriteTo().
//   - Support errors.Unwrap via Unwrap() so errors.Is / errors.As see through.
//
// The interface intentionally contains only read operations; a wrapper is
// immutable once constructed.
type MainError interface {
	error
	io.WriterTo
	Report() string
	Unwrap() error
}

// Causer is implemented by errors that expose their cause through the
// pkg/errors convention instead of Unwrap.
type Causer interface {
	Cause() error
}

// ExitCoder is implemented by errors that carry a process exit status.
// github.com/urfave/cli/v3's ExitCoder satisfies it.
type ExitCoder interface {
	error
	ExitCode() int
}
