// Package mainerror prints entry-point failures as readable messages.
//
// A program's run function returns an error; main hands it to Exit (or wraps
// the function with Main / Run). The failure is written to stderr as
//
//	Error: <message>
//	caused by: <cause>
//	caused by: <root cause>
//
// instead of whatever %#v or a struct dump would produce.
//
// Key characteristics:
//   - A single concrete type Error that boxes any error value
//   - Generic conversion via From, plus FromText for plain strings
//   - Cause chain followed through Unwrap (and Cause, for pkg/errors values);
//     a nested Error is transparent and never adds a line of its own
//   - Messages rendered verbatim by default; WithCompactMessages optionally
//     de-duplicates Go-style "outer: inner" messages
//   - fmt (%+v, %#v) and log/slog integration
//
// The "Error: " prefix belongs to the reporting helpers (Fprint, Exit); the
// rendering of Error itself never includes it.
package mainerror
