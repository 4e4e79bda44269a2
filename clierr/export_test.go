package clierr

import "github.com/next-trace/scg-mainerror/mainerror"

// SetProcess replaces the process used by Run until the returned func is called.
func SetProcess(p mainerror.Process) (restore func()) {
	prev := process
	process = p

	return func() { process = prev }
}
