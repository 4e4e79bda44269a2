package mainerror

// SetProcess replaces the process used by Exit until the returned func is called.
func SetProcess(p Process) (restore func()) {
	prev := process
	process = p

	return func() { process = prev }
}
