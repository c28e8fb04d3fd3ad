// Package host exposes the process-termination capability of the running
// environment behind a small interface so callers can be tested without a
// real process exit.
package host

import "os"

// osExit allows tests to capture exit codes without terminating the process.
var osExit = os.Exit

// Host reports whether the environment can end the process with a status and
// performs that termination.
type Host interface {
	CanExit() bool
	Exit(code int)
}

// Process is the Host backed by the running operating-system process.
type Process struct{}

// CanExit reports whether an exit status is meaningful on this platform.
func (Process) CanExit() bool {
	return exitSupported
}

// Exit terminates the process with code. It does not return unless the exit
// primitive has been replaced.
func (Process) Exit(code int) {
	osExit(code)
}
