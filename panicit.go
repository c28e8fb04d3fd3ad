// Package panicit reports an unrecoverable condition and stops execution in
// one call. By default it logs the message to stderr, exits the process with
// status 1 and, should the exit be intercepted, panics with a *Signal so the
// caller never continues.
//
// Process-wide defaults can be changed with SetDefaults; options passed to
// Panic always take precedence.
package panicit

import (
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/eugenenazirov/panicit/internal/host"
	"github.com/eugenenazirov/panicit/internal/logging"
	"github.com/eugenenazirov/panicit/internal/storage"
	"github.com/eugenenazirov/panicit/internal/terminator"
)

type (
	// Option configures a single Panic call.
	Option = terminator.Option
	// Signal is the value raised by every Panic call.
	Signal = terminator.Signal
	// Defaults is the process-wide termination policy.
	Defaults = storage.Defaults
	// Partial is an update to Defaults; nil fields are left unchanged.
	Partial = storage.Partial
)

var (
	store = storage.NewMemoryStore()

	mu  sync.RWMutex
	std = terminator.New(store, logging.NewSink(logging.NewConsole(os.Stderr)), host.Process{})
)

// Panic logs message, exits the process and raises a *Signal, subject to the
// defaults and opts. It never returns.
func Panic(message any, opts ...Option) {
	mu.RLock()
	t := std
	mu.RUnlock()

	t.Panic(message, opts...)
}

// SetDefaults changes the defaults used by later Panic calls. Invalid exit
// codes reset the default to 1.
func SetDefaults(p Partial) {
	store.SetDefaults(p)
}

// GetDefaults returns the current defaults.
func GetDefaults() Defaults {
	return store.GetDefaults()
}

// SetLogger routes Panic output to logger. A nil logger discards it.
func SetLogger(logger *zap.Logger) {
	t := terminator.New(store, logging.NewSink(logger), host.Process{})

	mu.Lock()
	std = t
	mu.Unlock()
}

// Bool returns a pointer to v for use in a Partial.
func Bool(v bool) *bool {
	return storage.Bool(v)
}

// WithCause attaches the underlying reason, logged under a "[Cause]" entry.
func WithCause(cause any) Option { return terminator.WithCause(cause) }

// WithSilent suppresses or forces logging for this call.
func WithSilent(silent bool) Option { return terminator.WithSilent(silent) }

// WithExit controls whether this call exits the process.
func WithExit(exit bool) Option { return terminator.WithExit(exit) }

// WithShouldExit is consulted only when WithExit is not given.
//
// Deprecated: use WithExit.
func WithShouldExit(exit bool) Option { return terminator.WithShouldExit(exit) }

// WithExitCode sets the exit status for this call.
func WithExitCode(code int) Option { return terminator.WithExitCode(code) }

// Catch runs fn and returns the Signal raised by a Panic inside it, or nil.
// Other panics propagate.
func Catch(fn func()) *Signal {
	return terminator.Catch(fn)
}
