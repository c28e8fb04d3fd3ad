package terminator

// Option configures a single Panic call.
type Option func(*callOptions)

type callOptions struct {
	cause      any
	silent     *bool
	exit       *bool
	shouldExit *bool
	exitCode   *int
}

// WithCause attaches the underlying reason. A nil cause is treated as absent.
func WithCause(cause any) Option {
	return func(o *callOptions) {
		o.cause = cause
	}
}

// WithSilent controls whether the call logs anything.
func WithSilent(silent bool) Option {
	return func(o *callOptions) {
		o.silent = &silent
	}
}

// WithExit controls whether the call asks the host to terminate.
func WithExit(exit bool) Option {
	return func(o *callOptions) {
		o.exit = &exit
	}
}

// WithShouldExit is consulted only when WithExit is not given.
//
// Deprecated: use WithExit.
func WithShouldExit(exit bool) Option {
	return func(o *callOptions) {
		o.shouldExit = &exit
	}
}

// WithExitCode sets the status passed to the host on termination.
func WithExitCode(code int) Option {
	return func(o *callOptions) {
		o.exitCode = &code
	}
}
