// Package terminator reports an unrecoverable condition and halts the
// calling goroutine, optionally ending the process first.
package terminator

import (
	"github.com/eugenenazirov/panicit/internal/host"
	"github.com/eugenenazirov/panicit/internal/storage"
)

const (
	// Tag marks every entry logged by Panic.
	Tag = "[panic]"
	// CauseTag marks the nested cause entry.
	CauseTag = "[Cause]"
)

// Sink receives the log output of a Panic call.
type Sink interface {
	LogLine(tag string, message any)
	LogGroup(tag string, message any, nestedTag string, nested any)
}

type syncer interface {
	Sync() error
}

// Terminator resolves call-site options against stored defaults, logs,
// requests process termination and raises a Signal.
type Terminator struct {
	store storage.Store
	sink  Sink
	host  host.Host
}

// New creates a Terminator. A nil sink discards output and a nil host
// disables termination.
func New(store storage.Store, sink Sink, h host.Host) *Terminator {
	if sink == nil {
		sink = nopSink{}
	}
	return &Terminator{
		store: store,
		sink:  sink,
		host:  h,
	}
}

// Panic never returns. It raises a *Signal carrying message and the cause
// given with WithCause, after logging and any termination request.
func (t *Terminator) Panic(message any, opts ...Option) {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := resolve(t.defaults(), o)

	if !r.silent {
		if o.cause == nil {
			t.sink.LogLine(Tag, message)
		} else {
			t.sink.LogGroup(Tag, message, CauseTag, o.cause)
		}
	}

	if r.exit && t.host != nil && t.host.CanExit() {
		if s, ok := t.sink.(syncer); ok {
			_ = s.Sync()
		}
		t.host.Exit(r.exitCode)
	}

	panic(&Signal{Message: message, Cause: o.cause})
}

func (t *Terminator) defaults() storage.Defaults {
	if t.store == nil {
		return storage.InitialDefaults()
	}
	return t.store.GetDefaults()
}

type resolved struct {
	silent   bool
	exit     bool
	exitCode int
}

func resolve(d storage.Defaults, o callOptions) resolved {
	r := resolved{
		silent:   d.Silent,
		exit:     d.Exit,
		exitCode: d.ExitCode,
	}
	if o.silent != nil {
		r.silent = *o.silent
	}
	switch {
	case o.exit != nil:
		r.exit = *o.exit
	case o.shouldExit != nil:
		r.exit = *o.shouldExit
	}
	if o.exitCode != nil {
		r.exitCode = *o.exitCode
	}
	return r
}

type nopSink struct{}

func (nopSink) LogLine(string, any)               {}
func (nopSink) LogGroup(string, any, string, any) {}
