package application

import (
	"errors"

	"go.uber.org/zap"

	"github.com/eugenenazirov/panicit/internal/config"
	"github.com/eugenenazirov/panicit/internal/host"
	"github.com/eugenenazirov/panicit/internal/logging"
	"github.com/eugenenazirov/panicit/internal/storage"
	"github.com/eugenenazirov/panicit/internal/terminator"
)

// ErrNilLogger is returned by New when no logger is supplied.
var ErrNilLogger = errors.New("logger is required")

// App encapsulates the defaults store and the terminator built on it.
type App struct {
	store      storage.Store
	sink       *logging.Sink
	terminator *terminator.Terminator
	logger     *zap.Logger
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	return NewWithHost(cfg, logger, host.Process{})
}

// NewWithHost is New with an explicit termination host.
func NewWithHost(cfg config.Config, logger *zap.Logger, h host.Host) (*App, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}

	store := storage.NewMemoryStore()
	store.SetDefaults(cfg.Defaults)

	sink := logging.NewSink(logger)

	return &App{
		store:      store,
		sink:       sink,
		terminator: terminator.New(store, sink, h),
		logger:     logger,
	}, nil
}

// Defaults returns the resolved process-wide defaults.
func (a *App) Defaults() storage.Defaults {
	return a.store.GetDefaults()
}

// Terminator returns the terminator bound to the application's store.
func (a *App) Terminator() *terminator.Terminator {
	return a.terminator
}
