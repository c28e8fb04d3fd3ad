package logging

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FormatJSON selects the production JSON encoder.
	FormatJSON = "json"
	// FormatConsole selects the human-readable console encoder.
	FormatConsole = "console"
)

// ErrUnknownLogFormat is returned by ForFormat for unsupported encodings.
var ErrUnknownLogFormat = errors.New("log format must be console or json")

// New creates a production-ready structured logger configured for JSON output.
func New() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.StacktraceKey = "stacktrace"
	cfg.DisableStacktrace = false

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// NewConsole creates a console-encoded logger writing error entries to ws.
// Unlike New it cannot fail.
func NewConsole(ws zapcore.WriteSyncer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(ws), zapcore.ErrorLevel)
	return zap.New(core)
}

// ForFormat builds the logger for a configured format name.
func ForFormat(format string) (*zap.Logger, error) {
	switch format {
	case FormatJSON:
		return New()
	case FormatConsole, "":
		return NewConsole(os.Stderr), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
}
