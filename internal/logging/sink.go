package logging

import "go.uber.org/zap"

// Sink writes terminator output to a zap logger. Entries are logged at
// error level with the tag as the entry message.
type Sink struct {
	logger *zap.Logger
}

// NewSink wraps logger. A nil logger discards everything.
func NewSink(logger *zap.Logger) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{logger: logger}
}

// LogLine emits a single entry carrying message.
func (s *Sink) LogLine(tag string, message any) {
	s.logger.Error(tag, zap.Any("message", message))
}

// LogGroup emits one entry whose nested value sits under a "group"
// namespace below message.
func (s *Sink) LogGroup(tag string, message any, nestedTag string, nested any) {
	s.logger.Error(tag,
		zap.Any("message", message),
		zap.Namespace("group"),
		zap.Any(nestedTag, nested),
	)
}

// Sync flushes buffered entries.
func (s *Sink) Sync() error {
	return s.logger.Sync()
}
