package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	logger, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger == nil {
		t.Fatalf("expected logger instance")
	}
	_ = logger.Sync()
}

func TestNewConsoleWritesErrorEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsole(zapcore.AddSync(&buf))

	logger.Info("ignored")
	logger.Error("[panic]", zap.String("message", "boom"))

	out := buf.String()
	if strings.Contains(out, "ignored") {
		t.Fatalf("expected info entries to be filtered, got %q", out)
	}
	if !strings.Contains(out, "[panic]") || !strings.Contains(out, "boom") {
		t.Fatalf("expected error entry in output, got %q", out)
	}
}

func TestForFormat(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatConsole, ""} {
		logger, err := ForFormat(format)
		if err != nil {
			t.Fatalf("ForFormat(%q) returned error: %v", format, err)
		}
		if logger == nil {
			t.Fatalf("ForFormat(%q) returned nil logger", format)
		}
	}

	if _, err := ForFormat("xml"); !errors.Is(err, ErrUnknownLogFormat) {
		t.Fatalf("expected ErrUnknownLogFormat, got %v", err)
	}
}

func TestSinkLogLine(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sink := NewSink(zap.New(core))

	sink.LogLine("[panic]", "boom")

	entries := logs.AllUntimed()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Message != "[panic]" || entry.Level != zapcore.ErrorLevel {
		t.Fatalf("unexpected entry %+v", entry.Entry)
	}
	if got := entry.ContextMap()["message"]; got != "boom" {
		t.Fatalf("expected message field boom, got %v", got)
	}
}

func TestSinkLogGroupNestsCause(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sink := NewSink(zap.New(core))

	sink.LogGroup("[panic]", "boom", "[Cause]", "timeout")

	entries := logs.AllUntimed()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["message"] != "boom" {
		t.Fatalf("expected message field boom, got %v", fields["message"])
	}
	group, ok := fields["group"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected nested group, got %#v", fields["group"])
	}
	if group["[Cause]"] != "timeout" {
		t.Fatalf("expected nested cause timeout, got %v", group["[Cause]"])
	}
}

func TestSinkNilLogger(t *testing.T) {
	sink := NewSink(nil)
	sink.LogLine("[panic]", "boom")
	sink.LogGroup("[panic]", "boom", "[Cause]", "timeout")
	if err := sink.Sync(); err != nil {
		t.Fatalf("unexpected sync error: %v", err)
	}
}
