package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{" DEBUG ", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNamedKeyValues(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := fromZap(zap.New(core)).Named("session").Named("saved")

	log.Debug("dropped")
	log.Info("saved toggled", "job_id", "42", "saved", true)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.LoggerName != "session.saved" {
		t.Errorf("LoggerName = %q", e.LoggerName)
	}
	fields := e.ContextMap()
	if fields["job_id"] != "42" || fields["saved"] != true {
		t.Errorf("fields = %v", fields)
	}
}

func TestNewWithConsole(t *testing.T) {
	log := New("debug", Console())
	log.Debug("console logger works")
}
