// Package logging is the key/value logger handed to every component.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	s *zap.SugaredLogger
}

// Option adjusts the zap config before the logger is built
type Option func(*zap.Config)

// Console switches to human-readable lines, for interactive tools
func Console() Option {
	return func(c *zap.Config) {
		c.Encoding = "console"
		c.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
}

// New builds a JSON logger writing to stderr. Unknown levels mean info.
func New(level string, opts ...Option) *Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	for _, opt := range opts {
		opt(&cfg)
	}

	z, err := cfg.Build()
	if err != nil {
		z = zap.NewExample()
	}
	return fromZap(z)
}

func NewNop() *Logger {
	return fromZap(zap.NewNop())
}

func fromZap(z *zap.Logger) *Logger {
	return &Logger{s: z.Sugar()}
}

// Named appends a component name, dot-separated
func (l *Logger) Named(name string) *Logger {
	return &Logger{s: l.s.Named(name)}
}

func (l *Logger) Debug(msg string, keyvals ...any) { l.s.Debugw(msg, keyvals...) }

func (l *Logger) Info(msg string, keyvals ...any) { l.s.Infow(msg, keyvals...) }

func (l *Logger) Warn(msg string, keyvals ...any) { l.s.Warnw(msg, keyvals...) }

func (l *Logger) Error(msg string, keyvals ...any) { l.s.Errorw(msg, keyvals...) }

func (l *Logger) Sync() error {
	return l.s.Sync()
}

// parseLevel maps text to a level; unknown or above-error levels mean info
func parseLevel(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl > zapcore.ErrorLevel {
		return zapcore.InfoLevel
	}
	return lvl
}
