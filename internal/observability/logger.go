package observability

import (
	"os"
	"strings"

	"commit-assistant/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a key/value structured logger. Output goes to stderr so stdout
// stays reserved for command results.
type Logger struct {
	s *zap.SugaredLogger
}

func NewLogger(cfg *config.Config) *Logger {

	var enc zapcore.Encoder
	if cfg.Env == "local" {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(
		enc,
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(parseLevel(cfg.LogLevel)),
	)

	return &Logger{
		s: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar(),
	}
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{s: zap.NewNop().Sugar()}
}

func parseLevel(level string) zapcore.Level {

	switch strings.ToLower(level) {
	case "debug", "trace":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// A nil *Logger is valid and drops every entry.

func (l *Logger) Debug(msg string, kv ...any) {
	if l == nil {
		return
	}
	l.s.Debugw(msg, kv...)
}

func (l *Logger) Info(msg string, kv ...any) {
	if l == nil {
		return
	}
	l.s.Infow(msg, kv...)
}

func (l *Logger) Warn(msg string, kv ...any) {
	if l == nil {
		return
	}
	l.s.Warnw(msg, kv...)
}

func (l *Logger) Error(msg string, kv ...any) {
	if l == nil {
		return
	}
	l.s.Errorw(msg, kv...)
}

func (l *Logger) Sync() {
	if l == nil {
		return
	}
	_ = l.s.Sync()
}
