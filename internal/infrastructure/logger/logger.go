package logger

import (
	"go.uber.org/zap"
)

// Logger wraps a sugared zap logger behind the message-plus-key/values
// call style used across the service.
type Logger struct {
	sugar *zap.SugaredLogger
}

func NewLogger() *Logger {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true

	return &Logger{sugar: zap.Must(cfg.Build(zap.AddCallerSkip(1))).Sugar()}
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.sugar.Infow(msg, args...)
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.sugar.Warnw(msg, args...)
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.sugar.Errorw(msg, args...)
}

func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}
