// Package log provides the application logger using zap.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

var log *zap.SugaredLogger

// Init initializes the package-level logger
func Init(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		zapLogger, err = cfg.Build(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}

	log = zapLogger.Sugar()
	return nil
}

// SetLogger replaces the package-level logger, used by tests with zaptest/observer
func SetLogger(l *zap.Logger) {
	log = l.WithOptions(zap.AddCallerSkip(1)).Sugar()
}

// GetSugaredLogger returns the sugared logger instance
func GetSugaredLogger() *zap.SugaredLogger {
	if log == nil {
		baseLogger, _ := zap.NewProduction(zap.AddCallerSkip(1))
		log = baseLogger.Sugar()
	}
	return log
}

// Sync flushes any buffered log entries
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

func Debug(args ...any) {
	GetSugaredLogger().Debug(args...)
}

func Debugf(template string, args ...any) {
	GetSugaredLogger().Debugf(template, args...)
}

func Debugw(msg string, keysAndValues ...any) {
	GetSugaredLogger().Debugw(msg, keysAndValues...)
}

func Info(args ...any) {
	GetSugaredLogger().Info(args...)
}

func Infof(template string, args ...any) {
	GetSugaredLogger().Infof(template, args...)
}

func Infow(msg string, keysAndValues ...any) {
	GetSugaredLogger().Infow(msg, keysAndValues...)
}

func Warn(args ...any) {
	GetSugaredLogger().Warn(args...)
}

func Warnf(template string, args ...any) {
	GetSugaredLogger().Warnf(template, args...)
}

func Warnw(msg string, keysAndValues ...any) {
	GetSugaredLogger().Warnw(msg, keysAndValues...)
}

func Error(args ...any) {
	GetSugaredLogger().Error(args...)
}

func Errorf(template string, args ...any) {
	GetSugaredLogger().Errorf(template, args...)
}
