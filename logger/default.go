package logger

import "sync/atomic"

var defLogger atomic.Value

func init() {
	SetLogger(NewSlog(InfoLevel, false))
}

// SetLogger replaces the package default logger returned by GetLogger.
func SetLogger(l Logger) {
	if l == nil {
		return
	}
	defLogger.Store(&l)
}

// GetLogger returns the package default logger.
func GetLogger() Logger {
	return *defLogger.Load().(*Logger) //nolint:forcetypeassert
}

// Debug logs a message at DebugLevel with the default logger.
func Debug(msg string, keysAndValues ...any) {
	GetLogger().Debug(msg, keysAndValues...)
}

// Info logs a message at InfoLevel with the default logger.
func Info(msg string, keysAndValues ...any) {
	GetLogger().Info(msg, keysAndValues...)
}

// Warn logs a message at WarnLevel with the default logger.
func Warn(msg string, keysAndValues ...any) {
	GetLogger().Warn(msg, keysAndValues...)
}

// Error logs a message at ErrorLevel with the default logger.
func Error(msg string, keysAndValues ...any) {
	GetLogger().Error(msg, keysAndValues...)
}

// Fatal logs a message at FatalLevel with the default logger, then calls os.Exit(1).
func Fatal(msg string, keysAndValues ...any) {
	GetLogger().Fatal(msg, keysAndValues...)
}

// SetLevel sets the minimum enabled level of the default logger.
func SetLevel(level Level) {
	GetLogger().SetLevel(level)
}

// With creates a child logger of the default logger with the given key-values.
func With(keyValues ...any) Logger {
	return GetLogger().With(keyValues...)
}
