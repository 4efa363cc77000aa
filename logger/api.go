package logger

import (
	"fmt"
	"sync/atomic"
)

// Entry writes msg with the given type when the active profile admits it.
// The type is case-insensitive and may be abbreviated (ERR, W, DBG, ...).
// Types other than the five canonical ones are always written.
// Thread-safe for concurrent use.
func (l *Logger) Entry(t EntryType, msg string) {
	l.entry(l.caller(1), t, msg)
}

// Entryf writes a message formatted with fmt.Sprintf, like Entry.
func (l *Logger) Entryf(t EntryType, format string, v ...any) {
	l.entry(l.caller(1), t, fmt.Sprintf(format, v...))
}

// EntryKV writes msg followed by key=value pairs, like Entry.
// Keys that are not strings are skipped together with their value.
func (l *Logger) EntryKV(t EntryType, msg string, keyvals ...any) {
	l.entry(l.caller(1), t, msg+encodeFields(keyvals...))
}

// Info writes an INFO entry.
func (l *Logger) Info(msg string) { l.entry(l.caller(1), TypeInfo, msg) }

// Warn writes a WARNING entry.
func (l *Logger) Warn(msg string) { l.entry(l.caller(1), TypeWarning, msg) }

// Error writes an ERROR entry.
func (l *Logger) Error(msg string) { l.entry(l.caller(1), TypeError, msg) }

// Crit writes a CRITICAL entry.
func (l *Logger) Crit(msg string) { l.entry(l.caller(1), TypeCritical, msg) }

// Debug writes a DEBUG entry.
func (l *Logger) Debug(msg string) { l.entry(l.caller(1), TypeDebug, msg) }

func (l *Logger) Infof(format string, v ...any) {
	l.entry(l.caller(1), TypeInfo, fmt.Sprintf(format, v...))
}

func (l *Logger) Warnf(format string, v ...any) {
	l.entry(l.caller(1), TypeWarning, fmt.Sprintf(format, v...))
}

func (l *Logger) Errorf(format string, v ...any) {
	l.entry(l.caller(1), TypeError, fmt.Sprintf(format, v...))
}

func (l *Logger) Critf(format string, v ...any) {
	l.entry(l.caller(1), TypeCritical, fmt.Sprintf(format, v...))
}

func (l *Logger) Debugf(format string, v ...any) {
	l.entry(l.caller(1), TypeDebug, fmt.Sprintf(format, v...))
}

// API logs an HTTP API call with automatic type selection based on status code.
// Status codes are mapped to types: 5xx->ERROR, 4xx->WARNING, anything else->INFO.
//
// Example:
//
//	log.API(200, "api call successful")
//	log.API(404, "resource not found")
func (l *Logger) API(statusCode int, msg string) {
	l.entry(l.caller(1), statusCodeToType(statusCode), fmt.Sprintf("[%d] %s", statusCode, msg))
}

// --- Package-level logging (default logger) ---

var defaultLogger atomic.Pointer[Logger]

// Init builds a Logger from config and makes it the default used by the
// package-level functions. On error the previous default is kept.
func Init(config Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}
	defaultLogger.Store(l)
	return nil
}

// Default returns the logger installed by Init, or nil.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault installs l as the default logger. A nil l turns the
// package-level functions into no-ops.
func SetDefault(l *Logger) {
	defaultLogger.Store(l)
}

// Entry writes an entry through the default logger.
// It is a no-op before Init.
func Entry(t EntryType, msg string) {
	if l := Default(); l != nil {
		l.entry(l.caller(1), t, msg)
	}
}

// Entryf writes a formatted entry through the default logger.
func Entryf(t EntryType, format string, v ...any) {
	if l := Default(); l != nil {
		l.entry(l.caller(1), t, fmt.Sprintf(format, v...))
	}
}

// EntryKV writes msg and key=value pairs through the default logger.
func EntryKV(t EntryType, msg string, keyvals ...any) {
	if l := Default(); l != nil {
		l.entry(l.caller(1), t, msg+encodeFields(keyvals...))
	}
}

// Info writes an INFO entry through the default logger.
func Info(msg string) {
	if l := Default(); l != nil {
		l.entry(l.caller(1), TypeInfo, msg)
	}
}

// Warn writes a WARNING entry through the default logger.
func Warn(msg string) {
	if l := Default(); l != nil {
		l.entry(l.caller(1), TypeWarning, msg)
	}
}

// Error writes an ERROR entry through the default logger.
func Error(msg string) {
	if l := Default(); l != nil {
		l.entry(l.caller(1), TypeError, msg)
	}
}

// Crit writes a CRITICAL entry through the default logger.
func Crit(msg string) {
	if l := Default(); l != nil {
		l.entry(l.caller(1), TypeCritical, msg)
	}
}

// Debug writes a DEBUG entry through the default logger.
func Debug(msg string) {
	if l := Default(); l != nil {
		l.entry(l.caller(1), TypeDebug, msg)
	}
}

// Infof writes a formatted INFO entry through the default logger.
func Infof(format string, v ...any) {
	if l := Default(); l != nil {
		l.entry(l.caller(1), TypeInfo, fmt.Sprintf(format, v...))
	}
}

// Warnf writes a formatted WARNING entry through the default logger.
func Warnf(format string, v ...any) {
	if l := Default(); l != nil {
		l.entry(l.caller(1), TypeWarning, fmt.Sprintf(format, v...))
	}
}

// Errorf writes a formatted ERROR entry through the default logger.
func Errorf(format string, v ...any) {
	if l := Default(); l != nil {
		l.entry(l.caller(1), TypeError, fmt.Sprintf(format, v...))
	}
}

// Critf writes a formatted CRITICAL entry through the default logger.
func Critf(format string, v ...any) {
	if l := Default(); l != nil {
		l.entry(l.caller(1), TypeCritical, fmt.Sprintf(format, v...))
	}
}

// Debugf writes a formatted DEBUG entry through the default logger.
func Debugf(format string, v ...any) {
	if l := Default(); l != nil {
		l.entry(l.caller(1), TypeDebug, fmt.Sprintf(format, v...))
	}
}

// API logs an HTTP API call through the default logger; see Logger.API.
func API(statusCode int, msg string) {
	if l := Default(); l != nil {
		l.entry(l.caller(1), statusCodeToType(statusCode), fmt.Sprintf("[%d] %s", statusCode, msg))
	}
}
