package logger

import (
	"sync"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Output encodings.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process logger at the given level with console output.
// The first call (Get or Init) wins; later calls return the same instance.
func Get(level string) *Logger {
	return Init(level, FormatConsole)
}

// Init is Get with an explicit output format.
func Init(level, format string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(level, format)
	})
	return globalLogger
}

// Nop returns a logger that discards everything. Handy in tests.
func Nop() *Logger {
	return newNopLogger()
}
