// Package log provides diagnostic logging on stderr and an optional log file.
//
// Standard output is reserved for the JSON response envelope, so every
// message this package emits goes to stderr (mirrored to the log file when
// one is configured).
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Logger writes diagnostic output to stderr and, optionally, a log file.
type Logger struct {
	file   *os.File
	writer io.Writer
}

// New creates a logger. If logPath is empty the logger writes to stderr
// only; otherwise output is mirrored to the file at logPath.
func New(logPath string) (*Logger, error) {
	if logPath == "" {
		return &Logger{writer: os.Stderr}, nil
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{
		file:   file,
		writer: io.MultiWriter(os.Stderr, file),
	}, nil
}

// Printf writes a formatted message.
func (l *Logger) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprint(l.writer, msg)
}

// Errorf writes a formatted error message with a timestamp.
func (l *Logger) Errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	_, _ = fmt.Fprintf(l.writer, "[%s] %s\n", timestamp, msg)
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Global logger instance
var globalLogger *Logger

// Init initializes the global logger.
func Init(logPath string) error {
	logger, err := New(logPath)
	if err != nil {
		return err
	}
	globalLogger = logger
	return nil
}

// Printf uses the global logger to print formatted output.
func Printf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Printf(format, args...)
	} else {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// Errorf uses the global logger to print formatted error output.
func Errorf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Errorf(format, args...)
	} else {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// Close closes the global logger.
func Close() error {
	if globalLogger != nil {
		return globalLogger.Close()
	}
	return nil
}
