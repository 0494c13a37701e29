// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/bccproj/internal/core/ports"
)

// DebugEnvVar enables debug output when set to a non-empty value.
const DebugEnvVar = "BCCPROJ_DEBUG"

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error (go.trai.ch/zerr v0.3.0+).
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger  *slog.Logger
	mu      sync.RWMutex
	output  io.Writer
	program string
	level   slog.Level
}

// New creates a new Logger writing to stderr. Diagnostics are prefixed with the
// base name the process was invoked as until SetProgram names it.
func New() ports.Logger {
	level := slog.LevelInfo
	if os.Getenv(DebugEnvVar) != "" {
		level = slog.LevelDebug
	}

	l := &Logger{
		program: filepath.Base(os.Args[0]),
		level:   level,
	}
	l.SetOutput(os.Stderr)
	return l
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetProgram changes the program name printed in front of diagnostics.
func (l *Logger) SetProgram(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.program = name
	l.rebuild()
}

// SetDebug toggles debug output.
func (l *Logger) SetDebug(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = slog.LevelInfo
	if enable {
		l.level = slog.LevelDebug
	}
	l.rebuild()
}

// rebuild replaces the slog handler. Callers hold the write lock.
func (l *Logger) rebuild() {
	handler := NewPrettyHandler(l.output, l.program, &slog.HandlerOptions{
		Level: l.level,
	})
	l.logger = slog.New(handler)
}

// Debug logs a progress message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs the error on a single line, its causes joined by ": ".
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(FormatError(err))
}

// FormatError flattens an error chain into one line.
// zerr errors contribute their own message and the chain is followed;
// any other error contributes its full Error() text and ends the walk.
func FormatError(err error) string {
	var messages []string
	current := err

	for current != nil {
		if m, ok := current.(messager); ok {
			if msg := m.Message(); msg != "" {
				messages = append(messages, msg)
			}
			current = errors.Unwrap(current)
		} else {
			messages = append(messages, current.Error())
			break
		}
	}

	for i, msg := range messages {
		lines := strings.Split(msg, "\n")
		for j := range lines {
			lines[j] = strings.TrimSpace(lines[j])
		}
		messages[i] = strings.Join(lines, " ")
	}

	return strings.Join(messages, ": ")
}
