// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/mlpot/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// messager describes an error that can report its own message without the chain.
// zerr errors implement it.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	level    slog.LevelVar
	jsonMode bool
	output   io.Writer
}

// New creates a Logger writing pretty output to stderr at info level.
func New() *Logger {
	l := &Logger{output: os.Stderr}
	l.level.Set(slog.LevelInfo)
	l.rebuild()
	return l
}

// SetOutput updates the output destination, keeping the current mode.
// A nil writer selects stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetVerbose enables debug messages.
func (l *Logger) SetVerbose(enable bool) {
	if enable {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
}

// rebuild must be called with mu held for writing.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: &l.level}

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.output, opts)
	} else {
		handler = NewPrettyHandler(l.output, opts)
	}
	l.logger = slog.New(handler)
}

// Debug logs a diagnostic message. It is dropped unless verbose logging is on.
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

// Error logs an error with its cause chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}
	l.logger.Error(formatChain(collectMessages(err)))
}

// collectMessages walks the chain of zerr errors. The first error that does
// not report its own message contributes its full text and ends the walk.
func collectMessages(err error) []string {
	var messages []string
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		messages = append(messages, m.Message())
		current = errors.Unwrap(current)
	}
	return messages
}

func formatChain(messages []string) string {
	var out []string
	for i, msg := range messages {
		lines := strings.Split(msg, "\n")
		if i == 0 {
			out = append(out, "Error: "+lines[0])
			for _, line := range lines[1:] {
				out = append(out, "       "+line)
			}
			continue
		}
		if i == 1 {
			out = append(out, "", "  Caused by:")
		}
		out = append(out, "    → "+lines[0])
		for _, line := range lines[1:] {
			out = append(out, "      "+line)
		}
	}
	return strings.Join(out, "\n")
}
