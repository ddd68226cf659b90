package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger простой файловый логгер с уровнями
// Пишет одновременно в файл и stdout
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	file  *os.File
	level Level
}

// New creates a logger writing to the given file path and stdout.
// Level is one of: debug, info, warn, error (case-insensitive).
func New(path, level string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logger: create log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: open log file: %w", err)
	}

	return &Logger{
		out:   io.MultiWriter(os.Stdout, f),
		file:  f,
		level: parseLevel(level),
	}, nil
}

func parseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *Logger) log(lvl Level, tag, format string, v ...interface{}) {
	if lvl < l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s [%s] %s\n",
		time.Now().UTC().Format("2006-01-02T15:04:05.000Z"), tag, fmt.Sprintf(format, v...))
}

// Debug logs a debug-level message
func (l *Logger) Debug(format string, v ...interface{}) { l.log(LevelDebug, "DEBUG", format, v...) }

// Info logs an info-level message
func (l *Logger) Info(format string, v ...interface{}) { l.log(LevelInfo, "INFO", format, v...) }

// Warn logs a warning-level message
func (l *Logger) Warn(format string, v ...interface{}) { l.log(LevelWarn, "WARN", format, v...) }

// Error logs an error-level message
func (l *Logger) Error(format string, v ...interface{}) { l.log(LevelError, "ERROR", format, v...) }

// Fatal logs an error-level message and exits the process
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log(LevelError, "FATAL", format, v...)
	l.Close()
	os.Exit(1)
}

// Close closes the underlying log file
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
