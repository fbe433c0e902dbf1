package logging

import (
	"io"
	"log"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jkomar/dir-sweeper/internal/config"
)

// Provides a simple logger interface for the application

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

func parseLevel(s string) level {
	switch strings.ToLower(s) {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// StdLogger writes leveled printf-style messages through the standard
// log package, optionally into a rotating file.
type StdLogger struct {
	min level
	l   *log.Logger
}

// New builds a logger from the logging section of the configuration.
// With an empty file path output goes to stderr; otherwise lumberjack
// handles rotation.
func New(cfg config.LoggingConfig) *StdLogger {
	var w io.Writer = os.Stderr
	if cfg.File.Path != "" {
		w = &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays,
		}
	}
	return &StdLogger{
		min: parseLevel(cfg.Level),
		l:   log.New(w, "", log.LstdFlags),
	}
}

func (s *StdLogger) logf(lv level, tag, msg string, args ...any) {
	if lv < s.min {
		return
	}
	s.l.Printf(tag+": "+msg, args...)
}

func (s *StdLogger) Debug(msg string, args ...any) { s.logf(levelDebug, "DEBUG", msg, args...) }
func (s *StdLogger) Info(msg string, args ...any)  { s.logf(levelInfo, "INFO", msg, args...) }
func (s *StdLogger) Warn(msg string, args ...any)  { s.logf(levelWarn, "WARN", msg, args...) }
func (s *StdLogger) Error(msg string, args ...any) { s.logf(levelError, "ERROR", msg, args...) }

// Nop discards everything. Useful as a test logger.
type Nop struct{}

func (Nop) Debug(string, ...any) {}
func (Nop) Info(string, ...any)  {}
func (Nop) Warn(string, ...any)  {}
func (Nop) Error(string, ...any) {}
