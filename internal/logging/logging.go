// Package logging provides structured logging using Go's slog package.
package logging

import (
	"log/slog"
	"os"
	"time"
)

var (
	// defaultLogger is the global logger instance.
	defaultLogger *slog.Logger
)

func init() {
	// Initialize with a default logger (text format, Info level)
	InitLogger(LevelInfo, FormatText)
}

// Level represents a log level.
type Level int

const (
	// LevelDebug is for debug messages.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// ParseLevel maps a configuration string to a Level. Unknown values mean
// Info.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Format represents a log output format.
type Format int

const (
	// FormatJSON outputs logs in JSON format.
	FormatJSON Format = iota
	// FormatText outputs logs in human-readable text format.
	FormatText
)

// ParseFormat maps a configuration string to a Format. Unknown values mean
// FormatText.
func ParseFormat(s string) Format {
	if s == "json" {
		return FormatJSON
	}
	return FormatText
}

// InitLogger initializes the global logger with the specified level and format.
func InitLogger(level Level, format Format) {
	var slogLevel slog.Level
	switch level {
	case LevelDebug:
		slogLevel = slog.LevelDebug
	case LevelInfo:
		slogLevel = slog.LevelInfo
	case LevelWarn:
		slogLevel = slog.LevelWarn
	case LevelError:
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Customize timestamp format
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// GetLogger returns the global logger instance.
func GetLogger() *slog.Logger {
	return defaultLogger
}

// WithRunID attaches a run id to every record of the global logger.
func WithRunID(runID string) {
	defaultLogger = defaultLogger.With("run_id", runID)
	slog.SetDefault(defaultLogger)
}

// Helper functions for common logging patterns

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// StageInput logs an input artifact consumed by a stage, with its
// provenance checksum.
func StageInput(stage, path, checksum string) {
	defaultLogger.Info("stage_input",
		"stage", stage,
		"path", path,
		"blake3", checksum,
	)
}

// SyncSummary logs the sync stage outcome.
func SyncSummary(lookupKeys, matched, updated int, outPath string) {
	defaultLogger.Info("sync_summary",
		"lookup_keys", lookupKeys,
		"matched", matched,
		"updated", updated,
		"out", outPath,
	)
}

// ExtractSummary logs the extraction stage outcome.
func ExtractSummary(sentences, pairs int, outPath string) {
	defaultLogger.Info("extract_summary",
		"sentences", sentences,
		"pairs", pairs,
		"out", outPath,
	)
}

// TraceHit logs one traced form's feature state around the sync pass.
func TraceHit(key, before, after string) {
	defaultLogger.Debug("trace_hit",
		"key", key,
		"feats_before", before,
		"feats_after", after,
		"changed", before != after,
	)
}
