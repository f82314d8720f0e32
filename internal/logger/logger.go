// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

const (
	defaultTimeFormat = "2006/01/02 15:04:05"

	LevelTrace = slog.Level(-8)

	minimumVerbosityCountAddSource = 3

	JSONFormatLabel    = "json"
	TextFormatLabel    = "text"
	DefaultFormatLabel = "default"
)

type LogFormat int

const (
	DefaultFormat LogFormat = iota
	JSONFormat
	TextFormat
)

var (
	Logger *slog.Logger

	isDebugMode bool

	LevelNames = map[slog.Leveler]string{
		LevelTrace: "TRACE",
	}

	LogFormats = map[string]LogFormat{
		JSONFormatLabel:    JSONFormat,
		TextFormatLabel:    TextFormat,
		DefaultFormatLabel: DefaultFormat,
	}
)

// LoggerOptions configure the global logger. Output defaults to stderr, so
// reports written to stdout are not mixed with logs.
type LoggerOptions struct {
	Verbosity int
	LogFormat string
	Output    io.Writer
}

func init() {
	// Avoid nil loggers, so they can be used in testing
	Logger = slog.New(newHandler(os.Stderr, createHandlerOptions(new(slog.LevelVar), false, DefaultFormat)))
}

func SetupLogger(opts LoggerOptions) error {
	addSource := opts.Verbosity >= minimumVerbosityCountAddSource

	if opts.LogFormat == "" {
		opts.LogFormat = DefaultFormatLabel
	}
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	format, ok := LogFormats[opts.LogFormat]
	if !ok {
		return fmt.Errorf("unrecognized log format %q", opts.LogFormat)
	}

	logLevel := new(slog.LevelVar)
	switch {
	case opts.Verbosity == 1:
		logLevel.Set(slog.LevelDebug)
	case opts.Verbosity > 1:
		logLevel.Set(LevelTrace)
	}

	handlerOptions := createHandlerOptions(logLevel, addSource, format)
	switch format {
	case JSONFormat:
		Logger = slog.New(slog.NewJSONHandler(opts.Output, handlerOptions))
	case TextFormat:
		Logger = slog.New(slog.NewTextHandler(opts.Output, handlerOptions))
	default:
		Logger = slog.New(newHandler(opts.Output, handlerOptions))
	}
	slog.SetDefault(Logger)

	isDebugMode = opts.Verbosity > 0
	if isDebugMode {
		Logger.Debug("Enable verbose logging")
	}
	return nil
}

func createHandlerOptions(logLevel *slog.LevelVar, addSource bool, logFormat LogFormat) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: addSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if logFormat != JSONFormat && a.Key == slog.TimeKey && len(groups) == 0 {
				a.Value = slog.StringValue(a.Value.Time().Format(defaultTimeFormat))
				return a
			}

			if a.Key == slog.LevelKey && len(groups) == 0 {
				level, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				levelLabel, exists := LevelNames[level]
				if !exists {
					levelLabel = level.String()
				}
				a.Value = slog.StringValue(levelLabel)
			}
			return a
		},
	}
}

// IsDebugMode method checks if the debug mode is enabled.
func IsDebugMode() bool {
	return isDebugMode
}

// Tracef method logs message with "trace" level and formats it.
func Tracef(format string, a ...any) {
	Logger.Log(context.Background(), LevelTrace, fmt.Sprintf(format, a...))
}

// Debugf method logs message with "debug" level and formats it.
func Debugf(format string, a ...any) {
	Logger.Debug(fmt.Sprintf(format, a...))
}

// Errorf method logs message with "error" level and formats it.
func Errorf(format string, a ...any) {
	Logger.Error(fmt.Sprintf(format, a...))
}
