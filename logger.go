/************************************************************************************
 *
 * goda (Golang Optimized Discord API), A Lightweight Go library for Discord API
 *
 * SPDX-License-Identifier: BSD-3-Clause
 *
 * Copyright 2025 Marouane Souiri
 *
 * Licensed under the BSD 3-Clause License.
 * See the LICENSE file for details.
 *
 ************************************************************************************/

package goda

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger defines the logging interface
type Logger interface {
	Info(msg string)
	Debug(msg string)
	Warn(msg string)
	Error(msg string)
	Fatal(msg string)

	// WithField adds a single field to the logger context
	WithField(key string, value any) Logger
	// WithFields adds multiple fields to the logger context
	WithFields(fields map[string]any) Logger
}

// LogLevel defines the severity level
type LogLevel int

const (
	LogLevelDebugLevel LogLevel = iota
	LogLevelInfoLevel
	LogLevelWarnLevel
	LogLevelErrorLevel
	LogLevelFatalLevel
)

func (l LogLevel) zerolog() zerolog.Level {
	switch l {
	case LogLevelDebugLevel:
		return zerolog.DebugLevel
	case LogLevelInfoLevel:
		return zerolog.InfoLevel
	case LogLevelWarnLevel:
		return zerolog.WarnLevel
	case LogLevelErrorLevel:
		return zerolog.ErrorLevel
	case LogLevelFatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// DefaultLogger is the goda library's built-in Logger, backed by zerolog.
type DefaultLogger struct {
	zl zerolog.Logger
}

var _ Logger = (*DefaultLogger)(nil)

// NewDefaultLogger builds a DefaultLogger writing structured JSON lines to
// out (os.Stdout when nil), filtering everything below level.
func NewDefaultLogger(out io.Writer, level LogLevel) *DefaultLogger {
	return NewFileLogger(out, level, "", 0, 0, 0)
}

// NewFileLogger builds a DefaultLogger that writes to out (os.Stdout when
// nil) and, when logFilePath is non-empty, additionally to a size- and
// age-rotated file there, rotation handled by lumberjack. maxSizeMB is the
// size in megabytes at which the file rotates, maxBackups bounds the
// number of old files kept, and maxAgeDays bounds how long they're kept;
// zero values fall back to lumberjack's own defaults.
func NewFileLogger(out io.Writer, level LogLevel, logFilePath string, maxSizeMB, maxBackups, maxAgeDays int) *DefaultLogger {
	if out == nil {
		out = os.Stdout
	}

	writer := out
	if logFilePath != "" {
		writer = zerolog.MultiLevelWriter(out, &lumberjack.Logger{
			Filename:   logFilePath,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   true,
		})
	}

	zl := zerolog.New(writer).With().Timestamp().Logger().Level(level.zerolog())
	return &DefaultLogger{zl: zl}
}

func (l *DefaultLogger) WithField(key string, value any) Logger {
	return &DefaultLogger{zl: l.zl.With().Interface(key, value).Logger()}
}

func (l *DefaultLogger) WithFields(fields map[string]any) Logger {
	ctx := l.zl.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &DefaultLogger{zl: ctx.Logger()}
}

func (l *DefaultLogger) Info(msg string) {
	l.zl.Info().Msg(msg)
}

func (l *DefaultLogger) Debug(msg string) {
	l.zl.Debug().Msg(msg)
}

func (l *DefaultLogger) Warn(msg string) {
	l.zl.Warn().Msg(msg)
}

func (l *DefaultLogger) Error(msg string) {
	l.zl.Error().Msg(msg)
}

// Fatal logs at fatal level then terminates the process (zerolog.Event's
// own Msg implementation calls os.Exit(1) after writing).
func (l *DefaultLogger) Fatal(msg string) {
	l.zl.Fatal().Msg(msg)
}
