// Package logging builds the logrus loggers shared by the CLI and the
// agent packages.
package logging

import (
	"bytes"
	"io"

	log "github.com/sirupsen/logrus"
)

// New writes full-timestamp text lines to out, dropping anything below level.
func New(out io.Writer, level log.Level) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return logger
}

// LevelFor maps the debug switch onto a logrus level.
func LevelFor(debug bool) log.Level {
	if debug {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// NewNullLogger is the default for library types built without a logger.
func NewNullLogger() *log.Logger {
	return New(io.Discard, log.InfoLevel)
}

// NewBufferLogger records everything down to debug in b.
func NewBufferLogger(b *bytes.Buffer) *log.Logger {
	return New(b, log.DebugLevel)
}
