// Package logging builds the structured logger shared by mazewalk commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options configures New.
type Options struct {
	Level  string    // logrus level name; empty means info
	Format string    // FormatText or FormatJSON; empty means text
	Output io.Writer // defaults to os.Stderr
}

// New returns a logger configured from opts.
func New(opts Options) (*logrus.Logger, error) {
	log := logrus.New()

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	log.SetOutput(out)

	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		level = parsed
	}
	log.SetLevel(level)

	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		log.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	case FormatJSON:
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q (valid: %s, %s)", opts.Format, FormatText, FormatJSON)
	}

	return log, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
