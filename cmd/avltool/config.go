package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type baseConfiguration struct {
	LogLevel  string
	LogFormat string

	logger zerolog.Logger
}

const (
	// The prefix for configuration keys inside environment.
	envPrefix = "AVLTOOL"

	flagNameLogLevel  = "log-level"
	flagNameLogFormat = "log-format"

	logFormatConsole = "console"
	logFormatJSON    = "json"
)

func (r *baseConfiguration) addConfigurationFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&r.LogLevel, flagNameLogLevel, "info", "logging level, one of: trace, debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&r.LogFormat, flagNameLogFormat, logFormatConsole, "log format, one of: console, json")
}

// initLogger creates the logger described by the log flags, writing to w.
func (r *baseConfiguration) initLogger(w io.Writer) error {
	level, err := zerolog.ParseLevel(strings.ToLower(r.LogLevel))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", flagNameLogLevel, err)
	}

	var l zerolog.Logger
	switch strings.ToLower(r.LogFormat) {
	case logFormatConsole:
		l = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly})
	case logFormatJSON:
		l = zerolog.New(w)
	default:
		return fmt.Errorf("unknown log format %q", r.LogFormat)
	}
	r.logger = l.Level(level).With().Timestamp().Logger()
	return nil
}
