package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/reszplay/internal/events"
	"github.com/alexisbeaulieu97/reszplay/internal/logger"
	"github.com/alexisbeaulieu97/reszplay/internal/ports"
)

// AppContext bundles long-lived services created for one command.
type AppContext struct {
	Logger    ports.Logger
	Publisher ports.EventPublisher
	closer    io.Closer
}

// newAppContext builds the logger and event publisher. fallback receives
// logs when no --log-file is given.
func newAppContext(flags *rootFlags, fallback io.Writer) (*AppContext, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}

	writer := fallback
	var closer io.Closer
	if flags.logFile != "" {
		file, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, newCommandError("start", "opening log file", err, "Check that the --log-file directory exists and is writable.")
		}
		writer, closer = file, file
	}
	if writer == nil {
		writer = io.Discard
	}

	log, err := logger.New(logger.Options{Level: level, Writer: writer, Component: "cli"})
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return &AppContext{
		Logger:    log,
		Publisher: events.NewLoggingPublisher(log.With("component", "events")),
		closer:    closer,
	}, nil
}

// CommandContext derives a context carrying a fresh session ID and a
// logger tagged with the command name.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithSessionID(ctx, ports.GenerateSessionID())
	return ctx, a.Logger.With("command", name)
}

// Close releases the log file, if any.
func (a *AppContext) Close() error {
	if a == nil || a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
