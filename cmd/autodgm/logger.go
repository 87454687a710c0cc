package main

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/atlanticdynamic/autodgm/internal/config"
	"github.com/atlanticdynamic/autodgm/internal/logging"
	"github.com/urfave/cli/v3"
)

var (
	logCloserMu sync.Mutex
	logCloser   io.Closer
)

// setupLogger installs the default logger from the global log flags
func setupLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	format, err := config.LogFormatFromString(cmd.String("log-format"))
	if err != nil {
		return ctx, err
	}

	handler, closer, err := logging.Setup(logging.Options{
		Format: format,
		Level:  cmd.String("log-level"),
		Output: cmd.String("log-output"),
	})
	if err != nil {
		return ctx, err
	}

	installLogger(handler, closer)
	return ctx, nil
}

// applyDocumentLogging rebuilds the default logger from the logging section of the
// configuration. The log flags win over the document when they are set.
func applyDocumentLogging(cmd *cli.Command, lc config.LoggingConfig) error {
	level := cmd.String("log-level")
	if !cmd.IsSet("log-level") && lc.Level != config.LogLevelUnspecified {
		level = lc.Level.String()
	}
	format, err := config.LogFormatFromString(cmd.String("log-format"))
	if err != nil {
		return err
	}
	if !cmd.IsSet("log-format") && lc.Format != config.LogFormatUnspecified {
		format = lc.Format
	}
	if level == cmd.String("log-level") && format.String() == cmd.String("log-format") {
		return nil
	}

	handler, closer, err := logging.Setup(logging.Options{
		Format: format,
		Level:  level,
		Output: cmd.String("log-output"),
	})
	if err != nil {
		return err
	}
	if err := releaseLogger(); err != nil {
		_ = closer.Close()
		return err
	}
	installLogger(handler, closer)
	slog.Debug("Logging configured from the configuration file", "level", level, "format", format)
	return nil
}

func installLogger(handler slog.Handler, closer io.Closer) {
	logCloserMu.Lock()
	logCloser = closer
	logCloserMu.Unlock()

	slog.SetDefault(slog.New(handler))
}

func closeLogger(context.Context, *cli.Command) error {
	return releaseLogger()
}

func releaseLogger() error {
	logCloserMu.Lock()
	defer logCloserMu.Unlock()
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	return err
}
