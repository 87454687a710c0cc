// Package logging builds the slog handlers used across the tool.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/atlanticdynamic/autodgm/internal/config"
	"github.com/atlanticdynamic/autodgm/internal/logging/writers"
	"github.com/charmbracelet/log"
)

// levelSettings maps a level name to the handler settings. Trace is debug with caller info.
type levelSettings struct {
	level     slog.Level
	caller    bool
	timestamp bool
}

func parseLevel(logLevel string) levelSettings {
	switch strings.ToLower(logLevel) {
	case "trace":
		return levelSettings{level: slog.LevelDebug, caller: true, timestamp: true}
	case "debug":
		return levelSettings{level: slog.LevelDebug, timestamp: true}
	case "warn", "warning":
		return levelSettings{level: slog.LevelWarn}
	case "error":
		return levelSettings{level: slog.LevelError}
	default:
		return levelSettings{level: slog.LevelInfo}
	}
}

// SetupHandlerText configures a charmbracelet text handler, writing to stderr when writer is nil
func SetupHandlerText(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}
	ls := parseLevel(logLevel)

	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: ls.timestamp,
		ReportCaller:    ls.caller,
		Level:           log.Level(ls.level),
		Prefix:          "autodgm",
	})
}

// SetupHandlerJSON configures a JSON handler, writing to stderr when writer is nil
func SetupHandlerJSON(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}
	ls := parseLevel(logLevel)

	return slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level:     ls.level,
		AddSource: ls.caller,
	})
}

// Options selects the handler built by Setup.
type Options struct {
	Format config.LogFormat
	Level  string

	// Output is a writers.CreateWriter destination, stderr when empty.
	Output string
}

// Setup builds the handler described by opts. The returned closer releases a file output.
func Setup(opts Options) (slog.Handler, io.Closer, error) {
	format, err := config.LogFormatFromString(opts.Format.String())
	if err != nil {
		return nil, nil, err
	}
	if _, err := config.LogLevelFromString(opts.Level); err != nil {
		return nil, nil, err
	}

	output := opts.Output
	if output == "" {
		output = string(writers.WriterTypeStderr)
	}
	w, err := writers.CreateWriter(output)
	if err != nil {
		return nil, nil, fmt.Errorf("log output: %w", err)
	}

	switch format {
	case config.LogFormatJSON:
		return SetupHandlerJSON(opts.Level, w), w, nil
	default:
		return SetupHandlerText(opts.Level, w), w, nil
	}
}
