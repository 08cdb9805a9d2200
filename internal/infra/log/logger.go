// Package logs builds the process-wide slog logger.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"storefront/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the root logger: text when pretty, JSON otherwise, tagged
// with the service name and environment.
func New(params Params) (*slog.Logger, error) {
	return build(os.Stdout, params.Config.Env)
}

func build(w io.Writer, env config.EnvConfig) (*slog.Logger, error) {
	level, err := parseLogLevel(env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: env.Debug}

	var handler slog.Handler
	if env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	if env.ServiceName != "" {
		logger = logger.With(slog.String("service", env.ServiceName))
	}
	if env.Env != "" {
		logger = logger.With(slog.String("env", env.Env))
	}

	return logger, nil
}

// parseLogLevel converts string log level to slog.Level. Empty means info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
