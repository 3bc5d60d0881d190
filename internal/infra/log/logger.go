package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"backoffice/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the process-wide slog.Logger and installs it as the default.
func New(params Params) (*slog.Logger, error) {
	logger, err := build(os.Stdout, params.Config.Env.Log)
	if err != nil {
		return nil, err
	}

	if name := params.Config.Env.ServiceName; name != "" {
		logger = logger.With(slog.String("service", name))
	}
	slog.SetDefault(logger)

	return logger, nil
}

func build(w io.Writer, cfg config.Log) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Pretty {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}

	return slog.New(slog.NewJSONHandler(w, opts)), nil
}

// parseLogLevel converts string log level to slog.Level; empty means info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}

// NewTo builds a logger writing to w without touching the default logger.
func NewTo(w io.Writer, cfg config.Log) (*slog.Logger, error) {
	return build(w, cfg)
}
