package main

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/api"
	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// appConfig is the process configuration read from the environment and
// optional .env files.
type appConfig struct {
	Env       string `env:"FORMKIT_ENV" envDefault:"development"`
	LogLevel  string `env:"FORMKIT_LOG_LEVEL"`
	LogFormat string `env:"FORMKIT_LOG_FORMAT"`
	HTTP      api.Config
}

func loadConfig(envFiles []string) (appConfig, error) {
	if err := config.LoadEnv(envFiles...); err != nil {
		return appConfig{}, err
	}
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return appConfig{}, err
	}
	return cfg, nil
}

// newLogger builds the process logger. fallbackLevel applies when neither
// the environment nor a flag chose a level.
func newLogger(cfg appConfig, w io.Writer, level, fallbackLevel string) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithOutput(w),
		logger.WithEnvironment(cfg.Env, "formkit"),
		logger.WithContextExtractors(api.RequestIDExtractor()),
		logger.WithAttr(slog.String("version", Version)),
	}

	switch {
	case level != "":
	case cfg.LogLevel != "":
		level = cfg.LogLevel
	default:
		level = fallbackLevel
	}
	if level != "" {
		l, err := logger.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(l))
	}

	if cfg.LogFormat != "" {
		f, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(f))
	}

	return logger.New(opts...), nil
}
