package main

import (
	"context"
	"os"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/splop/internal/demo"
)

func main() {
	ctx := context.Background()

	l := &logging.Logger{Out: os.Stderr, Level: logging.LevelInfo}
	level, err := logLevel()
	if err != nil {
		l.Warn(ctx, "falling back to the info log level", logging.ErrField(err))
	} else {
		l.Level = level
	}

	var m cli.Mux
	demo.Register(&m)
	cli.Main(demo.ContextWithLogger(ctx, l), &m)
}

const ErrInvalidLogLevel errorkit.Error = "ErrInvalidLogLevel"

func logLevel() (logging.Level, error) {
	raw, _, err := env.Lookup[string]("SPLOP_LOG_LEVEL", env.DefaultValue(logging.LevelInfo.String()))
	if err != nil {
		return "", err
	}
	level := logging.Level(raw)
	switch level {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError:
		return level, nil
	default:
		return "", ErrInvalidLogLevel.F("SPLOP_LOG_LEVEL=%q", raw)
	}
}
