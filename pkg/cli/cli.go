package cli

import (
	"context"
	"log/slog"

	"github.com/carelink-lab/carelink/pkg/cli/config"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger

	app := &cli.Command{
		Name:        "carelink",
		Usage:       "Patient portal dashboard server",
		Version:     "0.1.0",
		Description: "Renders the patient portal pages and forwards the backend API paths.",
		Flags:       loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, goerr.Wrap(err, "failed to configure logger")
			}

			slog.SetDefault(logger)
			logger.Debug("Logger configured", slog.Any("logger", loggerCfg))
			return ctxlog.With(ctx, logger), nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdRender(),
			cmdSeed(),
			cmdValidate(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}
