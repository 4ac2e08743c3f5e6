package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/0x0zAgency/create-infinitymint/pkg/cli/config"
	"github.com/0x0zAgency/create-infinitymint/pkg/domain/types"
	"github.com/0x0zAgency/create-infinitymint/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type runOptions struct {
	in  io.Reader
	out io.Writer
}

// Option configures Run.
type Option func(*runOptions)

// WithIO replaces stdin and stdout for prompts and command output.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(o *runOptions) {
		o.in = in
		o.out = out
	}
}

// Run runs the CLI application
func Run(ctx context.Context, args []string, opts ...Option) error {
	ro := &runOptions{
		in:  os.Stdin,
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(ro)
	}

	var (
		loggerCfg   config.Logger
		templateCfg config.Template
		createCfg   config.Create
		githubCfg   config.GitHub
		sentryCfg   config.Sentry
		logger      *slog.Logger
	)

	var flags []cli.Flag
	flags = append(flags, loggerCfg.Flags()...)
	flags = append(flags, templateCfg.Flags()...)
	flags = append(flags, createCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	app := &cli.Command{
		Name:    "create-infinitymint",
		Usage:   "Create a new InfinityMint project from a starter template",
		Version: types.Version,
		Flags:   flags,
		Reader:  ro.in,
		Writer:  ro.out,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = logging.With(ctx, logger)

			if err := sentryCfg.Configure(); err != nil {
				return nil, err
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runWizard(ctx, ro, &templateCfg, &createCfg, &githubCfg)
		},
		Commands: []*cli.Command{
			cmdFetch(ro, &templateCfg, &createCfg, &githubCfg),
			cmdTemplates(ro, &templateCfg),
			cmdVersion(ro),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		// Closed stdin ends an interactive session like choosing Exit.
		if errors.Is(err, io.EOF) {
			return nil
		}

		if logger == nil {
			logger = slog.Default()
		}
		sentryCfg.Report(err)
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
