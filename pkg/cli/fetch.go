package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/0x0zAgency/create-infinitymint/pkg/cli/config"
	"github.com/0x0zAgency/create-infinitymint/pkg/domain/model"
	"github.com/0x0zAgency/create-infinitymint/pkg/domain/types"
	"github.com/0x0zAgency/create-infinitymint/pkg/usecase"
	"github.com/0x0zAgency/create-infinitymint/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdFetch(ro *runOptions, templateCfg *config.Template, createCfg *config.Create, githubCfg *config.GitHub) *cli.Command {
	var (
		sourceURL string
		dir       string
	)

	return &cli.Command{
		Name:    "fetch",
		Aliases: []string{"f"},
		Usage:   "Materialize a template repository into a directory without prompts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "url",
				Usage:       "Template repository URL",
				Required:    true,
				Destination: &sourceURL,
			},
			&cli.StringFlag{
				Name:        "dir",
				Usage:       "Destination directory (created when missing, must be empty)",
				Required:    true,
				Destination: &dir,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			strategy, pm, err := createCfg.Parse()
			if err != nil {
				return err
			}
			if strategy == "" {
				strategy = model.StrategyArchive
			}

			destination, err := prepareDestination(dir)
			if err != nil {
				return err
			}

			materializer, err := newMaterializer(ro, templateCfg, githubCfg)
			if err != nil {
				return err
			}

			logger.Info("Fetching template",
				slog.String("source", sourceURL),
				slog.String("destination", destination),
				slog.String("strategy", string(strategy)),
			)

			if _, err := materializer.Materialize(ctx, sourceURL, destination, strategy); err != nil {
				return err
			}
			if err := materializer.CleanMetadata(ctx, destination); err != nil {
				return err
			}
			if !createCfg.SkipInstall {
				if pm == "" {
					detected, ok := usecase.DetectPackageManager(ctx, destination)
					if !ok {
						detected = model.PackageManagerNPM
					}
					pm = detected
				}
				if err := materializer.InstallDependencies(ctx, destination, pm); err != nil {
					return err
				}
			}

			req := &model.CreateRequest{Destination: destination}
			fmt.Fprintf(ro.out, "Successfully fetched %s into %s\n", sourceURL, destination)
			fmt.Fprintf(ro.out, "please run %s\n", req.NextStep())
			return nil
		},
	}
}

// prepareDestination creates dir when its parent exists and rejects a
// non-empty directory. The result is absolute with a trailing slash.
func prepareDestination(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve destination", goerr.V("dir", dir))
	}

	if _, err := os.Stat(filepath.Dir(abs)); err != nil {
		return "", goerr.Wrap(types.ErrDirectoryNotFound, "parent of destination does not exist", goerr.V("dir", abs))
	}

	entries, err := os.ReadDir(abs)
	switch {
	case os.IsNotExist(err):
		if err := os.Mkdir(abs, 0755); err != nil {
			return "", goerr.Wrap(err, "failed to create destination", goerr.V("dir", abs))
		}
	case err != nil:
		return "", goerr.Wrap(err, "failed to read destination", goerr.V("dir", abs))
	case len(entries) > 0:
		return "", goerr.Wrap(types.ErrDirectoryExists, "destination is not empty", goerr.V("dir", abs))
	}

	return model.EnsureTrailingSlash(model.NormalizeSeparators(abs)), nil
}
