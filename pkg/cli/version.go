package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/0x0zAgency/create-infinitymint/pkg/domain/types"
	"github.com/0x0zAgency/create-infinitymint/pkg/utils/logging"
	"github.com/tcnksm/go-latest"
	"github.com/urfave/cli/v3"
)

func cmdVersion(ro *runOptions) *cli.Command {
	var checkUpdate bool

	return &cli.Command{
		Name:  "version",
		Usage: "Show version",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "check-update",
				Usage:       "Compare with the latest release tag on GitHub",
				Destination: &checkUpdate,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			fmt.Fprintf(ro.out, "create-infinitymint %s\n", types.Version)
			if !checkUpdate {
				return nil
			}

			res, err := latest.Check(&latest.GithubTag{
				Owner:      "0x0zAgency",
				Repository: "create-infinitymint",
			}, types.Version)
			if err != nil {
				// An unreachable release feed never fails the command.
				logging.From(ctx).Warn("Failed to check latest version", slog.Any("error", err))
				return nil
			}

			if res.Outdated {
				fmt.Fprintf(ro.out, "A new version is available: %s\n", res.Current)
			} else {
				fmt.Fprintln(ro.out, "You are using the latest version")
			}
			return nil
		},
	}
}
