package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/0x0zAgency/create-infinitymint/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdTemplates(ro *runOptions, templateCfg *config.Template) *cli.Command {
	return &cli.Command{
		Name:    "templates",
		Aliases: []string{"ls"},
		Usage:   "List templates of the catalog",
		Action: func(ctx context.Context, c *cli.Command) error {
			catalog, err := templateCfg.Catalog()
			if err != nil {
				return err
			}

			for _, t := range catalog.Templates {
				fmt.Fprintf(ro.out, "%s\t%s\n", t.Key, t.Name)
				if len(t.Bundlers) > 0 {
					fmt.Fprintf(ro.out, "\tbundlers:  %s\n", strings.Join(t.Bundlers, ", "))
				}
				if len(t.Languages) > 0 {
					fmt.Fprintf(ro.out, "\tlanguages: %s\n", strings.Join(t.Languages, ", "))
				}
				fmt.Fprintf(ro.out, "\turl:       %s\n", t.URL)
			}
			return nil
		},
	}
}
