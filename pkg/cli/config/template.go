package config

import (
	"time"

	"github.com/0x0zAgency/create-infinitymint/pkg/domain/model"
	"github.com/0x0zAgency/create-infinitymint/pkg/infra/catalog"
	"github.com/0x0zAgency/create-infinitymint/pkg/infra/dirlist"
	"github.com/urfave/cli/v3"
)

// Template holds where templates come from and how they are fetched
type Template struct {
	CatalogPath  string
	Branch       string
	FetchTimeout time.Duration
	BrowseIgnore []string
}

// Flags returns CLI flags for template configuration
func (c *Template) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "Path to a template catalog (.toml, .yaml or .yml). The built-in catalog is used when empty",
			Destination: &c.CatalogPath,
			Sources:     cli.EnvVars("INFINITYMINT_CATALOG"),
		},
		&cli.StringFlag{
			Name:        "branch",
			Usage:       "Branch used to build archive URLs",
			Value:       "master",
			Destination: &c.Branch,
			Sources:     cli.EnvVars("INFINITYMINT_BRANCH"),
		},
		&cli.DurationFlag{
			Name:        "fetch-timeout",
			Usage:       "Timeout of archive downloads (0 means no timeout)",
			Destination: &c.FetchTimeout,
			Sources:     cli.EnvVars("INFINITYMINT_FETCH_TIMEOUT"),
		},
		&cli.StringSliceFlag{
			Name:        "browse-ignore",
			Usage:       "Directory names hidden while browsing, in .gitignore syntax",
			Value:       dirlist.DefaultIgnore,
			Destination: &c.BrowseIgnore,
			Sources:     cli.EnvVars("INFINITYMINT_BROWSE_IGNORE"),
		},
	}
}

// Catalog loads the configured catalog or the built-in one.
func (c *Template) Catalog() (*model.Catalog, error) {
	return catalog.Load(c.CatalogPath)
}
