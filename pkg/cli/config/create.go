package config

import (
	"github.com/0x0zAgency/create-infinitymint/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Create holds answers that skip prompts of the create flow
type Create struct {
	Strategy       string
	PackageManager string
	SkipInstall    bool
}

// Flags returns CLI flags for create configuration
func (c *Create) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "strategy",
			Usage:       "How to obtain the template (clone, archive). Asked when empty",
			Destination: &c.Strategy,
			Sources:     cli.EnvVars("INFINITYMINT_STRATEGY"),
		},
		&cli.StringFlag{
			Name:        "package-manager",
			Usage:       "Package manager used to install dependencies (npm, yarn, pnpm). Asked when empty",
			Destination: &c.PackageManager,
			Sources:     cli.EnvVars("INFINITYMINT_PACKAGE_MANAGER"),
		},
		&cli.BoolFlag{
			Name:        "skip-install",
			Usage:       "Do not install dependencies after the template is obtained",
			Destination: &c.SkipInstall,
			Sources:     cli.EnvVars("INFINITYMINT_SKIP_INSTALL"),
		},
	}
}

// Parse validates the strategy and package manager flags.
func (c *Create) Parse() (model.Strategy, model.PackageManager, error) {
	strategy, err := model.ParseStrategy(c.Strategy)
	if err != nil {
		return "", "", err
	}
	pm, err := model.ParsePackageManager(c.PackageManager)
	if err != nil {
		return "", "", err
	}
	return strategy, pm, nil
}
