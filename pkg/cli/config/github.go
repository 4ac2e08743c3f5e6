package config

import "github.com/urfave/cli/v3"

// GitHub holds settings of the zipball fallback
type GitHub struct {
	APIURL string
	Token  string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL used when the archive URL cannot be fetched",
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("INFINITYMINT_GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token for the zipball fallback (optional)",
			Destination: &c.Token,
			Sources:     cli.EnvVars("INFINITYMINT_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
	}
}
