package cli

import (
	"context"
	"net/http"
	"os"

	"github.com/0x0zAgency/create-infinitymint/pkg/cli/config"
	"github.com/0x0zAgency/create-infinitymint/pkg/domain/interfaces"
	"github.com/0x0zAgency/create-infinitymint/pkg/infra/archive"
	"github.com/0x0zAgency/create-infinitymint/pkg/infra/dirlist"
	"github.com/0x0zAgency/create-infinitymint/pkg/infra/github"
	"github.com/0x0zAgency/create-infinitymint/pkg/infra/runner"
	"github.com/0x0zAgency/create-infinitymint/pkg/infra/terminal"
	"github.com/0x0zAgency/create-infinitymint/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
)

func runWizard(ctx context.Context, ro *runOptions, templateCfg *config.Template, createCfg *config.Create, githubCfg *config.GitHub) error {
	catalog, err := templateCfg.Catalog()
	if err != nil {
		return err
	}
	strategy, pm, err := createCfg.Parse()
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return goerr.Wrap(err, "failed to get working directory")
	}

	materializer, err := newMaterializer(ro, templateCfg, githubCfg)
	if err != nil {
		return err
	}

	term := terminal.New(ro.in, ro.out)
	selector := usecase.NewSelector(term, dirlist.New(templateCfg.BrowseIgnore), usecase.WithWorkDir(wd))

	wizard := usecase.NewWizard(term, selector, materializer, catalog, usecase.WizardDefaults{
		Strategy:       strategy,
		PackageManager: pm,
		SkipInstall:    createCfg.SkipInstall,
		WorkDir:        wd,
	})

	term.Clear()
	return wizard.Run(ctx)
}

func newMaterializer(ro *runOptions, templateCfg *config.Template, githubCfg *config.GitHub) (interfaces.MaterializerUseCase, error) {
	httpClient := &http.Client{Timeout: templateCfg.FetchTimeout}

	zipball, err := github.NewClient(
		github.WithHTTPClient(httpClient),
		github.WithBaseURL(githubCfg.APIURL),
		github.WithToken(githubCfg.Token),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub client")
	}

	return usecase.NewMaterializer(
		runner.New(runner.WithStdio(ro.in, ro.out, os.Stderr)),
		archive.NewFetcher(archive.WithHTTPClient(httpClient)),
		usecase.WithBranch(templateCfg.Branch),
		usecase.WithZipballFallback(zipball),
	), nil
}
