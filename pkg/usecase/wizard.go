package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/0x0zAgency/create-infinitymint/pkg/domain/interfaces"
	"github.com/0x0zAgency/create-infinitymint/pkg/domain/model"
	"github.com/0x0zAgency/create-infinitymint/pkg/domain/types"
	"github.com/0x0zAgency/create-infinitymint/pkg/utils/logging"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

const exitChoice = "Exit"

// WizardDefaults pre-answers questions of the create flow.
type WizardDefaults struct {
	Strategy       model.Strategy
	PackageManager model.PackageManager
	SkipInstall    bool
	WorkDir        string
}

// Wizard drives the interactive create flow from the top menu to the
// installed project.
type Wizard struct {
	prompter     interfaces.Prompter
	selector     interfaces.SelectorUseCase
	materializer interfaces.MaterializerUseCase
	catalog      *model.Catalog
	defaults     WizardDefaults
}

// NewWizard creates a Wizard.
func NewWizard(
	prompter interfaces.Prompter,
	selector interfaces.SelectorUseCase,
	materializer interfaces.MaterializerUseCase,
	catalog *model.Catalog,
	defaults WizardDefaults,
) *Wizard {
	return &Wizard{
		prompter:     prompter,
		selector:     selector,
		materializer: materializer,
		catalog:      catalog,
		defaults:     defaults,
	}
}

// Run shows the top menu until a project is created or the user exits.
// A failed task is reported and the menu is shown again without clearing
// the screen.
func (w *Wizard) Run(ctx context.Context) error {
	logger := logging.From(ctx)

	for {
		w.prompter.Print(model.ToneTitle, "\n"+w.catalog.Title)
		if w.catalog.Subtitle != "" {
			w.prompter.Print(model.ToneInfo, w.catalog.Subtitle)
		}

		choices := append(w.catalog.Names(), exitChoice)
		index, err := w.prompter.Choice(w.catalog.Question, choices, "")
		if err != nil {
			return err
		}
		if index < 0 {
			w.prompter.Notice("Invalid Option")
			continue
		}
		if index == len(w.catalog.Templates) {
			return nil
		}

		done, err := w.createTask(ctx, &w.catalog.Templates[index])
		if err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			logger.Error("Creation task failed", slog.Any("error", err))
			w.prompter.Print(model.ToneError, "Failed to create project: "+err.Error())
			continue
		}
		if done {
			return nil
		}
		w.prompter.Notice("")
	}
}

func (w *Wizard) createTask(ctx context.Context, tmpl *model.Template) (bool, error) {
	logger := logging.From(ctx).With(
		slog.String("task_id", uuid.NewString()),
		slog.String("template", tmpl.Key),
	)
	ctx = logging.With(ctx, logger)

	if tmpl.Description != "" {
		w.prompter.Print(model.ToneInfo, tmpl.Description)
	}

	bundler, ok, err := w.pickOption("What bundler would you like to use?", tmpl.Bundlers)
	if err != nil || !ok {
		return false, err
	}
	language, ok, err := w.pickOption("What programming language would you like to use?", tmpl.Languages)
	if err != nil || !ok {
		return false, err
	}
	w.prompter.Print(model.ToneHighlight, "\n"+summary(tmpl, bundler, language))

	destination, ok, err := w.location(ctx, tmpl)
	if err != nil || !ok {
		return false, err
	}

	pm, ok, err := w.packageManager()
	if err != nil || !ok {
		return false, err
	}

	params := model.SourceParams{Framework: tmpl.Framework, Language: language, Bundler: bundler}
	sourceURL, err := tmpl.SourceURL(params)
	if err != nil {
		return false, err
	}

	req := &model.CreateRequest{
		Template:       tmpl,
		Params:         params,
		SourceURL:      sourceURL,
		Destination:    destination,
		PackageManager: pm,
		SkipInstall:    w.defaults.SkipInstall,
	}
	logger.Info("Creating project",
		slog.String("source", req.SourceURL),
		slog.String("destination", req.Destination),
		slog.String("package_manager", string(req.PackageManager)),
	)

	ok, err = w.obtain(ctx, req)
	if err != nil || !ok {
		return false, err
	}

	if err := w.materializer.CleanMetadata(ctx, req.Destination); err != nil {
		return false, err
	}
	w.prompter.Print(model.ToneSuccess, "Successfully fetched a new InfinityMint at "+req.Destination)

	if !req.SkipInstall {
		if err := w.materializer.InstallDependencies(ctx, req.Destination, req.PackageManager); err != nil {
			return false, err
		}
	}

	logger.Debug("Entering stage", slog.Any("stage", model.StageDone))
	w.prompter.Print(model.ToneSuccess, "Successfully created a new "+tmpl.Name+" InfinityMint at "+req.Destination)
	w.prompter.Print(model.TonePlain, "please run "+req.NextStep())
	return true, nil
}

// pickOption asks for one of options with an Exit entry appended. Lists of
// zero or one option are answered without asking.
func (w *Wizard) pickOption(query string, options []string) (string, bool, error) {
	switch len(options) {
	case 0:
		return "", true, nil
	case 1:
		return options[0], true, nil
	}

	choices := append(append([]string{}, options...), exitChoice)
	for {
		index, err := w.prompter.Choice(query, choices, "")
		if err != nil {
			return "", false, err
		}
		switch {
		case index < 0:
			w.prompter.Notice("Invalid Choice")
		case index == len(options):
			return "", false, nil
		default:
			return options[index], true, nil
		}
	}
}

func (w *Wizard) location(ctx context.Context, tmpl *model.Template) (string, bool, error) {
	w.prompter.Print(model.ToneInfo, "InfinityMint will now ask you to select a location to create your application.")
	if w.defaults.WorkDir != "" {
		w.prompter.Print(model.ToneInfo, "Your current working directory is "+w.defaults.WorkDir)
	}

	for {
		path, ok, err := w.selector.SelectDirectory(ctx)
		if err != nil || !ok {
			return "", false, err
		}

		empty, err := isEmptyDir(path)
		if err != nil {
			return "", false, err
		}
		if !empty {
			w.prompter.Notice("Directory is not empty")
			continue
		}

		confirmed, err := w.prompter.Confirm("Are you sure you want to create a " + tmpl.Name + " InfinityMint at " + path)
		if err != nil {
			return "", false, err
		}
		if confirmed {
			return path, true, nil
		}
	}
}

func (w *Wizard) packageManager() (model.PackageManager, bool, error) {
	if w.defaults.PackageManager != "" {
		return w.defaults.PackageManager, true, nil
	}

	options := make([]string, len(model.PackageManagers))
	for i, pm := range model.PackageManagers {
		options[i] = string(pm)
	}

	picked, ok, err := w.pickOption("Which package manager would you like to use?", options)
	if err != nil || !ok {
		return "", false, err
	}
	return model.PackageManager(picked), true, nil
}

// obtain asks for a strategy and materializes the source. A failed clone
// asks again; any other failure ends the task.
func (w *Wizard) obtain(ctx context.Context, req *model.CreateRequest) (bool, error) {
	logger := logging.From(ctx)
	strategy := w.defaults.Strategy

	for {
		logger.Debug("Entering stage", slog.Any("stage", model.StageChoosingSource))

		if strategy == "" {
			index, err := w.prompter.Choice("How would you like to get the repository?", []string{"Use Git", "Fetch", exitChoice}, "")
			if err != nil {
				return false, err
			}
			switch index {
			case 0:
				strategy = model.StrategyClone
			case 1:
				strategy = model.StrategyArchive
			case 2:
				return false, nil
			default:
				w.prompter.Notice("Invalid Choice")
				continue
			}
		}
		req.Strategy = strategy

		if strategy == model.StrategyClone {
			w.prompter.Print(model.ToneWarn, "Cloning from "+req.SourceURL+" to "+req.Destination+" using git")
		} else {
			w.prompter.Print(model.ToneWarn, "Fetching "+req.SourceURL+" into "+req.Destination)
		}

		_, err := w.materializer.Materialize(ctx, req.SourceURL, req.Destination, strategy)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, types.ErrCloneFailed) {
			return false, err
		}

		logger.Warn("Clone failed", slog.Any("error", err))
		w.prompter.Print(model.ToneError, "Failed to clone repository. Please make sure you have git installed and that you have access to the repository. Please select 'Fetch'")
		strategy = ""
	}
}

func summary(tmpl *model.Template, bundler, language string) string {
	switch {
	case bundler != "" && language != "":
		return "Using " + bundler + " and " + language + " to create a " + tmpl.Name + " InfinityMint."
	case language != "":
		return "Using " + language + " to create a " + tmpl.Name + " InfinityMint."
	default:
		return "Creating a " + tmpl.Name + " InfinityMint."
	}
}

func isEmptyDir(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false, goerr.Wrap(err, "failed to read destination", goerr.V("path", path))
	}
	return len(entries) == 0, nil
}
