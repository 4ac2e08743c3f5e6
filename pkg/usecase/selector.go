package usecase

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/0x0zAgency/create-infinitymint/pkg/domain/interfaces"
	"github.com/0x0zAgency/create-infinitymint/pkg/domain/model"
	"github.com/0x0zAgency/create-infinitymint/pkg/domain/types"
	"github.com/0x0zAgency/create-infinitymint/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	actionBack       = "<Back>"
	actionUseCurrent = "<Use Current Directory>"
	actionNewFolder  = "<Make New Folder>"
	actionCancel     = "<Cancel>"
)

var browseActions = []string{actionBack, actionUseCurrent, actionNewFolder, actionCancel}

// Selector lets the user pick a destination directory interactively.
type Selector struct {
	prompter interfaces.Prompter
	lister   interfaces.DirectoryLister
	workDir  string
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithWorkDir sets the starting directory instead of the process working directory.
func WithWorkDir(dir string) SelectorOption {
	return func(s *Selector) {
		s.workDir = dir
	}
}

// NewSelector creates a Selector.
func NewSelector(prompter interfaces.Prompter, lister interfaces.DirectoryLister, opts ...SelectorOption) *Selector {
	s := &Selector{
		prompter: prompter,
		lister:   lister,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectDirectory implements interfaces.SelectorUseCase. The returned path
// uses forward slashes and ends with "/".
func (s *Selector) SelectDirectory(ctx context.Context) (string, bool, error) {
	logger := logging.From(ctx)

	root := s.workDir
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", false, goerr.Wrap(err, "failed to get working directory")
		}
		root = wd
	}

	state := model.NewNavigationState(root)
	for {
		logger.Debug("Directory selector step",
			slog.String("step", state.Step.String()),
			slog.String("path", state.CurrentPath),
		)

		var err error
		switch state.Step {
		case model.NavRoot:
			err = s.stepRoot(state)
		case model.NavBrowsing:
			err = s.stepBrowse(state)
		case model.NavCreating:
			err = s.stepCreate(state)
		case model.NavDone:
			return state.CurrentPath, true, nil
		case model.NavCancelled:
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
	}
}

func (s *Selector) stepRoot(state *model.NavigationState) error {
	state.CurrentPath = state.RootPath

	index, err := s.prompter.Choice("Select a directory", []string{
		"Current Directory",
		"Enter Directory",
		"Find Directory",
		"Cancel",
	}, "")
	if err != nil {
		return err
	}

	switch index {
	case 0:
		state.Step = model.NavDone
	case 1:
		return s.enterDirectory(state)
	case 2:
		state.Step = model.NavBrowsing
	case 3:
		state.Step = model.NavCancelled
	default:
		s.prompter.Notice("Invalid Choice")
	}
	return nil
}

func (s *Selector) enterDirectory(state *model.NavigationState) error {
	answer, err := s.prompter.Question("Enter a directory")
	if err != nil {
		return err
	}

	path := answer
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(state.RootPath, path)
	}
	if info, err := os.Stat(path); path == "" || err != nil || !info.IsDir() {
		s.prompter.Notice("Directory does not exist")
		return nil
	}

	state.CurrentPath = model.EnsureTrailingSlash(model.NormalizeSeparators(filepath.Clean(path)))
	state.Step = model.NavDone
	return nil
}

func (s *Selector) stepBrowse(state *model.NavigationState) error {
	names, err := s.lister.ListDirectories(state.CurrentPath)
	if err != nil {
		if !state.Back() {
			return err
		}
		s.prompter.Notice("Unable to read directory")
		return nil
	}

	choices := append(append([]string{}, names...), browseActions...)
	index, err := s.prompter.Choice("Select a directory", choices, "\nCurrent Directory: "+state.CurrentPath+"\n")
	if err != nil {
		return err
	}

	if index < 0 || index >= len(choices) {
		s.prompter.Notice("Invalid Choice")
		return nil
	}
	if index < len(names) {
		state.Enter(names[index])
		return nil
	}

	switch choices[index] {
	case actionBack:
		if !state.Back() {
			s.prompter.Notice("Already at the starting directory")
		}
	case actionUseCurrent:
		state.Step = model.NavDone
	case actionNewFolder:
		state.Step = model.NavCreating
	case actionCancel:
		state.Step = model.NavCancelled
	}
	return nil
}

func (s *Selector) stepCreate(state *model.NavigationState) error {
	answer, err := s.prompter.Question("Enter new folder name")
	if err != nil {
		return err
	}
	if answer == "" {
		state.Step = model.NavBrowsing
		return nil
	}

	name := model.FolderName(answer)
	if name == "" {
		s.prompter.Notice("Invalid folder name")
		return nil
	}

	if _, err := CreateFolder(state.CurrentPath, name); err != nil {
		if errors.Is(err, types.ErrDirectoryExists) {
			s.prompter.Notice("Directory already exists")
			return nil
		}
		return err
	}

	state.Enter(name)
	state.Step = model.NavBrowsing
	return nil
}

// CreateFolder creates parent/name and returns its trailing-slash path. It
// fails with types.ErrDirectoryExists, without touching the filesystem, when
// the path is already taken.
func CreateFolder(parent, name string) (string, error) {
	target := model.EnsureTrailingSlash(model.EnsureTrailingSlash(model.NormalizeSeparators(parent)) + name)

	if _, err := os.Stat(strings.TrimSuffix(target, "/")); err == nil {
		return "", goerr.Wrap(types.ErrDirectoryExists, "cannot create folder", goerr.V("path", target))
	} else if !os.IsNotExist(err) {
		return "", goerr.Wrap(err, "failed to check folder", goerr.V("path", target))
	}

	if err := os.Mkdir(target, 0755); err != nil {
		return "", goerr.Wrap(err, "failed to create folder", goerr.V("path", target))
	}
	return target, nil
}
