package usecase

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/0x0zAgency/create-infinitymint/pkg/domain/interfaces"
	"github.com/0x0zAgency/create-infinitymint/pkg/domain/model"
	"github.com/0x0zAgency/create-infinitymint/pkg/domain/types"
	"github.com/0x0zAgency/create-infinitymint/pkg/infra/archive"
	"github.com/0x0zAgency/create-infinitymint/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

type materializer struct {
	runner  interfaces.CommandRunner
	fetcher interfaces.ArchiveFetcher
	zipball interfaces.ZipballDownloader
	branch  string
}

// MaterializerOption configures the materializer.
type MaterializerOption func(*materializer)

// WithZipballFallback downloads github.com sources through the API when the
// conventional archive URL cannot be fetched.
func WithZipballFallback(d interfaces.ZipballDownloader) MaterializerOption {
	return func(m *materializer) {
		m.zipball = d
	}
}

// WithBranch sets the branch used to build the archive URL.
func WithBranch(branch string) MaterializerOption {
	return func(m *materializer) {
		if branch != "" {
			m.branch = branch
		}
	}
}

// NewMaterializer creates a new instance of MaterializerUseCase
func NewMaterializer(runner interfaces.CommandRunner, fetcher interfaces.ArchiveFetcher, opts ...MaterializerOption) interfaces.MaterializerUseCase {
	m := &materializer{
		runner:  runner,
		fetcher: fetcher,
		branch:  "master",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Materialize obtains sourceURL into destination
func (m *materializer) Materialize(ctx context.Context, sourceURL, destination string, strategy model.Strategy) (*model.ExtractResult, error) {
	switch strategy {
	case model.StrategyClone:
		if err := m.clone(ctx, sourceURL, destination); err != nil {
			return nil, err
		}
		return &model.ExtractResult{Destination: destination}, nil

	case model.StrategyArchive:
		return m.fetchArchive(ctx, sourceURL, destination)

	default:
		return nil, goerr.Wrap(types.ErrInvalidStrategy, "unsupported strategy", goerr.V("strategy", strategy))
	}
}

func (m *materializer) clone(ctx context.Context, sourceURL, destination string) error {
	logger := logging.From(ctx)
	logger.Debug("Entering stage", slog.Any("stage", model.StageCloning))

	logger.Info("Cloning repository",
		slog.String("source", sourceURL),
		slog.String("destination", destination),
	)

	code, err := m.runner.Run(ctx, "git", []string{"clone", sourceURL, destination}, interfaces.RunOpts{})
	if err != nil {
		return goerr.Wrap(types.ErrCloneFailed, "git could not be started",
			goerr.V("source", sourceURL),
			goerr.V("cause", err.Error()),
		)
	}
	if code != 0 {
		return goerr.Wrap(types.ErrCloneFailed, "git clone exited with non-zero code",
			goerr.V("source", sourceURL),
			goerr.V("exit_code", code),
		)
	}
	return nil
}

func (m *materializer) fetchArchive(ctx context.Context, sourceURL, destination string) (*model.ExtractResult, error) {
	logger := logging.From(ctx)
	logger.Debug("Entering stage", slog.Any("stage", model.StageFetching))

	url := model.ArchiveURL(sourceURL, m.branch)
	data, err := m.fetcher.Fetch(ctx, url)
	if err != nil {
		logger.Warn("Failed to fetch archive",
			slog.String("url", url),
			slog.Any("error", err),
		)

		data, err = m.fetchZipball(ctx, sourceURL, err)
		if err != nil {
			return nil, err
		}
	}

	logger.Info("Downloaded archive",
		slog.String("source", sourceURL),
		slog.Int("size_bytes", len(data)),
	)

	logger.Debug("Entering stage", slog.Any("stage", model.StageExtracting))
	entries, err := archive.Decode(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to extract zip", goerr.V("source", sourceURL))
	}

	result, err := Extract(ctx, entries, destination)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to extract zip", goerr.V("source", sourceURL))
	}

	logger.Info("Extracted archive",
		slog.String("destination", destination),
		slog.Int("file_count", len(result.Files)),
		slog.Int64("total_size_bytes", result.Size),
	)
	return result, nil
}

func (m *materializer) fetchZipball(ctx context.Context, sourceURL string, fetchErr error) ([]byte, error) {
	unavailable := goerr.Wrap(types.ErrSourceUnavailable, "failed to fetch template archive",
		goerr.V("source", sourceURL),
		goerr.V("cause", fetchErr.Error()),
	)

	if m.zipball == nil {
		return nil, unavailable
	}
	owner, repo, ok := model.ParseGitHubURL(sourceURL)
	if !ok {
		return nil, unavailable
	}

	logging.From(ctx).Info("Falling back to GitHub zipball of the default branch",
		slog.String("owner", owner),
		slog.String("repo", repo),
	)

	data, err := m.zipball.DownloadZipball(ctx, owner, repo, "")
	if err != nil {
		return nil, goerr.Wrap(types.ErrSourceUnavailable, "failed to fetch template archive",
			goerr.V("source", sourceURL),
			goerr.V("cause", fetchErr.Error()),
			goerr.V("fallback_cause", err.Error()),
		)
	}
	return data, nil
}

// CleanMetadata removes the .git directory left by a clone
func (m *materializer) CleanMetadata(ctx context.Context, destination string) error {
	logger := logging.From(ctx)
	logger.Debug("Entering stage", slog.Any("stage", model.StageCleaningMetadata))

	gitDir := filepath.Join(destination, ".git")
	if err := os.RemoveAll(gitDir); err != nil {
		return goerr.Wrap(err, "failed to remove version control metadata", goerr.V("path", gitDir))
	}
	return nil
}

// InstallDependencies runs the package manager install inside destination
func (m *materializer) InstallDependencies(ctx context.Context, destination string, pm model.PackageManager) error {
	logger := logging.From(ctx)
	logger.Debug("Entering stage", slog.Any("stage", model.StageInstallingDependencies))

	name, args := pm.InstallCommand()
	code, err := m.runner.Run(ctx, name, args, interfaces.RunOpts{Dir: destination})
	if err != nil {
		return goerr.Wrap(err, "failed to start package manager", goerr.V("package_manager", pm))
	}
	if code != 0 {
		return goerr.New("dependency installation failed",
			goerr.V("package_manager", pm),
			goerr.V("exit_code", code),
			goerr.V("destination", destination),
		)
	}
	return nil
}
