package interfaces

import (
	"context"

	"github.com/0x0zAgency/create-infinitymint/pkg/domain/model"
)

// MaterializerUseCase populates a destination directory from a template source.
type MaterializerUseCase interface {
	// Materialize obtains sourceURL into destination with strategy.
	Materialize(ctx context.Context, sourceURL, destination string, strategy model.Strategy) (*model.ExtractResult, error)

	// CleanMetadata removes version-control metadata left in destination.
	CleanMetadata(ctx context.Context, destination string) error

	// InstallDependencies runs the package manager install in destination.
	InstallDependencies(ctx context.Context, destination string, pm model.PackageManager) error
}

// SelectorUseCase lets the user pick a destination directory.
type SelectorUseCase interface {
	// SelectDirectory returns the chosen path, or ok=false when the user cancelled.
	SelectDirectory(ctx context.Context) (path string, ok bool, err error)
}
