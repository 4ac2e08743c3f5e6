package types

import "errors"

var (
	// ErrCloneFailed means the clone subprocess could not produce the repository.
	// Callers may retry with another strategy.
	ErrCloneFailed = errors.New("clone failed")

	// ErrSourceUnavailable means no strategy could retrieve the template source.
	ErrSourceUnavailable = errors.New("source unavailable")

	ErrDirectoryExists   = errors.New("directory already exists")
	ErrDirectoryNotFound = errors.New("directory does not exist")

	ErrInvalidCatalog        = errors.New("invalid template catalog")
	ErrInvalidStrategy       = errors.New("invalid strategy")
	ErrInvalidPackageManager = errors.New("invalid package manager")

	// ErrUnsafePath is returned for archive entries that would land outside the destination.
	ErrUnsafePath = errors.New("unsafe archive path")
)
