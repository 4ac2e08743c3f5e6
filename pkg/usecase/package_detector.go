package usecase

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/0x0zAgency/create-infinitymint/pkg/domain/model"
	"github.com/0x0zAgency/create-infinitymint/pkg/utils/logging"
)

// lockfiles in lookup order. A template that ships several is treated as pnpm first.
var lockfiles = []struct {
	name string
	pm   model.PackageManager
}{
	{"pnpm-lock.yaml", model.PackageManagerPNPM},
	{"yarn.lock", model.PackageManagerYarn},
	{"package-lock.json", model.PackageManagerNPM},
}

// DetectPackageManager guesses the package manager of a materialized
// template from its lockfile. ok is false when no lockfile is present.
func DetectPackageManager(ctx context.Context, dir string) (model.PackageManager, bool) {
	for _, lf := range lockfiles {
		info, err := os.Stat(filepath.Join(dir, lf.name))
		if err != nil || info.IsDir() {
			continue
		}

		logging.From(ctx).Debug("Detected package manager",
			slog.String("lockfile", lf.name),
			slog.String("package_manager", string(lf.pm)),
		)
		return lf.pm, true
	}
	return "", false
}
