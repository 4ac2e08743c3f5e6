package model

import (
	"strings"

	"github.com/0x0zAgency/create-infinitymint/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Strategy is how a template source is obtained.
type Strategy string

const (
	StrategyClone   Strategy = "clone"
	StrategyArchive Strategy = "archive"
)

// ParseStrategy accepts "clone"/"git" and "archive"/"fetch". Empty input yields "".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "clone", "git":
		return StrategyClone, nil
	case "archive", "fetch", "zip":
		return StrategyArchive, nil
	default:
		return "", goerr.Wrap(types.ErrInvalidStrategy, "unknown strategy", goerr.V("strategy", s))
	}
}

// PackageManager installs dependencies into a created project.
type PackageManager string

const (
	PackageManagerNPM  PackageManager = "npm"
	PackageManagerYarn PackageManager = "yarn"
	PackageManagerPNPM PackageManager = "pnpm"
)

// PackageManagers lists supported managers in prompt order.
var PackageManagers = []PackageManager{PackageManagerNPM, PackageManagerYarn, PackageManagerPNPM}

// ParsePackageManager validates s. Empty input yields "".
func ParsePackageManager(s string) (PackageManager, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	for _, pm := range PackageManagers {
		if string(pm) == s {
			return pm, nil
		}
	}
	return "", goerr.Wrap(types.ErrInvalidPackageManager, "unknown package manager", goerr.V("package_manager", s))
}

// InstallCommand returns the executable and arguments that install dependencies.
func (p PackageManager) InstallCommand() (string, []string) {
	return string(p), []string{"install"}
}

// Stage is a step of the create flow.
type Stage string

const (
	StageChoosingSource         Stage = "choosing_source"
	StageCloning                Stage = "cloning"
	StageFetching               Stage = "fetching"
	StageExtracting             Stage = "extracting"
	StageCleaningMetadata       Stage = "cleaning_metadata"
	StageInstallingDependencies Stage = "installing_dependencies"
	StageDone                   Stage = "done"
)

// Tone selects how a status line is colored on the terminal.
type Tone int

const (
	TonePlain Tone = iota
	ToneTitle
	ToneInfo
	ToneHighlight
	ToneSuccess
	ToneWarn
	ToneError
)
