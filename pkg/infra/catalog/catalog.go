// Package catalog loads the template catalog offered by the top menu.
package catalog

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/0x0zAgency/create-infinitymint/pkg/domain/model"
	"github.com/0x0zAgency/create-infinitymint/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed default.toml
var defaultCatalog []byte

// Default returns the built-in catalog.
func Default() (*model.Catalog, error) {
	return parseTOML(defaultCatalog)
}

// Load reads a catalog file. ".yaml" and ".yml" are decoded as YAML,
// everything else as TOML. An empty path returns the built-in catalog.
func Load(path string) (*model.Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read catalog file", goerr.V("path", path))
	}

	var catalog *model.Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		catalog, err = parseYAML(data)
	default:
		catalog, err = parseTOML(data)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load catalog", goerr.V("path", path))
	}
	return catalog, nil
}

func parseTOML(data []byte) (*model.Catalog, error) {
	var catalog model.Catalog
	if err := toml.Unmarshal(data, &catalog); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidCatalog, "failed to decode TOML", goerr.V("error", err.Error()))
	}
	return finish(&catalog)
}

func parseYAML(data []byte) (*model.Catalog, error) {
	var catalog model.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidCatalog, "failed to decode YAML", goerr.V("error", err.Error()))
	}
	return finish(&catalog)
}

func finish(catalog *model.Catalog) (*model.Catalog, error) {
	if catalog.Title == "" {
		catalog.Title = "Create Infinitymint Utility"
	}
	if catalog.Question == "" {
		catalog.Question = "What would you like to create?"
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}
