package model

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/0x0zAgency/create-infinitymint/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Catalog is the set of starter templates offered by the top menu.
type Catalog struct {
	Title     string     `toml:"title" yaml:"title"`
	Subtitle  string     `toml:"subtitle" yaml:"subtitle"`
	Question  string     `toml:"question" yaml:"question"`
	Templates []Template `toml:"templates" yaml:"templates"`
}

// Template describes one kind of project that can be created.
type Template struct {
	Key         string   `toml:"key" yaml:"key"`
	Name        string   `toml:"name" yaml:"name"`
	Description string   `toml:"description" yaml:"description"`
	Framework   string   `toml:"framework" yaml:"framework"`
	Bundlers    []string `toml:"bundlers" yaml:"bundlers"`
	Languages   []string `toml:"languages" yaml:"languages"`
	// URL is a text/template over SourceParams.
	URL      string `toml:"url" yaml:"url"`
	NextStep string `toml:"next_step" yaml:"next_step"`
}

// SourceParams are the values available to Template.URL.
type SourceParams struct {
	Framework string
	Language  string
	Bundler   string
}

// Validate checks that every template is usable and keys are unique.
func (c *Catalog) Validate() error {
	if len(c.Templates) == 0 {
		return goerr.Wrap(types.ErrInvalidCatalog, "catalog has no templates")
	}

	seen := make(map[string]bool, len(c.Templates))
	for i, t := range c.Templates {
		if t.Key == "" || t.Name == "" || t.URL == "" {
			return goerr.Wrap(types.ErrInvalidCatalog, "template requires key, name and url", goerr.V("index", i))
		}
		if seen[t.Key] {
			return goerr.Wrap(types.ErrInvalidCatalog, "duplicated template key", goerr.V("key", t.Key))
		}
		seen[t.Key] = true

		if _, err := template.New(t.Key).Parse(t.URL); err != nil {
			return goerr.Wrap(types.ErrInvalidCatalog, "template url does not parse", goerr.V("key", t.Key), goerr.V("error", err.Error()))
		}
	}
	return nil
}

// Find returns the template with key, or nil.
func (c *Catalog) Find(key string) *Template {
	for i := range c.Templates {
		if strings.EqualFold(c.Templates[i].Key, key) {
			return &c.Templates[i]
		}
	}
	return nil
}

// Names returns template names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Templates))
	for i, t := range c.Templates {
		names[i] = t.Name
	}
	return names
}

// SourceURL renders the template URL. Parameters are lower-cased.
func (t *Template) SourceURL(params SourceParams) (string, error) {
	tmpl, err := template.New(t.Key).Option("missingkey=error").Parse(t.URL)
	if err != nil {
		return "", goerr.Wrap(err, "failed to parse template url", goerr.V("key", t.Key))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, SourceParams{
		Framework: strings.ToLower(params.Framework),
		Language:  strings.ToLower(params.Language),
		Bundler:   strings.ToLower(params.Bundler),
	}); err != nil {
		return "", goerr.Wrap(err, "failed to render template url", goerr.V("key", t.Key))
	}
	return buf.String(), nil
}

// CreateRequest carries every choice made for one creation task.
type CreateRequest struct {
	Template       *Template
	Params         SourceParams
	SourceURL      string
	Destination    string
	Strategy       Strategy
	PackageManager PackageManager
	SkipInstall    bool
}

// NextStep returns the guidance command shown after a successful creation.
func (r *CreateRequest) NextStep() string {
	cmd := "npx infinitymint"
	if r.Template != nil && r.Template.NextStep != "" {
		cmd = r.Template.NextStep
	}
	return "cd " + r.Destination + " && " + cmd
}
