// Package dirlist lists subdirectories for the interactive directory browser.
package dirlist

import (
	"os"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultIgnore is the denylist used when none is configured.
var DefaultIgnore = []string{"node_modules"}

// Lister lists immediate subdirectories, dropping names that match the
// denylist. Patterns use .gitignore syntax. Hidden entries are kept.
type Lister struct {
	matcher gitignore.Matcher
}

// New creates a Lister with the given denylist patterns.
func New(patterns []string) *Lister {
	var ps []gitignore.Pattern
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" || strings.HasPrefix(p, "#") {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(p, nil))
	}
	return &Lister{matcher: gitignore.NewMatcher(ps)}
}

// ListDirectories implements interfaces.DirectoryLister. Symlinks are not followed.
func (l *Lister) ListDirectories(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read directory", goerr.V("path", path))
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if l.matcher.Match([]string{entry.Name()}, true) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
