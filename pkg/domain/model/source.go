package model

import (
	"net/url"
	"strings"
)

// ArchiveURL returns the conventional branch archive location of a repository URL.
func ArchiveURL(sourceURL, branch string) string {
	if branch == "" {
		branch = "master"
	}
	base := strings.TrimSuffix(strings.TrimRight(strings.TrimSpace(sourceURL), "/"), ".git")
	return base + "/archive/refs/heads/" + branch + ".zip"
}

// ParseGitHubURL extracts owner and repository from a github.com repository URL.
// It accepts https URLs with or without a ".git" suffix.
func ParseGitHubURL(raw string) (owner, repo string, ok bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || !strings.EqualFold(u.Hostname(), "github.com") {
		return "", "", false
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), true
}
