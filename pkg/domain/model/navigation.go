package model

import "strings"

// NavStep is the state of the directory selector loop.
type NavStep int

const (
	NavRoot NavStep = iota
	NavBrowsing
	NavCreating
	NavDone
	NavCancelled
)

func (s NavStep) String() string {
	switch s {
	case NavRoot:
		return "root"
	case NavBrowsing:
		return "browsing"
	case NavCreating:
		return "creating"
	case NavDone:
		return "done"
	case NavCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// NavigationState is threaded through every step of the directory selector.
// CurrentPath is always forward-slash separated and ends with a single "/".
type NavigationState struct {
	Step        NavStep
	CurrentPath string
	RootPath    string
}

// NewNavigationState starts browsing at root.
func NewNavigationState(root string) *NavigationState {
	root = EnsureTrailingSlash(NormalizeSeparators(root))
	return &NavigationState{
		Step:        NavRoot,
		CurrentPath: root,
		RootPath:    root,
	}
}

// Enter appends a child directory name to the current path.
func (s *NavigationState) Enter(name string) {
	s.CurrentPath = EnsureTrailingSlash(s.CurrentPath + strings.Trim(NormalizeSeparators(name), "/"))
}

// Back moves to the parent of the current path. It never leaves RootPath and
// reports false when the current path is already the root.
func (s *NavigationState) Back() bool {
	parent := ParentPath(s.CurrentPath)
	if s.CurrentPath == s.RootPath || !strings.HasPrefix(parent, s.RootPath) {
		s.CurrentPath = s.RootPath
		return false
	}
	s.CurrentPath = parent
	return true
}

// NormalizeSeparators converts every backslash into a forward slash.
func NormalizeSeparators(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// EnsureTrailingSlash makes path end with exactly one "/".
func EnsureTrailingSlash(path string) string {
	return strings.TrimRight(path, "/") + "/"
}

// ParentPath drops the last segment of a trailing-slash terminated path.
// "/a/b/" becomes "/a/", and "/a/" or "/" become "/".
func ParentPath(path string) string {
	segments := strings.Split(EnsureTrailingSlash(path), "/")
	if len(segments) <= 2 {
		return "/"
	}
	return strings.Join(segments[:len(segments)-2], "/") + "/"
}

// FolderName reduces user input for a new folder to a single child name.
// Nested input such as "a/b" collapses to "a". It returns "" when nothing usable remains.
func FolderName(input string) string {
	for _, segment := range strings.Split(NormalizeSeparators(strings.TrimSpace(input)), "/") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		if segment == "." || segment == ".." {
			return ""
		}
		return segment
	}
	return ""
}
