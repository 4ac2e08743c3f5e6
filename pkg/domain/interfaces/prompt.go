package interfaces

import "github.com/0x0zAgency/create-infinitymint/pkg/domain/model"

// Prompter is the interactive input source of one session.
type Prompter interface {
	// Choice lists choices and returns the 0-based index picked by the user,
	// or -1 when the answer matched nothing. Out-of-range numbers are re-asked.
	Choice(query string, choices []string, help string) (int, error)

	// Question returns the trimmed answer, "" for an empty line.
	Question(query string) (string, error)

	// Confirm asks a yes/no question until it gets an answer.
	Confirm(query string) (bool, error)

	// Notice shows a short error, pauses, and clears the screen.
	Notice(msg string)

	// Print writes one status line.
	Print(tone model.Tone, msg string)
}

// DirectoryLister returns the names of immediate subdirectories of a path.
type DirectoryLister interface {
	ListDirectories(path string) ([]string, error)
}
