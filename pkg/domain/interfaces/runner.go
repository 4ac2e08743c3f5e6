package interfaces

import "context"

// RunOpts holds optional parameters for command execution.
type RunOpts struct {
	Dir string
}

// CommandRunner runs external commands with the terminal attached.
type CommandRunner interface {
	// Run returns the exit code when the process ran, and an error only when it
	// could not be started or waited for.
	Run(ctx context.Context, name string, args []string, opts RunOpts) (int, error)
}
