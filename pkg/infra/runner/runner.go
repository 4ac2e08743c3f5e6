// Package runner starts external commands attached to the current terminal.
package runner

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/0x0zAgency/create-infinitymint/pkg/domain/interfaces"
	"github.com/0x0zAgency/create-infinitymint/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Runner is the production interfaces.CommandRunner.
type Runner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithStdio replaces the inherited standard streams.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

// New creates a Runner that inherits the process stdio.
func New(opts ...Option) *Runner {
	r := &Runner{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run implements interfaces.CommandRunner.
func (r *Runner) Run(ctx context.Context, name string, args []string, opts interfaces.RunOpts) (int, error) {
	logger := logging.From(ctx)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	logger.Debug("Running command",
		slog.String("name", name),
		slog.Any("args", args),
		slog.String("dir", opts.Dir),
	)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logger.Debug("Command exited with non-zero code",
				slog.String("name", name),
				slog.Int("exit_code", exitErr.ExitCode()),
			)
			return exitErr.ExitCode(), nil
		}
		return -1, goerr.Wrap(err, "failed to run command", goerr.V("name", name), goerr.V("args", args))
	}

	return 0, nil
}
