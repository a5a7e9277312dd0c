package delegate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Runner invokes the downstream installer. The installer is an external
// collaborator: it is located, executed, and its exit status surfaced
// unchanged — nothing about its behavior is interpreted here.
type Runner struct {
	stdout *os.File
	stderr *os.File
	stdin  *os.File
}

func NewRunner() *Runner {
	return &Runner{
		stdout: os.Stdout,
		stderr: os.Stderr,
		stdin:  os.Stdin,
	}
}

// Run executes path with args, using dir as the working directory. The
// working directory is threaded in explicitly; the orchestrator's own
// process never changes directory.
func (r *Runner) Run(ctx context.Context, path, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	cmd.Stdin = r.stdin

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("installer %s failed: %w", path, err)
	}
	return nil
}

// ExitCode extracts the child's exit status from a Run error: the status is
// propagated verbatim when the installer ran and failed, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
