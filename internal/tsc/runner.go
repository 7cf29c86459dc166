// Package tsc invokes a TypeScript-compatible compiler and captures
// its diagnostic stream.
package tsc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Runner produces raw diagnostic text for a working directory. The
// parser and editor are tested against literal fixtures through this
// seam instead of a real compiler.
type Runner interface {
	Diagnostics(ctx context.Context, dir string) (string, error)
}

// Options selects the compiler executable and its arguments.
type Options struct {
	// Command is the executable to launch, e.g. "npx".
	Command string
	// Args precede the diagnostic flags, e.g. ["tsc"].
	Args []string
	// Project is an optional tsconfig path passed via --project.
	Project string
}

// DefaultOptions runs tsc through npx, the way a checked-out frontend
// project normally carries its compiler.
func DefaultOptions() Options {
	return Options{Command: "npx", Args: []string{"tsc"}}
}

// CommandRunner shells out to the configured compiler with unused-code
// detection on and emit off. The compiler reports diagnostics on
// stderr and exits non-zero whenever any exist; that exit status is
// expected and is not an error here. Only a failure to launch the
// process at all is fatal.
type CommandRunner struct {
	opts Options
}

func NewCommandRunner(opts Options) *CommandRunner {
	if opts.Command == "" {
		opts = DefaultOptions()
	}
	return &CommandRunner{opts: opts}
}

func (r *CommandRunner) Diagnostics(ctx context.Context, dir string) (string, error) {
	args := append([]string{}, r.opts.Args...)
	args = append(args, "--noUnusedLocals", "--noUnusedParameters", "--noEmit")
	if r.opts.Project != "" {
		args = append(args, "--project", r.opts.Project)
	}

	cmd := exec.CommandContext(ctx, r.opts.Command, args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("tsc: failed to run %q: %w", r.opts.Command, err)
		}
		if ctx.Err() != nil {
			return "", fmt.Errorf("tsc: %w", ctx.Err())
		}
	}
	return stderr.String(), nil
}
