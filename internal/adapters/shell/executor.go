// Package shell provides the process executor adapter.
package shell

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/bccproj/internal/core/domain"
	"go.trai.ch/bccproj/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates a new Executor that passes child output through to the
// process's own stdout and stderr.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetOutput redirects the pass-through streams of child processes.
func (e *Executor) SetOutput(stdout, stderr io.Writer) {
	e.stdout = stdout
	e.stderr = stderr
}

// Run executes the invocation and blocks until it exits.
func (e *Executor) Run(ctx context.Context, inv domain.Invocation) error {
	cmd := e.command(ctx, inv)
	cmd.Stdout = e.stdout
	return e.run(cmd, inv)
}

// Output executes the invocation and returns its stdout split into lines.
// Trailing whitespace, including carriage returns, is removed from every line.
func (e *Executor) Output(ctx context.Context, inv domain.Invocation) ([]string, error) {
	var buf bytes.Buffer
	cmd := e.command(ctx, inv)
	cmd.Stdout = &buf
	if err := e.run(cmd, inv); err != nil {
		return nil, err
	}

	var lines []string
	scanner := bufio.NewScanner(&buf)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), " \t\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read command output"), "command", inv.Name)
	}
	return lines, nil
}

func (e *Executor) command(ctx context.Context, inv domain.Invocation) *exec.Cmd {
	cmd := exec.CommandContext(ctx, inv.Name, inv.Args...) //nolint:gosec // invocations are built from config
	cmd.Dir = inv.Dir
	cmd.Stdin = os.Stdin
	cmd.Stderr = e.stderr
	return cmd
}

func (e *Executor) run(cmd *exec.Cmd, inv domain.Invocation) error {
	e.logger.Debug("exec " + inv.String())

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, domain.ErrCommandFailed.Error()), "exit_code", exitCode)
	}
	return nil
}
