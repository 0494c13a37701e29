// Package orchestrator compiles build targets and installs the resulting executable.
package orchestrator

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/bccproj/internal/core/domain"
	"go.trai.ch/bccproj/internal/core/ports"
	"go.trai.ch/zerr"
)

// Orchestrator runs the version marker and the build tool for each target.
type Orchestrator struct {
	tool   ports.BuildTool
	marker ports.VersionMarker
	logger ports.Logger
}

// New creates a new Orchestrator.
func New(tool ports.BuildTool, marker ports.VersionMarker, logger ports.Logger) *Orchestrator {
	return &Orchestrator{
		tool:   tool,
		marker: marker,
		logger: logger,
	}
}

// CompileAll compiles every target in order and copies the default target's
// executable into the project root. The first failing target stops the run.
func (o *Orchestrator) CompileAll(ctx context.Context, task *domain.Task) error {
	for _, target := range domain.Targets {
		if err := o.compile(ctx, task, target); err != nil {
			return err
		}
	}
	return o.install(task, domain.DefaultTarget)
}

// CompileTarget compiles a single target and copies its executable into the
// project root.
func (o *Orchestrator) CompileTarget(ctx context.Context, task *domain.Task, target domain.Target) error {
	if err := o.compile(ctx, task, target); err != nil {
		return err
	}
	return o.install(task, target)
}

func (o *Orchestrator) compile(ctx context.Context, task *domain.Task, target domain.Target) error {
	if err := o.marker.Mark(ctx, task); err != nil {
		o.logger.Warn(err.Error())
	}

	o.logger.Debug("building " + target.String())
	if err := o.tool.Build(ctx, task, target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "target", target.String())
	}
	return nil
}

// install copies the target executable into the project root. A missing
// executable is skipped; build tools may be invoked with goals that produce none.
func (o *Orchestrator) install(task *domain.Task, target domain.Target) error {
	src := task.Layout.TargetExe(target)
	dst := task.Layout.ProjectExe()

	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			o.logger.Debug("no executable at " + src + ", skipping copy")
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", src)
	}

	if err := copyFile(src, dst); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "src", src), "dst", dst)
	}
	o.logger.Debug("copied " + src + " to " + dst)
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // path comes from the project layout
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // read-only

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.ExePerm) //nolint:gosec // executable
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	// OpenFile keeps the mode of an existing file.
	return os.Chmod(dst, domain.ExePerm)
}
