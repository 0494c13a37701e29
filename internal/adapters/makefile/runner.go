// Package makefile drives the external build program through the project's makefiles.
package makefile

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/bccproj/internal/core/domain"
	"go.trai.ch/bccproj/internal/core/ports"
	"go.trai.ch/zerr"
)

// ShowObjectsTarget is the makefile target that prints the object files of a build.
const ShowObjectsTarget = "show-objects"

var _ ports.BuildTool = (*Runner)(nil)

// Runner implements ports.BuildTool on top of GNU Make or pomake.
type Runner struct {
	executor ports.Executor
}

// NewRunner creates a new Runner.
func NewRunner(executor ports.Executor) *Runner {
	return &Runner{executor: executor}
}

// Build compiles the target with the configured build program.
func (r *Runner) Build(ctx context.Context, task *domain.Task, target domain.Target) error {
	inv, err := BuildInvocation(task, target)
	if err != nil {
		return err
	}

	if err := r.executor.Run(ctx, inv); err != nil {
		msg := "failed to execute " + task.Config.BuildTool.Program() + " command"
		return zerr.With(zerr.Wrap(err, msg), "backend", task.Config.BuildTool.String())
	}
	return nil
}

// ListObjectFiles asks the makefile for the objects it produces for the target.
// The answer must be exactly one line of whitespace-separated paths.
func (r *Runner) ListObjectFiles(ctx context.Context, task *domain.Task, target domain.Target) ([]string, error) {
	switch task.Config.BuildTool {
	case domain.BuildToolGNU:
	case domain.BuildToolPomake:
		return nil, zerr.With(domain.ErrObjectListUnsupported, "backend", task.Config.BuildTool.String())
	default:
		return nil, zerr.With(domain.ErrInvalidMakeOption, "backend", task.Config.BuildTool.String())
	}

	dir := task.Layout.MakefileDir()
	inv := domain.Invocation{
		Name: task.Config.BuildTool.Program(),
		Args: []string{"-I", dir, "-f", filepath.Join(dir, target.Makefile()), ShowObjectsTarget},
		Dir:  task.Layout.Root(),
	}

	lines, err := r.executor.Output(ctx, inv)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrObjectListFailed.Error()), "target", target.String())
	}
	if len(lines) != 1 {
		return nil, zerr.With(zerr.With(domain.ErrObjectListFailed, "target", target.String()), "lines", len(lines))
	}

	fields := strings.Fields(lines[0])
	objects := make([]string, 0, len(fields))
	for _, f := range fields {
		if !filepath.IsAbs(f) {
			f = filepath.Join(task.Layout.Root(), f)
		}
		objects = append(objects, filepath.Clean(f))
	}
	return objects, nil
}

// BuildInvocation returns the command line that compiles the target.
func BuildInvocation(task *domain.Task, target domain.Target) (domain.Invocation, error) {
	var args []string
	switch task.Config.BuildTool {
	case domain.BuildToolGNU:
		dir := task.Layout.MakefileDir()
		args = []string{"-I", dir, "-f", filepath.Join(dir, target.Makefile())}
	case domain.BuildToolPomake:
		args = []string{"/f", filepath.Join(task.Layout.PomakeMakefileDir(), target.Makefile())}
	default:
		return domain.Invocation{}, zerr.With(domain.ErrInvalidMakeOption, "backend", task.Config.BuildTool.String())
	}

	if task.Config.StripExe {
		args = append(args, "STRIP_EXE=1")
	}
	args = append(args, task.Args...)

	return domain.Invocation{
		Name: task.Config.BuildTool.Program(),
		Args: args,
		Dir:  task.Layout.Root(),
	}, nil
}
