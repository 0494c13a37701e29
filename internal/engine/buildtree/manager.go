// Package buildtree creates and tears down the per-target build directories.
package buildtree

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/bccproj/internal/core/domain"
	"go.trai.ch/bccproj/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager owns the build directory skeleton of a project.
type Manager struct {
	tool   ports.BuildTool
	marker ports.VersionMarker
	logger ports.Logger
}

// New creates a new Manager.
func New(tool ports.BuildTool, marker ports.VersionMarker, logger ports.Logger) *Manager {
	return &Manager{
		tool:   tool,
		marker: marker,
		logger: logger,
	}
}

// Create builds the skeleton of every target when the build root is absent and
// makes sure the release directory exists. It is a no-op for an existing tree.
// If the skeleton can only be created partially, the directories created by this
// call are removed again.
func (m *Manager) Create(_ context.Context, task *domain.Task) error {
	exists, err := dirExists(task.Layout.BuildDir())
	if err != nil {
		return err
	}

	if exists {
		m.logger.Debug("build tree already exists")
	} else if err := m.createSkeleton(task.Layout); err != nil {
		return err
	}

	if err := os.MkdirAll(task.Layout.ReleaseDir(), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDirectoryCreateFailed.Error()), "path", task.Layout.ReleaseDir())
	}
	return nil
}

func (m *Manager) createSkeleton(layout domain.Layout) error {
	dirs := []string{layout.BuildDir()}
	for _, target := range domain.Targets {
		dirs = append(dirs, layout.TargetSkeleton(target)...)
	}

	created := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if err := os.Mkdir(dir, domain.DirPerm); err != nil {
			rollback(created)
			return zerr.With(zerr.Wrap(err, domain.ErrBuildTreeIncomplete.Error()), "path", dir)
		}
		created = append(created, dir)
		m.logger.Debug("created " + dir)
	}
	return nil
}

func rollback(created []string) {
	for i := len(created) - 1; i >= 0; i-- {
		_ = os.Remove(created[i])
	}
}

// Remove deletes the build executables, the object files reported by the build
// tool and the skeleton, clears the development version stamp, and finally
// deletes the executable in the project root. Directories are removed without
// recursion, so anything left behind by the build tool makes Remove fail.
func (m *Manager) Remove(ctx context.Context, task *domain.Task) error {
	exists, err := pathExists(task.Layout.BuildDir())
	if err != nil {
		return err
	}

	if exists {
		if err := m.removeTree(ctx, task); err != nil {
			return err
		}
	}

	return removeFile(task.Layout.ProjectExe())
}

func (m *Manager) removeTree(ctx context.Context, task *domain.Task) error {
	for _, target := range domain.Targets {
		if err := m.removeTarget(ctx, task, target); err != nil {
			return err
		}
	}

	if err := m.marker.Clear(ctx, task); err != nil {
		m.logger.Warn(err.Error())
	}

	return removeDir(task.Layout.BuildDir())
}

func (m *Manager) removeTarget(ctx context.Context, task *domain.Task, target domain.Target) error {
	exists, err := pathExists(task.Layout.TargetDir(target))
	if err != nil || !exists {
		return err
	}

	if err := removeFile(task.Layout.TargetExe(target)); err != nil {
		return err
	}

	objects, err := m.tool.ListObjectFiles(ctx, task, target)
	if err != nil {
		return err
	}
	for _, obj := range objects {
		if err := removeFile(obj); err != nil {
			return err
		}
	}

	skeleton := task.Layout.TargetSkeleton(target)
	for i := len(skeleton) - 1; i >= 0; i-- {
		if err := removeDir(skeleton[i]); err != nil {
			return err
		}
	}
	m.logger.Debug("removed " + task.Layout.TargetDir(target))
	return nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
}

// dirExists reports whether path exists. An existing path that is not a
// directory cannot hold the skeleton and is reported as ErrBuildTreeIncomplete.
func dirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}
	if !info.IsDir() {
		return false, zerr.With(domain.ErrBuildTreeIncomplete, "path", path)
	}
	return true, nil
}

func removeFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrFileRemoveFailed.Error()), "path", path)
	}
	return nil
}

func removeDir(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrDirectoryRemoveFailed.Error()), "path", path)
	}
	return nil
}
