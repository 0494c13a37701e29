// Package app implements the application layer for bccproj.
package app

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/bccproj/internal/core/domain"
	"go.trai.ch/bccproj/internal/core/ports"
	"go.trai.ch/bccproj/internal/engine/buildtree"
	"go.trai.ch/bccproj/internal/engine/orchestrator"
	"go.trai.ch/bccproj/internal/engine/release"
	"go.trai.ch/zerr"
)

// RootEnvVar overrides the project root, which defaults to the working directory.
const RootEnvVar = "BCCPROJ_ROOT"

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	orchestrator *orchestrator.Orchestrator
	tree         *buildtree.Manager
	packager     *release.Packager
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	orch *orchestrator.Orchestrator,
	tree *buildtree.Manager,
	packager *release.Packager,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		orchestrator: orch,
		tree:         tree,
		packager:     packager,
		logger:       log,
	}
}

// NewTask resolves the project root, loads its configuration and parses argv
// into the task every command operates on.
func (a *App) NewTask(program string, argv []string) (*domain.Task, error) {
	root, err := projectRoot()
	if err != nil {
		return nil, err
	}

	cfg, err := a.configLoader.Load(root)
	if err != nil {
		return nil, err
	}

	return domain.NewTask(program, argv, domain.NewLayout(root), cfg), nil
}

func projectRoot() (string, error) {
	root := os.Getenv(RootEnvVar)
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
		}
		root = wd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "path", root)
	}
	return abs, nil
}

// MakeAll compiles every target and installs the default target's executable.
func (a *App) MakeAll(ctx context.Context, task *domain.Task) error {
	return a.orchestrator.CompileAll(ctx, task)
}

// MakeTarget compiles one target and installs its executable.
func (a *App) MakeTarget(ctx context.Context, task *domain.Task, target domain.Target) error {
	return a.orchestrator.CompileTarget(ctx, task, target)
}

// Release compiles every target and writes the release archives.
func (a *App) Release(ctx context.Context, task *domain.Task) error {
	return a.packager.Release(ctx, task)
}

// Create sets up the build and release directories.
func (a *App) Create(ctx context.Context, task *domain.Task) error {
	return a.tree.Create(ctx, task)
}

// Remove deletes build outputs and the build directories.
func (a *App) Remove(ctx context.Context, task *domain.Task) error {
	return a.tree.Remove(ctx, task)
}
