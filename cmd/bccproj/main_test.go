package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/bccproj/internal/app"
	"go.trai.ch/bccproj/internal/core/domain"
	"go.trai.ch/bccproj/internal/core/ports/mocks"
	"go.trai.ch/bccproj/internal/engine/buildtree"
	"go.trai.ch/bccproj/internal/engine/orchestrator"
	"go.trai.ch/bccproj/internal/engine/release"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader *mocks.MockConfigLoader
	tool   *mocks.MockBuildTool
	marker *mocks.MockVersionMarker
	logger *mocks.MockLogger
	app    *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		loader: mocks.NewMockConfigLoader(ctrl),
		tool:   mocks.NewMockBuildTool(ctrl),
		marker: mocks.NewMockVersionMarker(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.logger.EXPECT().SetProgram("bccproj").AnyTimes()

	orch := orchestrator.New(f.tool, f.marker, f.logger)
	f.app = app.New(
		f.loader,
		orch,
		buildtree.New(f.tool, f.marker, f.logger),
		release.New(orch, mocks.NewMockVersionProber(ctrl), mocks.NewMockArchiver(ctrl),
			mocks.NewMockHasher(ctrl), f.logger),
		f.logger,
	)
	return f
}

func (f *fixture) provider(_ context.Context) (*app.Components, func(), error) {
	return &app.Components{App: f.app, Logger: f.logger}, func() {}, nil
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	f := newFixture(t)
	root := t.TempDir()
	t.Setenv(app.RootEnvVar, root)
	f.loader.EXPECT().Load(root).Return(domain.DefaultConfig(), nil)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), "bccproj", []string{"create"}, stdout, stderr, f.provider)

	assert.Equal(t, 0, exitCode)
	assert.Empty(t, stderr.String())
	assert.DirExists(t, filepath.Join(root, "build", "x86", "parse", "token"))
	assert.DirExists(t, filepath.Join(root, "releases"))
}

// TestRun_Help verifies that help prints the usage and succeeds.
func TestRun_Help(t *testing.T) {
	f := newFixture(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), "bccproj", []string{"help"}, stdout, io.Discard, f.provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "Usage: bccproj [command]")
}

// TestRun_NoCommand verifies that a missing command prints the usage and fails silently.
func TestRun_NoCommand(t *testing.T) {
	f := newFixture(t)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), "bccproj", []string{"bogus"}, stdout, stderr, f.provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stdout.String(), "Usage: bccproj [command]")
	assert.Empty(t, stderr.String())
}

// TestRun_ProgramName verifies that diagnostics carry the program name run was given.
func TestRun_ProgramName(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Setenv(app.RootEnvVar, t.TempDir())

	loader := mocks.NewMockConfigLoader(ctrl)
	tool := mocks.NewMockBuildTool(ctrl)
	marker := mocks.NewMockVersionMarker(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	orch := orchestrator.New(tool, marker, log)
	a := app.New(
		loader,
		orch,
		buildtree.New(tool, marker, log),
		release.New(orch, mocks.NewMockVersionProber(ctrl), mocks.NewMockArchiver(ctrl),
			mocks.NewMockHasher(ctrl), log),
		log,
	)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: a, Logger: log}, func() {}, nil
	}

	loader.EXPECT().Load(gomock.Any()).Return(domain.Config{}, domain.ErrConfigParseFailed)
	gomock.InOrder(
		log.EXPECT().SetProgram("bcc-tool"),
		log.EXPECT().Error(gomock.Any()),
	)

	exitCode := run(context.Background(), "bcc-tool", []string{"create"}, io.Discard, io.Discard, provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), "bccproj", []string{"help"}, io.Discard, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "bccproj: error: init failed\n", stderr.String())
}

// TestRun_ExecutionError verifies that run reports the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	f := newFixture(t)
	t.Setenv(app.RootEnvVar, t.TempDir())

	cfg := domain.DefaultConfig()
	cfg.BuildTool = domain.BuildToolUnknown
	f.loader.EXPECT().Load(gomock.Any()).Return(cfg, nil)
	f.marker.EXPECT().Mark(gomock.Any(), gomock.Any()).Return(nil)
	f.tool.EXPECT().Build(gomock.Any(), gomock.Any(), domain.TargetX64).Return(domain.ErrInvalidMakeOption)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrInvalidMakeOption.Error())
	})

	exitCode := run(context.Background(), "bccproj", []string{"make-x64"}, io.Discard, io.Discard, f.provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_Signal verifies that a canceled context stops the running command.
func TestRun_Signal(t *testing.T) {
	f := newFixture(t)
	t.Setenv(app.RootEnvVar, t.TempDir())

	started := make(chan struct{})
	f.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(), nil)
	f.marker.EXPECT().Mark(gomock.Any(), gomock.Any()).Return(nil)
	f.tool.EXPECT().Build(gomock.Any(), gomock.Any(), domain.TargetX86).
		DoAndReturn(func(ctx context.Context, _ *domain.Task, _ domain.Target) error {
			close(started)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(5 * time.Second):
				return errors.New("timeout in mock")
			}
		})
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, context.Canceled)
	})

	ctx, cancel := context.WithCancel(context.Background())
	exitCh := make(chan int)
	go func() {
		exitCh <- run(ctx, "bccproj", []string{"make-all"}, io.Discard, io.Discard, f.provider)
	}()

	<-started
	cancel()

	select {
	case ret := <-exitCh:
		assert.Equal(t, 1, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("run() did not return after cancellation")
	}
}
