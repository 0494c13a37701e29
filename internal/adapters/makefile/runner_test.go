package makefile_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bccproj/internal/adapters/makefile"
	"go.trai.ch/bccproj/internal/core/domain"
	"go.trai.ch/bccproj/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const root = "/work/bcc"

func newTask(argv []string, mutate func(*domain.Config)) *domain.Task {
	cfg := domain.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return domain.NewTask("bccproj", argv, domain.NewLayout(root), cfg)
}

func TestRunner_Build(t *testing.T) {
	mkdir := filepath.Join(root, "scripts", "makefiles")

	tests := []struct {
		name     string
		argv     []string
		target   domain.Target
		mutate   func(*domain.Config)
		expected domain.Invocation
	}{
		{
			name:   "gnu with pass-through",
			argv:   []string{"make-x64", "-j4"},
			target: domain.TargetX64,
			expected: domain.Invocation{
				Name: "make",
				Args: []string{"-I", mkdir, "-f", filepath.Join(mkdir, "build_x64.mk"), "-j4"},
				Dir:  root,
			},
		},
		{
			name:   "gnu strips executable",
			argv:   []string{"make-x86", "V=1", "all"},
			target: domain.TargetX86,
			mutate: func(c *domain.Config) { c.StripExe = true },
			expected: domain.Invocation{
				Name: "make",
				Args: []string{"-I", mkdir, "-f", filepath.Join(mkdir, "build_x86.mk"), "STRIP_EXE=1", "V=1", "all"},
				Dir:  root,
			},
		},
		{
			name:   "pomake",
			argv:   []string{"make-all"},
			target: domain.TargetX86,
			mutate: func(c *domain.Config) {
				c.BuildTool = domain.BuildToolPomake
				c.StripExe = true
			},
			expected: domain.Invocation{
				Name: "pomake",
				Args: []string{"/f", filepath.Join(mkdir, "pomake", "build_x86.mk"), "STRIP_EXE=1"},
				Dir:  root,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			executor := mocks.NewMockExecutor(ctrl)
			executor.EXPECT().Run(gomock.Any(), tt.expected).Return(nil)

			err := makefile.NewRunner(executor).Build(context.Background(), newTask(tt.argv, tt.mutate), tt.target)
			require.NoError(t, err)
		})
	}
}

func TestRunner_Build_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	cause := errors.New("exit status 2")
	executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(cause)

	err := makefile.NewRunner(executor).Build(context.Background(), newTask([]string{"make-x64"}, nil), domain.TargetX64)
	require.Error(t, err)
	require.ErrorIs(t, err, cause)
	assert.ErrorContains(t, err, "failed to execute make command")
}

func TestRunner_Build_PomakeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(errors.New("exit status 1"))

	task := newTask([]string{"make-x86"}, func(c *domain.Config) { c.BuildTool = domain.BuildToolPomake })
	err := makefile.NewRunner(executor).Build(context.Background(), task, domain.TargetX86)
	assert.ErrorContains(t, err, "failed to execute pomake command")
}

func TestRunner_Build_InvalidMakeOption(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	task := newTask([]string{"make-x64"}, func(c *domain.Config) { c.BuildTool = domain.BuildToolUnknown })
	err := makefile.NewRunner(executor).Build(context.Background(), task, domain.TargetX64)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidMakeOption.Error())
}

func TestRunner_ListObjectFiles(t *testing.T) {
	mkdir := filepath.Join(root, "scripts", "makefiles")
	showObjects := domain.Invocation{
		Name: "make",
		Args: []string{"-I", mkdir, "-f", filepath.Join(mkdir, "build_x86.mk"), "show-objects"},
		Dir:  root,
	}

	tests := []struct {
		name        string
		lines       []string
		execErr     error
		expected    []string
		errContains string
	}{
		{
			name:  "relative and absolute paths",
			lines: []string{"build/x86/main.o  build/x86/parse/token.o /tmp/extra.o"},
			expected: []string{
				filepath.Join(root, "build", "x86", "main.o"),
				filepath.Join(root, "build", "x86", "parse", "token.o"),
				"/tmp/extra.o",
			},
		},
		{
			name:     "empty line lists nothing",
			lines:    []string{""},
			expected: []string{},
		},
		{
			name:        "no output",
			lines:       nil,
			errContains: domain.ErrObjectListFailed.Error(),
		},
		{
			name:        "more than one line",
			lines:       []string{"a.o", "b.o"},
			errContains: domain.ErrObjectListFailed.Error(),
		},
		{
			name:        "command failure",
			execErr:     errors.New("exit status 2"),
			errContains: domain.ErrObjectListFailed.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			executor := mocks.NewMockExecutor(ctrl)
			executor.EXPECT().Output(gomock.Any(), showObjects).Return(tt.lines, tt.execErr)

			objects, err := makefile.NewRunner(executor).
				ListObjectFiles(context.Background(), newTask([]string{"remove"}, nil), domain.TargetX86)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, objects)
		})
	}
}

func TestRunner_ListObjectFiles_Pomake(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	task := newTask([]string{"remove"}, func(c *domain.Config) { c.BuildTool = domain.BuildToolPomake })
	_, err := makefile.NewRunner(executor).ListObjectFiles(context.Background(), task, domain.TargetX64)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrObjectListUnsupported.Error())
}
