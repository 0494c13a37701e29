package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bccproj/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "work", "bcc")
	l := domain.NewLayout(root)

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{name: "Root", got: l.Root(), expected: root},
		{name: "ConfigFile", got: l.ConfigFile(), expected: filepath.Join(root, "bccproj.yaml")},
		{name: "BuildDir", got: l.BuildDir(), expected: filepath.Join(root, "build")},
		{name: "TargetDirX86", got: l.TargetDir(domain.TargetX86), expected: filepath.Join(root, "build", "x86")},
		{name: "TargetDirX64", got: l.TargetDir(domain.TargetX64), expected: filepath.Join(root, "build", "x64")},
		{
			name:     "TargetExe",
			got:      l.TargetExe(domain.TargetX64),
			expected: filepath.Join(root, "build", "x64", domain.ExeName),
		},
		{name: "ProjectExe", got: l.ProjectExe(), expected: filepath.Join(root, domain.ExeName)},
		{name: "ReleaseDir", got: l.ReleaseDir(), expected: filepath.Join(root, "releases")},
		{name: "MakefileDir", got: l.MakefileDir(), expected: filepath.Join(root, "scripts", "makefiles")},
		{
			name:     "PomakeMakefileDir",
			got:      l.PomakeMakefileDir(),
			expected: filepath.Join(root, "scripts", "makefiles", "pomake"),
		},
		{
			name:     "ReleaseArchive",
			got:      l.ReleaseArchive("1.2.3", domain.TargetX86),
			expected: filepath.Join(root, "releases", "bcc-1.2.3-32bit.zip"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestLayout_TargetSkeleton(t *testing.T) {
	l := domain.NewLayout("/work/bcc")
	dir := l.TargetDir(domain.TargetX86)

	skeleton := l.TargetSkeleton(domain.TargetX86)
	require.Len(t, skeleton, 6)

	// Parents precede their children.
	assert.Equal(t, []string{
		dir,
		filepath.Join(dir, "parse"),
		filepath.Join(dir, "parse", "token"),
		filepath.Join(dir, "semantic"),
		filepath.Join(dir, "codegen"),
		filepath.Join(dir, "cache"),
	}, skeleton)
}

func TestLayout_ReleaseEntries(t *testing.T) {
	l := domain.NewLayout("/work/bcc")
	entries := l.ReleaseEntries(domain.TargetX64)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{
		domain.ExeName,
		"lib/zcommon.bcs",
		"lib/zcommon.h.bcs",
		"lib/acs/README.txt",
		"readme.txt",
	}, names)
	assert.Equal(t, l.TargetExe(domain.TargetX64), entries[0].Source)
	assert.Equal(t, filepath.Join(l.Root(), "doc", "readme.txt"), entries[4].Source)
}

func TestTarget(t *testing.T) {
	assert.Equal(t, []domain.Target{domain.TargetX86, domain.TargetX64}, domain.Targets)
	assert.Equal(t, domain.TargetX64, domain.DefaultTarget)

	assert.Equal(t, "x86", domain.TargetX86.String())
	assert.Equal(t, "build_x86.mk", domain.TargetX86.Makefile())
	assert.Equal(t, "32bit", domain.TargetX86.BitWidth())

	assert.Equal(t, "x64", domain.TargetX64.String())
	assert.Equal(t, "build_x64.mk", domain.TargetX64.Makefile())
	assert.Equal(t, "64bit", domain.TargetX64.BitWidth())
}

func TestParseBuildTool(t *testing.T) {
	tests := []struct {
		in       string
		expected domain.BuildTool
	}{
		{"gnu", domain.BuildToolGNU},
		{"GNU", domain.BuildToolGNU},
		{"make", domain.BuildToolGNU},
		{" pomake ", domain.BuildToolPomake},
		{"nmake", domain.BuildToolUnknown},
		{"", domain.BuildToolUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ParseBuildTool(tt.in))
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, domain.BuildToolGNU, cfg.BuildTool)
	assert.False(t, cfg.StripExe)
	assert.NotEmpty(t, cfg.Marker.Mark)
	assert.NotEmpty(t, cfg.Marker.Clear)
	assert.Equal(t, "make", cfg.BuildTool.Program())
	assert.Equal(t, "pomake", domain.BuildToolPomake.Program())
	assert.Empty(t, domain.BuildToolUnknown.Program())
}
