package domain

import (
	"path/filepath"
	"runtime"
)

const (
	// ProductName prefixes release archive names.
	ProductName = "bcc"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "bccproj.yaml"

	// BuildDirName is the name of the build root.
	BuildDirName = "build"

	// ReleaseDirName is the name of the release archive directory.
	ReleaseDirName = "releases"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExePerm is the permission of copied executables (rwxr-xr-x).
	ExePerm = 0o755
)

// ExeName is the file name of the compiler executable on this platform.
var ExeName = exeName(runtime.GOOS)

func exeName(goos string) string {
	if goos == "windows" {
		return ProductName + ".exe"
	}
	return ProductName
}

// stageDirs are the build-stage cache directories of a target, in creation order.
var stageDirs = []string{
	"parse",
	filepath.Join("parse", "token"),
	"semantic",
	"codegen",
	"cache",
}

// ArchiveEntry is one file stored in a release archive.
type ArchiveEntry struct {
	// Source is the absolute path of the file on disk.
	Source string
	// Name is the path of the file inside the archive.
	Name string
}

// Layout derives every path the tool touches from one project root.
type Layout struct {
	root string
}

// NewLayout returns the layout of the project rooted at root.
// The root is expected to be absolute.
func NewLayout(root string) Layout {
	return Layout{root: filepath.Clean(root)}
}

// Root returns the project root.
func (l Layout) Root() string {
	return l.root
}

// ConfigFile returns the path of the optional configuration file.
func (l Layout) ConfigFile() string {
	return filepath.Join(l.root, ConfigFileName)
}

// BuildDir returns the build root.
func (l Layout) BuildDir() string {
	return filepath.Join(l.root, BuildDirName)
}

// TargetDir returns the build directory of a target.
func (l Layout) TargetDir(t Target) string {
	return filepath.Join(l.BuildDir(), t.String())
}

// TargetSkeleton returns the directories making up a target's build tree, in
// creation order. Removal walks it backwards so children go before parents.
func (l Layout) TargetSkeleton(t Target) []string {
	dir := l.TargetDir(t)
	dirs := make([]string, 0, len(stageDirs)+1)
	dirs = append(dirs, dir)
	for _, stage := range stageDirs {
		dirs = append(dirs, filepath.Join(dir, stage))
	}
	return dirs
}

// TargetExe returns the path of the executable the build tool produces for a target.
func (l Layout) TargetExe(t Target) string {
	return filepath.Join(l.TargetDir(t), ExeName)
}

// ProjectExe returns the path of the executable copied into the project root.
func (l Layout) ProjectExe() string {
	return filepath.Join(l.root, ExeName)
}

// ReleaseDir returns the directory holding release archives.
func (l Layout) ReleaseDir() string {
	return filepath.Join(l.root, ReleaseDirName)
}

// MakefileDir returns the directory of the GNU Make makefiles.
func (l Layout) MakefileDir() string {
	return filepath.Join(l.root, "scripts", "makefiles")
}

// PomakeMakefileDir returns the directory of the pomake makefiles.
func (l Layout) PomakeMakefileDir() string {
	return filepath.Join(l.MakefileDir(), "pomake")
}

// ReleaseArchive returns the path of the release archive for a version and target.
func (l Layout) ReleaseArchive(version string, t Target) string {
	return filepath.Join(l.ReleaseDir(), ProductName+"-"+version+"-"+t.BitWidth()+".zip")
}

// ReleaseEntries returns the files packaged into a target's release archive.
func (l Layout) ReleaseEntries(t Target) []ArchiveEntry {
	return []ArchiveEntry{
		{Source: l.TargetExe(t), Name: ExeName},
		{Source: filepath.Join(l.root, "lib", "zcommon.bcs"), Name: "lib/zcommon.bcs"},
		{Source: filepath.Join(l.root, "lib", "zcommon.h.bcs"), Name: "lib/zcommon.h.bcs"},
		{Source: filepath.Join(l.root, "lib", "acs", "README.txt"), Name: "lib/acs/README.txt"},
		{Source: filepath.Join(l.root, "doc", "readme.txt"), Name: "readme.txt"},
	}
}
