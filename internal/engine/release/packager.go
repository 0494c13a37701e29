// Package release builds every target and packages each into a versioned archive.
package release

import (
	"context"
	"os"

	"go.trai.ch/bccproj/internal/core/domain"
	"go.trai.ch/bccproj/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
)

// Compiler builds every target of a task.
type Compiler interface {
	CompileAll(ctx context.Context, task *domain.Task) error
}

// Packager produces the release archives.
type Packager struct {
	compiler Compiler
	prober   ports.VersionProber
	archiver ports.Archiver
	hasher   ports.Hasher
	logger   ports.Logger
}

// New creates a new Packager.
func New(
	compiler Compiler,
	prober ports.VersionProber,
	archiver ports.Archiver,
	hasher ports.Hasher,
	logger ports.Logger,
) *Packager {
	return &Packager{
		compiler: compiler,
		prober:   prober,
		archiver: archiver,
		hasher:   hasher,
		logger:   logger,
	}
}

// Release compiles all targets and writes one archive per target, named after
// the version the built executable reports. The first failure aborts the release;
// archives already committed for earlier targets are kept.
func (p *Packager) Release(ctx context.Context, task *domain.Task) error {
	if err := p.compiler.CompileAll(ctx, task); err != nil {
		return err
	}

	dir := task.Layout.ReleaseDir()
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDirectoryCreateFailed.Error()), "path", dir)
	}

	for _, target := range domain.Targets {
		if err := p.packageTarget(ctx, task, target); err != nil {
			return zerr.With(err, "target", target.String())
		}
	}
	return nil
}

func (p *Packager) packageTarget(ctx context.Context, task *domain.Task, target domain.Target) error {
	version, err := p.prober.Probe(ctx, task, task.Layout.TargetExe(target))
	if err != nil {
		return err
	}
	if !semver.IsValid("v" + version) {
		p.logger.Warn("version " + version + " of " + target.String() + " build is not a semantic version")
	}

	dest := task.Layout.ReleaseArchive(version, target)
	archive, err := p.archiver.Create(dest)
	if err != nil {
		return err
	}

	for _, entry := range task.Layout.ReleaseEntries(target) {
		if err := archive.AddFile(entry.Source, entry.Name); err != nil {
			return discard(archive, err)
		}
	}
	if err := archive.Commit(); err != nil {
		return discard(archive, err)
	}

	digest, err := p.hasher.HashFile(dest)
	if err != nil {
		p.logger.Warn("wrote " + dest + " but could not hash it: " + err.Error())
		return nil
	}
	p.logger.Debug("wrote " + dest + " (xxh64 " + digest + ")")
	return nil
}

func discard(archive ports.Archive, err error) error {
	if discardErr := archive.Discard(); discardErr != nil {
		return zerr.With(err, "discard_error", discardErr.Error())
	}
	return err
}
