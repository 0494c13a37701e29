package version

import (
	"context"
	"strings"

	"go.trai.ch/bccproj/internal/core/domain"
	"go.trai.ch/bccproj/internal/core/ports"
	"go.trai.ch/zerr"
)

// VersionFlag is the argument that makes the compiler print its version.
const VersionFlag = "-version"

var _ ports.VersionProber = (*Prober)(nil)

// Prober implements ports.VersionProber by running the executable with VersionFlag.
type Prober struct {
	executor ports.Executor
}

// NewProber creates a new Prober.
func NewProber(executor ports.Executor) *Prober {
	return &Prober{executor: executor}
}

// Probe returns the first line the executable prints, trimmed.
// The result is used in archive file names, so it must not contain path separators.
func (p *Prober) Probe(ctx context.Context, task *domain.Task, exe string) (string, error) {
	lines, err := p.executor.Output(ctx, domain.Invocation{
		Name: exe,
		Args: []string{VersionFlag},
		Dir:  task.Layout.Root(),
	})
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrVersionProbeFailed.Error()), "exe", exe)
	}

	var version string
	if len(lines) > 0 {
		version = strings.TrimSpace(lines[0])
	}
	if version == "" {
		return "", zerr.With(domain.ErrVersionProbeEmpty, "exe", exe)
	}
	if strings.ContainsAny(version, `/\`) || version == "." || version == ".." {
		return "", zerr.With(domain.ErrInvalidVersion, "version", version)
	}
	return version, nil
}
