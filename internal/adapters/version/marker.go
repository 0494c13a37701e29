// Package version stamps the sources as a development build and queries built
// executables for their version.
package version

import (
	"context"

	"go.trai.ch/bccproj/internal/core/domain"
	"go.trai.ch/bccproj/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VersionMarker = (*Marker)(nil)

// Marker implements ports.VersionMarker by running the configured marker program
// in the project root.
type Marker struct {
	executor ports.Executor
}

// NewMarker creates a new Marker.
func NewMarker(executor ports.Executor) *Marker {
	return &Marker{executor: executor}
}

// Mark runs the configured mark command.
func (m *Marker) Mark(ctx context.Context, task *domain.Task) error {
	return m.run(ctx, task, task.Config.Marker.Mark)
}

// Clear runs the configured clear command.
func (m *Marker) Clear(ctx context.Context, task *domain.Task) error {
	return m.run(ctx, task, task.Config.Marker.Clear)
}

func (m *Marker) run(ctx context.Context, task *domain.Task, argv []string) error {
	if len(argv) == 0 {
		return nil
	}

	inv := domain.Invocation{
		Name: argv[0],
		Args: argv[1:],
		Dir:  task.Layout.Root(),
	}
	if err := m.executor.Run(ctx, inv); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMarkerFailed.Error()), "command", inv.String())
	}
	return nil
}
