package ports

import (
	"context"

	"go.trai.ch/bccproj/internal/core/domain"
)

// VersionMarker defines the interface for stamping the generated sources as a
// development build.
//
//go:generate go run go.uber.org/mock/mockgen -source=version.go -destination=mocks/mock_version.go -package=mocks
type VersionMarker interface {
	// Mark stamps the sources as a development build.
	Mark(ctx context.Context, task *domain.Task) error
	// Clear removes the development stamp.
	Clear(ctx context.Context, task *domain.Task) error
}

// VersionProber defines the interface for asking a built executable for its version.
type VersionProber interface {
	// Probe returns the version string the executable reports about itself.
	Probe(ctx context.Context, task *domain.Task, exe string) (string, error)
}
