package ports

import (
	"context"

	"go.trai.ch/bccproj/internal/core/domain"
)

// BuildTool defines the interface for driving the external build program.
//
//go:generate go run go.uber.org/mock/mockgen -source=build_tool.go -destination=mocks/mock_build_tool.go -package=mocks
type BuildTool interface {
	// Build compiles the target, forwarding the task's pass-through arguments.
	Build(ctx context.Context, task *domain.Task, target domain.Target) error

	// ListObjectFiles returns the object files the build program produces for
	// the target, as reported by the program itself.
	ListObjectFiles(ctx context.Context, task *domain.Task, target domain.Target) ([]string, error)
}
