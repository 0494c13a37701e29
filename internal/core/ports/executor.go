// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/bccproj/internal/core/domain"
)

// Executor defines the interface for running child processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes the invocation with its output passed through to the terminal.
	// It blocks until the process exits and returns an error for a non-zero exit status.
	Run(ctx context.Context, inv domain.Invocation) error

	// Output executes the invocation and returns the lines it wrote to stdout,
	// without trailing whitespace. Stderr is passed through.
	Output(ctx context.Context, inv domain.Invocation) ([]string, error)
}
