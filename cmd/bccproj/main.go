// Package main is the entry point for the bccproj project tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/bccproj/cmd/bccproj/commands"
	"go.trai.ch/bccproj/internal/app"
	"go.trai.ch/bccproj/internal/build"
	"go.trai.ch/bccproj/internal/core/domain"
	_ "go.trai.ch/bccproj/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	program := filepath.Base(os.Args[0])
	os.Exit(run(context.Background(), program, os.Args[1:], os.Stdout, os.Stderr,
		func(ctx context.Context) (*app.Components, func(), error) {
			c, _, err := graft.ExecuteFor[*app.Components](ctx)
			return c, func() {}, err
		}))
}

func run(
	ctx context.Context,
	program string,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintf(stderr, "%s: error: %s\n", program, err.Error())
		return 1
	}
	defer cleanup()
	components.Logger.SetProgram(program)
	components.Logger.Debug(program + " " + build.String())

	// 2. Interface - CLI
	cli := commands.New(components.App, program)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrNoCommand) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
