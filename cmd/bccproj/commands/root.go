// Package commands implements the CLI commands for bccproj.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/bccproj/internal/core/domain"
	"go.trai.ch/zerr"
)

const usageTemplate = `Usage: {{.CommandPath}} [command]
Commands:
{{range .Commands}}{{if not .Hidden}}  {{rpad .Use 17}}{{.Short}}
{{end}}{{end}}`

// CLI represents the command line interface for bccproj.
type CLI struct {
	app     Application
	program string
	args    []string
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	NewTask(program string, argv []string) (*domain.Task, error)
	MakeAll(ctx context.Context, task *domain.Task) error
	MakeTarget(ctx context.Context, task *domain.Task, target domain.Target) error
	Release(ctx context.Context, task *domain.Task) error
	Create(ctx context.Context, task *domain.Task) error
	Remove(ctx context.Context, task *domain.Task) error
}

// New creates a new CLI instance with the given app. Program is the name shown
// in the usage text.
func New(a Application, program string) *CLI {
	rootCmd := &cobra.Command{
		Use:           program,
		Short:         "Build, package and clean the bcc compiler project",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetUsageTemplate(usageTemplate)
	rootCmd.SetHelpTemplate("{{.UsageString}}")

	c := &CLI{
		app:     a,
		program: program,
		rootCmd: rootCmd,
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		_ = cmd.Help()
		return domain.ErrNoCommand
	}

	rootCmd.SetHelpCommand(c.newHelpCmd())
	rootCmd.AddCommand(
		c.newMakeCmd(domain.CommandMakeAll, "Execute make, passing it the specified arguments"),
		c.newMakeCmd(domain.CommandMakeX86, "Like make-all, but builds 32-bit binary only"),
		c.newMakeCmd(domain.CommandMakeX64, "Like make-all, but builds 64-bit binary only"),
		c.newVerbCmd(domain.CommandRelease, "Compile project and package binaries"),
		c.newVerbCmd(domain.CommandCreate, "Create build and release directories"),
		c.newVerbCmd(domain.CommandRemove, "Remove executable and build directory"),
	)

	return c
}

// Execute routes the arguments to their command and runs it with the given context.
// An unrecognized or missing command prints the usage and returns domain.ErrNoCommand.
// A recognized command without a registered subcommand returns domain.ErrUnhandledCommand.
func (c *CLI) Execute(ctx context.Context) error {
	cmd, rest := domain.ParseCommand(c.args)
	if cmd == domain.CommandNone {
		c.rootCmd.SetArgs([]string{})
	} else {
		args := append([]string{cmd.String()}, rest...)
		c.rootCmd.InitDefaultHelpCmd()
		if found, _, err := c.rootCmd.Find(args); err != nil || found == c.rootCmd {
			return zerr.With(domain.ErrUnhandledCommand, "command", cmd.String())
		}
		c.rootCmd.SetArgs(args)
	}

	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments following the program name.
func (c *CLI) SetArgs(args []string) {
	c.args = args
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
