package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/bccproj/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:                domain.CommandHelp.String(),
		Short:              "Show this help information",
		DisableFlagParsing: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.rootCmd.Help()
		},
	}
}

func (c *CLI) newMakeCmd(verb domain.Command, short string) *cobra.Command {
	cmd := c.newVerbCmd(verb, short)
	cmd.Use = verb.String() + " [args]"
	return cmd
}

// newVerbCmd returns a command whose arguments are passed to the build tool untouched.
func (c *CLI) newVerbCmd(verb domain.Command, short string) *cobra.Command {
	return &cobra.Command{
		Use:                verb.String(),
		Short:              short,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			task, err := c.app.NewTask(c.program, c.args)
			if err != nil {
				return err
			}
			return c.dispatch(cmd.Context(), task)
		},
	}
}

func (c *CLI) dispatch(ctx context.Context, task *domain.Task) error {
	switch task.Command {
	case domain.CommandMakeAll:
		return c.app.MakeAll(ctx, task)
	case domain.CommandMakeX86, domain.CommandMakeX64:
		target, _ := task.Command.Target()
		return c.app.MakeTarget(ctx, task, target)
	case domain.CommandRelease:
		return c.app.Release(ctx, task)
	case domain.CommandCreate:
		return c.app.Create(ctx, task)
	case domain.CommandRemove:
		return c.app.Remove(ctx, task)
	default:
		return zerr.With(domain.ErrUnhandledCommand, "command", task.Command.String())
	}
}
