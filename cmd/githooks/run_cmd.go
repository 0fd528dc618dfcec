package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/githooks/internal/config"
	"github.com/raphi011/githooks/internal/hooks"
	"github.com/raphi011/githooks/internal/source"
)

func newRunCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:       "run <event>",
		Short:     "Run the hooks bound to a git event",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.EventNames(),
		Long: `Run every active hook bound to the given git event.

Hook sources are cloned (or updated) under .git/hook-repos first, then
each hook whose name appears in the top-level hooks list and whose
on_event matches is executed. A hook exiting non-zero fails the event,
which is how pre-commit hooks block a commit.`,
		Example: `  githooks run pre-commit      # Typically invoked from .git/hooks/pre-commit
  githooks run post-commit
  githooks run pre-push -c ci/.hooks.yml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			event, err := config.ParseEvent(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}

			root, cfg, err := loadProject(ctx, configPath)
			if err != nil {
				return err
			}

			source.MaterializeAll(ctx, root, cfg)
			config.ApplyOverrides(cfg.Hooks, cfg.Sources)

			return hooks.Dispatch(ctx, root, event, cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the hooks configuration file (default: <repo>/"+config.DefaultFileName+")")

	return cmd
}
