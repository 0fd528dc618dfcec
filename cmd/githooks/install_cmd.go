package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/githooks/internal/config"
	"github.com/raphi011/githooks/internal/git"
)

func newInstallCmd() *cobra.Command {
	var (
		events []string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install git hook stubs into .git/hooks",
		Args:  cobra.NoArgs,
		Long: `Install shell stubs into .git/hooks that delegate to 'githooks run'.

By default stubs are written for pre-commit and post-commit. Use
--event to install other events. Hooks written by other tools are left
alone unless --force is given; stubs from a previous install are
always replaced.`,
		Example: `  githooks install                          # pre-commit and post-commit stubs
  githooks install -e pre-push -e commit-msg
  githooks install --force                  # overwrite foreign hook scripts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			root, err := git.Root(ctx)
			if err != nil {
				return fmt.Errorf("not inside a git repository: %w", err)
			}

			parsed, err := parseInstallEvents(events)
			if err != nil {
				return err
			}

			return installHookScripts(ctx, root, parsed, force)
		},
	}

	cmd.Flags().StringArrayVarP(&events, "event", "e", nil,
		"Event to install a stub for, repeatable (available: "+strings.Join(config.EventNames(), ", ")+")")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite hook scripts not written by githooks")

	return cmd
}
