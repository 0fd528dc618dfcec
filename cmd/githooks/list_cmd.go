package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/raphi011/githooks/internal/config"
	"github.com/raphi011/githooks/internal/log"
	"github.com/raphi011/githooks/internal/source"
	"github.com/raphi011/githooks/internal/ui/styles"
)

func newListCmd() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List configured hook sources and hooks",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Long: `List every hook provided by the configured sources.

Sources are cloned or updated first so the listing reflects their
current manifests. Hooks whose names appear in the top-level hooks
list are marked active; the rest are inert and never run.`,
		Example: `  githooks list
  githooks list --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			root, cfg, err := loadProject(ctx, configPath)
			if err != nil {
				return err
			}

			source.MaterializeAll(ctx, root, cfg)
			config.ApplyOverrides(cfg.Hooks, cfg.Sources)

			display := collectDisplay(cfg)

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(display)
			}

			renderHookList(cmd.OutOrStdout(), display, styles.Colorize())

			for _, name := range unknownActivations(cfg) {
				l.Warnf("hook %q is activated but no source provides it\n", name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the hooks configuration file (default: <repo>/"+config.DefaultFileName+")")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
