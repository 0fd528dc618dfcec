package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/githooks/internal/config"
	"github.com/raphi011/githooks/internal/log"
)

// defaultInstallEvents are the events wired up when install is invoked
// without --event flags.
var defaultInstallEvents = []config.Event{
	config.EventPreCommit,
	config.EventPostCommit,
}

// scriptMarker identifies hook scripts written by this tool, so that
// repeated installs can overwrite them without --force.
const scriptMarker = "exec githooks run"

// installHookScripts writes a shell stub into .git/hooks for each event.
// Existing scripts written by other tools are skipped unless force is
// set; scripts previously written by this tool are always replaced.
func installHookScripts(ctx context.Context, root string, events []config.Event, force bool) error {
	l := log.FromContext(ctx)

	hookDir := filepath.Join(root, ".git", "hooks")
	if err := os.MkdirAll(hookDir, 0o755); err != nil {
		return fmt.Errorf("create hook directory: %w", err)
	}

	for _, event := range events {
		path := filepath.Join(hookDir, string(event))

		if existing, err := os.ReadFile(path); err == nil {
			if !force && !bytes.Contains(existing, []byte(scriptMarker)) {
				l.Warnf("%s already has a %s hook, skipping (use --force to overwrite)\n", hookDir, event)
				continue
			}
		}

		script := fmt.Sprintf("#!/bin/sh\nexec githooks run %s\n", event)
		if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
			return fmt.Errorf("write %s hook: %w", event, err)
		}
		l.Printf("Installed %s hook\n", event)
	}

	return nil
}

// parseInstallEvents validates the --event values, falling back to the
// defaults when none were given.
func parseInstallEvents(names []string) ([]config.Event, error) {
	if len(names) == 0 {
		return defaultInstallEvents, nil
	}

	events := make([]config.Event, 0, len(names))
	for _, name := range names {
		event, err := config.ParseEvent(name)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}
