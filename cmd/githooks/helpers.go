package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/raphi011/githooks/internal/config"
	"github.com/raphi011/githooks/internal/git"
)

// loadProject locates the enclosing repository and reads its hook
// configuration. configPath overrides the default .hooks.yml location
// when non-empty.
func loadProject(ctx context.Context, configPath string) (string, *config.Config, error) {
	root, err := git.Root(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("not inside a git repository: %w", err)
	}

	if configPath == "" {
		configPath = filepath.Join(root, config.DefaultFileName)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return "", nil, err
	}

	return root, cfg, nil
}
