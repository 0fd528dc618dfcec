package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/raphi011/githooks/internal/files"
)

const (
	// DefaultFileName is the top-level configuration file, relative to the
	// repository root.
	DefaultFileName = ".hooks.yml"

	// ManifestFileName is the hook manifest every source repository carries
	// at its root.
	ManifestFileName = "hooks.yml"
)

// Hook defines one named, event-triggered action. Nil optional fields mean
// "not set": during merge they leave the source hook's value intact, and at
// dispatch time they fall back to defaults (pre-commit, match everything).
type Hook struct {
	Name        string   `yaml:"name"`
	OnEvent     []Event  `yaml:"on_event"`
	OnFileRegex []string `yaml:"on_file_regex"`
	Action      *string  `yaml:"action"`
	SetupScript *string  `yaml:"setup_script"`
}

// Events returns the hook's trigger events, defaulting to pre-commit.
func (h Hook) Events() []Event {
	if len(h.OnEvent) == 0 {
		return []Event{DefaultEvent}
	}
	return h.OnEvent
}

// On reports whether the hook fires on the given event.
func (h Hook) On(event Event) bool {
	return slices.Contains(h.Events(), event)
}

// Patterns returns the hook's file patterns, defaulting to match-everything.
func (h Hook) Patterns() []string {
	if len(h.OnFileRegex) == 0 {
		return []string{".*"}
	}
	return h.OnFileRegex
}

// Source declares an external hook source. Only Origin and PinnedRevision
// come from the top-level config; Hooks is populated from the source's own
// manifest during materialization, replacing any inline value.
type Source struct {
	Origin         string `yaml:"origin"`
	PinnedRevision string `yaml:"pinned_revision"`
	Hooks          []Hook `yaml:"hooks"`
}

// Config is the top-level hook configuration of a repository.
type Config struct {
	Sources []Source `yaml:"sources"`
	Hooks   []Hook   `yaml:"hooks"`
}

// ActiveNames returns the set of hook names declared in the top-level hooks
// list. Only hooks in this set are ever dispatched.
func (c *Config) ActiveNames() map[string]bool {
	active := make(map[string]bool, len(c.Hooks))
	for _, h := range c.Hooks {
		active[h.Name] = true
	}
	return active
}

// Validate checks hook names and file patterns. Pattern errors are
// configuration errors and abort the run before any hook executes.
func (c *Config) Validate() error {
	var errs []error
	for _, h := range c.Hooks {
		errs = append(errs, validateHook(h))
	}
	for _, s := range c.Sources {
		if s.Origin == "" {
			errs = append(errs, errors.New("source with empty origin"))
		}
		for _, h := range s.Hooks {
			errs = append(errs, validateHook(h))
		}
	}
	return errors.Join(errs...)
}

func validateHook(h Hook) error {
	if h.Name == "" {
		return errors.New("hook with empty name")
	}
	if _, err := files.Compile(h.OnFileRegex); err != nil {
		return fmt.Errorf("hook %q: %w", h.Name, err)
	}
	return nil
}

// Load reads and validates the top-level configuration from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadManifest reads a source's hook manifest from the hooks.yml file at
// the root of its working copy.
func LoadManifest(dir string) ([]Hook, error) {
	path := filepath.Join(dir, ManifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	// A manifest has the same shape as the top-level config; only its
	// hooks list is meaningful.
	var manifest Config
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	for _, h := range manifest.Hooks {
		if err := validateHook(h); err != nil {
			return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
		}
	}
	return manifest.Hooks, nil
}
