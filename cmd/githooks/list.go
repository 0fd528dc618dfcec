package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/raphi011/githooks/internal/config"
	"github.com/raphi011/githooks/internal/ui/styles"
)

// HookDisplay holds hook info for display
type HookDisplay struct {
	Name     string   `json:"name"`
	Active   bool     `json:"active"`
	Events   []string `json:"events"`
	Patterns []string `json:"patterns,omitempty"`
	Action   string   `json:"action,omitempty"`
}

// SourceDisplay holds source info for display
type SourceDisplay struct {
	Origin         string        `json:"origin"`
	PinnedRevision string        `json:"pinned_revision,omitempty"`
	Hooks          []HookDisplay `json:"hooks"`
}

// collectDisplay flattens the merged configuration for output.
func collectDisplay(cfg *config.Config) []SourceDisplay {
	active := cfg.ActiveNames()

	sources := make([]SourceDisplay, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		display := SourceDisplay{
			Origin:         src.Origin,
			PinnedRevision: src.PinnedRevision,
		}
		for _, h := range src.Hooks {
			hd := HookDisplay{
				Name:     h.Name,
				Active:   active[h.Name],
				Patterns: h.OnFileRegex,
			}
			for _, ev := range h.Events() {
				hd.Events = append(hd.Events, string(ev))
			}
			if h.Action != nil {
				hd.Action = *h.Action
			}
			display.Hooks = append(display.Hooks, hd)
		}
		sources = append(sources, display)
	}
	return sources
}

// renderHookList writes a human-readable listing of all sources and
// their hooks, marking which ones are active.
func renderHookList(w io.Writer, sources []SourceDisplay, colorize bool) {
	for i, src := range sources {
		if i > 0 {
			fmt.Fprintln(w)
		}

		origin := styles.Render(styles.PrimaryStyle, src.Origin, colorize)
		if src.PinnedRevision != "" {
			pin := styles.Render(styles.MutedStyle, "(pinned to "+src.PinnedRevision+")", colorize)
			fmt.Fprintf(w, "%s %s\n", origin, pin)
		} else {
			fmt.Fprintln(w, origin)
		}

		if len(src.Hooks) == 0 {
			fmt.Fprintln(w, "  "+styles.Render(styles.MutedStyle, "no hooks", colorize))
			continue
		}

		for _, h := range src.Hooks {
			marker := styles.Render(styles.MutedStyle, "-", colorize)
			name := styles.Render(styles.MutedStyle, h.Name, colorize)
			if h.Active {
				marker = styles.Render(styles.SuccessStyle, "✓", colorize)
				name = styles.Render(styles.AccentStyle, h.Name, colorize)
			}

			meta := "on " + strings.Join(h.Events, ", ")
			if len(h.Patterns) > 0 {
				meta += ", files " + strings.Join(h.Patterns, " ")
			}

			fmt.Fprintf(w, "  %s %s  %s\n", marker, name, styles.Render(styles.MutedStyle, meta, colorize))
		}
	}
}

// unknownActivations returns top-level hook names that no source
// provides, usually a typo in .hooks.yml.
func unknownActivations(cfg *config.Config) []string {
	provided := make(map[string]bool)
	for _, src := range cfg.Sources {
		for _, h := range src.Hooks {
			provided[h.Name] = true
		}
	}

	var unknown []string
	for _, h := range cfg.Hooks {
		if !provided[h.Name] {
			unknown = append(unknown, h.Name)
		}
	}
	return unknown
}
