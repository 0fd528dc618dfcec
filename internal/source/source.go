// Package source materializes external hook sources.
//
// A source is declared in the top-level config with only its origin and an
// optional pinned revision. Materializing it fetches or updates a working
// copy under .git/hook-repos/, moves it to the pinned revision, loads the
// source's own hooks.yml manifest into the source (replacing any inline
// hook list from the top-level config), and runs each hook's setup script
// once with the source path prepended to PATH.
package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/shlex"

	"github.com/raphi011/githooks/internal/cmd"
	"github.com/raphi011/githooks/internal/config"
	"github.com/raphi011/githooks/internal/git"
	"github.com/raphi011/githooks/internal/log"
)

// saveLocation is where source working copies live, relative to the
// repository root.
const saveLocation = ".git/hook-repos"

// LocalPath returns the working-copy directory for a source origin inside
// the repository rooted at root.
func LocalPath(root, origin string) (string, error) {
	name := strings.TrimSuffix(origin, "/")
	name = strings.TrimSuffix(name, ".git")
	if idx := strings.LastIndex(name, "/"); idx != -1 {
		name = name[idx+1:]
	}
	if name == "" {
		return "", fmt.Errorf("incomplete source origin %q", origin)
	}
	return filepath.Join(root, saveLocation, name), nil
}

// PrefixPath returns the PATH value with dir prepended, so executables
// shipped by a source take precedence during its hooks' execution.
func PrefixPath(dir string) string {
	return dir + string(os.PathListSeparator) + os.Getenv("PATH")
}

// Materialize brings one source up to date in place: fetch or update its
// working copy, check out the pinned revision if any, replace the source's
// hook list with its manifest, and run setup scripts.
func Materialize(ctx context.Context, root string, src *config.Source) error {
	l := log.FromContext(ctx)

	localPath, err := LocalPath(root, src.Origin)
	if err != nil {
		return err
	}
	l.Debugf("materializing %s into %s\n", src.Origin, localPath)

	if _, err := git.CloneOrUpdate(ctx, src.Origin, localPath); err != nil {
		return err
	}
	if src.PinnedRevision != "" {
		if err := git.Checkout(ctx, src.PinnedRevision, localPath); err != nil {
			return err
		}
	}

	// The manifest is authoritative: whatever hook list the top-level
	// config carried for this source is discarded.
	hooks, err := config.LoadManifest(localPath)
	if err != nil {
		return err
	}
	src.Hooks = hooks

	return runSetupScripts(ctx, localPath, hooks)
}

// MaterializeAll materializes every source. Failures are logged and the
// source is skipped; the rest of the run proceeds with the remaining
// sources.
func MaterializeAll(ctx context.Context, root string, cfg *config.Config) {
	l := log.FromContext(ctx)
	for i := range cfg.Sources {
		src := &cfg.Sources[i]
		if err := Materialize(ctx, root, src); err != nil {
			l.Warnf("failed to initialize source %s: %v\n", src.Origin, err)
			src.Hooks = nil
		}
	}
}

// runSetupScripts runs each hook's setup script once, with the source
// working copy as both working directory and first PATH entry.
func runSetupScripts(ctx context.Context, localPath string, hooks []config.Hook) error {
	env := map[string]string{"PATH": PrefixPath(localPath)}

	for _, h := range hooks {
		if h.SetupScript == nil {
			continue
		}
		words, err := shlex.Split(*h.SetupScript)
		if err != nil {
			return fmt.Errorf("hook %q: invalid setup script: %w", h.Name, err)
		}
		if len(words) == 0 {
			continue
		}

		res, err := cmd.Spawn(ctx, localPath, env, words[0], words[1:]...)
		if err != nil {
			return fmt.Errorf("hook %q: setup script failed to start: %w", h.Name, err)
		}
		if res.ExitCode != 0 {
			if out := strings.TrimSpace(res.Stderr); out != "" {
				log.FromContext(ctx).Warnf("setup script for %q: %s\n", h.Name, out)
			}
			return fmt.Errorf("hook %q: setup script exited with status %d", h.Name, res.ExitCode)
		}
	}
	return nil
}
