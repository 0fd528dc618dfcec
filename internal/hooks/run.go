package hooks

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/githooks/internal/action"
	"github.com/raphi011/githooks/internal/cmd"
	"github.com/raphi011/githooks/internal/config"
	"github.com/raphi011/githooks/internal/files"
	"github.com/raphi011/githooks/internal/git"
	"github.com/raphi011/githooks/internal/log"
	"github.com/raphi011/githooks/internal/source"
)

// ExecError reports a hook whose command exited non-zero.
type ExecError struct {
	Hook     string
	ExitCode int
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("hook %q exited with status %d", e.Hook, e.ExitCode)
}

// Run executes a single resolved hook against the repository rooted at
// root, using the source's working copy at sourcePath for PATH precedence.
func Run(ctx context.Context, root string, h config.Hook, sourcePath string) error {
	l := log.FromContext(ctx)

	if h.Action == nil {
		return fmt.Errorf("hook %q has no action", h.Name)
	}

	command, tokens, err := action.Parse(*h.Action)
	if err != nil {
		return fmt.Errorf("hook %q: %w", h.Name, err)
	}

	ps, err := files.Compile(h.Patterns())
	if err != nil {
		return fmt.Errorf("hook %q: %w", h.Name, err)
	}

	args, err := expandTokens(ctx, root, h.Name, ps, tokens)
	if err != nil {
		return err
	}

	env := map[string]string{"PATH": source.PrefixPath(sourcePath)}
	l.Debugf("running hook %q: %s %s\n", h.Name, command, strings.Join(args, " "))

	res, err := cmd.Spawn(ctx, root, env, command, args...)
	if err != nil {
		return fmt.Errorf("hook %q: failed to run %s: %w", h.Name, command, err)
	}
	if res.ExitCode != 0 {
		surfaceOutput(l, h.Name, res)
		return &ExecError{Hook: h.Name, ExitCode: res.ExitCode}
	}
	if out := strings.TrimSpace(res.Stdout); out != "" {
		l.Debugf("%s\n", out)
	}

	return restageModified(ctx, root)
}

// expandTokens turns the parsed action tokens into the final argument
// list. A files placeholder that yields no matches marks the invocation as
// a no-op: placeholders already expanded stay, but later literal arguments
// are dropped. The command itself still runs.
func expandTokens(ctx context.Context, root, hookName string, ps *files.PatternSet, tokens []action.Token) ([]string, error) {
	l := log.FromContext(ctx)

	shouldRun := true
	dropped := 0
	var args []string

	for _, tok := range tokens {
		switch tok.Kind {
		case action.Literal:
			if !shouldRun {
				dropped++
				continue
			}
			args = append(args, tok.Text)
		case action.AllFiles:
			matched, err := files.AllFiles(root, ps)
			if err != nil {
				return nil, fmt.Errorf("hook %q: %w", hookName, err)
			}
			if len(matched) == 0 {
				shouldRun = false
			}
			args = append(args, matched...)
		case action.ChangedFiles:
			matched, err := files.ChangedFiles(ctx, root, true, ps)
			if err != nil {
				return nil, fmt.Errorf("hook %q: %w", hookName, err)
			}
			if len(matched) == 0 {
				shouldRun = false
			}
			args = append(args, matched...)
		case action.Root:
			args = append(args, root)
		case action.SingleFile, action.SingleChangedFile:
			return nil, fmt.Errorf("hook %q: %w", hookName, action.ErrReservedPlaceholder)
		}
	}

	if dropped > 0 {
		l.Warnf("hook %q matched no files, dropping %d trailing argument(s)\n", hookName, dropped)
	}
	return args, nil
}

// surfaceOutput forwards a failed hook's captured streams to the logger.
func surfaceOutput(l *log.Logger, hookName string, res cmd.Result) {
	if out := strings.TrimSpace(res.Stdout); out != "" {
		l.Printf("%s\n", out)
	}
	if out := strings.TrimSpace(res.Stderr); out != "" {
		l.Warnf("hook %q: %s\n", hookName, out)
	}
}

// restageModified re-adds staged files the hook modified: any file that is
// both staged and carrying fresh working-tree changes was staged before the
// hook ran and rewritten by it.
func restageModified(ctx context.Context, root string) error {
	staged, err := git.StagedFiles(ctx, root)
	if err != nil {
		return err
	}
	if len(staged) == 0 {
		return nil
	}
	modified, err := git.UnstagedChanges(ctx, root)
	if err != nil {
		return err
	}

	inIndex := make(map[string]bool, len(staged))
	for _, f := range staged {
		inIndex[f] = true
	}
	var restage []string
	for _, f := range modified {
		if inIndex[f] {
			restage = append(restage, f)
		}
	}

	if len(restage) > 0 {
		log.FromContext(ctx).Debugf("re-staging %d file(s) modified by hook\n", len(restage))
	}
	return git.Stage(ctx, root, restage)
}
