package git

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Root returns the top-level directory of the repository containing the
// current working directory. Fails if not inside a repository.
func Root(ctx context.Context) (string, error) {
	output, err := outputGit(ctx, "", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %v", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// RootOf returns the top-level directory of the repository containing dir.
func RootOf(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %v", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CloneOrUpdate ensures localPath holds a working copy of origin.
// If the directory doesn't exist it is cloned, otherwise fast-forwarded
// on its current branch. Returns localPath.
func CloneOrUpdate(ctx context.Context, origin, localPath string) (string, error) {
	info, err := os.Stat(localPath)
	if err == nil && info.IsDir() {
		if err := runGit(ctx, localPath, "pull", "--ff-only"); err != nil {
			return "", fmt.Errorf("failed to update %s: %w", origin, err)
		}
		return localPath, nil
	}

	if err := os.MkdirAll(localPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create clone destination: %w", err)
	}
	if err := runGit(ctx, "", "clone", origin, localPath); err != nil {
		return "", fmt.Errorf("failed to clone %s: %w", origin, err)
	}
	return localPath, nil
}

// Checkout moves the working copy at repoPath to the given reference.
// Fails if the reference cannot be resolved in that repository.
func Checkout(ctx context.Context, reference, repoPath string) error {
	if err := runGit(ctx, repoPath, "rev-parse", "--verify", reference); err != nil {
		return fmt.Errorf("could not find reference %q in %s: %w", reference, repoPath, err)
	}
	if err := runGit(ctx, repoPath, "checkout", reference); err != nil {
		return fmt.Errorf("failed to checkout %q: %w", reference, err)
	}
	return nil
}

// StagedFiles returns the added/copied/modified files in the index relative
// to the last commit. Paths are relative to the repository root.
func StagedFiles(ctx context.Context, repoPath string) ([]string, error) {
	output, err := outputGit(ctx, repoPath, "diff", "--name-only", "--diff-filter=ACM", "--cached")
	if err != nil {
		return nil, fmt.Errorf("failed to list staged files: %w", err)
	}
	return splitLines(output), nil
}

// UnstagedChanges returns tracked files whose working-tree content differs
// from the index. This is how the engine detects files a hook modified
// after they were staged.
func UnstagedChanges(ctx context.Context, repoPath string) ([]string, error) {
	output, err := outputGit(ctx, repoPath, "diff", "--name-only", "--diff-filter=ACM")
	if err != nil {
		return nil, fmt.Errorf("failed to list unstaged changes: %w", err)
	}
	return splitLines(output), nil
}

// UntrackedFiles returns files not tracked by git and not ignored.
func UntrackedFiles(ctx context.Context, repoPath string) ([]string, error) {
	output, err := outputGit(ctx, repoPath, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, fmt.Errorf("failed to list untracked files: %w", err)
	}
	return splitLines(output), nil
}

// ChangedFiles returns staged files when staged is true, otherwise untracked
// (not ignored) files.
func ChangedFiles(ctx context.Context, repoPath string, staged bool) ([]string, error) {
	if staged {
		return StagedFiles(ctx, repoPath)
	}
	return UntrackedFiles(ctx, repoPath)
}

// Stage adds the given paths to the index. No-op for an empty list.
func Stage(ctx context.Context, repoPath string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, paths...)
	if err := runGit(ctx, repoPath, args...); err != nil {
		return fmt.Errorf("failed to stage files: %w", err)
	}
	return nil
}

// splitLines splits command output into trimmed, non-empty lines.
func splitLines(output []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(output), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
