package files

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/raphi011/githooks/internal/git"
)

// AllFiles recursively walks root and returns every path matching the
// pattern set, in walk order. Traversal order is not guaranteed to be
// stable across platforms.
func AllFiles(root string, ps *PatternSet) ([]string, error) {
	var matched []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == gitDirElement {
				return filepath.SkipDir
			}
			return nil
		}
		if ps.Matches(path) {
			matched = append(matched, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matched, nil
}

// ChangedFiles returns the changed files of the repository at repoPath,
// filtered through the pattern set. staged selects files added/copied/
// modified in the index; otherwise untracked (not ignored) files are
// listed. Paths are relative to the repository root, as git reports them.
func ChangedFiles(ctx context.Context, repoPath string, staged bool, ps *PatternSet) ([]string, error) {
	changed, err := git.ChangedFiles(ctx, repoPath, staged)
	if err != nil {
		return nil, err
	}
	var matched []string
	for _, f := range changed {
		if ps.Matches(f) {
			matched = append(matched, f)
		}
	}
	return matched, nil
}
