//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/raphi011/githooks/internal/log"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// testContext returns a context carrying a logger that writes to buf.
func testContext(t *testing.T, buf *bytes.Buffer) context.Context {
	t.Helper()
	return log.WithLogger(context.Background(), log.New(buf, false, false))
}

// executeCommand runs a command with args, capturing its cobra output.
func executeCommand(ctx context.Context, cmd *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}

// gitIn runs a git command in dir, failing the test on error.
func gitIn(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

// setupTestRepo creates a git repo with an initial commit in dir/name.
// Returns the absolute path to the created repo (with symlinks resolved).
func setupTestRepo(t *testing.T, dir, name string) string {
	t.Helper()

	dir = resolvePath(t, dir)
	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	gitIn(t, repoPath, "init")
	gitIn(t, repoPath, "config", "user.email", "test@test.com")
	gitIn(t, repoPath, "config", "user.name", "Test User")
	gitIn(t, repoPath, "config", "commit.gpgsign", "false")

	readmePath := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readmePath, []byte("# "+name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	gitIn(t, repoPath, "add", "README.md")
	gitIn(t, repoPath, "commit", "-m", "Initial commit")

	return repoPath
}

// setupSourceRepo creates a hook source repo carrying the given
// hooks.yml manifest.
func setupSourceRepo(t *testing.T, dir, name, manifest string) string {
	t.Helper()

	repoPath := setupTestRepo(t, dir, name)
	if err := os.WriteFile(filepath.Join(repoPath, "hooks.yml"), []byte(manifest), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	gitIn(t, repoPath, "add", "hooks.yml")
	gitIn(t, repoPath, "commit", "-m", "Add hooks manifest")

	return repoPath
}

// writeProjectConfig writes a .hooks.yml into the project repo.
func writeProjectConfig(t *testing.T, repoPath, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(repoPath, ".hooks.yml"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write .hooks.yml: %v", err)
	}
}
