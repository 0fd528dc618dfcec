//go:build integration

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// TestList_ShowsActiveAndInertHooks verifies the listing marks which
// source hooks are activated by the project.
func TestList_ShowsActiveAndInertHooks(t *testing.T) {
	tmpDir := t.TempDir()

	manifest := `hooks:
  - name: lint
    on_event: [pre-commit]
    action: echo lint
  - name: changelog
    on_event: [post-commit]
    action: echo changelog
`
	sourcePath := setupSourceRepo(t, tmpDir, "team-hooks", manifest)
	repoPath := setupTestRepo(t, tmpDir, "project")

	writeProjectConfig(t, repoPath, `sources:
  - origin: `+sourcePath+`
hooks:
  - name: lint
`)

	t.Chdir(repoPath)

	var logBuf bytes.Buffer
	out, err := executeCommand(testContext(t, &logBuf), newListCmd())
	if err != nil {
		t.Fatalf("list failed: %v\nlog: %s", err, logBuf.String())
	}

	for _, want := range []string{sourcePath, "✓ lint", "- changelog"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// TestList_JSON verifies the machine-readable output.
func TestList_JSON(t *testing.T) {
	tmpDir := t.TempDir()

	manifest := `hooks:
  - name: lint
    action: echo lint
`
	sourcePath := setupSourceRepo(t, tmpDir, "team-hooks", manifest)
	repoPath := setupTestRepo(t, tmpDir, "project")

	writeProjectConfig(t, repoPath, `sources:
  - origin: `+sourcePath+`
hooks:
  - name: lint
`)

	t.Chdir(repoPath)

	var logBuf bytes.Buffer
	out, err := executeCommand(testContext(t, &logBuf), newListCmd(), "--json")
	if err != nil {
		t.Fatalf("list --json failed: %v", err)
	}

	var sources []SourceDisplay
	if err := json.Unmarshal([]byte(out), &sources); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if len(sources) != 1 || len(sources[0].Hooks) != 1 {
		t.Fatalf("unexpected listing: %+v", sources)
	}
	if h := sources[0].Hooks[0]; h.Name != "lint" || !h.Active {
		t.Errorf("hook = %+v, want active lint", h)
	}
}

// TestList_WarnsOnUnknownActivation verifies a typo in the top-level
// hooks list produces a warning.
func TestList_WarnsOnUnknownActivation(t *testing.T) {
	tmpDir := t.TempDir()

	manifest := `hooks:
  - name: lint
    action: echo lint
`
	sourcePath := setupSourceRepo(t, tmpDir, "team-hooks", manifest)
	repoPath := setupTestRepo(t, tmpDir, "project")

	writeProjectConfig(t, repoPath, `sources:
  - origin: `+sourcePath+`
hooks:
  - name: lnit
`)

	t.Chdir(repoPath)

	var logBuf bytes.Buffer
	if _, err := executeCommand(testContext(t, &logBuf), newListCmd()); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(logBuf.String(), `"lnit"`) {
		t.Errorf("log = %q, want warning about unknown hook", logBuf.String())
	}
}
