package hooks

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/githooks/internal/config"
)

func TestDispatch_RunsMatchingHook(t *testing.T) {
	t.Parallel()
	repo := setupProjectRepo(t)

	if err := os.WriteFile(filepath.Join(repo, "a.txt"), []byte("a\n"), 0644); err != nil {
		t.Fatalf("failed to write a.txt: %v", err)
	}
	gitRun(t, repo, "add", "a.txt")

	marker := filepath.Join(repo, "lint.out")
	cfg := &config.Config{
		Sources: []config.Source{{
			Origin: "https://example.com/common-hooks",
			Hooks: []config.Hook{{
				Name:        "lint",
				OnEvent:     []config.Event{config.EventPreCommit},
				OnFileRegex: []string{`\.txt$`},
				Action:      strPtr(`sh -c 'echo "$@" > ` + marker + `' lint {changed_files}`),
			}},
		}},
		Hooks: []config.Hook{{Name: "lint"}},
	}

	var buf bytes.Buffer
	if err := Dispatch(logCtx(&buf), repo, config.EventPreCommit, cfg); err != nil {
		t.Fatalf("Dispatch = %v, want nil", err)
	}

	content, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("hook did not run: %v", err)
	}
	if got := strings.TrimSpace(string(content)); got != "a.txt" {
		t.Errorf("hook args = %q, want a.txt", got)
	}
}

func TestDispatch_EventMismatchIsNothingToDo(t *testing.T) {
	t.Parallel()
	repo := setupProjectRepo(t)

	marker := filepath.Join(repo, "never.out")
	cfg := &config.Config{
		Sources: []config.Source{{
			Origin: "https://example.com/common-hooks",
			Hooks: []config.Hook{{
				Name:    "lint",
				OnEvent: []config.Event{config.EventPreCommit},
				Action:  strPtr("sh -c 'touch " + marker + "'"),
			}},
		}},
		Hooks: []config.Hook{{Name: "lint"}},
	}

	var buf bytes.Buffer
	if err := Dispatch(logCtx(&buf), repo, config.EventPostCommit, cfg); err != nil {
		t.Fatalf("Dispatch = %v, want nil", err)
	}
	if _, err := os.Stat(marker); !os.IsNotExist(err) {
		t.Error("hook ran for an event it is not bound to")
	}
	if !strings.Contains(buf.String(), "Nothing to do.") {
		t.Errorf("output = %q, want 'Nothing to do.'", buf.String())
	}
}

func TestDispatch_InertHookNeverRuns(t *testing.T) {
	t.Parallel()
	repo := setupProjectRepo(t)

	// The source hook matches the event but its name is absent from the
	// top-level hooks list, so it must never be dispatched.
	marker := filepath.Join(repo, "inert.out")
	cfg := &config.Config{
		Sources: []config.Source{{
			Origin: "https://example.com/common-hooks",
			Hooks: []config.Hook{{
				Name:    "inert",
				OnEvent: []config.Event{config.EventPreCommit},
				Action:  strPtr("sh -c 'touch " + marker + "'"),
			}},
		}},
	}

	var buf bytes.Buffer
	if err := Dispatch(logCtx(&buf), repo, config.EventPreCommit, cfg); err != nil {
		t.Fatalf("Dispatch = %v, want nil", err)
	}
	if _, err := os.Stat(marker); !os.IsNotExist(err) {
		t.Error("inert hook was dispatched")
	}
	if !strings.Contains(buf.String(), "Nothing to do.") {
		t.Errorf("output = %q, want 'Nothing to do.'", buf.String())
	}
}

func TestDispatch_DefaultEventIsPreCommit(t *testing.T) {
	t.Parallel()
	repo := setupProjectRepo(t)

	marker := filepath.Join(repo, "default.out")
	cfg := &config.Config{
		Sources: []config.Source{{
			Origin: "https://example.com/common-hooks",
			Hooks: []config.Hook{{
				Name:   "defaulted",
				Action: strPtr("sh -c 'touch " + marker + "'"),
			}},
		}},
		Hooks: []config.Hook{{Name: "defaulted"}},
	}

	var buf bytes.Buffer
	if err := Dispatch(logCtx(&buf), repo, config.EventPreCommit, cfg); err != nil {
		t.Fatalf("Dispatch = %v, want nil", err)
	}
	if _, err := os.Stat(marker); err != nil {
		t.Errorf("hook without on_event did not run on pre-commit: %v", err)
	}
}

func TestDispatch_FailureDoesNotStopSiblings(t *testing.T) {
	t.Parallel()
	repo := setupProjectRepo(t)

	marker := filepath.Join(repo, "second.out")
	cfg := &config.Config{
		Sources: []config.Source{{
			Origin: "https://example.com/common-hooks",
			Hooks: []config.Hook{
				{Name: "broken", Action: strPtr("sh -c 'exit 1'")},
				{Name: "fine", Action: strPtr("sh -c 'touch " + marker + "'")},
			},
		}},
		Hooks: []config.Hook{{Name: "broken"}, {Name: "fine"}},
	}

	var buf bytes.Buffer
	err := Dispatch(logCtx(&buf), repo, config.EventPreCommit, cfg)
	if err == nil {
		t.Fatal("Dispatch = nil, want aggregate error")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error = %v, want mention of failing hook", err)
	}
	if _, statErr := os.Stat(marker); statErr != nil {
		t.Errorf("sibling hook did not run after failure: %v", statErr)
	}
}

func TestDispatch_MultipleSources(t *testing.T) {
	t.Parallel()
	repo := setupProjectRepo(t)

	first := filepath.Join(repo, "first.out")
	second := filepath.Join(repo, "second.out")
	cfg := &config.Config{
		Sources: []config.Source{
			{
				Origin: "https://example.com/a",
				Hooks:  []config.Hook{{Name: "one", Action: strPtr("sh -c 'touch " + first + "'")}},
			},
			{
				Origin: "https://example.com/b",
				Hooks:  []config.Hook{{Name: "two", Action: strPtr("sh -c 'touch " + second + "'")}},
			},
		},
		Hooks: []config.Hook{{Name: "one"}, {Name: "two"}},
	}

	var buf bytes.Buffer
	if err := Dispatch(logCtx(&buf), repo, config.EventPreCommit, cfg); err != nil {
		t.Fatalf("Dispatch = %v, want nil", err)
	}
	for _, marker := range []string{first, second} {
		if _, err := os.Stat(marker); err != nil {
			t.Errorf("hook for %s did not run: %v", marker, err)
		}
	}
}
