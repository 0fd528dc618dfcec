package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/raphi011/githooks/internal/log"
)

// RunContext executes a command in dir (or the working directory if dir is
// empty) and returns stderr in the error message if it fails.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stderr bytes.Buffer
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
			return fmt.Errorf("%s", errMsg)
		}
		return err
	}
	return nil
}

// OutputContext executes a command in dir and returns stdout, with stderr in
// the error if it fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stderr bytes.Buffer
	c.Stderr = &stderr
	output, err := c.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
			return nil, fmt.Errorf("%s", errMsg)
		}
		return nil, err
	}
	return output, nil
}

// Result holds the outcome of a spawned command with both streams captured.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Spawn runs a command synchronously, capturing stdout and stderr fully.
// env entries override (or add to) the inherited process environment.
// A non-zero exit is reported through Result.ExitCode, not through the
// returned error; the error is non-nil only when the process could not be
// started or the context was cancelled.
func Spawn(ctx context.Context, dir string, env map[string]string, name string, args ...string) (Result, error) {
	log.FromContext(ctx).Command(name, args...)

	// os/exec resolves the binary against the parent's PATH, so an
	// overridden PATH must be applied to the lookup by hand.
	if pathVal, ok := env["PATH"]; ok {
		resolved, err := lookPathIn(pathVal, name)
		if err != nil {
			return Result{ExitCode: -1}, err
		}
		name = resolved
	}

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Env = mergeEnv(os.Environ(), env)

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		if ctx.Err() != nil {
			return Result{ExitCode: -1}, ctx.Err()
		}
		if _, ok := err.(*exec.ExitError); !ok {
			return Result{ExitCode: -1}, err
		}
		// Process ran and exited non-zero; the caller inspects ExitCode.
	}
	return Result{
		ExitCode: c.ProcessState.ExitCode(),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}

// lookPathIn resolves name against an explicit PATH value. Names containing
// a path separator are returned as-is.
func lookPathIn(pathVal, name string) (string, error) {
	if strings.ContainsRune(name, os.PathSeparator) {
		return name, nil
	}
	for _, dir := range filepath.SplitList(pathVal) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() && info.Mode()&0111 != 0 {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%s: executable file not found in PATH", name)
}

// mergeEnv overlays overrides onto base ("KEY=VALUE" entries), replacing
// existing keys and appending new ones.
func mergeEnv(base []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return base
	}

	seen := make(map[string]bool, len(overrides))
	merged := make([]string, 0, len(base)+len(overrides))
	for _, entry := range base {
		key, _, ok := strings.Cut(entry, "=")
		if ok {
			if val, replaced := overrides[key]; replaced {
				merged = append(merged, key+"="+val)
				seen[key] = true
				continue
			}
		}
		merged = append(merged, entry)
	}
	for key, val := range overrides {
		if !seen[key] {
			merged = append(merged, key+"="+val)
		}
	}
	return merged
}
