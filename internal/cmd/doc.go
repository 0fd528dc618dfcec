// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users. Every call
// echoes the command line through the context logger when verbose mode is
// enabled.
//
// # Usage
//
//	// Run a command, folding stderr into the returned error:
//	if err := cmd.RunContext(ctx, repoPath, "git", "checkout", ref); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//
//	// For commands that return output:
//	out, err := cmd.OutputContext(ctx, repoPath, "git", "diff", "--name-only")
//
//	// For hook actions where both streams and the exit status matter:
//	res, err := cmd.Spawn(ctx, repoPath, env, "eslint", files...)
//
// # Design Notes
//
// githooks shells out to the git CLI and to user-configured hook commands
// rather than using Go libraries. This approach is simpler, more reliable,
// and ensures compatibility with user configurations (SSH keys, credential
// helpers, aliases).
package cmd
