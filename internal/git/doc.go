// Package git provides git operations via shell commands.
//
// All operations use [os/exec.Command] to call the git CLI directly rather
// than using Go git libraries. This approach is simpler, more reliable, and
// ensures compatibility with user configurations (SSH keys, credential
// helpers, aliases).
//
// # Repository Operations
//
//   - [Root]: repository top-level directory
//   - [CloneOrUpdate]: ensure a local working copy of an origin exists and
//     is up to date
//   - [Checkout]: move a working copy to a pinned reference
//
// # Index Operations
//
// The hook engine decides which files a hook runs against and which files
// it modified using the index:
//
//   - [StagedFiles]: added/copied/modified files in the index
//   - [UnstagedChanges]: tracked files modified in the working tree
//   - [UntrackedFiles]: untracked files not covered by ignore rules
//   - [Stage]: add paths to the index
package git
