// Package files decides which files a hook runs against.
//
// A [PatternSet] holds the compiled file patterns of one hook. Patterns use
// regular-expression semantics with an unanchored substring search, matching
// the path's string form. Directories and anything under a .git directory
// never match, regardless of patterns.
//
// Two selectors produce the concrete file list for a hook:
//
//   - [AllFiles]: recursively walks a root directory
//   - [ChangedFiles]: asks git for staged or untracked files
//
// Both return an empty list, not an error, when nothing matches.
package files
