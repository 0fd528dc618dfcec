package files

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// gitDirElement is the VCS metadata directory excluded from every match.
const gitDirElement = ".git"

// PatternSet holds the compiled file patterns of one hook.
type PatternSet struct {
	patterns []*regexp.Regexp
}

// Compile compiles the given pattern strings into a PatternSet.
// An empty list yields a set that matches every file.
// Returns an error if any pattern is not a valid regular expression;
// this is a configuration error, not a runtime condition.
func Compile(patterns []string) (*PatternSet, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid file pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return &PatternSet{patterns: compiled}, nil
}

// Matches reports whether path is eligible for the hook owning this set.
// Directories and paths under a .git directory never match. Otherwise the
// path matches if at least one pattern matches its string form; an empty
// set matches everything.
func (ps *PatternSet) Matches(path string) bool {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return false
	}
	if underGitDir(path) {
		return false
	}
	if len(ps.patterns) == 0 {
		return true
	}
	for _, re := range ps.patterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// underGitDir reports whether any element of path is the .git directory.
func underGitDir(path string) bool {
	for _, elem := range strings.Split(filepath.ToSlash(path), "/") {
		if elem == gitDirElement {
			return true
		}
	}
	return false
}
