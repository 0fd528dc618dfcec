// Package action parses hook action strings into a command and typed
// argument tokens.
//
// Action strings are split with POSIX shell-like word rules (quoting, no
// variable expansion, no globbing). Each argument token is checked against
// a fixed placeholder vocabulary; unrecognized tokens pass through as
// literals.
package action

import (
	"errors"
	"fmt"

	"github.com/google/shlex"
)

// Kind identifies what an argument token expands to.
type Kind int

const (
	// Literal is a plain argument, passed through verbatim.
	Literal Kind = iota
	// AllFiles expands to every matching file under the repository root.
	AllFiles
	// SingleFile is reserved for a per-file execution mode. Unimplemented:
	// expanding it would turn one invocation into one process per file.
	SingleFile
	// ChangedFiles expands to the matching files staged in the index.
	ChangedFiles
	// SingleChangedFile is reserved, see SingleFile.
	SingleChangedFile
	// Root expands to the repository top-level directory.
	Root
)

// Token is one parsed unit of an action string.
type Token struct {
	Kind Kind
	Text string
}

// ErrEmptyAction indicates an action string with no command word.
var ErrEmptyAction = errors.New("action has no command")

// ErrReservedPlaceholder indicates use of {file} or {changed_file}, which
// are reserved and must never be silently ignored.
var ErrReservedPlaceholder = errors.New("per-file placeholders {file} and {changed_file} are not supported")

// Parse splits an action string into the command name and its argument
// tokens. The first word is the command; each remaining word is classified
// against the placeholder vocabulary.
func Parse(actionStr string) (string, []Token, error) {
	words, err := shlex.Split(actionStr)
	if err != nil {
		return "", nil, fmt.Errorf("invalid action %q: %w", actionStr, err)
	}
	if len(words) == 0 {
		return "", nil, ErrEmptyAction
	}

	command := words[0]
	tokens := make([]Token, 0, len(words)-1)
	for _, word := range words[1:] {
		tokens = append(tokens, Token{Kind: classify(word), Text: word})
	}
	return command, tokens, nil
}

// classify maps a word to its placeholder kind, or Literal.
func classify(word string) Kind {
	switch word {
	case "{files}":
		return AllFiles
	case "{file}":
		return SingleFile
	case "{changed_files}":
		return ChangedFiles
	case "{changed_file}":
		return SingleChangedFile
	case "{root}":
		return Root
	default:
		return Literal
	}
}
