// validator.go — lexical/structural gate run before any tree is built.
//
// Validate is fail-fast: it reports the first violation and nothing else.
// Only inputs it accepts may be handed to Build.
package maquina

import (
	"fmt"
	"strings"
)

// SyntaxErrorKind enumerates the structural violations Validate detects,
// in the order they are checked.
type SyntaxErrorKind int

const (
	MissingDelimiters SyntaxErrorKind = iota
	UnbalancedBraces
	InvalidCharacter
)

// SyntaxError reports the first structural violation found in an input.
// Pos is a 0-based byte offset into the trimmed input; Char is meaningful
// only for InvalidCharacter.
type SyntaxError struct {
	Kind SyntaxErrorKind
	Pos  int
	Char rune
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case MissingDelimiters:
		return "input must start with '{' and end with '}'"
	case UnbalancedBraces:
		return "unbalanced braces"
	case InvalidCharacter:
		return fmt.Sprintf("invalid character %q", e.Char)
	default:
		return "syntax error"
	}
}

// Validate checks input against the surface grammar and returns nil when
// it is structurally sound. Checks run in a fixed order: outer delimiters,
// brace balance, then the alphabet. Leading/trailing whitespace is
// ignored.
func Validate(input string) *SyntaxError {
	s := strings.TrimSpace(input)
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return &SyntaxError{Kind: MissingDelimiters}
	}

	depth := 0
	for i, r := range s {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return &SyntaxError{Kind: UnbalancedBraces, Pos: i, Char: r}
			}
		}
	}
	if depth != 0 {
		return &SyntaxError{Kind: UnbalancedBraces, Pos: len(s) - 1}
	}

	for i, r := range s {
		switch r {
		case '{', '}', '$', 'R', '<', ' ':
		default:
			return &SyntaxError{Kind: InvalidCharacter, Pos: i, Char: r}
		}
	}
	return nil
}
