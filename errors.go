// errors.go: user-facing error wrapping and caret-snippet rendering.
//
// WrapErrorWithSource turns a *SyntaxError (validator.go) into a readable,
// Python-style snippet with a caret pointing at the offending column:
//
//	SYNTAX ERROR at column 5: invalid character 'x'
//
//	   1 | { $ x }
//	     |     ^
//
// Any other error is returned unchanged. Output is plain text (no ANSI
// colors), suitable for logs and terminals; callers that want color apply
// it themselves.
package maquina

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource returns err augmented with a caret-annotated snippet
// of src when err is a *SyntaxError; other errors pass through untouched.
func WrapErrorWithSource(err error, src string) error {
	e, ok := err.(*SyntaxError)
	if !ok {
		return err
	}
	// Pos is 0-based; render as a 1-based column.
	return fmt.Errorf("%s", prettyErrorString(src, e.Pos+1, e.Error()))
}

// prettyErrorString builds the snippet. Inputs are one line by
// construction; the column is clamped so the caret always lands inside
// the rendered line.
func prettyErrorString(src string, col int, msg string) string {
	line := src
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if col < 1 {
		col = 1
	}
	if col > len(line)+1 {
		col = len(line) + 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SYNTAX ERROR at column %d: %s\n\n", col, msg)
	fmt.Fprintf(&b, "%4d | %s\n", 1, line)
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	return b.String()
}
