package maquina

import (
	"errors"
	"strings"
	"testing"
)

func mustContain(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("output does not contain %q:\n%s", sub, s)
	}
}

func Test_Errors_CaretSnippetForInvalidCharacter(t *testing.T) {
	src := "{ x }"
	serr := Validate(src)
	if serr == nil {
		t.Fatal("want a syntax error")
	}
	wrapped := WrapErrorWithSource(serr, src)
	msg := wrapped.Error()
	mustContain(t, msg, "SYNTAX ERROR at column 3")
	mustContain(t, msg, "invalid character 'x'")
	mustContain(t, msg, "   1 | { x }")
	mustContain(t, msg, "     |   ^")
}

func Test_Errors_CaretClampedForMissingDelimiters(t *testing.T) {
	src := "$ R"
	wrapped := WrapErrorWithSource(Validate(src), src)
	mustContain(t, wrapped.Error(), "start with '{'")
	mustContain(t, wrapped.Error(), "^")
}

func Test_Errors_ForeignErrorsPassThrough(t *testing.T) {
	err := errors.New("boom")
	if got := WrapErrorWithSource(err, "{ }"); got != err {
		t.Fatalf("foreign error was rewritten: %v", got)
	}
}
