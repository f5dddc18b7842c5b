// analyzer.go — PUBLIC ENTRY POINT of the vending-machine analyzer.
//
// OVERVIEW
// --------
// This file exposes the one operation collaborators need: Analyze. The
// pipeline is fixed:
//
//	input ──► Validate ──► Build ──► Decorate ──► Result
//
// Two disjoint error tiers come out of it:
//
//   - Structural (syntax) errors: Validate rejects the input before any
//     tree exists. Analysis aborts, Result.Tree is nil, and Errors holds
//     exactly one diagnostic.
//   - Semantic errors: found during decoration. The tree is still fully
//     built and returned — every syntactically valid string yields a
//     complete, renderable tree, valid or not — and Errors carries the
//     ordered global diagnostic list.
//
// Analyze is a pure function of its input: no shared state survives a
// call, so concurrent calls with independent results are safe. The
// returned tree is immutable and may be rendered repeatedly (render.go).
package maquina

import "strings"

// Result is the outcome of one Analyze call.
type Result struct {
	// Tree is the decorated derivation tree, nil only when the input
	// failed syntactic validation.
	Tree *Node
	// Valid reports the overall verdict: the root is valid and no
	// diagnostics were produced.
	Valid bool
	// Errors is the ordered global diagnostic list. Exactly one entry for
	// a syntax failure; zero or more semantic diagnostics otherwise.
	Errors []string
}

// Analyze validates input, builds its derivation tree, and decorates it
// with semantic attributes.
func Analyze(input string) Result {
	s := strings.TrimSpace(input)
	if serr := Validate(s); serr != nil {
		return Result{Errors: []string{serr.Error()}}
	}
	tree := Build(s)
	valid, errs := Decorate(tree)
	return Result{Tree: tree, Valid: valid, Errors: errs}
}
