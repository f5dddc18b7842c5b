// builder_test.go
package maquina

import (
	"reflect"
	"strings"
	"testing"
)

func mustBuild(t *testing.T, input string) *Node {
	t.Helper()
	if err := Validate(input); err != nil {
		t.Fatalf("input %q unexpectedly invalid: %v", input, err)
	}
	return Build(input)
}

// chainActions returns the A nodes of a C chain in source order.
func chainActions(c *Node) []*Node {
	var out []*Node
	for c.Prod == ProdChain {
		out = append(out, c.Children[0])
		c = c.Children[1]
	}
	return out
}

// chainEnd returns the terminating C → ε node of a chain.
func chainEnd(c *Node) *Node {
	for c.Prod == ProdChain {
		c = c.Children[1]
	}
	return c
}

func Test_Builder_EmptyProgram(t *testing.T) {
	for _, input := range []string{"{}", "{ }", "{    }"} {
		root := mustBuild(t, input)
		if root.Symbol != SymProgram || root.Prod != ProdProgram || len(root.Children) != 3 {
			t.Fatalf("root of %q = %q prod %d with %d children", input, root.Symbol, root.Prod, len(root.Children))
		}
		c := root.Children[1]
		if c.Prod != ProdEmpty || len(c.Children) != 1 || c.Children[0].Symbol != SymEpsilon {
			t.Fatalf("content of %q is not C → ε", input)
		}
	}
}

func Test_Builder_TokenChainShape(t *testing.T) {
	root := mustBuild(t, "{ $ R < }")
	actions := chainActions(root.Children[1])
	want := []Production{ProdInsert, ProdPurchase, ProdReturn}
	got := make([]Production, len(actions))
	for i, a := range actions {
		got[i] = a.Prod
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("action productions = %v, want %v", got, want)
	}
	end := chainEnd(root.Children[1])
	if end.Prod != ProdEmpty || end.Children[0].Symbol != SymEpsilon {
		t.Fatalf("chain does not end in ε")
	}
}

func Test_Builder_NestedBlock(t *testing.T) {
	root := mustBuild(t, "{ { $ } }")
	actions := chainActions(root.Children[1])
	if len(actions) != 1 || actions[0].Prod != ProdBlock {
		t.Fatalf("want a single block action, got %d actions", len(actions))
	}
	block := actions[0]
	if len(block.Children) != 3 || block.Children[0].Symbol != "{" || block.Children[2].Symbol != "}" {
		t.Fatalf("block action is not A → { C }")
	}
	inner := chainActions(block.Children[1])
	if len(inner) != 1 || inner[0].Prod != ProdInsert {
		t.Fatalf("inner chain wrong: %d actions", len(inner))
	}
}

func Test_Builder_LeafSequenceMatchesInput(t *testing.T) {
	inputs := []string{
		"{ $ $ $ R }",
		"{ $ { $ $ $ R } < }",
		"{$R<}",
		"{ $ { R < } $ }",
		"{ { { $ } } }",
	}
	for _, input := range inputs {
		root := mustBuild(t, input)
		var want []string
		for _, r := range input {
			switch r {
			case '$', 'R', '<':
				want = append(want, string(r))
			}
		}
		got := root.TokenLeaves()
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("leaves of %q = %v, want %v", input, got, want)
		}
	}
}

func Test_Builder_StrayBracesFromMultipleTopLevelBlocks(t *testing.T) {
	// "{}{}" passes validation (delimiters, balance, and alphabet are
	// global checks) although it is not a single block: the content
	// between the outer braces is "}{". The stray '}' is skipped and
	// the unmatched '{' still closes into a complete subtree.
	root := mustBuild(t, "{}{}")
	actions := chainActions(root.Children[1])
	if len(actions) != 1 || actions[0].Prod != ProdBlock {
		t.Fatalf("want a single block action, got %d actions", len(actions))
	}
	inner := actions[0].Children[1]
	if inner.Prod != ProdEmpty || inner.Children[0].Symbol != SymEpsilon {
		t.Fatalf("inner content of the stray block is not C → ε")
	}

	root = mustBuild(t, "{}{}{}")
	if got := len(chainActions(root.Children[1])); got != 2 {
		t.Fatalf("want 2 block actions, got %d", got)
	}

	root = mustBuild(t, "{ } { $ }")
	end := chainEnd(root.Children[1])
	if end.Prod != ProdEmpty {
		t.Fatalf("chain over stray braces does not end in ε")
	}
}

func Test_Builder_SpacingDoesNotChangeShape(t *testing.T) {
	a := RenderIndented(mustBuild(t, "{ $ R }"))
	b := RenderIndented(mustBuild(t, "{$R}"))
	if a != b {
		t.Fatalf("trees differ:\n%s\n----\n%s", a, b)
	}
	if !strings.Contains(a, SymEpsilon) {
		t.Fatalf("rendered tree lost the ε leaf:\n%s", a)
	}
}
