// render_test.go
package maquina

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decoratedTree(t *testing.T, input string) *Node {
	t.Helper()
	res := Analyze(input)
	require.NotNil(t, res.Tree, "input %q should build a tree", input)
	return res.Tree
}

func Test_Render_Visual_EmptyProgram(t *testing.T) {
	want := `P[balance=0, valid=true, depth=1, purchases=0]
├── {
├── C[balance=0, valid=true, depth=1, purchases=0]
│   └── ε
└── }`
	assert.Equal(t, want, RenderVisual(decoratedTree(t, "{ }")))
}

func Test_Render_Visual_FailedPurchase(t *testing.T) {
	want := `P[balance=0, valid=false, depth=1, purchases=0]
    ⚠ ERROR: insufficient balance to buy a drink (balance 1, need 3)
├── {
├── C[balance=0, valid=false, depth=1, purchases=0]
│   ⚠ ERROR: insufficient balance to buy a drink (balance 1, need 3)
│   ├── A[balance=1, valid=true, depth=1, purchases=0]
│   │   └── $
│   └── C[balance=0, valid=false, depth=1, purchases=0]
│       ⚠ ERROR: insufficient balance to buy a drink (balance 1, need 3)
│       ├── A[balance=1, valid=false, depth=1, purchases=0]
│       │   ⚠ ERROR: insufficient balance to buy a drink (balance 1, need 3)
│       │   └── R
│       └── C[balance=0, valid=true, depth=1, purchases=0]
│           └── ε
└── }`
	assert.Equal(t, want, RenderVisual(decoratedTree(t, "{ $ R }")))
}

func Test_Render_Indented_EmptyProgram(t *testing.T) {
	want := `P (balance=0, valid=true, depth=1, purchases=0)
  {
  C (balance=0, valid=true, depth=1, purchases=0)
    ε
  }`
	assert.Equal(t, want, RenderIndented(decoratedTree(t, "{ }")))
}

func Test_Render_Indented_ErrorsOneLevelDeeper(t *testing.T) {
	got := RenderIndented(decoratedTree(t, "{ < }"))
	assert.Contains(t, got, "  ERROR: no coin to return")
	assert.Contains(t, got, "<")
}

func Test_Render_IsPureAndRepeatable(t *testing.T) {
	tree := decoratedTree(t, "{ $ { $ $ R } < }")
	v1 := RenderVisual(tree)
	i1 := RenderIndented(tree)
	// Rendering again, in either order, changes nothing.
	assert.Equal(t, i1, RenderIndented(tree))
	assert.Equal(t, v1, RenderVisual(tree))
}
