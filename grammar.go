// grammar.go — grammar symbols, production tags, and the decorated
// derivation-tree node.
//
// The language is fixed, four productions over the alphabet { } $ R < :
//
//	P → { C }
//	C → A C | ε
//	A → $ | R | < | { C }
//
// Every node carries the semantic attributes that Decorate (evaluator.go)
// fills in: running balance, validity, nesting depth, per-block purchase
// count, and the diagnostics produced at or below the node. A finished
// tree is read-only; renderers may share it freely.
package maquina

// NodeKind distinguishes terminal leaves from non-terminal interior nodes.
type NodeKind int

const (
	Terminal NodeKind = iota
	NonTerminal
)

// Production tags the grammar rule applied at a non-terminal. Decoration
// dispatches on this tag, never on symbol strings.
type Production int

const (
	ProdLeaf     Production = iota // terminal, no production applied
	ProdProgram                    // P → { C }
	ProdEmpty                      // C → ε
	ProdChain                      // C → A C
	ProdInsert                     // A → $
	ProdPurchase                   // A → R
	ProdReturn                     // A → <
	ProdBlock                      // A → { C }
)

// Grammar symbols as they appear in rendered trees.
const (
	SymProgram = "P"
	SymContent = "C"
	SymAction  = "A"
	SymEpsilon = "ε"
)

// Node is one vertex of the concrete derivation tree. Children are in
// grammar order and are never reordered or appended to after Build.
type Node struct {
	Symbol   string
	Kind     NodeKind
	Prod     Production
	Children []*Node

	// Semantic attributes, written exactly once by Decorate. Errors holds
	// the diagnostics produced at this node plus those adopted from its
	// decorated children, in production order.
	Balance   int
	Valid     bool
	Depth     int
	Purchases int
	Errors    []string
}

func newTerminal(sym string) *Node {
	return &Node{Symbol: sym, Kind: Terminal, Prod: ProdLeaf, Valid: true}
}

func newNonTerminal(sym string, prod Production) *Node {
	return &Node{Symbol: sym, Kind: NonTerminal, Prod: prod, Valid: true}
}

// TokenLeaves returns the action terminals of the tree in source order,
// skipping braces and ε. For any built tree this equals the input with
// spaces and braces removed.
func (n *Node) TokenLeaves() []string {
	var out []string
	var walk func(*Node)
	walk = func(m *Node) {
		if m.Kind == Terminal {
			switch m.Symbol {
			case "{", "}", SymEpsilon:
			default:
				out = append(out, m.Symbol)
			}
			return
		}
		for _, c := range m.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}
