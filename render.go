// render.go — text renderings of a decorated derivation tree.
package maquina

import (
	"fmt"
	"strings"
)

// RenderVisual renders the tree with box-drawing connectors, one line per
// node. Non-terminals show their attribute payload and any diagnostics
// recorded at the node; terminals show only their symbol. Pure: the tree
// is never mutated.
func RenderVisual(root *Node) string {
	var b strings.Builder
	renderVisual(&b, root, "", true, true)
	return strings.TrimSuffix(b.String(), "\n")
}

func renderVisual(b *strings.Builder, n *Node, prefix string, last, isRoot bool) {
	line := ""
	if !isRoot {
		connector := "├── "
		if last {
			connector = "└── "
		}
		line = prefix + connector
	}

	if n.Kind == NonTerminal {
		fmt.Fprintf(b, "%s%s%s\n", line, n.Symbol, attrPayload(n, "[", "]"))
		if len(n.Errors) > 0 {
			errPrefix := prefix + "│   "
			if last {
				errPrefix = prefix + "    "
			}
			for _, e := range n.Errors {
				fmt.Fprintf(b, "%s⚠ ERROR: %s\n", errPrefix, e)
			}
		}
	} else {
		fmt.Fprintf(b, "%s%s\n", line, n.Symbol)
	}

	childPrefix := ""
	if !isRoot {
		if last {
			childPrefix = prefix + "    "
		} else {
			childPrefix = prefix + "│   "
		}
	}
	for i, child := range n.Children {
		renderVisual(b, child, childPrefix, i == len(n.Children)-1, false)
	}
}

// RenderIndented renders the tree with two-space indentation per level,
// the same attribute payload in parentheses, and diagnostics indented one
// extra level. Pure, like RenderVisual.
func RenderIndented(root *Node) string {
	var b strings.Builder
	renderIndented(&b, root, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

func renderIndented(b *strings.Builder, n *Node, level int) {
	indent := strings.Repeat("  ", level)
	if n.Kind == NonTerminal {
		fmt.Fprintf(b, "%s%s %s\n", indent, n.Symbol, attrPayload(n, "(", ")"))
		for _, e := range n.Errors {
			fmt.Fprintf(b, "%s  ERROR: %s\n", indent, e)
		}
	} else {
		fmt.Fprintf(b, "%s%s\n", indent, n.Symbol)
	}
	for _, child := range n.Children {
		renderIndented(b, child, level+1)
	}
}

func attrPayload(n *Node, open, shut string) string {
	return fmt.Sprintf("%sbalance=%d, valid=%t, depth=%d, purchases=%d%s",
		open, n.Balance, n.Valid, n.Depth, n.Purchases, shut)
}
