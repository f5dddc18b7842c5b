// builder.go — concrete derivation-tree construction.
//
// Build assumes its input already passed Validate and does no defensive
// re-validation. Each block's content becomes a right-leaning C chain,
// one A per token, closed by an explicit ε leaf.
package maquina

import "strings"

// Build constructs the derivation tree for a validated input string and
// returns the P root.
func Build(input string) *Node {
	s := strings.TrimSpace(input)
	root := newNonTerminal(SymProgram, ProdProgram)
	content := newNonTerminal(SymContent, ProdEmpty)
	root.Children = []*Node{newTerminal("{"), content, newTerminal("}")}
	buildContent(content, s[1:len(s)-1])
	return root
}

// buildContent realizes C → A C | ε over one block's content.
func buildContent(c *Node, content string) {
	content = strings.TrimSpace(content)
	// Validate only guarantees global brace balance, so the content
	// between the outer braces can still hold stray closers ("{}{}"
	// validates but its content is "}{"). Skip them like any other
	// unrecognized character in chain position.
	for strings.HasPrefix(content, "}") {
		content = strings.TrimSpace(content[1:])
	}
	if content == "" {
		c.Prod = ProdEmpty
		c.Children = []*Node{newTerminal(SymEpsilon)}
		return
	}

	tok, rest := nextToken(content)
	next := newNonTerminal(SymContent, ProdEmpty)
	c.Prod = ProdChain
	c.Children = []*Node{buildAction(tok), next}
	buildContent(next, rest)
}

// nextToken splits one token off the front of a trimmed, non-empty
// content string. Single-character actions consume one byte; a '{' scans
// to its matching '}' (depth-balanced). An unmatched '{' — possible when
// stray closers were skipped before it — consumes the rest of the
// content.
func nextToken(content string) (tok, rest string) {
	if content[0] != '{' {
		return content[:1], content[1:]
	}
	depth := 1
	j := 1
	for j < len(content) && depth > 0 {
		switch content[j] {
		case '{':
			depth++
		case '}':
			depth--
		}
		j++
	}
	return content[:j], content[j:]
}

// buildAction wraps one consumed token in its A node. Block tokens get a
// fresh C subtree built from the text between the matched braces.
func buildAction(tok string) *Node {
	a := newNonTerminal(SymAction, ProdInsert)
	switch tok {
	case "$":
		a.Prod = ProdInsert
		a.Children = []*Node{newTerminal("$")}
	case "R":
		a.Prod = ProdPurchase
		a.Children = []*Node{newTerminal("R")}
	case "<":
		a.Prod = ProdReturn
		a.Children = []*Node{newTerminal("<")}
	default: // "{ ... }", closing brace possibly missing
		a.Prod = ProdBlock
		inner := newNonTerminal(SymContent, ProdEmpty)
		a.Children = []*Node{newTerminal("{"), inner, newTerminal("}")}
		body := ""
		if len(tok) > 1 {
			body = tok[1 : len(tok)-1]
		}
		buildContent(inner, body)
	}
	return a
}
