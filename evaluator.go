// evaluator.go — attribute-grammar decoration of the derivation tree.
//
// OVERVIEW
// --------
// Decorate runs one recursive pass over a tree produced by Build and
// fills in every node's semantic attributes. Two attribute directions are
// threaded through the pass:
//
//   - Inherited: the balance and per-block purchase count accumulated
//     *before* a node's token, passed down as an explicit scope parameter.
//   - Synthesized: the balance/count *after* the token, plus validity and
//     diagnostics, returned up and written into the node exactly once.
//
// Domain rules:
//
//   - $  inserts a coin: balance +1, always valid.
//   - R  buys a drink: requires balance ≥ 3 (checked first) and fewer
//     than 3 purchases so far in the block (checked second). On success
//     balance −3, purchases +1; on failure the state is unchanged.
//   - <  returns a coin: requires balance ≥ 1; on success balance −1.
//   - { C }  opens an isolated sub-scope: the inner content is evaluated
//     at depth+1 with a fresh zero state, and its outcome never leaks
//     into the enclosing balance or quota. Validity and diagnostics do
//     propagate upward.
//
// Depth gate: content deeper than MaxNestingDepth is not evaluated at
// all — the offending node is marked invalid with a single diagnostic and
// its descendants keep their defaults.
//
// The empty production C → ε reports balance 0 / purchases 0 regardless
// of the inherited state, so every chain — and therefore the root —
// renders a final balance of 0. All balance checks happen during the
// chain walk, before this reset, so validity is unaffected.
//
// Diagnostics propagate in production order (action first, then the chain
// tail; inner block before whatever follows it), which makes the root's
// error list the ordered global diagnostic list.
package maquina

import "fmt"

// Domain constants: a drink costs 3 coins, at most 3 drinks per block,
// and blocks may nest at most 3 levels deep.
const (
	PurchasePrice   = 3
	PurchaseQuota   = 3
	MaxNestingDepth = 3
)

// scope carries the inherited attributes threaded through a token chain.
type scope struct {
	balance   int
	purchases int
}

// Decorate evaluates the tree in place. It returns the overall verdict
// and the ordered global diagnostic list; after it returns the tree is
// immutable and safe to render from any number of callers.
func Decorate(root *Node) (bool, []string) {
	root.Depth = 1
	content := root.Children[1]
	decorateContent(content, 1, scope{})

	// P → { C }: copy the content's synthesis verbatim.
	root.Balance = content.Balance
	root.Valid = content.Valid
	root.Purchases = content.Purchases
	root.Errors = append(root.Errors, content.Errors...)

	global := make([]string, len(root.Errors))
	copy(global, root.Errors)
	return root.Valid && len(global) == 0, global
}

// decorateContent evaluates a C node at the given depth with the given
// inherited state and returns the state after its whole chain.
func decorateContent(c *Node, depth int, before scope) scope {
	c.Depth = depth
	if gateDepth(c, depth) {
		return before
	}

	if c.Prod == ProdEmpty {
		// C → ε: the end-of-chain reset. Overwrites the inherited state;
		// validity was already settled during the chain walk.
		c.Balance, c.Purchases = 0, 0
		return scope{}
	}

	// C → A C
	action, tail := c.Children[0], c.Children[1]
	mid := decorateAction(action, depth, before)
	after := decorateContent(tail, depth, mid)

	c.Balance = tail.Balance
	c.Purchases = tail.Purchases
	c.Valid = action.Valid && tail.Valid
	c.Errors = append(c.Errors, action.Errors...)
	c.Errors = append(c.Errors, tail.Errors...)
	return after
}

// decorateAction evaluates one A node. The returned scope is the state
// the rest of the chain inherits.
func decorateAction(a *Node, depth int, before scope) scope {
	a.Depth = depth
	if gateDepth(a, depth) {
		return before
	}

	switch a.Prod {
	case ProdInsert:
		after := scope{balance: before.balance + 1, purchases: before.purchases}
		a.Balance, a.Purchases = after.balance, after.purchases
		return after

	case ProdPurchase:
		// Balance is checked strictly before the quota.
		if before.balance < PurchasePrice {
			a.Valid = false
			a.Errors = append(a.Errors, fmt.Sprintf(
				"insufficient balance to buy a drink (balance %d, need %d)",
				before.balance, PurchasePrice))
			a.Balance, a.Purchases = before.balance, before.purchases
			return before
		}
		if before.purchases >= PurchaseQuota {
			a.Valid = false
			a.Errors = append(a.Errors, fmt.Sprintf(
				"purchase limit of %d drinks per block exceeded", PurchaseQuota))
			a.Balance, a.Purchases = before.balance, before.purchases
			return before
		}
		after := scope{balance: before.balance - PurchasePrice, purchases: before.purchases + 1}
		a.Balance, a.Purchases = after.balance, after.purchases
		return after

	case ProdReturn:
		if before.balance < 1 {
			a.Valid = false
			a.Errors = append(a.Errors, "no coin to return")
			a.Balance, a.Purchases = before.balance, before.purchases
			return before
		}
		after := scope{balance: before.balance - 1, purchases: before.purchases}
		a.Balance, a.Purchases = after.balance, after.purchases
		return after

	case ProdBlock:
		// A → { C }: isolated sub-scope. Fresh zero state inside, the
		// enclosing state passes through unchanged; only validity and
		// diagnostics cross the boundary.
		inner := a.Children[1]
		decorateContent(inner, depth+1, scope{})
		a.Balance, a.Purchases = before.balance, before.purchases
		a.Valid = inner.Valid
		a.Errors = append(a.Errors, inner.Errors...)
		return before
	}
	return before
}

// gateDepth enforces the nesting limit. A gated node is invalid, carries
// one diagnostic, and none of its descendants are evaluated.
func gateDepth(n *Node, depth int) bool {
	if depth <= MaxNestingDepth {
		return false
	}
	n.Valid = false
	n.Errors = append(n.Errors,
		fmt.Sprintf("nesting limit of %d levels exceeded (level %d)", MaxNestingDepth, depth))
	return true
}
