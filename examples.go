// examples.go — the canned demo strings shared by the CLI and the TUI.
package maquina

// Example pairs a demo input with a short description of its outcome.
type Example struct {
	Input string
	Note  string
}

// Examples is the demo set, covering every diagnostic the evaluator can
// produce.
var Examples = []Example{
	{"{ $ $ $ R }", "valid: three coins, one purchase"},
	{"{ $ { $ $ $ R } < }", "valid: nested block with its own balance"},
	{"{ $ $ $ $ $ $ $ $ $ R R R }", "valid: nine coins fund exactly three purchases"},
	{"{ $ R }", "invalid: insufficient balance"},
	{"{ $ { $ $ R } < }", "invalid: insufficient balance inside the nested block"},
	{"{ { { { $ $ $ R } } } }", "invalid: nesting limit exceeded"},
	{"{ < }", "invalid: no coin to return"},
	{"{ $ $ $ $ R R R R }", "invalid: repeated purchases without funds"},
}
