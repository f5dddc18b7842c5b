package maquina

import "testing"

func Test_Examples_AreSyntacticallyValid(t *testing.T) {
	for _, ex := range Examples {
		if err := Validate(ex.Input); err != nil {
			t.Fatalf("example %q rejected by validator: %v", ex.Input, err)
		}
	}
}
