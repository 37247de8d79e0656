// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package vartype

import "testing"

func TestNewVariable(t *testing.T) {
	t.Run("a new variable is set", func(t *testing.T) {
		v := NewVariable(12.5)
		if !v.IsSet() {
			t.Fatal("expected variable to be set")
		}
		if v.Value() != 12.5 {
			t.Errorf("expected value to be 12.5, got %f", v.Value())
		}
		if v.String() != "12.5" {
			t.Errorf("expected string to be %q, got %q", "12.5", v.String())
		}
	})
	t.Run("a zero variable is absent", func(t *testing.T) {
		var v VarFloat64
		if v.IsSet() {
			t.Fatal("expected variable to be absent")
		}
		if v.String() != Absent {
			t.Errorf("expected string to be %q, got %q", Absent, v.String())
		}
		if v.Value() != 0 {
			t.Errorf("expected zero value, got %f", v.Value())
		}
	})
}

func TestVariable_Set(t *testing.T) {
	var v VarFloat64
	v.Set(0)
	if !v.IsSet() {
		t.Fatal("expected a zero value to count as set")
	}
	if v.String() != "0" {
		t.Errorf("expected string to be %q, got %q", "0", v.String())
	}
	v.Set(-3.25)
	if v.Value() != -3.25 {
		t.Errorf("expected value -3.25, got %f", v.Value())
	}
}
