package vango

import "testing"

func TestModifierWrappers(t *testing.T) {
	called := false
	h := func() { called = true }

	tests := []struct {
		name    string
		wrapped ModifiedHandler
		pd      bool
		sp      bool
		self    bool
	}{
		{"PreventDefault", PreventDefault(h), true, false, false},
		{"StopPropagation", StopPropagation(h), false, true, false},
		{"Self", Self(h), false, false, true},
		{"Composed", PreventDefault(StopPropagation(Self(h))), true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wrapped.PreventDefault != tt.pd || tt.wrapped.StopPropagation != tt.sp || tt.wrapped.Self != tt.self {
				t.Errorf("flags = pd:%v sp:%v self:%v", tt.wrapped.PreventDefault, tt.wrapped.StopPropagation, tt.wrapped.Self)
			}
			fn, ok := tt.wrapped.Unwrap().(func())
			if !ok {
				t.Fatalf("Unwrap returned %T", tt.wrapped.Unwrap())
			}
			called = false
			fn()
			if !called {
				t.Error("unwrapped handler is not the original")
			}
		})
	}
}

func TestFlagsCollapsesNestedWrappers(t *testing.T) {
	h := func() {}
	nested := ModifiedHandler{Handler: ModifiedHandler{Handler: h, Self: true}, PreventDefault: true}

	flags, ok := Flags(nested)
	if !ok {
		t.Fatal("expected modifiers")
	}
	if !flags.Self || !flags.PreventDefault || flags.StopPropagation {
		t.Errorf("flags = %+v", flags)
	}
	if _, isWrapper := flags.Handler.(ModifiedHandler); isWrapper {
		t.Error("Flags should expose the innermost handler")
	}

	plain, ok := Flags(h)
	if ok || plain.Self || plain.PreventDefault {
		t.Error("plain handler has no modifiers")
	}
}
