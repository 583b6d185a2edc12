package vdom

import "testing"

func TestAssignHIDs(t *testing.T) {
	h := func() {}
	inner := A(OnClick(h))
	root := Fragment(
		Div(OnClick(h)),
		Div(
			Div(inner, Div(Text("static"))),
		),
	)

	gen := NewHIDGenerator()
	AssignHIDs(root, gen)

	if root.Children[0].HID != "h1" {
		t.Errorf("backdrop HID = %q, want h1", root.Children[0].HID)
	}
	if inner.HID != "h2" {
		t.Errorf("inner HID = %q, want h2", inner.HID)
	}
	if root.Children[1].HID != "" {
		t.Error("non-interactive element must not get a HID")
	}
	if gen.Current() != 2 {
		t.Errorf("Current = %d", gen.Current())
	}
	gen.Reset()
	if gen.Next() != "h1" {
		t.Error("Reset should restart numbering")
	}
}

func TestPathTo(t *testing.T) {
	target := Em()
	target.HID = "h9"
	mid := A(target)
	root := Div(Div(), mid)

	path := PathTo(root, "h9")
	if len(path) != 3 || path[0] != root || path[1] != mid || path[2] != target {
		t.Fatalf("PathTo = %v", path)
	}
	if PathTo(root, "missing") != nil {
		t.Error("missing HID should return nil")
	}
	if PathTo(root, "") != nil {
		t.Error("empty HID should return nil")
	}
}

func TestAssignHIDsResolvesComponents(t *testing.T) {
	calls := 0
	comp := Func(func() *VNode {
		calls++
		return Div(OnClick(func() {}))
	})
	root := Div(comp)

	AssignHIDs(root, NewHIDGenerator())
	AssignHIDs(root, NewHIDGenerator())

	if calls != 1 {
		t.Errorf("component rendered %d times, want 1", calls)
	}
	rendered := root.Children[0].Children[0]
	if rendered.HID != "h1" {
		t.Errorf("component output HID = %q", rendered.HID)
	}
}

func TestFindByClass(t *testing.T) {
	want := Div(Class("modal-body"))
	root := Div(Class("modal"), Div(Class("modal-content"), want))
	if FindByClass(root, "modal-body") != want {
		t.Error("FindByClass")
	}
	if FindByClass(root, "nope") != nil {
		t.Error("FindByClass should return nil when absent")
	}
	if n := len(FindAll(root, func(*VNode) bool { return true })); n != 3 {
		t.Errorf("FindAll = %d elements", n)
	}
}

func TestAssignAllHIDs(t *testing.T) {
	root := Div(Span(Text("a")), A(OnClick(func() {})))
	AssignAllHIDs(root, NewHIDGenerator())

	if root.HID != "h1" || root.Children[0].HID != "h2" || root.Children[1].HID != "h3" {
		t.Errorf("HIDs = %q %q %q", root.HID, root.Children[0].HID, root.Children[1].HID)
	}
	if root.Children[0].Children[0].HID != "" {
		t.Error("text nodes must not get a HID")
	}
}
