package vtest

import (
	"testing"

	"github.com/vango-dev/modal/pkg/vdom"
)

func TestRenderAssertions(t *testing.T) {
	node := vdom.Div(vdom.Role("dialog"), vdom.Span("hello"))

	ExpectContains(t, node, "hello")
	ExpectNotContains(t, node, "goodbye")
	ExpectElement(t, node, "span")
	ExpectAttribute(t, node, "role", "dialog")
	ExpectEmpty(t, nil)
}

func TestMountAndClick(t *testing.T) {
	clicks := 0
	leaf := vdom.Span("x")
	root := vdom.Div(vdom.Class("box"), vdom.OnClick(func() { clicks++ }), leaf)

	m := Mount(root)
	if leaf.HID == "" {
		t.Fatal("Mount should address every element")
	}
	if m.MustFindClass(t, "box") != root {
		t.Error("MustFindClass")
	}

	res := m.Click(t, leaf)
	if clicks != 1 || res.Invoked != 1 {
		t.Errorf("clicks = %d, result = %+v", clicks, res)
	}
}

func TestTruncate(t *testing.T) {
	if truncate("abc", 5) != "abc" || truncate("abcdef", 3) != "abc..." {
		t.Error("truncate")
	}
}
