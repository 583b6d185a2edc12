package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/modal/pkg/dispatch"
	"github.com/vango-dev/modal/pkg/render"
	"github.com/vango-dev/modal/pkg/vdom"
)

// RenderToString renders a VNode and returns the HTML string.
// Render errors yield the empty string.
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
func ExpectElement(t testing.TB, node *vdom.VNode, tag string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// ExpectEmpty asserts that the node renders to nothing.
func ExpectEmpty(t testing.TB, node *vdom.VNode) {
	t.Helper()
	if html := RenderToString(node); html != "" {
		t.Errorf("expected empty output, got:\n%s", truncate(html, 500))
	}
}

// Mounted is a tree with every element addressable by HID.
type Mounted struct {
	Root *vdom.VNode
}

// Mount resolves components and assigns a HID to every element of node.
func Mount(node *vdom.VNode) *Mounted {
	vdom.AssignAllHIDs(node, vdom.NewHIDGenerator())
	return &Mounted{Root: node}
}

// MustFindClass returns the first element carrying the class token or fails the test.
func (m *Mounted) MustFindClass(t testing.TB, token string) *vdom.VNode {
	t.Helper()
	n := vdom.FindByClass(m.Root, token)
	if n == nil {
		t.Fatalf("no element with class %q", token)
	}
	return n
}

// Click dispatches a click whose target is the given element.
func (m *Mounted) Click(t testing.TB, target *vdom.VNode) dispatch.Result {
	t.Helper()
	if target == nil || target.HID == "" {
		t.Fatalf("click target is not mounted")
	}
	res, err := dispatch.Dispatch(m.Root, dispatch.Event{Type: "click", TargetHID: target.HID})
	if err != nil {
		t.Fatalf("dispatch click on %s: %v", target.HID, err)
	}
	return res
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
