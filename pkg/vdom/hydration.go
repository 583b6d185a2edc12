package vdom

import (
	"fmt"
	"sync"
)

// HIDGenerator generates unique hydration IDs for interactive elements.
type HIDGenerator struct {
	counter uint32
	mu      sync.Mutex
}

// NewHIDGenerator creates a new HIDGenerator.
func NewHIDGenerator() *HIDGenerator {
	return &HIDGenerator{}
}

// Next returns the next hydration ID (e.g., "h1", "h2", ...).
func (g *HIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("h%d", g.counter)
}

// Reset resets the counter to 0.
func (g *HIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter = 0
}

// Current returns the current counter value without incrementing.
func (g *HIDGenerator) Current() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counter
}

// Resolve renders every component node in the tree once and stores the
// output as the component node's only child, so the tree can be walked,
// addressed by HID and rendered without calling Render again.
func Resolve(node *VNode) {
	if node == nil {
		return
	}
	if node.Kind == KindComponent && node.Comp != nil && len(node.Children) == 0 {
		if out := node.Comp.Render(); out != nil {
			node.Children = []*VNode{out}
		}
	}
	for _, child := range node.Children {
		Resolve(child)
	}
}

// AssignHIDs resolves components and assigns HIDs to interactive elements
// in document order. An element is interactive if it has event handlers.
func AssignHIDs(node *VNode, gen *HIDGenerator) {
	Resolve(node)
	assignHIDs(node, gen)
}

func assignHIDs(node *VNode, gen *HIDGenerator) {
	if node == nil {
		return
	}

	if node.Kind == KindElement && node.IsInteractive() {
		node.HID = gen.Next()
	}

	for _, child := range node.Children {
		assignHIDs(child, gen)
	}
}

// AssignAllHIDs resolves components and assigns HIDs to every element, not
// just interactive ones, so any click target can be reported exactly.
func AssignAllHIDs(node *VNode, gen *HIDGenerator) {
	Resolve(node)
	Walk(node, func(n *VNode) bool {
		if n.Kind == KindElement {
			n.HID = gen.Next()
		}
		return true
	})
}

// PathTo returns the chain of nodes from root down to the node with the
// given HID, inclusive at both ends. It returns nil if no node matches.
func PathTo(root *VNode, hid string) []*VNode {
	if root == nil || hid == "" {
		return nil
	}
	if root.HID == hid {
		return []*VNode{root}
	}
	for _, child := range root.Children {
		if sub := PathTo(child, hid); sub != nil {
			return append([]*VNode{root}, sub...)
		}
	}
	return nil
}

// Walk calls fn for every node in document order until fn returns false.
func Walk(node *VNode, fn func(*VNode) bool) bool {
	if node == nil {
		return true
	}
	if !fn(node) {
		return false
	}
	for _, child := range node.Children {
		if !Walk(child, fn) {
			return false
		}
	}
	return true
}

// FindAll returns every element node that satisfies match, in document order.
func FindAll(node *VNode, match func(*VNode) bool) []*VNode {
	var out []*VNode
	Walk(node, func(n *VNode) bool {
		if n.Kind == KindElement && match(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// FindByClass returns the first element carrying the class token.
func FindByClass(node *VNode, token string) *VNode {
	found := FindAll(node, func(n *VNode) bool { return n.HasClass(token) })
	if len(found) == 0 {
		return nil
	}
	return found[0]
}
