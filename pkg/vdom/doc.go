// Package vdom provides the virtual DOM used by the modal kit.
//
// The tree lives on the server. It is rendered to HTML by package render,
// and browser events come back addressed by hydration ID (HID) so package
// dispatch can run the handlers attached to the tree.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("modal-content"),
//	    A(Href("#"), OnClick(close), Em(Class("ti ti-close"))),
//	    Div(Class("modal-body"), body),
//	)
//
// nil arguments are skipped, which keeps conditional attributes and children
// inline.
//
// # Hydration
//
// AssignHIDs walks the tree and assigns hydration IDs to interactive
// elements (those with event handlers). PathTo returns the ancestor chain of
// an element, which is the route an event bubbles along.
package vdom
