// Package vtest provides testing helpers for components.
//
// Render assertions work on the HTML a node renders to:
//
//	vtest.ExpectContains(t, node, "Welcome")
//	vtest.ExpectAttribute(t, node, "role", "dialog")
//
// Mount makes every element addressable and lets a test click elements the
// way the browser would report them, with bubbling:
//
//	m := vtest.Mount(modal.Modal(modal.Open(true), modal.OnDismiss(fn)))
//	m.Click(t, m.MustFindClass(t, "modal-backdrop"))
package vtest
