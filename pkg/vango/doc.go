// Package vango holds the event modifiers shared by components.
//
// Modifiers wrap a handler and tell both the thin client (through marker
// attributes written by package render) and the server-side dispatcher how
// the event should be treated:
//
//	OnClick(vango.PreventDefault(close))     // link does not navigate
//	OnClick(vango.Self(close))               // ignore clicks bubbled from children
//	OnClick(vango.PreventDefault(vango.StopPropagation(fn)))
package vango
