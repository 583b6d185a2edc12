// Package render turns vdom trees into HTML.
//
// Output is deterministic: attributes are written in sorted order, text and
// attribute values are escaped, and void elements are never closed.
// Interactive elements carry a data-hid attribute plus marker attributes the
// thin client reads to decide which DOM events to forward:
//
//	data-on-click="true"     a click handler is attached
//	data-pd-click="true"     call preventDefault before forwarding
//	data-sp-click="true"     call stopPropagation before forwarding
//	data-self-click="true"   forward only when target == currentTarget
//
// Basic usage:
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(node)
//
// HIDs already present on the tree (see vdom.AssignHIDs) are reused so the
// rendered HTML and the server-side handler tree agree. Elements without one
// get the next id from the renderer's own counter.
package render
