// Package dispatch runs event handlers attached to a vdom tree.
//
// The thin client reports an event as (type, target HID). Dispatch rebuilds
// the DOM bubbling order from the tree: the target first, then each ancestor
// up to the root. At every node that has a handler for the event type:
//
//   - a Self handler runs only when that node is the target
//   - a StopPropagation handler ends the walk after it runs
//   - a PreventDefault handler marks the result as default-prevented
//
// The target must carry a HID. Trees built for live dispatch use
// vdom.AssignAllHIDs so every element is addressable and the client can report
// the exact element that was clicked, not just the nearest handler.
package dispatch
