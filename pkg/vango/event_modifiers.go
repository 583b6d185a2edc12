package vango

// ModifiedHandler wraps a handler with modifier flags.
// The client applies PreventDefault and StopPropagation to the DOM event;
// the dispatcher applies Self and StopPropagation while bubbling.
type ModifiedHandler struct {
	// The wrapped handler function
	Handler any

	PreventDefault  bool // Prevent default browser behavior
	StopPropagation bool // Stop event bubbling
	Self            bool // Only fire if target is the exact element
}

// Unwrap returns the innermost handler, unwrapping any nested ModifiedHandlers.
func (m ModifiedHandler) Unwrap() any {
	if inner, ok := m.Handler.(ModifiedHandler); ok {
		return inner.Unwrap()
	}
	return m.Handler
}

// Flags returns the modifier flags of handler, collapsing nested wrappers.
// The second result is false when handler carries no modifiers.
func Flags(handler any) (ModifiedHandler, bool) {
	mh, ok := handler.(ModifiedHandler)
	if !ok {
		return ModifiedHandler{Handler: handler}, false
	}
	for {
		inner, ok := mh.Handler.(ModifiedHandler)
		if !ok {
			return mh, true
		}
		mh = mh.merge(inner)
	}
}

// merge combines this ModifiedHandler with another, inheriting all flags.
func (m ModifiedHandler) merge(other ModifiedHandler) ModifiedHandler {
	if other.PreventDefault {
		m.PreventDefault = true
	}
	if other.StopPropagation {
		m.StopPropagation = true
	}
	if other.Self {
		m.Self = true
	}
	m.Handler = other.Handler
	return m
}

// PreventDefault wraps a handler to prevent the default browser behavior.
//
// Example:
//
//	A(Href("#"), OnClick(vango.PreventDefault(func() {
//	    // Click handled, no navigation to "#"
//	})))
func PreventDefault(handler any) ModifiedHandler {
	if mh, ok := handler.(ModifiedHandler); ok {
		result := mh
		result.PreventDefault = true
		return result
	}
	return ModifiedHandler{Handler: handler, PreventDefault: true}
}

// StopPropagation wraps a handler to stop event bubbling.
func StopPropagation(handler any) ModifiedHandler {
	if mh, ok := handler.(ModifiedHandler); ok {
		result := mh
		result.StopPropagation = true
		return result
	}
	return ModifiedHandler{Handler: handler, StopPropagation: true}
}

// Self wraps a handler to only fire if the event target is the exact element.
//
// Example:
//
//	Div(Class("modal-backdrop"), OnClick(vango.Self(func() {
//	    // Only fires if the backdrop itself was clicked
//	})))
func Self(handler any) ModifiedHandler {
	if mh, ok := handler.(ModifiedHandler); ok {
		result := mh
		result.Self = true
		return result
	}
	return ModifiedHandler{Handler: handler, Self: true}
}
