package vdom

// On attaches a handler for the named DOM event. The name is stored with an
// "on" prefix, so On("click", h) sets the "onclick" prop.
func On(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// OnClick handles click events.
func OnClick(handler any) EventHandler { return On("click", handler) }
