package server

// Client message types.
const (
	MsgClick = "click" // a click on the element with HID
	MsgOpen  = "open"  // open the modal, optionally with a size and position
)

// Server message types.
const (
	MsgRender = "render"
	MsgError  = "error"
)

// ClientMessage is a frame sent by the thin client.
type ClientMessage struct {
	Type     string `json:"type"`
	HID      string `json:"hid,omitempty"`
	Size     string `json:"size,omitempty"`
	Position string `json:"position,omitempty"`
}

// ServerMessage is a frame sent to the thin client.
type ServerMessage struct {
	Type       string `json:"type"`
	HTML       string `json:"html,omitempty"`
	Open       bool   `json:"open"`
	Dismissals int    `json:"dismissals"`
	Error      string `json:"error,omitempty"`
}
