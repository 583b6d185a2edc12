// Package server is the showcase server for the modal component.
//
// Each browser tab gets a Session over a WebSocket. The session owns the
// page state (open flag, size, position) and renders the page body with
// every element addressable by HID. The thin client forwards clicks as
// {"type":"click","hid":"h7"}; the session dispatches them through the
// tree, which runs the modal's dismiss handler or the page's controls, and
// sends the re-rendered body back as {"type":"render","html":"..."}.
//
// Routes:
//
//	GET /            showcase page
//	GET /modal       stateless HTML preview (?open=&size=&position=&content=)
//	GET /ws          live session
//	GET /static/...  stylesheet
//	GET /healthz     liveness probe
//	GET /metrics     Prometheus metrics
package server
