// Package modal renders a dialog overlay: a backdrop plus a dialog box.
//
// The component is stateless. The caller owns the open flag and is told
// about close requests through OnDismiss, fired by the close link or by a
// click that lands on the backdrop itself:
//
//	modal.Modal(
//	    modal.Open(s.open),
//	    modal.WithSize(modal.SizeLarge),
//	    modal.WithPosition(modal.PositionBottom),
//	    modal.OnDismiss(func() { s.open = false }),
//	    modal.Content(H3("Header"), P("Body")),
//	)
//
// A closed modal renders nothing (a nil node).
//
// Size and position each map to at most one class token:
//
//	small        (none)         top     (none)
//	large        modal-lg       center  modal-dialog-centered
//	extra-large  modal-xl       bottom  modal-dialog-bottom
//
// Unknown values resolve to no class rather than an error.
package modal
