package modal

import (
	"fmt"
	"strconv"

	"github.com/vango-dev/modal/pkg/vango"
	"github.com/vango-dev/modal/pkg/vdom"
)

// Fixed stacking order of the two layers.
const (
	BackdropZIndex = 50
	DialogZIndex   = 1050
)

// Class names of the structural elements.
const (
	ClassBackdrop = "modal-backdrop"
	ClassModal    = "modal"
	ClassDialog   = "modal-dialog"
	ClassContent  = "modal-content"
	ClassClose    = "modal-close"
	ClassBody     = "modal-body"
)

const (
	fadeShow   = "fade show"
	bodyExtras = "p-md-4 p-lg-5 mfp-s-ready mfp-iframe-holder"
	closeIcon  = "ti ti-close"
)

// Option configures a Modal.
type Option func(*config)

type config struct {
	open      bool
	size      Size
	position  Position
	content   []any
	onDismiss func()
}

func defaultConfig() config {
	return config{
		size:     DefaultSize,
		position: DefaultPosition,
	}
}

// Open sets whether the modal is shown.
func Open(open bool) Option {
	return func(c *config) {
		c.open = open
	}
}

// WithSize sets the dialog size. The empty Size keeps the default.
func WithSize(size Size) Option {
	return func(c *config) {
		if size != "" {
			c.size = size
		}
	}
}

// WithPosition sets the dialog position. The empty Position keeps the default.
func WithPosition(pos Position) Option {
	return func(c *config) {
		if pos != "" {
			c.position = pos
		}
	}
}

// Content sets the dialog body. These child types are passed to the body
// element unchanged: nil (skipped), string (escaped text), *vdom.VNode,
// []*vdom.VNode and vdom.Component. A fmt.Stringer renders its String()
// as text, and any other value renders as text formatted with %v.
func Content(children ...any) Option {
	return func(c *config) {
		c.content = make([]any, 0, len(children))
		for _, child := range children {
			c.content = append(c.content, contentChild(child))
		}
	}
}

func contentChild(child any) any {
	switch v := child.(type) {
	case nil, string, *vdom.VNode, []*vdom.VNode, vdom.Component:
		return v
	case fmt.Stringer:
		return vdom.Text(v.String())
	default:
		return vdom.Textf("%v", v)
	}
}

// OnDismiss sets the callback run when the user asks to close the modal.
func OnDismiss(fn func()) Option {
	return func(c *config) {
		c.onDismiss = fn
	}
}

// DialogClass returns the class attribute of the dialog element for the
// given size and position.
func DialogClass(size Size, pos Position) string {
	return vdom.CN(ClassDialog, SizeClass(size), PositionClass(pos))
}

// Modal renders the overlay, or nil when it is not open.
func Modal(opts ...Option) *vdom.VNode {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.open {
		return nil
	}

	dismiss := func() {
		if cfg.onDismiss != nil {
			cfg.onDismiss()
		}
	}

	backdrop := vdom.Div(
		vdom.Class(ClassBackdrop, fadeShow),
		vdom.StyleAttr("z-index: "+strconv.Itoa(BackdropZIndex)),
		vdom.OnClick(vango.Self(dismiss)),
	)

	closeLink := vdom.A(
		vdom.Href("#"),
		vdom.Class(ClassClose),
		vdom.AriaLabel("Close"),
		vdom.OnClick(vango.PreventDefault(dismiss)),
		vdom.Em(vdom.Class(closeIcon)),
	)

	dialog := vdom.Div(
		vdom.Class(ClassModal, fadeShow),
		vdom.StyleAttr("display: block; padding-left: 0px; z-index: "+strconv.Itoa(DialogZIndex)),
		vdom.AriaModal(true),
		vdom.Role("dialog"),
		vdom.Div(
			vdom.Class(DialogClass(cfg.size, cfg.position)),
			vdom.Div(
				vdom.Class(ClassContent),
				closeLink,
				vdom.Div(append([]any{vdom.Class(ClassBody, bodyExtras)}, cfg.content...)...),
			),
		),
	)

	return vdom.Fragment(backdrop, dialog)
}

// Render is the positional form of Modal. Empty size or position select
// the defaults; a nil onDismiss makes dismissal a no-op.
func Render(visible bool, size Size, position Position, content any, onDismiss func()) *vdom.VNode {
	return Modal(
		Open(visible),
		WithSize(size),
		WithPosition(position),
		Content(content),
		OnDismiss(onDismiss),
	)
}
