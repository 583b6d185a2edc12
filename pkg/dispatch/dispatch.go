package dispatch

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vango-dev/modal/pkg/vango"
	"github.com/vango-dev/modal/pkg/vdom"
)

// ErrUnknownTarget is returned when no node in the tree carries the target HID.
var ErrUnknownTarget = errors.New("dispatch: unknown target")

// Event is a client event addressed to an element.
type Event struct {
	// Type is the DOM event name without the "on" prefix (e.g. "click").
	Type string

	// TargetHID is the hydration ID of the element the event originated on.
	TargetHID string

	// Target is the node the event originated on. Set by Dispatch.
	Target *vdom.VNode

	// CurrentTarget is the node whose handler is running. Set by Dispatch.
	CurrentTarget *vdom.VNode
}

// Handler is the internal handler type all supported signatures are adapted to.
type Handler func(e *Event)

// Result reports what happened while an event bubbled.
type Result struct {
	Target           *vdom.VNode
	Invoked          int  // number of handlers called
	DefaultPrevented bool // a PreventDefault handler ran
	Stopped          bool // a StopPropagation handler ended bubbling
}

// Dispatcher dispatches events against a tree. The zero value is usable and
// logs nothing.
type Dispatcher struct {
	Logger *slog.Logger
}

// Dispatch is shorthand for a zero Dispatcher.
func Dispatch(root *vdom.VNode, e Event) (Result, error) {
	return (&Dispatcher{}).Dispatch(root, e)
}

// Dispatch delivers e to the target node and its ancestors in bubbling order.
func (d *Dispatcher) Dispatch(root *vdom.VNode, e Event) (Result, error) {
	path := vdom.PathTo(root, e.TargetHID)
	if len(path) == 0 {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownTarget, e.TargetHID)
	}

	target := path[len(path)-1]
	e.Target = target
	res := Result{Target: target}

	for i := len(path) - 1; i >= 0; i-- {
		node := path[i]
		raw := node.Handler(e.Type)
		if raw == nil {
			continue
		}

		flags, _ := vango.Flags(raw)
		if flags.Self && node != target {
			d.debug("skip self handler on bubbled event", "type", e.Type, "target", e.TargetHID, "node", node.HID)
			continue
		}

		e.CurrentTarget = node
		wrap(flags.Handler, d.Logger)(&e)
		res.Invoked++

		if flags.PreventDefault {
			res.DefaultPrevented = true
		}
		if flags.StopPropagation {
			res.Stopped = true
			break
		}
	}

	return res, nil
}

func (d *Dispatcher) debug(msg string, args ...any) {
	if d.Logger != nil {
		d.Logger.Debug(msg, args...)
	}
}

// wrap converts a user-provided handler to the internal Handler type.
func wrap(value any, logger *slog.Logger) Handler {
	switch h := value.(type) {
	case func():
		return func(*Event) { h() }
	case func(*Event):
		return h
	case Handler:
		return h
	default:
		if logger != nil {
			logger.Warn("unrecognized handler type; handler will not be called",
				"type", fmt.Sprintf("%T", value))
		}
		return func(*Event) {}
	}
}
