package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vango-dev/modal/pkg/dispatch"
	"github.com/vango-dev/modal/pkg/middleware"
	"github.com/vango-dev/modal/pkg/modal"
	"github.com/vango-dev/modal/pkg/render"
	"github.com/vango-dev/modal/pkg/vdom"
)

// ErrUnknownMessage is returned for client frames with an unrecognized type.
var ErrUnknownMessage = errors.New("server: unknown message type")

// Dismissal sources, used as metric labels.
const (
	SourceClose    = "close"
	SourceBackdrop = "backdrop"
)

// otherLabel replaces unrecognized sizes and positions in metric labels.
const otherLabel = "other"

// renderLabels returns the metric labels for a render. Unrecognized values
// share otherLabel so client input cannot grow the label set.
func renderLabels(size modal.Size, pos modal.Position) (string, string) {
	sizeLabel, posLabel := string(size), string(pos)
	if !size.Valid() {
		sizeLabel = otherLabel
	}
	if !pos.Valid() {
		posLabel = otherLabel
	}
	return sizeLabel, posLabel
}

// Session holds the page state of one connected client.
type Session struct {
	ID string

	mu         sync.Mutex
	open       bool
	size       modal.Size
	position   modal.Position
	dismissals int
	dismissed  bool
	tree       *vdom.VNode

	dispatcher *dispatch.Dispatcher
	metrics    *middleware.Metrics
	tracer     *middleware.Tracer
	logger     *slog.Logger
}

// NewSession creates a session with the configured defaults.
func NewSession(cfg *Config) *Session {
	id := uuid.NewString()
	logger := cfg.logger().With("session_id", id)
	return &Session{
		ID:         id,
		size:       cfg.DefaultSize,
		position:   cfg.DefaultPosition,
		dispatcher: &dispatch.Dispatcher{Logger: logger},
		metrics:    cfg.Metrics,
		tracer:     cfg.Tracer,
		logger:     logger,
	}
}

// Snapshot returns the current open flag and dismissal count.
func (s *Session) Snapshot() (open bool, dismissals int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open, s.dismissals
}

// Render builds the page body, stores it for dispatch and returns its HTML.
func (s *Session) Render() (ServerMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderLocked()
}

func (s *Session) renderLocked() (ServerMessage, error) {
	tree := s.view()
	vdom.AssignAllHIDs(tree, vdom.NewHIDGenerator())

	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(tree)
	if err != nil {
		return ServerMessage{}, fmt.Errorf("render session %s: %w", s.ID, err)
	}
	s.tree = tree
	size, position := renderLabels(s.size, s.position)
	s.metrics.RecordRender(s.open, size, position)

	return ServerMessage{
		Type:       MsgRender,
		HTML:       html,
		Open:       s.open,
		Dismissals: s.dismissals,
	}, nil
}

// Handle applies one client message and returns the re-rendered page.
func (s *Session) Handle(ctx context.Context, msg ClientMessage) (ServerMessage, error) {
	start := time.Now()

	var err error
	if s.tracer != nil {
		err = s.tracer.TraceEvent(ctx, s.ID, msg.Type, msg.HID, func(context.Context) error {
			return s.apply(msg)
		})
	} else {
		err = s.apply(msg)
	}
	s.metrics.RecordEvent(msg.Type, err, time.Since(start))
	if err != nil {
		return ServerMessage{}, err
	}
	return s.Render()
}

func (s *Session) apply(msg ClientMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch msg.Type {
	case MsgClick:
		if s.tree == nil {
			if _, err := s.renderLocked(); err != nil {
				return err
			}
		}
		s.dismissed = false
		res, err := s.dispatcher.Dispatch(s.tree, dispatch.Event{Type: "click", TargetHID: msg.HID})
		if err != nil {
			return err
		}
		if s.dismissed {
			source := SourceClose
			if res.Target.HasClass(modal.ClassBackdrop) {
				source = SourceBackdrop
			}
			s.metrics.RecordDismiss(source)
			s.logger.Debug("modal dismissed", "source", source, "target", msg.HID)
		}
		return nil

	case MsgOpen:
		if msg.Size != "" {
			s.size, _ = modal.ParseSize(msg.Size)
		}
		if msg.Position != "" {
			s.position, _ = modal.ParsePosition(msg.Position)
		}
		s.open = true
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)
	}
}

// view builds the page body. Handlers run with s.mu held by apply.
func (s *Session) view() *vdom.VNode {
	return vdom.Main(
		vdom.Class("showcase"),
		vdom.Header(vdom.H1("Modal showcase")),
		vdom.Section(
			vdom.Class("controls"),
			vdom.Div(
				vdom.Class("control-group", "sizes"),
				vdom.Span(vdom.Class("label"), "Size"),
				vdom.Range(modal.Sizes(), func(size modal.Size, _ int) *vdom.VNode {
					return s.choice(string(size), size == s.size, func() { s.size = size })
				}),
			),
			vdom.Div(
				vdom.Class("control-group", "positions"),
				vdom.Span(vdom.Class("label"), "Position"),
				vdom.Range(modal.Positions(), func(pos modal.Position, _ int) *vdom.VNode {
					return s.choice(string(pos), pos == s.position, func() { s.position = pos })
				}),
			),
			vdom.If(!s.open, vdom.Button(
				vdom.Type("button"),
				vdom.Class("btn", "btn-primary", "open-modal"),
				vdom.OnClick(func() { s.open = true }),
				"Open modal",
			)),
		),
		vdom.Footer(
			vdom.Class("status"),
			vdom.Ul(
				vdom.Li("Size: ", vdom.Strong(string(s.size))),
				vdom.Li("Position: ", vdom.Strong(string(s.position))),
				vdom.Li("Dialog class: ", vdom.Strong(modal.DialogClass(s.size, s.position))),
			),
			vdom.When(s.dismissals > 0, func() *vdom.VNode {
				return vdom.P(vdom.Class("dismissals"), vdom.Textf("Dismissed %d times", s.dismissals))
			}),
		),
		modal.Modal(
			modal.Open(s.open),
			modal.WithSize(s.size),
			modal.WithPosition(s.position),
			modal.OnDismiss(func() {
				s.open = false
				s.dismissals++
				s.dismissed = true
			}),
			modal.Content(
				vdom.H3("Header"),
				vdom.P("Lorem ipsum dolor sit amet consectetur adipisicing elit."),
			),
		),
	)
}

func (s *Session) choice(label string, active bool, pick func()) *vdom.VNode {
	class := "btn"
	if active {
		class = "btn active"
	}
	return vdom.Button(
		vdom.Type("button"),
		vdom.Class(class),
		vdom.Data("choice", label),
		vdom.OnClick(pick),
		label,
	)
}
