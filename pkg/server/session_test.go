package server

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vango-dev/modal/pkg/dispatch"
	"github.com/vango-dev/modal/pkg/modal"
	"github.com/vango-dev/modal/pkg/vdom"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(DefaultConfig())
	if _, err := s.Render(); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return s
}

func openSession(t *testing.T, s *Session, size, position string) ServerMessage {
	t.Helper()
	msg, err := s.Handle(context.Background(), ClientMessage{Type: MsgOpen, Size: size, Position: position})
	if err != nil {
		t.Fatalf("Handle(open) error: %v", err)
	}
	return msg
}

func hidOf(t *testing.T, s *Session, match func(*vdom.VNode) bool) string {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	nodes := vdom.FindAll(s.tree, match)
	if len(nodes) == 0 {
		t.Fatal("no element matched")
	}
	return nodes[0].HID
}

func classHID(t *testing.T, s *Session, token string) string {
	t.Helper()
	return hidOf(t, s, func(n *vdom.VNode) bool { return n.HasClass(token) })
}

func tagHID(t *testing.T, s *Session, tag string) string {
	t.Helper()
	return hidOf(t, s, func(n *vdom.VNode) bool { return n.Tag == tag })
}

func click(t *testing.T, s *Session, hid string) ServerMessage {
	t.Helper()
	msg, err := s.Handle(context.Background(), ClientMessage{Type: MsgClick, HID: hid})
	if err != nil {
		t.Fatalf("Handle(click %s) error: %v", hid, err)
	}
	return msg
}

func TestSessionInitialRenderIsClosed(t *testing.T) {
	s := NewSession(DefaultConfig())
	msg, err := s.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if msg.Type != MsgRender {
		t.Errorf("Type = %q, want %q", msg.Type, MsgRender)
	}
	if msg.Open {
		t.Error("new session should start closed")
	}
	if strings.Contains(msg.HTML, modal.ClassBackdrop) {
		t.Errorf("closed session rendered a backdrop:\n%s", msg.HTML)
	}
	if !strings.Contains(msg.HTML, "Open modal") {
		t.Errorf("expected open button in:\n%s", msg.HTML)
	}
}

func TestSessionOpenAppliesSizeAndPosition(t *testing.T) {
	s := newTestSession(t)
	msg := openSession(t, s, "lg", "bottom")

	if !msg.Open {
		t.Fatal("expected modal to be open")
	}
	if !strings.Contains(msg.HTML, `class="modal-dialog modal-lg modal-dialog-bottom"`) {
		t.Errorf("expected large bottom dialog in:\n%s", msg.HTML)
	}
}

func TestSessionOpenKeepsDefaults(t *testing.T) {
	s := newTestSession(t)
	msg := openSession(t, s, "", "")

	if !strings.Contains(msg.HTML, `class="modal-dialog modal-xl modal-dialog-centered"`) {
		t.Errorf("expected default dialog classes in:\n%s", msg.HTML)
	}
}

func TestSessionDismissals(t *testing.T) {
	tests := []struct {
		name      string
		target    func(*testing.T, *Session) string
		dismissed bool
	}{
		{"backdrop", func(t *testing.T, s *Session) string { return classHID(t, s, modal.ClassBackdrop) }, true},
		{"close link", func(t *testing.T, s *Session) string { return classHID(t, s, modal.ClassClose) }, true},
		{"close icon", func(t *testing.T, s *Session) string { return classHID(t, s, "ti-close") }, true},
		{"content heading", func(t *testing.T, s *Session) string { return tagHID(t, s, "h3") }, false},
		{"modal body", func(t *testing.T, s *Session) string { return classHID(t, s, modal.ClassBody) }, false},
		{"dialog layer", func(t *testing.T, s *Session) string { return classHID(t, s, modal.ClassDialog) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			openSession(t, s, "", "")

			msg := click(t, s, tt.target(t, s))
			if msg.Open == tt.dismissed {
				t.Errorf("Open = %v, want %v", msg.Open, !tt.dismissed)
			}
			wantCount := 0
			if tt.dismissed {
				wantCount = 1
			}
			if msg.Dismissals != wantCount {
				t.Errorf("Dismissals = %d, want %d", msg.Dismissals, wantCount)
			}
		})
	}
}

func TestSessionReopenAfterDismiss(t *testing.T) {
	s := newTestSession(t)
	openSession(t, s, "sm", "top")
	click(t, s, classHID(t, s, modal.ClassBackdrop))

	msg := click(t, s, classHID(t, s, "open-modal"))
	if !msg.Open {
		t.Fatal("open button should reopen the modal")
	}
	if !strings.Contains(msg.HTML, `class="modal-dialog"`) {
		t.Errorf("small top dialog should carry only the base class:\n%s", msg.HTML)
	}
	open, dismissals := s.Snapshot()
	if !open || dismissals != 1 {
		t.Errorf("Snapshot() = (%v, %d), want (true, 1)", open, dismissals)
	}
}

func TestSessionChoiceButtons(t *testing.T) {
	s := newTestSession(t)

	hid := hidOf(t, s, func(n *vdom.VNode) bool { return n.Props["data-choice"] == "large" })
	click(t, s, hid)
	hid = hidOf(t, s, func(n *vdom.VNode) bool { return n.Props["data-choice"] == "top" })
	click(t, s, hid)

	msg := openSession(t, s, "", "")
	if !strings.Contains(msg.HTML, `class="modal-dialog modal-lg"`) {
		t.Errorf("expected large top dialog in:\n%s", msg.HTML)
	}
	if !strings.Contains(msg.HTML, `class="btn active" data-choice="large"`) {
		t.Errorf("expected large choice to be active in:\n%s", msg.HTML)
	}
}

func TestSessionErrors(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Handle(context.Background(), ClientMessage{Type: MsgClick, HID: "h999"})
	if !errors.Is(err, dispatch.ErrUnknownTarget) {
		t.Errorf("unknown hid error = %v, want ErrUnknownTarget", err)
	}

	_, err = s.Handle(context.Background(), ClientMessage{Type: "scroll"})
	if !errors.Is(err, ErrUnknownMessage) {
		t.Errorf("unknown type error = %v, want ErrUnknownMessage", err)
	}
}

func TestSessionStatusFooter(t *testing.T) {
	s := newTestSession(t)
	initial, err := s.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.Contains(initial.HTML, "Dismissed") {
		t.Errorf("no dismissal count expected before the first dismissal:\n%s", initial.HTML)
	}
	if !strings.Contains(initial.HTML, ">modal-dialog modal-xl modal-dialog-centered</strong>") {
		t.Errorf("footer should show the resolved dialog class:\n%s", initial.HTML)
	}

	opened := openSession(t, s, "lg", "top")
	if strings.Contains(opened.HTML, "open-modal") {
		t.Errorf("open button should be hidden while the modal is open:\n%s", opened.HTML)
	}

	closed := click(t, s, classHID(t, s, modal.ClassClose))
	if !strings.Contains(closed.HTML, "Dismissed 1 times") {
		t.Errorf("expected dismissal count in:\n%s", closed.HTML)
	}
	if !strings.Contains(closed.HTML, ">large</strong>") {
		t.Errorf("footer should show the chosen size:\n%s", closed.HTML)
	}
}
