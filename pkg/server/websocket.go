package server

import (
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
)

// HandleWebSocket upgrades the request and runs one session until the
// client disconnects.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		s.config.Metrics.RecordWebSocketError("upgrade")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.config.MaxMessageSize)

	session := NewSession(s.config)
	logger := s.logger.With("session_id", session.ID)
	s.config.Metrics.RecordSessionStart()
	defer s.config.Metrics.RecordSessionEnd()
	logger.Debug("session started", "remote_addr", r.RemoteAddr)

	msg, err := session.Render()
	if err != nil {
		logger.Error("initial render failed", "error", err)
		return
	}
	if err := conn.WriteJSON(msg); err != nil {
		s.config.Metrics.RecordWebSocketError("write")
		return
	}

	ctx := r.Context()
	for {
		var in ClientMessage
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("websocket read failed", "error", err)
				s.config.Metrics.RecordWebSocketError("read")
			}
			break
		}

		out, err := session.Handle(ctx, in)
		if err != nil {
			logger.Warn("event failed", "type", in.Type, "hid", in.HID, "error", err)
			open, dismissals := session.Snapshot()
			out = ServerMessage{Type: MsgError, Open: open, Dismissals: dismissals, Error: err.Error()}
			if errors.Is(err, ErrUnknownMessage) {
				s.config.Metrics.RecordWebSocketError("protocol")
			}
		}
		if err := conn.WriteJSON(out); err != nil {
			s.config.Metrics.RecordWebSocketError("write")
			break
		}
	}

	open, dismissals := session.Snapshot()
	logger.Debug("session ended", "open", open, "dismissals", dismissals)
}
