package server

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/golia-dev/golia/pkg/transpile"
)

// handleSocket serves the live transpile socket: each text frame of
// raw HTML is answered with a frame of builder code. The connection
// stays open until the client disconnects.
func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", "err", err)
		return
	}
	defer conn.Close()

	s.logger.Info("live socket connected", "remote", r.RemoteAddr)
	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("live socket read", "err", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		s.metrics.transpileBytes.Observe(float64(len(data)))
		code := transpile.Document(string(data))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(code)); err != nil {
			s.logger.Warn("live socket write", "err", err)
			return
		}
	}
}
