package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"honnef.co/go/spiro/internal/log"
	"honnef.co/go/spiro/internal/request"
)

const (
	wsMaxMessageSize = 4 * 1024
	wsIdleTimeout    = 5 * time.Minute
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 16 * 1024,
}

// handleWebSocket answers every JSON query received on the connection with
// a complete pattern, or an error message. Invalid queries don't close the
// connection.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	// The handshake response is written by the upgrader, not through w.
	header := http.Header{RequestIDHeader: {w.Header().Get(RequestIDHeader)}}
	conn, err := upgrader.Upgrade(w, r, header)
	if err != nil {
		// The upgrader has already replied to the client.
		logger(r, s.logger).Warn("WebSocket upgrade failed", log.Error(err))
		return
	}
	defer conn.Close()

	connLogger := logger(r, s.logger).With(log.String("remote_addr", conn.RemoteAddr().String()))
	connLogger.Debug("WebSocket client connected")
	defer connLogger.Debug("WebSocket client disconnected")

	conn.SetReadLimit(wsMaxMessageSize)
	for {
		conn.SetReadDeadline(time.Now().Add(wsIdleTimeout))
		typ, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				connLogger.Debug("WebSocket read failed", log.Error(err))
			}
			return
		}
		if typ != websocket.TextMessage {
			continue
		}

		reply := s.answer(r, data)
		if s.config.WriteTimeout > 0 {
			conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
		}
		if err := conn.WriteJSON(reply); err != nil {
			connLogger.Warn("WebSocket write failed", log.Error(err))
			return
		}
	}
}

func (s *Server) answer(r *http.Request, data []byte) any {
	var q request.Query
	if err := json.Unmarshal(data, &q); err != nil {
		var rerr *request.Error
		if errors.As(err, &rerr) {
			return ErrorResponse{Message: rerr.Message}
		}
		return ErrorResponse{Message: "malformed query: " + err.Error()}
	}
	p, err := q.Pattern()
	if err != nil {
		return ErrorResponse{Message: err.Error()}
	}
	return PatternResponse{Points: s.points(r, q, p)}
}
