package server

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/spiro/internal/request"
)

func TestWebSocketPattern(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	s := httptest.NewServer(srv.Handler())
	defer s.Close()

	u := "ws" + strings.TrimPrefix(s.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))

	q := request.Query{
		Guide:       request.Circle,
		Wheel:       request.Circle,
		GuideRadius: 3,
		WheelRadius: 1,
		PenRadius:   1,
		Inside:      request.Bool(true),
	}
	require.NoError(t, conn.WriteJSON(q))
	var body patternBody
	require.NoError(t, conn.ReadJSON(&body))
	assert.Empty(t, body.Message)
	require.Len(t, body.Points, 300)
	assert.InDelta(t, 3, body.Points[0][0], 1e-3)

	// Invalid queries are answered without closing the connection.
	q.WheelRadius = 4
	require.NoError(t, conn.WriteJSON(q))
	body = patternBody{}
	require.NoError(t, conn.ReadJSON(&body))
	assert.Equal(t, "wheel does not fit inside guide", body.Message)
	assert.Empty(t, body.Points)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"guide": "triangle"}`)))
	body = patternBody{}
	require.NoError(t, conn.ReadJSON(&body))
	assert.Contains(t, body.Message, "unknown shape")

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`not json`)))
	body = patternBody{}
	require.NoError(t, conn.ReadJSON(&body))
	assert.Contains(t, body.Message, "malformed query")

	// And the connection still works.
	q.WheelRadius = 1
	require.NoError(t, conn.WriteJSON(q))
	body = patternBody{}
	require.NoError(t, conn.ReadJSON(&body))
	assert.Len(t, body.Points, 300)
}

func TestWebSocketRequiresUpgrade(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	rec, _ := get(t, srv.Handler(), "/ws")
	assert.Equal(t, 400, rec.Code)
}
