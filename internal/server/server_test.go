package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/spiro/internal/cache"
	"honnef.co/go/spiro/internal/config"
	"honnef.co/go/spiro/internal/log"
)

func newTestServer(t *testing.T, logs io.Writer) (*Server, *cache.Cache) {
	t.Helper()
	cfg := config.Default()
	cfg.Server.ListenAddr = "127.0.0.1:0"
	if logs == nil {
		logs = io.Discard
	}
	logger, err := log.NewWriter(logs, config.Log{Level: "debug"})
	require.NoError(t, err)
	c := cache.New(cfg.Cache.Capacity, cfg.Cache.Shards)
	return NewServer(cfg, logger, c), c
}

func deltoidQuery() url.Values {
	return url.Values{
		"guide":        {"Circle"},
		"wheel":        {"Circle"},
		"guide_radius": {"3"},
		"wheel_radius": {"1"},
		"pen_radius":   {"1"},
		"pen_theta":    {"0"},
		"inside":       {"true"},
	}
}

type patternBody struct {
	Points  [][2]float64 `json:"points"`
	Message string       `json:"message"`
}

func get(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, patternBody) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	var body patternBody
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestHelp(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	rec, _ := get(t, srv.Handler(), "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "SPIROGEN API\n"))
	assert.Contains(t, rec.Body.String(), "GET /pattern")
	assert.Contains(t, rec.Body.String(), "&inside=[true/false default false]")
}

func TestPattern(t *testing.T) {
	srv, c := newTestServer(t, nil)
	rec, body := get(t, srv.Handler(), "/pattern?"+deltoidQuery().Encode())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Len(t, body.Points, 300)
	assert.InDelta(t, 3, body.Points[0][0], 1e-3)
	assert.InDelta(t, 0, body.Points[0][1], 1e-3)
	for _, pt := range body.Points {
		assert.LessOrEqual(t, math.Hypot(pt[0], pt[1]), 3+1e-3)
	}
	assert.Equal(t, 1, c.Len())

	// A second request is served from the cache with the same result.
	rec2, body2 := get(t, srv.Handler(), "/pattern?"+deltoidQuery().Encode())
	assert.Equal(t, http.StatusOK, rec2.Code)
	assert.Equal(t, body.Points, body2.Points)
	assert.Equal(t, 1, c.Len())
}

func TestPatternErrors(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	tests := []struct {
		modify func(v url.Values)
		msg    string
	}{
		{func(v url.Values) { v.Set("guide", "Rod") }, "guide type Rod requires guide_param"},
		{func(v url.Values) { v.Set("wheel", "rod") }, "wheel type Rod requires wheel_param"},
		{func(v url.Values) { v.Set("wheel_radius", "-1") }, "non-positive radius supplied"},
		{func(v url.Values) { v.Set("guide_param", "0") }, "non-positive shape parameter supplied"},
		{func(v url.Values) { v.Set("pen_radius", "1.5") }, "pen_radius is outside the range [0, 1]"},
		{func(v url.Values) { v.Set("pen_theta", "7") }, "pen_theta is outside the range [0, 2PI]"},
		{func(v url.Values) { v.Set("wheel_radius", "5") }, "wheel does not fit inside guide"},
		{func(v url.Values) { v.Del("guide_radius") }, "missing field guide_radius"},
		{func(v url.Values) { v.Set("format", "gif") }, "unknown format gif, expected json or svg"},
	}
	for _, tt := range tests {
		v := deltoidQuery()
		tt.modify(v)
		rec, body := get(t, srv.Handler(), "/pattern?"+v.Encode())
		assert.Equal(t, http.StatusBadRequest, rec.Code, tt.msg)
		assert.Equal(t, tt.msg, body.Message)
		assert.Empty(t, body.Points)
	}
}

func TestPatternOutside(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	v := url.Values{
		"guide":        {"Circle"},
		"wheel":        {"Circle"},
		"guide_radius": {"10"},
		"wheel_radius": {"3"},
		"pen_radius":   {"0.5"},
		"pen_theta":    {"0"},
	}
	rec, body := get(t, srv.Handler(), "/pattern?"+v.Encode())
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, body.Points, 300)
	for _, pt := range body.Points {
		d := math.Hypot(pt[0], pt[1])
		assert.LessOrEqual(t, d, 14.5+1e-3)
		assert.GreaterOrEqual(t, d, 11.5-1e-3)
	}
}

func TestPatternSVG(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	v := deltoidQuery()
	v.Set("format", "svg")
	rec, _ := get(t, srv.Handler(), "/pattern?"+v.Encode())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<svg "))
	assert.Contains(t, rec.Body.String(), `stroke="#bbb"`)
}

func TestShape(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	rec, body := get(t, srv.Handler(), "/shape?kind=rod&radius=2&param=0.3&resolution=40")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, body.Points, 41)
	assert.InDelta(t, 0, body.Points[0][0], 1e-9)
	assert.InDelta(t, 1.2, body.Points[0][1], 1e-9)

	rec, body = get(t, srv.Handler(), "/shape?kind=circle&radius=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body.Points, 101)

	rec, body = get(t, srv.Handler(), "/shape?kind=circle&radius=1&resolution=100000")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, body.Message)
}

func TestRouting(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	rec, _ := get(t, srv.Handler(), "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/pattern", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRequestID(t *testing.T) {
	var logs bytes.Buffer
	srv, _ := newTestServer(t, &logs)

	rec, _ := get(t, srv.Handler(), "/")
	id := rec.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	// A valid id supplied by the client is kept.
	own := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, own)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, own, rec.Header().Get(RequestIDHeader))

	var access []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		if m["msg"] == "Request handled" {
			access = append(access, m)
		}
	}
	require.Len(t, access, 2)
	assert.Equal(t, id, access[0]["request_id"])
	assert.Equal(t, own, access[1]["request_id"])
	assert.Equal(t, "GET", access[0]["method"])
	assert.Equal(t, "/", access[0]["path"])
	assert.EqualValues(t, 200, access[0]["status"])
	assert.Equal(t, "server", access[0]["component"])
}

func TestStartStop(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	ctx := context.Background()

	assert.ErrorIs(t, srv.Stop(ctx), ErrServerNotRunning)
	require.NoError(t, srv.Start(ctx))
	assert.ErrorIs(t, srv.Start(ctx), ErrServerAlreadyRunning)

	addr := srv.Addr()
	require.NotNil(t, addr)
	resp, err := http.Get(fmt.Sprintf("http://%s/pattern?%s", addr, deltoidQuery().Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, srv.Stop(ctx))
	assert.Nil(t, srv.Addr())
	assert.ErrorIs(t, srv.Stop(ctx), ErrServerNotRunning)
}

func TestStartListenFailure(t *testing.T) {
	cfg := config.Default()
	cfg.Server.ListenAddr = "127.0.0.1:-1"
	srv := NewServer(cfg, log.Nop(), nil)
	assert.ErrorIs(t, srv.Start(context.Background()), ErrListenerFailed)
	// A failed start leaves the server stopped.
	assert.ErrorIs(t, srv.Stop(context.Background()), ErrServerNotRunning)
}
