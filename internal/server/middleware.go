package server

import (
	"bufio"
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"honnef.co/go/spiro/internal/log"
)

const RequestIDHeader = "X-Request-Id"

type loggerKey struct{}

// logger returns the request-scoped logger, or fallback if there is none.
func logger(r *http.Request, fallback log.Log) log.Log {
	if l, ok := r.Context().Value(loggerKey{}).(log.Log); ok {
		return l
	}
	return fallback
}

// statusWriter records the status code written by a handler.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Hijack allows WebSocket upgrades through the middleware.
func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer doesn't support hijacking")
	}
	if w.status == 0 {
		w.status = http.StatusSwitchingProtocols
	}
	return h.Hijack()
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// middleware assigns every request an id, attaches a request-scoped logger
// and writes one access log line per request.
func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		if s.h3 != nil {
			s.h3.SetQUICHeaders(w.Header())
		}

		reqLogger := s.logger.With(log.String("request_id", id))
		ctx := context.WithValue(r.Context(), loggerKey{}, reqLogger)

		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r.WithContext(ctx))
		if sw.status == 0 {
			sw.status = http.StatusOK
		}

		reqLogger.Info("Request handled",
			log.String("method", r.Method),
			log.String("path", r.URL.Path),
			log.Int("status", sw.status),
			log.Int("bytes", sw.bytes),
			log.Duration("duration", time.Since(start)),
			log.String("remote_addr", r.RemoteAddr))
	})
}
