package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"honnef.co/go/spiro"
	"honnef.co/go/spiro/internal/log"
	"honnef.co/go/spiro/internal/request"
)

// outlineResolution is the resolution of the guide outline drawn beneath
// SVG patterns.
const outlineResolution = 200

const helpText = "SPIROGEN API\n" +
	"\n" +
	"GET / This help page\n" +
	"\n" +
	"GET /pattern Get the points resulting from a pair of wheels\n" +
	"\t       ?guide=<Shape>\n" +
	"\t       &wheel=<Shape>\n" +
	"\t&guide_radius=<radius>\n" +
	"\t&wheel_radius=<radius>\n" +
	"\t  &pen_radius=<radius in 0-1>\n" +
	"\t   &pen_theta=<angle in radians>\n" +
	"\t &guide_param=[additional parameter]\n" +
	"\t &wheel_param=[additional parameter]\n" +
	"\t      &inside=[true/false default false]\n" +
	"\t      &format=[json/svg default json]\n" +
	"\n" +
	"GET /shape Get the outline of a single shape\n" +
	"\t       ?kind=<Shape>\n" +
	"\t     &radius=<radius>\n" +
	"\t      &param=[additional parameter]\n" +
	"\t &resolution=[number of segments default 100]\n" +
	"\n" +
	"GET /ws WebSocket; send pattern queries as JSON objects, receive patterns\n" +
	"\n" +
	"Shapes: Circle, Rod (Rod requires its aspect ratio in (0, 1) as parameter)\n"

// PatternResponse is the body of a successful pattern or shape request.
type PatternResponse struct {
	Points []spiro.Point `json:"points"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHelp)
	mux.HandleFunc("GET /pattern", s.handlePattern)
	mux.HandleFunc("GET /shape", s.handleShape)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	return s.middleware(mux)
}

func (s *Server) handleHelp(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, helpText)
}

func (s *Server) handlePattern(w http.ResponseWriter, r *http.Request) {
	q, err := request.ParseQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := q.Pattern()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	pts := s.points(r, q, p)

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		s.writeJSON(w, r, http.StatusOK, PatternResponse{Points: pts})
	case "svg":
		w.Header().Set("Content-Type", "image/svg+xml")
		opts := spiro.SVGDocumentOptions{
			SVGOptions: spiro.SVGOptions{MaxPrecision: 4},
			Guide:      p.Outline(outlineResolution),
		}
		if err := spiro.WriteSVGDocument(w, pts, opts); err != nil {
			logger(r, s.logger).Warn("Failed to write SVG", log.Error(err))
		}
	default:
		s.writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Message: "unknown format " + format + ", expected json or svg"})
	}
}

func (s *Server) handleShape(w http.ResponseWriter, r *http.Request) {
	q, err := request.ParseShapeQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	shape, err := q.Shape()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, PatternResponse{Points: spiro.Rasterise(shape, q.Resolution)})
}

// points computes the pattern, consulting the cache first.
func (s *Server) points(r *http.Request, q request.Query, p spiro.Pattern) []spiro.Point {
	pts, hit := s.cache.GetOrCompute(q.Key(), p.Points)
	logger(r, s.logger).Debug("Pattern computed",
		log.String("key", q.Key()),
		log.Bool("cache_hit", hit))
	return pts
}

// writeError reports err to the client. Validation errors are the client's
// fault; anything else is ours.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var rerr *request.Error
	if errors.As(err, &rerr) {
		logger(r, s.logger).Debug("Rejected query", log.String("reason", rerr.Message))
		s.writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Message: rerr.Message})
		return
	}
	logger(r, s.logger).Error("Request failed", log.Error(err))
	s.writeJSON(w, r, http.StatusInternalServerError, ErrorResponse{Message: "internal server error"})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		logger(r, s.logger).Error("Failed to encode response", log.Error(err))
		status = http.StatusInternalServerError
		b = []byte(`{"message":"internal server error"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}
