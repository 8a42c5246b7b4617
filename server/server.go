// Package server exposes one interactive session over a small JSON API so a
// browser or script can drive it instead of a window loop.
//
// Every request takes the same mutex, so events are processed strictly one
// at a time, matching the single-threaded session model.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/bocafinder/render"
	"github.com/katalvlaran/bocafinder/selector"
	"github.com/katalvlaran/bocafinder/session"
)

// Response is the JSON envelope of every API reply.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError describes a failed request.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error codes.
const (
	CodeBadRequest      = "bad_request"
	CodeWrongPhase      = "wrong_phase"
	CodeNothingSelected = "nothing_selected"
	CodeNoPath          = "no_path"
	CodeInternal        = "internal"
)

// ClickRequest is the body of POST /api/click.
type ClickRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NoPathData accompanies CodeNoPath.
type NoPathData struct {
	Anchor      int   `json:"anchor"`
	Unreachable []int `json:"unreachable"`
}

// Server serves one session.
type Server struct {
	mu         sync.Mutex
	sess       *session.Session
	newSession func() (*session.Session, error)
	renderOpts []render.Option
	logger     *log.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. Nil disables logging.
func WithLogger(l *log.Logger) Option { return func(s *Server) { s.logger = l } }

// WithRenderOptions sets the options used by /api/snapshot.png.
func WithRenderOptions(opts ...render.Option) Option {
	return func(s *Server) { s.renderOpts = opts }
}

// New creates a Server whose sessions come from factory. The first session
// is created immediately; POST /api/reset replaces it with a fresh one.
func New(factory func() (*session.Session, error), opts ...Option) (*Server, error) {
	s := &Server{
		newSession: factory,
		logger:     log.New(os.Stderr, "bocafinder ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(s)
	}
	sess, err := factory()
	if err != nil {
		return nil, err
	}
	s.sess = sess

	return s, nil
}

// Router returns the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/click", s.handleClick).Methods(http.MethodPost)
	api.HandleFunc("/submit", s.handleSubmit).Methods(http.MethodPost)
	api.HandleFunc("/find", s.handleFind).Methods(http.MethodPost)
	api.HandleFunc("/reset", s.handleReset).Methods(http.MethodPost)
	api.HandleFunc("/state", s.handleState).Methods(http.MethodGet)
	api.HandleFunc("/snapshot.png", s.handleSnapshot).Methods(http.MethodGet)
	api.HandleFunc("/graph.geojson", s.handleGeoJSON).Methods(http.MethodGet)
	r.Use(s.logging)

	return r
}

// ListenAndServe runs the API on addr until it fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.logf("listening on %s", addr)

	return srv.ListenAndServe()
}

func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}

func (s *Server) logf(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	var req ClickRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<16)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.sess.Dispatch(orb.Point{req.X, req.Y})
	if err != nil {
		s.writeSessionError(w, err, out.Result)
		return
	}
	s.logf("click (%.1f,%.1f): %s", req.X, req.Y, out.Kind)
	writeJSON(w, http.StatusOK, Response{Success: true, Data: out})
}

func (s *Server) handleSubmit(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.sess.PressSubmit()
	if err != nil {
		s.writeSessionError(w, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Data: out})
}

func (s *Server) handleFind(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.sess.PressFindDistance()
	if err != nil {
		s.writeSessionError(w, err, &res)
		return
	}
	s.logf("query: target %d path %v length %.2f", res.Target, res.Path, res.Length)
	writeJSON(w, http.StatusOK, Response{Success: true, Data: res})
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	sess, err := s.newSession()
	if err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "cannot create session", err)
		return
	}

	s.mu.Lock()
	s.sess = sess
	v := s.sess.View()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, Response{Success: true, Data: v})
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: s.view()})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	if err := render.PNG(&buf, s.view(), s.renderOpts...); err != nil {
		s.logf("snapshot: %v", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "cannot render snapshot", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleGeoJSON(w http.ResponseWriter, _ *http.Request) {
	data, err := render.GeoJSON(s.view()).MarshalJSON()
	if err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "cannot encode geojson", err)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	_, _ = w.Write(data)
}

func (s *Server) view() session.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sess.View()
}

// writeSessionError maps session and selector sentinels to HTTP replies.
func (s *Server) writeSessionError(w http.ResponseWriter, err error, res *selector.Result) {
	s.logf("session: %v", err)
	switch {
	case errors.Is(err, session.ErrWrongPhase):
		writeError(w, http.StatusConflict, CodeWrongPhase, "not allowed in the current phase", err)
	case errors.Is(err, session.ErrNothingSelected):
		writeError(w, http.StatusUnprocessableEntity, CodeNothingSelected, session.NoticeNothingSelected, nil)
	case errors.Is(err, selector.ErrNoPath):
		resp := Response{Error: &APIError{Code: CodeNoPath, Message: session.NoticeNoPath}}
		if res != nil {
			resp.Data = NoPathData{Anchor: res.Anchor, Unreachable: res.Unreachable}
		}
		writeJSON(w, http.StatusUnprocessableEntity, resp)
	default:
		writeError(w, http.StatusInternalServerError, CodeInternal, "session error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string, err error) {
	apiErr := &APIError{Code: code, Message: msg}
	if err != nil {
		apiErr.Details = err.Error()
	}
	writeJSON(w, status, Response{Error: apiErr})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
