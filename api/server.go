// Package api provides the HTTP server for the multibagger predictor.
//
// It exposes the analysis endpoint the page posts to, a versioned API
// with health, sector and config endpoints, a WebSocket for streaming
// analyses, and the embedded page itself.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/multibagger/internal/analyzer"
	"github.com/seenimoa/multibagger/internal/config"
	"github.com/seenimoa/multibagger/internal/sector"
	"github.com/seenimoa/multibagger/pkg/models"
	"github.com/seenimoa/multibagger/pkg/utils"
	"github.com/seenimoa/multibagger/web"
)

// Version is reported by the health endpoint. The CLI overrides it.
var Version = "dev"

// analysisFailed is the only error text the analyze endpoint returns.
const analysisFailed = "Analysis failed"

const (
	shutdownTimeout       = 15 * time.Second
	defaultRequestTimeout = 30 * time.Second
	maxRequestBody        = 1 << 20
)

// Server is the HTTP API server.
type Server struct {
	router  chi.Router
	cfg     *config.Config
	gen     *analyzer.Generator
	log     zerolog.Logger
	serveUI bool // when true, serve the embedded page at /
}

// NewServer creates a configured server with all routes and middleware.
// A nil gen uses an unseeded generator.
func NewServer(cfg *config.Config, gen *analyzer.Generator, logger zerolog.Logger) *Server {
	if gen == nil {
		gen = analyzer.New(nil)
	}
	srv := &Server{
		cfg:     cfg,
		gen:     gen,
		log:     logger,
		serveUI: cfg.Web.ServeUI,
	}
	srv.router = srv.buildRouter()
	return srv
}

// SetServeUI controls whether the embedded page is served.
// Must be called before ListenAndServe.
func (s *Server) SetServeUI(enabled bool) {
	s.serveUI = enabled
	s.router = s.buildRouter()
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe runs the server until ctx is cancelled or the process
// receives SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:         s.cfg.API.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.API.ReadTimeout(),
		WriteTimeout: s.cfg.API.WriteTimeout(),
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info().Str("addr", httpSrv.Addr).Bool("ui", s.serveUI).Msg("server listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.log.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.requestTimeout()))

	// CORS
	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	// The page posts here.
	r.Post("/api/analyze", s.handleAnalyze)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/analyze", s.handleAnalyze)
		r.Get("/sectors", s.handleSectors)
		r.Get("/config", s.handleGetConfig)
		r.Get("/ws", s.handleWebSocket)

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, "no such endpoint: "+r.URL.Path)
		})
	})

	if s.serveUI {
		s.mountSPA(r, web.DistFS())
	}

	return r
}

// requestTimeout bounds request handling; unset config falls back to
// defaultRequestTimeout.
func (s *Server) requestTimeout() time.Duration {
	if d := s.cfg.API.WriteTimeout(); d > 0 {
		return d
	}
	return defaultRequestTimeout
}

// requestLogger logs one line per request once the handler returns.
func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info().
					Str("request_id", middleware.GetReqID(r.Context())).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", ww.Status()).
					Int("bytes", ww.BytesWritten()).
					Dur("duration", time.Since(start)).
					Msg("request")
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// mountSPA serves the embedded page. Paths that are not files fall back
// to index.html.
func (s *Server) mountSPA(r chi.Router, distFS fs.FS) {
	fileServer := http.FileServerFS(distFS)

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		rPath := strings.TrimPrefix(r.URL.Path, "/")
		if rPath == "" {
			rPath = "index.html"
		}

		f, err := distFS.Open(rPath)
		if err != nil {
			serveIndexHTML(w, distFS)
			return
		}
		f.Close()

		if strings.HasSuffix(rPath, ".html") {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		}
		fileServer.ServeHTTP(w, r)
	})
}

// serveIndexHTML writes index.html directly; FileServer would redirect
// a request for /index.html to /.
func serveIndexHTML(w http.ResponseWriter, distFS fs.FS) {
	data, err := fs.ReadFile(distFS, "index.html")
	if err != nil {
		http.Error(w, "web UI not available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}

// ============================================================
// Response Types
// ============================================================

// APIResponse is the JSON envelope of the /api/v1 endpoints.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ErrorBody is the failure body of the analyze endpoint.
type ErrorBody struct {
	Error string `json:"error"`
}

// HealthData is the payload of the health endpoint.
type HealthData struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	TimeIST string `json:"time_ist"`
}

// SectorEntry is one row of the sector catalogue.
type SectorEntry struct {
	sector.Info
	HasOutlook bool `json:"hasOutlook"`
}

// ============================================================
// Handlers
// ============================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: HealthData{
			Status:  "ok",
			Version: Version,
			TimeIST: utils.FormatDateTimeIST(utils.NowIST()),
		},
	})
}

// handleAnalyze returns the bare AnalysisResult, matching what the page
// expects. Blank names are not rejected here; the page never sends one.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAnalyzeRequest(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err != nil {
		s.log.Warn().Err(err).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("analyze: decoding request")
		writeJSON(w, http.StatusInternalServerError, ErrorBody{Error: analysisFailed})
		return
	}

	res := s.gen.Generate(req.CompanyName, req.Sector)
	s.log.Debug().
		Str("company", req.CompanyName).
		Str("sector", req.Sector).
		Int("score", res.MultibaggerScore).
		Msg("analysis generated")

	writeJSON(w, http.StatusOK, res)
}

// decodeAnalyzeRequest parses a body holding exactly one JSON object.
// Trailing data and a bare null are rejected.
func decodeAnalyzeRequest(body io.Reader) (models.AnalyzeRequest, error) {
	var req models.AnalyzeRequest
	data, err := io.ReadAll(body)
	if err != nil {
		return req, fmt.Errorf("reading body: %w", err)
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return req, errors.New("body is null")
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("decoding body: %w", err)
	}
	return req, nil
}

func (s *Server) handleSectors(w http.ResponseWriter, r *http.Request) {
	all := sector.All()
	entries := make([]SectorEntry, len(all))
	for i, info := range all {
		entries[i] = SectorEntry{Info: info, HasOutlook: info.HasOutlook()}
	}
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    entries,
	})
}

// ============================================================
// Helpers
// ============================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write JSON response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}
