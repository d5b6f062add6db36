// Package server is the HTTP entry adapter: it decodes inbound requests,
// invokes the excuse service, and encodes results or mapped error
// statuses. No business logic lives here.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hyoaru/ghost-as-a-service/internal/excuse"
	"github.com/hyoaru/ghost-as-a-service/internal/service"
)

// Server serves the excuse API over HTTP.
type Server struct {
	svc            *service.ExcuseService
	logger         *zap.Logger
	addr           string
	requestTimeout time.Duration

	httpServer *http.Server
}

// Options configures the server.
type Options struct {
	Addr           string
	RequestTimeout time.Duration
}

// New creates a server around the given service.
func New(svc *service.ExcuseService, logger *zap.Logger, opts Options) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	addr := opts.Addr
	if addr == "" {
		addr = ":8080"
	}
	requestTimeout := opts.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	s := &Server{
		svc:            svc,
		logger:         logger,
		addr:           addr,
		requestTimeout: requestTimeout,
	}

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.Routes(),
	}

	return s
}

// Routes builds the HTTP router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/excuse", s.handleGenerate)

	return r
}

// ListenAndServe runs the server until the context is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", s.addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.logger.Info("server shutting down")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// excuseRequest is the inbound payload.
type excuseRequest struct {
	Request string `json:"request"`
}

// errorResponse is the error envelope returned for failed requests.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req excuseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, excuse.NewInvalidRequest("request body must be JSON with a request field"))
		return
	}

	op, err := service.NewGenerateExcuse(req.Request)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	// The deadline bounds the single awaited downstream call; a breach
	// surfaces as an AI service failure.
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	generation, err := s.svc.Execute(ctx, op)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = excuse.NewAIService("excuse generation timed out", err)
		}
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, generation)
}

// writeError maps the application error taxonomy to HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	kind := "internal"

	if k, ok := excuse.KindOf(err); ok {
		kind = k.String()
		switch k {
		case excuse.KindInvalidRequest:
			status = http.StatusBadRequest
		case excuse.KindAIService:
			status = http.StatusBadGateway
		case excuse.KindConfiguration, excuse.KindProviderMismatch:
			status = http.StatusInternalServerError
		}
	}

	s.logger.Warn("request failed",
		zap.String("request_id", requestIDFrom(r.Context())),
		zap.String("kind", kind),
		zap.Int("status", status),
		zap.Error(err))

	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: kind})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
