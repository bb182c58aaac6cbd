// Package httpapi serves the portfolio JSON API.
//
// Endpoints:
//   - GET  /api/cv       - the CV document
//   - GET  /api/journal  - journal entries in stored order
//   - GET  /api/profiles - ordered label to URL object
//   - POST /api/contact  - store (and relay) a contact submission
//   - POST /api/ask      - answer a question in the owner's voice
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/ports"
)

// ContactSubmitter accepts contact-form submissions.
type ContactSubmitter interface {
	Submit(context.Context, domain.ContactRequest) (domain.ContactReceipt, error)
}

// Asker answers free-text questions.
type Asker interface {
	Ask(ctx context.Context, question string) (domain.Answer, error)
}

// Server is the HTTP API server.
type Server struct {
	settings  domain.ServerSettings
	portfolio ports.PortfolioRepository
	contacts  ContactSubmitter
	asker     Asker
	logger    ports.Logger

	router *http.ServeMux
	server *http.Server
}

// NewServer wires handlers onto a fresh mux.
func NewServer(settings domain.ServerSettings, portfolio ports.PortfolioRepository, contacts ContactSubmitter, asker Asker, logger ports.Logger) *Server {
	s := &Server{
		settings:  settings,
		portfolio: portfolio,
		contacts:  contacts,
		asker:     asker,
		logger:    logger,
		router:    http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	askLimit := NewRateLimiter(s.settings.AskRatePerMinute)
	contactLimit := NewRateLimiter(s.settings.ContactRatePerMinute)

	s.router.HandleFunc("GET /api/cv", s.handleCV)
	s.router.HandleFunc("GET /api/journal", s.handleJournal)
	s.router.HandleFunc("GET /api/profiles", s.handleProfiles)
	s.router.Handle("POST /api/contact", RateLimitMiddleware(contactLimit)(http.HandlerFunc(s.handleContact)))
	s.router.Handle("POST /api/ask", RateLimitMiddleware(askLimit)(http.HandlerFunc(s.handleAsk)))

	for _, path := range []string{"/api/cv", "/api/journal", "/api/profiles", "/api/contact", "/api/ask"} {
		s.router.HandleFunc(path, s.handleMethodNotAllowed)
	}
	s.router.HandleFunc("/", s.handleNotFound)
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	return Chain(
		RecoveryMiddleware(s.logger),
		LoggingMiddleware(s.logger),
		CORSMiddleware(s.settings.CORSOrigin),
	)(s.router)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.settings.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.settings.Addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	readTimeout := time.Duration(s.settings.ReadTimeoutSeconds) * time.Second
	if readTimeout <= 0 {
		readTimeout = 15 * time.Second
	}
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
		WriteTimeout:      domain.DefaultAssistantTimeout + readTimeout,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(listener)
	}()
	s.logger.Info("server started", map[string]interface{}{"addr": listener.Addr().String()})

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), domain.DefaultShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleCV(w http.ResponseWriter, r *http.Request) {
	cv, err := s.portfolio.CV(r.Context())
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "CV data not found")
		return
	}
	if err != nil {
		s.internalError(w, r, err, "Failed to fetch CV data")
		return
	}
	writeJSON(w, http.StatusOK, cv)
}

func (s *Server) handleJournal(w http.ResponseWriter, r *http.Request) {
	entries, err := s.portfolio.Journal(r.Context())
	if err != nil {
		s.internalError(w, r, err, "Failed to fetch journal entries")
		return
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.portfolio.Profiles(r.Context())
	if err != nil {
		s.internalError(w, r, err, "Failed to fetch profiles")
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, domain.MaxRequestBodySize)

	var req domain.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	receipt, err := s.contacts.Submit(r.Context(), req)
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Validation error", Errors: verrs})
		return
	}
	if err != nil {
		s.internalError(w, r, err, "Failed to send message")
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, domain.MaxRequestBodySize)

	var body struct {
		Question interface{} `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Question is required")
		return
	}
	question, isString := body.Question.(string)
	if !isString {
		writeError(w, http.StatusBadRequest, "Question is required")
		return
	}

	answer, err := s.asker.Ask(r.Context(), question)
	var verr domain.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, verr.Message)
		return
	}
	if err != nil {
		s.internalError(w, r, err, "Failed to process question")
		return
	}
	writeJSON(w, http.StatusOK, domain.AskResponse{Response: answer.Text})
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Endpoint not found")
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error, message string) {
	s.logger.Error("request failed", err, map[string]interface{}{
		"method": r.Method,
		"path":   r.URL.Path,
	})
	writeError(w, http.StatusInternalServerError, message)
}

type errorResponse struct {
	Message string                   `json:"message"`
	Errors  []domain.ValidationError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}
