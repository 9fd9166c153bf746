// Package server exposes the HTTP surface: multipart job submission, job
// status polling and a health probe. It is a thin I/O wrapper around the
// batch processor; all real state lives there.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/batch"
	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/logger"
)

// Submitter is the slice of the batch processor the server depends on.
type Submitter interface {
	Submit(ctx context.Context, req batch.JobRequest) (string, error)
	Status(ctx context.Context, jobID string) (batch.Status, error)
}

// Server handles certificate submission and status polling.
type Server struct {
	processor Submitter
	uploadDir string
	log       *slog.Logger
}

// New creates a server. Pass nil log to disable logging.
func New(processor Submitter, uploadDir string, log *slog.Logger) *Server {
	if log == nil {
		log = logger.NewNope()
	}
	return &Server{
		processor: processor,
		uploadDir: uploadDir,
		log:       log,
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Post("/certificates", s.handleSubmit)
	r.Get("/certificates/{jobID}/status", s.handleStatus)
	r.Get("/health", s.handleHealth)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
