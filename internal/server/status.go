package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/batch"
)

// statusResponse is the polled status contract.
type statusResponse struct {
	State   string         `json:"state"`
	Percent *float64       `json:"percent,omitempty"`
	Summary *batch.Summary `json:"summary,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// handleStatus projects the processor's stored state onto the polling
// contract. It never blocks on job completion.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	status, err := s.processor.Status(r.Context(), jobID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "status lookup failed")
		return
	}

	resp := statusResponse{State: string(status.State)}
	switch status.State {
	case batch.StateRunning:
		if status.Progress != nil {
			percent := status.Progress.Percent
			resp.Percent = &percent
		}
	case batch.StateSucceeded:
		resp.Summary = status.Summary
	case batch.StateFailed:
		resp.Error = status.Error
	}

	respondJSON(w, http.StatusOK, resp)
}
