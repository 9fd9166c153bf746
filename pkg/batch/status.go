package batch

import "math"

// State is the externally visible lifecycle phase of a job.
type State string

const (
	StateUnknown   State = "unknown"
	StatePending   State = "pending"
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Progress reports row-level completion within one job attempt.
// It resets to zero when an attempt is retried.
type Progress struct {
	Processed int     `json:"processed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

// Summary accumulates per-row outcomes for one job attempt: successful
// recipient addresses and failure descriptions, each in row order.
type Summary struct {
	Successes []string `json:"successes"`
	Failures  []string `json:"failures"`
}

// Status is the polled projection of a job's state.
type Status struct {
	State    State     `json:"state"`
	Progress *Progress `json:"progress,omitempty"`
	Summary  *Summary  `json:"summary,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// newProgress computes percent = round(processed/total*100, 2).
func newProgress(processed, total int) *Progress {
	p := &Progress{Processed: processed, Total: total}
	if total > 0 {
		p.Percent = math.Round(float64(processed)/float64(total)*10000) / 100
	}
	return p
}
