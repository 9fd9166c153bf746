package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/certificate"
	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/logger"
	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/mailer"
	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/mailer/provider"
	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/spreadsheet"
)

// Config holds batch processor tunables.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	FontDir      string        `env:"FONT_DIR" envDefault:"fonts"`
	Workers      int           `env:"BATCH_WORKERS" envDefault:"4"`
	QueueSize    int           `env:"BATCH_QUEUE_SIZE" envDefault:"64"`
	MaxRetries   int           `env:"BATCH_MAX_RETRIES" envDefault:"3"`
	RetryBackoff time.Duration `env:"BATCH_RETRY_BACKOFF" envDefault:"10s"`
}

// JobRequest describes one certificate fan-out job.
// All paths must resolve to readable files before rows are iterated.
type JobRequest struct {
	SheetPath    string            // recipient workbook
	TemplatePath string            // certificate template image
	FontKey      string            // key into the supported font set
	Point        certificate.Point // name placement on the template
	Subject      string            // email subject; empty = per-recipient default
	Body         string            // markdown message body
	Provider     string            // delivery provider key
}

// SenderFactory constructs the delivery sender for a provider kind.
// Construction must verify credentials so misconfiguration fails at
// submission, before any row is processed.
type SenderFactory func(kind provider.Kind) (mailer.Sender, error)

type queuedJob struct {
	id     string
	req    JobRequest
	mailer *mailer.Mailer
}

// Processor accepts certificate jobs and runs them on a fixed worker pool.
// Rows within one job run sequentially; jobs run concurrently across workers.
type Processor struct {
	cfg      Config
	store    Store
	renderer *certificate.Renderer
	senders  SenderFactory
	log      *slog.Logger

	jobs    chan queuedJob
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	mu      sync.Mutex
	started bool
}

// NewProcessor creates a processor. Pass nil log to disable logging.
func NewProcessor(cfg Config, store Store, renderer *certificate.Renderer, senders SenderFactory, log *slog.Logger) *Processor {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	if log == nil {
		log = logger.NewNope()
	}
	return &Processor{
		cfg:      cfg,
		store:    store,
		renderer: renderer,
		senders:  senders,
		log:      log,
		jobs:     make(chan queuedJob, cfg.QueueSize),
	}
}

// DefaultSenderFactory builds senders from static provider credentials.
func DefaultSenderFactory(cfg provider.Config) SenderFactory {
	return func(kind provider.Kind) (mailer.Sender, error) {
		return provider.New(kind, cfg)
	}
}

// Start launches the worker pool.
func (p *Processor) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return ErrAlreadyStarted
	}

	ctx, p.cancel = context.WithCancel(ctx)
	for range p.cfg.Workers {
		p.wg.Add(1)
		go p.worker(ctx)
	}
	p.started = true
	p.log.Info("batch processor started", slog.Int("workers", p.cfg.Workers))
	return nil
}

// Stop cancels in-flight attempts and waits for workers to drain.
func (p *Processor) Stop() error {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return ErrNotStarted
	}
	p.started = false
	p.cancel()
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	p.log.Info("batch processor stopped")
	return nil
}

// Submit accepts a job and returns its identifier immediately; processing is
// asynchronous. The provider is constructed here, so unknown keys and missing
// credentials reject the submission before a job exists.
func (p *Processor) Submit(ctx context.Context, req JobRequest) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return "", ErrNotStarted
	}

	kind, err := provider.ParseKind(req.Provider)
	if err != nil {
		return "", err
	}
	sender, err := p.senders(kind)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	if err := p.store.Set(ctx, id, Status{State: StatePending}); err != nil {
		return "", err
	}

	select {
	case p.jobs <- queuedJob{id: id, req: req, mailer: mailer.New(sender)}:
	default:
		return "", ErrQueueFull
	}

	p.log.Info("job accepted",
		slog.String("job_id", id),
		slog.String("provider", string(kind)),
	)
	return id, nil
}

// Status returns the polled projection for a job.
// Unrecognized or expired identifiers map to StateUnknown, never an error.
func (p *Processor) Status(ctx context.Context, jobID string) (Status, error) {
	status, err := p.store.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Status{State: StateUnknown}, nil
		}
		return Status{}, err
	}
	return status, nil
}

func (p *Processor) worker(ctx context.Context) {
	defer p.wg.Done()
	for job := range p.jobs {
		if ctx.Err() != nil {
			p.setStatus(job.id, Status{State: StateFailed, Error: ctx.Err().Error()})
			continue
		}
		p.runJob(ctx, job)
	}
}

// runJob drives one job to a terminal state: run an attempt, retry whole
// attempts on systemic failure with a fixed backoff, give up after the bound.
func (p *Processor) runJob(ctx context.Context, job queuedJob) {
	var lastErr error

	for attempt := 0; attempt <= p.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			p.log.Warn("retrying job",
				slog.String("job_id", job.id),
				slog.Int("attempt", attempt),
				slog.String("error", lastErr.Error()),
			)
			select {
			case <-ctx.Done():
				p.setStatus(job.id, Status{State: StateFailed, Error: ctx.Err().Error()})
				return
			case <-time.After(p.cfg.RetryBackoff):
			}
		}

		summary, err := p.runAttempt(ctx, job)
		if err == nil {
			p.cleanupInputs(job)
			p.setStatus(job.id, Status{
				State:    StateSucceeded,
				Progress: newProgress(len(summary.Successes)+len(summary.Failures), len(summary.Successes)+len(summary.Failures)),
				Summary:  summary,
			})
			p.log.Info("job succeeded",
				slog.String("job_id", job.id),
				slog.Int("sent", len(summary.Successes)),
				slog.Int("failed", len(summary.Failures)),
			)
			return
		}

		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	p.setStatus(job.id, Status{State: StateFailed, Error: lastErr.Error()})
	p.log.Error("job failed",
		slog.String("job_id", job.id),
		slog.String("error", lastErr.Error()),
	)
}

// runAttempt executes one full pass over the row set.
// The returned error is always systemic; row-level failures land in the summary.
func (p *Processor) runAttempt(ctx context.Context, job queuedJob) (summary *Summary, err error) {
	// A panic escaping the row loop is systemic, not fatal to the worker.
	defer func() {
		if r := recover(); r != nil {
			summary, err = nil, fmt.Errorf("batch: attempt panicked: %v", r)
		}
	}()

	fontPath, err := certificate.FontPath(p.cfg.FontDir, job.req.FontKey)
	if err != nil {
		return nil, err
	}

	entries, err := spreadsheet.ExtractRows(job.req.SheetPath)
	if err != nil {
		return nil, err
	}

	total := len(entries)
	summary = &Summary{}

	// Progress resets at the start of every attempt; a poller may observe
	// the regression across retries.
	p.setStatus(job.id, Status{State: StateRunning, Progress: newProgress(0, total)})

	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p.processRow(ctx, job, fontPath, i, entry, summary)
		p.setStatus(job.id, Status{State: StateRunning, Progress: newProgress(i+1, total)})
	}

	return summary, nil
}

// processRow handles one recipient: validate, render, deliver, record.
// Nothing here escapes as an error; every outcome lands in the summary.
func (p *Processor) processRow(ctx context.Context, job queuedJob, fontPath string, index int, entry spreadsheet.Entry, summary *Summary) {
	if entry.Malformed {
		summary.Failures = append(summary.Failures, entry.Reason)
		return
	}

	if !spreadsheet.ValidEmail(entry.Email) {
		summary.Failures = append(summary.Failures, "Invalid email: "+entry.Email)
		return
	}

	certPath, err := p.renderer.Render(certificate.Request{
		Name:         entry.Name,
		TemplatePath: job.req.TemplatePath,
		FontPath:     fontPath,
		Point:        job.req.Point,
		Token:        rowToken(job.id, index),
	})
	if err != nil {
		summary.Failures = append(summary.Failures, fmt.Sprintf("%s: %v", entry.Email, err))
		return
	}
	// The rendered certificate is consumed by this delivery attempt only.
	defer func() {
		if err := os.Remove(certPath); err != nil {
			p.log.Warn("could not delete certificate",
				slog.String("job_id", job.id),
				slog.String("path", certPath),
				slog.String("error", err.Error()),
			)
		}
	}()

	subject := job.req.Subject
	if subject == "" {
		subject = "Certificate for " + entry.Name
	}

	if err := job.mailer.Send(ctx, mailer.SendParams{
		To:             entry.Email,
		Subject:        subject,
		Body:           job.req.Body,
		AttachmentPath: certPath,
	}); err != nil {
		p.log.Warn("delivery failed",
			slog.String("job_id", job.id),
			slog.String("recipient", entry.Email),
			slog.String("error", err.Error()),
		)
		summary.Failures = append(summary.Failures, entry.Email)
		return
	}

	summary.Successes = append(summary.Successes, entry.Email)
}

// cleanupInputs deletes the workbook and template after a successful job.
// Best-effort: a deletion failure is logged, never propagated.
func (p *Processor) cleanupInputs(job queuedJob) {
	for _, path := range []string{job.req.SheetPath, job.req.TemplatePath} {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			p.log.Warn("could not delete temp file",
				slog.String("job_id", job.id),
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (p *Processor) setStatus(jobID string, status Status) {
	// Status writes use a background context: an attempt cancelled mid-row
	// must still record its terminal state.
	if err := p.store.Set(context.Background(), jobID, status); err != nil {
		p.log.Warn("could not store job status",
			slog.String("job_id", jobID),
			slog.String("error", err.Error()),
		)
	}
}

// rowToken keys a rendered certificate's filename to one row of one job, so
// recipients sharing a sanitized display name cannot collide.
func rowToken(jobID string, index int) string {
	short := jobID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("%s-%04d", short, index)
}
