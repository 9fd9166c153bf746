// Package batch runs certificate fan-out jobs.
//
// A job takes a recipient workbook, a template image, a font key, a placement
// point, a message and a delivery provider, and processes every recipient row:
// validate the email, render the certificate, deliver it, record the outcome.
// Rows within one job run strictly sequentially in workbook order; multiple
// jobs run concurrently across a fixed worker pool.
//
// # Failure Taxonomy
//
// Row-level failures (malformed row, invalid email, render error, provider
// rejection) are recorded in the job summary and never abort the job. Systemic
// failures (unreadable workbook, unresolvable font, a panic escaping the row
// loop) fail the whole attempt; the processor retries the attempt with a fixed
// backoff up to a bound, then surfaces the error as the terminal job state.
//
// A retried attempt re-runs the entire row set, including rows that already
// succeeded. Delivery is therefore at-least-once across retries: recipients
// who were already sent a certificate may receive it again. Observers will
// also see progress reset to zero at the start of each retry; that regression
// is expected, not a bug.
//
// # Status
//
// Job status lives in a TTL store (in-memory by default, Redis when
// configured) and is published after every processed row, so a polling
// consumer sees monotonically non-decreasing progress within one attempt.
// Statuses expire an hour after their last update.
//
// # Cleanup
//
// The processor deletes each rendered certificate after its delivery attempt
// and deletes the workbook and template once a job succeeds, best-effort. A
// separate cron-driven sweeper deletes aged files from the temp directory as
// a backstop against leaks from crashed attempts.
package batch
