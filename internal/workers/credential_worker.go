package workers

import (
	"context"
	"time"

	"mccare_backend/internal/logger"
	"mccare_backend/internal/services"
)

// CredentialWorker runs the credential expiry scan once a day at a
// configured UTC hour.
type CredentialWorker struct {
	scanner    services.CredentialScannerService
	runHourUTC int
}

func NewCredentialWorker(scanner services.CredentialScannerService, runHourUTC int) *CredentialWorker {
	if runHourUTC < 0 || runHourUTC > 23 {
		runHourUTC = 6
	}
	return &CredentialWorker{scanner: scanner, runHourUTC: runHourUTC}
}

func (w *CredentialWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *CredentialWorker) run(ctx context.Context) {
	logger.WorkerLog("credential_worker", "started", "run_hour_utc", w.runHourUTC)

	for {
		wait := w.untilNextRun(time.Now().UTC())
		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			logger.WorkerLog("credential_worker", "stopped")
			return
		case <-timer.C:
			w.scan()
		}
	}
}

func (w *CredentialWorker) scan() {
	summary, err := w.scanner.CheckExpiringCredentials()
	if err != nil {
		logger.WithError(err).Error("credential scan failed")
		return
	}
	logger.WorkerLog("credential_worker", "scan completed",
		"status", summary.Status,
		"documents_checked", summary.DocumentsChecked,
		"notifications_sent", summary.NotificationsSent,
		"emails_sent", summary.EmailsSent,
	)
}

// untilNextRun returns the duration until the next run hour, always in
// the future so a scan never fires twice in one day.
func (w *CredentialWorker) untilNextRun(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), w.runHourUTC, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
