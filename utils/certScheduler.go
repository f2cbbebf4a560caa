package utils

import (
	"log"
	"time"

	"certtrack/database"
	"certtrack/notifier"

	"github.com/robfig/cron/v3"
)

// InitializeCertScheduler sets up the daily certificate expiry check. The
// tick is also reachable through the /jobs/cert-expiry endpoint for backfill
// and testing; both paths run the same idempotent job.
func InitializeCertScheduler() {
	log.Println("[CERT-SCHEDULER] Initializing certificate expiry scheduler...")

	c := cron.New()

	// Run daily at 8 AM server time
	c.AddFunc("0 8 * * *", func() {
		log.Println("[CERT-SCHEDULER] Running daily certificate expiry check...")
		RunExpiryTick(time.Now())
	})

	c.Start()
	log.Println("[CERT-SCHEDULER] Scheduler started - runs daily at 8 AM")
}

// RunExpiryTick runs one notification engine tick against the live database
// and reports the outcome to logs and, when configured, the ops webhook.
func RunExpiryTick(now time.Time) (*notifier.TickResult, error) {
	result, err := notifier.RunTick(database.Database.Db, ActiveMailer(), now)
	if err != nil {
		log.Printf("[CERT-SCHEDULER] Tick aborted: %v (processed=%d sent=%d errors=%d)",
			err, result.Processed, result.Sent, result.Errors)
	} else {
		log.Printf("[CERT-SCHEDULER] Tick complete: processed=%d sent=%d errors=%d",
			result.Processed, result.Sent, result.Errors)
	}

	PostTickSummary(result)
	return result, err
}
