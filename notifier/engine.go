// Package notifier implements the certificate expiry notification engine: a
// stateless batch job that, for each lead-time tier, finds certificates
// crossing that tier's boundary today and emails the holder exactly once per
// (certificate, tier). The ledger's unique index is what makes re-invocation
// safe; the engine itself keeps no state between ticks.
package notifier

import (
	"errors"
	"fmt"
	"time"

	trainingModels "certtrack/models/training"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Tiers are the lead times, in days before expiry, at which a notification
// fires. Processed in this order on every tick.
var Tiers = []int{30, 7, 0}

// Per-item outcomes reported in TickResult.Details.
const (
	StatusSent        = "sent"
	StatusAlreadySent = "already_sent"
	StatusSendFailed  = "send_failed"
	StatusSkipped     = "skipped" // certificate's assignment no longer exists
)

// Mailer is the outbound email capability. A non-nil error or an empty
// reference both mean "not sent".
type Mailer interface {
	Send(to []string, subject, body string) (string, error)
}

// TickDetail is the outcome for one (certificate, tier) pair.
type TickDetail struct {
	CertificateNumber string `json:"certificate_number"`
	Tier              int    `json:"tier"`
	TierLabel         string `json:"tier_label"`
	Recipient         string `json:"recipient"`
	Status            string `json:"status"`
}

// TickResult aggregates one engine run for operational logging.
type TickResult struct {
	Processed int          `json:"processed"`
	Sent      int          `json:"sent"`
	Errors    int          `json:"errors"`
	Details   []TickDetail `json:"details"`
}

// TierLabel names a tier for ledger reporting and logs: day_30, day_7, day_0.
func TierLabel(tier int) string {
	return fmt.Sprintf("day_%d", tier)
}

// RunTick performs one engine run against the explicit clock value now.
// Delivery failures are absorbed into the result so the rest of the batch
// still runs; store failures abort the remaining work and are returned
// alongside the partial result. Already-written ledger rows are never undone,
// so the next tick resumes cleanly either way.
func RunTick(db *gorm.DB, mailer Mailer, now time.Time) (*TickResult, error) {
	result := &TickResult{Details: []TickDetail{}}

	for _, tier := range Tiers {
		windowStart := startOfDay(now).AddDate(0, 0, tier)
		windowEnd := windowStart.Add(24 * time.Hour)

		var certs []trainingModels.Certificate
		err := db.Where("expires_at >= ? AND expires_at < ?", windowStart, windowEnd).
			Order("expires_at asc").
			Find(&certs).Error
		if err != nil {
			return result, fmt.Errorf("querying %s certificates: %w", TierLabel(tier), err)
		}

		for _, cert := range certs {
			result.Processed++

			detail, err := notifyOne(db, mailer, cert, tier, now)
			if err != nil {
				return result, err
			}

			switch detail.Status {
			case StatusSent:
				result.Sent++
			case StatusSendFailed, StatusSkipped:
				result.Errors++
			}
			result.Details = append(result.Details, detail)
		}
	}

	return result, nil
}

// notifyOne handles a single (certificate, tier) pair. The ledger insert uses
// ON CONFLICT DO NOTHING on the (certificate_id, tier) unique index, so of any
// number of concurrent workers exactly one claims the pair and sends; the rest
// see already_sent. A failed send releases the claim for the next tick.
func notifyOne(db *gorm.DB, mailer Mailer, cert trainingModels.Certificate, tier int, now time.Time) (TickDetail, error) {
	detail := TickDetail{
		CertificateNumber: cert.CertificateNumber,
		Tier:              tier,
		TierLabel:         TierLabel(tier),
	}

	var assignment trainingModels.Assignment
	if err := db.First(&assignment, cert.AssignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Orphaned certificate. Skip it so the rest of the batch and the
			// later tiers still run; only store unavailability aborts a tick.
			detail.Status = StatusSkipped
			return detail, nil
		}
		return detail, fmt.Errorf("loading assignment %d for certificate %s: %w", cert.AssignmentID, cert.CertificateNumber, err)
	}
	detail.Recipient = assignment.Email

	record := trainingModels.CertNotification{
		CertificateID: cert.ID,
		Tier:          tier,
		SentAt:        now,
		Recipient:     assignment.Email,
	}
	claim := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record)
	if claim.Error != nil {
		return detail, fmt.Errorf("claiming %s notification for certificate %s: %w", TierLabel(tier), cert.CertificateNumber, claim.Error)
	}
	if claim.RowsAffected == 0 {
		detail.Status = StatusAlreadySent
		return detail, nil
	}

	subject, body := RenderExpiryMessage(assignment.Name, assignment.TrackID, cert, tier, now)
	ref, sendErr := mailer.Send([]string{assignment.Email}, subject, body)
	if sendErr != nil || ref == "" {
		// Release the claim so a future tick retries this pair.
		if err := db.Unscoped().Delete(&record).Error; err != nil {
			return detail, fmt.Errorf("releasing failed claim for certificate %s: %w", cert.CertificateNumber, err)
		}
		detail.Status = StatusSendFailed
		return detail, nil
	}

	record.DeliveryReference = ref
	if err := db.Model(&record).Update("delivery_reference", ref).Error; err != nil {
		return detail, fmt.Errorf("recording delivery reference for certificate %s: %w", cert.CertificateNumber, err)
	}

	detail.Status = StatusSent
	return detail, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
