package training

import (
	"time"

	"gorm.io/gorm"
)

// CertNotification is the append-only ledger of dispatched expiry notifications.
// The unique index on (certificate_id, tier) is what makes the notification
// engine safe to re-run: an insert that hits the index means another run
// already claimed this notification.
type CertNotification struct {
	gorm.Model
	CertificateID     uint      `json:"certificate_id" gorm:"uniqueIndex:idx_cert_tier;not null"`
	Tier              int       `json:"tier" gorm:"uniqueIndex:idx_cert_tier;not null"` // days before expiry: 30, 7 or 0
	SentAt            time.Time `json:"sent_at"`
	Recipient         string    `json:"recipient"`
	DeliveryReference string    `json:"delivery_reference"` // provider message id, or a local fallback id
}

func (CertNotification) TableName() string { return "training_cert_notifications" }
