package utils

import (
	"log"
	"time"

	"certtrack/config"
	"certtrack/notifier"

	"github.com/go-resty/resty/v2"
)

// PostTickSummary forwards a tick result to the operations webhook when one
// is configured. Delivery problems are logged and swallowed: the webhook is
// informational and must never affect the job itself.
func PostTickSummary(result *notifier.TickResult) {
	url := config.AppConfig.OpsWebhookURL
	if url == "" || result == nil {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"job":       "cert-expiry",
			"processed": result.Processed,
			"sent":      result.Sent,
			"errors":    result.Errors,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}).
		Post(url)
	if err != nil {
		log.Printf("[OPS-WEBHOOK] post failed: %v", err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("[OPS-WEBHOOK] post returned status %d", resp.StatusCode())
	}
}
