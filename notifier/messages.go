package notifier

import (
	"fmt"
	"time"

	"certtrack/catalog"
	trainingModels "certtrack/models/training"
)

// RenderExpiryMessage builds the subject and HTML body for one expiry
// notification. Urgency escalates as the tier approaches zero; a certificate
// that is already past its expiry when the day-0 pass runs gets its own band.
func RenderExpiryMessage(holderName, trackID string, cert trainingModels.Certificate, tier int, now time.Time) (subject, body string) {
	expiryDate := cert.ExpiresAt.Format("January 2, 2006")
	trackTitle := "your training"
	if track, ok := catalog.Get(trackID); ok {
		trackTitle = track.Title
	}

	var heading, lede string
	switch {
	case tier == 0 && now.After(cert.ExpiresAt):
		subject = "Action required: your certificate has expired"
		heading = "Certificate Expired"
		lede = fmt.Sprintf(
			`<p>Dear %s,</p>
			<p>Your certificate <strong>%s</strong> for <strong>%s</strong> expired on <strong>%s</strong>.</p>
			<p style="color: #DC3545; font-weight: bold;">You are no longer certified. Please begin recertification immediately.</p>`,
			holderName, cert.CertificateNumber, trackTitle, expiryDate)
	case tier == 0:
		subject = "Your certificate expires today"
		heading = "Certificate Expires Today"
		lede = fmt.Sprintf(
			`<p>Dear %s,</p>
			<p>Your certificate <strong>%s</strong> for <strong>%s</strong> expires <strong>today, %s</strong>.</p>
			<p style="color: #DC3545; font-weight: bold;">Complete your recertification today to avoid a lapse in compliance.</p>`,
			holderName, cert.CertificateNumber, trackTitle, expiryDate)
	case tier == 7:
		subject = "Your certificate expires in 7 days"
		heading = "Certificate Expiring Soon"
		lede = fmt.Sprintf(
			`<p>Dear %s,</p>
			<p>Your certificate <strong>%s</strong> for <strong>%s</strong> expires on <strong>%s</strong>, one week from today.</p>
			<p>Please schedule your recertification now so your status does not lapse.</p>`,
			holderName, cert.CertificateNumber, trackTitle, expiryDate)
	default:
		subject = fmt.Sprintf("Your certificate expires in %d days", tier)
		heading = "Certificate Renewal Reminder"
		lede = fmt.Sprintf(
			`<p>Dear %s,</p>
			<p>This is a reminder that your certificate <strong>%s</strong> for <strong>%s</strong> expires on <strong>%s</strong>.</p>
			<p>No action is needed yet, but we recommend planning your recertification ahead of time.</p>`,
			holderName, cert.CertificateNumber, trackTitle, expiryDate)
	}

	body = WrapTemplate(heading, lede)
	return subject, body
}

// WrapTemplate applies the product HTML email shell.
func WrapTemplate(title, content string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A2B49; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A2B49; line-height: 1.6; }
			.content h2 { color: #1A2B49; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CERTTRACK</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated compliance notification from CertTrack.
			</div>
		</div>
	</body>
	</html>
	`, title, content)
}
