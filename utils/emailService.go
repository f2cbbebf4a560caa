package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"certtrack/config"
	"certtrack/notifier"

	"github.com/google/uuid"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// ActiveMailer returns the configured delivery implementation. Defaults to
// console so local runs never hit a real provider.
func ActiveMailer() notifier.Mailer {
	switch config.AppConfig.MailProvider {
	case "smtp":
		return SMTPMailer{}
	case "sendgrid":
		return SendGridMailer{}
	default:
		return ConsoleMailer{}
	}
}

// SMTPMailer delivers through plain SMTP. SMTP has no message id to hand
// back, so a locally generated reference stands in for one.
type SMTPMailer struct{}

func (SMTPMailer) Send(to []string, subject, htmlBody string) (string, error) {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.EmailPassword

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: CertTrack <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Println("Error sending email:", err)
		return "", err
	}
	return "smtp-" + uuid.NewString(), nil
}

// SendGridMailer delivers through the SendGrid API and returns the provider
// message id as the delivery reference.
type SendGridMailer struct{}

func (SendGridMailer) Send(to []string, subject, htmlBody string) (string, error) {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail("CertTrack", config.AppConfig.EmailSender))
	message.Subject = subject

	personalization := mail.NewPersonalization()
	for _, addr := range to {
		personalization.AddTos(mail.NewEmail("", addr))
	}
	message.AddPersonalizations(personalization)
	message.AddContent(mail.NewContent("text/html", htmlBody))

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Println("Error sending email via SendGrid:", err)
		return "", err
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}

	if ids := resp.Headers["X-Message-Id"]; len(ids) > 0 {
		return ids[0], nil
	}
	return "sendgrid-" + uuid.NewString(), nil
}

// ConsoleMailer logs the message instead of delivering it. Used in dev.
type ConsoleMailer struct{}

func (ConsoleMailer) Send(to []string, subject, _ string) (string, error) {
	log.Printf("[MAIL] To: %v Subject: %q", to, subject)
	return "console-" + uuid.NewString(), nil
}

// SendTrainingInviteEmail notifies an assignee that training is waiting for
// them, with their personal access link. Fire-and-forget from controllers.
func SendTrainingInviteEmail(name, email, trackTitle, accessToken string) {
	subject := "You have been assigned compliance training"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your organization has assigned you the <strong>%s</strong> track.</p>
		<p>Use your personal link to start. No account is required.</p>
		<p><a href="https://app.certtrack.io/t/%s">Start training</a></p>
	`, name, trackTitle, accessToken)

	go func() {
		if _, err := ActiveMailer().Send([]string{email}, subject, notifier.WrapTemplate("Training Assigned", body)); err != nil {
			log.Printf("[MAIL] invite to %s failed: %v", email, err)
		}
	}()
}

// SendCertificateIssuedEmail congratulates a learner on completing a track.
func SendCertificateIssuedEmail(name, email, trackTitle, certificateNumber string, expiresAt string) {
	subject := "Your certificate is ready"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations! You have completed <strong>%s</strong>.</p>
		<p>Your certificate number is <strong>%s</strong>. It is valid until <strong>%s</strong>.</p>
	`, name, trackTitle, certificateNumber, expiresAt)

	go func() {
		if _, err := ActiveMailer().Send([]string{email}, subject, notifier.WrapTemplate("Certification Complete", body)); err != nil {
			log.Printf("[MAIL] certificate email to %s failed: %v", email, err)
		}
	}()
}
