package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/aishnar/aishnar-leads/internal/infra/queue"
)

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

// SendLeadNotification emails the review inbox about one captured lead.
func (s *EmailSender) SendLeadNotification(to string, payload queue.LeadCapturedPayload) error {
	data := LeadNotificationData{
		FullName:       payload.FullName,
		Email:          payload.Email,
		CompanyName:    payload.CompanyName,
		Industry:       payload.Industry,
		InterestInPaid: payload.InterestInPaid,
		SubmittedAt:    payload.CreatedAt.Format("02 Jan 2006 15:04 MST"),
	}

	tmplPath := filepath.Join("templates", "lead_notification.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("failed to read email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "no-reply@aishnar.digital")
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("New business analysis request from %s", payload.CompanyName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send SMTP email: %w", err)
	}

	return nil
}
