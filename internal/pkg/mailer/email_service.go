package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendInitFailureAlert(reason string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	alertEmail  string
}

// NewEmailService builds the ops mailer. Returns nil when SMTP or the alert
// recipient is not configured; callers treat a nil service as disabled.
func NewEmailService(host string, port int, username, password, senderName, alertEmail string) IEmailService {
	if host == "" || alertEmail == "" {
		return nil
	}
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
		alertEmail:  alertEmail,
	}
}

// SendInitFailureAlert tells ops that the RAG chain failed to initialize and
// the service is answering 503 until restart.
func (s *emailService) SendInitFailureAlert(reason string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", s.alertEmail)
	m.SetHeader("Subject", "[AssessmentAdvisor] RAG chain initialization failed")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>RAG chain initialization failed</h2>
			<p>The advisor could not initialize its recommendation chain and will
			return 503 for every request until the process is restarted.</p>
			<p><b>Reason:</b> %s</p>
			<p><b>Time:</b> %s</p>
		</div>
	`, reason, time.Now().Format(time.RFC3339))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send init failure alert: %v\n", err)
		return err
	}

	fmt.Printf("[MAILER] Init failure alert sent to %s\n", s.alertEmail)
	return nil
}
