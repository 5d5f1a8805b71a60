package notifications

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/aniruddha1321/WellNest/domain"
)

// SMTPServiceImpl implements domain.MailService over plain SMTP with AUTH.
type SMTPServiceImpl struct {
	host        string
	port        int
	username    string
	password    string
	from        string
	frontendURL string
}

// NewSMTPService creates a new SMTP mail service
func NewSMTPService(host string, port int, username, password, from, frontendURL string) domain.MailService {
	return &SMTPServiceImpl{
		host:        host,
		port:        port,
		username:    username,
		password:    password,
		from:        from,
		frontendURL: frontendURL,
	}
}

// SendVerificationEmail implements domain.MailService
func (s *SMTPServiceImpl) SendVerificationEmail(to, code string) error {
	subject := "WellNest - Email Verification"
	body := fmt.Sprintf("Your WellNest verification code is: %s\nThis code is valid for 15 minutes.", code)
	return s.send(to, subject, body)
}

// SendResetEmail implements domain.MailService
func (s *SMTPServiceImpl) SendResetEmail(to, code string) error {
	subject := "WellNest - Password Reset"
	resetLink := fmt.Sprintf("%s/reset-password?email=%s&token=%s", s.frontendURL, to, code)
	body := fmt.Sprintf("Click the link below to reset your password:\n\n%s\n\n"+
		"This link is valid for 15 minutes.\n\n"+
		"If you didn't request a password reset, please ignore this email.", resetLink)
	return s.send(to, subject, body)
}

func (s *SMTPServiceImpl) send(to, subject, body string) error {
	// If the relay is not configured, log instead of sending
	if s.host == "" {
		fmt.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s\n", to, subject, body)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + s.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMailDispatch, err)
	}

	return nil
}
