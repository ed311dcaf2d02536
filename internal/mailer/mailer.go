package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net"
	"net/smtp"

	"github.com/sbilibin2017/techlinker/internal/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

var (
	verificationTmpl  = template.Must(template.ParseFS(templatesFS, "templates/layout.html", "templates/verification.html"))
	passwordResetTmpl = template.Must(template.ParseFS(templatesFS, "templates/layout.html", "templates/password_reset.html"))
)

// Replaced in tests.
var sendMail = smtp.SendMail

// Config holds the SMTP settings. An empty Host disables delivery and the
// links are logged instead.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

// SMTPMailer sends account emails over SMTP.
type SMTPMailer struct {
	cfg Config
}

func New(cfg Config) *SMTPMailer {
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	return &SMTPMailer{cfg: cfg}
}

type emailData struct {
	Name      string
	Link      string
	ExpiresIn string
}

// SendVerificationEmail mails an email verification link.
func (m *SMTPMailer) SendVerificationEmail(ctx context.Context, to, name, link string) error {
	return m.send(to, "Verify your TechLinker email address", verificationTmpl, emailData{
		Name:      name,
		Link:      link,
		ExpiresIn: "24 hours",
	})
}

// SendPasswordResetEmail mails a password reset link.
func (m *SMTPMailer) SendPasswordResetEmail(ctx context.Context, to, name, link string) error {
	return m.send(to, "Reset your TechLinker password", passwordResetTmpl, emailData{
		Name:      name,
		Link:      link,
		ExpiresIn: "1 hour",
	})
}

func (m *SMTPMailer) send(to, subject string, tmpl *template.Template, data emailData) error {
	var body bytes.Buffer
	if err := tmpl.ExecuteTemplate(&body, "layout", data); err != nil {
		return fmt.Errorf("render template: %w", err)
	}

	if m.cfg.Host == "" {
		logger.Log.Infow("SMTP not configured, email not sent", "to", to, "subject", subject, "link", data.Link)
		return nil
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s\r\n",
		m.cfg.From, to, subject, body.String(),
	))

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	if err := sendMail(addr, auth, m.cfg.From, []string{to}, msg); err != nil {
		logger.Log.Errorw("failed to send email", "to", to, "subject", subject, "error", err)
		return fmt.Errorf("send email: %w", err)
	}

	logger.Log.Infow("email sent", "to", to, "subject", subject)
	return nil
}
