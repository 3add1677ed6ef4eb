// Package channels chứa các kênh gửi đi (email).
package channels

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"ecojourney/config"
)

// Mailer gửi email qua SMTP
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewMailer tạo Mailer từ cấu hình SMTP
func NewMailer(cfg *config.Configuration) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
	}
}

// Enabled cho biết mailer có được cấu hình SMTP không.
// Khi không cấu hình, các email chỉ được log thay vì gửi đi.
func (m *Mailer) Enabled() bool {
	return m.host != ""
}

// SendEmail gửi một email HTML
func (m *Mailer) SendEmail(to, subject, htmlContent string) error {
	if !m.Enabled() {
		return fmt.Errorf("SMTP chưa được cấu hình")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlContent)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(msg)
}
