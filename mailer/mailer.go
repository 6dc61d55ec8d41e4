package mailer

import (
	"errors"
	"os"
	"strconv"

	gomail "gopkg.in/gomail.v2"
)

// Mailer delivers transactional HTML email over SMTP. Send failures are
// returned to the caller; business handlers log them and carry on so a
// broken mail provider never fails an order or a signup.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	fromName string
}

func New() *Mailer {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	return &Mailer{
		host:     os.Getenv("SMTP_HOST"),
		port:     port,
		username: os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_FROM"),
		fromName: "Smart Book",
	}
}

func (m *Mailer) Send(to, subject, html string) error {
	if to == "" {
		return errors.New("no recipient email provided")
	}
	if m.host == "" {
		return errors.New("mailer is not configured")
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(msg)
}
