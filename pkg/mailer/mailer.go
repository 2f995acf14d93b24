package mailer

import (
	"fmt"
	"log"
	"net/smtp"
)

// Sender delivers notification mail. It is never called inside a database
// transaction; callers fire and forget.
type Sender interface {
	Send(to, subject, body string) error
}

type SMTPSender struct {
	Addr string // host:port
	From string
}

func NewSMTPSender(addr, from string) *SMTPSender {
	return &SMTPSender{Addr: addr, From: from}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", s.From, to, subject, body)
	return smtp.SendMail(s.Addr, nil, s.From, []string{to}, []byte(msg))
}

// LogSender is used in dev and tests when no SMTP server is around.
type LogSender struct{}

func (LogSender) Send(to, subject, body string) error {
	log.Printf("mail to=%s subject=%q", to, subject)
	return nil
}
