package service

import (
	"fmt"
	"log"
	"net/smtp"

	"dataku_backend/internals/configs"
)

// Mailer mengirim tautan reset password. Implementasi dipilih saat start:
// SMTP kalau SMTP_HOST di-set, selain itu hanya dicatat ke log (dev).
type Mailer interface {
	SendResetLink(toEmail, username, token string) error
}

func resetLink(token string) string {
	return fmt.Sprintf("%s?token=%s", configs.ResetURLBase, token)
}

/* ====================== SMTP ====================== */

type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

func NewSMTPMailerFromEnv() *SMTPMailer {
	return &SMTPMailer{
		Host: configs.GetEnv("SMTP_HOST"),
		Port: configs.GetEnv("SMTP_PORT", "587"),
		User: configs.GetEnv("SMTP_USER"),
		Pass: configs.GetEnv("SMTP_PASS"),
		From: configs.GetEnv("SMTP_FROM", "noreply@dataku.local"),
	}
}

func (m *SMTPMailer) SendResetLink(toEmail, username, token string) error {
	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Reset Password DataKu\r\n\r\n"+
			"Halo %s,\r\n\r\nKlik tautan berikut untuk mengatur ulang password Anda (berlaku 1 jam):\r\n%s\r\n",
		m.From, toEmail, username, resetLink(token),
	)
	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	return smtp.SendMail(m.Host+":"+m.Port, auth, m.From, []string{toEmail}, []byte(body))
}

/* ====================== LOG (dev) ====================== */

type LogMailer struct{}

func (LogMailer) SendResetLink(toEmail, username, token string) error {
	log.Printf("📧 [DEV] reset link untuk %s <%s>: %s", username, toEmail, resetLink(token))
	return nil
}
