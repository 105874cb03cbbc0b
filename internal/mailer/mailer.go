package mailer

import (
	"log"

	"timesheet-backend/internal/database"
	"timesheet-backend/internal/models"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// Mailer отправляет письма и ведёт журнал уведомлений. Отправка всегда
// best-effort: сбой логируется и не попадает в ответ основной операции.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// New возвращает Mailer; при пустом host отправка отключена,
// но уведомления всё равно записываются.
func New(host string, port int, user, pass string) *Mailer {
	m := &Mailer{from: user}
	if host != "" {
		m.dialer = gomail.NewDialer(host, port, user, pass)
	}
	return m
}

func (m *Mailer) Send(to, subject, body string) error {
	if m.dialer == nil {
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

// Notify записывает Notification и пытается отправить письмо.
func (m *Mailer) Notify(to, subject, body, module string, action models.NotificationAction, triggeredBy string) {
	sent := false
	if err := m.Send(to, subject, body); err != nil {
		log.Printf("failed to send email to %s: %v", to, err)
	} else if m.dialer != nil {
		sent = true
	}

	if database.DB == nil {
		return
	}
	note := models.Notification{
		NotificationID: uuid.NewString(),
		To:             to,
		Subject:        subject,
		Message:        body,
		Module:         module,
		Action:         action,
		TriggeredBy:    triggeredBy,
		Sent:           sent,
	}
	if err := database.DB.Create(&note).Error; err != nil {
		log.Printf("failed to save notification: %v", err)
	}
}
