package handlers

import (
	"timesheet-backend/internal/config"
	"timesheet-backend/internal/mailer"
)

var (
	cfg  *config.Config
	mail *mailer.Mailer
)

// Setup передаёт хендлерам конфигурацию и отправщик почты.
func Setup(c *config.Config, m *mailer.Mailer) {
	cfg = c
	mail = m
}
