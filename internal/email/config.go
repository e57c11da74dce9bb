package email

import "mccare_backend/internal/config"

// SMTPConfig holds SMTP server settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// FromAppConfig maps the application config onto SMTP settings.
func FromAppConfig(cfg *config.Config) *SMTPConfig {
	return &SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}
}
