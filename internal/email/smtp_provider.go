package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail over SMTP using gomail.
type SMTPProvider struct {
	config   *SMTPConfig
	renderer TemplateRenderer
}

func NewSMTPProvider(config *SMTPConfig, renderer TemplateRenderer) *SMTPProvider {
	return &SMTPProvider{
		config:   config,
		renderer: renderer,
	}
}

func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	from := email.FromEmail
	if from == "" {
		from = p.config.FromEmail
	}
	fromName := email.FromName
	if fromName == "" {
		fromName = p.config.FromName
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", from, fromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.HTMLBody)

	d := gomail.NewDialer(
		p.config.Host,
		p.config.Port,
		p.config.Username,
		p.config.Password,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendWithTemplate(templateName string, data TemplateData, email *Email) error {
	if p.renderer == nil {
		return fmt.Errorf("template renderer is not configured")
	}

	htmlBody, err := p.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	email.HTMLBody = htmlBody
	return p.Send(email)
}

func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}

	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}

	return nil
}
