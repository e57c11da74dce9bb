package email

// Provider sends outbound email.
type Provider interface {
	// Send delivers the message as-is.
	Send(email *Email) error

	// SendWithTemplate renders the named template into the message
	// body before sending.
	SendWithTemplate(templateName string, data TemplateData, email *Email) error

	// Validate checks the provider configuration.
	Validate() error
}

// TemplateRenderer renders named HTML templates.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
