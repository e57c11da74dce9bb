package email

// Email is one outbound message.
type Email struct {
	FromName  string
	FromEmail string
	To        []string
	Subject   string
	HTMLBody  string
}

// TemplateData holds values for email templates.
type TemplateData map[string]interface{}
