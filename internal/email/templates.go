package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Built-in template names.
const (
	TemplateNewLead            = "new_lead"
	TemplateExpiringCredential = "expiring_credential"
)

// TemplateManager renders named HTML email templates.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager returns a manager preloaded with the built-in
// templates.
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	if err := tm.AddTemplate(TemplateNewLead, newLeadTemplate); err != nil {
		return nil, err
	}
	if err := tm.AddTemplate(TemplateExpiringCredential, expiringCredentialTemplate); err != nil {
		return nil, err
	}

	return tm, nil
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

const newLeadTemplate = `<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #dc2626; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9fafb; }
        .field { margin-bottom: 12px; }
        .label { font-weight: bold; color: #6b7280; font-size: 12px; text-transform: uppercase; }
        .value { font-size: 16px; color: #111827; }
        .button { display: inline-block; background: #dc2626; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin-top: 20px; }
        .footer { padding: 20px; text-align: center; color: #6b7280; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1 style="margin:0;">New Lead Received</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name</div>
                <div class="value">{{.FirstName}} {{.LastName}}</div>
            </div>
            <div class="field">
                <div class="label">Email</div>
                <div class="value">{{.Email}}</div>
            </div>
            <div class="field">
                <div class="label">Phone</div>
                <div class="value">{{.Phone}}</div>
            </div>
            <div class="field">
                <div class="label">Specialty</div>
                <div class="value">{{.Specialty}}</div>
            </div>
            <div class="field">
                <div class="label">Province Preference</div>
                <div class="value">{{.Province}}</div>
            </div>
            <div class="field">
                <div class="label">Source</div>
                <div class="value">{{.Source}}</div>
            </div>
            <div class="field">
                <div class="label">Assigned To</div>
                <div class="value">{{.OwnerName}}</div>
            </div>
            <a href="{{.LeadURL}}" class="button">View Lead Details</a>
        </div>
        <div class="footer">
            &copy; {{.Year}} McCare Global. All rights reserved.
        </div>
    </div>
</body>
</html>`

const expiringCredentialTemplate = `<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: {{.HeaderColor}}; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9fafb; }
        .alert-box { background: {{.AlertBg}}; border-left: 4px solid {{.AlertBorder}}; padding: 15px; margin-bottom: 20px; }
        .field { margin-bottom: 12px; }
        .label { font-weight: bold; color: #6b7280; font-size: 12px; text-transform: uppercase; }
        .value { font-size: 16px; color: #111827; }
        .days-remaining { font-size: 24px; font-weight: bold; color: {{.DaysColor}}; }
        .button { display: inline-block; background: #dc2626; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin-top: 20px; }
        .footer { padding: 20px; text-align: center; color: #6b7280; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1 style="margin:0;">{{.AlertTitle}}</h1>
        </div>
        <div class="content">
            <div class="alert-box">
                <div class="days-remaining">{{.DaysText}}</div>
            </div>
            <div class="field">
                <div class="label">Document Type</div>
                <div class="value">{{.DocumentType}}</div>
            </div>
            <div class="field">
                <div class="label">Candidate</div>
                <div class="value">{{.CandidateName}}</div>
            </div>
            <div class="field">
                <div class="label">Expiry Date</div>
                <div class="value">{{.ExpiryDate}}</div>
            </div>
            <div class="field">
                <div class="label">Current Status</div>
                <div class="value">{{.CurrentStatus}}</div>
            </div>
            <a href="{{.CandidateURL}}" class="button">View Candidate Profile</a>
        </div>
        <div class="footer">
            &copy; {{.Year}} McCare Global. All rights reserved.
        </div>
    </div>
</body>
</html>`
