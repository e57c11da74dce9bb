package services

import (
	"fmt"
	"strings"

	"mccare_backend/internal/services/dto"
)

// Canonical intake field names. Every producer adapter reconciles its
// own field-name synonyms down to these before the shared intake path
// runs.
const (
	FieldFirstName          = "first_name"
	FieldLastName           = "last_name"
	FieldEmail              = "email"
	FieldPhone              = "phone"
	FieldSpecialty          = "specialty"
	FieldProvincePreference = "province_preference"
	FieldNotes              = "notes"
	FieldUTMSource          = "utm_source"
	FieldUTMMedium          = "utm_medium"
	FieldUTMCampaign        = "utm_campaign"
	FieldUTMTerm            = "utm_term"
	FieldUTMContent         = "utm_content"
	FieldFormID             = "form_id"
	FieldLandingPageURL     = "landing_page_url"
	FieldReferrerURL        = "referrer_url"
)

// Intake source tags.
const (
	SourceATSForm     = "ATS Form"
	SourceAPI         = "API"
	SourceHubSpot     = "HubSpot"
	SourceWebsite     = "Website"
	SourceLandingPage = "Landing Page"
)

// fieldSynonyms maps each canonical field to its accepted synonyms in
// priority order; the first non-empty value wins.
var fieldSynonyms = map[string][]string{
	FieldFirstName:          {"first_name", "firstName", "firstname", "fname"},
	FieldLastName:           {"last_name", "lastName", "lastname", "lname"},
	FieldEmail:              {"email", "email_address", "emailAddress"},
	FieldPhone:              {"phone", "phone_number", "phoneNumber", "mobile"},
	FieldSpecialty:          {"specialty", "speciality", "profession"},
	FieldProvincePreference: {"province_preference", "province", "location"},
	FieldNotes:              {"notes", "message", "comments"},
	FieldUTMSource:          {"utm_source"},
	FieldUTMMedium:          {"utm_medium"},
	FieldUTMCampaign:        {"utm_campaign"},
	FieldUTMTerm:            {"utm_term"},
	FieldUTMContent:         {"utm_content"},
	FieldFormID:             {"form_id", "formId"},
	FieldLandingPageURL:     {"landing_page_url", "landingPageUrl", "page_url"},
	FieldReferrerURL:        {"referrer_url", "referrerUrl", "referrer"},
}

// NormalizeAPIPayload reconciles a loosely-typed API field bag into
// canonical field names.
func NormalizeAPIPayload(raw map[string]interface{}) map[string]string {
	fields := make(map[string]string)
	for canonical, synonyms := range fieldSynonyms {
		for _, synonym := range synonyms {
			if value, ok := raw[synonym]; ok {
				str := stringify(value)
				if str != "" {
					fields[canonical] = str
					break
				}
			}
		}
	}
	return fields
}

// NormalizeFormSubmission maps the built-in form payload; the DTO
// already uses canonical names.
func NormalizeFormSubmission(req *dto.CreateLeadRequest) map[string]string {
	return withoutEmpty(map[string]string{
		FieldFirstName:          req.FirstName,
		FieldLastName:           req.LastName,
		FieldEmail:              req.Email,
		FieldPhone:              req.Phone,
		FieldSpecialty:          req.Specialty,
		FieldProvincePreference: req.ProvincePreference,
		FieldNotes:              req.Notes,
	})
}

// NormalizeHubSpotPayload maps HubSpot contact properties onto
// canonical fields.
func NormalizeHubSpotPayload(payload *dto.HubSpotWebhookPayload) map[string]string {
	props := payload.Properties
	if props == nil {
		props = map[string]interface{}{}
	}

	fields := withoutEmpty(map[string]string{
		FieldFirstName:          stringify(props["firstname"]),
		FieldLastName:           stringify(props["lastname"]),
		FieldEmail:              stringify(props["email"]),
		FieldPhone:              stringify(props["phone"]),
		FieldSpecialty:          stringify(props["specialty"]),
		FieldProvincePreference: stringify(props["province"]),
		FieldNotes:              stringify(props["message"]),
		FieldUTMSource:          payload.UTMSource,
		FieldUTMMedium:          payload.UTMMedium,
		FieldUTMCampaign:        firstNonEmpty(payload.UTMCampaign, payload.CampaignName),
		FieldFormID:             payload.FormID,
	})
	return fields
}

// NormalizePublicSubmission maps the website/landing-page form payload
// including its campaign attribution.
func NormalizePublicSubmission(req *dto.PublicLeadSubmission) map[string]string {
	firstName, lastName := req.FirstName, req.LastName
	if firstName == "" && req.Name != "" {
		firstName, lastName = splitFullName(req.Name)
	}
	return withoutEmpty(map[string]string{
		FieldFirstName:          firstName,
		FieldLastName:           lastName,
		FieldEmail:              req.Email,
		FieldPhone:              req.Phone,
		FieldSpecialty:          req.Specialty,
		FieldProvincePreference: req.ProvincePreference,
		FieldNotes:              req.Notes,
		FieldUTMSource:          req.UTMSource,
		FieldUTMMedium:          req.UTMMedium,
		FieldUTMCampaign:        req.UTMCampaign,
		FieldUTMTerm:            req.UTMTerm,
		FieldUTMContent:         req.UTMContent,
		FieldFormID:             req.FormID,
		FieldLandingPageURL:     req.LandingPageURL,
		FieldReferrerURL:        req.ReferrerURL,
	})
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func withoutEmpty(fields map[string]string) map[string]string {
	for k, v := range fields {
		if v == "" {
			delete(fields, k)
		}
	}
	return fields
}

// splitFullName breaks a combined name on the first space; everything
// after it becomes the last name.
func splitFullName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
