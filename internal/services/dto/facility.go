package dto

type CreateFacilityRequest struct {
	Name             string `json:"name" validate:"required"`
	Address          string `json:"address"`
	City             string `json:"city"`
	Province         string `json:"province"`
	FacilityType     string `json:"facility_type"`
	MainContactName  string `json:"main_contact_name"`
	MainContactEmail string `json:"main_contact_email" validate:"omitempty,email"`
	MainContactPhone string `json:"main_contact_phone"`
	BillingNotes     string `json:"billing_notes"`
}

type UpdateFacilityRequest struct {
	Name             *string `json:"name,omitempty"`
	Address          *string `json:"address,omitempty"`
	City             *string `json:"city,omitempty"`
	Province         *string `json:"province,omitempty"`
	FacilityType     *string `json:"facility_type,omitempty"`
	MainContactName  *string `json:"main_contact_name,omitempty"`
	MainContactEmail *string `json:"main_contact_email,omitempty" validate:"omitempty,email"`
	MainContactPhone *string `json:"main_contact_phone,omitempty"`
	BillingNotes     *string `json:"billing_notes,omitempty"`
}
