package models

type Facility struct {
	BaseModel
	Name             string `gorm:"not null" json:"name"`
	Address          string `json:"address,omitempty"`
	City             string `json:"city,omitempty"`
	Province         string `json:"province,omitempty"`
	FacilityType     string `gorm:"default:'Hospital'" json:"facility_type"`
	MainContactName  string `json:"main_contact_name,omitempty"`
	MainContactEmail string `json:"main_contact_email,omitempty"`
	MainContactPhone string `json:"main_contact_phone,omitempty"`
	BillingNotes     string `json:"billing_notes,omitempty"`
}
