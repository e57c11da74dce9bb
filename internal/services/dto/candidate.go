package dto

type CreateCandidateRequest struct {
	FirstName             string   `json:"first_name" validate:"required"`
	LastName              string   `json:"last_name" validate:"required"`
	PreferredName         string   `json:"preferred_name"`
	Email                 string   `json:"email" validate:"required,email"`
	Phone                 string   `json:"phone"`
	Address               string   `json:"address"`
	City                  string   `json:"city"`
	Province              string   `json:"province"`
	PostalCode            string   `json:"postal_code"`
	Country               string   `json:"country"`
	WorkEligibility       string   `json:"work_eligibility"`
	NurseType             string   `json:"nurse_type"`
	PrimarySpecialty      string   `json:"primary_specialty"`
	YearsOfExperience     *int     `json:"years_of_experience,omitempty"`
	DesiredLocations      []string `json:"desired_locations"`
	TravelWillingness     *bool    `json:"travel_willingness,omitempty"`
	StartDateAvailability string   `json:"start_date_availability"`
	Status                string   `json:"status"`
	Tags                  []string `json:"tags"`
	Notes                 string   `json:"notes"`
}

type UpdateCandidateRequest struct {
	FirstName             *string  `json:"first_name,omitempty"`
	LastName              *string  `json:"last_name,omitempty"`
	PreferredName         *string  `json:"preferred_name,omitempty"`
	Email                 *string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone                 *string  `json:"phone,omitempty"`
	Address               *string  `json:"address,omitempty"`
	City                  *string  `json:"city,omitempty"`
	Province              *string  `json:"province,omitempty"`
	PostalCode            *string  `json:"postal_code,omitempty"`
	Country               *string  `json:"country,omitempty"`
	WorkEligibility       *string  `json:"work_eligibility,omitempty"`
	NurseType             *string  `json:"nurse_type,omitempty"`
	PrimarySpecialty      *string  `json:"primary_specialty,omitempty"`
	YearsOfExperience     *int     `json:"years_of_experience,omitempty"`
	DesiredLocations      []string `json:"desired_locations,omitempty"`
	TravelWillingness     *bool    `json:"travel_willingness,omitempty"`
	StartDateAvailability *string  `json:"start_date_availability,omitempty"`
	Status                *string  `json:"status,omitempty"`
	Tags                  []string `json:"tags,omitempty"`
	Notes                 *string  `json:"notes,omitempty"`
}
