package dto

type CreateDocumentRequest struct {
	CandidateID  string `json:"candidate_id" validate:"required"`
	DocumentType string `json:"document_type" validate:"required"`
	FileURL      string `json:"file_url" validate:"required"`
	IssueDate    string `json:"issue_date"`
	ExpiryDate   string `json:"expiry_date"`
	Notes        string `json:"notes"`
}

type UpdateDocumentRequest struct {
	DocumentType *string `json:"document_type,omitempty"`
	FileURL      *string `json:"file_url,omitempty"`
	IssueDate    *string `json:"issue_date,omitempty"`
	ExpiryDate   *string `json:"expiry_date,omitempty"`
	Status       *string `json:"status,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// ExpiringDocument is one row of the compliance expiry report.
type ExpiringDocument struct {
	DocumentID      string `json:"document_id"`
	CandidateID     string `json:"candidate_id"`
	CandidateName   string `json:"candidate_name"`
	DocumentType    string `json:"document_type"`
	ExpiryDate      string `json:"expiry_date"`
	DaysUntilExpiry int    `json:"days_until_expiry"`
	Status          string `json:"status"`
}
