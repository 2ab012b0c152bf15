package domain

// Contractor (contratador) is a client that hires staff for an event.
type Contractor struct {
	ContractorID   string `json:"contractorID"` // Primary Key (UUID)
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
	TaxID          string `json:"taxID"`
	ContactName    string `json:"contactName"`
	ContactPhone   string `json:"contactPhone"`
	Email          string `json:"email"`
	IsActive       bool   `json:"isActive"`
	AuditFields
}
