package models

// PersonnelRole mirrors the role column on personnel.
type PersonnelRole string

const (
	RoleAdmin        PersonnelRole = "ADMIN"
	RoleAdminSupport PersonnelRole = "ADMIN_SUPPORT"
	RoleOperational  PersonnelRole = "OPERATIONAL"
)

// Personnel mirrors the personnel table.
type Personnel struct {
	PersonnelID    string        `db:"personnel_id"`
	OrganizationID string        `db:"organization_id"`
	UserID         *string       `db:"user_id"` // Nullable
	Role           PersonnelRole `db:"role"`
	FirstName      string        `db:"first_name"`
	LastName       string        `db:"last_name"`
	Email          string        `db:"email"`
	Phone          string        `db:"phone"`
	DocumentID     string        `db:"document_id"`
	IsActive       bool          `db:"is_active"`
	AuditFields
}

// Contractor mirrors the contractors table.
type Contractor struct {
	ContractorID   string `db:"contractor_id"`
	OrganizationID string `db:"organization_id"`
	Name           string `db:"name"`
	TaxID          string `db:"tax_id"`
	ContactName    string `db:"contact_name"`
	ContactPhone   string `db:"contact_phone"`
	Email          string `db:"email"`
	IsActive       bool   `db:"is_active"`
	AuditFields
}
