package domain

// PersonnelRole defines what a staff member may do within their organization.
type PersonnelRole string

const (
	RoleAdmin        PersonnelRole = "ADMIN"
	RoleAdminSupport PersonnelRole = "ADMIN_SUPPORT"
	RoleOperational  PersonnelRole = "OPERATIONAL"
)

// Personnel is a staff member record within an organization. The optional
// UserID link is established by the provisioning flow; operational staff can
// exist without any login identity.
type Personnel struct {
	PersonnelID    string        `json:"personnelID"` // Primary Key (UUID)
	OrganizationID string        `json:"organizationID"`
	UserID         *string       `json:"userID,omitempty"` // Nullable FK -> users.user_id
	Role           PersonnelRole `json:"role"`
	FirstName      string        `json:"firstName"`
	LastName       string        `json:"lastName"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	DocumentID     string        `json:"documentID"` // National identity document
	IsActive       bool          `json:"isActive"`   // Soft delete flag
	AuditFields
}

// FullName returns the display name used in payroll groupings.
func (p Personnel) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
