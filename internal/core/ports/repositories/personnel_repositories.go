package repositories

import (
	"context"
	"time"

	"github.com/eventstaff/esa_backend/internal/core/domain"
)

// PersonnelReader defines read operations for personnel data
type PersonnelReader interface {
	// FindPersonnelByID retrieves a staff member by ID.
	FindPersonnelByID(ctx context.Context, personnelID string) (*domain.Personnel, error)

	// FindPersonnelByUserID retrieves the staff member row linked to a user
	// within an organization.
	FindPersonnelByUserID(ctx context.Context, organizationID, userID string) (*domain.Personnel, error)

	// FindPersonnelByEmail retrieves a staff member by email within an organization.
	FindPersonnelByEmail(ctx context.Context, organizationID, email string) (*domain.Personnel, error)

	// ListPersonnelByOrganization retrieves staff members of an organization.
	ListPersonnelByOrganization(ctx context.Context, organizationID string, includeInactive bool) ([]domain.Personnel, error)
}

// PersonnelWriter defines write operations for personnel data
type PersonnelWriter interface {
	// SavePersonnel persists a new staff member.
	SavePersonnel(ctx context.Context, personnel domain.Personnel) error

	// UpdatePersonnel updates an existing staff member.
	UpdatePersonnel(ctx context.Context, personnel domain.Personnel) error

	// LinkUser sets the user_id of a personnel row. Fails with ErrConflict if
	// the row is already linked.
	LinkUser(ctx context.Context, personnelID, userID, updatedBy string, updatedAt time.Time) error
}

// PersonnelRepositoryFacade combines all personnel-related repository interfaces
type PersonnelRepositoryFacade interface {
	PersonnelReader
	PersonnelWriter
}

// ContractorReader defines read operations for contractor data
type ContractorReader interface {
	// FindContractorByID retrieves a contractor by ID.
	FindContractorByID(ctx context.Context, contractorID string) (*domain.Contractor, error)

	// ListContractorsByOrganization retrieves contractors of an organization.
	ListContractorsByOrganization(ctx context.Context, organizationID string, includeInactive bool) ([]domain.Contractor, error)
}

// ContractorWriter defines write operations for contractor data
type ContractorWriter interface {
	// SaveContractor persists a new contractor.
	SaveContractor(ctx context.Context, contractor domain.Contractor) error

	// UpdateContractor updates an existing contractor.
	UpdateContractor(ctx context.Context, contractor domain.Contractor) error
}

// ContractorRepositoryFacade combines all contractor-related repository interfaces
type ContractorRepositoryFacade interface {
	ContractorReader
	ContractorWriter
}
