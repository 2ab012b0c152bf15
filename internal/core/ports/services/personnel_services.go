package services

import (
	"context"

	"github.com/eventstaff/esa_backend/internal/core/domain"
	"github.com/eventstaff/esa_backend/internal/dto"
)

// PersonnelReaderSvc defines read operations on personnel records
type PersonnelReaderSvc interface {
	// GetPersonnelByID returns a personnel record scoped to the organization.
	GetPersonnelByID(ctx context.Context, requesterUserID string, organizationID string, personnelID string) (*domain.Personnel, error)

	// ListPersonnel returns the organization's personnel, optionally
	// including deactivated records.
	ListPersonnel(ctx context.Context, requesterUserID string, organizationID string, includeInactive bool) ([]domain.Personnel, error)

	// GetPersonnelForUser returns the requester's own personnel record in
	// the organization.
	GetPersonnelForUser(ctx context.Context, userID string, organizationID string) (*domain.Personnel, error)
}

// PersonnelWriterSvc defines write operations on personnel records
type PersonnelWriterSvc interface {
	// CreatePersonnel creates a personnel record without a linked user.
	CreatePersonnel(ctx context.Context, requesterUserID string, organizationID string, req dto.CreatePersonnelRequest) (*domain.Personnel, error)

	// UpdatePersonnel updates mutable personnel fields.
	UpdatePersonnel(ctx context.Context, requesterUserID string, organizationID string, personnelID string, req dto.UpdatePersonnelRequest) (*domain.Personnel, error)

	// DeactivatePersonnel soft-deletes the personnel record.
	DeactivatePersonnel(ctx context.Context, requesterUserID string, organizationID string, personnelID string) error

	// ProvisionUser creates a login user for an existing personnel record
	// and links the two. If linking fails the created user is removed.
	ProvisionUser(ctx context.Context, requesterUserID string, organizationID string, personnelID string, req dto.ProvisionUserRequest) (*domain.Personnel, error)
}

// PersonnelSvcFacade combines the personnel service interfaces
type PersonnelSvcFacade interface {
	PersonnelReaderSvc
	PersonnelWriterSvc
}

// ContractorSvcFacade manages client companies the agency staffs events for.
type ContractorSvcFacade interface {
	GetContractorByID(ctx context.Context, requesterUserID string, organizationID string, contractorID string) (*domain.Contractor, error)
	ListContractors(ctx context.Context, requesterUserID string, organizationID string) ([]domain.Contractor, error)
	CreateContractor(ctx context.Context, requesterUserID string, organizationID string, req dto.CreateContractorRequest) (*domain.Contractor, error)
	UpdateContractor(ctx context.Context, requesterUserID string, organizationID string, contractorID string, req dto.UpdateContractorRequest) (*domain.Contractor, error)
	DeactivateContractor(ctx context.Context, requesterUserID string, organizationID string, contractorID string) error
}
