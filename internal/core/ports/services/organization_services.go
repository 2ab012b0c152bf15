package services

import (
	"context"

	"github.com/eventstaff/esa_backend/internal/core/domain"
)

// OrganizationReaderSvc defines read operations on organizations
type OrganizationReaderSvc interface {
	// GetOrganizationByID returns the organization if it exists.
	GetOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)

	// ListOrganizationsByUser returns organizations the user belongs to via
	// a personnel record.
	ListOrganizationsByUser(ctx context.Context, userID string) ([]domain.Organization, error)
}

// OrganizationWriterSvc defines write operations on organizations
type OrganizationWriterSvc interface {
	// CreateOrganization creates the organization and an ADMIN personnel
	// record for the creating user.
	CreateOrganization(ctx context.Context, userID string, name, description string) (*domain.Organization, error)
}

// OrganizationAuthorizerSvc checks what a user is allowed to do inside an
// organization based on their personnel role.
type OrganizationAuthorizerSvc interface {
	// AuthorizeUserAction verifies that userID holds one of requiredRoles in
	// the organization. Returns the personnel record on success,
	// apperrors.ErrForbidden otherwise.
	AuthorizeUserAction(ctx context.Context, userID string, organizationID string, requiredRoles ...domain.PersonnelRole) (*domain.Personnel, error)
}

// OrganizationSvcFacade combines the organization service interfaces
type OrganizationSvcFacade interface {
	OrganizationReaderSvc
	OrganizationWriterSvc
	OrganizationAuthorizerSvc
}
