package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/eventstaff/esa_backend/internal/apperrors"
	"github.com/eventstaff/esa_backend/internal/core/domain"
	portsrepo "github.com/eventstaff/esa_backend/internal/core/ports/repositories"
	portssvc "github.com/eventstaff/esa_backend/internal/core/ports/services"
	"github.com/eventstaff/esa_backend/internal/middleware"
	"github.com/google/uuid"
)

// OrganizationService handles agency tenants and role-based authorization
// within them.
type OrganizationService struct {
	orgRepo       portsrepo.OrganizationRepositoryFacade
	personnelRepo portsrepo.PersonnelRepositoryFacade
	userRepo      portsrepo.UserRepositoryFacade
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(or portsrepo.OrganizationRepositoryFacade, pr portsrepo.PersonnelRepositoryFacade, ur portsrepo.UserRepositoryFacade) *OrganizationService {
	return &OrganizationService{orgRepo: or, personnelRepo: pr, userRepo: ur}
}

var _ portssvc.OrganizationSvcFacade = (*OrganizationService)(nil)

// CreateOrganization creates the organization and an ADMIN personnel record
// for the creating user.
func (s *OrganizationService) CreateOrganization(ctx context.Context, userID string, name, description string) (*domain.Organization, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load creating user: %w", err)
	}

	now := time.Now()
	org := domain.Organization{
		OrganizationID: uuid.NewString(),
		Name:           name,
		Description:    description,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.orgRepo.SaveOrganization(ctx, org); err != nil {
		logger.Error("Failed to save organization", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	// The creator becomes the first admin, linked to their login identity.
	admin := domain.Personnel{
		PersonnelID:    uuid.NewString(),
		OrganizationID: org.OrganizationID,
		UserID:         &user.UserID,
		Role:           domain.RoleAdmin,
		FirstName:      user.Name,
		Email:          user.Email,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.personnelRepo.SavePersonnel(ctx, admin); err != nil {
		logger.Error("Failed to create admin personnel for new organization",
			slog.String("error", err.Error()), slog.String("organization_id", org.OrganizationID))
		return nil, fmt.Errorf("failed to create admin record: %w", err)
	}

	logger.Info("Organization created", slog.String("organization_id", org.OrganizationID))
	return &org, nil
}

// GetOrganizationByID returns the organization if the requester belongs to it.
func (s *OrganizationService) GetOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	return s.orgRepo.FindOrganizationByID(ctx, organizationID)
}

// ListOrganizationsByUser returns organizations the user belongs to via a
// personnel record.
func (s *OrganizationService) ListOrganizationsByUser(ctx context.Context, userID string) ([]domain.Organization, error) {
	return s.orgRepo.ListOrganizationsByUserID(ctx, userID)
}

// AuthorizeUserAction verifies that userID holds one of requiredRoles in the
// organization. With no requiredRoles, any active personnel record passes.
func (s *OrganizationService) AuthorizeUserAction(ctx context.Context, userID string, organizationID string, requiredRoles ...domain.PersonnelRole) (*domain.Personnel, error) {
	personnel, err := s.personnelRepo.FindPersonnelByUserID(ctx, organizationID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("user is not a member of organization %s: %w", organizationID, apperrors.ErrForbidden)
		}
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	if len(requiredRoles) == 0 {
		return personnel, nil
	}
	for _, role := range requiredRoles {
		if personnel.Role == role {
			return personnel, nil
		}
	}
	return nil, fmt.Errorf("role %s is not allowed to perform this action: %w", personnel.Role, apperrors.ErrForbidden)
}
