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
	"github.com/eventstaff/esa_backend/internal/dto"
	"github.com/eventstaff/esa_backend/internal/middleware"
	"github.com/eventstaff/esa_backend/internal/utils"
	"github.com/google/uuid"
)

// PersonnelService handles staff member records and user provisioning.
type PersonnelService struct {
	personnelRepo portsrepo.PersonnelRepositoryFacade
	userRepo      portsrepo.UserRepositoryFacade
	authorizer    portssvc.OrganizationAuthorizerSvc
}

// NewPersonnelService creates a new PersonnelService.
func NewPersonnelService(pr portsrepo.PersonnelRepositoryFacade, ur portsrepo.UserRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) *PersonnelService {
	return &PersonnelService{personnelRepo: pr, userRepo: ur, authorizer: authorizer}
}

var _ portssvc.PersonnelSvcFacade = (*PersonnelService)(nil)

// adminRoles are the roles allowed to manage personnel.
var adminRoles = []domain.PersonnelRole{domain.RoleAdmin, domain.RoleAdminSupport}

// GetPersonnelByID returns a personnel record scoped to the organization.
func (s *PersonnelService) GetPersonnelByID(ctx context.Context, requesterUserID string, organizationID string, personnelID string) (*domain.Personnel, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID); err != nil {
		return nil, err
	}
	personnel, err := s.personnelRepo.FindPersonnelByID(ctx, personnelID)
	if err != nil {
		return nil, err
	}
	if personnel.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return personnel, nil
}

// ListPersonnel returns the organization's staff members.
func (s *PersonnelService) ListPersonnel(ctx context.Context, requesterUserID string, organizationID string, includeInactive bool) ([]domain.Personnel, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}
	return s.personnelRepo.ListPersonnelByOrganization(ctx, organizationID, includeInactive)
}

// GetPersonnelForUser returns the requester's own personnel record.
func (s *PersonnelService) GetPersonnelForUser(ctx context.Context, userID string, organizationID string) (*domain.Personnel, error) {
	return s.personnelRepo.FindPersonnelByUserID(ctx, organizationID, userID)
}

// CreatePersonnel creates a personnel record without a linked user.
func (s *PersonnelService) CreatePersonnel(ctx context.Context, requesterUserID string, organizationID string, req dto.CreatePersonnelRequest) (*domain.Personnel, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}

	if _, err := s.personnelRepo.FindPersonnelByEmail(ctx, organizationID, req.Email); err == nil {
		return nil, fmt.Errorf("a staff member with email %s already exists: %w", req.Email, apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing personnel: %w", err)
	}

	now := time.Now()
	personnel := domain.Personnel{
		PersonnelID:    uuid.NewString(),
		OrganizationID: organizationID,
		Role:           req.Role,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		DocumentID:     req.DocumentID,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requesterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requesterUserID,
		},
	}
	if err := s.personnelRepo.SavePersonnel(ctx, personnel); err != nil {
		logger.Error("Failed to save personnel", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create personnel: %w", err)
	}

	logger.Info("Personnel created", slog.String("personnel_id", personnel.PersonnelID))
	return &personnel, nil
}

// UpdatePersonnel updates mutable personnel fields.
func (s *PersonnelService) UpdatePersonnel(ctx context.Context, requesterUserID string, organizationID string, personnelID string, req dto.UpdatePersonnelRequest) (*domain.Personnel, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}

	personnel, err := s.personnelRepo.FindPersonnelByID(ctx, personnelID)
	if err != nil {
		return nil, err
	}
	if personnel.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}

	if req.Role != nil {
		personnel.Role = *req.Role
	}
	if req.FirstName != nil {
		personnel.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		personnel.LastName = *req.LastName
	}
	if req.Phone != nil {
		personnel.Phone = *req.Phone
	}
	if req.DocumentID != nil {
		personnel.DocumentID = *req.DocumentID
	}
	if req.IsActive != nil {
		personnel.IsActive = *req.IsActive
	}
	personnel.LastUpdatedAt = time.Now()
	personnel.LastUpdatedBy = requesterUserID

	if err := s.personnelRepo.UpdatePersonnel(ctx, *personnel); err != nil {
		return nil, fmt.Errorf("failed to update personnel: %w", err)
	}
	return personnel, nil
}

// DeactivatePersonnel soft-deletes the personnel record.
func (s *PersonnelService) DeactivatePersonnel(ctx context.Context, requesterUserID string, organizationID string, personnelID string) error {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, domain.RoleAdmin); err != nil {
		return err
	}

	personnel, err := s.personnelRepo.FindPersonnelByID(ctx, personnelID)
	if err != nil {
		return err
	}
	if personnel.OrganizationID != organizationID {
		return apperrors.ErrNotFound
	}
	if !personnel.IsActive {
		return apperrors.ErrConflict
	}

	personnel.IsActive = false
	personnel.LastUpdatedAt = time.Now()
	personnel.LastUpdatedBy = requesterUserID
	return s.personnelRepo.UpdatePersonnel(ctx, *personnel)
}

// ProvisionUser creates a login user for an existing personnel record and
// links the two. Only OPERATIONAL and ADMIN_SUPPORT staff are provisioned
// this way; admins register their own accounts. If the link cannot be made,
// the freshly created user is removed again so the operation leaves no
// half-provisioned identity behind.
func (s *PersonnelService) ProvisionUser(ctx context.Context, requesterUserID string, organizationID string, personnelID string, req dto.ProvisionUserRequest) (*domain.Personnel, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	personnel, err := s.personnelRepo.FindPersonnelByID(ctx, personnelID)
	if err != nil {
		return nil, err
	}
	if personnel.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	if personnel.Role != domain.RoleOperational && personnel.Role != domain.RoleAdminSupport {
		return nil, fmt.Errorf("personnel with role %s cannot be provisioned a login: %w", personnel.Role, apperrors.ErrValidation)
	}
	if personnel.UserID != nil {
		return nil, fmt.Errorf("personnel %s already has a login: %w", personnelID, apperrors.ErrConflict)
	}
	if personnel.Email == "" {
		return nil, fmt.Errorf("personnel %s has no email to provision a login for: %w", personnelID, apperrors.ErrValidation)
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, personnel.Email); err == nil {
		return nil, fmt.Errorf("a user with email %s already exists: %w", personnel.Email, apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        personnel.Email,
		Name:         personnel.FullName(),
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requesterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requesterUserID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user for personnel %s: %w", personnelID, err)
	}

	if err := s.personnelRepo.LinkUser(ctx, personnelID, user.UserID, requesterUserID, now); err != nil {
		// Roll the user back so the email remains free for a retry.
		if delErr := s.userRepo.DeleteUser(ctx, user.UserID); delErr != nil {
			logger.Error("Failed to roll back user after link failure",
				slog.String("user_id", user.UserID), slog.String("error", delErr.Error()))
		}
		return nil, fmt.Errorf("failed to link user to personnel %s: %w", personnelID, err)
	}

	personnel.UserID = &user.UserID
	personnel.LastUpdatedAt = now
	personnel.LastUpdatedBy = requesterUserID
	logger.Info("User provisioned for personnel",
		slog.String("personnel_id", personnelID), slog.String("user_id", user.UserID))
	return personnel, nil
}

// ContractorService handles the agency's client companies.
type ContractorService struct {
	contractorRepo portsrepo.ContractorRepositoryFacade
	authorizer     portssvc.OrganizationAuthorizerSvc
}

// NewContractorService creates a new ContractorService.
func NewContractorService(cr portsrepo.ContractorRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) *ContractorService {
	return &ContractorService{contractorRepo: cr, authorizer: authorizer}
}

var _ portssvc.ContractorSvcFacade = (*ContractorService)(nil)

func (s *ContractorService) GetContractorByID(ctx context.Context, requesterUserID string, organizationID string, contractorID string) (*domain.Contractor, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID); err != nil {
		return nil, err
	}
	contractor, err := s.contractorRepo.FindContractorByID(ctx, contractorID)
	if err != nil {
		return nil, err
	}
	if contractor.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return contractor, nil
}

func (s *ContractorService) ListContractors(ctx context.Context, requesterUserID string, organizationID string) ([]domain.Contractor, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID); err != nil {
		return nil, err
	}
	return s.contractorRepo.ListContractorsByOrganization(ctx, organizationID, false)
}

func (s *ContractorService) CreateContractor(ctx context.Context, requesterUserID string, organizationID string, req dto.CreateContractorRequest) (*domain.Contractor, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}

	now := time.Now()
	contractor := domain.Contractor{
		ContractorID:   uuid.NewString(),
		OrganizationID: organizationID,
		Name:           req.Name,
		TaxID:          req.TaxID,
		ContactName:    req.ContactName,
		ContactPhone:   req.ContactPhone,
		Email:          req.Email,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requesterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requesterUserID,
		},
	}
	if err := s.contractorRepo.SaveContractor(ctx, contractor); err != nil {
		return nil, fmt.Errorf("failed to create contractor: %w", err)
	}
	return &contractor, nil
}

func (s *ContractorService) UpdateContractor(ctx context.Context, requesterUserID string, organizationID string, contractorID string, req dto.UpdateContractorRequest) (*domain.Contractor, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}

	contractor, err := s.contractorRepo.FindContractorByID(ctx, contractorID)
	if err != nil {
		return nil, err
	}
	if contractor.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}

	if req.Name != nil {
		contractor.Name = *req.Name
	}
	if req.TaxID != nil {
		contractor.TaxID = *req.TaxID
	}
	if req.ContactName != nil {
		contractor.ContactName = *req.ContactName
	}
	if req.ContactPhone != nil {
		contractor.ContactPhone = *req.ContactPhone
	}
	if req.Email != nil {
		contractor.Email = *req.Email
	}
	if req.IsActive != nil {
		contractor.IsActive = *req.IsActive
	}
	contractor.LastUpdatedAt = time.Now()
	contractor.LastUpdatedBy = requesterUserID

	if err := s.contractorRepo.UpdateContractor(ctx, *contractor); err != nil {
		return nil, fmt.Errorf("failed to update contractor: %w", err)
	}
	return contractor, nil
}

func (s *ContractorService) DeactivateContractor(ctx context.Context, requesterUserID string, organizationID string, contractorID string) error {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, domain.RoleAdmin); err != nil {
		return err
	}

	contractor, err := s.contractorRepo.FindContractorByID(ctx, contractorID)
	if err != nil {
		return err
	}
	if contractor.OrganizationID != organizationID {
		return apperrors.ErrNotFound
	}
	if !contractor.IsActive {
		return apperrors.ErrConflict
	}

	contractor.IsActive = false
	contractor.LastUpdatedAt = time.Now()
	contractor.LastUpdatedBy = requesterUserID
	return s.contractorRepo.UpdateContractor(ctx, *contractor)
}
