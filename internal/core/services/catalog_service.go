package services

import (
	"context"
	"fmt"
	"time"

	"github.com/eventstaff/esa_backend/internal/apperrors"
	"github.com/eventstaff/esa_backend/internal/core/domain"
	portsrepo "github.com/eventstaff/esa_backend/internal/core/ports/repositories"
	portssvc "github.com/eventstaff/esa_backend/internal/core/ports/services"
	"github.com/eventstaff/esa_backend/internal/dto"
	"github.com/google/uuid"
)

// CatalogService handles the per-organization contract-type and service-type
// catalogs.
type CatalogService struct {
	contractTypeRepo portsrepo.ContractTypeRepositoryFacade
	serviceTypeRepo  portsrepo.ServiceTypeRepositoryFacade
	authorizer       portssvc.OrganizationAuthorizerSvc
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(ctr portsrepo.ContractTypeRepositoryFacade, str portsrepo.ServiceTypeRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) *CatalogService {
	return &CatalogService{contractTypeRepo: ctr, serviceTypeRepo: str, authorizer: authorizer}
}

var _ portssvc.CatalogSvcFacade = (*CatalogService)(nil)

func (s *CatalogService) GetContractTypeByID(ctx context.Context, requesterUserID string, organizationID string, contractTypeID string) (*domain.ContractType, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID); err != nil {
		return nil, err
	}
	ct, err := s.contractTypeRepo.FindContractTypeByID(ctx, contractTypeID)
	if err != nil {
		return nil, err
	}
	if ct.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return ct, nil
}

func (s *CatalogService) ListContractTypes(ctx context.Context, requesterUserID string, organizationID string) ([]domain.ContractType, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID); err != nil {
		return nil, err
	}
	return s.contractTypeRepo.ListContractTypesByOrganization(ctx, organizationID, false)
}

func (s *CatalogService) CreateContractType(ctx context.Context, requesterUserID string, organizationID string, req dto.CreateContractTypeRequest) (*domain.ContractType, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}
	if req.BaseIncome.IsNegative() {
		return nil, fmt.Errorf("base income cannot be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	ct := domain.ContractType{
		ContractTypeID: uuid.NewString(),
		OrganizationID: organizationID,
		Name:           req.Name,
		BaseIncome:     req.BaseIncome,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requesterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requesterUserID,
		},
	}
	if err := s.contractTypeRepo.SaveContractType(ctx, ct); err != nil {
		return nil, fmt.Errorf("failed to create contract type: %w", err)
	}
	return &ct, nil
}

func (s *CatalogService) UpdateContractType(ctx context.Context, requesterUserID string, organizationID string, contractTypeID string, req dto.UpdateContractTypeRequest) (*domain.ContractType, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}

	ct, err := s.contractTypeRepo.FindContractTypeByID(ctx, contractTypeID)
	if err != nil {
		return nil, err
	}
	if ct.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}

	if req.Name != nil {
		ct.Name = *req.Name
	}
	if req.BaseIncome != nil {
		if req.BaseIncome.IsNegative() {
			return nil, fmt.Errorf("base income cannot be negative: %w", apperrors.ErrValidation)
		}
		ct.BaseIncome = *req.BaseIncome
	}
	if req.IsActive != nil {
		ct.IsActive = *req.IsActive
	}
	ct.LastUpdatedAt = time.Now()
	ct.LastUpdatedBy = requesterUserID

	if err := s.contractTypeRepo.UpdateContractType(ctx, *ct); err != nil {
		return nil, fmt.Errorf("failed to update contract type: %w", err)
	}
	return ct, nil
}

func (s *CatalogService) DeactivateContractType(ctx context.Context, requesterUserID string, organizationID string, contractTypeID string) error {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, domain.RoleAdmin); err != nil {
		return err
	}

	ct, err := s.contractTypeRepo.FindContractTypeByID(ctx, contractTypeID)
	if err != nil {
		return err
	}
	if ct.OrganizationID != organizationID {
		return apperrors.ErrNotFound
	}
	if !ct.IsActive {
		return apperrors.ErrConflict
	}

	ct.IsActive = false
	ct.LastUpdatedAt = time.Now()
	ct.LastUpdatedBy = requesterUserID
	return s.contractTypeRepo.UpdateContractType(ctx, *ct)
}

func (s *CatalogService) GetServiceTypeByID(ctx context.Context, requesterUserID string, organizationID string, serviceTypeID string) (*domain.ServiceType, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID); err != nil {
		return nil, err
	}
	st, err := s.serviceTypeRepo.FindServiceTypeByID(ctx, serviceTypeID)
	if err != nil {
		return nil, err
	}
	if st.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return st, nil
}

func (s *CatalogService) ListServiceTypes(ctx context.Context, requesterUserID string, organizationID string) ([]domain.ServiceType, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID); err != nil {
		return nil, err
	}
	return s.serviceTypeRepo.ListServiceTypesByOrganization(ctx, organizationID, false)
}

func (s *CatalogService) CreateServiceType(ctx context.Context, requesterUserID string, organizationID string, req dto.CreateServiceTypeRequest) (*domain.ServiceType, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}
	if req.DefaultRate.IsNegative() {
		return nil, fmt.Errorf("default rate cannot be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	st := domain.ServiceType{
		ServiceTypeID:  uuid.NewString(),
		OrganizationID: organizationID,
		Name:           req.Name,
		DefaultRate:    req.DefaultRate,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requesterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requesterUserID,
		},
	}
	if err := s.serviceTypeRepo.SaveServiceType(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to create service type: %w", err)
	}
	return &st, nil
}

func (s *CatalogService) UpdateServiceType(ctx context.Context, requesterUserID string, organizationID string, serviceTypeID string, req dto.UpdateServiceTypeRequest) (*domain.ServiceType, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}

	st, err := s.serviceTypeRepo.FindServiceTypeByID(ctx, serviceTypeID)
	if err != nil {
		return nil, err
	}
	if st.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}

	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.DefaultRate != nil {
		if req.DefaultRate.IsNegative() {
			return nil, fmt.Errorf("default rate cannot be negative: %w", apperrors.ErrValidation)
		}
		st.DefaultRate = *req.DefaultRate
	}
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}
	st.LastUpdatedAt = time.Now()
	st.LastUpdatedBy = requesterUserID

	if err := s.serviceTypeRepo.UpdateServiceType(ctx, *st); err != nil {
		return nil, fmt.Errorf("failed to update service type: %w", err)
	}
	return st, nil
}

func (s *CatalogService) DeactivateServiceType(ctx context.Context, requesterUserID string, organizationID string, serviceTypeID string) error {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, domain.RoleAdmin); err != nil {
		return err
	}

	st, err := s.serviceTypeRepo.FindServiceTypeByID(ctx, serviceTypeID)
	if err != nil {
		return err
	}
	if st.OrganizationID != organizationID {
		return apperrors.ErrNotFound
	}
	if !st.IsActive {
		return apperrors.ErrConflict
	}

	st.IsActive = false
	st.LastUpdatedAt = time.Now()
	st.LastUpdatedBy = requesterUserID
	return s.serviceTypeRepo.UpdateServiceType(ctx, *st)
}
