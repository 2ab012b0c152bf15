package services

import (
	"context"

	"github.com/eventstaff/esa_backend/internal/core/domain"
	"github.com/eventstaff/esa_backend/internal/dto"
)

// CatalogSvcFacade manages the organization-scoped catalogs: contract types
// (event categories with a base income) and service types (payable roles
// with a default rate).
type CatalogSvcFacade interface {
	GetContractTypeByID(ctx context.Context, requesterUserID string, organizationID string, contractTypeID string) (*domain.ContractType, error)
	ListContractTypes(ctx context.Context, requesterUserID string, organizationID string) ([]domain.ContractType, error)
	CreateContractType(ctx context.Context, requesterUserID string, organizationID string, req dto.CreateContractTypeRequest) (*domain.ContractType, error)
	UpdateContractType(ctx context.Context, requesterUserID string, organizationID string, contractTypeID string, req dto.UpdateContractTypeRequest) (*domain.ContractType, error)
	DeactivateContractType(ctx context.Context, requesterUserID string, organizationID string, contractTypeID string) error

	GetServiceTypeByID(ctx context.Context, requesterUserID string, organizationID string, serviceTypeID string) (*domain.ServiceType, error)
	ListServiceTypes(ctx context.Context, requesterUserID string, organizationID string) ([]domain.ServiceType, error)
	CreateServiceType(ctx context.Context, requesterUserID string, organizationID string, req dto.CreateServiceTypeRequest) (*domain.ServiceType, error)
	UpdateServiceType(ctx context.Context, requesterUserID string, organizationID string, serviceTypeID string, req dto.UpdateServiceTypeRequest) (*domain.ServiceType, error)
	DeactivateServiceType(ctx context.Context, requesterUserID string, organizationID string, serviceTypeID string) error
}
