package repositories

import (
	"context"

	"github.com/eventstaff/esa_backend/internal/core/domain"
)

// ContractTypeReader defines read operations for contract-type catalog data
type ContractTypeReader interface {
	// FindContractTypeByID retrieves a contract type by ID.
	FindContractTypeByID(ctx context.Context, contractTypeID string) (*domain.ContractType, error)

	// ListContractTypesByOrganization retrieves the contract-type catalog of an organization.
	ListContractTypesByOrganization(ctx context.Context, organizationID string, includeInactive bool) ([]domain.ContractType, error)
}

// ContractTypeWriter defines write operations for contract-type catalog data
type ContractTypeWriter interface {
	// SaveContractType persists a new contract type.
	SaveContractType(ctx context.Context, contractType domain.ContractType) error

	// UpdateContractType updates an existing contract type.
	UpdateContractType(ctx context.Context, contractType domain.ContractType) error
}

// ContractTypeRepositoryFacade combines the contract-type repository interfaces
type ContractTypeRepositoryFacade interface {
	ContractTypeReader
	ContractTypeWriter
}

// ServiceTypeReader defines read operations for service-type catalog data
type ServiceTypeReader interface {
	// FindServiceTypeByID retrieves a service type by ID.
	FindServiceTypeByID(ctx context.Context, serviceTypeID string) (*domain.ServiceType, error)

	// ListServiceTypesByOrganization retrieves the service-type catalog of an organization.
	ListServiceTypesByOrganization(ctx context.Context, organizationID string, includeInactive bool) ([]domain.ServiceType, error)
}

// ServiceTypeWriter defines write operations for service-type catalog data
type ServiceTypeWriter interface {
	// SaveServiceType persists a new service type.
	SaveServiceType(ctx context.Context, serviceType domain.ServiceType) error

	// UpdateServiceType updates an existing service type.
	UpdateServiceType(ctx context.Context, serviceType domain.ServiceType) error
}

// ServiceTypeRepositoryFacade combines the service-type repository interfaces
type ServiceTypeRepositoryFacade interface {
	ServiceTypeReader
	ServiceTypeWriter
}
