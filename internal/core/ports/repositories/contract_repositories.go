package repositories

import (
	"context"
	"time"

	"github.com/eventstaff/esa_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ContractReader defines read operations for contract data
type ContractReader interface {
	// FindContractByID retrieves a contract by ID with contractor and
	// contract-type names joined in.
	FindContractByID(ctx context.Context, contractID string) (*domain.Contract, error)

	// ListContractsByOrganization retrieves a paginated list of contracts
	// using token-based pagination, optionally filtered by status.
	ListContractsByOrganization(ctx context.Context, organizationID string, status *domain.ContractStatus, limit int, nextToken *string) ([]domain.Contract, *string, error)
}

// ContractWriter defines write operations for contract data
type ContractWriter interface {
	// SaveContract persists a new contract.
	SaveContract(ctx context.Context, contract domain.Contract) error

	// UpdateContract updates an existing contract.
	UpdateContract(ctx context.Context, contract domain.Contract) error

	// UpdateContractStatus moves a contract between lifecycle states.
	UpdateContractStatus(ctx context.Context, contractID string, status domain.ContractStatus, updatedBy string, updatedAt time.Time) error
}

// ContractEventManager defines operations for the lazy contract-event companion
type ContractEventManager interface {
	// FindEventByContractID retrieves the event companion of a contract.
	FindEventByContractID(ctx context.Context, contractID string) (*domain.ContractEvent, error)

	// SaveContractEvent persists a new contract event.
	SaveContractEvent(ctx context.Context, event domain.ContractEvent) error
}

// ContractRepositoryFacade combines all contract-related repository interfaces
type ContractRepositoryFacade interface {
	ContractReader
	ContractWriter
	ContractEventManager
}

// ParticipationReader defines read operations for participation data
type ParticipationReader interface {
	// FindParticipationByID retrieves a participation by ID.
	FindParticipationByID(ctx context.Context, participationID string) (*domain.Participation, error)

	// ListParticipationsByEvent retrieves participations of a contract event
	// with personnel names joined in.
	ListParticipationsByEvent(ctx context.Context, contractEventID string) ([]domain.Participation, error)

	// FindContractByParticipationID resolves the contract that owns a
	// participation through its event.
	FindContractByParticipationID(ctx context.Context, participationID string) (*domain.Contract, error)
}

// ParticipationWriter defines write operations for participation data
type ParticipationWriter interface {
	// SaveParticipation persists a new participation.
	SaveParticipation(ctx context.Context, participation domain.Participation) error

	// UpdateAttendance sets the attendance state and arrival time of a participation.
	UpdateAttendance(ctx context.Context, participationID string, attendance domain.AttendanceState, arrivalTime *time.Time, updatedBy string, updatedAt time.Time) error

	// DeleteParticipation removes a participation and its pending service
	// lines. Fails with ErrConflict when any line has been paid or frozen
	// into a live batch.
	DeleteParticipation(ctx context.Context, participationID string) error
}

// AssignedServiceManager defines operations for assigned-service lines
type AssignedServiceManager interface {
	// FindAssignedServiceByID retrieves an assigned service by ID.
	FindAssignedServiceByID(ctx context.Context, assignedServiceID string) (*domain.AssignedService, error)

	// ListAssignedServicesByParticipation retrieves the service lines of a participation.
	ListAssignedServicesByParticipation(ctx context.Context, participationID string) ([]domain.AssignedService, error)

	// SaveAssignedService persists a new assigned service.
	SaveAssignedService(ctx context.Context, service domain.AssignedService) error

	// UpdateAssignedServiceAmount changes the agreed amount of a service line.
	UpdateAssignedServiceAmount(ctx context.Context, assignedServiceID string, amount decimal.Decimal, updatedBy string, updatedAt time.Time) error

	// DeleteAssignedService removes a pending, unbatched service line.
	DeleteAssignedService(ctx context.Context, assignedServiceID string) error
}

// ParticipationRepositoryFacade combines participation and assigned-service interfaces
type ParticipationRepositoryFacade interface {
	ParticipationReader
	ParticipationWriter
	AssignedServiceManager
}
