package services

import (
	"context"
	"time"

	"github.com/eventstaff/esa_backend/internal/core/domain"
	"github.com/eventstaff/esa_backend/internal/dto"
)

// ContractReaderSvc defines read operations on contracts and their event detail
type ContractReaderSvc interface {
	// GetContractByID returns one contract with joined display fields.
	GetContractByID(ctx context.Context, requesterUserID string, organizationID string, contractID string) (*domain.Contract, error)

	// ListContracts returns a page of contracts ordered by event date
	// descending, optionally filtered by status.
	ListContracts(ctx context.Context, requesterUserID string, organizationID string, params dto.ListContractsParams) (*dto.ListContractsResponse, error)

	// GetContractEvent returns the contract's event detail record, creating
	// an empty one on first access.
	GetContractEvent(ctx context.Context, requesterUserID string, organizationID string, contractID string) (*domain.ContractEvent, error)

	// ListParticipations returns the staff assigned to the contract's event.
	ListParticipations(ctx context.Context, requesterUserID string, organizationID string, contractID string) ([]domain.Participation, error)

	// ListAssignedServices returns the pay lines under one participation.
	ListAssignedServices(ctx context.Context, requesterUserID string, organizationID string, participationID string) ([]domain.AssignedService, error)
}

// ContractWriterSvc defines write operations on contracts and their event detail
type ContractWriterSvc interface {
	// CreateContract creates an ACTIVA contract with staffing PENDIENTE.
	CreateContract(ctx context.Context, requesterUserID string, organizationID string, req dto.CreateContractRequest) (*domain.Contract, error)

	// UpdateContract updates mutable contract fields while the contract is
	// still ACTIVA.
	UpdateContract(ctx context.Context, requesterUserID string, organizationID string, contractID string, req dto.UpdateContractRequest) (*domain.Contract, error)

	// CompleteContract moves an ACTIVA contract to COMPLETADO, enforcing
	// that every participation has a settled attendance state.
	CompleteContract(ctx context.Context, requesterUserID string, organizationID string, contractID string) (*domain.Contract, error)

	// UpdateContractEvent records the event's actual start/end times and notes.
	UpdateContractEvent(ctx context.Context, requesterUserID string, organizationID string, contractID string, startedAt, endedAt *time.Time, notes *string) (*domain.ContractEvent, error)

	// AddParticipation assigns a staff member to the contract's event.
	AddParticipation(ctx context.Context, requesterUserID string, organizationID string, contractID string, req dto.CreateParticipationRequest) (*domain.Participation, error)

	// RemoveParticipation unassigns a staff member. Fails once any of the
	// participation's services has been paid or frozen into a batch.
	RemoveParticipation(ctx context.Context, requesterUserID string, organizationID string, participationID string) error

	// AddAssignedService adds a pay line under a participation.
	AddAssignedService(ctx context.Context, requesterUserID string, organizationID string, participationID string, req dto.CreateAssignedServiceRequest) (*domain.AssignedService, error)

	// UpdateAssignedService changes the agreed amount of a PENDIENTE,
	// unbatched service line.
	UpdateAssignedService(ctx context.Context, requesterUserID string, organizationID string, assignedServiceID string, req dto.UpdateAssignedServiceRequest) (*domain.AssignedService, error)

	// RemoveAssignedService deletes a PENDIENTE, unbatched service line.
	RemoveAssignedService(ctx context.Context, requesterUserID string, organizationID string, assignedServiceID string) error
}

// ContractSvcFacade combines the contract service interfaces
type ContractSvcFacade interface {
	ContractReaderSvc
	ContractWriterSvc
}

// AttendanceSvcFacade maintains the attendance state machine on
// participations.
type AttendanceSvcFacade interface {
	// UpdateAttendance moves a participation to the requested attendance
	// state. PUNTUAL and TARDE stamp an arrival time, ASIGNADO and AUSENTE
	// clear it. Only allowed while the owning contract is ACTIVA.
	UpdateAttendance(ctx context.Context, requesterUserID string, organizationID string, participationID string, req dto.UpdateAttendanceRequest) (*domain.Participation, error)
}
