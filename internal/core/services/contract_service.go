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
	"github.com/google/uuid"
)

// ContractService handles contracts, their operational event detail, staff
// participations and assigned service lines.
type ContractService struct {
	contractRepo      portsrepo.ContractRepositoryFacade
	participationRepo portsrepo.ParticipationRepositoryFacade
	contractorRepo    portsrepo.ContractorRepositoryFacade
	contractTypeRepo  portsrepo.ContractTypeRepositoryFacade
	serviceTypeRepo   portsrepo.ServiceTypeRepositoryFacade
	personnelRepo     portsrepo.PersonnelRepositoryFacade
	authorizer        portssvc.OrganizationAuthorizerSvc
}

// NewContractService creates a new ContractService.
func NewContractService(
	cr portsrepo.ContractRepositoryFacade,
	pr portsrepo.ParticipationRepositoryFacade,
	ctr portsrepo.ContractorRepositoryFacade,
	ctyr portsrepo.ContractTypeRepositoryFacade,
	styr portsrepo.ServiceTypeRepositoryFacade,
	per portsrepo.PersonnelRepositoryFacade,
	authorizer portssvc.OrganizationAuthorizerSvc,
) *ContractService {
	return &ContractService{
		contractRepo:      cr,
		participationRepo: pr,
		contractorRepo:    ctr,
		contractTypeRepo:  ctyr,
		serviceTypeRepo:   styr,
		personnelRepo:     per,
		authorizer:        authorizer,
	}
}

var _ portssvc.ContractSvcFacade = (*ContractService)(nil)

// findOwnedContract loads a contract and verifies it belongs to the organization.
func (s *ContractService) findOwnedContract(ctx context.Context, organizationID, contractID string) (*domain.Contract, error) {
	contract, err := s.contractRepo.FindContractByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return contract, nil
}

// CreateContract creates an ACTIVA contract with staffing PENDIENTE.
func (s *ContractService) CreateContract(ctx context.Context, requesterUserID string, organizationID string, req dto.CreateContractRequest) (*domain.Contract, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}

	contractor, err := s.contractorRepo.FindContractorByID(ctx, req.ContractorID)
	if err != nil || contractor.OrganizationID != organizationID {
		return nil, fmt.Errorf("contractor %s not found in organization: %w", req.ContractorID, apperrors.ErrValidation)
	}
	contractType, err := s.contractTypeRepo.FindContractTypeByID(ctx, req.ContractTypeID)
	if err != nil || contractType.OrganizationID != organizationID {
		return nil, fmt.Errorf("contract type %s not found in organization: %w", req.ContractTypeID, apperrors.ErrValidation)
	}

	now := time.Now()
	contract := domain.Contract{
		ContractID:     uuid.NewString(),
		OrganizationID: organizationID,
		ContractorID:   req.ContractorID,
		ContractTypeID: req.ContractTypeID,
		EventDate:      req.EventDate,
		Venue:          req.Venue,
		Status:         domain.ContractActive,
		StaffingStatus: domain.StaffingPending,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requesterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requesterUserID,
		},
		ContractorName:   contractor.Name,
		ContractTypeName: contractType.Name,
	}
	if err := s.contractRepo.SaveContract(ctx, contract); err != nil {
		logger.Error("Failed to save contract", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}

	logger.Info("Contract created", slog.String("contract_id", contract.ContractID))
	return &contract, nil
}

// GetContractByID returns one contract with joined display fields.
func (s *ContractService) GetContractByID(ctx context.Context, requesterUserID string, organizationID string, contractID string) (*domain.Contract, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID); err != nil {
		return nil, err
	}
	return s.findOwnedContract(ctx, organizationID, contractID)
}

// ListContracts returns a page of contracts ordered by event date descending.
func (s *ContractService) ListContracts(ctx context.Context, requesterUserID string, organizationID string, params dto.ListContractsParams) (*dto.ListContractsResponse, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID); err != nil {
		return nil, err
	}

	var status *domain.ContractStatus
	if params.Status != nil {
		st := domain.ContractStatus(*params.Status)
		status = &st
	}

	contracts, nextToken, err := s.contractRepo.ListContractsByOrganization(ctx, organizationID, status, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	resp := dto.ListContractsResponse{
		Contracts: make([]dto.ContractResponse, len(contracts)),
		NextToken: nextToken,
	}
	for i := range contracts {
		resp.Contracts[i] = dto.ToContractResponse(&contracts[i])
	}
	return &resp, nil
}

// UpdateContract updates mutable contract fields while the contract is ACTIVA.
func (s *ContractService) UpdateContract(ctx context.Context, requesterUserID string, organizationID string, contractID string, req dto.UpdateContractRequest) (*domain.Contract, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}

	contract, err := s.findOwnedContract(ctx, organizationID, contractID)
	if err != nil {
		return nil, err
	}
	if contract.Status != domain.ContractActive {
		return nil, fmt.Errorf("completed contracts cannot be edited: %w", apperrors.ErrConflict)
	}

	if req.ContractorID != nil {
		contractor, err := s.contractorRepo.FindContractorByID(ctx, *req.ContractorID)
		if err != nil || contractor.OrganizationID != organizationID {
			return nil, fmt.Errorf("contractor %s not found in organization: %w", *req.ContractorID, apperrors.ErrValidation)
		}
		contract.ContractorID = *req.ContractorID
		contract.ContractorName = contractor.Name
	}
	if req.ContractTypeID != nil {
		contractType, err := s.contractTypeRepo.FindContractTypeByID(ctx, *req.ContractTypeID)
		if err != nil || contractType.OrganizationID != organizationID {
			return nil, fmt.Errorf("contract type %s not found in organization: %w", *req.ContractTypeID, apperrors.ErrValidation)
		}
		contract.ContractTypeID = *req.ContractTypeID
		contract.ContractTypeName = contractType.Name
	}
	if req.EventDate != nil {
		contract.EventDate = *req.EventDate
	}
	if req.Venue != nil {
		contract.Venue = *req.Venue
	}
	if req.Notes != nil {
		contract.Notes = *req.Notes
	}
	if req.StaffingStatus != nil {
		contract.StaffingStatus = *req.StaffingStatus
	}
	contract.LastUpdatedAt = time.Now()
	contract.LastUpdatedBy = requesterUserID

	if err := s.contractRepo.UpdateContract(ctx, *contract); err != nil {
		return nil, fmt.Errorf("failed to update contract: %w", err)
	}
	return contract, nil
}

// CompleteContract moves an ACTIVA contract to COMPLETADO, the barrier that
// releases the contract's services to payroll. Participations still in
// ASIGNADO keep their agreed amount downstream, so completion does not wait
// for attendance to be recorded.
func (s *ContractService) CompleteContract(ctx context.Context, requesterUserID string, organizationID string, contractID string) (*domain.Contract, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}

	contract, err := s.findOwnedContract(ctx, organizationID, contractID)
	if err != nil {
		return nil, err
	}
	if contract.Status != domain.ContractActive {
		return nil, fmt.Errorf("contract %s is already completed: %w", contractID, apperrors.ErrConflict)
	}

	now := time.Now()
	if err := s.contractRepo.UpdateContractStatus(ctx, contractID, domain.ContractCompleted, requesterUserID, now); err != nil {
		return nil, err
	}

	contract.Status = domain.ContractCompleted
	contract.LastUpdatedAt = now
	contract.LastUpdatedBy = requesterUserID
	logger.Info("Contract completed", slog.String("contract_id", contractID))
	return contract, nil
}

// GetContractEvent returns the contract's event detail, creating an empty
// record on first access.
func (s *ContractService) GetContractEvent(ctx context.Context, requesterUserID string, organizationID string, contractID string) (*domain.ContractEvent, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID); err != nil {
		return nil, err
	}
	if _, err := s.findOwnedContract(ctx, organizationID, contractID); err != nil {
		return nil, err
	}
	return s.ensureContractEvent(ctx, requesterUserID, contractID)
}

// ensureContractEvent implements the lazy creation of the event companion.
func (s *ContractService) ensureContractEvent(ctx context.Context, requesterUserID, contractID string) (*domain.ContractEvent, error) {
	event, err := s.contractRepo.FindEventByContractID(ctx, contractID)
	if err == nil {
		return event, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	created := domain.ContractEvent{
		ContractEventID: uuid.NewString(),
		ContractID:      contractID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requesterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requesterUserID,
		},
	}
	if err := s.contractRepo.SaveContractEvent(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create contract event: %w", err)
	}
	return &created, nil
}

// UpdateContractEvent records the event's actual start/end times and notes.
func (s *ContractService) UpdateContractEvent(ctx context.Context, requesterUserID string, organizationID string, contractID string, startedAt, endedAt *time.Time, notes *string) (*domain.ContractEvent, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}
	contract, err := s.findOwnedContract(ctx, organizationID, contractID)
	if err != nil {
		return nil, err
	}
	if contract.Status != domain.ContractActive {
		return nil, fmt.Errorf("completed contracts cannot be edited: %w", apperrors.ErrConflict)
	}

	event, err := s.ensureContractEvent(ctx, requesterUserID, contractID)
	if err != nil {
		return nil, err
	}

	if startedAt != nil {
		event.StartedAt = startedAt
	}
	if endedAt != nil {
		event.EndedAt = endedAt
	}
	if notes != nil {
		event.Notes = *notes
	}
	if event.StartedAt != nil && event.EndedAt != nil && event.EndedAt.Before(*event.StartedAt) {
		return nil, fmt.Errorf("event cannot end before it starts: %w", apperrors.ErrValidation)
	}
	event.LastUpdatedAt = time.Now()
	event.LastUpdatedBy = requesterUserID

	if err := s.contractRepo.SaveContractEvent(ctx, *event); err != nil {
		return nil, fmt.Errorf("failed to update contract event: %w", err)
	}
	return event, nil
}

// ListParticipations returns the staff assigned to the contract's event.
func (s *ContractService) ListParticipations(ctx context.Context, requesterUserID string, organizationID string, contractID string) ([]domain.Participation, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID); err != nil {
		return nil, err
	}
	if _, err := s.findOwnedContract(ctx, organizationID, contractID); err != nil {
		return nil, err
	}

	event, err := s.contractRepo.FindEventByContractID(ctx, contractID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Participation{}, nil
		}
		return nil, err
	}
	return s.participationRepo.ListParticipationsByEvent(ctx, event.ContractEventID)
}

// AddParticipation assigns a staff member to the contract's event.
func (s *ContractService) AddParticipation(ctx context.Context, requesterUserID string, organizationID string, contractID string, req dto.CreateParticipationRequest) (*domain.Participation, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}

	contract, err := s.findOwnedContract(ctx, organizationID, contractID)
	if err != nil {
		return nil, err
	}
	if contract.Status != domain.ContractActive {
		return nil, fmt.Errorf("staff cannot be assigned to a completed contract: %w", apperrors.ErrConflict)
	}

	personnel, err := s.personnelRepo.FindPersonnelByID(ctx, req.PersonnelID)
	if err != nil || personnel.OrganizationID != organizationID {
		return nil, fmt.Errorf("personnel %s not found in organization: %w", req.PersonnelID, apperrors.ErrValidation)
	}
	if !personnel.IsActive {
		return nil, fmt.Errorf("personnel %s is deactivated: %w", req.PersonnelID, apperrors.ErrValidation)
	}

	event, err := s.ensureContractEvent(ctx, requesterUserID, contractID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	participation := domain.Participation{
		ParticipationID: uuid.NewString(),
		ContractEventID: event.ContractEventID,
		PersonnelID:     req.PersonnelID,
		Attendance:      domain.AttendanceAssigned,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requesterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requesterUserID,
		},
		PersonnelName: personnel.FullName(),
	}
	if err := s.participationRepo.SaveParticipation(ctx, participation); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%s is already assigned to this event: %w", personnel.FullName(), apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to save participation: %w", err)
	}
	return &participation, nil
}

// RemoveParticipation unassigns a staff member from an event.
func (s *ContractService) RemoveParticipation(ctx context.Context, requesterUserID string, organizationID string, participationID string) error {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return err
	}

	contract, err := s.participationRepo.FindContractByParticipationID(ctx, participationID)
	if err != nil {
		return err
	}
	if contract.OrganizationID != organizationID {
		return apperrors.ErrNotFound
	}
	if contract.Status != domain.ContractActive {
		return fmt.Errorf("staffing of a completed contract cannot change: %w", apperrors.ErrConflict)
	}

	return s.participationRepo.DeleteParticipation(ctx, participationID)
}

// ListAssignedServices returns the pay lines under one participation.
func (s *ContractService) ListAssignedServices(ctx context.Context, requesterUserID string, organizationID string, participationID string) ([]domain.AssignedService, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID); err != nil {
		return nil, err
	}
	contract, err := s.participationRepo.FindContractByParticipationID(ctx, participationID)
	if err != nil {
		return nil, err
	}
	if contract.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return s.participationRepo.ListAssignedServicesByParticipation(ctx, participationID)
}

// AddAssignedService adds a pay line under a participation. When no amount
// is given, the service type's default rate applies.
func (s *ContractService) AddAssignedService(ctx context.Context, requesterUserID string, organizationID string, participationID string, req dto.CreateAssignedServiceRequest) (*domain.AssignedService, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}

	contract, err := s.participationRepo.FindContractByParticipationID(ctx, participationID)
	if err != nil {
		return nil, err
	}
	if contract.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	if contract.Status != domain.ContractActive {
		return nil, fmt.Errorf("services cannot be added to a completed contract: %w", apperrors.ErrConflict)
	}

	serviceType, err := s.serviceTypeRepo.FindServiceTypeByID(ctx, req.ServiceTypeID)
	if err != nil || serviceType.OrganizationID != organizationID {
		return nil, fmt.Errorf("service type %s not found in organization: %w", req.ServiceTypeID, apperrors.ErrValidation)
	}

	amount := serviceType.DefaultRate
	if req.AgreedAmount != nil {
		amount = *req.AgreedAmount
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("agreed amount cannot be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	service := domain.AssignedService{
		AssignedServiceID: uuid.NewString(),
		ParticipationID:   participationID,
		ServiceTypeID:     req.ServiceTypeID,
		AgreedAmount:      amount,
		PaymentState:      domain.PaymentPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requesterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requesterUserID,
		},
		ServiceTypeName: serviceType.Name,
	}
	if err := s.participationRepo.SaveAssignedService(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to save assigned service: %w", err)
	}
	return &service, nil
}

// UpdateAssignedService changes the agreed amount of a pending, unbatched line.
func (s *ContractService) UpdateAssignedService(ctx context.Context, requesterUserID string, organizationID string, assignedServiceID string, req dto.UpdateAssignedServiceRequest) (*domain.AssignedService, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}

	service, err := s.participationRepo.FindAssignedServiceByID(ctx, assignedServiceID)
	if err != nil {
		return nil, err
	}
	contract, err := s.participationRepo.FindContractByParticipationID(ctx, service.ParticipationID)
	if err != nil {
		return nil, err
	}
	if contract.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	if service.PaymentState != domain.PaymentPending {
		return nil, fmt.Errorf("paid services cannot be edited: %w", apperrors.ErrConflict)
	}
	if req.AgreedAmount.IsNegative() {
		return nil, fmt.Errorf("agreed amount cannot be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	if err := s.participationRepo.UpdateAssignedServiceAmount(ctx, assignedServiceID, req.AgreedAmount, requesterUserID, now); err != nil {
		return nil, err
	}
	service.AgreedAmount = req.AgreedAmount
	service.LastUpdatedAt = now
	service.LastUpdatedBy = requesterUserID
	return service, nil
}

// RemoveAssignedService deletes a pending, unbatched service line.
func (s *ContractService) RemoveAssignedService(ctx context.Context, requesterUserID string, organizationID string, assignedServiceID string) error {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return err
	}

	service, err := s.participationRepo.FindAssignedServiceByID(ctx, assignedServiceID)
	if err != nil {
		return err
	}
	contract, err := s.participationRepo.FindContractByParticipationID(ctx, service.ParticipationID)
	if err != nil {
		return err
	}
	if contract.OrganizationID != organizationID {
		return apperrors.ErrNotFound
	}

	return s.participationRepo.DeleteAssignedService(ctx, assignedServiceID)
}
