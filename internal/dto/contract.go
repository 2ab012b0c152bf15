package dto

import (
	"time"

	"github.com/eventstaff/esa_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateContractRequest defines data for creating a contract.
type CreateContractRequest struct {
	ContractorID   string    `json:"contractorID" binding:"required"`
	ContractTypeID string    `json:"contractTypeID" binding:"required"`
	EventDate      time.Time `json:"eventDate" binding:"required"`
	Venue          string    `json:"venue"`
	Notes          string    `json:"notes"`
}

// UpdateContractRequest defines the updatable contract fields. Status is
// changed only through the explicit complete operation.
type UpdateContractRequest struct {
	ContractorID   *string                `json:"contractorID"`
	ContractTypeID *string                `json:"contractTypeID"`
	EventDate      *time.Time             `json:"eventDate"`
	Venue          *string                `json:"venue"`
	Notes          *string                `json:"notes"`
	StaffingStatus *domain.StaffingStatus `json:"staffingStatus" binding:"omitempty,oneof=PENDIENTE COMPLETO"`
}

// ListContractsParams defines query parameters for listing contracts.
type ListContractsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
	Status    *string `form:"status" binding:"omitempty,oneof=ACTIVA COMPLETADO"`
}

// ContractResponse defines data returned for a contract.
type ContractResponse struct {
	ContractID       string                `json:"contractID"`
	ContractorID     string                `json:"contractorID"`
	ContractorName   string                `json:"contractorName,omitempty"`
	ContractTypeID   string                `json:"contractTypeID"`
	ContractTypeName string                `json:"contractTypeName,omitempty"`
	EventDate        time.Time             `json:"eventDate"`
	Venue            string                `json:"venue"`
	Status           domain.ContractStatus `json:"status"`
	StaffingStatus   domain.StaffingStatus `json:"staffingStatus"`
	Notes            string                `json:"notes"`
	CreatedAt        time.Time             `json:"createdAt"`
}

// ToContractResponse converts domain.Contract to DTO.
func ToContractResponse(c *domain.Contract) ContractResponse {
	return ContractResponse{
		ContractID:       c.ContractID,
		ContractorID:     c.ContractorID,
		ContractorName:   c.ContractorName,
		ContractTypeID:   c.ContractTypeID,
		ContractTypeName: c.ContractTypeName,
		EventDate:        c.EventDate,
		Venue:            c.Venue,
		Status:           c.Status,
		StaffingStatus:   c.StaffingStatus,
		Notes:            c.Notes,
		CreatedAt:        c.CreatedAt,
	}
}

// ListContractsResponse wraps a page of contracts.
type ListContractsResponse struct {
	Contracts []ContractResponse `json:"contracts"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ContractEventResponse defines data returned for a contract event.
type ContractEventResponse struct {
	ContractEventID string     `json:"contractEventID"`
	ContractID      string     `json:"contractID"`
	StartedAt       *time.Time `json:"startedAt,omitempty"`
	EndedAt         *time.Time `json:"endedAt,omitempty"`
	Notes           string     `json:"notes"`
}

// ToContractEventResponse converts domain.ContractEvent to DTO.
func ToContractEventResponse(e *domain.ContractEvent) ContractEventResponse {
	return ContractEventResponse{
		ContractEventID: e.ContractEventID,
		ContractID:      e.ContractID,
		StartedAt:       e.StartedAt,
		EndedAt:         e.EndedAt,
		Notes:           e.Notes,
	}
}

// UpdateContractEventRequest records the event's actual timing and notes.
type UpdateContractEventRequest struct {
	StartedAt *time.Time `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt"`
	Notes     *string    `json:"notes"`
}

// --- Participation DTOs ---

// CreateParticipationRequest assigns a staff member to a contract event.
type CreateParticipationRequest struct {
	PersonnelID string `json:"personnelID" binding:"required"`
}

// UpdateAttendanceRequest changes the attendance state of a participation.
// ArrivalTime is optional for PUNTUAL/TARDE (defaults to now) and ignored for
// the other states.
type UpdateAttendanceRequest struct {
	Attendance  domain.AttendanceState `json:"attendance" binding:"required,oneof=ASIGNADO PUNTUAL TARDE AUSENTE"`
	ArrivalTime *time.Time             `json:"arrivalTime"`
}

// ParticipationResponse defines data returned for a participation.
type ParticipationResponse struct {
	ParticipationID string                 `json:"participationID"`
	ContractEventID string                 `json:"contractEventID"`
	PersonnelID     string                 `json:"personnelID"`
	PersonnelName   string                 `json:"personnelName,omitempty"`
	Attendance      domain.AttendanceState `json:"attendance"`
	ArrivalTime     *time.Time             `json:"arrivalTime,omitempty"`
}

// ToParticipationResponse converts domain.Participation to DTO.
func ToParticipationResponse(p *domain.Participation) ParticipationResponse {
	return ParticipationResponse{
		ParticipationID: p.ParticipationID,
		ContractEventID: p.ContractEventID,
		PersonnelID:     p.PersonnelID,
		PersonnelName:   p.PersonnelName,
		Attendance:      p.Attendance,
		ArrivalTime:     p.ArrivalTime,
	}
}

// ListParticipationsResponse wraps the participations of one contract event.
type ListParticipationsResponse struct {
	Participations []ParticipationResponse `json:"participations"`
}

// ToListParticipationsResponse converts a slice of domain.Participation to DTO.
func ToListParticipationsResponse(ps []domain.Participation) ListParticipationsResponse {
	list := make([]ParticipationResponse, len(ps))
	for i := range ps {
		list[i] = ToParticipationResponse(&ps[i])
	}
	return ListParticipationsResponse{Participations: list}
}

// --- Assigned service DTOs ---

// CreateAssignedServiceRequest adds a pay line under a participation. When
// AgreedAmount is omitted, the service type's default rate is used.
type CreateAssignedServiceRequest struct {
	ServiceTypeID string           `json:"serviceTypeID" binding:"required"`
	AgreedAmount  *decimal.Decimal `json:"agreedAmount"`
}

// UpdateAssignedServiceRequest changes the agreed amount of a pending,
// unbatched service line.
type UpdateAssignedServiceRequest struct {
	AgreedAmount decimal.Decimal `json:"agreedAmount" binding:"required"`
}

// AssignedServiceResponse defines data returned for an assigned service.
type AssignedServiceResponse struct {
	AssignedServiceID string              `json:"assignedServiceID"`
	ParticipationID   string              `json:"participationID"`
	ServiceTypeID     string              `json:"serviceTypeID"`
	ServiceTypeName   string              `json:"serviceTypeName,omitempty"`
	AgreedAmount      decimal.Decimal     `json:"agreedAmount"`
	PaymentState      domain.PaymentState `json:"paymentState"`
}

// ToAssignedServiceResponse converts domain.AssignedService to DTO.
func ToAssignedServiceResponse(s *domain.AssignedService) AssignedServiceResponse {
	return AssignedServiceResponse{
		AssignedServiceID: s.AssignedServiceID,
		ParticipationID:   s.ParticipationID,
		ServiceTypeID:     s.ServiceTypeID,
		ServiceTypeName:   s.ServiceTypeName,
		AgreedAmount:      s.AgreedAmount,
		PaymentState:      s.PaymentState,
	}
}

// ListAssignedServicesResponse wraps the service lines of one participation.
type ListAssignedServicesResponse struct {
	Services []AssignedServiceResponse `json:"services"`
}

// ToListAssignedServicesResponse converts a slice of domain.AssignedService to DTO.
func ToListAssignedServicesResponse(ss []domain.AssignedService) ListAssignedServicesResponse {
	list := make([]AssignedServiceResponse, len(ss))
	for i := range ss {
		list[i] = ToAssignedServiceResponse(&ss[i])
	}
	return ListAssignedServicesResponse{Services: list}
}
