package domain

import "time"

// ContractStatus is the lifecycle state of a contract. Persisted values keep
// the Spanish codes the agency uses.
type ContractStatus string

const (
	ContractActive    ContractStatus = "ACTIVA"
	ContractCompleted ContractStatus = "COMPLETADO"
)

// StaffingStatus indicates whether staffing for the contract is finalized.
type StaffingStatus string

const (
	StaffingPending  StaffingStatus = "PENDIENTE"
	StaffingComplete StaffingStatus = "COMPLETO"
)

// Contract is an agreement with a contractor for one event. Completing a
// contract is the barrier that makes its assigned services visible to payroll.
type Contract struct {
	ContractID     string         `json:"contractID"` // Primary Key (UUID)
	OrganizationID string         `json:"organizationID"`
	ContractorID   string         `json:"contractorID"`
	ContractTypeID string         `json:"contractTypeID"`
	EventDate      time.Time      `json:"eventDate"` // Scheduled event date/time
	Venue          string         `json:"venue"`
	Status         ContractStatus `json:"status"`
	StaffingStatus StaffingStatus `json:"staffingStatus"`
	Notes          string         `json:"notes"`
	AuditFields

	// Joined display fields, populated by list queries.
	ContractorName   string `json:"contractorName,omitempty"`
	ContractTypeName string `json:"contractTypeName,omitempty"`
}

// ContractEvent is the one-to-one operational companion of a Contract. It is
// created lazily on first access and owns the participations.
type ContractEvent struct {
	ContractEventID string     `json:"contractEventID"` // Primary Key (UUID)
	ContractID      string     `json:"contractID"`      // Unique FK -> contracts.contract_id
	StartedAt       *time.Time `json:"startedAt,omitempty"`
	EndedAt         *time.Time `json:"endedAt,omitempty"`
	Notes           string     `json:"notes"`
	AuditFields
}
