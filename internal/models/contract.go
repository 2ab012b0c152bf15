package models

import "time"

// ContractStatus mirrors the status column on contracts.
type ContractStatus string

const (
	ContractActive    ContractStatus = "ACTIVA"
	ContractCompleted ContractStatus = "COMPLETADO"
)

// StaffingStatus mirrors the staffing_status column on contracts.
type StaffingStatus string

const (
	StaffingPending  StaffingStatus = "PENDIENTE"
	StaffingComplete StaffingStatus = "COMPLETO"
)

// Contract mirrors the contracts table.
type Contract struct {
	ContractID     string         `db:"contract_id"`
	OrganizationID string         `db:"organization_id"`
	ContractorID   string         `db:"contractor_id"`
	ContractTypeID string         `db:"contract_type_id"`
	EventDate      time.Time      `db:"event_date"`
	Venue          string         `db:"venue"`
	Status         ContractStatus `db:"status"`
	StaffingStatus StaffingStatus `db:"staffing_status"`
	Notes          string         `db:"notes"`
	AuditFields
}

// ContractEvent mirrors the contract_events table.
type ContractEvent struct {
	ContractEventID string     `db:"contract_event_id"`
	ContractID      string     `db:"contract_id"`
	StartedAt       *time.Time `db:"started_at"`
	EndedAt         *time.Time `db:"ended_at"`
	Notes           string     `db:"notes"`
	AuditFields
}
