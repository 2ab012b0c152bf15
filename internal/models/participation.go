package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceState mirrors the attendance column on participations.
type AttendanceState string

const (
	AttendanceAssigned AttendanceState = "ASIGNADO"
	AttendancePunctual AttendanceState = "PUNTUAL"
	AttendanceLate     AttendanceState = "TARDE"
	AttendanceAbsent   AttendanceState = "AUSENTE"
)

// Participation mirrors the participations table.
type Participation struct {
	ParticipationID string          `db:"participation_id"`
	ContractEventID string          `db:"contract_event_id"`
	PersonnelID     string          `db:"personnel_id"`
	Attendance      AttendanceState `db:"attendance"`
	ArrivalTime     *time.Time      `db:"arrival_time"`
	AuditFields
}

// PaymentState mirrors the payment_state column on assigned_services.
type PaymentState string

const (
	PaymentPending PaymentState = "PENDIENTE"
	PaymentPaid    PaymentState = "PAGADO"
)

// AssignedService mirrors the assigned_services table.
type AssignedService struct {
	AssignedServiceID string          `db:"assigned_service_id"`
	ParticipationID   string          `db:"participation_id"`
	ServiceTypeID     string          `db:"service_type_id"`
	AgreedAmount      decimal.Decimal `db:"agreed_amount"`
	PaymentState      PaymentState    `db:"payment_state"`
	AuditFields
}
