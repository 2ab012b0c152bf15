package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceState tracks how a staff member showed up for an event.
// ASIGNADO is the initial state; the others are set by an admin during or
// after the event and stay editable until the contract is completed.
type AttendanceState string

const (
	AttendanceAssigned AttendanceState = "ASIGNADO"
	AttendancePunctual AttendanceState = "PUNTUAL"
	AttendanceLate     AttendanceState = "TARDE"
	AttendanceAbsent   AttendanceState = "AUSENTE"
)

// StampsArrival reports whether entering this state records an arrival time.
// ASIGNADO and AUSENTE clear it instead.
func (s AttendanceState) StampsArrival() bool {
	return s == AttendancePunctual || s == AttendanceLate
}

// Valid reports whether s is a known attendance state.
func (s AttendanceState) Valid() bool {
	switch s {
	case AttendanceAssigned, AttendancePunctual, AttendanceLate, AttendanceAbsent:
		return true
	}
	return false
}

// Participation is a staff member's assignment to a contract event.
type Participation struct {
	ParticipationID string          `json:"participationID"` // Primary Key (UUID)
	ContractEventID string          `json:"contractEventID"`
	PersonnelID     string          `json:"personnelID"`
	Attendance      AttendanceState `json:"attendance"`
	ArrivalTime     *time.Time      `json:"arrivalTime,omitempty"`
	AuditFields

	// Joined display fields.
	PersonnelName string `json:"personnelName,omitempty"`
}

// PaymentState is the payroll state of a single assigned service.
type PaymentState string

const (
	PaymentPending PaymentState = "PENDIENTE"
	PaymentPaid    PaymentState = "PAGADO"
)

// AssignedService is one line-item service under a participation, with its
// agreed amount (monto pactado). It is the atomic unit of payroll.
type AssignedService struct {
	AssignedServiceID string          `json:"assignedServiceID"` // Primary Key (UUID)
	ParticipationID   string          `json:"participationID"`
	ServiceTypeID     string          `json:"serviceTypeID"`
	AgreedAmount      decimal.Decimal `json:"agreedAmount"` // Monto pactado
	PaymentState      PaymentState    `json:"paymentState"`
	AuditFields

	// Joined display fields, populated by the pending-payment queries.
	ServiceTypeName  string          `json:"serviceTypeName,omitempty"`
	PersonnelID      string          `json:"personnelID,omitempty"`
	PersonnelName    string          `json:"personnelName,omitempty"`
	Attendance       AttendanceState `json:"attendance,omitempty"`
	ContractID       string          `json:"contractID,omitempty"`
	ContractDate     time.Time       `json:"contractDate,omitempty"`
	ContractTypeName string          `json:"contractTypeName,omitempty"`
}

// PayableAmount computes the advisory amount for a pending service given an
// attendance-based discount percentage: absences pay nothing, late arrivals
// pay the agreed amount minus the discount, everything else pays in full.
// The persisted batch detail remains the authoritative record of what was paid.
func (s AssignedService) PayableAmount(discountPct decimal.Decimal) decimal.Decimal {
	switch s.Attendance {
	case AttendanceAbsent:
		return decimal.Zero
	case AttendanceLate:
		factor := decimal.NewFromInt(1).Sub(discountPct.Div(decimal.NewFromInt(100)))
		return s.AgreedAmount.Mul(factor)
	default:
		return s.AgreedAmount
	}
}
