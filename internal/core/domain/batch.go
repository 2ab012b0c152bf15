package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BatchStatus is the settlement state of a payment batch.
//
//	EN_PREPARACION -> FINALIZADO -> PENDIENTE_APROBACION -> PAGADO | RECLAMADO
//	any non-terminal state -> ANULADO (terminal)
type BatchStatus string

const (
	BatchInPreparation   BatchStatus = "EN_PREPARACION"
	BatchFinalized       BatchStatus = "FINALIZADO"
	BatchPendingApproval BatchStatus = "PENDIENTE_APROBACION"
	BatchPaid            BatchStatus = "PAGADO"
	BatchClaimed         BatchStatus = "RECLAMADO"
	BatchVoided          BatchStatus = "ANULADO"
)

// AllowsDateUpdate reports whether the scheduled payment date may still change.
// Once an admin has finalized the batch the date is frozen.
func (s BatchStatus) AllowsDateUpdate() bool {
	return s == BatchInPreparation
}

// PaymentBatch groups assigned services of one organization for settlement.
// Version is an optimistic concurrency column: finalize and void bump it and
// fail when a concurrent writer got there first.
type PaymentBatch struct {
	BatchID        string          `json:"batchID"` // Primary Key (UUID)
	OrganizationID string          `json:"organizationID"`
	Name           string          `json:"name"`
	Status         BatchStatus     `json:"status"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	ScheduledDate  *time.Time      `json:"scheduledDate,omitempty"`
	Version        int64           `json:"version"`
	AuditFields
}

// PaymentBatchDetail snapshots one assigned service at batch-creation time:
// the amount actually owed, the discount applied and the attendance observed.
// Later edits to the assignment do not alter history.
type PaymentBatchDetail struct {
	DetailID          string          `json:"detailID"` // Primary Key (UUID)
	BatchID           string          `json:"batchID"`
	AssignedServiceID string          `json:"assignedServiceID"`
	PersonnelID       string          `json:"personnelID"`
	Amount            decimal.Decimal `json:"amount"`      // Final payable amount
	DiscountPct       decimal.Decimal `json:"discountPct"` // Applied discount, 0..100
	Attendance        AttendanceState `json:"attendance"`  // Attendance at payment time
	AuditFields

	// Joined display fields.
	ServiceTypeName string `json:"serviceTypeName,omitempty"`
	PersonnelName   string `json:"personnelName,omitempty"`
}

// PaymentBatchPersonnel is the per-person rollup within a batch. The
// CollectionDone flag drives the finalize partition: collected services go to
// PAGADO, the rest revert to PENDIENTE for a later batch.
type PaymentBatchPersonnel struct {
	BatchPersonnelID string          `json:"batchPersonnelID"` // Primary Key (UUID)
	BatchID          string          `json:"batchID"`
	PersonnelID      string          `json:"personnelID"`
	ShareAmount      decimal.Decimal `json:"shareAmount"`
	CollectionDone   bool            `json:"collectionDone"`
	AuditFields

	// Joined display fields.
	PersonnelName string      `json:"personnelName,omitempty"`
	BatchName     string      `json:"batchName,omitempty"`
	BatchStatus   BatchStatus `json:"batchStatus,omitempty"`
	ScheduledDate *time.Time  `json:"scheduledDate,omitempty"`
}
