package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BatchStatus mirrors the status column on payment_batches.
type BatchStatus string

const (
	BatchInPreparation   BatchStatus = "EN_PREPARACION"
	BatchFinalized       BatchStatus = "FINALIZADO"
	BatchPendingApproval BatchStatus = "PENDIENTE_APROBACION"
	BatchPaid            BatchStatus = "PAGADO"
	BatchClaimed         BatchStatus = "RECLAMADO"
	BatchVoided          BatchStatus = "ANULADO"
)

// PaymentBatch mirrors the payment_batches table.
type PaymentBatch struct {
	BatchID        string          `db:"batch_id"`
	OrganizationID string          `db:"organization_id"`
	Name           string          `db:"name"`
	Status         BatchStatus     `db:"status"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	ScheduledDate  *time.Time      `db:"scheduled_date"`
	Version        int64           `db:"version"`
	AuditFields
}

// PaymentBatchDetail mirrors the payment_batch_details table.
type PaymentBatchDetail struct {
	DetailID          string          `db:"detail_id"`
	BatchID           string          `db:"batch_id"`
	AssignedServiceID string          `db:"assigned_service_id"`
	PersonnelID       string          `db:"personnel_id"`
	Amount            decimal.Decimal `db:"amount"`
	DiscountPct       decimal.Decimal `db:"discount_pct"`
	Attendance        AttendanceState `db:"attendance"`
	AuditFields
}

// PaymentBatchPersonnel mirrors the payment_batch_personnel table.
type PaymentBatchPersonnel struct {
	BatchPersonnelID string          `db:"batch_personnel_id"`
	BatchID          string          `db:"batch_id"`
	PersonnelID      string          `db:"personnel_id"`
	ShareAmount      decimal.Decimal `db:"share_amount"`
	CollectionDone   bool            `db:"collection_done"`
	AuditFields
}
