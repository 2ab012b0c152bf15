package services

import (
	"context"

	"github.com/eventstaff/esa_backend/internal/core/domain"
	"github.com/eventstaff/esa_backend/internal/dto"
)

// PayrollReaderSvc defines read operations on the payroll workflow
type PayrollReaderSvc interface {
	// ListPendingServices aggregates every PENDIENTE service on COMPLETADO
	// contracts, grouped per staff member with advisory payable amounts.
	ListPendingServices(ctx context.Context, requesterUserID string, organizationID string) (*dto.ListPendingServicesResponse, error)

	// GetBatch returns one batch with its frozen details and per-person rollups.
	GetBatch(ctx context.Context, requesterUserID string, organizationID string, batchID string) (*dto.GetBatchResponse, error)

	// ListBatches returns the organization's batches, newest first.
	ListBatches(ctx context.Context, requesterUserID string, organizationID string) ([]domain.PaymentBatch, error)

	// ListMyPayments returns the requester's own rollups across non-voided
	// batches.
	ListMyPayments(ctx context.Context, requesterUserID string, organizationID string) (*dto.ListMyPaymentsResponse, error)
}

// PayrollWriterSvc defines the batch lifecycle operations
type PayrollWriterSvc interface {
	// CreateBatch freezes the selected pending services into a new
	// EN_PREPARACION batch, snapshotting amounts and discounts.
	CreateBatch(ctx context.Context, requesterUserID string, organizationID string, req dto.CreateBatchRequest) (*domain.PaymentBatch, error)

	// ToggleCollection flips the collection flag on one staff member's
	// rollup while the batch is EN_PREPARACION.
	ToggleCollection(ctx context.Context, requesterUserID string, organizationID string, batchID string, personnelID string, collectionDone bool) error

	// FinalizeBatch settles an EN_PREPARACION batch: services of staff with
	// collection done become PAGADO, the rest revert to PENDIENTE and leave
	// the batch. Returns the resulting partition.
	FinalizeBatch(ctx context.Context, requesterUserID string, organizationID string, batchID string, req dto.FinalizeBatchRequest) (*dto.FinalizeBatchResponse, error)

	// VoidBatch cancels a batch and releases every frozen service back to
	// PENDIENTE.
	VoidBatch(ctx context.Context, requesterUserID string, organizationID string, batchID string) error

	// UpdateScheduledDate changes the planned payment date of a batch whose
	// status still allows it.
	UpdateScheduledDate(ctx context.Context, requesterUserID string, organizationID string, batchID string, req dto.UpdateBatchDateRequest) (*domain.PaymentBatch, error)

	// ApproveBatch moves a FINALIZADO batch to PENDIENTE_APROBACION and a
	// PENDIENTE_APROBACION batch to PAGADO.
	ApproveBatch(ctx context.Context, requesterUserID string, organizationID string, batchID string) (*domain.PaymentBatch, error)

	// ClaimBatch flags a FINALIZADO or PENDIENTE_APROBACION batch as
	// RECLAMADO (disputed by staff).
	ClaimBatch(ctx context.Context, requesterUserID string, organizationID string, batchID string) (*domain.PaymentBatch, error)
}

// PayrollSvcFacade combines the payroll service interfaces
type PayrollSvcFacade interface {
	PayrollReaderSvc
	PayrollWriterSvc
}
