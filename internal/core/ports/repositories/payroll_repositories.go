package repositories

import (
	"context"
	"time"

	"github.com/eventstaff/esa_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PendingServiceReader defines the pending-payment aggregation queries.
type PendingServiceReader interface {
	// ListPendingServicesByOrganization retrieves every assigned service in
	// PENDIENTE payment state whose owning contract is COMPLETADO, excluding
	// services already frozen into a live (non-voided) batch. Joined display
	// fields (personnel, service type, contract, attendance) are populated.
	ListPendingServicesByOrganization(ctx context.Context, organizationID string) ([]domain.AssignedService, error)

	// FindPendingServicesByIDs retrieves the given services with the same
	// joins and eligibility rules as ListPendingServicesByOrganization.
	// Services that are not eligible are simply absent from the result.
	FindPendingServicesByIDs(ctx context.Context, organizationID string, assignedServiceIDs []string) ([]domain.AssignedService, error)
}

// BatchReader defines read operations for payment batches.
type BatchReader interface {
	// FindBatchByID retrieves a batch header by ID.
	FindBatchByID(ctx context.Context, batchID string) (*domain.PaymentBatch, error)

	// ListBatchesByOrganization retrieves batches of an organization, newest first.
	ListBatchesByOrganization(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.PaymentBatch, *string, error)

	// FindBatchDetails retrieves the service snapshots of a batch.
	FindBatchDetails(ctx context.Context, batchID string) ([]domain.PaymentBatchDetail, error)

	// FindBatchPersonnel retrieves the per-person rollups of a batch.
	FindBatchPersonnel(ctx context.Context, batchID string) ([]domain.PaymentBatchPersonnel, error)

	// ListRollupsByPersonnel retrieves a staff member's rollups across all
	// batches of the organization, excluding voided batches.
	ListRollupsByPersonnel(ctx context.Context, organizationID, personnelID string) ([]domain.PaymentBatchPersonnel, error)
}

// BatchWriter defines the transactional write operations of the batch lifecycle.
type BatchWriter interface {
	// SaveBatch persists a batch with its details and rollups in one
	// database transaction. The referenced assigned services are locked and
	// re-checked inside the transaction; ErrConflict is returned when any of
	// them is no longer pending or already belongs to a live batch.
	SaveBatch(ctx context.Context, batch domain.PaymentBatch, details []domain.PaymentBatchDetail, rollups []domain.PaymentBatchPersonnel) error

	// UpdateCollectionDone flips the collection flag of one rollup row.
	UpdateCollectionDone(ctx context.Context, batchID, personnelID string, done bool, updatedBy string, updatedAt time.Time) error

	// FinalizeBatch applies a finalize partition atomically: paid services
	// move to PAGADO, reverted services are reset to PENDIENTE, and the batch
	// row moves to FINALIZADO with its total replaced by paidTotal. The batch
	// row is locked and its version compared against batch.Version;
	// ErrConflict is returned when a concurrent writer got there first or the
	// batch is no longer EN_PREPARACION.
	FinalizeBatch(ctx context.Context, batch domain.PaymentBatch, paidServiceIDs, revertedServiceIDs []string, paidTotal decimal.Decimal, scheduledDate *time.Time, updatedBy string, updatedAt time.Time) error

	// VoidBatch resets every referenced service to PENDIENTE and moves the
	// batch to ANULADO, under the same lock-and-version discipline as
	// FinalizeBatch.
	VoidBatch(ctx context.Context, batch domain.PaymentBatch, serviceIDs []string, updatedBy string, updatedAt time.Time) error

	// UpdateBatchStatus applies the staff-facing downstream transitions
	// (approval, paid acknowledgement, claim). The caller passes the version
	// it read; a stale version yields ErrConflict.
	UpdateBatchStatus(ctx context.Context, batchID string, status domain.BatchStatus, version int64, updatedBy string, updatedAt time.Time) error

	// UpdateScheduledDate changes the scheduled payment date.
	UpdateScheduledDate(ctx context.Context, batchID string, scheduledDate time.Time, updatedBy string, updatedAt time.Time) error
}

// PaymentBatchRepositoryFacade combines the payroll repository interfaces.
type PaymentBatchRepositoryFacade interface {
	PendingServiceReader
	BatchReader
	BatchWriter
}
