package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventstaff/esa_backend/internal/apperrors"
	"github.com/eventstaff/esa_backend/internal/core/domain"
	portsrepo "github.com/eventstaff/esa_backend/internal/core/ports/repositories"
	"github.com/eventstaff/esa_backend/internal/models"
	"github.com/eventstaff/esa_backend/internal/utils/mapping"
	"github.com/eventstaff/esa_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxBatchRepository struct {
	BaseRepository
}

// newPgxBatchRepository creates the repository behind the payroll batching
// workflow.
func newPgxBatchRepository(pool *pgxpool.Pool) portsrepo.PaymentBatchRepositoryFacade {
	return &PgxBatchRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentBatchRepositoryFacade = (*PgxBatchRepository)(nil)

// pendingServiceSelect joins a pending assigned service with everything the
// aggregator groups by. A service is eligible when it is unpaid, its contract
// has been completed and it is not already frozen into a live batch.
const pendingServiceSelect = `
	SELECT s.assigned_service_id, s.participation_id, s.service_type_id, s.agreed_amount, s.payment_state,
		s.created_at, s.created_by, s.last_updated_at, s.last_updated_by,
		st.name AS service_type_name, p.personnel_id, per.first_name, per.last_name, p.attendance,
		c.contract_id, c.event_date, ct.name AS contract_type_name
	FROM assigned_services s
	JOIN service_types st ON st.service_type_id = s.service_type_id
	JOIN participations p ON p.participation_id = s.participation_id
	JOIN personnel per ON per.personnel_id = p.personnel_id
	JOIN contract_events ce ON ce.contract_event_id = p.contract_event_id
	JOIN contracts c ON c.contract_id = ce.contract_id
	JOIN contract_types ct ON ct.contract_type_id = c.contract_type_id
	WHERE s.payment_state = 'PENDIENTE'
	  AND c.status = 'COMPLETADO'
	  AND NOT EXISTS (
		SELECT 1
		FROM payment_batch_details d
		JOIN payment_batches b ON b.batch_id = d.batch_id
		WHERE d.assigned_service_id = s.assigned_service_id AND b.status <> 'ANULADO'
	  )`

func scanPendingService(row pgx.Row) (*domain.AssignedService, error) {
	var m models.AssignedService
	var serviceTypeName, personnelID, firstName, lastName string
	var attendance models.AttendanceState
	var contractID, contractTypeName string
	var contractDate time.Time
	err := row.Scan(
		&m.AssignedServiceID,
		&m.ParticipationID,
		&m.ServiceTypeID,
		&m.AgreedAmount,
		&m.PaymentState,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&serviceTypeName,
		&personnelID,
		&firstName,
		&lastName,
		&attendance,
		&contractID,
		&contractDate,
		&contractTypeName,
	)
	if err != nil {
		return nil, err
	}
	s := mapping.ToDomainAssignedService(m)
	s.ServiceTypeName = serviceTypeName
	s.PersonnelID = personnelID
	s.PersonnelName = domain.Personnel{FirstName: firstName, LastName: lastName}.FullName()
	s.Attendance = domain.AttendanceState(attendance)
	s.ContractID = contractID
	s.ContractDate = contractDate
	s.ContractTypeName = contractTypeName
	return &s, nil
}

func (r *PgxBatchRepository) ListPendingServicesByOrganization(ctx context.Context, organizationID string) ([]domain.AssignedService, error) {
	query := pendingServiceSelect + `
	  AND c.organization_id = $1
	ORDER BY per.last_name, per.first_name, c.event_date, s.created_at;`

	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending services: %w", err)
	}
	defer rows.Close()

	result := []domain.AssignedService{}
	for rows.Next() {
		s, err := scanPendingService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pending service row: %w", err)
		}
		result = append(result, *s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating pending service rows: %w", rows.Err())
	}
	return result, nil
}

func (r *PgxBatchRepository) FindPendingServicesByIDs(ctx context.Context, organizationID string, assignedServiceIDs []string) ([]domain.AssignedService, error) {
	query := pendingServiceSelect + `
	  AND c.organization_id = $1
	  AND s.assigned_service_id = ANY($2);`

	rows, err := r.Pool.Query(ctx, query, organizationID, assignedServiceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending services by IDs: %w", err)
	}
	defer rows.Close()

	result := []domain.AssignedService{}
	for rows.Next() {
		s, err := scanPendingService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pending service row: %w", err)
		}
		result = append(result, *s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating pending service rows: %w", rows.Err())
	}
	return result, nil
}

// SaveBatch freezes a set of pending services and their rollups in one
// transaction. The services are re-checked under lock so two admins cannot
// freeze the same line twice.
func (r *PgxBatchRepository) SaveBatch(ctx context.Context, batch domain.PaymentBatch, details []domain.PaymentBatchDetail, rollups []domain.PaymentBatchPersonnel) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	serviceIDs := make([]string, len(details))
	for i, d := range details {
		serviceIDs[i] = d.AssignedServiceID
	}

	// Lock the service rows and recheck eligibility inside the transaction.
	lockQuery := `
		SELECT s.assigned_service_id
		FROM assigned_services s
		JOIN participations p ON p.participation_id = s.participation_id
		JOIN contract_events ce ON ce.contract_event_id = p.contract_event_id
		JOIN contracts c ON c.contract_id = ce.contract_id
		WHERE s.assigned_service_id = ANY($1)
		  AND s.payment_state = 'PENDIENTE'
		  AND c.status = 'COMPLETADO'
		  AND c.organization_id = $2
		  AND NOT EXISTS (
			SELECT 1
			FROM payment_batch_details d
			JOIN payment_batches b ON b.batch_id = d.batch_id
			WHERE d.assigned_service_id = s.assigned_service_id AND b.status <> 'ANULADO'
		  )
		FOR UPDATE OF s;
	`
	rows, err := tx.Query(ctx, lockQuery, serviceIDs, batch.OrganizationID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to lock services for batch creation", err)
	}
	eligible := 0
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return apperrors.NewAppError(500, "failed to scan locked service row", err)
		}
		eligible++
	}
	rows.Close()
	if rows.Err() != nil {
		return apperrors.NewAppError(500, "failed to lock services for batch creation", rows.Err())
	}
	if eligible != len(serviceIDs) {
		return fmt.Errorf("one or more services are no longer eligible for batching: %w", apperrors.ErrConflict)
	}

	mb := mapping.ToModelPaymentBatch(batch)
	batchQuery := `
		INSERT INTO payment_batches (batch_id, organization_id, name, status, total_amount, scheduled_date, version,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	if _, err := tx.Exec(ctx, batchQuery,
		mb.BatchID,
		mb.OrganizationID,
		mb.Name,
		mb.Status,
		mb.TotalAmount,
		mb.ScheduledDate,
		mb.Version,
		mb.CreatedAt,
		mb.CreatedBy,
		mb.LastUpdatedAt,
		mb.LastUpdatedBy,
	); err != nil {
		return apperrors.NewAppError(500, "failed to insert batch "+mb.BatchID, err)
	}

	pgxBatch := &pgx.Batch{}
	detailQuery := `
		INSERT INTO payment_batch_details (detail_id, batch_id, assigned_service_id, personnel_id, amount, discount_pct, attendance,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, d := range details {
		md := mapping.ToModelPaymentBatchDetail(d)
		pgxBatch.Queue(detailQuery,
			md.DetailID,
			md.BatchID,
			md.AssignedServiceID,
			md.PersonnelID,
			md.Amount,
			md.DiscountPct,
			md.Attendance,
			md.CreatedAt,
			md.CreatedBy,
			md.LastUpdatedAt,
			md.LastUpdatedBy,
		)
	}
	rollupQuery := `
		INSERT INTO payment_batch_personnel (batch_personnel_id, batch_id, personnel_id, share_amount, collection_done,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, p := range rollups {
		mp := mapping.ToModelPaymentBatchPersonnel(p)
		pgxBatch.Queue(rollupQuery,
			mp.BatchPersonnelID,
			mp.BatchID,
			mp.PersonnelID,
			mp.ShareAmount,
			mp.CollectionDone,
			mp.CreatedAt,
			mp.CreatedBy,
			mp.LastUpdatedAt,
			mp.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, pgxBatch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert batch rows for "+mb.BatchID, err)
	}

	return r.Commit(ctx, tx)
}

const batchColumns = `batch_id, organization_id, name, status, total_amount, scheduled_date, version,
		created_at, created_by, last_updated_at, last_updated_by`

func scanBatch(row pgx.Row) (*models.PaymentBatch, error) {
	var m models.PaymentBatch
	err := row.Scan(
		&m.BatchID,
		&m.OrganizationID,
		&m.Name,
		&m.Status,
		&m.TotalAmount,
		&m.ScheduledDate,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxBatchRepository) FindBatchByID(ctx context.Context, batchID string) (*domain.PaymentBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM payment_batches WHERE batch_id = $1;`
	m, err := scanBatch(r.Pool.QueryRow(ctx, query, batchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find batch by ID %s: %w", batchID, err)
	}
	b := mapping.ToDomainPaymentBatch(*m)
	return &b, nil
}

func (r *PgxBatchRepository) ListBatchesByOrganization(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.PaymentBatch, *string, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + batchColumns + ` FROM payment_batches WHERE organization_id = $1`
	args := []any{organizationID}

	if nextToken != nil && *nextToken != "" {
		createdAt, err := pagination.DecodeDateBasedToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		args = append(args, createdAt)
		query += fmt.Sprintf(` AND created_at < $%d`, len(args))
	}

	args = append(args, limit+1)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d;`, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query batches: %w", err)
	}
	defer rows.Close()

	batches := []domain.PaymentBatch{}
	for rows.Next() {
		m, err := scanBatch(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan batch row: %w", err)
		}
		batches = append(batches, mapping.ToDomainPaymentBatch(*m))
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating batch rows: %w", rows.Err())
	}

	var newNextToken *string
	if len(batches) > limit {
		batches = batches[:limit]
		token := pagination.EncodeDateBasedToken(batches[len(batches)-1].CreatedAt)
		newNextToken = &token
	}
	return batches, newNextToken, nil
}

func (r *PgxBatchRepository) FindBatchDetails(ctx context.Context, batchID string) ([]domain.PaymentBatchDetail, error) {
	query := `
		SELECT d.detail_id, d.batch_id, d.assigned_service_id, d.personnel_id, d.amount, d.discount_pct, d.attendance,
			d.created_at, d.created_by, d.last_updated_at, d.last_updated_by,
			st.name AS service_type_name, per.first_name, per.last_name
		FROM payment_batch_details d
		JOIN assigned_services s ON s.assigned_service_id = d.assigned_service_id
		JOIN service_types st ON st.service_type_id = s.service_type_id
		JOIN personnel per ON per.personnel_id = d.personnel_id
		WHERE d.batch_id = $1
		ORDER BY per.last_name, per.first_name, d.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query batch details: %w", err)
	}
	defer rows.Close()

	result := []domain.PaymentBatchDetail{}
	for rows.Next() {
		var m models.PaymentBatchDetail
		var serviceTypeName, firstName, lastName string
		if err := rows.Scan(
			&m.DetailID,
			&m.BatchID,
			&m.AssignedServiceID,
			&m.PersonnelID,
			&m.Amount,
			&m.DiscountPct,
			&m.Attendance,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&serviceTypeName,
			&firstName,
			&lastName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan batch detail row: %w", err)
		}
		d := mapping.ToDomainPaymentBatchDetail(m)
		d.ServiceTypeName = serviceTypeName
		d.PersonnelName = domain.Personnel{FirstName: firstName, LastName: lastName}.FullName()
		result = append(result, d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating batch detail rows: %w", rows.Err())
	}
	return result, nil
}

func (r *PgxBatchRepository) FindBatchPersonnel(ctx context.Context, batchID string) ([]domain.PaymentBatchPersonnel, error) {
	query := `
		SELECT bp.batch_personnel_id, bp.batch_id, bp.personnel_id, bp.share_amount, bp.collection_done,
			bp.created_at, bp.created_by, bp.last_updated_at, bp.last_updated_by,
			per.first_name, per.last_name
		FROM payment_batch_personnel bp
		JOIN personnel per ON per.personnel_id = bp.personnel_id
		WHERE bp.batch_id = $1
		ORDER BY per.last_name, per.first_name;
	`
	rows, err := r.Pool.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query batch personnel: %w", err)
	}
	defer rows.Close()

	result := []domain.PaymentBatchPersonnel{}
	for rows.Next() {
		var m models.PaymentBatchPersonnel
		var firstName, lastName string
		if err := rows.Scan(
			&m.BatchPersonnelID,
			&m.BatchID,
			&m.PersonnelID,
			&m.ShareAmount,
			&m.CollectionDone,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&firstName,
			&lastName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan batch personnel row: %w", err)
		}
		p := mapping.ToDomainPaymentBatchPersonnel(m)
		p.PersonnelName = domain.Personnel{FirstName: firstName, LastName: lastName}.FullName()
		result = append(result, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating batch personnel rows: %w", rows.Err())
	}
	return result, nil
}

func (r *PgxBatchRepository) ListRollupsByPersonnel(ctx context.Context, organizationID, personnelID string) ([]domain.PaymentBatchPersonnel, error) {
	query := `
		SELECT bp.batch_personnel_id, bp.batch_id, bp.personnel_id, bp.share_amount, bp.collection_done,
			bp.created_at, bp.created_by, bp.last_updated_at, bp.last_updated_by,
			b.name, b.status, b.scheduled_date
		FROM payment_batch_personnel bp
		JOIN payment_batches b ON b.batch_id = bp.batch_id
		WHERE b.organization_id = $1 AND bp.personnel_id = $2 AND b.status <> 'ANULADO'
		ORDER BY b.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, personnelID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rollups for personnel %s: %w", personnelID, err)
	}
	defer rows.Close()

	result := []domain.PaymentBatchPersonnel{}
	for rows.Next() {
		var m models.PaymentBatchPersonnel
		var batchName string
		var batchStatus models.BatchStatus
		var scheduledDate *time.Time
		if err := rows.Scan(
			&m.BatchPersonnelID,
			&m.BatchID,
			&m.PersonnelID,
			&m.ShareAmount,
			&m.CollectionDone,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&batchName,
			&batchStatus,
			&scheduledDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rollup row: %w", err)
		}
		p := mapping.ToDomainPaymentBatchPersonnel(m)
		p.BatchName = batchName
		p.BatchStatus = domain.BatchStatus(batchStatus)
		p.ScheduledDate = scheduledDate
		result = append(result, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating rollup rows: %w", rows.Err())
	}
	return result, nil
}

func (r *PgxBatchRepository) UpdateCollectionDone(ctx context.Context, batchID, personnelID string, done bool, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE payment_batch_personnel
		SET collection_done = $1, last_updated_at = $2, last_updated_by = $3
		WHERE batch_id = $4 AND personnel_id = $5;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, done, updatedAt, updatedBy, batchID, personnelID)
	if err != nil {
		return fmt.Errorf("failed to update collection flag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// lockBatchForWrite locks the batch row and verifies the optimistic version
// the caller read. Returns the current status.
func lockBatchForWrite(ctx context.Context, tx pgx.Tx, batchID string, expectedVersion int64) (domain.BatchStatus, error) {
	var status models.BatchStatus
	var version int64
	err := tx.QueryRow(ctx, `SELECT status, version FROM payment_batches WHERE batch_id = $1 FOR UPDATE;`, batchID).Scan(&status, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to lock batch %s: %w", batchID, err)
	}
	if version != expectedVersion {
		return "", fmt.Errorf("batch %s changed concurrently: %w", batchID, apperrors.ErrConflict)
	}
	return domain.BatchStatus(status), nil
}

// FinalizeBatch applies the finalize partition atomically. Paid services move
// to PAGADO; reverted services leave the batch and stay PENDIENTE for a later
// one. The batch total is replaced by what was actually paid.
func (r *PgxBatchRepository) FinalizeBatch(ctx context.Context, batch domain.PaymentBatch, paidServiceIDs, revertedServiceIDs []string, paidTotal decimal.Decimal, scheduledDate *time.Time, updatedBy string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	status, err := lockBatchForWrite(ctx, tx, batch.BatchID, batch.Version)
	if err != nil {
		return err
	}
	if status != domain.BatchInPreparation {
		return fmt.Errorf("batch %s is %s, not EN_PREPARACION: %w", batch.BatchID, status, apperrors.ErrConflict)
	}

	if len(paidServiceIDs) > 0 {
		cmdTag, err := tx.Exec(ctx, `
			UPDATE assigned_services
			SET payment_state = 'PAGADO', last_updated_at = $1, last_updated_by = $2
			WHERE assigned_service_id = ANY($3) AND payment_state = 'PENDIENTE';
		`, updatedAt, updatedBy, paidServiceIDs)
		if err != nil {
			return apperrors.NewAppError(500, "failed to mark services paid for batch "+batch.BatchID, err)
		}
		if int(cmdTag.RowsAffected()) != len(paidServiceIDs) {
			return fmt.Errorf("a service to be paid is no longer pending: %w", apperrors.ErrConflict)
		}
	}

	if len(revertedServiceIDs) > 0 {
		if _, err := tx.Exec(ctx, `
			DELETE FROM payment_batch_details
			WHERE batch_id = $1 AND assigned_service_id = ANY($2);
		`, batch.BatchID, revertedServiceIDs); err != nil {
			return apperrors.NewAppError(500, "failed to release reverted services from batch "+batch.BatchID, err)
		}
	}

	// Rollups of staff whose services were reverted leave the batch too.
	if _, err := tx.Exec(ctx, `
		DELETE FROM payment_batch_personnel
		WHERE batch_id = $1 AND collection_done = FALSE;
	`, batch.BatchID); err != nil {
		return apperrors.NewAppError(500, "failed to prune rollups for batch "+batch.BatchID, err)
	}

	cmdTag, err := tx.Exec(ctx, `
		UPDATE payment_batches
		SET status = 'FINALIZADO', total_amount = $1, scheduled_date = COALESCE($2, scheduled_date),
			version = version + 1, last_updated_at = $3, last_updated_by = $4
		WHERE batch_id = $5 AND version = $6;
	`, paidTotal, scheduledDate, updatedAt, updatedBy, batch.BatchID, batch.Version)
	if err != nil {
		return apperrors.NewAppError(500, "failed to finalize batch "+batch.BatchID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("batch %s changed concurrently: %w", batch.BatchID, apperrors.ErrConflict)
	}

	return r.Commit(ctx, tx)
}

// VoidBatch cancels a batch and releases every referenced service back to
// PENDIENTE.
func (r *PgxBatchRepository) VoidBatch(ctx context.Context, batch domain.PaymentBatch, serviceIDs []string, updatedBy string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	status, err := lockBatchForWrite(ctx, tx, batch.BatchID, batch.Version)
	if err != nil {
		return err
	}
	if status == domain.BatchVoided {
		return fmt.Errorf("batch %s is already voided: %w", batch.BatchID, apperrors.ErrConflict)
	}

	if len(serviceIDs) > 0 {
		if _, err := tx.Exec(ctx, `
			UPDATE assigned_services
			SET payment_state = 'PENDIENTE', last_updated_at = $1, last_updated_by = $2
			WHERE assigned_service_id = ANY($3);
		`, updatedAt, updatedBy, serviceIDs); err != nil {
			return apperrors.NewAppError(500, "failed to release services of batch "+batch.BatchID, err)
		}
	}

	cmdTag, err := tx.Exec(ctx, `
		UPDATE payment_batches
		SET status = 'ANULADO', version = version + 1, last_updated_at = $1, last_updated_by = $2
		WHERE batch_id = $3 AND version = $4;
	`, updatedAt, updatedBy, batch.BatchID, batch.Version)
	if err != nil {
		return apperrors.NewAppError(500, "failed to void batch "+batch.BatchID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("batch %s changed concurrently: %w", batch.BatchID, apperrors.ErrConflict)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxBatchRepository) UpdateBatchStatus(ctx context.Context, batchID string, status domain.BatchStatus, version int64, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE payment_batches
		SET status = $1, version = version + 1, last_updated_at = $2, last_updated_by = $3
		WHERE batch_id = $4 AND version = $5;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, status, updatedAt, updatedBy, batchID, version)
	if err != nil {
		return fmt.Errorf("failed to update batch status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("batch %s changed concurrently: %w", batchID, apperrors.ErrConflict)
	}
	return nil
}

func (r *PgxBatchRepository) UpdateScheduledDate(ctx context.Context, batchID string, scheduledDate time.Time, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE payment_batches
		SET scheduled_date = $1, last_updated_at = $2, last_updated_by = $3
		WHERE batch_id = $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, scheduledDate, updatedAt, updatedBy, batchID)
	if err != nil {
		return fmt.Errorf("failed to update batch scheduled date: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
