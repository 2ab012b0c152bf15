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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxContractRepository struct {
	BaseRepository
}

func newPgxContractRepository(pool *pgxpool.Pool) portsrepo.ContractRepositoryFacade {
	return &PgxContractRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContractRepositoryFacade = (*PgxContractRepository)(nil)

func (r *PgxContractRepository) SaveContract(ctx context.Context, contract domain.Contract) error {
	m := mapping.ToModelContract(contract)
	query := `
		INSERT INTO contracts (contract_id, organization_id, contractor_id, contract_type_id, event_date, venue,
			status, staffing_status, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ContractID,
		m.OrganizationID,
		m.ContractorID,
		m.ContractTypeID,
		m.EventDate,
		m.Venue,
		m.Status,
		m.StaffingStatus,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("contractor or contract type does not exist: %w", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to save contract: %w", err)
	}
	return nil
}

const contractSelect = `
	SELECT c.contract_id, c.organization_id, c.contractor_id, c.contract_type_id, c.event_date, c.venue,
		c.status, c.staffing_status, c.notes, c.created_at, c.created_by, c.last_updated_at, c.last_updated_by,
		ctr.name AS contractor_name, ct.name AS contract_type_name
	FROM contracts c
	JOIN contractors ctr ON ctr.contractor_id = c.contractor_id
	JOIN contract_types ct ON ct.contract_type_id = c.contract_type_id`

func scanContract(row pgx.Row) (*domain.Contract, error) {
	var m models.Contract
	var contractorName, contractTypeName string
	err := row.Scan(
		&m.ContractID,
		&m.OrganizationID,
		&m.ContractorID,
		&m.ContractTypeID,
		&m.EventDate,
		&m.Venue,
		&m.Status,
		&m.StaffingStatus,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&contractorName,
		&contractTypeName,
	)
	if err != nil {
		return nil, err
	}
	c := mapping.ToDomainContract(m)
	c.ContractorName = contractorName
	c.ContractTypeName = contractTypeName
	return &c, nil
}

func (r *PgxContractRepository) FindContractByID(ctx context.Context, contractID string) (*domain.Contract, error) {
	query := contractSelect + ` WHERE c.contract_id = $1;`
	c, err := scanContract(r.Pool.QueryRow(ctx, query, contractID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contract by ID %s: %w", contractID, err)
	}
	return c, nil
}

// ListContractsByOrganization pages through contracts by (event_date,
// created_at) keyset, newest events first.
func (r *PgxContractRepository) ListContractsByOrganization(ctx context.Context, organizationID string, status *domain.ContractStatus, limit int, nextToken *string) ([]domain.Contract, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := contractSelect + ` WHERE c.organization_id = $1`
	args := []any{organizationID}

	if status != nil {
		args = append(args, *status)
		query += fmt.Sprintf(` AND c.status = $%d`, len(args))
	}

	if nextToken != nil && *nextToken != "" {
		eventDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		args = append(args, eventDate, createdAt)
		query += fmt.Sprintf(` AND (c.event_date, c.created_at) < ($%d, $%d)`, len(args)-1, len(args))
	}

	args = append(args, limit+1)
	query += fmt.Sprintf(` ORDER BY c.event_date DESC, c.created_at DESC LIMIT $%d;`, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query contracts: %w", err)
	}
	defer rows.Close()

	contracts := []domain.Contract{}
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan contract row: %w", err)
		}
		contracts = append(contracts, *c)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating contract rows: %w", rows.Err())
	}

	var newNextToken *string
	if len(contracts) > limit {
		contracts = contracts[:limit]
		last := contracts[len(contracts)-1]
		token := pagination.EncodeToken(last.EventDate, last.CreatedAt)
		newNextToken = &token
	}
	return contracts, newNextToken, nil
}

func (r *PgxContractRepository) UpdateContract(ctx context.Context, contract domain.Contract) error {
	m := mapping.ToModelContract(contract)
	query := `
		UPDATE contracts
		SET contractor_id = $1, contract_type_id = $2, event_date = $3, venue = $4, staffing_status = $5, notes = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE contract_id = $9;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ContractorID,
		m.ContractTypeID,
		m.EventDate,
		m.Venue,
		m.StaffingStatus,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ContractID,
	)
	if err != nil {
		return fmt.Errorf("failed to update contract %s: %w", m.ContractID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateContractStatus moves the contract between lifecycle states. The
// status guard keeps the transition one-way.
func (r *PgxContractRepository) UpdateContractStatus(ctx context.Context, contractID string, status domain.ContractStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE contracts
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE contract_id = $4 AND status <> $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, status, updatedAt, updatedBy, contractID)
	if err != nil {
		return fmt.Errorf("failed to update contract status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

func (r *PgxContractRepository) FindEventByContractID(ctx context.Context, contractID string) (*domain.ContractEvent, error) {
	query := `
		SELECT contract_event_id, contract_id, started_at, ended_at, notes,
			created_at, created_by, last_updated_at, last_updated_by
		FROM contract_events
		WHERE contract_id = $1;
	`
	var m models.ContractEvent
	err := r.Pool.QueryRow(ctx, query, contractID).Scan(
		&m.ContractEventID,
		&m.ContractID,
		&m.StartedAt,
		&m.EndedAt,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event for contract %s: %w", contractID, err)
	}
	e := mapping.ToDomainContractEvent(m)
	return &e, nil
}

func (r *PgxContractRepository) SaveContractEvent(ctx context.Context, event domain.ContractEvent) error {
	m := mapping.ToModelContractEvent(event)
	query := `
		INSERT INTO contract_events (contract_event_id, contract_id, started_at, ended_at, notes,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (contract_id) DO UPDATE SET
			started_at = EXCLUDED.started_at,
			ended_at = EXCLUDED.ended_at,
			notes = EXCLUDED.notes,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ContractEventID,
		m.ContractID,
		m.StartedAt,
		m.EndedAt,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save contract event: %w", err)
	}
	return nil
}
