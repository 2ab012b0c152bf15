package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventstaff/esa_backend/internal/apperrors"
	"github.com/eventstaff/esa_backend/internal/core/domain"
	portsrepo "github.com/eventstaff/esa_backend/internal/core/ports/repositories"
	"github.com/eventstaff/esa_backend/internal/models"
	"github.com/eventstaff/esa_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxContractTypeRepository struct {
	db *pgxpool.Pool
}

func newPgxContractTypeRepository(db *pgxpool.Pool) portsrepo.ContractTypeRepositoryFacade {
	return &PgxContractTypeRepository{db: db}
}

var _ portsrepo.ContractTypeRepositoryFacade = (*PgxContractTypeRepository)(nil)

func (r *PgxContractTypeRepository) SaveContractType(ctx context.Context, contractType domain.ContractType) error {
	m := mapping.ToModelContractType(contractType)
	query := `
		INSERT INTO contract_types (contract_type_id, organization_id, name, base_income, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.ContractTypeID,
		m.OrganizationID,
		m.Name,
		m.BaseIncome,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save contract type: %w", err)
	}
	return nil
}

func (r *PgxContractTypeRepository) FindContractTypeByID(ctx context.Context, contractTypeID string) (*domain.ContractType, error) {
	query := `
		SELECT contract_type_id, organization_id, name, base_income, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM contract_types
		WHERE contract_type_id = $1;
	`
	var m models.ContractType
	err := r.db.QueryRow(ctx, query, contractTypeID).Scan(
		&m.ContractTypeID,
		&m.OrganizationID,
		&m.Name,
		&m.BaseIncome,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contract type by ID %s: %w", contractTypeID, err)
	}
	ct := mapping.ToDomainContractType(m)
	return &ct, nil
}

func (r *PgxContractTypeRepository) ListContractTypesByOrganization(ctx context.Context, organizationID string, includeInactive bool) ([]domain.ContractType, error) {
	query := `
		SELECT contract_type_id, organization_id, name, base_income, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM contract_types
		WHERE organization_id = $1`
	if !includeInactive {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contract types: %w", err)
	}
	defer rows.Close()

	result := []domain.ContractType{}
	for rows.Next() {
		var m models.ContractType
		if err := rows.Scan(
			&m.ContractTypeID,
			&m.OrganizationID,
			&m.Name,
			&m.BaseIncome,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contract type row: %w", err)
		}
		result = append(result, mapping.ToDomainContractType(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating contract type rows: %w", rows.Err())
	}
	return result, nil
}

func (r *PgxContractTypeRepository) UpdateContractType(ctx context.Context, contractType domain.ContractType) error {
	m := mapping.ToModelContractType(contractType)
	query := `
		UPDATE contract_types
		SET name = $1, base_income = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE contract_type_id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.BaseIncome,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ContractTypeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update contract type %s: %w", m.ContractTypeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxServiceTypeRepository struct {
	db *pgxpool.Pool
}

func newPgxServiceTypeRepository(db *pgxpool.Pool) portsrepo.ServiceTypeRepositoryFacade {
	return &PgxServiceTypeRepository{db: db}
}

var _ portsrepo.ServiceTypeRepositoryFacade = (*PgxServiceTypeRepository)(nil)

func (r *PgxServiceTypeRepository) SaveServiceType(ctx context.Context, serviceType domain.ServiceType) error {
	m := mapping.ToModelServiceType(serviceType)
	query := `
		INSERT INTO service_types (service_type_id, organization_id, name, default_rate, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.ServiceTypeID,
		m.OrganizationID,
		m.Name,
		m.DefaultRate,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save service type: %w", err)
	}
	return nil
}

func (r *PgxServiceTypeRepository) FindServiceTypeByID(ctx context.Context, serviceTypeID string) (*domain.ServiceType, error) {
	query := `
		SELECT service_type_id, organization_id, name, default_rate, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM service_types
		WHERE service_type_id = $1;
	`
	var m models.ServiceType
	err := r.db.QueryRow(ctx, query, serviceTypeID).Scan(
		&m.ServiceTypeID,
		&m.OrganizationID,
		&m.Name,
		&m.DefaultRate,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service type by ID %s: %w", serviceTypeID, err)
	}
	st := mapping.ToDomainServiceType(m)
	return &st, nil
}

func (r *PgxServiceTypeRepository) ListServiceTypesByOrganization(ctx context.Context, organizationID string, includeInactive bool) ([]domain.ServiceType, error) {
	query := `
		SELECT service_type_id, organization_id, name, default_rate, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM service_types
		WHERE organization_id = $1`
	if !includeInactive {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query service types: %w", err)
	}
	defer rows.Close()

	result := []domain.ServiceType{}
	for rows.Next() {
		var m models.ServiceType
		if err := rows.Scan(
			&m.ServiceTypeID,
			&m.OrganizationID,
			&m.Name,
			&m.DefaultRate,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan service type row: %w", err)
		}
		result = append(result, mapping.ToDomainServiceType(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating service type rows: %w", rows.Err())
	}
	return result, nil
}

func (r *PgxServiceTypeRepository) UpdateServiceType(ctx context.Context, serviceType domain.ServiceType) error {
	m := mapping.ToModelServiceType(serviceType)
	query := `
		UPDATE service_types
		SET name = $1, default_rate = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE service_type_id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.DefaultRate,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ServiceTypeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update service type %s: %w", m.ServiceTypeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
