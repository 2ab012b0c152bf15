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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPersonnelRepository struct {
	db *pgxpool.Pool
}

func newPgxPersonnelRepository(db *pgxpool.Pool) portsrepo.PersonnelRepositoryFacade {
	return &PgxPersonnelRepository{db: db}
}

var _ portsrepo.PersonnelRepositoryFacade = (*PgxPersonnelRepository)(nil)

const personnelColumns = `personnel_id, organization_id, user_id, role, first_name, last_name, email, phone, document_id, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

func scanPersonnel(row pgx.Row) (*models.Personnel, error) {
	var m models.Personnel
	err := row.Scan(
		&m.PersonnelID,
		&m.OrganizationID,
		&m.UserID,
		&m.Role,
		&m.FirstName,
		&m.LastName,
		&m.Email,
		&m.Phone,
		&m.DocumentID,
		&m.IsActive,
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

func (r *PgxPersonnelRepository) SavePersonnel(ctx context.Context, personnel domain.Personnel) error {
	m := mapping.ToModelPersonnel(personnel)
	query := `
		INSERT INTO personnel (personnel_id, organization_id, user_id, role, first_name, last_name, email, phone, document_id, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db.Exec(ctx, query,
		m.PersonnelID,
		m.OrganizationID,
		m.UserID,
		m.Role,
		m.FirstName,
		m.LastName,
		m.Email,
		m.Phone,
		m.DocumentID,
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
		return fmt.Errorf("failed to save personnel: %w", err)
	}
	return nil
}

func (r *PgxPersonnelRepository) FindPersonnelByID(ctx context.Context, personnelID string) (*domain.Personnel, error) {
	query := `SELECT ` + personnelColumns + ` FROM personnel WHERE personnel_id = $1;`
	m, err := scanPersonnel(r.db.QueryRow(ctx, query, personnelID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find personnel by ID %s: %w", personnelID, err)
	}
	p := mapping.ToDomainPersonnel(*m)
	return &p, nil
}

func (r *PgxPersonnelRepository) FindPersonnelByUserID(ctx context.Context, organizationID, userID string) (*domain.Personnel, error) {
	query := `SELECT ` + personnelColumns + ` FROM personnel WHERE organization_id = $1 AND user_id = $2 AND is_active = TRUE;`
	m, err := scanPersonnel(r.db.QueryRow(ctx, query, organizationID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find personnel for user %s: %w", userID, err)
	}
	p := mapping.ToDomainPersonnel(*m)
	return &p, nil
}

func (r *PgxPersonnelRepository) FindPersonnelByEmail(ctx context.Context, organizationID, email string) (*domain.Personnel, error) {
	query := `SELECT ` + personnelColumns + ` FROM personnel WHERE organization_id = $1 AND lower(email) = lower($2);`
	m, err := scanPersonnel(r.db.QueryRow(ctx, query, organizationID, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find personnel by email: %w", err)
	}
	p := mapping.ToDomainPersonnel(*m)
	return &p, nil
}

func (r *PgxPersonnelRepository) ListPersonnelByOrganization(ctx context.Context, organizationID string, includeInactive bool) ([]domain.Personnel, error) {
	query := `SELECT ` + personnelColumns + ` FROM personnel WHERE organization_id = $1`
	if !includeInactive {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY last_name, first_name;`

	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query personnel: %w", err)
	}
	defer rows.Close()

	result := []domain.Personnel{}
	for rows.Next() {
		m, err := scanPersonnel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan personnel row: %w", err)
		}
		result = append(result, mapping.ToDomainPersonnel(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating personnel rows: %w", rows.Err())
	}
	return result, nil
}

func (r *PgxPersonnelRepository) UpdatePersonnel(ctx context.Context, personnel domain.Personnel) error {
	m := mapping.ToModelPersonnel(personnel)
	query := `
		UPDATE personnel
		SET role = $1, first_name = $2, last_name = $3, email = $4, phone = $5, document_id = $6, is_active = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE personnel_id = $10;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Role,
		m.FirstName,
		m.LastName,
		m.Email,
		m.Phone,
		m.DocumentID,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.PersonnelID,
	)
	if err != nil {
		return fmt.Errorf("failed to update personnel %s: %w", m.PersonnelID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// LinkUser sets the user link on an unlinked personnel row. The user_id IS
// NULL guard makes relinking fail with ErrConflict.
func (r *PgxPersonnelRepository) LinkUser(ctx context.Context, personnelID, userID, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE personnel
		SET user_id = $1, last_updated_at = $2, last_updated_by = $3
		WHERE personnel_id = $4 AND user_id IS NULL;
	`
	cmdTag, err := r.db.Exec(ctx, query, userID, updatedAt, updatedBy, personnelID)
	if err != nil {
		return fmt.Errorf("failed to link user to personnel %s: %w", personnelID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the row does not exist or it is already linked.
		var exists bool
		if checkErr := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM personnel WHERE personnel_id = $1)`, personnelID).Scan(&exists); checkErr == nil && !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrConflict
	}
	return nil
}

type PgxContractorRepository struct {
	db *pgxpool.Pool
}

func newPgxContractorRepository(db *pgxpool.Pool) portsrepo.ContractorRepositoryFacade {
	return &PgxContractorRepository{db: db}
}

var _ portsrepo.ContractorRepositoryFacade = (*PgxContractorRepository)(nil)

const contractorColumns = `contractor_id, organization_id, name, tax_id, contact_name, contact_phone, email, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

func scanContractor(row pgx.Row) (*models.Contractor, error) {
	var m models.Contractor
	err := row.Scan(
		&m.ContractorID,
		&m.OrganizationID,
		&m.Name,
		&m.TaxID,
		&m.ContactName,
		&m.ContactPhone,
		&m.Email,
		&m.IsActive,
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

func (r *PgxContractorRepository) SaveContractor(ctx context.Context, contractor domain.Contractor) error {
	m := mapping.ToModelContractor(contractor)
	query := `
		INSERT INTO contractors (contractor_id, organization_id, name, tax_id, contact_name, contact_phone, email, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db.Exec(ctx, query,
		m.ContractorID,
		m.OrganizationID,
		m.Name,
		m.TaxID,
		m.ContactName,
		m.ContactPhone,
		m.Email,
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
		return fmt.Errorf("failed to save contractor: %w", err)
	}
	return nil
}

func (r *PgxContractorRepository) FindContractorByID(ctx context.Context, contractorID string) (*domain.Contractor, error) {
	query := `SELECT ` + contractorColumns + ` FROM contractors WHERE contractor_id = $1;`
	m, err := scanContractor(r.db.QueryRow(ctx, query, contractorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contractor by ID %s: %w", contractorID, err)
	}
	c := mapping.ToDomainContractor(*m)
	return &c, nil
}

func (r *PgxContractorRepository) ListContractorsByOrganization(ctx context.Context, organizationID string, includeInactive bool) ([]domain.Contractor, error) {
	query := `SELECT ` + contractorColumns + ` FROM contractors WHERE organization_id = $1`
	if !includeInactive {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contractors: %w", err)
	}
	defer rows.Close()

	result := []domain.Contractor{}
	for rows.Next() {
		m, err := scanContractor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contractor row: %w", err)
		}
		result = append(result, mapping.ToDomainContractor(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating contractor rows: %w", rows.Err())
	}
	return result, nil
}

func (r *PgxContractorRepository) UpdateContractor(ctx context.Context, contractor domain.Contractor) error {
	m := mapping.ToModelContractor(contractor)
	query := `
		UPDATE contractors
		SET name = $1, tax_id = $2, contact_name = $3, contact_phone = $4, email = $5, is_active = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE contractor_id = $9;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.TaxID,
		m.ContactName,
		m.ContactPhone,
		m.Email,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ContractorID,
	)
	if err != nil {
		return fmt.Errorf("failed to update contractor %s: %w", m.ContractorID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
