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
	"github.com/shopspring/decimal"
)

type PgxParticipationRepository struct {
	db *pgxpool.Pool
}

func newPgxParticipationRepository(db *pgxpool.Pool) portsrepo.ParticipationRepositoryFacade {
	return &PgxParticipationRepository{db: db}
}

var _ portsrepo.ParticipationRepositoryFacade = (*PgxParticipationRepository)(nil)

func (r *PgxParticipationRepository) SaveParticipation(ctx context.Context, participation domain.Participation) error {
	m := mapping.ToModelParticipation(participation)
	query := `
		INSERT INTO participations (participation_id, contract_event_id, personnel_id, attendance, arrival_time,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.ParticipationID,
		m.ContractEventID,
		m.PersonnelID,
		m.Attendance,
		m.ArrivalTime,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// unique (contract_event_id, personnel_id)
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save participation: %w", err)
	}
	return nil
}

func (r *PgxParticipationRepository) FindParticipationByID(ctx context.Context, participationID string) (*domain.Participation, error) {
	query := `
		SELECT p.participation_id, p.contract_event_id, p.personnel_id, p.attendance, p.arrival_time,
			p.created_at, p.created_by, p.last_updated_at, p.last_updated_by,
			per.first_name, per.last_name
		FROM participations p
		JOIN personnel per ON per.personnel_id = p.personnel_id
		WHERE p.participation_id = $1;
	`
	var m models.Participation
	var firstName, lastName string
	err := r.db.QueryRow(ctx, query, participationID).Scan(
		&m.ParticipationID,
		&m.ContractEventID,
		&m.PersonnelID,
		&m.Attendance,
		&m.ArrivalTime,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&firstName,
		&lastName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find participation by ID %s: %w", participationID, err)
	}
	p := mapping.ToDomainParticipation(m)
	p.PersonnelName = domain.Personnel{FirstName: firstName, LastName: lastName}.FullName()
	return &p, nil
}

func (r *PgxParticipationRepository) ListParticipationsByEvent(ctx context.Context, contractEventID string) ([]domain.Participation, error) {
	query := `
		SELECT p.participation_id, p.contract_event_id, p.personnel_id, p.attendance, p.arrival_time,
			p.created_at, p.created_by, p.last_updated_at, p.last_updated_by,
			per.first_name, per.last_name
		FROM participations p
		JOIN personnel per ON per.personnel_id = p.personnel_id
		WHERE p.contract_event_id = $1
		ORDER BY per.last_name, per.first_name;
	`
	rows, err := r.db.Query(ctx, query, contractEventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query participations: %w", err)
	}
	defer rows.Close()

	result := []domain.Participation{}
	for rows.Next() {
		var m models.Participation
		var firstName, lastName string
		if err := rows.Scan(
			&m.ParticipationID,
			&m.ContractEventID,
			&m.PersonnelID,
			&m.Attendance,
			&m.ArrivalTime,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&firstName,
			&lastName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan participation row: %w", err)
		}
		p := mapping.ToDomainParticipation(m)
		p.PersonnelName = domain.Personnel{FirstName: firstName, LastName: lastName}.FullName()
		result = append(result, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating participation rows: %w", rows.Err())
	}
	return result, nil
}

// FindContractByParticipationID resolves the owning contract through the
// contract event.
func (r *PgxParticipationRepository) FindContractByParticipationID(ctx context.Context, participationID string) (*domain.Contract, error) {
	query := contractSelect + `
	JOIN contract_events ce ON ce.contract_id = c.contract_id
	JOIN participations p ON p.contract_event_id = ce.contract_event_id
	WHERE p.participation_id = $1;`
	c, err := scanContract(r.db.QueryRow(ctx, query, participationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve contract for participation %s: %w", participationID, err)
	}
	return c, nil
}

func (r *PgxParticipationRepository) UpdateAttendance(ctx context.Context, participationID string, attendance domain.AttendanceState, arrivalTime *time.Time, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE participations
		SET attendance = $1, arrival_time = $2, last_updated_at = $3, last_updated_by = $4
		WHERE participation_id = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query, attendance, arrivalTime, updatedAt, updatedBy, participationID)
	if err != nil {
		return fmt.Errorf("failed to update attendance for participation %s: %w", participationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteParticipation removes the participation together with its service
// lines. Any paid or batched line blocks the removal.
func (r *PgxParticipationRepository) DeleteParticipation(ctx context.Context, participationID string) error {
	var blocked bool
	blockQuery := `
		SELECT EXISTS (
			SELECT 1
			FROM assigned_services s
			WHERE s.participation_id = $1
			  AND (s.payment_state = 'PAGADO' OR EXISTS (
				SELECT 1
				FROM payment_batch_details d
				JOIN payment_batches b ON b.batch_id = d.batch_id
				WHERE d.assigned_service_id = s.assigned_service_id AND b.status <> 'ANULADO'
			  ))
		);
	`
	if err := r.db.QueryRow(ctx, blockQuery, participationID).Scan(&blocked); err != nil {
		return fmt.Errorf("failed to check participation %s for settled services: %w", participationID, err)
	}
	if blocked {
		return fmt.Errorf("participation %s has paid or batched services: %w", participationID, apperrors.ErrConflict)
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM assigned_services WHERE participation_id = $1;`, participationID); err != nil {
		return fmt.Errorf("failed to delete services of participation %s: %w", participationID, err)
	}
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM participations WHERE participation_id = $1;`, participationID)
	if err != nil {
		return fmt.Errorf("failed to delete participation %s: %w", participationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxParticipationRepository) SaveAssignedService(ctx context.Context, service domain.AssignedService) error {
	m := mapping.ToModelAssignedService(service)
	query := `
		INSERT INTO assigned_services (assigned_service_id, participation_id, service_type_id, agreed_amount, payment_state,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.AssignedServiceID,
		m.ParticipationID,
		m.ServiceTypeID,
		m.AgreedAmount,
		m.PaymentState,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("participation or service type does not exist: %w", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to save assigned service: %w", err)
	}
	return nil
}

func (r *PgxParticipationRepository) FindAssignedServiceByID(ctx context.Context, assignedServiceID string) (*domain.AssignedService, error) {
	query := `
		SELECT s.assigned_service_id, s.participation_id, s.service_type_id, s.agreed_amount, s.payment_state,
			s.created_at, s.created_by, s.last_updated_at, s.last_updated_by,
			st.name AS service_type_name, p.personnel_id, p.attendance
		FROM assigned_services s
		JOIN service_types st ON st.service_type_id = s.service_type_id
		JOIN participations p ON p.participation_id = s.participation_id
		WHERE s.assigned_service_id = $1;
	`
	var m models.AssignedService
	var serviceTypeName, personnelID string
	var attendance models.AttendanceState
	err := r.db.QueryRow(ctx, query, assignedServiceID).Scan(
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
		&attendance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find assigned service by ID %s: %w", assignedServiceID, err)
	}
	s := mapping.ToDomainAssignedService(m)
	s.ServiceTypeName = serviceTypeName
	s.PersonnelID = personnelID
	s.Attendance = domain.AttendanceState(attendance)
	return &s, nil
}

func (r *PgxParticipationRepository) ListAssignedServicesByParticipation(ctx context.Context, participationID string) ([]domain.AssignedService, error) {
	query := `
		SELECT s.assigned_service_id, s.participation_id, s.service_type_id, s.agreed_amount, s.payment_state,
			s.created_at, s.created_by, s.last_updated_at, s.last_updated_by,
			st.name AS service_type_name
		FROM assigned_services s
		JOIN service_types st ON st.service_type_id = s.service_type_id
		WHERE s.participation_id = $1
		ORDER BY s.created_at;
	`
	rows, err := r.db.Query(ctx, query, participationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assigned services: %w", err)
	}
	defer rows.Close()

	result := []domain.AssignedService{}
	for rows.Next() {
		var m models.AssignedService
		var serviceTypeName string
		if err := rows.Scan(
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
		); err != nil {
			return nil, fmt.Errorf("failed to scan assigned service row: %w", err)
		}
		s := mapping.ToDomainAssignedService(m)
		s.ServiceTypeName = serviceTypeName
		result = append(result, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating assigned service rows: %w", rows.Err())
	}
	return result, nil
}

// UpdateAssignedServiceAmount changes the pactado amount of a pending line.
// The payment_state guard keeps paid history immutable.
func (r *PgxParticipationRepository) UpdateAssignedServiceAmount(ctx context.Context, assignedServiceID string, amount decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE assigned_services
		SET agreed_amount = $1, last_updated_at = $2, last_updated_by = $3
		WHERE assigned_service_id = $4 AND payment_state = 'PENDIENTE';
	`
	cmdTag, err := r.db.Exec(ctx, query, amount, updatedAt, updatedBy, assignedServiceID)
	if err != nil {
		return fmt.Errorf("failed to update assigned service amount: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if checkErr := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM assigned_services WHERE assigned_service_id = $1)`, assignedServiceID).Scan(&exists); checkErr == nil && !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrConflict
	}
	return nil
}

func (r *PgxParticipationRepository) DeleteAssignedService(ctx context.Context, assignedServiceID string) error {
	query := `DELETE FROM assigned_services WHERE assigned_service_id = $1 AND payment_state = 'PENDIENTE';`
	cmdTag, err := r.db.Exec(ctx, query, assignedServiceID)
	if err != nil {
		return fmt.Errorf("failed to delete assigned service %s: %w", assignedServiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if checkErr := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM assigned_services WHERE assigned_service_id = $1)`, assignedServiceID).Scan(&exists); checkErr == nil && !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrConflict
	}
	return nil
}
