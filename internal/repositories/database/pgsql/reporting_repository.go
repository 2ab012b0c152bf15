package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/eventstaff/esa_backend/internal/core/domain"
	portsrepo "github.com/eventstaff/esa_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	db *pgxpool.Pool
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{db: db}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// MonthlyBalance sets income from the base income of completed contracts and
// payroll outlay from settled batch totals, month by month. Voided and
// still-in-preparation batches carry no outlay.
func (r *PgxReportingRepository) MonthlyBalance(ctx context.Context, organizationID string, from, to time.Time) ([]domain.MonthlyBalanceRow, error) {
	query := `
		WITH income AS (
			SELECT date_trunc('month', c.event_date) AS month, SUM(ct.base_income) AS income
			FROM contracts c
			JOIN contract_types ct ON ct.contract_type_id = c.contract_type_id
			WHERE c.organization_id = $1 AND c.status = 'COMPLETADO'
			  AND c.event_date >= $2 AND c.event_date < $3
			GROUP BY 1
		), outlay AS (
			SELECT date_trunc('month', COALESCE(b.scheduled_date, b.created_at)) AS month, SUM(b.total_amount) AS outlay
			FROM payment_batches b
			WHERE b.organization_id = $1
			  AND b.status IN ('FINALIZADO', 'PENDIENTE_APROBACION', 'PAGADO', 'RECLAMADO')
			  AND COALESCE(b.scheduled_date, b.created_at) >= $2
			  AND COALESCE(b.scheduled_date, b.created_at) < $3
			GROUP BY 1
		)
		SELECT COALESCE(i.month, o.month) AS month,
			COALESCE(i.income, 0) AS income,
			COALESCE(o.outlay, 0) AS outlay
		FROM income i
		FULL OUTER JOIN outlay o ON o.month = i.month
		ORDER BY 1;
	`
	rows, err := r.db.Query(ctx, query, organizationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly balance: %w", err)
	}
	defer rows.Close()

	result := []domain.MonthlyBalanceRow{}
	for rows.Next() {
		var row domain.MonthlyBalanceRow
		if err := rows.Scan(&row.Month, &row.Income, &row.PayrollOutlay); err != nil {
			return nil, fmt.Errorf("failed to scan monthly balance row: %w", err)
		}
		result = append(result, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating monthly balance rows: %w", rows.Err())
	}
	return result, nil
}

// DailyControl lists the contracts of one calendar day with their attendance
// counters. Contracts without an event record yet count zero staff.
func (r *PgxReportingRepository) DailyControl(ctx context.Context, organizationID string, day time.Time) ([]domain.DailyControlRow, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
		SELECT c.contract_id, ctr.name AS contractor_name, c.venue, c.event_date,
			COUNT(p.participation_id) AS assigned_count,
			COUNT(p.participation_id) FILTER (WHERE p.attendance IN ('PUNTUAL', 'TARDE')) AS present_count,
			COUNT(p.participation_id) FILTER (WHERE p.attendance = 'AUSENTE') AS absent_count
		FROM contracts c
		JOIN contractors ctr ON ctr.contractor_id = c.contractor_id
		LEFT JOIN contract_events ce ON ce.contract_id = c.contract_id
		LEFT JOIN participations p ON p.contract_event_id = ce.contract_event_id
		WHERE c.organization_id = $1 AND c.event_date >= $2 AND c.event_date < $3
		GROUP BY c.contract_id, ctr.name, c.venue, c.event_date
		ORDER BY c.event_date;
	`
	rows, err := r.db.Query(ctx, query, organizationID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily control: %w", err)
	}
	defer rows.Close()

	result := []domain.DailyControlRow{}
	for rows.Next() {
		var row domain.DailyControlRow
		if err := rows.Scan(
			&row.ContractID,
			&row.ContractorName,
			&row.Venue,
			&row.EventDate,
			&row.AssignedCount,
			&row.PresentCount,
			&row.AbsentCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan daily control row: %w", err)
		}
		result = append(result, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating daily control rows: %w", rows.Err())
	}
	return result, nil
}

// ContractProfitability compares base income against the pactado sum of every
// assigned service on the contract, completed contracts only.
func (r *PgxReportingRepository) ContractProfitability(ctx context.Context, organizationID string, from, to time.Time) ([]domain.ContractProfitabilityRow, error) {
	query := `
		SELECT c.contract_id, ctr.name AS contractor_name, ct.name AS contract_type_name, c.event_date,
			ct.base_income AS income,
			COALESCE(SUM(s.agreed_amount), 0) AS staff_cost
		FROM contracts c
		JOIN contractors ctr ON ctr.contractor_id = c.contractor_id
		JOIN contract_types ct ON ct.contract_type_id = c.contract_type_id
		LEFT JOIN contract_events ce ON ce.contract_id = c.contract_id
		LEFT JOIN participations p ON p.contract_event_id = ce.contract_event_id
		LEFT JOIN assigned_services s ON s.participation_id = p.participation_id
		WHERE c.organization_id = $1 AND c.status = 'COMPLETADO'
		  AND c.event_date >= $2 AND c.event_date < $3
		GROUP BY c.contract_id, ctr.name, ct.name, c.event_date, ct.base_income
		ORDER BY c.event_date;
	`
	rows, err := r.db.Query(ctx, query, organizationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query contract profitability: %w", err)
	}
	defer rows.Close()

	result := []domain.ContractProfitabilityRow{}
	for rows.Next() {
		var row domain.ContractProfitabilityRow
		if err := rows.Scan(
			&row.ContractID,
			&row.ContractorName,
			&row.ContractTypeName,
			&row.EventDate,
			&row.Income,
			&row.StaffCost,
		); err != nil {
			return nil, fmt.Errorf("failed to scan profitability row: %w", err)
		}
		row.Margin = row.Income.Sub(row.StaffCost)
		result = append(result, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating profitability rows: %w", rows.Err())
	}
	return result, nil
}
