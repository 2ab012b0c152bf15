package repositories

import (
	"context"
	"time"

	"github.com/eventstaff/esa_backend/internal/core/domain"
)

// ReportingRepository defines the read-only aggregation queries behind the
// reports. These never write.
type ReportingRepository interface {
	// MonthlyBalance aggregates per-month income and payroll outlay.
	MonthlyBalance(ctx context.Context, organizationID string, from, to time.Time) ([]domain.MonthlyBalanceRow, error)

	// DailyControl lists the contracts of one day with staffing counts.
	DailyControl(ctx context.Context, organizationID string, day time.Time) ([]domain.DailyControlRow, error)

	// ContractProfitability computes per-contract margin over a date range.
	ContractProfitability(ctx context.Context, organizationID string, from, to time.Time) ([]domain.ContractProfitabilityRow, error)
}
