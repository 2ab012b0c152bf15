package services

import (
	"context"
	"time"

	"github.com/eventstaff/esa_backend/internal/dto"
)

// ReportingSvcFacade serves the admin reporting views. All three reports are
// computed from live data, never cached.
type ReportingSvcFacade interface {
	// GetMonthlyBalance returns per-month income, payroll cost and margin
	// for the given year.
	GetMonthlyBalance(ctx context.Context, requesterUserID string, organizationID string, year int) (*dto.MonthlyBalanceResponse, error)

	// GetDailyControl returns the contracts of one day with their staffing
	// and attendance summary.
	GetDailyControl(ctx context.Context, requesterUserID string, organizationID string, day time.Time) (*dto.DailyControlResponse, error)

	// GetContractProfitability returns per-contract income versus payroll
	// cost over a date range.
	GetContractProfitability(ctx context.Context, requesterUserID string, organizationID string, from, to time.Time) (*dto.ProfitabilityResponse, error)
}
