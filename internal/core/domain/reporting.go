package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyBalanceRow is one month of income (contract-type base income of
// completed contracts) against payroll outlay (finalized batch totals).
type MonthlyBalanceRow struct {
	Month         time.Time
	Income        decimal.Decimal
	PayrollOutlay decimal.Decimal
}

// DailyControlRow lists one contract on a given day with its staffing counts.
type DailyControlRow struct {
	ContractID     string
	ContractorName string
	Venue          string
	EventDate      time.Time
	AssignedCount  int
	PresentCount   int
	AbsentCount    int
}

// ContractProfitabilityRow is the margin of one completed contract:
// contract-type base income minus the pactado sum of its assigned services.
type ContractProfitabilityRow struct {
	ContractID       string
	ContractorName   string
	ContractTypeName string
	EventDate        time.Time
	Income           decimal.Decimal
	StaffCost        decimal.Decimal
	Margin           decimal.Decimal
}
