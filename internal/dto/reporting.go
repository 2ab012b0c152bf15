package dto

import (
	"github.com/eventstaff/esa_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyBalanceRowResponse represents one month in the balance report.
type MonthlyBalanceRowResponse struct {
	Month         string          `json:"month"` // YYYY-MM
	Income        decimal.Decimal `json:"income"`
	PayrollOutlay decimal.Decimal `json:"payrollOutlay"`
	Net           decimal.Decimal `json:"net"`
}

// MonthlyBalanceResponse represents the monthly balance report.
type MonthlyBalanceResponse struct {
	FromDate string                      `json:"fromDate"`
	ToDate   string                      `json:"toDate"`
	Rows     []MonthlyBalanceRowResponse `json:"rows"`
	Totals   struct {
		Income        decimal.Decimal `json:"income"`
		PayrollOutlay decimal.Decimal `json:"payrollOutlay"`
		Net           decimal.Decimal `json:"net"`
	} `json:"totals"`
}

// ToMonthlyBalanceResponse converts domain rows to the report response.
func ToMonthlyBalanceResponse(rows []domain.MonthlyBalanceRow, from, to string) MonthlyBalanceResponse {
	resp := MonthlyBalanceResponse{
		FromDate: from,
		ToDate:   to,
		Rows:     make([]MonthlyBalanceRowResponse, len(rows)),
	}
	for i, row := range rows {
		net := row.Income.Sub(row.PayrollOutlay)
		resp.Rows[i] = MonthlyBalanceRowResponse{
			Month:         row.Month.Format("2006-01"),
			Income:        row.Income,
			PayrollOutlay: row.PayrollOutlay,
			Net:           net,
		}
		resp.Totals.Income = resp.Totals.Income.Add(row.Income)
		resp.Totals.PayrollOutlay = resp.Totals.PayrollOutlay.Add(row.PayrollOutlay)
		resp.Totals.Net = resp.Totals.Net.Add(net)
	}
	return resp
}

// DailyControlRowResponse represents one contract in the daily control report.
type DailyControlRowResponse struct {
	ContractID     string `json:"contractID"`
	ContractorName string `json:"contractorName"`
	Venue          string `json:"venue"`
	EventTime      string `json:"eventTime"` // HH:MM
	AssignedCount  int    `json:"assignedCount"`
	PresentCount   int    `json:"presentCount"`
	AbsentCount    int    `json:"absentCount"`
}

// DailyControlResponse represents the daily control report.
type DailyControlResponse struct {
	Date string                    `json:"date"`
	Rows []DailyControlRowResponse `json:"rows"`
}

// ToDailyControlResponse converts domain rows to the report response.
func ToDailyControlResponse(rows []domain.DailyControlRow, date string) DailyControlResponse {
	resp := DailyControlResponse{Date: date, Rows: make([]DailyControlRowResponse, len(rows))}
	for i, row := range rows {
		resp.Rows[i] = DailyControlRowResponse{
			ContractID:     row.ContractID,
			ContractorName: row.ContractorName,
			Venue:          row.Venue,
			EventTime:      row.EventDate.Format("15:04"),
			AssignedCount:  row.AssignedCount,
			PresentCount:   row.PresentCount,
			AbsentCount:    row.AbsentCount,
		}
	}
	return resp
}

// ProfitabilityRowResponse represents one contract's margin.
type ProfitabilityRowResponse struct {
	ContractID       string          `json:"contractID"`
	ContractorName   string          `json:"contractorName"`
	ContractTypeName string          `json:"contractTypeName"`
	EventDate        string          `json:"eventDate"`
	Income           decimal.Decimal `json:"income"`
	StaffCost        decimal.Decimal `json:"staffCost"`
	Margin           decimal.Decimal `json:"margin"`
}

// ProfitabilityResponse represents the contract profitability report.
type ProfitabilityResponse struct {
	FromDate string                     `json:"fromDate"`
	ToDate   string                     `json:"toDate"`
	Rows     []ProfitabilityRowResponse `json:"rows"`
	Summary  struct {
		TotalIncome    decimal.Decimal `json:"totalIncome"`
		TotalStaffCost decimal.Decimal `json:"totalStaffCost"`
		TotalMargin    decimal.Decimal `json:"totalMargin"`
	} `json:"summary"`
}

// ToProfitabilityResponse converts domain rows to the report response.
func ToProfitabilityResponse(rows []domain.ContractProfitabilityRow, from, to string) ProfitabilityResponse {
	resp := ProfitabilityResponse{
		FromDate: from,
		ToDate:   to,
		Rows:     make([]ProfitabilityRowResponse, len(rows)),
	}
	for i, row := range rows {
		resp.Rows[i] = ProfitabilityRowResponse{
			ContractID:       row.ContractID,
			ContractorName:   row.ContractorName,
			ContractTypeName: row.ContractTypeName,
			EventDate:        row.EventDate.Format("2006-01-02"),
			Income:           row.Income,
			StaffCost:        row.StaffCost,
			Margin:           row.Margin,
		}
		resp.Summary.TotalIncome = resp.Summary.TotalIncome.Add(row.Income)
		resp.Summary.TotalStaffCost = resp.Summary.TotalStaffCost.Add(row.StaffCost)
		resp.Summary.TotalMargin = resp.Summary.TotalMargin.Add(row.Margin)
	}
	return resp
}
