package services

import (
	"context"
	"fmt"
	"time"

	"github.com/eventstaff/esa_backend/internal/apperrors"
	"github.com/eventstaff/esa_backend/internal/core/domain"
	portsrepo "github.com/eventstaff/esa_backend/internal/core/ports/repositories"
	portssvc "github.com/eventstaff/esa_backend/internal/core/ports/services"
	"github.com/eventstaff/esa_backend/internal/dto"
)

// ReportingService serves the admin reporting views from live data.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
	authorizer    portssvc.OrganizationAuthorizerSvc
}

// NewReportingService creates a new ReportingService.
func NewReportingService(rr portsrepo.ReportingRepository, authorizer portssvc.OrganizationAuthorizerSvc) *ReportingService {
	return &ReportingService{reportingRepo: rr, authorizer: authorizer}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// GetMonthlyBalance returns per-month income and payroll outlay for one year.
// Reports are restricted to ADMIN; support staff handle day-to-day operations
// but not the books.
func (s *ReportingService) GetMonthlyBalance(ctx context.Context, requesterUserID string, organizationID string, year int) (*dto.MonthlyBalanceResponse, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("year %d is out of range: %w", year, apperrors.ErrValidation)
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	rows, err := s.reportingRepo.MonthlyBalance(ctx, organizationID, from, to)
	if err != nil {
		return nil, err
	}
	resp := dto.ToMonthlyBalanceResponse(rows, from.Format("2006-01-02"), to.AddDate(0, 0, -1).Format("2006-01-02"))
	return &resp, nil
}

// GetDailyControl returns the contracts of one day with attendance counts.
func (s *ReportingService) GetDailyControl(ctx context.Context, requesterUserID string, organizationID string, day time.Time) (*dto.DailyControlResponse, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.DailyControl(ctx, organizationID, day)
	if err != nil {
		return nil, err
	}
	resp := dto.ToDailyControlResponse(rows, day.Format("2006-01-02"))
	return &resp, nil
}

// GetContractProfitability returns per-contract income versus staff cost
// over a date range.
func (s *ReportingService) GetContractProfitability(ctx context.Context, requesterUserID string, organizationID string, from, to time.Time) (*dto.ProfitabilityResponse, error) {
	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("date range ends before it starts: %w", apperrors.ErrValidation)
	}

	rows, err := s.reportingRepo.ContractProfitability(ctx, organizationID, from, to)
	if err != nil {
		return nil, err
	}
	resp := dto.ToProfitabilityResponse(rows, from.Format("2006-01-02"), to.Format("2006-01-02"))
	return &resp, nil
}
