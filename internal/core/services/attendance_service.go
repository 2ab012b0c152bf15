package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/eventstaff/esa_backend/internal/apperrors"
	"github.com/eventstaff/esa_backend/internal/core/domain"
	portsrepo "github.com/eventstaff/esa_backend/internal/core/ports/repositories"
	portssvc "github.com/eventstaff/esa_backend/internal/core/ports/services"
	"github.com/eventstaff/esa_backend/internal/dto"
	"github.com/eventstaff/esa_backend/internal/middleware"
)

// AttendanceService maintains the attendance state machine on participations.
type AttendanceService struct {
	participationRepo portsrepo.ParticipationRepositoryFacade
	authorizer        portssvc.OrganizationAuthorizerSvc
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(pr portsrepo.ParticipationRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) *AttendanceService {
	return &AttendanceService{participationRepo: pr, authorizer: authorizer}
}

var _ portssvc.AttendanceSvcFacade = (*AttendanceService)(nil)

// UpdateAttendance moves a participation to the requested attendance state.
// Any transition between states is allowed while the owning contract is
// ACTIVA, so mistakes can be corrected on the spot.
func (s *AttendanceService) UpdateAttendance(ctx context.Context, requesterUserID string, organizationID string, participationID string, req dto.UpdateAttendanceRequest) (*domain.Participation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.authorizer.AuthorizeUserAction(ctx, requesterUserID, organizationID, adminRoles...); err != nil {
		return nil, err
	}

	if !req.Attendance.Valid() {
		return nil, fmt.Errorf("unknown attendance state %q: %w", req.Attendance, apperrors.ErrValidation)
	}

	contract, err := s.participationRepo.FindContractByParticipationID(ctx, participationID)
	if err != nil {
		return nil, err
	}
	if contract.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	if contract.Status != domain.ContractActive {
		return nil, fmt.Errorf("attendance of a completed contract cannot change: %w", apperrors.ErrConflict)
	}

	participation, err := s.participationRepo.FindParticipationByID(ctx, participationID)
	if err != nil {
		return nil, err
	}

	var arrivalTime *time.Time
	if req.Attendance.StampsArrival() {
		at := time.Now()
		if req.ArrivalTime != nil {
			at = *req.ArrivalTime
		}
		arrivalTime = &at
	}

	now := time.Now()
	if err := s.participationRepo.UpdateAttendance(ctx, participationID, req.Attendance, arrivalTime, requesterUserID, now); err != nil {
		return nil, err
	}

	participation.Attendance = req.Attendance
	participation.ArrivalTime = arrivalTime
	participation.LastUpdatedAt = now
	participation.LastUpdatedBy = requesterUserID

	logger.Info("Attendance updated",
		slog.String("participation_id", participationID),
		slog.String("attendance", string(req.Attendance)))
	return participation, nil
}
