package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/eventstaff/esa_backend/internal/apperrors"
	"github.com/eventstaff/esa_backend/internal/core/domain"
	portssvc "github.com/eventstaff/esa_backend/internal/core/ports/services"
	"github.com/eventstaff/esa_backend/internal/core/services"
	"github.com/eventstaff/esa_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AttendanceServiceTestSuite struct {
	suite.Suite
	mockParticipationRepo *MockParticipationRepository
	mockAuthorizer        *MockAuthorizer
	service               portssvc.AttendanceSvcFacade

	orgID       string
	requesterID string
}

func (suite *AttendanceServiceTestSuite) SetupTest() {
	suite.mockParticipationRepo = new(MockParticipationRepository)
	suite.mockAuthorizer = new(MockAuthorizer)
	suite.service = services.NewAttendanceService(suite.mockParticipationRepo, suite.mockAuthorizer)

	suite.orgID = uuid.NewString()
	suite.requesterID = uuid.NewString()
	admin := &domain.Personnel{PersonnelID: uuid.NewString(), OrganizationID: suite.orgID, Role: domain.RoleAdmin}
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.requesterID, suite.orgID, mock.Anything).
		Return(admin, nil)
}

func (suite *AttendanceServiceTestSuite) activeContract() *domain.Contract {
	return &domain.Contract{
		ContractID:     uuid.NewString(),
		OrganizationID: suite.orgID,
		Status:         domain.ContractActive,
	}
}

func (suite *AttendanceServiceTestSuite) TestUpdateAttendance_PunctualStampsArrival() {
	ctx := context.Background()
	participationID := uuid.NewString()
	participation := &domain.Participation{
		ParticipationID: participationID,
		Attendance:      domain.AttendanceAssigned,
	}

	suite.mockParticipationRepo.On("FindContractByParticipationID", ctx, participationID).
		Return(suite.activeContract(), nil).Once()
	suite.mockParticipationRepo.On("FindParticipationByID", ctx, participationID).
		Return(participation, nil).Once()
	suite.mockParticipationRepo.On("UpdateAttendance", ctx, participationID, domain.AttendancePunctual,
		mock.MatchedBy(func(at *time.Time) bool { return at != nil }),
		suite.requesterID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	updated, err := suite.service.UpdateAttendance(ctx, suite.requesterID, suite.orgID, participationID,
		dto.UpdateAttendanceRequest{Attendance: domain.AttendancePunctual})

	suite.Require().NoError(err)
	suite.Equal(domain.AttendancePunctual, updated.Attendance)
	suite.NotNil(updated.ArrivalTime)
}

func (suite *AttendanceServiceTestSuite) TestUpdateAttendance_LateUsesProvidedArrival() {
	ctx := context.Background()
	participationID := uuid.NewString()
	arrival := time.Date(2026, 8, 20, 22, 45, 0, 0, time.UTC)
	participation := &domain.Participation{ParticipationID: participationID}

	suite.mockParticipationRepo.On("FindContractByParticipationID", ctx, participationID).
		Return(suite.activeContract(), nil).Once()
	suite.mockParticipationRepo.On("FindParticipationByID", ctx, participationID).
		Return(participation, nil).Once()
	suite.mockParticipationRepo.On("UpdateAttendance", ctx, participationID, domain.AttendanceLate,
		&arrival, suite.requesterID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	updated, err := suite.service.UpdateAttendance(ctx, suite.requesterID, suite.orgID, participationID,
		dto.UpdateAttendanceRequest{Attendance: domain.AttendanceLate, ArrivalTime: &arrival})

	suite.Require().NoError(err)
	suite.Equal(&arrival, updated.ArrivalTime)
}

func (suite *AttendanceServiceTestSuite) TestUpdateAttendance_AbsentClearsArrival() {
	ctx := context.Background()
	participationID := uuid.NewString()
	earlier := time.Now().Add(-time.Hour)
	participation := &domain.Participation{
		ParticipationID: participationID,
		Attendance:      domain.AttendancePunctual,
		ArrivalTime:     &earlier,
	}

	suite.mockParticipationRepo.On("FindContractByParticipationID", ctx, participationID).
		Return(suite.activeContract(), nil).Once()
	suite.mockParticipationRepo.On("FindParticipationByID", ctx, participationID).
		Return(participation, nil).Once()
	suite.mockParticipationRepo.On("UpdateAttendance", ctx, participationID, domain.AttendanceAbsent,
		(*time.Time)(nil), suite.requesterID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	updated, err := suite.service.UpdateAttendance(ctx, suite.requesterID, suite.orgID, participationID,
		dto.UpdateAttendanceRequest{Attendance: domain.AttendanceAbsent})

	suite.Require().NoError(err)
	suite.Nil(updated.ArrivalTime)
}

func (suite *AttendanceServiceTestSuite) TestUpdateAttendance_CompletedContractRejected() {
	ctx := context.Background()
	participationID := uuid.NewString()
	completed := &domain.Contract{
		ContractID:     uuid.NewString(),
		OrganizationID: suite.orgID,
		Status:         domain.ContractCompleted,
	}
	suite.mockParticipationRepo.On("FindContractByParticipationID", ctx, participationID).
		Return(completed, nil).Once()

	updated, err := suite.service.UpdateAttendance(ctx, suite.requesterID, suite.orgID, participationID,
		dto.UpdateAttendanceRequest{Attendance: domain.AttendancePunctual})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockParticipationRepo.AssertNotCalled(suite.T(), "UpdateAttendance",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestUpdateAttendance_CrossTenantHidden() {
	ctx := context.Background()
	participationID := uuid.NewString()
	foreign := &domain.Contract{
		ContractID:     uuid.NewString(),
		OrganizationID: uuid.NewString(),
		Status:         domain.ContractActive,
	}
	suite.mockParticipationRepo.On("FindContractByParticipationID", ctx, participationID).
		Return(foreign, nil).Once()

	updated, err := suite.service.UpdateAttendance(ctx, suite.requesterID, suite.orgID, participationID,
		dto.UpdateAttendanceRequest{Attendance: domain.AttendancePunctual})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAttendanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceServiceTestSuite))
}
