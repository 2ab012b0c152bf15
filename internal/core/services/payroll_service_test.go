package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/eventstaff/esa_backend/internal/apperrors"
	"github.com/eventstaff/esa_backend/internal/core/domain"
	portssvc "github.com/eventstaff/esa_backend/internal/core/ports/services"
	"github.com/eventstaff/esa_backend/internal/core/services"
	"github.com/eventstaff/esa_backend/internal/dto"
	"github.com/eventstaff/esa_backend/internal/platform/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PayrollServiceTestSuite struct {
	suite.Suite
	mockBatchRepo     *MockBatchRepository
	mockPersonnelRepo *MockPersonnelRepository
	mockAuthorizer    *MockAuthorizer
	service           portssvc.PayrollSvcFacade

	orgID       string
	requesterID string
	admin       *domain.Personnel
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.mockBatchRepo = new(MockBatchRepository)
	suite.mockPersonnelRepo = new(MockPersonnelRepository)
	suite.mockAuthorizer = new(MockAuthorizer)
	cfg := &config.Config{DefaultLateDiscountPct: 50}
	suite.service = services.NewPayrollService(suite.mockBatchRepo, suite.mockPersonnelRepo, suite.mockAuthorizer, cfg)

	suite.orgID = uuid.NewString()
	suite.requesterID = uuid.NewString()
	suite.admin = &domain.Personnel{
		PersonnelID:    uuid.NewString(),
		OrganizationID: suite.orgID,
		Role:           domain.RoleAdmin,
	}
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.requesterID, suite.orgID, mock.Anything).
		Return(suite.admin, nil)
}

func pendingService(personnelID, personnelName string, amount int64, attendance domain.AttendanceState) domain.AssignedService {
	return domain.AssignedService{
		AssignedServiceID: uuid.NewString(),
		ParticipationID:   uuid.NewString(),
		AgreedAmount:      decimal.NewFromInt(amount),
		PaymentState:      domain.PaymentPending,
		PersonnelID:       personnelID,
		PersonnelName:     personnelName,
		Attendance:        attendance,
	}
}

func (suite *PayrollServiceTestSuite) TestListPendingServices_GroupsPerStaffMember() {
	ctx := context.Background()
	mariaID := uuid.NewString()
	pedroID := uuid.NewString()
	pending := []domain.AssignedService{
		pendingService(mariaID, "Maria Lopez", 100, domain.AttendancePunctual),
		pendingService(mariaID, "Maria Lopez", 80, domain.AttendanceLate),
		pendingService(pedroID, "Pedro Ruiz", 60, domain.AttendanceAbsent),
	}
	suite.mockBatchRepo.On("ListPendingServicesByOrganization", ctx, suite.orgID).Return(pending, nil).Once()

	resp, err := suite.service.ListPendingServices(ctx, suite.requesterID, suite.orgID)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Groups, 2)

	maria := resp.Groups[0]
	suite.Equal(mariaID, maria.PersonnelID)
	suite.Len(maria.Services, 2)
	// 100 in full plus 80 at the 50% late discount.
	suite.True(maria.Total.Equal(decimal.NewFromInt(140)), "got %s", maria.Total)

	pedro := resp.Groups[1]
	suite.Equal(pedroID, pedro.PersonnelID)
	suite.True(pedro.Total.IsZero())
	suite.True(pedro.Services[0].PayableAmount.IsZero())
}

func (suite *PayrollServiceTestSuite) TestCreateBatch_SnapshotsAmountsAndRollups() {
	ctx := context.Background()
	mariaID := uuid.NewString()
	svcA := pendingService(mariaID, "Maria Lopez", 100, domain.AttendancePunctual)
	svcB := pendingService(mariaID, "Maria Lopez", 80, domain.AttendanceLate)

	req := dto.CreateBatchRequest{
		Name: "Semana 34",
		Services: []dto.BatchServiceSelection{
			{AssignedServiceID: svcA.AssignedServiceID},
			{AssignedServiceID: svcB.AssignedServiceID, DiscountPct: decimal.NewFromInt(25)},
		},
	}

	suite.mockBatchRepo.On("FindPendingServicesByIDs", ctx, suite.orgID,
		[]string{svcA.AssignedServiceID, svcB.AssignedServiceID}).
		Return([]domain.AssignedService{svcA, svcB}, nil).Once()

	suite.mockBatchRepo.On("SaveBatch", ctx,
		mock.MatchedBy(func(b domain.PaymentBatch) bool {
			// 100 plus 80 at 25% off.
			return b.Status == domain.BatchInPreparation && b.TotalAmount.Equal(decimal.NewFromInt(160))
		}),
		mock.MatchedBy(func(details []domain.PaymentBatchDetail) bool {
			return len(details) == 2 && details[1].DiscountPct.Equal(decimal.NewFromInt(25))
		}),
		mock.MatchedBy(func(rollups []domain.PaymentBatchPersonnel) bool {
			return len(rollups) == 1 && rollups[0].PersonnelID == mariaID &&
				rollups[0].ShareAmount.Equal(decimal.NewFromInt(160)) && !rollups[0].CollectionDone
		}),
	).Return(nil).Once()

	batch, err := suite.service.CreateBatch(ctx, suite.requesterID, suite.orgID, req)

	suite.Require().NoError(err)
	suite.Equal("Semana 34", batch.Name)
	suite.Equal(domain.BatchInPreparation, batch.Status)
	suite.EqualValues(1, batch.Version)
	suite.mockBatchRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestCreateBatch_ServiceNoLongerPending() {
	ctx := context.Background()
	svcA := pendingService(uuid.NewString(), "Maria Lopez", 100, domain.AttendancePunctual)
	gone := uuid.NewString()

	req := dto.CreateBatchRequest{
		Name: "Semana 34",
		Services: []dto.BatchServiceSelection{
			{AssignedServiceID: svcA.AssignedServiceID},
			{AssignedServiceID: gone},
		},
	}
	suite.mockBatchRepo.On("FindPendingServicesByIDs", ctx, suite.orgID, mock.Anything).
		Return([]domain.AssignedService{svcA}, nil).Once()

	batch, err := suite.service.CreateBatch(ctx, suite.requesterID, suite.orgID, req)

	suite.Require().Error(err)
	suite.Nil(batch)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockBatchRepo.AssertNotCalled(suite.T(), "SaveBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestCreateBatch_RejectsDuplicateSelection() {
	ctx := context.Background()
	serviceID := uuid.NewString()
	req := dto.CreateBatchRequest{
		Name: "Semana 34",
		Services: []dto.BatchServiceSelection{
			{AssignedServiceID: serviceID},
			{AssignedServiceID: serviceID},
		},
	}

	batch, err := suite.service.CreateBatch(ctx, suite.requesterID, suite.orgID, req)

	suite.Require().Error(err)
	suite.Nil(batch)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PayrollServiceTestSuite) TestCreateBatch_RejectsDiscountOutOfRange() {
	ctx := context.Background()
	req := dto.CreateBatchRequest{
		Name: "Semana 34",
		Services: []dto.BatchServiceSelection{
			{AssignedServiceID: uuid.NewString(), DiscountPct: decimal.NewFromInt(150)},
		},
	}

	batch, err := suite.service.CreateBatch(ctx, suite.requesterID, suite.orgID, req)

	suite.Require().Error(err)
	suite.Nil(batch)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PayrollServiceTestSuite) TestToggleCollection_RejectedOutsidePreparation() {
	ctx := context.Background()
	batch := &domain.PaymentBatch{
		BatchID:        uuid.NewString(),
		OrganizationID: suite.orgID,
		Status:         domain.BatchFinalized,
	}
	suite.mockBatchRepo.On("FindBatchByID", ctx, batch.BatchID).Return(batch, nil).Once()

	err := suite.service.ToggleCollection(ctx, suite.requesterID, suite.orgID, batch.BatchID, uuid.NewString(), true)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockBatchRepo.AssertNotCalled(suite.T(), "UpdateCollectionDone",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestFinalizeBatch_PartitionsByCollectionFlag() {
	ctx := context.Background()
	mariaID := uuid.NewString()
	pedroID := uuid.NewString()
	batch := &domain.PaymentBatch{
		BatchID:        uuid.NewString(),
		OrganizationID: suite.orgID,
		Status:         domain.BatchInPreparation,
		Version:        3,
	}
	rollups := []domain.PaymentBatchPersonnel{
		{BatchID: batch.BatchID, PersonnelID: mariaID, CollectionDone: true},
		{BatchID: batch.BatchID, PersonnelID: pedroID, CollectionDone: false},
	}
	mariaSvc := uuid.NewString()
	pedroSvc := uuid.NewString()
	details := []domain.PaymentBatchDetail{
		{BatchID: batch.BatchID, AssignedServiceID: mariaSvc, PersonnelID: mariaID, Amount: decimal.NewFromInt(140)},
		{BatchID: batch.BatchID, AssignedServiceID: pedroSvc, PersonnelID: pedroID, Amount: decimal.NewFromInt(60)},
	}

	suite.mockBatchRepo.On("FindBatchByID", ctx, batch.BatchID).Return(batch, nil).Once()
	suite.mockBatchRepo.On("FindBatchPersonnel", ctx, batch.BatchID).Return(rollups, nil).Once()
	suite.mockBatchRepo.On("FindBatchDetails", ctx, batch.BatchID).Return(details, nil).Once()
	suite.mockBatchRepo.On("FinalizeBatch", ctx, *batch,
		[]string{mariaSvc}, []string{pedroSvc},
		mock.MatchedBy(func(paidTotal decimal.Decimal) bool {
			return paidTotal.Equal(decimal.NewFromInt(140))
		}),
		(*time.Time)(nil), suite.requesterID, mock.AnythingOfType("time.Time"),
	).Return(nil).Once()

	resp, err := suite.service.FinalizeBatch(ctx, suite.requesterID, suite.orgID, batch.BatchID, dto.FinalizeBatchRequest{})

	suite.Require().NoError(err)
	suite.Equal([]string{mariaSvc}, resp.PaidIDs)
	suite.Equal([]string{pedroSvc}, resp.RevertedIDs)
	suite.mockBatchRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestFinalizeBatch_RejectedOutsidePreparation() {
	ctx := context.Background()
	batch := &domain.PaymentBatch{
		BatchID:        uuid.NewString(),
		OrganizationID: suite.orgID,
		Status:         domain.BatchFinalized,
	}
	suite.mockBatchRepo.On("FindBatchByID", ctx, batch.BatchID).Return(batch, nil).Once()

	resp, err := suite.service.FinalizeBatch(ctx, suite.requesterID, suite.orgID, batch.BatchID, dto.FinalizeBatchRequest{})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *PayrollServiceTestSuite) TestVoidBatch_ReleasesAllServices() {
	ctx := context.Background()
	batch := &domain.PaymentBatch{
		BatchID:        uuid.NewString(),
		OrganizationID: suite.orgID,
		Status:         domain.BatchFinalized,
		Version:        2,
	}
	svcA := uuid.NewString()
	svcB := uuid.NewString()
	details := []domain.PaymentBatchDetail{
		{BatchID: batch.BatchID, AssignedServiceID: svcA},
		{BatchID: batch.BatchID, AssignedServiceID: svcB},
	}

	suite.mockBatchRepo.On("FindBatchByID", ctx, batch.BatchID).Return(batch, nil).Once()
	suite.mockBatchRepo.On("FindBatchDetails", ctx, batch.BatchID).Return(details, nil).Once()
	suite.mockBatchRepo.On("VoidBatch", ctx, *batch, []string{svcA, svcB}, suite.requesterID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.VoidBatch(ctx, suite.requesterID, suite.orgID, batch.BatchID)

	suite.Require().NoError(err)
	suite.mockBatchRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestVoidBatch_AlreadyVoided() {
	ctx := context.Background()
	batch := &domain.PaymentBatch{
		BatchID:        uuid.NewString(),
		OrganizationID: suite.orgID,
		Status:         domain.BatchVoided,
	}
	suite.mockBatchRepo.On("FindBatchByID", ctx, batch.BatchID).Return(batch, nil).Once()

	err := suite.service.VoidBatch(ctx, suite.requesterID, suite.orgID, batch.BatchID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockBatchRepo.AssertNotCalled(suite.T(), "VoidBatch",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestUpdateScheduledDate_FrozenAfterFinalize() {
	ctx := context.Background()
	batch := &domain.PaymentBatch{
		BatchID:        uuid.NewString(),
		OrganizationID: suite.orgID,
		Status:         domain.BatchFinalized,
	}
	suite.mockBatchRepo.On("FindBatchByID", ctx, batch.BatchID).Return(batch, nil).Once()

	updated, err := suite.service.UpdateScheduledDate(ctx, suite.requesterID, suite.orgID, batch.BatchID,
		dto.UpdateBatchDateRequest{ScheduledDate: time.Now()})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *PayrollServiceTestSuite) TestApproveBatch_Chain() {
	ctx := context.Background()
	batch := &domain.PaymentBatch{
		BatchID:        uuid.NewString(),
		OrganizationID: suite.orgID,
		Status:         domain.BatchFinalized,
		Version:        3,
	}
	suite.mockBatchRepo.On("FindBatchByID", ctx, batch.BatchID).Return(batch, nil).Once()
	suite.mockBatchRepo.On("UpdateBatchStatus", ctx, batch.BatchID, domain.BatchPendingApproval, batch.Version, suite.requesterID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	updated, err := suite.service.ApproveBatch(ctx, suite.requesterID, suite.orgID, batch.BatchID)

	suite.Require().NoError(err)
	suite.Equal(domain.BatchPendingApproval, updated.Status)

	// A second approval pays the batch out.
	pending := &domain.PaymentBatch{
		BatchID:        batch.BatchID,
		OrganizationID: suite.orgID,
		Status:         domain.BatchPendingApproval,
		Version:        4,
	}
	suite.mockBatchRepo.On("FindBatchByID", ctx, batch.BatchID).Return(pending, nil).Once()
	suite.mockBatchRepo.On("UpdateBatchStatus", ctx, batch.BatchID, domain.BatchPaid, pending.Version, suite.requesterID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	updated, err = suite.service.ApproveBatch(ctx, suite.requesterID, suite.orgID, batch.BatchID)

	suite.Require().NoError(err)
	suite.Equal(domain.BatchPaid, updated.Status)
}

func (suite *PayrollServiceTestSuite) TestApproveBatch_RejectedInPreparation() {
	ctx := context.Background()
	batch := &domain.PaymentBatch{
		BatchID:        uuid.NewString(),
		OrganizationID: suite.orgID,
		Status:         domain.BatchInPreparation,
	}
	suite.mockBatchRepo.On("FindBatchByID", ctx, batch.BatchID).Return(batch, nil).Once()

	updated, err := suite.service.ApproveBatch(ctx, suite.requesterID, suite.orgID, batch.BatchID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *PayrollServiceTestSuite) TestApproveBatch_StaleVersionConflicts() {
	ctx := context.Background()
	batch := &domain.PaymentBatch{
		BatchID:        uuid.NewString(),
		OrganizationID: suite.orgID,
		Status:         domain.BatchFinalized,
		Version:        3,
	}
	suite.mockBatchRepo.On("FindBatchByID", ctx, batch.BatchID).Return(batch, nil).Once()
	suite.mockBatchRepo.On("UpdateBatchStatus", ctx, batch.BatchID, domain.BatchPendingApproval, batch.Version, suite.requesterID, mock.AnythingOfType("time.Time")).
		Return(fmt.Errorf("batch %s changed concurrently: %w", batch.BatchID, apperrors.ErrConflict)).Once()

	updated, err := suite.service.ApproveBatch(ctx, suite.requesterID, suite.orgID, batch.BatchID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *PayrollServiceTestSuite) TestClaimBatch_Success() {
	ctx := context.Background()
	batch := &domain.PaymentBatch{
		BatchID:        uuid.NewString(),
		OrganizationID: suite.orgID,
		Status:         domain.BatchPendingApproval,
		Version:        2,
	}
	suite.mockBatchRepo.On("FindBatchByID", ctx, batch.BatchID).Return(batch, nil).Once()
	suite.mockBatchRepo.On("UpdateBatchStatus", ctx, batch.BatchID, domain.BatchClaimed, batch.Version, suite.requesterID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	updated, err := suite.service.ClaimBatch(ctx, suite.requesterID, suite.orgID, batch.BatchID)

	suite.Require().NoError(err)
	suite.Equal(domain.BatchClaimed, updated.Status)
}

func (suite *PayrollServiceTestSuite) TestGetBatch_WrongOrganization() {
	ctx := context.Background()
	foreign := &domain.PaymentBatch{
		BatchID:        uuid.NewString(),
		OrganizationID: uuid.NewString(),
		Status:         domain.BatchInPreparation,
	}
	suite.mockBatchRepo.On("FindBatchByID", ctx, foreign.BatchID).Return(foreign, nil).Once()

	resp, err := suite.service.GetBatch(ctx, suite.requesterID, suite.orgID, foreign.BatchID)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PayrollServiceTestSuite) TestListMyPayments_ResolvesOwnPersonnel() {
	ctx := context.Background()
	ownPersonnel := &domain.Personnel{
		PersonnelID:    uuid.NewString(),
		OrganizationID: suite.orgID,
		UserID:         &suite.requesterID,
	}
	rollups := []domain.PaymentBatchPersonnel{
		{
			BatchID:     uuid.NewString(),
			PersonnelID: ownPersonnel.PersonnelID,
			ShareAmount: decimal.NewFromInt(140),
			BatchName:   "Semana 34",
			BatchStatus: domain.BatchPaid,
		},
	}
	suite.mockPersonnelRepo.On("FindPersonnelByUserID", ctx, suite.orgID, suite.requesterID).
		Return(ownPersonnel, nil).Once()
	suite.mockBatchRepo.On("ListRollupsByPersonnel", ctx, suite.orgID, ownPersonnel.PersonnelID).
		Return(rollups, nil).Once()

	resp, err := suite.service.ListMyPayments(ctx, suite.requesterID, suite.orgID)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Payments, 1)
	suite.Equal("Semana 34", resp.Payments[0].BatchName)
	suite.True(resp.Payments[0].ShareAmount.Equal(decimal.NewFromInt(140)))
}

func TestPayrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}
