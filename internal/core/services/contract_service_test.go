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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ContractServiceTestSuite struct {
	suite.Suite
	mockContractRepo      *MockContractRepository
	mockParticipationRepo *MockParticipationRepository
	mockContractorRepo    *MockContractorRepository
	mockContractTypeRepo  *MockContractTypeRepository
	mockServiceTypeRepo   *MockServiceTypeRepository
	mockPersonnelRepo     *MockPersonnelRepository
	mockAuthorizer        *MockAuthorizer
	service               portssvc.ContractSvcFacade

	orgID       string
	requesterID string
}

func (suite *ContractServiceTestSuite) SetupTest() {
	suite.mockContractRepo = new(MockContractRepository)
	suite.mockParticipationRepo = new(MockParticipationRepository)
	suite.mockContractorRepo = new(MockContractorRepository)
	suite.mockContractTypeRepo = new(MockContractTypeRepository)
	suite.mockServiceTypeRepo = new(MockServiceTypeRepository)
	suite.mockPersonnelRepo = new(MockPersonnelRepository)
	suite.mockAuthorizer = new(MockAuthorizer)
	suite.service = services.NewContractService(
		suite.mockContractRepo,
		suite.mockParticipationRepo,
		suite.mockContractorRepo,
		suite.mockContractTypeRepo,
		suite.mockServiceTypeRepo,
		suite.mockPersonnelRepo,
		suite.mockAuthorizer,
	)

	suite.orgID = uuid.NewString()
	suite.requesterID = uuid.NewString()
	admin := &domain.Personnel{PersonnelID: uuid.NewString(), OrganizationID: suite.orgID, Role: domain.RoleAdmin}
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.requesterID, suite.orgID, mock.Anything).
		Return(admin, nil)
}

func (suite *ContractServiceTestSuite) activeContract() *domain.Contract {
	return &domain.Contract{
		ContractID:     uuid.NewString(),
		OrganizationID: suite.orgID,
		Status:         domain.ContractActive,
		StaffingStatus: domain.StaffingPending,
	}
}

func (suite *ContractServiceTestSuite) TestCreateContract_Success() {
	ctx := context.Background()
	contractor := &domain.Contractor{
		ContractorID:   uuid.NewString(),
		OrganizationID: suite.orgID,
		Name:           "Discoteca Rio",
	}
	contractType := &domain.ContractType{
		ContractTypeID: uuid.NewString(),
		OrganizationID: suite.orgID,
		Name:           "Fiesta privada",
		BaseIncome:     decimal.NewFromInt(500),
	}
	req := dto.CreateContractRequest{
		ContractorID:   contractor.ContractorID,
		ContractTypeID: contractType.ContractTypeID,
		EventDate:      time.Date(2026, 9, 12, 21, 0, 0, 0, time.UTC),
		Venue:          "Sala Norte",
	}

	suite.mockContractorRepo.On("FindContractorByID", ctx, contractor.ContractorID).Return(contractor, nil).Once()
	suite.mockContractTypeRepo.On("FindContractTypeByID", ctx, contractType.ContractTypeID).Return(contractType, nil).Once()
	suite.mockContractRepo.On("SaveContract", ctx, mock.MatchedBy(func(c domain.Contract) bool {
		return c.OrganizationID == suite.orgID &&
			c.Status == domain.ContractActive &&
			c.StaffingStatus == domain.StaffingPending
	})).Return(nil).Once()

	contract, err := suite.service.CreateContract(ctx, suite.requesterID, suite.orgID, req)

	suite.Require().NoError(err)
	suite.Equal("Discoteca Rio", contract.ContractorName)
	suite.Equal(domain.ContractActive, contract.Status)
	suite.mockContractRepo.AssertExpectations(suite.T())
}

func (suite *ContractServiceTestSuite) TestCreateContract_ForeignContractor() {
	ctx := context.Background()
	foreign := &domain.Contractor{ContractorID: uuid.NewString(), OrganizationID: uuid.NewString()}
	req := dto.CreateContractRequest{
		ContractorID:   foreign.ContractorID,
		ContractTypeID: uuid.NewString(),
		EventDate:      time.Now(),
	}
	suite.mockContractorRepo.On("FindContractorByID", ctx, foreign.ContractorID).Return(foreign, nil).Once()

	contract, err := suite.service.CreateContract(ctx, suite.requesterID, suite.orgID, req)

	suite.Require().Error(err)
	suite.Nil(contract)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockContractRepo.AssertNotCalled(suite.T(), "SaveContract", mock.Anything, mock.Anything)
}

func (suite *ContractServiceTestSuite) TestCompleteContract_Success() {
	ctx := context.Background()
	contract := suite.activeContract()

	suite.mockContractRepo.On("FindContractByID", ctx, contract.ContractID).Return(contract, nil).Once()
	suite.mockContractRepo.On("UpdateContractStatus", ctx, contract.ContractID, domain.ContractCompleted, suite.requesterID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	completed, err := suite.service.CompleteContract(ctx, suite.requesterID, suite.orgID, contract.ContractID)

	suite.Require().NoError(err)
	suite.Equal(domain.ContractCompleted, completed.Status)
	suite.mockContractRepo.AssertExpectations(suite.T())
}

func (suite *ContractServiceTestSuite) TestCompleteContract_UnrecordedAttendanceStillCompletes() {
	ctx := context.Background()
	contract := suite.activeContract()

	suite.mockContractRepo.On("FindContractByID", ctx, contract.ContractID).Return(contract, nil).Once()
	suite.mockContractRepo.On("UpdateContractStatus", ctx, contract.ContractID, domain.ContractCompleted, suite.requesterID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	completed, err := suite.service.CompleteContract(ctx, suite.requesterID, suite.orgID, contract.ContractID)

	suite.Require().NoError(err)
	suite.Equal(domain.ContractCompleted, completed.Status)
	suite.mockParticipationRepo.AssertNotCalled(suite.T(), "ListParticipationsByEvent", mock.Anything, mock.Anything)
}

func (suite *ContractServiceTestSuite) TestCompleteContract_AlreadyCompleted() {
	ctx := context.Background()
	contract := suite.activeContract()
	contract.Status = domain.ContractCompleted

	suite.mockContractRepo.On("FindContractByID", ctx, contract.ContractID).Return(contract, nil).Once()

	completed, err := suite.service.CompleteContract(ctx, suite.requesterID, suite.orgID, contract.ContractID)

	suite.Require().Error(err)
	suite.Nil(completed)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockContractRepo.AssertNotCalled(suite.T(), "UpdateContractStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ContractServiceTestSuite) TestGetContractEvent_LazyCreatesOnFirstAccess() {
	ctx := context.Background()
	contract := suite.activeContract()

	suite.mockContractRepo.On("FindContractByID", ctx, contract.ContractID).Return(contract, nil).Once()
	suite.mockContractRepo.On("FindEventByContractID", ctx, contract.ContractID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockContractRepo.On("SaveContractEvent", ctx, mock.MatchedBy(func(e domain.ContractEvent) bool {
		return e.ContractID == contract.ContractID && e.ContractEventID != ""
	})).Return(nil).Once()

	event, err := suite.service.GetContractEvent(ctx, suite.requesterID, suite.orgID, contract.ContractID)

	suite.Require().NoError(err)
	suite.Equal(contract.ContractID, event.ContractID)
	suite.Nil(event.StartedAt)
	suite.mockContractRepo.AssertExpectations(suite.T())
}

func (suite *ContractServiceTestSuite) TestAddParticipation_CompletedContractRejected() {
	ctx := context.Background()
	contract := suite.activeContract()
	contract.Status = domain.ContractCompleted

	suite.mockContractRepo.On("FindContractByID", ctx, contract.ContractID).Return(contract, nil).Once()

	participation, err := suite.service.AddParticipation(ctx, suite.requesterID, suite.orgID, contract.ContractID,
		dto.CreateParticipationRequest{PersonnelID: uuid.NewString()})

	suite.Require().Error(err)
	suite.Nil(participation)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *ContractServiceTestSuite) TestAddParticipation_InactivePersonnelRejected() {
	ctx := context.Background()
	contract := suite.activeContract()
	inactive := &domain.Personnel{
		PersonnelID:    uuid.NewString(),
		OrganizationID: suite.orgID,
		IsActive:       false,
	}

	suite.mockContractRepo.On("FindContractByID", ctx, contract.ContractID).Return(contract, nil).Once()
	suite.mockPersonnelRepo.On("FindPersonnelByID", ctx, inactive.PersonnelID).Return(inactive, nil).Once()

	participation, err := suite.service.AddParticipation(ctx, suite.requesterID, suite.orgID, contract.ContractID,
		dto.CreateParticipationRequest{PersonnelID: inactive.PersonnelID})

	suite.Require().Error(err)
	suite.Nil(participation)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ContractServiceTestSuite) TestAddParticipation_StartsAssigned() {
	ctx := context.Background()
	contract := suite.activeContract()
	staff := &domain.Personnel{
		PersonnelID:    uuid.NewString(),
		OrganizationID: suite.orgID,
		FirstName:      "Maria",
		LastName:       "Lopez",
		IsActive:       true,
	}
	event := &domain.ContractEvent{ContractEventID: uuid.NewString(), ContractID: contract.ContractID}

	suite.mockContractRepo.On("FindContractByID", ctx, contract.ContractID).Return(contract, nil).Once()
	suite.mockPersonnelRepo.On("FindPersonnelByID", ctx, staff.PersonnelID).Return(staff, nil).Once()
	suite.mockContractRepo.On("FindEventByContractID", ctx, contract.ContractID).Return(event, nil).Once()
	suite.mockParticipationRepo.On("SaveParticipation", ctx, mock.MatchedBy(func(p domain.Participation) bool {
		return p.ContractEventID == event.ContractEventID &&
			p.PersonnelID == staff.PersonnelID &&
			p.Attendance == domain.AttendanceAssigned
	})).Return(nil).Once()

	participation, err := suite.service.AddParticipation(ctx, suite.requesterID, suite.orgID, contract.ContractID,
		dto.CreateParticipationRequest{PersonnelID: staff.PersonnelID})

	suite.Require().NoError(err)
	suite.Equal("Maria Lopez", participation.PersonnelName)
	suite.Equal(domain.AttendanceAssigned, participation.Attendance)
}

func (suite *ContractServiceTestSuite) TestAddAssignedService_DefaultsToServiceTypeRate() {
	ctx := context.Background()
	participationID := uuid.NewString()
	contract := suite.activeContract()
	serviceType := &domain.ServiceType{
		ServiceTypeID:  uuid.NewString(),
		OrganizationID: suite.orgID,
		Name:           "Barra",
		DefaultRate:    decimal.NewFromInt(75),
	}

	suite.mockParticipationRepo.On("FindContractByParticipationID", ctx, participationID).Return(contract, nil).Once()
	suite.mockServiceTypeRepo.On("FindServiceTypeByID", ctx, serviceType.ServiceTypeID).Return(serviceType, nil).Once()
	suite.mockParticipationRepo.On("SaveAssignedService", ctx, mock.MatchedBy(func(s domain.AssignedService) bool {
		return s.AgreedAmount.Equal(decimal.NewFromInt(75)) && s.PaymentState == domain.PaymentPending
	})).Return(nil).Once()

	service, err := suite.service.AddAssignedService(ctx, suite.requesterID, suite.orgID, participationID,
		dto.CreateAssignedServiceRequest{ServiceTypeID: serviceType.ServiceTypeID})

	suite.Require().NoError(err)
	suite.True(service.AgreedAmount.Equal(decimal.NewFromInt(75)))
	suite.Equal(domain.PaymentPending, service.PaymentState)
}

func (suite *ContractServiceTestSuite) TestAddAssignedService_ExplicitAmountWins() {
	ctx := context.Background()
	participationID := uuid.NewString()
	contract := suite.activeContract()
	serviceType := &domain.ServiceType{
		ServiceTypeID:  uuid.NewString(),
		OrganizationID: suite.orgID,
		DefaultRate:    decimal.NewFromInt(75),
	}
	agreed := decimal.NewFromInt(90)

	suite.mockParticipationRepo.On("FindContractByParticipationID", ctx, participationID).Return(contract, nil).Once()
	suite.mockServiceTypeRepo.On("FindServiceTypeByID", ctx, serviceType.ServiceTypeID).Return(serviceType, nil).Once()
	suite.mockParticipationRepo.On("SaveAssignedService", ctx, mock.MatchedBy(func(s domain.AssignedService) bool {
		return s.AgreedAmount.Equal(agreed)
	})).Return(nil).Once()

	service, err := suite.service.AddAssignedService(ctx, suite.requesterID, suite.orgID, participationID,
		dto.CreateAssignedServiceRequest{ServiceTypeID: serviceType.ServiceTypeID, AgreedAmount: &agreed})

	suite.Require().NoError(err)
	suite.True(service.AgreedAmount.Equal(agreed))
}

func (suite *ContractServiceTestSuite) TestUpdateAssignedService_PaidRejected() {
	ctx := context.Background()
	paid := &domain.AssignedService{
		AssignedServiceID: uuid.NewString(),
		ParticipationID:   uuid.NewString(),
		PaymentState:      domain.PaymentPaid,
	}
	contract := suite.activeContract()

	suite.mockParticipationRepo.On("FindAssignedServiceByID", ctx, paid.AssignedServiceID).Return(paid, nil).Once()
	suite.mockParticipationRepo.On("FindContractByParticipationID", ctx, paid.ParticipationID).Return(contract, nil).Once()

	service, err := suite.service.UpdateAssignedService(ctx, suite.requesterID, suite.orgID, paid.AssignedServiceID,
		dto.UpdateAssignedServiceRequest{AgreedAmount: decimal.NewFromInt(10)})

	suite.Require().Error(err)
	suite.Nil(service)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *ContractServiceTestSuite) TestRemoveParticipation_CompletedContractRejected() {
	ctx := context.Background()
	participationID := uuid.NewString()
	completed := suite.activeContract()
	completed.Status = domain.ContractCompleted

	suite.mockParticipationRepo.On("FindContractByParticipationID", ctx, participationID).Return(completed, nil).Once()

	err := suite.service.RemoveParticipation(ctx, suite.requesterID, suite.orgID, participationID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockParticipationRepo.AssertNotCalled(suite.T(), "DeleteParticipation", mock.Anything, mock.Anything)
}

func (suite *ContractServiceTestSuite) TestListParticipations_NoEventReturnsEmpty() {
	ctx := context.Background()
	contract := suite.activeContract()

	suite.mockContractRepo.On("FindContractByID", ctx, contract.ContractID).Return(contract, nil).Once()
	suite.mockContractRepo.On("FindEventByContractID", ctx, contract.ContractID).Return(nil, apperrors.ErrNotFound).Once()

	participations, err := suite.service.ListParticipations(ctx, suite.requesterID, suite.orgID, contract.ContractID)

	suite.Require().NoError(err)
	suite.Empty(participations)
}

func TestContractServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContractServiceTestSuite))
}
