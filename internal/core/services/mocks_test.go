package services_test

import (
	"context"
	"time"

	"github.com/eventstaff/esa_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock OrganizationAuthorizerSvc ---

type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) AuthorizeUserAction(ctx context.Context, userID string, organizationID string, requiredRoles ...domain.PersonnelRole) (*domain.Personnel, error) {
	args := m.Called(ctx, userID, organizationID, requiredRoles)
	var personnel *domain.Personnel
	if args.Get(0) != nil {
		personnel = args.Get(0).(*domain.Personnel)
	}
	return personnel, args.Error(1)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiryTime *time.Time, updatedAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiryTime, updatedAt)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock PersonnelRepository ---

type MockPersonnelRepository struct {
	mock.Mock
}

func (m *MockPersonnelRepository) FindPersonnelByID(ctx context.Context, personnelID string) (*domain.Personnel, error) {
	args := m.Called(ctx, personnelID)
	var personnel *domain.Personnel
	if args.Get(0) != nil {
		personnel = args.Get(0).(*domain.Personnel)
	}
	return personnel, args.Error(1)
}

func (m *MockPersonnelRepository) FindPersonnelByUserID(ctx context.Context, organizationID, userID string) (*domain.Personnel, error) {
	args := m.Called(ctx, organizationID, userID)
	var personnel *domain.Personnel
	if args.Get(0) != nil {
		personnel = args.Get(0).(*domain.Personnel)
	}
	return personnel, args.Error(1)
}

func (m *MockPersonnelRepository) FindPersonnelByEmail(ctx context.Context, organizationID, email string) (*domain.Personnel, error) {
	args := m.Called(ctx, organizationID, email)
	var personnel *domain.Personnel
	if args.Get(0) != nil {
		personnel = args.Get(0).(*domain.Personnel)
	}
	return personnel, args.Error(1)
}

func (m *MockPersonnelRepository) ListPersonnelByOrganization(ctx context.Context, organizationID string, includeInactive bool) ([]domain.Personnel, error) {
	args := m.Called(ctx, organizationID, includeInactive)
	var list []domain.Personnel
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Personnel)
	}
	return list, args.Error(1)
}

func (m *MockPersonnelRepository) SavePersonnel(ctx context.Context, personnel domain.Personnel) error {
	args := m.Called(ctx, personnel)
	return args.Error(0)
}

func (m *MockPersonnelRepository) UpdatePersonnel(ctx context.Context, personnel domain.Personnel) error {
	args := m.Called(ctx, personnel)
	return args.Error(0)
}

func (m *MockPersonnelRepository) LinkUser(ctx context.Context, personnelID, userID, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, personnelID, userID, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock ContractorRepository ---

type MockContractorRepository struct {
	mock.Mock
}

func (m *MockContractorRepository) FindContractorByID(ctx context.Context, contractorID string) (*domain.Contractor, error) {
	args := m.Called(ctx, contractorID)
	var contractor *domain.Contractor
	if args.Get(0) != nil {
		contractor = args.Get(0).(*domain.Contractor)
	}
	return contractor, args.Error(1)
}

func (m *MockContractorRepository) ListContractorsByOrganization(ctx context.Context, organizationID string, includeInactive bool) ([]domain.Contractor, error) {
	args := m.Called(ctx, organizationID, includeInactive)
	var list []domain.Contractor
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Contractor)
	}
	return list, args.Error(1)
}

func (m *MockContractorRepository) SaveContractor(ctx context.Context, contractor domain.Contractor) error {
	args := m.Called(ctx, contractor)
	return args.Error(0)
}

func (m *MockContractorRepository) UpdateContractor(ctx context.Context, contractor domain.Contractor) error {
	args := m.Called(ctx, contractor)
	return args.Error(0)
}

// --- Mock ContractTypeRepository ---

type MockContractTypeRepository struct {
	mock.Mock
}

func (m *MockContractTypeRepository) FindContractTypeByID(ctx context.Context, contractTypeID string) (*domain.ContractType, error) {
	args := m.Called(ctx, contractTypeID)
	var ct *domain.ContractType
	if args.Get(0) != nil {
		ct = args.Get(0).(*domain.ContractType)
	}
	return ct, args.Error(1)
}

func (m *MockContractTypeRepository) ListContractTypesByOrganization(ctx context.Context, organizationID string, includeInactive bool) ([]domain.ContractType, error) {
	args := m.Called(ctx, organizationID, includeInactive)
	var list []domain.ContractType
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.ContractType)
	}
	return list, args.Error(1)
}

func (m *MockContractTypeRepository) SaveContractType(ctx context.Context, contractType domain.ContractType) error {
	args := m.Called(ctx, contractType)
	return args.Error(0)
}

func (m *MockContractTypeRepository) UpdateContractType(ctx context.Context, contractType domain.ContractType) error {
	args := m.Called(ctx, contractType)
	return args.Error(0)
}

// --- Mock ServiceTypeRepository ---

type MockServiceTypeRepository struct {
	mock.Mock
}

func (m *MockServiceTypeRepository) FindServiceTypeByID(ctx context.Context, serviceTypeID string) (*domain.ServiceType, error) {
	args := m.Called(ctx, serviceTypeID)
	var st *domain.ServiceType
	if args.Get(0) != nil {
		st = args.Get(0).(*domain.ServiceType)
	}
	return st, args.Error(1)
}

func (m *MockServiceTypeRepository) ListServiceTypesByOrganization(ctx context.Context, organizationID string, includeInactive bool) ([]domain.ServiceType, error) {
	args := m.Called(ctx, organizationID, includeInactive)
	var list []domain.ServiceType
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.ServiceType)
	}
	return list, args.Error(1)
}

func (m *MockServiceTypeRepository) SaveServiceType(ctx context.Context, serviceType domain.ServiceType) error {
	args := m.Called(ctx, serviceType)
	return args.Error(0)
}

func (m *MockServiceTypeRepository) UpdateServiceType(ctx context.Context, serviceType domain.ServiceType) error {
	args := m.Called(ctx, serviceType)
	return args.Error(0)
}

// --- Mock ContractRepository ---

type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) FindContractByID(ctx context.Context, contractID string) (*domain.Contract, error) {
	args := m.Called(ctx, contractID)
	var contract *domain.Contract
	if args.Get(0) != nil {
		contract = args.Get(0).(*domain.Contract)
	}
	return contract, args.Error(1)
}

func (m *MockContractRepository) ListContractsByOrganization(ctx context.Context, organizationID string, status *domain.ContractStatus, limit int, nextToken *string) ([]domain.Contract, *string, error) {
	args := m.Called(ctx, organizationID, status, limit, nextToken)
	var list []domain.Contract
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Contract)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return list, token, args.Error(2)
}

func (m *MockContractRepository) SaveContract(ctx context.Context, contract domain.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) UpdateContract(ctx context.Context, contract domain.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) UpdateContractStatus(ctx context.Context, contractID string, status domain.ContractStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, contractID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockContractRepository) FindEventByContractID(ctx context.Context, contractID string) (*domain.ContractEvent, error) {
	args := m.Called(ctx, contractID)
	var event *domain.ContractEvent
	if args.Get(0) != nil {
		event = args.Get(0).(*domain.ContractEvent)
	}
	return event, args.Error(1)
}

func (m *MockContractRepository) SaveContractEvent(ctx context.Context, event domain.ContractEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// --- Mock ParticipationRepository ---

type MockParticipationRepository struct {
	mock.Mock
}

func (m *MockParticipationRepository) FindParticipationByID(ctx context.Context, participationID string) (*domain.Participation, error) {
	args := m.Called(ctx, participationID)
	var participation *domain.Participation
	if args.Get(0) != nil {
		participation = args.Get(0).(*domain.Participation)
	}
	return participation, args.Error(1)
}

func (m *MockParticipationRepository) ListParticipationsByEvent(ctx context.Context, contractEventID string) ([]domain.Participation, error) {
	args := m.Called(ctx, contractEventID)
	var list []domain.Participation
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Participation)
	}
	return list, args.Error(1)
}

func (m *MockParticipationRepository) FindContractByParticipationID(ctx context.Context, participationID string) (*domain.Contract, error) {
	args := m.Called(ctx, participationID)
	var contract *domain.Contract
	if args.Get(0) != nil {
		contract = args.Get(0).(*domain.Contract)
	}
	return contract, args.Error(1)
}

func (m *MockParticipationRepository) SaveParticipation(ctx context.Context, participation domain.Participation) error {
	args := m.Called(ctx, participation)
	return args.Error(0)
}

func (m *MockParticipationRepository) UpdateAttendance(ctx context.Context, participationID string, attendance domain.AttendanceState, arrivalTime *time.Time, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, participationID, attendance, arrivalTime, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockParticipationRepository) DeleteParticipation(ctx context.Context, participationID string) error {
	args := m.Called(ctx, participationID)
	return args.Error(0)
}

func (m *MockParticipationRepository) FindAssignedServiceByID(ctx context.Context, assignedServiceID string) (*domain.AssignedService, error) {
	args := m.Called(ctx, assignedServiceID)
	var service *domain.AssignedService
	if args.Get(0) != nil {
		service = args.Get(0).(*domain.AssignedService)
	}
	return service, args.Error(1)
}

func (m *MockParticipationRepository) ListAssignedServicesByParticipation(ctx context.Context, participationID string) ([]domain.AssignedService, error) {
	args := m.Called(ctx, participationID)
	var list []domain.AssignedService
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.AssignedService)
	}
	return list, args.Error(1)
}

func (m *MockParticipationRepository) SaveAssignedService(ctx context.Context, service domain.AssignedService) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockParticipationRepository) UpdateAssignedServiceAmount(ctx context.Context, assignedServiceID string, amount decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, assignedServiceID, amount, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockParticipationRepository) DeleteAssignedService(ctx context.Context, assignedServiceID string) error {
	args := m.Called(ctx, assignedServiceID)
	return args.Error(0)
}

// --- Mock PaymentBatchRepository ---

type MockBatchRepository struct {
	mock.Mock
}

func (m *MockBatchRepository) ListPendingServicesByOrganization(ctx context.Context, organizationID string) ([]domain.AssignedService, error) {
	args := m.Called(ctx, organizationID)
	var list []domain.AssignedService
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.AssignedService)
	}
	return list, args.Error(1)
}

func (m *MockBatchRepository) FindPendingServicesByIDs(ctx context.Context, organizationID string, assignedServiceIDs []string) ([]domain.AssignedService, error) {
	args := m.Called(ctx, organizationID, assignedServiceIDs)
	var list []domain.AssignedService
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.AssignedService)
	}
	return list, args.Error(1)
}

func (m *MockBatchRepository) FindBatchByID(ctx context.Context, batchID string) (*domain.PaymentBatch, error) {
	args := m.Called(ctx, batchID)
	var batch *domain.PaymentBatch
	if args.Get(0) != nil {
		batch = args.Get(0).(*domain.PaymentBatch)
	}
	return batch, args.Error(1)
}

func (m *MockBatchRepository) ListBatchesByOrganization(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.PaymentBatch, *string, error) {
	args := m.Called(ctx, organizationID, limit, nextToken)
	var list []domain.PaymentBatch
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.PaymentBatch)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return list, token, args.Error(2)
}

func (m *MockBatchRepository) FindBatchDetails(ctx context.Context, batchID string) ([]domain.PaymentBatchDetail, error) {
	args := m.Called(ctx, batchID)
	var list []domain.PaymentBatchDetail
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.PaymentBatchDetail)
	}
	return list, args.Error(1)
}

func (m *MockBatchRepository) FindBatchPersonnel(ctx context.Context, batchID string) ([]domain.PaymentBatchPersonnel, error) {
	args := m.Called(ctx, batchID)
	var list []domain.PaymentBatchPersonnel
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.PaymentBatchPersonnel)
	}
	return list, args.Error(1)
}

func (m *MockBatchRepository) ListRollupsByPersonnel(ctx context.Context, organizationID, personnelID string) ([]domain.PaymentBatchPersonnel, error) {
	args := m.Called(ctx, organizationID, personnelID)
	var list []domain.PaymentBatchPersonnel
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.PaymentBatchPersonnel)
	}
	return list, args.Error(1)
}

func (m *MockBatchRepository) SaveBatch(ctx context.Context, batch domain.PaymentBatch, details []domain.PaymentBatchDetail, rollups []domain.PaymentBatchPersonnel) error {
	args := m.Called(ctx, batch, details, rollups)
	return args.Error(0)
}

func (m *MockBatchRepository) UpdateCollectionDone(ctx context.Context, batchID, personnelID string, done bool, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, batchID, personnelID, done, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockBatchRepository) FinalizeBatch(ctx context.Context, batch domain.PaymentBatch, paidServiceIDs, revertedServiceIDs []string, paidTotal decimal.Decimal, scheduledDate *time.Time, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, batch, paidServiceIDs, revertedServiceIDs, paidTotal, scheduledDate, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockBatchRepository) VoidBatch(ctx context.Context, batch domain.PaymentBatch, serviceIDs []string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, batch, serviceIDs, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockBatchRepository) UpdateBatchStatus(ctx context.Context, batchID string, status domain.BatchStatus, version int64, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, batchID, status, version, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockBatchRepository) UpdateScheduledDate(ctx context.Context, batchID string, scheduledDate time.Time, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, batchID, scheduledDate, updatedBy, updatedAt)
	return args.Error(0)
}
