package services_test

import (
	"context"
	"testing"

	"github.com/eventstaff/esa_backend/internal/apperrors"
	"github.com/eventstaff/esa_backend/internal/core/domain"
	portssvc "github.com/eventstaff/esa_backend/internal/core/ports/services"
	"github.com/eventstaff/esa_backend/internal/core/services"
	"github.com/eventstaff/esa_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PersonnelServiceTestSuite struct {
	suite.Suite
	mockPersonnelRepo *MockPersonnelRepository
	mockUserRepo      *MockUserRepository
	mockAuthorizer    *MockAuthorizer
	service           portssvc.PersonnelSvcFacade

	orgID       string
	requesterID string
	admin       *domain.Personnel
}

func (suite *PersonnelServiceTestSuite) SetupTest() {
	suite.mockPersonnelRepo = new(MockPersonnelRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockAuthorizer = new(MockAuthorizer)
	suite.service = services.NewPersonnelService(suite.mockPersonnelRepo, suite.mockUserRepo, suite.mockAuthorizer)

	suite.orgID = uuid.NewString()
	suite.requesterID = uuid.NewString()
	suite.admin = &domain.Personnel{
		PersonnelID:    uuid.NewString(),
		OrganizationID: suite.orgID,
		Role:           domain.RoleAdmin,
	}
}

func (suite *PersonnelServiceTestSuite) authorizeAs(personnel *domain.Personnel, err error) {
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.requesterID, suite.orgID, mock.Anything).
		Return(personnel, err)
}

func (suite *PersonnelServiceTestSuite) TestCreatePersonnel_Success() {
	ctx := context.Background()
	suite.authorizeAs(suite.admin, nil)

	req := dto.CreatePersonnelRequest{
		Role:      domain.RoleOperational,
		FirstName: "Carla",
		LastName:  "Mendez",
		Email:     "carla@example.com",
	}
	suite.mockPersonnelRepo.On("FindPersonnelByEmail", ctx, suite.orgID, req.Email).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPersonnelRepo.On("SavePersonnel", ctx, mock.MatchedBy(func(p domain.Personnel) bool {
		return p.OrganizationID == suite.orgID && p.Email == req.Email && p.IsActive
	})).Return(nil).Once()

	personnel, err := suite.service.CreatePersonnel(ctx, suite.requesterID, suite.orgID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleOperational, personnel.Role)
	suite.NotEmpty(personnel.PersonnelID)
	suite.mockPersonnelRepo.AssertExpectations(suite.T())
}

func (suite *PersonnelServiceTestSuite) TestCreatePersonnel_Forbidden() {
	ctx := context.Background()
	suite.authorizeAs(nil, apperrors.ErrForbidden)

	personnel, err := suite.service.CreatePersonnel(ctx, suite.requesterID, suite.orgID, dto.CreatePersonnelRequest{})

	suite.Require().Error(err)
	suite.Nil(personnel)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockPersonnelRepo.AssertNotCalled(suite.T(), "SavePersonnel", mock.Anything, mock.Anything)
}

func (suite *PersonnelServiceTestSuite) TestGetPersonnelByID_WrongOrganization() {
	ctx := context.Background()
	suite.authorizeAs(suite.admin, nil)

	foreign := &domain.Personnel{PersonnelID: uuid.NewString(), OrganizationID: uuid.NewString()}
	suite.mockPersonnelRepo.On("FindPersonnelByID", ctx, foreign.PersonnelID).Return(foreign, nil).Once()

	personnel, err := suite.service.GetPersonnelByID(ctx, suite.requesterID, suite.orgID, foreign.PersonnelID)

	suite.Require().Error(err)
	suite.Nil(personnel)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PersonnelServiceTestSuite) TestDeactivatePersonnel_AlreadyInactive() {
	ctx := context.Background()
	suite.authorizeAs(suite.admin, nil)

	inactive := &domain.Personnel{
		PersonnelID:    uuid.NewString(),
		OrganizationID: suite.orgID,
		IsActive:       false,
	}
	suite.mockPersonnelRepo.On("FindPersonnelByID", ctx, inactive.PersonnelID).Return(inactive, nil).Once()

	err := suite.service.DeactivatePersonnel(ctx, suite.requesterID, suite.orgID, inactive.PersonnelID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockPersonnelRepo.AssertNotCalled(suite.T(), "UpdatePersonnel", mock.Anything, mock.Anything)
}

func (suite *PersonnelServiceTestSuite) TestProvisionUser_Success() {
	ctx := context.Background()
	suite.authorizeAs(suite.admin, nil)

	target := &domain.Personnel{
		PersonnelID:    uuid.NewString(),
		OrganizationID: suite.orgID,
		FirstName:      "Carla",
		LastName:       "Mendez",
		Email:          "carla@example.com",
		Role:           domain.RoleOperational,
		IsActive:       true,
	}
	suite.mockPersonnelRepo.On("FindPersonnelByID", ctx, target.PersonnelID).Return(target, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, target.Email).Return(nil, apperrors.ErrNotFound).Once()

	var savedUserID string
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		savedUserID = u.UserID
		return u.Email == target.Email && u.Name == "Carla Mendez"
	})).Return(nil).Once()
	suite.mockPersonnelRepo.On("LinkUser", ctx, target.PersonnelID, mock.AnythingOfType("string"), suite.requesterID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	personnel, err := suite.service.ProvisionUser(ctx, suite.requesterID, suite.orgID, target.PersonnelID, dto.ProvisionUserRequest{Password: "secret-pass-1"})

	suite.Require().NoError(err)
	suite.Require().NotNil(personnel.UserID)
	suite.Equal(savedUserID, *personnel.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "DeleteUser", mock.Anything, mock.Anything)
	suite.mockPersonnelRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *PersonnelServiceTestSuite) TestProvisionUser_LinkFailureRollsBackUser() {
	ctx := context.Background()
	suite.authorizeAs(suite.admin, nil)

	target := &domain.Personnel{
		PersonnelID:    uuid.NewString(),
		OrganizationID: suite.orgID,
		FirstName:      "Carla",
		LastName:       "Mendez",
		Email:          "carla@example.com",
		Role:           domain.RoleOperational,
		IsActive:       true,
	}
	linkErr := assert.AnError

	suite.mockPersonnelRepo.On("FindPersonnelByID", ctx, target.PersonnelID).Return(target, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, target.Email).Return(nil, apperrors.ErrNotFound).Once()

	var savedUserID string
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		savedUserID = u.UserID
		return true
	})).Return(nil).Once()
	suite.mockPersonnelRepo.On("LinkUser", ctx, target.PersonnelID, mock.AnythingOfType("string"), suite.requesterID, mock.AnythingOfType("time.Time")).
		Return(linkErr).Once()
	suite.mockUserRepo.On("DeleteUser", ctx, mock.MatchedBy(func(userID string) bool {
		return userID == savedUserID
	})).Return(nil).Once()

	personnel, err := suite.service.ProvisionUser(ctx, suite.requesterID, suite.orgID, target.PersonnelID, dto.ProvisionUserRequest{Password: "secret-pass-1"})

	suite.Require().Error(err)
	suite.Nil(personnel)
	suite.ErrorIs(err, linkErr)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockPersonnelRepo.AssertExpectations(suite.T())
}

func (suite *PersonnelServiceTestSuite) TestProvisionUser_AlreadyLinked() {
	ctx := context.Background()
	suite.authorizeAs(suite.admin, nil)

	existingUserID := uuid.NewString()
	target := &domain.Personnel{
		PersonnelID:    uuid.NewString(),
		OrganizationID: suite.orgID,
		UserID:         &existingUserID,
		Email:          "carla@example.com",
		Role:           domain.RoleOperational,
	}
	suite.mockPersonnelRepo.On("FindPersonnelByID", ctx, target.PersonnelID).Return(target, nil).Once()

	personnel, err := suite.service.ProvisionUser(ctx, suite.requesterID, suite.orgID, target.PersonnelID, dto.ProvisionUserRequest{Password: "secret-pass-1"})

	suite.Require().Error(err)
	suite.Nil(personnel)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *PersonnelServiceTestSuite) TestProvisionUser_AdminRoleRejected() {
	ctx := context.Background()
	suite.authorizeAs(suite.admin, nil)

	target := &domain.Personnel{
		PersonnelID:    uuid.NewString(),
		OrganizationID: suite.orgID,
		FirstName:      "Carla",
		LastName:       "Mendez",
		Email:          "carla@example.com",
		Role:           domain.RoleAdmin,
		IsActive:       true,
	}
	suite.mockPersonnelRepo.On("FindPersonnelByID", ctx, target.PersonnelID).Return(target, nil).Once()

	personnel, err := suite.service.ProvisionUser(ctx, suite.requesterID, suite.orgID, target.PersonnelID, dto.ProvisionUserRequest{Password: "secret-pass-1"})

	suite.Require().Error(err)
	suite.Nil(personnel)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *PersonnelServiceTestSuite) TestProvisionUser_NoEmail() {
	ctx := context.Background()
	suite.authorizeAs(suite.admin, nil)

	target := &domain.Personnel{
		PersonnelID:    uuid.NewString(),
		OrganizationID: suite.orgID,
		Email:          "",
		Role:           domain.RoleAdminSupport,
	}
	suite.mockPersonnelRepo.On("FindPersonnelByID", ctx, target.PersonnelID).Return(target, nil).Once()

	personnel, err := suite.service.ProvisionUser(ctx, suite.requesterID, suite.orgID, target.PersonnelID, dto.ProvisionUserRequest{Password: "secret-pass-1"})

	suite.Require().Error(err)
	suite.Nil(personnel)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestPersonnelServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PersonnelServiceTestSuite))
}
