package service_test

import (
	"testing"

	"tether-backend/internal/database/models"
	apperrors "tether-backend/internal/errors"
	"tether-backend/internal/mocks"
	"tether-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	userService  *service.UserService
	validator    *validator.Validate
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.userService = service.NewUserService(suite.mockUserRepo, suite.validator)
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) TestGetOrCreateByIdentity_ExistingUser() {
	existing := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "dana@test.com",
	}
	suite.mockUserRepo.EXPECT().GetByEmail("dana@test.com").Return(existing, nil)

	user, err := suite.userService.GetOrCreateByIdentity(&service.VerifiedIdentity{
		Email: "Dana@Test.com",
		Name:  "Dana",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), existing.ID, user.ID)
}

func (suite *UserServiceTestSuite) TestGetOrCreateByIdentity_CreatesLazily() {
	suite.mockUserRepo.EXPECT().GetByEmail("dana@test.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		assert.Equal(suite.T(), "dana@test.com", user.Email)
		assert.Equal(suite.T(), "Dana", user.DisplayName)
		assert.Equal(suite.T(), models.MemberRoleDev, user.Role)
		user.ID = uuid.New()
		return nil
	})

	user, err := suite.userService.GetOrCreateByIdentity(&service.VerifiedIdentity{
		Email:   "Dana@Test.com",
		Name:    "Dana",
		Picture: "https://example.com/p.png",
	})

	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, user.ID)
}

func (suite *UserServiceTestSuite) TestGetOrCreateByIdentity_InvalidEmail() {
	user, err := suite.userService.GetOrCreateByIdentity(&service.VerifiedIdentity{Email: "not-an-email"})

	assert.Nil(suite.T(), user)
	assert.Error(suite.T(), err)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	id := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.userService.GetUserByID(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *UserServiceTestSuite) TestGetUserByID_IncludesReputationLevel() {
	id := uuid.New()
	user := &models.User{
		BaseModel: models.BaseModel{ID: id},
		Email:     "dana@test.com",
		Stats:     models.UserStats{ReputationScore: 168},
	}
	suite.mockUserRepo.EXPECT().GetByID(id).Return(user, nil)

	resp, err := suite.userService.GetUserByID(id)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ReputationExcellent, resp.ReputationLevel)
	assert.NotNil(suite.T(), resp.Teams)
	assert.NotNil(suite.T(), resp.Badges)
}

func (suite *UserServiceTestSuite) TestSearchUsers_Success() {
	users := []models.User{{Email: "dana@test.com"}}
	suite.mockUserRepo.EXPECT().Search("dana", 20, 0).Return(users, int64(1), nil)

	resp, err := suite.userService.SearchUsers("dana", 20, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.Total)
	assert.Len(suite.T(), resp.Users, 1)
}

func (suite *UserServiceTestSuite) TestUpdateUser_Success() {
	id := uuid.New()
	user := &models.User{BaseModel: models.BaseModel{ID: id}, Email: "dana@test.com"}
	name := "Dana R"
	role := "PM"

	suite.mockUserRepo.EXPECT().GetByID(id).Return(user, nil)
	suite.mockUserRepo.EXPECT().Update(user).Return(nil)

	resp, err := suite.userService.UpdateUser(id, &service.UpdateUserRequest{
		DisplayName: &name,
		Role:        &role,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Dana R", resp.DisplayName)
	assert.Equal(suite.T(), "PM", resp.Role)
}

func (suite *UserServiceTestSuite) TestUpdateUser_InvalidRole() {
	id := uuid.New()
	user := &models.User{BaseModel: models.BaseModel{ID: id}}
	role := "WIZARD"

	suite.mockUserRepo.EXPECT().GetByID(id).Return(user, nil)

	resp, err := suite.userService.UpdateUser(id, &service.UpdateUserRequest{Role: &role})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestIncrementLinkStats_FirstLinkBadge() {
	id := uuid.New()
	user := &models.User{BaseModel: models.BaseModel{ID: id}}

	suite.mockUserRepo.EXPECT().GetByID(id).Return(user, nil)
	suite.mockUserRepo.EXPECT().Update(user).Return(nil)

	resp, err := suite.userService.IncrementLinkStats(id)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Stats.TotalLinks)
	assert.Len(suite.T(), resp.Badges, 1)
	assert.Equal(suite.T(), models.UserBadgeFirstLink, resp.Badges[0].Type)
}

func (suite *UserServiceTestSuite) TestIncrementLinkStats_CenturionBadge() {
	id := uuid.New()
	user := &models.User{BaseModel: models.BaseModel{ID: id}}
	user.Stats.TotalLinks = 99
	user.AwardBadge(models.UserBadgeFirstLink, "Created a first link")

	suite.mockUserRepo.EXPECT().GetByID(id).Return(user, nil)
	suite.mockUserRepo.EXPECT().Update(user).Return(nil)

	resp, err := suite.userService.IncrementLinkStats(id)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 100, resp.Stats.TotalLinks)
	assert.Len(suite.T(), resp.Badges, 2)
	assert.Equal(suite.T(), models.UserBadgeCenturion, resp.Badges[1].Type)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
