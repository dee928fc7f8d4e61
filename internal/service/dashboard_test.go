package service_test

import (
	"testing"

	"tether-backend/internal/database/models"
	apperrors "tether-backend/internal/errors"
	"tether-backend/internal/mocks"
	"tether-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockTeamRepo     *mocks.MockTeamRepositoryInterface
	mockUserRepo     *mocks.MockUserRepositoryInterface
	mockLinkRepo     *mocks.MockLinkRepositoryInterface
	dashboardService *service.DashboardService
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockLinkRepo = mocks.NewMockLinkRepositoryInterface(suite.ctrl)
	suite.dashboardService = service.NewDashboardService(suite.mockTeamRepo, suite.mockUserRepo, suite.mockLinkRepo)
}

func (suite *DashboardServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DashboardServiceTestSuite) TestGetUserDashboard_Success() {
	userID := uuid.New()
	user := &models.User{
		BaseModel:   models.BaseModel{ID: userID},
		DisplayName: "Dana",
		Stats:       models.UserStats{ReputationScore: 125, TotalLinks: 5},
	}
	teams := []models.Team{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Platform", Status: models.TeamStatusActive},
	}
	links := []models.Link{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "Weekly sync", Status: models.LinkStatusCompleted},
	}

	suite.mockUserRepo.EXPECT().GetByID(userID).Return(user, nil)
	suite.mockTeamRepo.EXPECT().GetByUserID(userID).Return(teams, nil)
	suite.mockLinkRepo.EXPECT().GetByParticipant(userID, 10, 0).Return(links, int64(1), nil)

	resp, err := suite.dashboardService.GetUserDashboard(userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), userID, resp.UserID)
	assert.Equal(suite.T(), models.ReputationGood, resp.ReputationLevel)
	assert.Len(suite.T(), resp.Teams, 1)
	assert.Equal(suite.T(), "Platform", resp.Teams[0].Name)
	assert.Len(suite.T(), resp.RecentLinks, 1)
	assert.Equal(suite.T(), "Weekly sync", resp.RecentLinks[0].Title)
	assert.NotNil(suite.T(), resp.Badges)
}

func (suite *DashboardServiceTestSuite) TestGetUserDashboard_UserNotFound() {
	userID := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.dashboardService.GetUserDashboard(userID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *DashboardServiceTestSuite) TestGetTeamDashboard_Success() {
	teamID := uuid.New()
	badge := &models.TeamBadge{Type: models.TeamBadgeClearCommunicators}
	team := &models.Team{
		BaseModel:       models.BaseModel{ID: teamID},
		Name:            "Platform",
		Status:          models.TeamStatusActive,
		Stats:           models.TeamStats{TotalLinks: 12, ResponseRate: 80},
		ReputationBadge: badge,
	}
	links := []models.Link{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "Kickoff", Status: models.LinkStatusScheduled},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "Handoff", Status: models.LinkStatusPending},
	}

	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(team, nil)
	suite.mockLinkRepo.EXPECT().GetRecentByTeamID(teamID, 10).Return(links, nil)

	resp, err := suite.dashboardService.GetTeamDashboard(teamID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), teamID, resp.TeamID)
	assert.Equal(suite.T(), 12, resp.Stats.TotalLinks)
	assert.Equal(suite.T(), badge, resp.ReputationBadge)
	assert.Len(suite.T(), resp.RecentLinks, 2)
}

func (suite *DashboardServiceTestSuite) TestGetTeamDashboard_TeamNotFound() {
	teamID := uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.dashboardService.GetTeamDashboard(teamID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
