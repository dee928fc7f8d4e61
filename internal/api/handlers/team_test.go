package handlers_test

import (
	"net/http"
	"testing"

	"tether-backend/internal/api/handlers"
	apperrors "tether-backend/internal/errors"
	"tether-backend/internal/mocks"
	"tether-backend/internal/service"
	"tether-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TeamHandlerTestSuite struct {
	suite.Suite
	*testutils.HTTPTestSuite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	userID      uuid.UUID
}

func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.HTTPTestSuite = testutils.SetupHTTPTest()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.userID = uuid.New()

	handler := handlers.NewTeamHandler(suite.mockService)

	suite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID)
		c.Next()
	})
	suite.Router.POST("/teams", handler.CreateTeam)
	suite.Router.GET("/teams", handler.GetAllTeams)
	suite.Router.GET("/teams/:id", handler.GetTeam)
	suite.Router.PUT("/teams/:id", handler.UpdateTeam)
	suite.Router.DELETE("/teams/:id", handler.DeleteTeam)
	suite.Router.POST("/teams/:id/members", handler.AddMember)
	suite.Router.DELETE("/teams/:id/members/:userId", handler.RemoveMember)
	suite.Router.POST("/teams/:id/stats", handler.UpdateStats)
}

func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	teamID := uuid.New()
	suite.mockService.EXPECT().
		CreateTeam(suite.userID, gomock.Any()).
		DoAndReturn(func(ownerID uuid.UUID, req *service.CreateTeamRequest) (*service.TeamResponse, error) {
			assert.Equal(suite.T(), "Platform Crew", req.Name)
			return &service.TeamResponse{ID: teamID, Name: req.Name, OwnerID: ownerID}, nil
		})

	w := suite.MakeRequest(http.MethodPost, "/teams", gin.H{"name": "Platform Crew"})

	var resp service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &resp)
	assert.Equal(suite.T(), teamID, resp.ID)
	assert.Equal(suite.T(), suite.userID, resp.OwnerID)
}

func (suite *TeamHandlerTestSuite) TestCreateTeam_DuplicateName() {
	suite.mockService.EXPECT().
		CreateTeam(suite.userID, gomock.Any()).
		Return(nil, apperrors.NewAlreadyExistsError("team", "with this name"))

	w := suite.MakeRequest(http.MethodPost, "/teams", gin.H{"name": "Platform Crew"})
	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *TeamHandlerTestSuite) TestCreateTeam_InvalidBody() {
	w := suite.MakeRequest(http.MethodPost, "/teams", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TeamHandlerTestSuite) TestGetTeam() {
	teamID := uuid.New()
	suite.mockService.EXPECT().
		GetTeamByID(teamID).
		Return(&service.TeamResponse{ID: teamID, Name: "Platform Crew"}, nil)

	w := suite.MakeRequest(http.MethodGet, "/teams/"+teamID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Platform Crew")
}

func (suite *TeamHandlerTestSuite) TestGetTeam_NotFound() {
	teamID := uuid.New()
	suite.mockService.EXPECT().
		GetTeamByID(teamID).
		Return(nil, apperrors.NewNotFoundError("team"))

	w := suite.MakeRequest(http.MethodGet, "/teams/"+teamID.String(), nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "team not found")
}

func (suite *TeamHandlerTestSuite) TestGetTeam_InvalidID() {
	w := suite.MakeRequest(http.MethodGet, "/teams/not-a-uuid", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TeamHandlerTestSuite) TestGetAllTeams_Pagination() {
	suite.mockService.EXPECT().
		GetAllTeams(10, 20).
		Return(&service.TeamListResponse{Teams: []service.TeamResponse{}, Total: 0}, nil)

	w := suite.MakeRequest(http.MethodGet, "/teams?page=3&page_size=10", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *TeamHandlerTestSuite) TestGetAllTeams_InvalidPagination() {
	w := suite.MakeRequest(http.MethodGet, "/teams?page=0", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TeamHandlerTestSuite) TestUpdateTeam() {
	teamID := uuid.New()
	suite.mockService.EXPECT().
		UpdateTeam(teamID, gomock.Any()).
		DoAndReturn(func(id uuid.UUID, req *service.UpdateTeamRequest) (*service.TeamResponse, error) {
			suite.Require().NotNil(req.Status)
			assert.Equal(suite.T(), "PAUSED", *req.Status)
			return &service.TeamResponse{ID: id, Status: *req.Status}, nil
		})

	w := suite.MakeRequest(http.MethodPut, "/teams/"+teamID.String(), gin.H{"status": "PAUSED"})
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	teamID := uuid.New()
	suite.mockService.EXPECT().DeleteTeam(teamID).Return(nil)

	w := suite.MakeRequest(http.MethodDelete, "/teams/"+teamID.String(), nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *TeamHandlerTestSuite) TestAddMember() {
	teamID := uuid.New()
	memberID := uuid.New()
	suite.mockService.EXPECT().
		AddMember(teamID, gomock.Any()).
		DoAndReturn(func(id uuid.UUID, req *service.AddMemberRequest) (*service.TeamResponse, error) {
			assert.Equal(suite.T(), memberID, req.UserID)
			assert.Equal(suite.T(), "DEV", req.Role)
			return &service.TeamResponse{ID: id}, nil
		})

	w := suite.MakeRequest(http.MethodPost, "/teams/"+teamID.String()+"/members", gin.H{
		"user_id": memberID,
		"role":    "DEV",
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *TeamHandlerTestSuite) TestAddMember_InvalidRole() {
	teamID := uuid.New()
	suite.mockService.EXPECT().
		AddMember(teamID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("role", "invalid member role"))

	w := suite.MakeRequest(http.MethodPost, "/teams/"+teamID.String()+"/members", gin.H{
		"user_id": uuid.New(),
		"role":    "WIZARD",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TeamHandlerTestSuite) TestRemoveMember() {
	teamID := uuid.New()
	memberID := uuid.New()
	suite.mockService.EXPECT().
		RemoveMember(teamID, memberID).
		Return(&service.TeamResponse{ID: teamID}, nil)

	w := suite.MakeRequest(http.MethodDelete, "/teams/"+teamID.String()+"/members/"+memberID.String(), nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *TeamHandlerTestSuite) TestRemoveMember_InvalidUserID() {
	teamID := uuid.New()

	w := suite.MakeRequest(http.MethodDelete, "/teams/"+teamID.String()+"/members/not-a-uuid", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TeamHandlerTestSuite) TestUpdateStats() {
	teamID := uuid.New()
	suite.mockService.EXPECT().
		UpdateStats(teamID, gomock.Any()).
		DoAndReturn(func(id uuid.UUID, req *service.UpdateTeamStatsRequest) (*service.TeamResponse, error) {
			assert.Equal(suite.T(), 1, req.LinkDelta)
			assert.Equal(suite.T(), 8.0, req.ResponseTimeSample)
			return &service.TeamResponse{ID: id}, nil
		})

	w := suite.MakeRequest(http.MethodPost, "/teams/"+teamID.String()+"/stats", gin.H{
		"link_delta":           1,
		"response_time_sample": 8.0,
		"response_rate_value":  90.0,
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
