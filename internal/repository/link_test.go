package repository_test

import (
	"testing"

	"tether-backend/internal/database/models"
	"tether-backend/internal/repository"
	"tether-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type LinkRepositoryTestSuite struct {
	*testutils.BaseTestSuite
	repo    *repository.LinkRepository
	factory *testutils.LinkFactory
}

func (suite *LinkRepositoryTestSuite) SetupSuite() {
	suite.repo = repository.NewLinkRepository(suite.DB)
	suite.factory = testutils.NewLinkFactory()
}

func (suite *LinkRepositoryTestSuite) TestCreateAndGetByID() {
	link := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(link))

	found, err := suite.repo.GetByID(link.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), link.Title, found.Title)
	assert.Equal(suite.T(), models.LinkStatusPending, found.Status)
	suite.Require().Len(found.Participants, 1)
	assert.Equal(suite.T(), models.ParticipantRoleInitiator, found.Participants[0].Role)
}

func (suite *LinkRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	assert.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)
}

func (suite *LinkRepositoryTestSuite) TestGetByTeamID() {
	teamID := uuid.New()
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.repo.Create(suite.factory.WithTeam(teamID)))
	}
	suite.Require().NoError(suite.repo.Create(suite.factory.Create()))

	links, total, err := suite.repo.GetByTeamID(teamID, 2, 0)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(3), total)
	assert.Len(suite.T(), links, 2)
}

func (suite *LinkRepositoryTestSuite) TestGetByParticipant_JSONBContainment() {
	userID := uuid.New()

	mine := suite.factory.WithParticipant(userID, models.ParticipantRoleParticipant)
	suite.Require().NoError(suite.repo.Create(mine))

	other := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(other))

	links, total, err := suite.repo.GetByParticipant(userID, 10, 0)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1), total)
	suite.Require().Len(links, 1)
	assert.Equal(suite.T(), mine.ID, links[0].ID)
}

func (suite *LinkRepositoryTestSuite) TestGetRecentByTeamID() {
	teamID := uuid.New()
	for i := 0; i < 4; i++ {
		suite.Require().NoError(suite.repo.Create(suite.factory.WithTeam(teamID)))
	}

	links, err := suite.repo.GetRecentByTeamID(teamID, 2)
	suite.Require().NoError(err)
	assert.Len(suite.T(), links, 2)
}

func (suite *LinkRepositoryTestSuite) TestUpdate_LifecycleAndMetricsPersisted() {
	link := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(link))

	found, err := suite.repo.GetByID(link.ID)
	suite.Require().NoError(err)
	suite.Require().NoError(found.Start())
	found.AddOutcome(models.OutcomeTypeActionItem, "Write the doc", nil, nil)
	suite.Require().NoError(found.UpdateOutcomeStatus(0, models.OutcomeStatusCompleted))
	suite.Require().NoError(suite.repo.Update(found))

	reloaded, err := suite.repo.GetByID(link.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.LinkStatusInProgress, reloaded.Status)
	suite.Require().Len(reloaded.Outcomes, 1)
	assert.Equal(suite.T(), models.OutcomeStatusCompleted, reloaded.Outcomes[0].Status)
	// BeforeSave recalculated the outcome metrics
	assert.Equal(suite.T(), 1, reloaded.Metrics.OutcomeCount)
	assert.InDelta(suite.T(), 100.0, reloaded.Metrics.CompletionRate, 0.001)
}

func (suite *LinkRepositoryTestSuite) TestDelete() {
	link := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(link))

	suite.Require().NoError(suite.repo.Delete(link.ID))

	_, err := suite.repo.GetByID(link.ID)
	assert.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)
}

func TestLinkRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, &LinkRepositoryTestSuite{BaseTestSuite: testutils.SetupTestSuite(t)})
}
