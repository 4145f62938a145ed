//go:build integration
// +build integration

package repository

import (
	"testing"

	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamSearchRepositoryTestSuite tests the TeamSearchRepository
type TeamSearchRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamSearchRepository
	teamRepo      *TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamSearchRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamSearchRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamSearchRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamSearchRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamSearchRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByTeamID tests creating search settings for a team
func (suite *TeamSearchRepositoryTestSuite) TestCreateAndGetByTeamID() {
	team := suite.factories.Team.Create()
	err := suite.teamRepo.Create(nil, team)
	suite.NoError(err)

	search := suite.factories.TeamSearch.Create(team.ID)
	err = suite.repo.Create(nil, search)
	suite.NoError(err)

	found, err := suite.repo.GetByTeamID(team.ID)
	suite.NoError(err)
	suite.Equal(models.TeamSearchStatusHidden, found.Status)
}

// TestSetStatus tests flipping discoverability without touching other fields
func (suite *TeamSearchRepositoryTestSuite) TestSetStatus() {
	team := suite.factories.Team.Create()
	err := suite.teamRepo.Create(nil, team)
	suite.NoError(err)

	search := suite.factories.TeamSearch.Discoverable(team.ID)
	search.About = "come build with us"
	err = suite.repo.Create(nil, search)
	suite.NoError(err)

	err = suite.repo.SetStatus(nil, team.ID, models.TeamSearchStatusHidden)
	suite.NoError(err)

	found, err := suite.repo.GetByTeamID(team.ID)
	suite.NoError(err)
	suite.Equal(models.TeamSearchStatusHidden, found.Status)
	suite.Equal("come build with us", found.About)
}

// TestDelete tests removing search settings when a team disbands
func (suite *TeamSearchRepositoryTestSuite) TestDelete() {
	team := suite.factories.Team.Create()
	err := suite.teamRepo.Create(nil, team)
	suite.NoError(err)

	search := suite.factories.TeamSearch.Create(team.ID)
	err = suite.repo.Create(nil, search)
	suite.NoError(err)

	err = suite.repo.Delete(nil, team.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByTeamID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestTeamSearchRepositoryTestSuite runs the test suite
func TestTeamSearchRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamSearchRepositoryTestSuite))
}
