//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"hackathon-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ApplicationRepositoryTestSuite tests the ApplicationRepository
type ApplicationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ApplicationRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ApplicationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewApplicationRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ApplicationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ApplicationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ApplicationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestUpsertCreates tests the first save of an application
func (suite *ApplicationRepositoryTestSuite) TestUpsertCreates() {
	user := suite.factories.User.Create()
	err := suite.userRepo.Create(user)
	suite.NoError(err)

	application := suite.factories.Application.Create(user.ID)
	err = suite.repo.Upsert(application)
	suite.NoError(err)

	found, err := suite.repo.GetByUserID(user.ID)
	suite.NoError(err)
	suite.Equal(application.University, found.University)
	suite.Nil(found.SubmittedAt)
}

// TestUpsertReplacesExisting tests that a second save hits the same row
func (suite *ApplicationRepositoryTestSuite) TestUpsertReplacesExisting() {
	user := suite.factories.User.Create()
	err := suite.userRepo.Create(user)
	suite.NoError(err)

	application := suite.factories.Application.Create(user.ID)
	err = suite.repo.Upsert(application)
	suite.NoError(err)

	application.Major = "Astrophysics"
	now := time.Now()
	application.SubmittedAt = &now
	err = suite.repo.Upsert(application)
	suite.NoError(err)

	found, err := suite.repo.GetByUserID(user.ID)
	suite.NoError(err)
	suite.Equal("Astrophysics", found.Major)
	suite.NotNil(found.SubmittedAt)
}

// TestGetByUserIDNotFound tests lookup for a user with no application
func (suite *ApplicationRepositoryTestSuite) TestGetByUserIDNotFound() {
	user := suite.factories.User.Create()
	err := suite.userRepo.Create(user)
	suite.NoError(err)

	_, err = suite.repo.GetByUserID(user.ID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestApplicationRepositoryTestSuite runs the test suite
func TestApplicationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationRepositoryTestSuite))
}
