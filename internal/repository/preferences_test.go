//go:build integration
// +build integration

package repository

import (
	"encoding/json"
	"testing"

	"hackathon-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PreferencesRepositoryTestSuite tests the PreferencesRepository
type PreferencesRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PreferencesRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *PreferencesRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewPreferencesRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PreferencesRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PreferencesRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PreferencesRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestUpsertCreates tests the first save of preferences
func (suite *PreferencesRepositoryTestSuite) TestUpsertCreates() {
	user := suite.factories.User.Create()
	err := suite.userRepo.Create(user)
	suite.NoError(err)

	preferences := suite.factories.Preferences.Create(user.ID)
	err = suite.repo.Upsert(preferences)
	suite.NoError(err)

	found, err := suite.repo.GetByUserID(user.ID)
	suite.NoError(err)
	suite.Equal("M", found.TShirtSize)
	suite.False(found.Completed)
}

// TestUpsertReplacesExisting tests that the save hits the same row, including jsonb
func (suite *PreferencesRepositoryTestSuite) TestUpsertReplacesExisting() {
	user := suite.factories.User.Create()
	err := suite.userRepo.Create(user)
	suite.NoError(err)

	preferences := suite.factories.Preferences.Create(user.ID)
	err = suite.repo.Upsert(preferences)
	suite.NoError(err)

	preferences.TShirtSize = "XL"
	preferences.MealChoices = json.RawMessage(`{"saturday":"falafel"}`)
	preferences.Completed = true
	err = suite.repo.Upsert(preferences)
	suite.NoError(err)

	found, err := suite.repo.GetByUserID(user.ID)
	suite.NoError(err)
	suite.Equal("XL", found.TShirtSize)
	suite.True(found.Completed)
	suite.JSONEq(`{"saturday":"falafel"}`, string(found.MealChoices))
}

// TestGetByUserIDNotFound tests lookup for a user with no preferences row
func (suite *PreferencesRepositoryTestSuite) TestGetByUserIDNotFound() {
	user := suite.factories.User.Create()
	err := suite.userRepo.Create(user)
	suite.NoError(err)

	_, err = suite.repo.GetByUserID(user.ID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestPreferencesRepositoryTestSuite runs the test suite
func TestPreferencesRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PreferencesRepositoryTestSuite))
}
