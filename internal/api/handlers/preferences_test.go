package handlers_test

import (
	"net/http"
	"testing"

	"hackathon-portal-backend/internal/api/handlers"
	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/mocks"
	"hackathon-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PreferencesHandlerTestSuite defines the test suite for PreferencesHandler
type PreferencesHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPreferencesServiceInterface
	handler     *handlers.PreferencesHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *PreferencesHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPreferencesServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPreferencesHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID.String())
		c.Next()
	})

	preferences := suite.httpSuite.Router.Group("/api/v1/preferences")
	{
		preferences.GET("/me", suite.handler.GetMyPreferences)
		preferences.PUT("/me", suite.handler.SavePreferences)
	}
}

// TearDownTest cleans up after each test
func (suite *PreferencesHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetMyPreferences tests the GetMyPreferences handler
func (suite *PreferencesHandlerTestSuite) TestGetMyPreferences() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &models.Preferences{UserID: suite.userID, TShirtSize: "M"}
		suite.mockService.EXPECT().GetMyPreferences(suite.userID).Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/preferences/me", nil)

		var response models.Preferences
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		suite.Equal("M", response.TShirtSize)
	})

	suite.T().Run("NotAccepted", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetMyPreferences(suite.userID).
			Return(nil, apperrors.ErrNotAccepted)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/preferences/me", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "accepted participants")
	})
}

// TestSavePreferences tests the SavePreferences handler
func (suite *PreferencesHandlerTestSuite) TestSavePreferences() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &models.Preferences{UserID: suite.userID, TShirtSize: "L", Completed: true}
		suite.mockService.EXPECT().
			SavePreferences(suite.userID, gomock.Any()).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/preferences/me", map[string]interface{}{
			"tshirt_size": "L",
			"completed":   true,
		})

		var response models.Preferences
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		suite.Equal("L", response.TShirtSize)
		suite.True(response.Completed)
	})

	suite.T().Run("InvalidSize", func(t *testing.T) {
		suite.mockService.EXPECT().
			SavePreferences(suite.userID, gomock.Any()).
			Return(nil, apperrors.NewValidationError("tshirt_size", "must be one of XS, S, M, L, XL, XXL"))

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/preferences/me", map[string]interface{}{
			"tshirt_size": "XXXL",
		})

		suite.Equal(http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("InvalidJSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/preferences/me", "not-json")

		suite.Equal(http.StatusBadRequest, recorder.Code)
	})
}

// TestPreferencesHandlerTestSuite runs the test suite
func TestPreferencesHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PreferencesHandlerTestSuite))
}
