package handlers_test

import (
	"net/http"
	"testing"

	"hackathon-portal-backend/internal/api/handlers"
	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/mocks"
	"hackathon-portal-backend/internal/service"
	"hackathon-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ApplicationHandlerTestSuite defines the test suite for ApplicationHandler
type ApplicationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockApplicationServiceInterface
	handler     *handlers.ApplicationHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ApplicationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockApplicationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewApplicationHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID.String())
		c.Next()
	})

	v1 := suite.httpSuite.Router.Group("/api/v1")
	applications := v1.Group("/applications")
	{
		applications.GET("/me", suite.handler.GetMyApplication)
		applications.PUT("/me", suite.handler.SaveApplication)
		applications.POST("/me/submit", suite.handler.SubmitApplication)
	}
	admin := v1.Group("/admin")
	{
		admin.GET("/applications", suite.handler.ListApplications)
		admin.PATCH("/applications/:userId/status", suite.handler.DecideApplication)
	}
}

// TearDownTest cleans up after each test
func (suite *ApplicationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetMyApplication tests the GetMyApplication handler
func (suite *ApplicationHandlerTestSuite) TestGetMyApplication() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &models.Application{UserID: suite.userID, University: "KTH"}
		suite.mockService.EXPECT().GetMyApplication(suite.userID).Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/applications/me", nil)

		var response models.Application
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		suite.Equal("KTH", response.University)
	})
}

// TestSaveApplication tests the SaveApplication handler
func (suite *ApplicationHandlerTestSuite) TestSaveApplication() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &models.Application{UserID: suite.userID, Major: "Robotics"}
		suite.mockService.EXPECT().
			SaveApplication(suite.userID, gomock.Any()).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/applications/me", map[string]interface{}{
			"major": "Robotics",
		})

		var response models.Application
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		suite.Equal("Robotics", response.Major)
	})

	suite.T().Run("AlreadySubmitted", func(t *testing.T) {
		suite.mockService.EXPECT().
			SaveApplication(suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrAlreadySubmitted)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/applications/me", map[string]interface{}{
			"country": "Norway",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "already been submitted")
	})
}

// TestSubmitApplication tests the SubmitApplication handler
func (suite *ApplicationHandlerTestSuite) TestSubmitApplication() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &models.Application{UserID: suite.userID}
		suite.mockService.EXPECT().SubmitApplication(suite.userID).Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/applications/me/submit", nil)

		suite.Equal(http.StatusOK, recorder.Code)
	})

	suite.T().Run("MissingRequiredFields", func(t *testing.T) {
		suite.mockService.EXPECT().
			SubmitApplication(suite.userID).
			Return(nil, apperrors.NewValidationError("university", "is required before submission"))

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/applications/me/submit", nil)

		suite.Equal(http.StatusBadRequest, recorder.Code)
	})
}

// TestListApplications tests the ListApplications handler
func (suite *ApplicationHandlerTestSuite) TestListApplications() {
	suite.T().Run("DefaultsToSubmitted", func(t *testing.T) {
		expected := &service.ApplicationListResponse{
			Applications: []service.ApplicationListEntry{},
			Total:        0,
			Page:         1,
			PageSize:     20,
		}
		suite.mockService.EXPECT().
			ListApplications(suite.userID, models.ApplicationStatusSubmitted, 1, 20).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/admin/applications", nil)

		var response service.ApplicationListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		suite.Equal(1, response.Page)
	})

	suite.T().Run("StatusFilterAndPaging", func(t *testing.T) {
		expected := &service.ApplicationListResponse{Page: 2, PageSize: 10}
		suite.mockService.EXPECT().
			ListApplications(suite.userID, models.ApplicationStatusAccepted, 2, 10).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest("GET",
			"/api/v1/admin/applications?status=accepted&page=2&page_size=10", nil)

		suite.Equal(http.StatusOK, recorder.Code)
	})

	suite.T().Run("NotAdmin", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListApplications(suite.userID, models.ApplicationStatusSubmitted, 1, 20).
			Return(nil, apperrors.ErrNotAdmin)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/admin/applications", nil)

		suite.Equal(http.StatusForbidden, recorder.Code)
	})
}

// TestDecideApplication tests the DecideApplication handler
func (suite *ApplicationHandlerTestSuite) TestDecideApplication() {
	suite.T().Run("Success", func(t *testing.T) {
		targetID := uuid.New()
		suite.mockService.EXPECT().
			DecideApplication(suite.userID, targetID, gomock.Any()).
			Return(nil)

		recorder := suite.httpSuite.MakeRequest("PATCH",
			"/api/v1/admin/applications/"+targetID.String()+"/status", map[string]interface{}{
				"status": "accepted",
			})

		suite.Equal(http.StatusOK, recorder.Code)
	})

	suite.T().Run("InvalidUUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("PATCH",
			"/api/v1/admin/applications/not-a-uuid/status", map[string]interface{}{
				"status": "accepted",
			})

		suite.Equal(http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("TargetNotFound", func(t *testing.T) {
		targetID := uuid.New()
		suite.mockService.EXPECT().
			DecideApplication(suite.userID, targetID, gomock.Any()).
			Return(apperrors.ErrUserNotFound)

		recorder := suite.httpSuite.MakeRequest("PATCH",
			"/api/v1/admin/applications/"+targetID.String()+"/status", map[string]interface{}{
				"status": "rejected",
			})

		suite.Equal(http.StatusNotFound, recorder.Code)
	})
}

// TestApplicationHandlerTestSuite runs the test suite
func TestApplicationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationHandlerTestSuite))
}
