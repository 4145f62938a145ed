package service_test

import (
	"testing"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/mocks"
	"hackathon-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ApplicationServiceTestSuite defines the test suite for ApplicationService
type ApplicationServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAppRepo        *mocks.MockApplicationRepositoryInterface
	mockUserRepo       *mocks.MockUserRepositoryInterface
	applicationService *service.ApplicationService
}

// SetupTest sets up the test suite
func (suite *ApplicationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAppRepo = mocks.NewMockApplicationRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.applicationService = service.NewApplicationService(
		suite.mockAppRepo,
		suite.mockUserRepo,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *ApplicationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ApplicationServiceTestSuite) adminUser() *models.User {
	admin := &models.User{Role: models.UserRoleAdmin}
	admin.ID = uuid.New()
	return admin
}

func (suite *ApplicationServiceTestSuite) TestGetMyApplicationCreatesDraft() {
	userID := uuid.New()
	suite.mockAppRepo.EXPECT().GetByUserID(userID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockAppRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(
		func(application *models.Application) error {
			suite.Equal(userID, application.UserID)
			return nil
		},
	)

	application, err := suite.applicationService.GetMyApplication(userID)

	suite.NoError(err)
	suite.Equal(userID, application.UserID)
	suite.Nil(application.SubmittedAt)
}

func (suite *ApplicationServiceTestSuite) TestGetMyApplicationReturnsExisting() {
	userID := uuid.New()
	existing := &models.Application{UserID: userID, University: "MIT"}
	suite.mockAppRepo.EXPECT().GetByUserID(userID).Return(existing, nil)

	application, err := suite.applicationService.GetMyApplication(userID)

	suite.NoError(err)
	suite.Equal("MIT", application.University)
}

func (suite *ApplicationServiceTestSuite) TestSaveApplicationPatchesOnlyProvidedFields() {
	userID := uuid.New()
	existing := &models.Application{
		UserID:     userID,
		Country:    "Sweden",
		University: "KTH",
	}
	suite.mockAppRepo.EXPECT().GetByUserID(userID).Return(existing, nil)
	suite.mockAppRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	major := "Robotics"
	application, err := suite.applicationService.SaveApplication(userID, &service.SaveApplicationRequest{Major: &major})

	suite.NoError(err)
	suite.Equal("Robotics", application.Major)
	// Fields not in the patch are untouched.
	suite.Equal("Sweden", application.Country)
	suite.Equal("KTH", application.University)
}

func (suite *ApplicationServiceTestSuite) TestSaveApplicationAfterSubmissionRejected() {
	userID := uuid.New()
	submittedAt := time.Now().UTC()
	existing := &models.Application{UserID: userID, SubmittedAt: &submittedAt}
	suite.mockAppRepo.EXPECT().GetByUserID(userID).Return(existing, nil)

	country := "Norway"
	application, err := suite.applicationService.SaveApplication(userID, &service.SaveApplicationRequest{Country: &country})

	suite.Nil(application)
	suite.ErrorIs(err, apperrors.ErrAlreadySubmitted)
}

func (suite *ApplicationServiceTestSuite) TestSaveApplicationRejectsBadURL() {
	badURL := "not-a-url"
	application, err := suite.applicationService.SaveApplication(uuid.New(), &service.SaveApplicationRequest{GitHubURL: &badURL})

	suite.Nil(application)
	suite.Error(err)
}

func (suite *ApplicationServiceTestSuite) TestSubmitApplicationSuccess() {
	userID := uuid.New()
	existing := &models.Application{UserID: userID, University: "KTH", Country: "Sweden"}
	suite.mockAppRepo.EXPECT().GetByUserID(userID).Return(existing, nil)
	suite.mockAppRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(
		func(application *models.Application) error {
			suite.NotNil(application.SubmittedAt)
			return nil
		},
	)
	suite.mockUserRepo.EXPECT().SetApplicationStatus(userID, models.ApplicationStatusSubmitted).Return(nil)

	application, err := suite.applicationService.SubmitApplication(userID)

	suite.NoError(err)
	suite.NotNil(application.SubmittedAt)
}

func (suite *ApplicationServiceTestSuite) TestSubmitApplicationMissingRequiredFields() {
	userID := uuid.New()
	existing := &models.Application{UserID: userID, Country: "Sweden"}
	suite.mockAppRepo.EXPECT().GetByUserID(userID).Return(existing, nil)

	application, err := suite.applicationService.SubmitApplication(userID)

	suite.Nil(application)
	suite.True(apperrors.IsValidation(err))
}

func (suite *ApplicationServiceTestSuite) TestSubmitApplicationTwiceRejected() {
	userID := uuid.New()
	submittedAt := time.Now().UTC()
	existing := &models.Application{UserID: userID, SubmittedAt: &submittedAt}
	suite.mockAppRepo.EXPECT().GetByUserID(userID).Return(existing, nil)

	application, err := suite.applicationService.SubmitApplication(userID)

	suite.Nil(application)
	suite.ErrorIs(err, apperrors.ErrAlreadySubmitted)
}

func (suite *ApplicationServiceTestSuite) TestListApplicationsRequiresAdmin() {
	hacker := &models.User{Role: models.UserRoleHacker}
	hacker.ID = uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(hacker.ID).Return(hacker, nil)

	resp, err := suite.applicationService.ListApplications(hacker.ID, models.ApplicationStatusSubmitted, 1, 20)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotAdmin)
}

func (suite *ApplicationServiceTestSuite) TestListApplicationsClampsPagination() {
	admin := suite.adminUser()
	applicant := models.User{ApplicationStatus: models.ApplicationStatusSubmitted}
	applicant.ID = uuid.New()

	suite.mockUserRepo.EXPECT().GetByID(admin.ID).Return(admin, nil)
	// Page 0 and oversized page size fall back to page 1, size 20.
	suite.mockUserRepo.EXPECT().GetByApplicationStatus(models.ApplicationStatusSubmitted, 20, 0).
		Return([]models.User{applicant}, int64(1), nil)
	suite.mockAppRepo.EXPECT().GetByUserID(applicant.ID).Return(&models.Application{UserID: applicant.ID}, nil)

	resp, err := suite.applicationService.ListApplications(admin.ID, models.ApplicationStatusSubmitted, 0, 500)

	suite.NoError(err)
	suite.Equal(1, resp.Page)
	suite.Equal(20, resp.PageSize)
	suite.Equal(int64(1), resp.Total)
	suite.Len(resp.Applications, 1)
	suite.NotNil(resp.Applications[0].Application)
}

func (suite *ApplicationServiceTestSuite) TestDecideApplicationSuccess() {
	admin := suite.adminUser()
	target := &models.User{ApplicationStatus: models.ApplicationStatusSubmitted}
	target.ID = uuid.New()

	suite.mockUserRepo.EXPECT().GetByID(admin.ID).Return(admin, nil)
	suite.mockUserRepo.EXPECT().GetByID(target.ID).Return(target, nil)
	suite.mockUserRepo.EXPECT().SetApplicationStatus(target.ID, models.ApplicationStatusAccepted).Return(nil)

	err := suite.applicationService.DecideApplication(admin.ID, target.ID, &service.DecideApplicationRequest{
		Status: models.ApplicationStatusAccepted,
	})

	suite.NoError(err)
}

func (suite *ApplicationServiceTestSuite) TestDecideApplicationRejectsNonDecisionStatus() {
	admin := suite.adminUser()
	suite.mockUserRepo.EXPECT().GetByID(admin.ID).Return(admin, nil)

	err := suite.applicationService.DecideApplication(admin.ID, uuid.New(), &service.DecideApplicationRequest{
		Status: models.ApplicationStatusDraft,
	})

	suite.True(apperrors.IsValidation(err))
}

func (suite *ApplicationServiceTestSuite) TestDecideApplicationTargetNotFound() {
	admin := suite.adminUser()
	targetID := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(admin.ID).Return(admin, nil)
	suite.mockUserRepo.EXPECT().GetByID(targetID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.applicationService.DecideApplication(admin.ID, targetID, &service.DecideApplicationRequest{
		Status: models.ApplicationStatusRejected,
	})

	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestApplicationServiceTestSuite runs the test suite
func TestApplicationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationServiceTestSuite))
}
