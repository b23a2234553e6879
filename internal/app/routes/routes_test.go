package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edunova/backend/internal/app/controllers"
	"github.com/edunova/backend/internal/app/models"
	"github.com/edunova/backend/internal/middleware"
	"github.com/edunova/backend/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAdminRepo struct {
	admin *models.Admin
}

func (s *stubAdminRepo) Create(ctx context.Context, admin *models.Admin) (int64, error) {
	return 0, nil
}

func (s *stubAdminRepo) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	return s.admin, nil
}

func (s *stubAdminRepo) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return s.admin, nil
}

func (s *stubAdminRepo) UsernameOrEmailExists(ctx context.Context, username, email string) (bool, error) {
	return false, nil
}

func (s *stubAdminRepo) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

type stubSettingsService struct{}

func (s *stubSettingsService) GetSettings(ctx context.Context) (*models.AppSettings, error) {
	return &models.AppSettings{ID: 1, SiteName: "EduNova Institute"}, nil
}

func (s *stubSettingsService) UpdateSettings(ctx context.Context, patch *models.AppSettingsPatch, updatedBy int64) (*models.AppSettings, error) {
	return &models.AppSettings{ID: 1, SiteName: "EduNova Institute"}, nil
}

func newSettingsTestRouter(admin *models.Admin, jwtService *auth.JWTService) *gin.Engine {
	router := gin.New()
	SetupRouter(
		router,
		controllers.NewAuthController(nil),
		controllers.NewStudentController(nil),
		controllers.NewCourseController(nil),
		controllers.NewTeacherController(nil),
		controllers.NewTimetableController(nil),
		controllers.NewFeedbackController(nil),
		controllers.NewRegistrationLinkController(nil),
		controllers.NewCourseResourceController(nil),
		controllers.NewSettingsController(&stubSettingsService{}),
		controllers.NewDashboardController(nil),
		middleware.NewAuthMiddleware(jwtService, &stubAdminRepo{admin: admin}),
	)
	return router
}

func TestGetSettings_RequiresToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "routes-test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "edunova.test",
	})
	admin := &models.Admin{ID: 1, Username: "admin", IsActive: true}
	router := newSettingsTestRouter(admin, jwtService)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, _, err := jwtService.GenerateToken(admin)
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "EduNova Institute")
}
