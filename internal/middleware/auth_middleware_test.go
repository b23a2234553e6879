package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edunova/backend/internal/app/models"
	"github.com/edunova/backend/internal/app/models/dto"
	"github.com/edunova/backend/internal/pkg/apperrors"
	"github.com/edunova/backend/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAdminRepo struct {
	admin *models.Admin
	err   error
}

func (s *stubAdminRepo) Create(ctx context.Context, admin *models.Admin) (int64, error) {
	return 0, nil
}

func (s *stubAdminRepo) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	return s.admin, s.err
}

func (s *stubAdminRepo) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return s.admin, s.err
}

func (s *stubAdminRepo) UsernameOrEmailExists(ctx context.Context, username, email string) (bool, error) {
	return false, nil
}

func (s *stubAdminRepo) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

func newTestRouter(jwtService *auth.JWTService, repo *stubAdminRepo) *gin.Engine {
	middleware := NewAuthMiddleware(jwtService, repo)
	router := gin.New()
	router.GET("/protected", middleware.JWTAuth(), func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"adminId": identity.AdminID, "username": identity.Username})
	})
	return router
}

func testJWTService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "middleware-test-secret",
		TokenExp:    exp,
		TokenIssuer: "edunova.test",
	})
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorCode {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error.Code
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtService := testJWTService(time.Hour)
	admin := &models.Admin{ID: 42, Username: "admin", IsActive: true}
	token, _, err := jwtService.GenerateToken(admin)
	require.NoError(t, err)

	router := newTestRouter(jwtService, &stubAdminRepo{admin: admin})
	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(42), body["adminId"])
	assert.Equal(t, "admin", body["username"])
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router := newTestRouter(testJWTService(time.Hour), &stubAdminRepo{})
	w := doRequest(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeUnauthorized, errorCode(t, w))
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	router := newTestRouter(testJWTService(time.Hour), &stubAdminRepo{})
	w := doRequest(router, "Bearer not-a-real-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeInvalidToken, errorCode(t, w))
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	jwtService := testJWTService(-time.Minute)
	admin := &models.Admin{ID: 42, Username: "admin", IsActive: true}
	token, _, err := jwtService.GenerateToken(admin)
	require.NoError(t, err)

	router := newTestRouter(jwtService, &stubAdminRepo{admin: admin})
	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeExpiredToken, errorCode(t, w))
}

func TestJWTAuth_DeletedAdmin(t *testing.T) {
	jwtService := testJWTService(time.Hour)
	admin := &models.Admin{ID: 42, Username: "admin", IsActive: true}
	token, _, err := jwtService.GenerateToken(admin)
	require.NoError(t, err)

	// The account behind a still-valid token no longer exists.
	router := newTestRouter(jwtService, &stubAdminRepo{err: apperrors.ErrAdminNotFound})
	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeInvalidToken, errorCode(t, w))
}

func TestJWTAuth_DisabledAdmin(t *testing.T) {
	jwtService := testJWTService(time.Hour)
	admin := &models.Admin{ID: 42, Username: "admin", IsActive: true}
	token, _, err := jwtService.GenerateToken(admin)
	require.NoError(t, err)

	disabled := &models.Admin{ID: 42, Username: "admin", IsActive: false}
	router := newTestRouter(jwtService, &stubAdminRepo{admin: disabled})
	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, dto.ErrorCodeAccountDisabled, errorCode(t, w))
}

func TestCurrentIdentity_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := CurrentIdentity(c)
	assert.False(t, ok)
}
