package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edunova/backend/internal/app/models"
	"github.com/edunova/backend/internal/app/models/dto"
	"github.com/edunova/backend/internal/pkg/apperrors"
	"github.com/edunova/backend/internal/pkg/auth"
)

const testSecurityKey = "deployment-key"

func newTestAuthService(adminRepo *fakeAdminRepo) AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "edunova.test",
	})
	return NewAuthService(adminRepo, jwtService, testSecurityKey, nopLogger)
}

func storedAdmin(t *testing.T, password string, active bool) *models.Admin {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &models.Admin{
		ID:       1,
		Username: "admin",
		Email:    "admin@edunova.app",
		Password: hash,
		FullName: "Site Admin",
		Role:     "admin",
		IsActive: active,
	}
}

func TestLogin_Success(t *testing.T) {
	admin := storedAdmin(t, "correct-horse", true)
	repo := &fakeAdminRepo{
		GetByUsernameFn: func(ctx context.Context, username string) (*models.Admin, error) {
			assert.Equal(t, "admin", username)
			return admin, nil
		},
	}

	resp, err := newTestAuthService(repo).Login(context.Background(), &dto.LoginRequest{
		Username: "  admin  ",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, "admin", resp.Admin.Username)
	assert.Equal(t, int64(1), resp.Admin.ID)
}

func TestLogin_UnknownUsername(t *testing.T) {
	repo := &fakeAdminRepo{
		GetByUsernameFn: func(ctx context.Context, username string) (*models.Admin, error) {
			return nil, apperrors.ErrAdminNotFound
		},
	}

	_, err := newTestAuthService(repo).Login(context.Background(), &dto.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	admin := storedAdmin(t, "correct-horse", true)
	repo := &fakeAdminRepo{
		GetByUsernameFn: func(ctx context.Context, username string) (*models.Admin, error) {
			return admin, nil
		},
	}

	_, err := newTestAuthService(repo).Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	admin := storedAdmin(t, "correct-horse", false)
	repo := &fakeAdminRepo{
		GetByUsernameFn: func(ctx context.Context, username string) (*models.Admin, error) {
			return admin, nil
		},
	}

	_, err := newTestAuthService(repo).Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestRegisterAdmin_Success(t *testing.T) {
	var created *models.Admin
	repo := &fakeAdminRepo{
		UsernameOrEmailExistsFn: func(ctx context.Context, username, email string) (bool, error) {
			return false, nil
		},
		CreateFn: func(ctx context.Context, admin *models.Admin) (int64, error) {
			created = admin
			return 7, nil
		},
	}

	resp, err := newTestAuthService(repo).RegisterAdmin(context.Background(), &dto.RegisterAdminRequest{
		Username:    "newadmin",
		Email:       "New.Admin@EduNova.app",
		Password:    "long-enough-pw",
		FullName:    "New Admin",
		SecurityKey: testSecurityKey,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.AdminID)

	require.NotNil(t, created)
	assert.Equal(t, "newadmin", created.Username)
	assert.Equal(t, "new.admin@edunova.app", created.Email)
	assert.Equal(t, "admin", created.Role)
	assert.True(t, created.IsActive)
	assert.True(t, auth.CheckPassword(created.Password, "long-enough-pw"))
}

func TestRegisterAdmin_MissingSecurityKey(t *testing.T) {
	_, err := newTestAuthService(&fakeAdminRepo{}).RegisterAdmin(context.Background(), &dto.RegisterAdminRequest{
		Username: "newadmin",
		Email:    "new@edunova.app",
		Password: "long-enough-pw",
		FullName: "New Admin",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegisterAdmin_WrongSecurityKey(t *testing.T) {
	_, err := newTestAuthService(&fakeAdminRepo{}).RegisterAdmin(context.Background(), &dto.RegisterAdminRequest{
		Username:    "newadmin",
		Email:       "new@edunova.app",
		Password:    "long-enough-pw",
		FullName:    "New Admin",
		SecurityKey: "not-the-key",
	})
	assert.ErrorIs(t, err, apperrors.ErrSecurityKeyWrong)
}

func TestRegisterAdmin_Duplicate(t *testing.T) {
	repo := &fakeAdminRepo{
		UsernameOrEmailExistsFn: func(ctx context.Context, username, email string) (bool, error) {
			return true, nil
		},
	}

	_, err := newTestAuthService(repo).RegisterAdmin(context.Background(), &dto.RegisterAdminRequest{
		Username:    "admin",
		Email:       "admin@edunova.app",
		Password:    "long-enough-pw",
		FullName:    "Site Admin",
		SecurityKey: testSecurityKey,
	})
	assert.ErrorIs(t, err, apperrors.ErrAdminExists)
}

func TestGetProfile(t *testing.T) {
	admin := storedAdmin(t, "pw-irrelevant", true)
	repo := &fakeAdminRepo{
		GetByIDFn: func(ctx context.Context, id int64) (*models.Admin, error) {
			assert.Equal(t, int64(1), id)
			return admin, nil
		},
	}

	profile, err := newTestAuthService(repo).GetProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "admin", profile.Username)
	assert.Equal(t, "Site Admin", profile.FullName)
}
