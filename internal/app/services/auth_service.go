package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/edunova/backend/internal/app/models"
	"github.com/edunova/backend/internal/app/models/dto"
	"github.com/edunova/backend/internal/app/repositories"
	"github.com/edunova/backend/internal/pkg/apperrors"
	"github.com/edunova/backend/internal/pkg/auth"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*dto.RegisterAdminResponse, error)
	GetProfile(ctx context.Context, adminID int64) (*dto.AdminProfile, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	adminRepo   repositories.IAdminRepository
	jwtService  *auth.JWTService
	securityKey string
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	adminRepo repositories.IAdminRepository,
	jwtService *auth.JWTService,
	securityKey string,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		adminRepo:   adminRepo,
		jwtService:  jwtService,
		securityKey: securityKey,
		logger:      logger,
	}
}

// Login verifies credentials and issues an access token. Unknown usernames
// and wrong passwords produce the same error so the response does not leak
// which accounts exist.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up admin: %w", err)
	}

	if !auth.CheckPassword(admin.Password, req.Password) {
		s.logger.Warn().Str("username", admin.Username).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	if !admin.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	token, expiresIn, err := s.jwtService.GenerateToken(admin)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Str("username", admin.Username).Int64("adminId", admin.ID).Msg("Admin logged in")

	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
		Admin:     toAdminProfile(admin),
	}, nil
}

// RegisterAdmin creates a new administrator account. Registration is gated
// by the deployment security key: a missing key is a validation failure, a
// wrong key is rejected outright.
func (s *authServiceImpl) RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*dto.RegisterAdminResponse, error) {
	if strings.TrimSpace(req.SecurityKey) == "" {
		return nil, apperrors.NewValidationError("security key is required")
	}
	if subtle.ConstantTimeCompare([]byte(req.SecurityKey), []byte(s.securityKey)) != 1 {
		s.logger.Warn().Str("username", req.Username).Msg("Admin registration rejected: wrong security key")
		return nil, apperrors.ErrSecurityKeyWrong
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.adminRepo.UsernameOrEmailExists(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("error checking admin existence: %w", err)
	}
	if exists {
		return nil, apperrors.ErrAdminExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = "admin"
	}

	admin := &models.Admin{
		Username: username,
		Email:    email,
		Password: hash,
		FullName: req.FullName,
		Role:     role,
		IsActive: true,
	}

	id, err := s.adminRepo.Create(ctx, admin)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Int64("adminId", id).Msg("Admin account registered")

	return &dto.RegisterAdminResponse{AdminID: id}, nil
}

// GetProfile returns the redacted profile of an administrator.
func (s *authServiceImpl) GetProfile(ctx context.Context, adminID int64) (*dto.AdminProfile, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	profile := toAdminProfile(admin)
	return &profile, nil
}

func toAdminProfile(admin *models.Admin) dto.AdminProfile {
	return dto.AdminProfile{
		ID:       admin.ID,
		Username: admin.Username,
		Email:    admin.Email,
		FullName: admin.FullName,
		Role:     admin.Role,
	}
}
