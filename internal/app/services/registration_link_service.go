package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edunova/backend/internal/app/models"
	"github.com/edunova/backend/internal/app/models/dto"
	"github.com/edunova/backend/internal/app/repositories"
	"github.com/edunova/backend/internal/pkg/apperrors"
)

// RegistrationLinkService defines the interface for registration link operations
type RegistrationLinkService interface {
	GetPublicLink(ctx context.Context) (*dto.PublicRegistrationLinkResponse, error)
	GetActiveLink(ctx context.Context) (*models.RegistrationLink, error)
	SetLink(ctx context.Context, req *dto.SetRegistrationLinkRequest, createdBy int64) (*models.RegistrationLink, error)
	DisableLink(ctx context.Context, updatedBy int64) error
}

// registrationLinkServiceImpl implements RegistrationLinkService
type registrationLinkServiceImpl struct {
	linkRepo repositories.IRegistrationLinkRepository
	logger   zerolog.Logger
}

// NewRegistrationLinkService creates a new RegistrationLinkService
func NewRegistrationLinkService(linkRepo repositories.IRegistrationLinkRepository, logger zerolog.Logger) RegistrationLinkService {
	return &registrationLinkServiceImpl{
		linkRepo: linkRepo,
		logger:   logger,
	}
}

// GetPublicLink returns the public view of the active link. A missing link is
// not an error for this surface; it reports unavailable instead.
func (s *registrationLinkServiceImpl) GetPublicLink(ctx context.Context) (*dto.PublicRegistrationLinkResponse, error) {
	link, err := s.linkRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrRegistrationLinkNotFound) {
			return &dto.PublicRegistrationLinkResponse{Available: false}, nil
		}
		return nil, fmt.Errorf("error getting registration link: %w", err)
	}

	return &dto.PublicRegistrationLinkResponse{
		Available: true,
		Link:      link.Link,
		Title:     link.Title,
	}, nil
}

// GetActiveLink returns the full active link record for the admin view.
func (s *registrationLinkServiceImpl) GetActiveLink(ctx context.Context) (*models.RegistrationLink, error) {
	return s.linkRepo.GetActive(ctx)
}

// SetLink replaces the active registration link.
func (s *registrationLinkServiceImpl) SetLink(ctx context.Context, req *dto.SetRegistrationLinkRequest, createdBy int64) (*models.RegistrationLink, error) {
	link := &models.RegistrationLink{
		Token:     uuid.New().String(),
		Title:     req.Title,
		Link:      req.Link,
		IsActive:  true,
		CreatedBy: createdBy,
	}

	id, err := s.linkRepo.Replace(ctx, link)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("linkId", id).Msg("Registration link replaced")

	return s.linkRepo.GetActive(ctx)
}

// DisableLink turns off the active registration link.
func (s *registrationLinkServiceImpl) DisableLink(ctx context.Context, updatedBy int64) error {
	if err := s.linkRepo.Deactivate(ctx, updatedBy); err != nil {
		return err
	}
	s.logger.Info().Msg("Registration link disabled")
	return nil
}
