package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edunova/backend/internal/app/models"
	"github.com/edunova/backend/internal/app/models/dto"
	"github.com/edunova/backend/internal/pkg/apperrors"
)

func TestGetPublicLink_NoActiveLink(t *testing.T) {
	service := NewRegistrationLinkService(&fakeRegistrationLinkRepo{}, nopLogger)

	resp, err := service.GetPublicLink(context.Background())
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Empty(t, resp.Link)
}

func TestGetPublicLink_Active(t *testing.T) {
	repo := &fakeRegistrationLinkRepo{
		GetActiveFn: func(ctx context.Context) (*models.RegistrationLink, error) {
			return &models.RegistrationLink{
				ID:       1,
				Token:    "tok",
				Title:    "Spring intake",
				Link:     "https://forms.example.com/register",
				IsActive: true,
			}, nil
		},
	}
	service := NewRegistrationLinkService(repo, nopLogger)

	resp, err := service.GetPublicLink(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, "https://forms.example.com/register", resp.Link)
	assert.Equal(t, "Spring intake", resp.Title)
}

func TestSetLink_ReplacesActive(t *testing.T) {
	var replaced *models.RegistrationLink
	repo := &fakeRegistrationLinkRepo{
		ReplaceFn: func(ctx context.Context, link *models.RegistrationLink) (int64, error) {
			replaced = link
			return 5, nil
		},
		GetActiveFn: func(ctx context.Context) (*models.RegistrationLink, error) {
			return &models.RegistrationLink{ID: 5, Link: "https://forms.example.com/v2", IsActive: true}, nil
		},
	}
	service := NewRegistrationLinkService(repo, nopLogger)

	link, err := service.SetLink(context.Background(), &dto.SetRegistrationLinkRequest{
		Link:  "https://forms.example.com/v2",
		Title: "Autumn intake",
	}, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), link.ID)

	require.NotNil(t, replaced)
	assert.True(t, replaced.IsActive)
	assert.NotEmpty(t, replaced.Token)
	assert.Equal(t, int64(2), replaced.CreatedBy)
}

func TestDisableLink_NotFound(t *testing.T) {
	repo := &fakeRegistrationLinkRepo{
		DeactivateFn: func(ctx context.Context, updatedBy int64) error {
			return apperrors.ErrRegistrationLinkNotFound
		},
	}
	service := NewRegistrationLinkService(repo, nopLogger)

	err := service.DisableLink(context.Background(), 2)
	assert.ErrorIs(t, err, apperrors.ErrRegistrationLinkNotFound)
}
