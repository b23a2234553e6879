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

func TestSubmitFeedback_AlwaysPending(t *testing.T) {
	var created *models.Feedback
	repo := &fakeFeedbackRepo{
		CreateFn: func(ctx context.Context, feedback *models.Feedback) (int64, error) {
			created = feedback
			return 21, nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (*models.Feedback, error) {
			return &models.Feedback{ID: id, Status: models.FeedbackStatusPending}, nil
		},
	}
	service := NewFeedbackService(repo, nopLogger)

	rating := 4
	feedback, err := service.SubmitFeedback(context.Background(), &dto.SubmitFeedbackRequest{
		Name:    "  Visitor  ",
		Email:   " visitor@example.com ",
		Message: "Great institution",
		Rating:  &rating,
		Type:    "praise",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21), feedback.ID)

	require.NotNil(t, created)
	assert.Equal(t, models.FeedbackStatusPending, created.Status)
	assert.Equal(t, "Visitor", created.Name)
	assert.Equal(t, "visitor@example.com", created.Email)
}

func TestSubmitFeedback_RatingOutOfRange(t *testing.T) {
	service := NewFeedbackService(&fakeFeedbackRepo{}, nopLogger)

	for _, rating := range []int{0, 6, -1} {
		r := rating
		_, err := service.SubmitFeedback(context.Background(), &dto.SubmitFeedbackRequest{
			Name:    "Visitor",
			Message: "hello",
			Rating:  &r,
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	}
}

func TestListFeedback_InvalidStatusFilter(t *testing.T) {
	service := NewFeedbackService(&fakeFeedbackRepo{}, nopLogger)

	_, err := service.ListFeedback(context.Background(), &dto.FeedbackListQuery{Status: "open"}, 1, 10)
	assert.ErrorIs(t, err, apperrors.ErrInvalidFeedbackStatus)
}

func TestListPublicFeedback_LimitHandling(t *testing.T) {
	var gotLimit int
	repo := &fakeFeedbackRepo{
		ListReviewedFn: func(ctx context.Context, limit int) ([]models.Feedback, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	service := NewFeedbackService(repo, nopLogger)

	// Zero and negative fall back to the default.
	feedbacks, err := service.ListPublicFeedback(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, defaultPublicFeedbackLimit, gotLimit)
	assert.NotNil(t, feedbacks)
	assert.Empty(t, feedbacks)

	_, err = service.ListPublicFeedback(context.Background(), -3)
	require.NoError(t, err)
	assert.Equal(t, defaultPublicFeedbackLimit, gotLimit)

	// An explicit limit is passed through.
	_, err = service.ListPublicFeedback(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, gotLimit)

	// Oversized limits are clamped.
	_, err = service.ListPublicFeedback(context.Background(), 10000)
	require.NoError(t, err)
	assert.Equal(t, maxPublicFeedbackLimit, gotLimit)
}

func TestUpdateFeedbackStatus(t *testing.T) {
	var gotStatus string
	var gotUpdatedBy int64
	repo := &fakeFeedbackRepo{
		UpdateStatusFn: func(ctx context.Context, id int64, status string, updatedBy int64) error {
			gotStatus = status
			gotUpdatedBy = updatedBy
			return nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (*models.Feedback, error) {
			return &models.Feedback{ID: id, Status: models.FeedbackStatusReviewed}, nil
		},
	}
	service := NewFeedbackService(repo, nopLogger)

	feedback, err := service.UpdateFeedbackStatus(context.Background(), 3, models.FeedbackStatusReviewed, 9)
	require.NoError(t, err)
	assert.Equal(t, models.FeedbackStatusReviewed, feedback.Status)
	assert.Equal(t, models.FeedbackStatusReviewed, gotStatus)
	assert.Equal(t, int64(9), gotUpdatedBy)
}

func TestUpdateFeedbackStatus_Invalid(t *testing.T) {
	service := NewFeedbackService(&fakeFeedbackRepo{}, nopLogger)

	_, err := service.UpdateFeedbackStatus(context.Background(), 3, "published", 9)
	assert.ErrorIs(t, err, apperrors.ErrInvalidFeedbackStatus)
}
