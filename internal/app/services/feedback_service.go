package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/edunova/backend/internal/app/models"
	"github.com/edunova/backend/internal/app/models/dto"
	"github.com/edunova/backend/internal/app/repositories"
	"github.com/edunova/backend/internal/pkg/apperrors"
	"github.com/edunova/backend/internal/pkg/helpers"
)

// Bounds for the reviewed-entries listing on the public surface.
const (
	defaultPublicFeedbackLimit = 20
	maxPublicFeedbackLimit     = 100
)

// FeedbackService defines the interface for feedback operations
type FeedbackService interface {
	SubmitFeedback(ctx context.Context, req *dto.SubmitFeedbackRequest) (*models.Feedback, error)
	ListFeedback(ctx context.Context, query *dto.FeedbackListQuery, page, pageSize int) (*dto.FeedbackListResponse, error)
	ListPublicFeedback(ctx context.Context, limit int) ([]models.Feedback, error)
	UpdateFeedbackStatus(ctx context.Context, id int64, status string, updatedBy int64) (*models.Feedback, error)
	DeleteFeedback(ctx context.Context, id int64) error
	GetStats(ctx context.Context) (*models.FeedbackStats, error)
}

// feedbackServiceImpl implements FeedbackService
type feedbackServiceImpl struct {
	feedbackRepo repositories.IFeedbackRepository
	logger       zerolog.Logger
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(feedbackRepo repositories.IFeedbackRepository, logger zerolog.Logger) FeedbackService {
	return &feedbackServiceImpl{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// SubmitFeedback records a public feedback submission. New entries always
// start in the pending state regardless of what the caller sends.
func (s *feedbackServiceImpl) SubmitFeedback(ctx context.Context, req *dto.SubmitFeedbackRequest) (*models.Feedback, error) {
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5")
	}

	feedback := &models.Feedback{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: req.Message,
		Rating:  req.Rating,
		Type:    req.Type,
		Status:  models.FeedbackStatusPending,
	}

	id, err := s.feedbackRepo.Create(ctx, feedback)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("feedbackId", id).Msg("Feedback submitted")

	return s.feedbackRepo.GetByID(ctx, id)
}

// ListFeedback retrieves feedback entries for the admin view.
func (s *feedbackServiceImpl) ListFeedback(ctx context.Context, query *dto.FeedbackListQuery, page, pageSize int) (*dto.FeedbackListResponse, error) {
	if query.Status != "" && !models.ValidFeedbackStatus(query.Status) {
		return nil, apperrors.ErrInvalidFeedbackStatus
	}

	feedbacks, total, err := s.feedbackRepo.List(ctx, query.Status, query.Type, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("error listing feedback: %w", err)
	}

	if feedbacks == nil {
		feedbacks = []models.Feedback{}
	}

	return &dto.FeedbackListResponse{
		Feedbacks:  feedbacks,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// ListPublicFeedback retrieves reviewed entries for the public site. The
// caller-supplied limit is clamped; out-of-range values fall back to the
// default.
func (s *feedbackServiceImpl) ListPublicFeedback(ctx context.Context, limit int) ([]models.Feedback, error) {
	if limit < 1 {
		limit = defaultPublicFeedbackLimit
	}
	if limit > maxPublicFeedbackLimit {
		limit = maxPublicFeedbackLimit
	}

	feedbacks, err := s.feedbackRepo.ListReviewed(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing reviewed feedback: %w", err)
	}
	if feedbacks == nil {
		feedbacks = []models.Feedback{}
	}
	return feedbacks, nil
}

// UpdateFeedbackStatus moves an entry through the moderation workflow and
// returns the fresh record.
func (s *feedbackServiceImpl) UpdateFeedbackStatus(ctx context.Context, id int64, status string, updatedBy int64) (*models.Feedback, error) {
	if !models.ValidFeedbackStatus(status) {
		return nil, apperrors.ErrInvalidFeedbackStatus
	}

	if err := s.feedbackRepo.UpdateStatus(ctx, id, status, updatedBy); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("feedbackId", id).Str("status", status).Msg("Feedback status updated")

	return s.feedbackRepo.GetByID(ctx, id)
}

// DeleteFeedback removes a feedback entry.
func (s *feedbackServiceImpl) DeleteFeedback(ctx context.Context, id int64) error {
	if err := s.feedbackRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("feedbackId", id).Msg("Feedback deleted")
	return nil
}

// GetStats returns current feedback aggregates.
func (s *feedbackServiceImpl) GetStats(ctx context.Context) (*models.FeedbackStats, error) {
	return s.feedbackRepo.Stats(ctx)
}
