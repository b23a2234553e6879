package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/edunova/backend/internal/app/models"
	"github.com/edunova/backend/internal/app/models/dto"
	"github.com/edunova/backend/internal/app/repositories"
)

// CourseResourceService defines the interface for course resource operations
type CourseResourceService interface {
	UpsertResource(ctx context.Context, req *dto.UpsertCourseResourceRequest, createdBy int64) (*models.CourseResource, error)
	ResolveResource(ctx context.Context, subject, grade string) (*models.CourseResource, error)
	ListResources(ctx context.Context) (*dto.CourseResourceListResponse, error)
	DeleteResource(ctx context.Context, id int64) error
}

// courseResourceServiceImpl implements CourseResourceService
type courseResourceServiceImpl struct {
	resourceRepo repositories.ICourseResourceRepository
	logger       zerolog.Logger
}

// NewCourseResourceService creates a new CourseResourceService
func NewCourseResourceService(resourceRepo repositories.ICourseResourceRepository, logger zerolog.Logger) CourseResourceService {
	return &courseResourceServiceImpl{
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// UpsertResource creates or replaces the resource for a subject/grade pair.
// The pair is normalized first, so "Maths"/"grade-6" and "maths"/"6" address
// the same record and repeated upserts keep its id.
func (s *courseResourceServiceImpl) UpsertResource(ctx context.Context, req *dto.UpsertCourseResourceRequest, createdBy int64) (*models.CourseResource, error) {
	subject, grade := models.NormalizeResourceKey(req.Subject, req.Grade)

	resource := &models.CourseResource{
		Subject:      subject,
		Grade:        grade,
		ResourceType: req.ResourceType,
		Year:         req.Year,
		Link:         req.Link,
		CreatedBy:    createdBy,
	}

	id, err := s.resourceRepo.Upsert(ctx, resource)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("resourceId", id).Str("subject", subject).Str("grade", grade).Msg("Course resource upserted")

	return s.resourceRepo.GetByKey(ctx, subject, grade)
}

// ResolveResource looks up the resource for a subject/grade pair after
// normalizing it.
func (s *courseResourceServiceImpl) ResolveResource(ctx context.Context, subject, grade string) (*models.CourseResource, error) {
	subject, grade = models.NormalizeResourceKey(subject, grade)
	return s.resourceRepo.GetByKey(ctx, subject, grade)
}

// ListResources retrieves every course resource.
func (s *courseResourceServiceImpl) ListResources(ctx context.Context) (*dto.CourseResourceListResponse, error) {
	resources, err := s.resourceRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing course resources: %w", err)
	}
	if resources == nil {
		resources = []models.CourseResource{}
	}
	return &dto.CourseResourceListResponse{Resources: resources}, nil
}

// DeleteResource removes a course resource.
func (s *courseResourceServiceImpl) DeleteResource(ctx context.Context, id int64) error {
	if err := s.resourceRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("resourceId", id).Msg("Course resource deleted")
	return nil
}
