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
)

// CourseService defines the interface for course operations
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest, createdBy int64) (*models.Course, error)
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	ListCourses(ctx context.Context) (*dto.CourseListResponse, error)
	UpdateCourse(ctx context.Context, id int64, patch *models.CoursePatch, updatedBy int64) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo repositories.ICourseRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo repositories.ICourseRepository, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// CreateCourse adds a new course. Codes are stored upper-cased so lookups are
// case-insensitive.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest, createdBy int64) (*models.Course, error) {
	if req.Fee < 0 {
		return nil, apperrors.NewValidationError("fee cannot be negative")
	}
	if req.Capacity < 0 {
		return nil, apperrors.NewValidationError("capacity cannot be negative")
	}

	status := req.Status
	if status == "" {
		status = models.CourseStatusActive
	}
	if status != models.CourseStatusActive && status != models.CourseStatusInactive {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown course status %q", status))
	}

	course := &models.Course{
		Name:        req.Name,
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		Description: req.Description,
		Duration:    req.Duration,
		Fee:         req.Fee,
		Capacity:    req.Capacity,
		Status:      status,
		CreatedBy:   createdBy,
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseId", id).Str("code", course.Code).Msg("Course created")

	return s.courseRepo.GetByID(ctx, id)
}

// GetCourse retrieves a course by id.
func (s *courseServiceImpl) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// ListCourses retrieves all courses.
func (s *courseServiceImpl) ListCourses(ctx context.Context) (*dto.CourseListResponse, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return &dto.CourseListResponse{Courses: courses}, nil
}

// UpdateCourse applies a partial update and returns the fresh record.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, patch *models.CoursePatch, updatedBy int64) (*models.Course, error) {
	if patch.Fee != nil && *patch.Fee < 0 {
		return nil, apperrors.NewValidationError("fee cannot be negative")
	}
	if patch.Capacity != nil && *patch.Capacity < 0 {
		return nil, apperrors.NewValidationError("capacity cannot be negative")
	}
	if patch.Status != nil && *patch.Status != models.CourseStatusActive && *patch.Status != models.CourseStatusInactive {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown course status %q", *patch.Status))
	}
	if patch.Code != nil {
		code := strings.ToUpper(strings.TrimSpace(*patch.Code))
		patch.Code = &code
	}

	if err := s.courseRepo.Update(ctx, id, patch, updatedBy); err != nil {
		return nil, err
	}

	return s.courseRepo.GetByID(ctx, id)
}

// DeleteCourse removes a course record.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("courseId", id).Msg("Course deleted")
	return nil
}
