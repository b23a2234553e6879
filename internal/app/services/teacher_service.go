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

// TeacherService defines the interface for teacher operations
type TeacherService interface {
	CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest, createdBy int64) (*models.Teacher, error)
	GetTeacher(ctx context.Context, id int64) (*models.Teacher, error)
	ListTeachers(ctx context.Context, query *dto.TeacherListQuery, page, pageSize int) (*dto.TeacherListResponse, error)
	UpdateTeacher(ctx context.Context, id int64, patch *models.TeacherPatch, updatedBy int64) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, id int64) error
}

// teacherServiceImpl implements TeacherService
type teacherServiceImpl struct {
	teacherRepo repositories.ITeacherRepository
	logger      zerolog.Logger
}

// NewTeacherService creates a new TeacherService
func NewTeacherService(teacherRepo repositories.ITeacherRepository, logger zerolog.Logger) TeacherService {
	return &teacherServiceImpl{
		teacherRepo: teacherRepo,
		logger:      logger,
	}
}

// CreateTeacher adds a new teaching staff record.
func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest, createdBy int64) (*models.Teacher, error) {
	status := req.Status
	if status == "" {
		status = models.TeacherStatusActive
	}
	if status != models.TeacherStatusActive && status != models.TeacherStatusInactive {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown teacher status %q", status))
	}

	teacher := &models.Teacher{
		Name:      req.Name,
		Subject:   req.Subject,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Contact:   req.Contact,
		Status:    status,
		CreatedBy: createdBy,
	}

	id, err := s.teacherRepo.Create(ctx, teacher)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("teacherId", id).Str("email", teacher.Email).Msg("Teacher record created")

	return s.teacherRepo.GetByID(ctx, id)
}

// GetTeacher retrieves a teacher by id.
func (s *teacherServiceImpl) GetTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	return s.teacherRepo.GetByID(ctx, id)
}

// ListTeachers retrieves teachers matching the query with pagination.
func (s *teacherServiceImpl) ListTeachers(ctx context.Context, query *dto.TeacherListQuery, page, pageSize int) (*dto.TeacherListResponse, error) {
	if query.Status != "" && query.Status != models.TeacherStatusActive && query.Status != models.TeacherStatusInactive {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown teacher status %q", query.Status))
	}

	teachers, total, err := s.teacherRepo.List(ctx, query.Search, query.Subject, query.Status, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("error listing teachers: %w", err)
	}

	if teachers == nil {
		teachers = []models.Teacher{}
	}

	return &dto.TeacherListResponse{
		Teachers:   teachers,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// UpdateTeacher applies a partial update and returns the fresh record.
func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, id int64, patch *models.TeacherPatch, updatedBy int64) (*models.Teacher, error) {
	if patch.Status != nil && *patch.Status != models.TeacherStatusActive && *patch.Status != models.TeacherStatusInactive {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown teacher status %q", *patch.Status))
	}
	if patch.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*patch.Email))
		patch.Email = &email
	}

	if err := s.teacherRepo.Update(ctx, id, patch, updatedBy); err != nil {
		return nil, err
	}

	return s.teacherRepo.GetByID(ctx, id)
}

// DeleteTeacher removes a teacher record.
func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id int64) error {
	if err := s.teacherRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("teacherId", id).Msg("Teacher record deleted")
	return nil
}
