package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/edunova/backend/internal/app/models"
	"github.com/edunova/backend/internal/app/models/dto"
	"github.com/edunova/backend/internal/app/repositories"
	"github.com/edunova/backend/internal/pkg/apperrors"
	"github.com/edunova/backend/internal/pkg/helpers"
)

// StudentService defines the interface for student operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest, createdBy int64) (*models.Student, error)
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	ListStudents(ctx context.Context, query *dto.StudentListQuery, page, pageSize int) (*dto.StudentListResponse, error)
	UpdateStudent(ctx context.Context, id int64, patch *models.StudentPatch, updatedBy int64) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	studentRepo repositories.IStudentRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.IStudentRepository, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// CreateStudent registers a new student record.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest, createdBy int64) (*models.Student, error) {
	status := req.Status
	if status == "" {
		status = models.StudentStatusActive
	}
	if !validStudentStatus(status) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown student status %q", status))
	}

	enrollmentDate := time.Now()
	if req.EnrollmentDate != nil && *req.EnrollmentDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.EnrollmentDate)
		if err != nil {
			return nil, apperrors.NewValidationError("enrollmentDate must be formatted YYYY-MM-DD")
		}
		enrollmentDate = parsed
	}

	student := &models.Student{
		FullName:       req.FullName,
		Email:          req.Email,
		StudentID:      req.StudentID,
		Course:         req.Course,
		Phone:          req.Phone,
		Address:        req.Address,
		DateOfBirth:    req.DateOfBirth,
		EnrollmentDate: enrollmentDate,
		Status:         status,
		CreatedBy:      createdBy,
	}

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", id).Str("email", student.Email).Msg("Student record created")

	return s.studentRepo.GetByID(ctx, id)
}

// GetStudent retrieves a student by id.
func (s *studentServiceImpl) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// ListStudents retrieves students matching the query with pagination.
func (s *studentServiceImpl) ListStudents(ctx context.Context, query *dto.StudentListQuery, page, pageSize int) (*dto.StudentListResponse, error) {
	if query.Status != "" && !validStudentStatus(query.Status) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown student status %q", query.Status))
	}

	students, total, err := s.studentRepo.List(ctx, query.Search, query.Status, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}

	if students == nil {
		students = []models.Student{}
	}

	return &dto.StudentListResponse{
		Students:   students,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// UpdateStudent applies a partial update and returns the fresh record.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, patch *models.StudentPatch, updatedBy int64) (*models.Student, error) {
	if patch.Status != nil && !validStudentStatus(*patch.Status) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown student status %q", *patch.Status))
	}

	if err := s.studentRepo.Update(ctx, id, patch, updatedBy); err != nil {
		return nil, err
	}

	return s.studentRepo.GetByID(ctx, id)
}

// DeleteStudent removes a student record.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("studentId", id).Msg("Student record deleted")
	return nil
}

func validStudentStatus(status string) bool {
	switch status {
	case models.StudentStatusActive, models.StudentStatusPending, models.StudentStatusCompleted:
		return true
	}
	return false
}
