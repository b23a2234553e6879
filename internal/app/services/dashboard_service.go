package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/edunova/backend/internal/app/models"
	"github.com/edunova/backend/internal/app/models/dto"
	"github.com/edunova/backend/internal/app/repositories"
)

// Window for the recent-registrations counter.
const recentRegistrationWindow = 7 * 24 * time.Hour

// Size of the recent activity feed.
const activityFeedLimit = 5

// DashboardService defines the interface for dashboard aggregates
type DashboardService interface {
	GetStats(ctx context.Context) (*dto.DashboardStats, error)
	GetActivity(ctx context.Context) (*dto.DashboardActivity, error)
}

// dashboardServiceImpl implements DashboardService
type dashboardServiceImpl struct {
	studentRepo  repositories.IStudentRepository
	courseRepo   repositories.ICourseRepository
	teacherRepo  repositories.ITeacherRepository
	feedbackRepo repositories.IFeedbackRepository
	logger       zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	studentRepo repositories.IStudentRepository,
	courseRepo repositories.ICourseRepository,
	teacherRepo repositories.ITeacherRepository,
	feedbackRepo repositories.IFeedbackRepository,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardServiceImpl{
		studentRepo:  studentRepo,
		courseRepo:   courseRepo,
		teacherRepo:  teacherRepo,
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// GetStats recomputes the dashboard aggregates from current state. Nothing
// here is cached; every call reflects the data as it stands.
func (s *dashboardServiceImpl) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	// The headline student count covers active students; the completion
	// rate is computed over every record regardless of status.
	allStudents, err := s.studentRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}

	activeStudents, err := s.studentRepo.CountByStatus(ctx, models.StudentStatusActive)
	if err != nil {
		return nil, fmt.Errorf("error counting active students: %w", err)
	}

	pending, err := s.studentRepo.CountByStatus(ctx, models.StudentStatusPending)
	if err != nil {
		return nil, fmt.Errorf("error counting pending students: %w", err)
	}

	completed, err := s.studentRepo.CountByStatus(ctx, models.StudentStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("error counting completed students: %w", err)
	}

	recent, err := s.studentRepo.CountCreatedSince(ctx, time.Now().Add(-recentRegistrationWindow))
	if err != nil {
		return nil, fmt.Errorf("error counting recent registrations: %w", err)
	}

	totalCourses, err := s.courseRepo.CountByStatus(ctx, models.CourseStatusActive)
	if err != nil {
		return nil, fmt.Errorf("error counting courses: %w", err)
	}

	totalTeachers, err := s.teacherRepo.CountByStatus(ctx, models.TeacherStatusActive)
	if err != nil {
		return nil, fmt.Errorf("error counting teachers: %w", err)
	}

	feedbackStats, err := s.feedbackRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error computing feedback stats: %w", err)
	}

	var completionRate float64
	if allStudents > 0 {
		completionRate = math.Round(float64(completed)/float64(allStudents)*10000) / 100
	}

	return &dto.DashboardStats{
		TotalStudents:        activeStudents,
		TotalCourses:         totalCourses,
		TotalTeachers:        totalTeachers,
		PendingRegistrations: pending,
		RecentRegistrations:  recent,
		CompletionRate:       completionRate,
		AverageRating:        feedbackStats.AverageRating,
	}, nil
}

// GetActivity retrieves the most recent students and feedback for the
// dashboard activity feed.
func (s *dashboardServiceImpl) GetActivity(ctx context.Context) (*dto.DashboardActivity, error) {
	students, err := s.studentRepo.Recent(ctx, activityFeedLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing recent students: %w", err)
	}
	feedbacks, err := s.feedbackRepo.Recent(ctx, activityFeedLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing recent feedback: %w", err)
	}

	if students == nil {
		students = []models.Student{}
	}
	if feedbacks == nil {
		feedbacks = []models.Feedback{}
	}

	return &dto.DashboardActivity{
		RecentStudents:  students,
		RecentFeedbacks: feedbacks,
	}, nil
}
