package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edunova/backend/internal/app/models"
)

func dashboardFakes(allStudents, active, pending, completed, recent int64) (*fakeStudentRepo, *fakeCourseRepo, *fakeTeacherRepo, *fakeFeedbackRepo) {
	studentRepo := &fakeStudentRepo{
		CountAllFn: func(ctx context.Context) (int64, error) {
			return allStudents, nil
		},
		CountByStatusFn: func(ctx context.Context, status string) (int64, error) {
			switch status {
			case models.StudentStatusActive:
				return active, nil
			case models.StudentStatusPending:
				return pending, nil
			case models.StudentStatusCompleted:
				return completed, nil
			}
			return 0, nil
		},
		CountCreatedSinceFn: func(ctx context.Context, since time.Time) (int64, error) {
			return recent, nil
		},
		RecentFn: func(ctx context.Context, limit int) ([]models.Student, error) {
			return nil, nil
		},
	}
	courseRepo := &fakeCourseRepo{
		CountByStatusFn: func(ctx context.Context, status string) (int64, error) {
			return 6, nil
		},
	}
	teacherRepo := &fakeTeacherRepo{
		CountByStatusFn: func(ctx context.Context, status string) (int64, error) {
			return 4, nil
		},
	}
	feedbackRepo := &fakeFeedbackRepo{
		StatsFn: func(ctx context.Context) (*models.FeedbackStats, error) {
			return &models.FeedbackStats{Total: 10, AverageRating: 4.2}, nil
		},
		RecentFn: func(ctx context.Context, limit int) ([]models.Feedback, error) {
			return nil, nil
		},
	}
	return studentRepo, courseRepo, teacherRepo, feedbackRepo
}

func TestGetStats_CompletionRate(t *testing.T) {
	studentRepo, courseRepo, teacherRepo, feedbackRepo := dashboardFakes(30, 12, 5, 10, 3)
	courseRepo.CountByStatusFn = func(ctx context.Context, status string) (int64, error) {
		assert.Equal(t, models.CourseStatusActive, status)
		return 6, nil
	}
	service := NewDashboardService(studentRepo, courseRepo, teacherRepo, feedbackRepo, nopLogger)

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)
	// The headline count is active students, not every record.
	assert.Equal(t, int64(12), stats.TotalStudents)
	assert.Equal(t, int64(6), stats.TotalCourses)
	assert.Equal(t, int64(4), stats.TotalTeachers)
	assert.Equal(t, int64(5), stats.PendingRegistrations)
	assert.Equal(t, int64(3), stats.RecentRegistrations)
	// 10 of 30 total completed, rounded to two decimals.
	assert.InDelta(t, 33.33, stats.CompletionRate, 0.001)
	assert.InDelta(t, 4.2, stats.AverageRating, 0.001)
}

func TestGetStats_NoStudents(t *testing.T) {
	studentRepo, courseRepo, teacherRepo, feedbackRepo := dashboardFakes(0, 0, 0, 0, 0)
	courseRepo.CountByStatusFn = func(ctx context.Context, status string) (int64, error) {
		return 0, nil
	}
	service := NewDashboardService(studentRepo, courseRepo, teacherRepo, feedbackRepo, nopLogger)

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.CompletionRate)
}

func TestGetActivity(t *testing.T) {
	studentRepo, courseRepo, teacherRepo, feedbackRepo := dashboardFakes(0, 0, 0, 0, 0)
	studentRepo.RecentFn = func(ctx context.Context, limit int) ([]models.Student, error) {
		assert.Equal(t, activityFeedLimit, limit)
		return []models.Student{{ID: 1}}, nil
	}
	feedbackRepo.RecentFn = func(ctx context.Context, limit int) ([]models.Feedback, error) {
		assert.Equal(t, activityFeedLimit, limit)
		return []models.Feedback{{ID: 2}, {ID: 3}}, nil
	}
	service := NewDashboardService(studentRepo, courseRepo, teacherRepo, feedbackRepo, nopLogger)

	activity, err := service.GetActivity(context.Background())
	require.NoError(t, err)
	assert.Len(t, activity.RecentStudents, 1)
	assert.Len(t, activity.RecentFeedbacks, 2)
}

func TestGetActivity_EmptyFeeds(t *testing.T) {
	studentRepo, courseRepo, teacherRepo, feedbackRepo := dashboardFakes(0, 0, 0, 0, 0)
	service := NewDashboardService(studentRepo, courseRepo, teacherRepo, feedbackRepo, nopLogger)

	activity, err := service.GetActivity(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, activity.RecentStudents)
	assert.NotNil(t, activity.RecentFeedbacks)
}
