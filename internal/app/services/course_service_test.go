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

func TestCreateCourse_CodeUpperCased(t *testing.T) {
	var created *models.Course
	repo := &fakeCourseRepo{
		CreateFn: func(ctx context.Context, course *models.Course) (int64, error) {
			created = course
			return 5, nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (*models.Course, error) {
			return &models.Course{ID: id, Code: "MATH101"}, nil
		},
	}
	service := NewCourseService(repo, nopLogger)

	course, err := service.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Name:     "Mathematics",
		Code:     "  math101 ",
		Duration: "12 weeks",
		Fee:      150,
		Capacity: 30,
	}, 2)
	require.NoError(t, err)
	assert.Equal(t, "MATH101", course.Code)

	require.NotNil(t, created)
	assert.Equal(t, "MATH101", created.Code)
	assert.Equal(t, models.CourseStatusActive, created.Status)
	assert.Equal(t, int64(2), created.CreatedBy)
}

func TestCreateCourse_NegativeValues(t *testing.T) {
	service := NewCourseService(&fakeCourseRepo{}, nopLogger)

	_, err := service.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Name: "Mathematics", Code: "MATH101", Duration: "12 weeks", Fee: -1,
	}, 2)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = service.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Name: "Mathematics", Code: "MATH101", Duration: "12 weeks", Fee: 100, Capacity: -5,
	}, 2)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateCourse_DuplicateCode(t *testing.T) {
	repo := &fakeCourseRepo{
		CreateFn: func(ctx context.Context, course *models.Course) (int64, error) {
			return 0, apperrors.ErrCourseCodeExists
		},
	}
	service := NewCourseService(repo, nopLogger)

	_, err := service.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Name: "Mathematics", Code: "MATH101", Duration: "12 weeks", Fee: 150,
	}, 2)
	assert.ErrorIs(t, err, apperrors.ErrCourseCodeExists)
}

func TestUpdateCourse_PatchValidation(t *testing.T) {
	service := NewCourseService(&fakeCourseRepo{}, nopLogger)

	badFee := -10.0
	_, err := service.UpdateCourse(context.Background(), 5, &models.CoursePatch{Fee: &badFee}, 2)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	badStatus := "archived"
	_, err = service.UpdateCourse(context.Background(), 5, &models.CoursePatch{Status: &badStatus}, 2)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateCourse_CodeNormalizedInPatch(t *testing.T) {
	var gotPatch *models.CoursePatch
	repo := &fakeCourseRepo{
		UpdateFn: func(ctx context.Context, id int64, patch *models.CoursePatch, updatedBy int64) error {
			gotPatch = patch
			return nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (*models.Course, error) {
			return &models.Course{ID: id}, nil
		},
	}
	service := NewCourseService(repo, nopLogger)

	code := " sci101 "
	_, err := service.UpdateCourse(context.Background(), 5, &models.CoursePatch{Code: &code}, 2)
	require.NoError(t, err)
	require.NotNil(t, gotPatch)
	assert.Equal(t, "SCI101", *gotPatch.Code)
}

func TestListCourses_EmptyResult(t *testing.T) {
	repo := &fakeCourseRepo{
		GetAllFn: func(ctx context.Context) ([]models.Course, error) {
			return nil, nil
		},
	}
	service := NewCourseService(repo, nopLogger)

	resp, err := service.ListCourses(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp.Courses)
	assert.Empty(t, resp.Courses)
}
