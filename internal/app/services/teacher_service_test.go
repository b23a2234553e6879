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

func TestCreateTeacher_EmailLowerCased(t *testing.T) {
	var created *models.Teacher
	repo := &fakeTeacherRepo{
		CreateFn: func(ctx context.Context, teacher *models.Teacher) (int64, error) {
			created = teacher
			return 3, nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (*models.Teacher, error) {
			return &models.Teacher{ID: id}, nil
		},
	}
	service := NewTeacherService(repo, nopLogger)

	_, err := service.CreateTeacher(context.Background(), &dto.CreateTeacherRequest{
		Name:    "Jordan Smith",
		Subject: "maths",
		Email:   " Jordan.Smith@EduNova.app ",
		Contact: "0700000000",
	}, 2)
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "jordan.smith@edunova.app", created.Email)
	assert.Equal(t, models.TeacherStatusActive, created.Status)
}

func TestCreateTeacher_UnknownStatus(t *testing.T) {
	service := NewTeacherService(&fakeTeacherRepo{}, nopLogger)

	_, err := service.CreateTeacher(context.Background(), &dto.CreateTeacherRequest{
		Name: "Jordan Smith", Subject: "maths", Email: "j@edunova.app", Status: "retired",
	}, 2)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateTeacher_DuplicateEmail(t *testing.T) {
	repo := &fakeTeacherRepo{
		CreateFn: func(ctx context.Context, teacher *models.Teacher) (int64, error) {
			return 0, apperrors.ErrTeacherEmailExists
		},
	}
	service := NewTeacherService(repo, nopLogger)

	_, err := service.CreateTeacher(context.Background(), &dto.CreateTeacherRequest{
		Name: "Jordan Smith", Subject: "maths", Email: "j@edunova.app",
	}, 2)
	assert.ErrorIs(t, err, apperrors.ErrTeacherEmailExists)
}

func TestListTeachers(t *testing.T) {
	repo := &fakeTeacherRepo{
		ListFn: func(ctx context.Context, search, subject, status string, page, pageSize int) ([]models.Teacher, int64, error) {
			assert.Equal(t, "jordan", search)
			assert.Equal(t, "maths", subject)
			return []models.Teacher{{ID: 1}}, 1, nil
		},
	}
	service := NewTeacherService(repo, nopLogger)

	resp, err := service.ListTeachers(context.Background(), &dto.TeacherListQuery{
		Search:  "jordan",
		Subject: "maths",
	}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, resp.Teachers, 1)
	assert.Equal(t, int64(1), resp.Pagination.TotalItems)
}

func TestUpdateTeacher_EmailNormalizedInPatch(t *testing.T) {
	var gotPatch *models.TeacherPatch
	repo := &fakeTeacherRepo{
		UpdateFn: func(ctx context.Context, id int64, patch *models.TeacherPatch, updatedBy int64) error {
			gotPatch = patch
			return nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (*models.Teacher, error) {
			return &models.Teacher{ID: id}, nil
		},
	}
	service := NewTeacherService(repo, nopLogger)

	email := " New.Mail@EduNova.app "
	_, err := service.UpdateTeacher(context.Background(), 3, &models.TeacherPatch{Email: &email}, 2)
	require.NoError(t, err)
	require.NotNil(t, gotPatch)
	assert.Equal(t, "new.mail@edunova.app", *gotPatch.Email)
}
