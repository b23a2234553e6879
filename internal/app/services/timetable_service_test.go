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

func TestCreateEntry_DayNormalized(t *testing.T) {
	var created *models.TimetableEntry
	repo := &fakeTimetableRepo{
		CreateFn: func(ctx context.Context, entry *models.TimetableEntry) (int64, error) {
			created = entry
			return 1, nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (*models.TimetableEntry, error) {
			return &models.TimetableEntry{ID: id, Day: "monday"}, nil
		},
	}
	service := NewTimetableService(repo, nopLogger)

	entry, err := service.CreateEntry(context.Background(), &dto.CreateTimetableEntryRequest{
		Day:       " Monday ",
		StartTime: "09:00",
		EndTime:   "10:30",
		Subject:   "Maths",
		Grade:     "6",
		Room:      "A1",
	}, 2)
	require.NoError(t, err)
	assert.Equal(t, "monday", entry.Day)

	require.NotNil(t, created)
	assert.Equal(t, "monday", created.Day)
	assert.Equal(t, int64(2), created.CreatedBy)
}

func TestCreateEntry_Validation(t *testing.T) {
	service := NewTimetableService(&fakeTimetableRepo{}, nopLogger)

	_, err := service.CreateEntry(context.Background(), &dto.CreateTimetableEntryRequest{
		Day: "someday", StartTime: "09:00", EndTime: "10:00", Subject: "Maths", Grade: "6",
	}, 2)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = service.CreateEntry(context.Background(), &dto.CreateTimetableEntryRequest{
		Day: "monday", StartTime: "9am", EndTime: "10:00", Subject: "Maths", Grade: "6",
	}, 2)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// End must be strictly after start.
	_, err = service.CreateEntry(context.Background(), &dto.CreateTimetableEntryRequest{
		Day: "monday", StartTime: "10:00", EndTime: "10:00", Subject: "Maths", Grade: "6",
	}, 2)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = service.CreateEntry(context.Background(), &dto.CreateTimetableEntryRequest{
		Day: "monday", StartTime: "11:00", EndTime: "10:00", Subject: "Maths", Grade: "6",
	}, 2)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateEntry_PatchValidation(t *testing.T) {
	service := NewTimetableService(&fakeTimetableRepo{}, nopLogger)

	badDay := "funday"
	_, err := service.UpdateEntry(context.Background(), 1, &models.TimetableEntryPatch{Day: &badDay}, 2)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	badTime := "25:99"
	_, err = service.UpdateEntry(context.Background(), 1, &models.TimetableEntryPatch{StartTime: &badTime}, 2)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateEntry_DayLowerCasedInPatch(t *testing.T) {
	var gotPatch *models.TimetableEntryPatch
	repo := &fakeTimetableRepo{
		UpdateFn: func(ctx context.Context, id int64, patch *models.TimetableEntryPatch, updatedBy int64) error {
			gotPatch = patch
			return nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (*models.TimetableEntry, error) {
			return &models.TimetableEntry{ID: id}, nil
		},
	}
	service := NewTimetableService(repo, nopLogger)

	day := "FRIDAY"
	_, err := service.UpdateEntry(context.Background(), 1, &models.TimetableEntryPatch{Day: &day}, 2)
	require.NoError(t, err)
	require.NotNil(t, gotPatch)
	assert.Equal(t, "friday", *gotPatch.Day)
}

func TestGetTimetable_EmptyResult(t *testing.T) {
	repo := &fakeTimetableRepo{
		GetAllFn: func(ctx context.Context) ([]models.TimetableEntry, error) {
			return nil, nil
		},
	}
	service := NewTimetableService(repo, nopLogger)

	resp, err := service.GetTimetable(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp.Entries)
	assert.Empty(t, resp.Entries)
}

func TestDeleteEntry_NotFound(t *testing.T) {
	repo := &fakeTimetableRepo{
		DeleteFn: func(ctx context.Context, id int64) error {
			return apperrors.ErrTimetableEntryNotFound
		},
	}
	service := NewTimetableService(repo, nopLogger)

	err := service.DeleteEntry(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrTimetableEntryNotFound)
}
