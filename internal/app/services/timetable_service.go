package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/edunova/backend/internal/app/models"
	"github.com/edunova/backend/internal/app/models/dto"
	"github.com/edunova/backend/internal/app/repositories"
	"github.com/edunova/backend/internal/pkg/apperrors"
)

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// TimetableService defines the interface for timetable operations
type TimetableService interface {
	CreateEntry(ctx context.Context, req *dto.CreateTimetableEntryRequest, createdBy int64) (*models.TimetableEntry, error)
	GetTimetable(ctx context.Context) (*dto.TimetableResponse, error)
	UpdateEntry(ctx context.Context, id int64, patch *models.TimetableEntryPatch, updatedBy int64) (*models.TimetableEntry, error)
	DeleteEntry(ctx context.Context, id int64) error
}

// timetableServiceImpl implements TimetableService
type timetableServiceImpl struct {
	timetableRepo repositories.ITimetableRepository
	logger        zerolog.Logger
}

// NewTimetableService creates a new TimetableService
func NewTimetableService(timetableRepo repositories.ITimetableRepository, logger zerolog.Logger) TimetableService {
	return &timetableServiceImpl{
		timetableRepo: timetableRepo,
		logger:        logger,
	}
}

// CreateEntry adds a new timetable slot.
func (s *timetableServiceImpl) CreateEntry(ctx context.Context, req *dto.CreateTimetableEntryRequest, createdBy int64) (*models.TimetableEntry, error) {
	day := strings.ToLower(strings.TrimSpace(req.Day))
	if !weekdays[day] {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown weekday %q", req.Day))
	}
	start, err := parseClockTime(req.StartTime)
	if err != nil {
		return nil, apperrors.NewValidationError("startTime must be formatted HH:MM")
	}
	end, err := parseClockTime(req.EndTime)
	if err != nil {
		return nil, apperrors.NewValidationError("endTime must be formatted HH:MM")
	}
	if !end.After(start) {
		return nil, apperrors.NewValidationError("endTime must be after startTime")
	}

	entry := &models.TimetableEntry{
		Day:       day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Subject:   req.Subject,
		Grade:     req.Grade,
		Room:      req.Room,
		CreatedBy: createdBy,
	}

	id, err := s.timetableRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("entryId", id).Str("day", day).Msg("Timetable entry created")

	return s.timetableRepo.GetByID(ctx, id)
}

// GetTimetable retrieves the full timetable in weekday order.
func (s *timetableServiceImpl) GetTimetable(ctx context.Context) (*dto.TimetableResponse, error) {
	entries, err := s.timetableRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing timetable: %w", err)
	}
	if entries == nil {
		entries = []models.TimetableEntry{}
	}
	return &dto.TimetableResponse{Entries: entries}, nil
}

// UpdateEntry applies a partial update and returns the fresh record.
func (s *timetableServiceImpl) UpdateEntry(ctx context.Context, id int64, patch *models.TimetableEntryPatch, updatedBy int64) (*models.TimetableEntry, error) {
	if patch.Day != nil {
		day := strings.ToLower(strings.TrimSpace(*patch.Day))
		if !weekdays[day] {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown weekday %q", *patch.Day))
		}
		patch.Day = &day
	}
	if patch.StartTime != nil {
		if _, err := parseClockTime(*patch.StartTime); err != nil {
			return nil, apperrors.NewValidationError("startTime must be formatted HH:MM")
		}
	}
	if patch.EndTime != nil {
		if _, err := parseClockTime(*patch.EndTime); err != nil {
			return nil, apperrors.NewValidationError("endTime must be formatted HH:MM")
		}
	}

	if err := s.timetableRepo.Update(ctx, id, patch, updatedBy); err != nil {
		return nil, err
	}

	return s.timetableRepo.GetByID(ctx, id)
}

// DeleteEntry removes a timetable slot.
func (s *timetableServiceImpl) DeleteEntry(ctx context.Context, id int64) error {
	if err := s.timetableRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("entryId", id).Msg("Timetable entry deleted")
	return nil
}

func parseClockTime(value string) (time.Time, error) {
	return time.Parse("15:04", value)
}
