package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edunova/backend/internal/app/models"
	"github.com/edunova/backend/internal/pkg/apperrors"
)

// ITimetableRepository defines the interface for timetable persistence.
type ITimetableRepository interface {
	Create(ctx context.Context, entry *models.TimetableEntry) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.TimetableEntry, error)
	GetAll(ctx context.Context) ([]models.TimetableEntry, error)
	Update(ctx context.Context, id int64, patch *models.TimetableEntryPatch, updatedBy int64) error
	Delete(ctx context.Context, id int64) error
}

const timetableColumns = `id, day, start_time, end_time, subject, grade, room,
	created_at, created_by, updated_at, updated_by`

// TimetableRepository handles database operations for timetable entries.
type TimetableRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTimetableRepository creates a new TimetableRepository.
func NewTimetableRepository(db *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new timetable entry.
func (r *TimetableRepository) Create(ctx context.Context, entry *models.TimetableEntry) (int64, error) {
	query := `
		INSERT INTO timetable_entries (day, start_time, end_time, subject, grade, room, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		entry.Day, entry.StartTime, entry.EndTime, entry.Subject,
		entry.Grade, entry.Room, time.Now(), entry.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create timetable entry: %w", err)
	}

	return id, nil
}

// GetByID retrieves a timetable entry by id.
func (r *TimetableRepository) GetByID(ctx context.Context, id int64) (*models.TimetableEntry, error) {
	query := `SELECT ` + timetableColumns + ` FROM timetable_entries WHERE id = $1`

	var e models.TimetableEntry
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Day, &e.StartTime, &e.EndTime, &e.Subject, &e.Grade, &e.Room,
		&e.CreatedAt, &e.CreatedBy, &e.UpdatedAt, &e.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTimetableEntryNotFound
		}
		return nil, fmt.Errorf("failed to query timetable entry: %w", err)
	}

	return &e, nil
}

// GetAll retrieves the full timetable ordered by weekday then start time.
func (r *TimetableRepository) GetAll(ctx context.Context) ([]models.TimetableEntry, error) {
	query := `SELECT ` + timetableColumns + ` FROM timetable_entries
		ORDER BY array_position(ARRAY['monday','tuesday','wednesday','thursday','friday','saturday','sunday'], day),
			start_time ASC, id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query timetable: %w", err)
	}
	defer rows.Close()

	var entries []models.TimetableEntry
	for rows.Next() {
		var e models.TimetableEntry
		if err := rows.Scan(
			&e.ID, &e.Day, &e.StartTime, &e.EndTime, &e.Subject, &e.Grade, &e.Room,
			&e.CreatedAt, &e.CreatedBy, &e.UpdatedAt, &e.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan timetable entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Update applies a partial patch to a timetable entry.
func (r *TimetableRepository) Update(ctx context.Context, id int64, patch *models.TimetableEntryPatch, updatedBy int64) error {
	update := r.sb.Update("timetable_entries").
		Set("updated_at", time.Now()).
		Set("updated_by", updatedBy).
		Where(squirrel.Eq{"id": id})

	if patch.Day != nil {
		update = update.Set("day", *patch.Day)
	}
	if patch.StartTime != nil {
		update = update.Set("start_time", *patch.StartTime)
	}
	if patch.EndTime != nil {
		update = update.Set("end_time", *patch.EndTime)
	}
	if patch.Subject != nil {
		update = update.Set("subject", *patch.Subject)
	}
	if patch.Grade != nil {
		update = update.Set("grade", *patch.Grade)
	}
	if patch.Room != nil {
		update = update.Set("room", *patch.Room)
	}

	querySQL, queryArgs, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update timetable query: %w", err)
	}

	tag, err := r.db.Exec(ctx, querySQL, queryArgs...)
	if err != nil {
		return fmt.Errorf("failed to update timetable entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTimetableEntryNotFound
	}

	return nil
}

// Delete removes a timetable entry.
func (r *TimetableRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM timetable_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete timetable entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTimetableEntryNotFound
	}
	return nil
}
