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
	"github.com/edunova/backend/internal/pkg/dberrors"
)

// ICourseRepository defines the interface for course persistence.
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]models.Course, error)
	Update(ctx context.Context, id int64, patch *models.CoursePatch, updatedBy int64) error
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

const courseColumns = `id, name, code, description, duration, fee, capacity, status,
	created_at, created_by, updated_at, updated_by`

// CourseRepository handles database operations for courses.
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new course. Code uniqueness is enforced by the store.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	query := `
		INSERT INTO courses (name, code, description, duration, fee, capacity, status, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		course.Name, course.Code, course.Description, course.Duration,
		course.Fee, course.Capacity, course.Status, time.Now(), course.CreatedBy,
	).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrCourseCodeExists
		}
		return 0, fmt.Errorf("failed to create course: %w", err)
	}

	return id, nil
}

// GetByID retrieves a course by id.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	var c models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Code, &c.Description, &c.Duration, &c.Fee,
		&c.Capacity, &c.Status, &c.CreatedAt, &c.CreatedBy, &c.UpdatedAt, &c.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to query course: %w", err)
	}

	return &c, nil
}

// GetAll retrieves all courses, name ascending.
func (r *CourseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY name ASC, id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Code, &c.Description, &c.Duration, &c.Fee,
			&c.Capacity, &c.Status, &c.CreatedAt, &c.CreatedBy, &c.UpdatedAt, &c.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}

	return courses, rows.Err()
}

// Update applies a partial patch to a course.
func (r *CourseRepository) Update(ctx context.Context, id int64, patch *models.CoursePatch, updatedBy int64) error {
	update := r.sb.Update("courses").
		Set("updated_at", time.Now()).
		Set("updated_by", updatedBy).
		Where(squirrel.Eq{"id": id})

	if patch.Name != nil {
		update = update.Set("name", *patch.Name)
	}
	if patch.Code != nil {
		update = update.Set("code", *patch.Code)
	}
	if patch.Description != nil {
		update = update.Set("description", *patch.Description)
	}
	if patch.Duration != nil {
		update = update.Set("duration", *patch.Duration)
	}
	if patch.Fee != nil {
		update = update.Set("fee", *patch.Fee)
	}
	if patch.Capacity != nil {
		update = update.Set("capacity", *patch.Capacity)
	}
	if patch.Status != nil {
		update = update.Set("status", *patch.Status)
	}

	querySQL, queryArgs, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	tag, err := r.db.Exec(ctx, querySQL, queryArgs...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("failed to update course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course record.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// CountByStatus counts courses in a given status.
func (r *CourseRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return count, nil
}
