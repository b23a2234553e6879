package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edunova/backend/internal/app/models"
	"github.com/edunova/backend/internal/pkg/apperrors"
)

// ICourseResourceRepository defines the interface for course resource persistence.
type ICourseResourceRepository interface {
	Upsert(ctx context.Context, resource *models.CourseResource) (int64, error)
	GetByKey(ctx context.Context, subject, grade string) (*models.CourseResource, error)
	GetAll(ctx context.Context) ([]models.CourseResource, error)
	Delete(ctx context.Context, id int64) error
}

const courseResourceColumns = `id, subject, grade, resource_type, year, link,
	created_at, created_by, updated_at, updated_by`

// CourseResourceRepository handles database operations for course resources.
type CourseResourceRepository struct {
	db *pgxpool.Pool
}

// NewCourseResourceRepository creates a new CourseResourceRepository.
func NewCourseResourceRepository(db *pgxpool.Pool) *CourseResourceRepository {
	return &CourseResourceRepository{db: db}
}

// Upsert inserts a resource or, when the subject/grade pair already exists,
// overwrites its mutable fields in place. The row id stays stable across
// repeated upserts of the same pair.
func (r *CourseResourceRepository) Upsert(ctx context.Context, resource *models.CourseResource) (int64, error) {
	query := `
		INSERT INTO course_resources (subject, grade, resource_type, year, link, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (subject, grade) DO UPDATE SET
			resource_type = EXCLUDED.resource_type,
			year = EXCLUDED.year,
			link = EXCLUDED.link,
			updated_at = EXCLUDED.created_at,
			updated_by = EXCLUDED.created_by
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		resource.Subject, resource.Grade, resource.ResourceType,
		resource.Year, resource.Link, time.Now(), resource.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert course resource: %w", err)
	}

	return id, nil
}

// GetByKey retrieves a resource by its normalized subject/grade pair.
func (r *CourseResourceRepository) GetByKey(ctx context.Context, subject, grade string) (*models.CourseResource, error) {
	query := `SELECT ` + courseResourceColumns + ` FROM course_resources WHERE subject = $1 AND grade = $2`

	var res models.CourseResource
	err := r.db.QueryRow(ctx, query, subject, grade).Scan(
		&res.ID, &res.Subject, &res.Grade, &res.ResourceType, &res.Year, &res.Link,
		&res.CreatedAt, &res.CreatedBy, &res.UpdatedAt, &res.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseResourceNotFound
		}
		return nil, fmt.Errorf("failed to query course resource: %w", err)
	}

	return &res, nil
}

// GetAll retrieves every course resource ordered by subject then grade.
func (r *CourseResourceRepository) GetAll(ctx context.Context) ([]models.CourseResource, error) {
	query := `SELECT ` + courseResourceColumns + ` FROM course_resources ORDER BY subject ASC, grade ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query course resources: %w", err)
	}
	defer rows.Close()

	var resources []models.CourseResource
	for rows.Next() {
		var res models.CourseResource
		if err := rows.Scan(
			&res.ID, &res.Subject, &res.Grade, &res.ResourceType, &res.Year, &res.Link,
			&res.CreatedAt, &res.CreatedBy, &res.UpdatedAt, &res.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan course resource: %w", err)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return resources, nil
}

// Delete removes a course resource record.
func (r *CourseResourceRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM course_resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseResourceNotFound
	}
	return nil
}
