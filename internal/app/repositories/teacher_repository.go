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

// ITeacherRepository defines the interface for teacher persistence.
type ITeacherRepository interface {
	Create(ctx context.Context, teacher *models.Teacher) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	List(ctx context.Context, search, subject, status string, page, pageSize int) ([]models.Teacher, int64, error)
	Update(ctx context.Context, id int64, patch *models.TeacherPatch, updatedBy int64) error
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

const teacherColumns = `id, name, subject, email, contact, status,
	created_at, created_by, updated_at, updated_by`

// TeacherRepository handles database operations for teachers.
type TeacherRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new TeacherRepository.
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new teacher. Email uniqueness is enforced by the store.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) (int64, error) {
	query := `
		INSERT INTO teachers (name, subject, email, contact, status, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		teacher.Name, teacher.Subject, teacher.Email, teacher.Contact,
		teacher.Status, time.Now(), teacher.CreatedBy,
	).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrTeacherEmailExists
		}
		return 0, fmt.Errorf("failed to create teacher: %w", err)
	}

	return id, nil
}

// GetByID retrieves a teacher by id.
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE id = $1`

	var t models.Teacher
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Subject, &t.Email, &t.Contact, &t.Status,
		&t.CreatedAt, &t.CreatedBy, &t.UpdatedAt, &t.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("failed to query teacher: %w", err)
	}

	return &t, nil
}

// List retrieves teachers with optional search/subject/status filters and
// pagination. Sort is newest-created first.
func (r *TeacherRepository) List(ctx context.Context, search, subject, status string, page, pageSize int) ([]models.Teacher, int64, error) {
	where := squirrel.And{}
	if search != "" {
		pattern := likePattern(search)
		where = append(where, squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"email": pattern},
		})
	}
	if subject != "" {
		where = append(where, squirrel.Eq{"subject": subject})
	}
	if status != "" {
		where = append(where, squirrel.Eq{"status": status})
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("teachers").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count teachers query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count teachers: %w", err)
	}

	if total == 0 {
		return []models.Teacher{}, 0, nil
	}

	offset := uint64((page - 1) * pageSize)
	querySQL, queryArgs, err := r.sb.Select(teacherColumns).
		From("teachers").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(pageSize)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query teachers: %w", err)
	}
	defer rows.Close()

	var teachers []models.Teacher
	for rows.Next() {
		var t models.Teacher
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Subject, &t.Email, &t.Contact, &t.Status,
			&t.CreatedAt, &t.CreatedBy, &t.UpdatedAt, &t.UpdatedBy,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan teacher: %w", err)
		}
		teachers = append(teachers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return teachers, total, nil
}

// Update applies a partial patch to a teacher.
func (r *TeacherRepository) Update(ctx context.Context, id int64, patch *models.TeacherPatch, updatedBy int64) error {
	update := r.sb.Update("teachers").
		Set("updated_at", time.Now()).
		Set("updated_by", updatedBy).
		Where(squirrel.Eq{"id": id})

	if patch.Name != nil {
		update = update.Set("name", *patch.Name)
	}
	if patch.Subject != nil {
		update = update.Set("subject", *patch.Subject)
	}
	if patch.Email != nil {
		update = update.Set("email", *patch.Email)
	}
	if patch.Contact != nil {
		update = update.Set("contact", *patch.Contact)
	}
	if patch.Status != nil {
		update = update.Set("status", *patch.Status)
	}

	querySQL, queryArgs, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update teacher query: %w", err)
	}

	tag, err := r.db.Exec(ctx, querySQL, queryArgs...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrTeacherEmailExists
		}
		return fmt.Errorf("failed to update teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}

// Delete removes a teacher record.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}

// CountByStatus counts teachers in a given status.
func (r *TeacherRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM teachers WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count teachers: %w", err)
	}
	return count, nil
}
