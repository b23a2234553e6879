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
	"github.com/edunova/backend/internal/pkg/logger"
)

// IStudentRepository defines the interface for student persistence.
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context, search, status string, page, pageSize int) ([]models.Student, int64, error)
	Update(ctx context.Context, id int64, patch *models.StudentPatch, updatedBy int64) error
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	Recent(ctx context.Context, limit int) ([]models.Student, error)
}

const studentColumns = `id, full_name, email, student_id, course, phone, address,
	date_of_birth, enrollment_date, status, created_at, created_by, updated_at, updated_by`

// StudentRepository handles database operations for students.
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new student and returns its id. Email and student_id
// uniqueness is backstopped by unique indexes.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	query := `
		INSERT INTO students (full_name, email, student_id, course, phone, address,
			date_of_birth, enrollment_date, status, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		student.FullName, student.Email, student.StudentID, student.Course,
		student.Phone, student.Address, student.DateOfBirth,
		student.EnrollmentDate, student.Status, time.Now(), student.CreatedBy,
	).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrStudentExists
		}
		return 0, fmt.Errorf("failed to create student: %w", err)
	}

	return id, nil
}

// GetByID retrieves a student by id.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	var s models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.FullName, &s.Email, &s.StudentID, &s.Course, &s.Phone,
		&s.Address, &s.DateOfBirth, &s.EnrollmentDate, &s.Status,
		&s.CreatedAt, &s.CreatedBy, &s.UpdatedAt, &s.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to query student: %w", err)
	}

	return &s, nil
}

// List retrieves students with optional search/status filters and pagination.
// Search is a case-insensitive substring match on name, email and student id.
// Sort is newest-created first, id descending as tiebreaker for stability.
func (r *StudentRepository) List(ctx context.Context, search, status string, page, pageSize int) ([]models.Student, int64, error) {
	where := squirrel.And{}
	if search != "" {
		pattern := likePattern(search)
		where = append(where, squirrel.Or{
			squirrel.ILike{"full_name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"student_id": pattern},
		})
	}
	if status != "" {
		where = append(where, squirrel.Eq{"status": status})
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("students").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	if total == 0 {
		return []models.Student{}, 0, nil
	}

	offset := uint64((page - 1) * pageSize)
	querySQL, queryArgs, err := r.sb.Select(studentColumns).
		From("students").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(pageSize)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, 0, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(
			&s.ID, &s.FullName, &s.Email, &s.StudentID, &s.Course, &s.Phone,
			&s.Address, &s.DateOfBirth, &s.EnrollmentDate, &s.Status,
			&s.CreatedAt, &s.CreatedBy, &s.UpdatedAt, &s.UpdatedBy,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// Update applies a partial patch. Only supplied fields change; identifier and
// creation metadata are never part of the SET clause.
func (r *StudentRepository) Update(ctx context.Context, id int64, patch *models.StudentPatch, updatedBy int64) error {
	update := r.sb.Update("students").
		Set("updated_at", time.Now()).
		Set("updated_by", updatedBy).
		Where(squirrel.Eq{"id": id})

	if patch.FullName != nil {
		update = update.Set("full_name", *patch.FullName)
	}
	if patch.Email != nil {
		update = update.Set("email", *patch.Email)
	}
	if patch.StudentID != nil {
		update = update.Set("student_id", *patch.StudentID)
	}
	if patch.Course != nil {
		update = update.Set("course", *patch.Course)
	}
	if patch.Phone != nil {
		update = update.Set("phone", *patch.Phone)
	}
	if patch.Address != nil {
		update = update.Set("address", *patch.Address)
	}
	if patch.DateOfBirth != nil {
		update = update.Set("date_of_birth", *patch.DateOfBirth)
	}
	if patch.EnrollmentDate != nil {
		update = update.Set("enrollment_date", *patch.EnrollmentDate)
	}
	if patch.Status != nil {
		update = update.Set("status", *patch.Status)
	}

	querySQL, queryArgs, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, querySQL, queryArgs...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentExists
		}
		return fmt.Errorf("failed to update student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student record.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// CountByStatus counts students in a given status.
func (r *StudentRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}

// CountAll counts all students.
func (r *StudentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}

// CountCreatedSince counts students created at or after the given instant.
func (r *StudentRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students WHERE created_at >= $1`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent students: %w", err)
	}
	return count, nil
}

// Recent returns the most recently created students.
func (r *StudentRepository) Recent(ctx context.Context, limit int) ([]models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY created_at DESC, id DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(
			&s.ID, &s.FullName, &s.Email, &s.StudentID, &s.Course, &s.Phone,
			&s.Address, &s.DateOfBirth, &s.EnrollmentDate, &s.Status,
			&s.CreatedAt, &s.CreatedBy, &s.UpdatedAt, &s.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, s)
	}

	return students, rows.Err()
}
