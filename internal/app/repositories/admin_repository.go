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
	"github.com/edunova/backend/internal/pkg/dberrors"
)

// IAdminRepository defines the interface for administrator persistence.
type IAdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	UsernameOrEmailExists(ctx context.Context, username, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// AdminRepository handles database operations for administrator accounts.
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository.
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create inserts a new administrator and returns its id. Username and email
// uniqueness is enforced by the store's unique indexes.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) (int64, error) {
	query := `
		INSERT INTO admins (username, email, password, full_name, role, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		admin.Username, admin.Email, admin.Password, admin.FullName,
		admin.Role, admin.IsActive, time.Now(),
	).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrAdminExists
		}
		return 0, fmt.Errorf("failed to create admin: %w", err)
	}

	return id, nil
}

// GetByID retrieves an administrator by id.
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

// GetByUsername retrieves an administrator by exact, case-sensitive username.
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return r.getOne(ctx, `WHERE username = $1`, username)
}

func (r *AdminRepository) getOne(ctx context.Context, where string, arg interface{}) (*models.Admin, error) {
	query := `
		SELECT id, username, email, password, full_name, role, is_active, created_at
		FROM admins ` + where

	var admin models.Admin
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&admin.ID, &admin.Username, &admin.Email, &admin.Password,
		&admin.FullName, &admin.Role, &admin.IsActive, &admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to query admin: %w", err)
	}

	return &admin, nil
}

// UsernameOrEmailExists checks whether an admin already claims the username or email.
func (r *AdminRepository) UsernameOrEmailExists(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM admins WHERE username = $1 OR email = $2)`
	if err := r.db.QueryRow(ctx, query, username, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check admin existence: %w", err)
	}
	return exists, nil
}

// Count returns the number of administrator accounts.
func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}
