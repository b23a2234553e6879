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

// IRegistrationLinkRepository defines the interface for registration link persistence.
type IRegistrationLinkRepository interface {
	GetActive(ctx context.Context) (*models.RegistrationLink, error)
	Replace(ctx context.Context, link *models.RegistrationLink) (int64, error)
	Deactivate(ctx context.Context, updatedBy int64) error
}

const registrationLinkColumns = `id, token, title, link, is_active,
	created_at, created_by, updated_at, updated_by`

// RegistrationLinkRepository handles database operations for registration links.
type RegistrationLinkRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationLinkRepository creates a new RegistrationLinkRepository.
func NewRegistrationLinkRepository(db *pgxpool.Pool) *RegistrationLinkRepository {
	return &RegistrationLinkRepository{db: db}
}

// GetActive retrieves the currently active registration link, if any.
func (r *RegistrationLinkRepository) GetActive(ctx context.Context) (*models.RegistrationLink, error) {
	query := `SELECT ` + registrationLinkColumns + ` FROM registration_links
		WHERE is_active = TRUE
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	var l models.RegistrationLink
	err := r.db.QueryRow(ctx, query).Scan(
		&l.ID, &l.Token, &l.Title, &l.Link, &l.IsActive,
		&l.CreatedAt, &l.CreatedBy, &l.UpdatedAt, &l.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationLinkNotFound
		}
		return nil, fmt.Errorf("failed to query registration link: %w", err)
	}

	return &l, nil
}

// Replace deactivates any current link and inserts the new one as active,
// in a single transaction so there is never more than one active link.
func (r *RegistrationLinkRepository) Replace(ctx context.Context, link *models.RegistrationLink) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	_, err = tx.Exec(ctx,
		`UPDATE registration_links SET is_active = FALSE, updated_at = $1, updated_by = $2 WHERE is_active = TRUE`,
		now, link.CreatedBy,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate registration links: %w", err)
	}

	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO registration_links (token, title, link, is_active, created_at, created_by)
		VALUES ($1, $2, $3, TRUE, $4, $5)
		RETURNING id`,
		link.Token, link.Title, link.Link, now, link.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert registration link: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit registration link: %w", err)
	}

	return id, nil
}

// Deactivate turns off the active registration link without replacing it.
func (r *RegistrationLinkRepository) Deactivate(ctx context.Context, updatedBy int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE registration_links SET is_active = FALSE, updated_at = $1, updated_by = $2 WHERE is_active = TRUE`,
		time.Now(), updatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to deactivate registration link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRegistrationLinkNotFound
	}
	return nil
}
