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

// ISettingsRepository defines the interface for the app settings singleton.
type ISettingsRepository interface {
	Get(ctx context.Context) (*models.AppSettings, error)
	Update(ctx context.Context, patch *models.AppSettingsPatch, updatedBy int64) error
	EnsureDefaults(ctx context.Context, defaults *models.AppSettings) error
}

const settingsColumns = `id, site_name, logo_url, contact_email, enable_registrations,
	created_at, updated_at, updated_by`

// SettingsRepository handles database operations for the settings record.
type SettingsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Get retrieves the settings record.
func (r *SettingsRepository) Get(ctx context.Context) (*models.AppSettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM app_settings ORDER BY id ASC LIMIT 1`

	var s models.AppSettings
	err := r.db.QueryRow(ctx, query).Scan(
		&s.ID, &s.SiteName, &s.LogoURL, &s.ContactEmail, &s.EnableRegistrations,
		&s.CreatedAt, &s.UpdatedAt, &s.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}

	return &s, nil
}

// Update applies a partial patch to the settings record.
func (r *SettingsRepository) Update(ctx context.Context, patch *models.AppSettingsPatch, updatedBy int64) error {
	update := r.sb.Update("app_settings").
		Set("updated_at", time.Now()).
		Set("updated_by", updatedBy)

	if patch.SiteName != nil {
		update = update.Set("site_name", *patch.SiteName)
	}
	if patch.LogoURL != nil {
		update = update.Set("logo_url", *patch.LogoURL)
	}
	if patch.ContactEmail != nil {
		update = update.Set("contact_email", *patch.ContactEmail)
	}
	if patch.EnableRegistrations != nil {
		update = update.Set("enable_registrations", *patch.EnableRegistrations)
	}

	querySQL, queryArgs, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update settings query: %w", err)
	}

	tag, err := r.db.Exec(ctx, querySQL, queryArgs...)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// EnsureDefaults inserts the settings record if none exists yet. Used at
// startup so Get always finds a row.
func (r *SettingsRepository) EnsureDefaults(ctx context.Context, defaults *models.AppSettings) error {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM app_settings`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count settings: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO app_settings (site_name, logo_url, contact_email, enable_registrations, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		defaults.SiteName, defaults.LogoURL, defaults.ContactEmail,
		defaults.EnableRegistrations, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert default settings: %w", err)
	}

	return nil
}
