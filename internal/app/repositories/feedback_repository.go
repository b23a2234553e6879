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

// IFeedbackRepository defines the interface for feedback persistence.
type IFeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Feedback, error)
	List(ctx context.Context, status, feedbackType string, page, pageSize int) ([]models.Feedback, int64, error)
	ListReviewed(ctx context.Context, limit int) ([]models.Feedback, error)
	UpdateStatus(ctx context.Context, id int64, status string, updatedBy int64) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.FeedbackStats, error)
	Recent(ctx context.Context, limit int) ([]models.Feedback, error)
}

const feedbackColumns = `id, name, email, feedback_type, message, rating, status,
	created_at, updated_at, updated_by`

// FeedbackRepository handles database operations for feedback entries.
type FeedbackRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFeedbackRepository creates a new FeedbackRepository.
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new feedback entry submitted through the public form.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) (int64, error) {
	query := `
		INSERT INTO feedback (name, email, feedback_type, message, rating, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		feedback.Name, feedback.Email, feedback.Type, feedback.Message,
		feedback.Rating, feedback.Status, time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create feedback: %w", err)
	}

	return id, nil
}

// GetByID retrieves a feedback entry by id.
func (r *FeedbackRepository) GetByID(ctx context.Context, id int64) (*models.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE id = $1`

	var f models.Feedback
	err := r.db.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.Name, &f.Email, &f.Type, &f.Message, &f.Rating,
		&f.Status, &f.CreatedAt, &f.UpdatedAt, &f.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}

	return &f, nil
}

// List retrieves feedback entries with optional status/type filters, newest first.
func (r *FeedbackRepository) List(ctx context.Context, status, feedbackType string, page, pageSize int) ([]models.Feedback, int64, error) {
	where := squirrel.And{}
	if status != "" {
		where = append(where, squirrel.Eq{"status": status})
	}
	if feedbackType != "" {
		where = append(where, squirrel.Eq{"feedback_type": feedbackType})
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("feedback").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count feedback query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count feedback: %w", err)
	}

	if total == 0 {
		return []models.Feedback{}, 0, nil
	}

	offset := uint64((page - 1) * pageSize)
	querySQL, queryArgs, err := r.sb.Select(feedbackColumns).
		From("feedback").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(pageSize)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list feedback query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	entries, err := scanFeedbackRows(rows)
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// ListReviewed retrieves feedback marked reviewed, for the public testimonial
// surface. Newest first, capped at limit.
func (r *FeedbackRepository) ListReviewed(ctx context.Context, limit int) ([]models.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback
		WHERE status = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, models.FeedbackStatusReviewed, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviewed feedback: %w", err)
	}
	defer rows.Close()

	return scanFeedbackRows(rows)
}

// UpdateStatus moves a feedback entry through the moderation workflow.
func (r *FeedbackRepository) UpdateStatus(ctx context.Context, id int64, status string, updatedBy int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE feedback SET status = $1, updated_at = $2, updated_by = $3 WHERE id = $4`,
		status, time.Now(), updatedBy, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update feedback status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFeedbackNotFound
	}
	return nil
}

// Delete removes a feedback entry.
func (r *FeedbackRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFeedbackNotFound
	}
	return nil
}

// Stats aggregates totals, per-status counts and the average rating across
// entries that carry one.
func (r *FeedbackRepository) Stats(ctx context.Context) (*models.FeedbackStats, error) {
	stats := &models.FeedbackStats{
		ByStatus: make(map[string]int64),
	}

	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM feedback GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan feedback stats: %w", err)
		}
		stats.ByStatus[status] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var avg *float64
	err = r.db.QueryRow(ctx, `SELECT AVG(rating) FROM feedback WHERE rating IS NOT NULL`).Scan(&avg)
	if err != nil {
		return nil, fmt.Errorf("failed to query average rating: %w", err)
	}
	if avg != nil {
		stats.AverageRating = *avg
	}

	return stats, nil
}

// Recent retrieves the latest feedback entries regardless of status.
func (r *FeedbackRepository) Recent(ctx context.Context, limit int) ([]models.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback
		ORDER BY created_at DESC, id DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent feedback: %w", err)
	}
	defer rows.Close()

	return scanFeedbackRows(rows)
}

func scanFeedbackRows(rows pgx.Rows) ([]models.Feedback, error) {
	var entries []models.Feedback
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(
			&f.ID, &f.Name, &f.Email, &f.Type, &f.Message, &f.Rating,
			&f.Status, &f.CreatedAt, &f.UpdatedAt, &f.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		entries = append(entries, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
