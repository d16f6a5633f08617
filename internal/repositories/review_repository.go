package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/studyloop/backend/internal/models"
	"go.uber.org/zap"
)

type reviewRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewReviewRepository creates a new review schedule repository
func NewReviewRepository(db *sql.DB, logger *zap.Logger) *reviewRepository {
	return &reviewRepository{
		db:     db,
		logger: logger,
	}
}

// Append adds dates after the existing review dates of a subject owned by userID and returns the updated subject.
// The subject row stays locked until the new dates are committed.
func (r *reviewRepository) Append(ctx context.Context, userID, subjectID int64, dates []time.Time) (*models.Subject, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM subjects WHERE id = ? AND user_id = ? FOR UPDATE`, subjectID, userID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrSubjectNotFound
	}
	if err != nil {
		r.logger.Error("failed to lock subject", zap.Error(err), zap.Int64("subjectId", subjectID))
		return nil, fmt.Errorf("failed to lock subject: %w", err)
	}

	if len(dates) > 0 {
		placeholders := make([]string, 0, len(dates))
		args := make([]any, 0, len(dates)*2)
		for _, d := range dates {
			placeholders = append(placeholders, "(?, ?)")
			args = append(args, subjectID, d.UTC())
		}

		query := "INSERT INTO subject_reviews (subject_id, review_at) VALUES " + strings.Join(placeholders, ", ")
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Error("failed to insert review dates", zap.Error(err), zap.Int64("subjectId", subjectID))
			return nil, fmt.Errorf("failed to insert review dates: %w", err)
		}
	}

	subject, err := getSubject(ctx, tx, userID, subjectID)
	if err != nil {
		r.logger.Error("failed to read subject after review append", zap.Error(err), zap.Int64("subjectId", subjectID))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("failed to commit review dates", zap.Error(err), zap.Int64("subjectId", subjectID))
		return nil, fmt.Errorf("failed to commit review dates: %w", err)
	}

	return subject, nil
}

// GetBySubject retrieves the review dates of a subject owned by userID in the order they were added
func (r *reviewRepository) GetBySubject(ctx context.Context, userID, subjectID int64) ([]time.Time, error) {
	subject, err := getSubject(ctx, r.db, userID, subjectID)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			r.logger.Error("failed to get review dates", zap.Error(err), zap.Int64("subjectId", subjectID))
		}
		return nil, err
	}

	return subject.ReviewDates, nil
}
