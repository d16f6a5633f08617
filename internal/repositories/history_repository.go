package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/studyloop/backend/internal/models"
	"go.uber.org/zap"
)

type historyRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *sql.DB, logger *zap.Logger) *historyRepository {
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a history entry and sets its ID.
// The subject name is stored as given; it is not checked against existing subjects.
func (r *historyRepository) Create(ctx context.Context, entry *models.HistoryEntry) error {
	query := `
		INSERT INTO history (user_id, subject_name, message, difficulty, correct_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.UserID, entry.SubjectName, entry.Message, entry.Difficulty, entry.CorrectCount, entry.CreatedAt)
	if err != nil {
		r.logger.Error("failed to create history entry", zap.Error(err), zap.Int64("userId", entry.UserID))
		return fmt.Errorf("failed to create history entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	entry.ID = id
	return nil
}

// GetAllByUser retrieves history entries of userID, newest first
func (r *historyRepository) GetAllByUser(ctx context.Context, userID int64) ([]models.HistoryEntry, error) {
	query := `
		SELECT id, user_id, subject_name, message, difficulty, correct_count, created_at
		FROM history
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to query history", zap.Error(err), zap.Int64("userId", userID))
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	entries := []models.HistoryEntry{}
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.SubjectName, &e.Message, &e.Difficulty, &e.CorrectCount, &e.CreatedAt); err != nil {
			r.logger.Error("failed to scan history entry", zap.Error(err))
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		e.CreatedAt = e.CreatedAt.UTC()
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating history rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}
