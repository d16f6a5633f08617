package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/studyloop/backend/internal/models"
	"go.uber.org/zap"
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// subjectColumns selects a subject joined with its review dates.
// Subjects without reviews produce one row with a NULL review_at.
const subjectColumns = `
		SELECT s.id, s.user_id, s.name, s.weight, s.cycles, r.review_at
		FROM subjects s
		LEFT JOIN subject_reviews r ON r.subject_id = s.id
`

type subjectRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *sql.DB, logger *zap.Logger) *subjectRepository {
	return &subjectRepository{
		db:     db,
		logger: logger,
	}
}

// GetAllByUser retrieves every subject owned by userID with its review dates, ordered by id
func (r *subjectRepository) GetAllByUser(ctx context.Context, userID int64) ([]models.Subject, error) {
	query := subjectColumns + `
		WHERE s.user_id = ?
		ORDER BY s.id, r.id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to query subjects", zap.Error(err), zap.Int64("userId", userID))
		return nil, fmt.Errorf("failed to query subjects: %w", err)
	}
	defer rows.Close()

	subjects, err := scanSubjects(rows)
	if err != nil {
		r.logger.Error("failed to scan subjects", zap.Error(err), zap.Int64("userId", userID))
		return nil, err
	}

	return subjects, nil
}

// GetByID retrieves a subject owned by userID
func (r *subjectRepository) GetByID(ctx context.Context, userID, id int64) (*models.Subject, error) {
	subject, err := getSubject(ctx, r.db, userID, id)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		r.logger.Error("failed to get subject", zap.Error(err), zap.Int64("userId", userID), zap.Int64("id", id))
	}
	return subject, err
}

// Create inserts a new subject and sets its ID
func (r *subjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (user_id, name, weight, cycles)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, subject.UserID, subject.Name, subject.Weight, subject.Cycles)
	if err != nil {
		r.logger.Error("failed to create subject", zap.Error(err), zap.Int64("userId", subject.UserID))
		return fmt.Errorf("failed to create subject: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	subject.ID = id
	if subject.ReviewDates == nil {
		subject.ReviewDates = []time.Time{}
	}
	return nil
}

// Update changes name and/or weight of a subject owned by userID.
// Nil arguments keep the stored value. A nil subject with a nil error means nothing matched.
func (r *subjectRepository) Update(ctx context.Context, userID, id int64, name *string, weight *float64) (*models.Subject, error) {
	query := `
		UPDATE subjects
		SET name = COALESCE(?, name), weight = COALESCE(?, weight)
		WHERE id = ? AND user_id = ?
	`

	if _, err := r.db.ExecContext(ctx, query, name, weight, id, userID); err != nil {
		r.logger.Error("failed to update subject", zap.Error(err), zap.Int64("userId", userID), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to update subject: %w", err)
	}

	// MySQL reports zero affected rows when values are unchanged, so ownership is settled by reading back.
	subject, err := getSubject(ctx, r.db, userID, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to read updated subject", zap.Error(err), zap.Int64("id", id))
		return nil, err
	}

	return subject, nil
}

// Delete removes a subject owned by userID together with the history entries recorded under its name.
//
// Both deletes run in one transaction, history first; review dates go with the subject through the foreign key.
func (r *subjectRepository) Delete(ctx context.Context, userID, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Error("failed to begin transaction", zap.Error(err))
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var name string
	err = tx.QueryRowContext(ctx, `SELECT name FROM subjects WHERE id = ? AND user_id = ? FOR UPDATE`, id, userID).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrSubjectNotFound
	}
	if err != nil {
		r.logger.Error("failed to lock subject", zap.Error(err), zap.Int64("id", id))
		return fmt.Errorf("failed to lock subject: %w", err)
	}

	// BINARY keeps trailing spaces significant; the column collation already separates case and accents.
	if _, err := tx.ExecContext(ctx, `DELETE FROM history WHERE user_id = ? AND subject_name = BINARY ?`, userID, name); err != nil {
		r.logger.Error("failed to delete subject history", zap.Error(err), zap.Int64("id", id))
		return fmt.Errorf("failed to delete subject history: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM subjects WHERE id = ? AND user_id = ?`, id, userID); err != nil {
		r.logger.Error("failed to delete subject", zap.Error(err), zap.Int64("id", id))
		return fmt.Errorf("failed to delete subject: %w", err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("failed to commit subject deletion", zap.Error(err), zap.Int64("id", id))
		return fmt.Errorf("failed to commit subject deletion: %w", err)
	}

	return nil
}

// getSubject reads one owned subject through q
func getSubject(ctx context.Context, q querier, userID, id int64) (*models.Subject, error) {
	query := subjectColumns + `
		WHERE s.id = ? AND s.user_id = ?
		ORDER BY r.id
	`

	rows, err := q.QueryContext(ctx, query, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subject: %w", err)
	}
	defer rows.Close()

	subjects, err := scanSubjects(rows)
	if err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		return nil, models.ErrSubjectNotFound
	}

	return &subjects[0], nil
}

// scanSubjects folds joined subject/review rows into subjects.
// Rows must be ordered by subject id, then review id.
func scanSubjects(rows *sql.Rows) ([]models.Subject, error) {
	subjects := []models.Subject{}
	for rows.Next() {
		var s models.Subject
		var reviewAt sql.NullTime
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Weight, &s.Cycles, &reviewAt); err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}

		if n := len(subjects); n == 0 || subjects[n-1].ID != s.ID {
			s.ReviewDates = []time.Time{}
			subjects = append(subjects, s)
		}
		if reviewAt.Valid {
			last := &subjects[len(subjects)-1]
			last.ReviewDates = append(last.ReviewDates, reviewAt.Time.UTC())
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return subjects, nil
}
