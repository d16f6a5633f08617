package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyloop/backend/internal/models"
	"go.uber.org/zap"
)

func TestNewHistoryRepository(t *testing.T) {
	logger := zap.NewNop()
	db := &sql.DB{}

	repo := NewHistoryRepository(db, logger)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
	assert.Equal(t, logger, repo.logger)
}

func TestHistoryRepository_Create(t *testing.T) {
	insert := regexp.QuoteMeta(`INSERT INTO history (user_id, subject_name, message, difficulty, correct_count, created_at)`)
	now := time.Date(2026, 6, 1, 18, 30, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, logger, cleanup := setupTestDB(t)
		defer cleanup()
		repo := NewHistoryRepository(db, logger)

		mock.ExpectExec(insert).
			WithArgs(int64(7), "Matemática", "revisei funções", 3.0, 8.0, now).
			WillReturnResult(sqlmock.NewResult(99, 1))

		entry := &models.HistoryEntry{
			UserID:       7,
			SubjectName:  "Matemática",
			Message:      "revisei funções",
			Difficulty:   3,
			CorrectCount: 8,
			CreatedAt:    now,
		}
		err := repo.Create(context.Background(), entry)

		require.NoError(t, err)
		assert.Equal(t, int64(99), entry.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		db, mock, logger, cleanup := setupTestDB(t)
		defer cleanup()
		repo := NewHistoryRepository(db, logger)

		mock.ExpectExec(insert).WillReturnError(errors.New("down"))

		err := repo.Create(context.Background(), &models.HistoryEntry{UserID: 7, CreatedAt: now})
		assert.ErrorContains(t, err, "failed to create history entry")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestHistoryRepository_GetAllByUser(t *testing.T) {
	query := regexp.QuoteMeta(`FROM history WHERE user_id = ? ORDER BY created_at DESC, id DESC`)
	columns := []string{"id", "user_id", "subject_name", "message", "difficulty", "correct_count", "created_at"}
	newer := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedIDs   []int64
		expectedError bool
	}{
		{
			name: "newest first",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(5, 7, "Física", "m2", 2.0, 1.0, newer).
					AddRow(3, 7, "Física", "m1", 1.0, 0.0, older)
				mock.ExpectQuery(query).WithArgs(int64(7)).WillReturnRows(rows)
			},
			expectedIDs: []int64{5, 3},
		},
		{
			name: "empty",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows(columns))
			},
			expectedIDs: []int64{},
		},
		{
			name: "row error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(5, 7, "Física", "m2", 2.0, 1.0, newer).
					RowError(0, errors.New("broken row"))
				mock.ExpectQuery(query).WithArgs(int64(7)).WillReturnRows(rows)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, logger, cleanup := setupTestDB(t)
			defer cleanup()
			repo := NewHistoryRepository(db, logger)

			tt.setupMock(mock)

			entries, err := repo.GetAllByUser(context.Background(), 7)
			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, entries)
			} else {
				require.NoError(t, err)
				ids := make([]int64, 0, len(entries))
				for _, e := range entries {
					ids = append(ids, e.ID)
				}
				assert.Equal(t, tt.expectedIDs, ids)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
