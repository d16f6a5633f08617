package services

import (
	"context"
	"time"

	"github.com/studyloop/backend/internal/models"
	"go.uber.org/zap"
)

// HistoryRepository is the interface that wraps methods for History table data access
type HistoryRepository interface {
	// Method Create inserts a new history entry and fills in its ID.
	//
	// The subject name is not checked against existing subjects.
	Create(ctx context.Context, entry *models.HistoryEntry) error
	// Method GetAllByUser retrieves all history entries of a user, newest first.
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	GetAllByUser(ctx context.Context, userID int64) ([]models.HistoryEntry, error)
}

type historyService struct {
	repo   HistoryRepository
	now    func() time.Time
	logger *zap.Logger
}

// NewHistoryService creates a new history service
func NewHistoryService(repo HistoryRepository, logger *zap.Logger) *historyService {
	return &historyService{
		repo:   repo,
		now:    time.Now,
		logger: logger,
	}
}

// Append records a study session for userID stamped with the current time
func (s *historyService) Append(ctx context.Context, userID int64, req *models.HistoryRequest) (*models.HistoryEntry, error) {
	entry := &models.HistoryEntry{
		UserID:       userID,
		SubjectName:  req.SubjectName,
		Message:      req.Message,
		Difficulty:   req.Difficulty,
		CorrectCount: req.CorrectCount,
		// stored with millisecond precision
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// List retrieves the history of userID, newest first
func (s *historyService) List(ctx context.Context, userID int64) ([]models.HistoryEntry, error) {
	return s.repo.GetAllByUser(ctx, userID)
}
