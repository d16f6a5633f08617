package services

import (
	"context"
	"time"

	"github.com/studyloop/backend/internal/models"
	"go.uber.org/zap"
)

// ReviewRepository is the interface that wraps methods for subject review dates data access
type ReviewRepository interface {
	// Method Append adds "dates" after the review dates already stored for a subject and returns the whole subject.
	//
	// If the subject does not exist or belongs to another user, models.ErrSubjectNotFound will be returned together with "nil" value.
	Append(ctx context.Context, userID, subjectID int64, dates []time.Time) (*models.Subject, error)
	// Method GetBySubject retrieves the review dates of a subject in the order they were added.
	//
	// Please reference Append method for error values.
	GetBySubject(ctx context.Context, userID, subjectID int64) ([]time.Time, error)
}

type reviewService struct {
	repo   ReviewRepository
	logger *zap.Logger
}

// NewReviewService creates a new review schedule service
func NewReviewService(repo ReviewRepository, logger *zap.Logger) *reviewService {
	return &reviewService{
		repo:   repo,
		logger: logger,
	}
}

// AppendDates adds the requested dates to a subject's review schedule
func (s *reviewService) AppendDates(ctx context.Context, userID, subjectID int64, req *models.ReviewRequest) (*models.Subject, error) {
	subject, err := s.repo.Append(ctx, userID, subjectID, req.Times())
	if err != nil {
		return nil, err
	}

	s.logger.Debug("review dates appended",
		zap.Int64("userId", userID),
		zap.Int64("subjectId", subjectID),
		zap.Int("count", len(req.Dates)),
	)
	return subject, nil
}

// ListDates retrieves a subject's review schedule
func (s *reviewService) ListDates(ctx context.Context, userID, subjectID int64) ([]time.Time, error) {
	return s.repo.GetBySubject(ctx, userID, subjectID)
}
