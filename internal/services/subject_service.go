package services

import (
	"context"
	"strings"

	"github.com/studyloop/backend/internal/models"
	"go.uber.org/zap"
)

// SubjectRepository is the interface that wraps methods for Subjects table data access.
//
// Every method is scoped by "userID": records owned by another user behave as if they did not exist.
type SubjectRepository interface {
	// Method GetAllByUser retrieves all subjects of a user ordered by ID, each with its review dates.
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	GetAllByUser(ctx context.Context, userID int64) ([]models.Subject, error)
	// Method Create inserts a new subject into the database and fills in its ID.
	Create(ctx context.Context, subject *models.Subject) error
	// Method Update changes name and/or weight of a subject.
	//
	// A "nil" name or weight keeps the stored value.
	// If the subject does not exist, "nil" is returned together with a "nil" error.
	Update(ctx context.Context, userID, id int64, name *string, weight *float64) (*models.Subject, error)
	// Method Delete removes a subject, its review dates and the history entries recorded under its name.
	//
	// If the subject does not exist, models.ErrSubjectNotFound will be returned.
	Delete(ctx context.Context, userID, id int64) error
}

type subjectService struct {
	repo   SubjectRepository
	logger *zap.Logger
}

// NewSubjectService creates a new subject service
func NewSubjectService(repo SubjectRepository, logger *zap.Logger) *subjectService {
	return &subjectService{
		repo:   repo,
		logger: logger,
	}
}

// List retrieves all subjects owned by userID
func (s *subjectService) List(ctx context.Context, userID int64) ([]models.Subject, error) {
	return s.repo.GetAllByUser(ctx, userID)
}

// Create adds a subject for userID with zero cycles and no review dates
func (s *subjectService) Create(ctx context.Context, userID int64, req *models.SubjectRequest) (*models.Subject, error) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, models.ErrSubjectNameRequired
	}

	subject := &models.Subject{
		UserID: userID,
		Name:   *req.Name,
	}
	if req.Weight != nil {
		subject.Weight = *req.Weight
	}

	if err := s.repo.Create(ctx, subject); err != nil {
		return nil, err
	}

	s.logger.Debug("subject created", zap.Int64("userId", userID), zap.Int64("id", subject.ID))
	return subject, nil
}

// Update changes the fields present in req. A nil subject means nothing owned by userID matched id.
func (s *subjectService) Update(ctx context.Context, userID, id int64, req *models.SubjectRequest) (*models.Subject, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, models.ErrSubjectNameRequired
	}

	return s.repo.Update(ctx, userID, id, req.Name, req.Weight)
}

// Delete removes a subject together with its history entries
func (s *subjectService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.logger.Debug("subject deleted", zap.Int64("userId", userID), zap.Int64("id", id))
	return nil
}
