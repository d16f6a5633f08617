package services

import (
	"context"
	"time"

	"github.com/studyloop/backend/internal/models"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	users     map[string]*models.User
	nextID    int64
	existsErr error
	createErr error
	getErr    error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: map[string]*models.User{}, nextID: 1}
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = m.nextID
	m.nextID++
	stored := *user
	m.users[user.Username] = &stored
	return nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	user, ok := m.users[username]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.users[username]
	return ok, nil
}

// mockSubjectRepository is a mock implementation of SubjectRepository
type mockSubjectRepository struct {
	subjects []models.Subject
	subject  *models.Subject
	created  *models.Subject
	err      error

	updateUserID int64
	updateName   *string
	updateWeight *float64
	deletedID    int64
}

func (m *mockSubjectRepository) GetAllByUser(ctx context.Context, userID int64) ([]models.Subject, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.subjects, nil
}

func (m *mockSubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	if m.err != nil {
		return m.err
	}
	subject.ID = 1
	subject.ReviewDates = []time.Time{}
	m.created = subject
	return nil
}

func (m *mockSubjectRepository) Update(ctx context.Context, userID, id int64, name *string, weight *float64) (*models.Subject, error) {
	m.updateUserID = userID
	m.updateName = name
	m.updateWeight = weight
	if m.err != nil {
		return nil, m.err
	}
	return m.subject, nil
}

func (m *mockSubjectRepository) Delete(ctx context.Context, userID, id int64) error {
	if m.err != nil {
		return m.err
	}
	m.deletedID = id
	return nil
}

// mockHistoryRepository is a mock implementation of HistoryRepository
type mockHistoryRepository struct {
	entries []models.HistoryEntry
	created *models.HistoryEntry
	err     error
}

func (m *mockHistoryRepository) Create(ctx context.Context, entry *models.HistoryEntry) error {
	if m.err != nil {
		return m.err
	}
	entry.ID = 10
	m.created = entry
	return nil
}

func (m *mockHistoryRepository) GetAllByUser(ctx context.Context, userID int64) ([]models.HistoryEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

// mockReviewRepository is a mock implementation of ReviewRepository
type mockReviewRepository struct {
	stored   map[int64][]time.Time
	ownerID  int64
	err      error
	appended []time.Time
}

func (m *mockReviewRepository) Append(ctx context.Context, userID, subjectID int64, dates []time.Time) (*models.Subject, error) {
	if m.err != nil {
		return nil, m.err
	}
	if userID != m.ownerID {
		return nil, models.ErrSubjectNotFound
	}
	m.appended = dates
	if m.stored == nil {
		m.stored = map[int64][]time.Time{}
	}
	m.stored[subjectID] = append(m.stored[subjectID], dates...)
	return &models.Subject{ID: subjectID, UserID: userID, ReviewDates: m.stored[subjectID]}, nil
}

func (m *mockReviewRepository) GetBySubject(ctx context.Context, userID, subjectID int64) ([]time.Time, error) {
	if m.err != nil {
		return nil, m.err
	}
	if userID != m.ownerID {
		return nil, models.ErrSubjectNotFound
	}
	dates := m.stored[subjectID]
	if dates == nil {
		dates = []time.Time{}
	}
	return dates, nil
}
