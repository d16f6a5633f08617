package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/studyloop/backend/internal/models"
	"github.com/studyloop/backend/libs/auth/service"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the interface that wraps methods for User table data access
type UserRepository interface {
	// Method Create inserts a new user into the database.
	//
	// "user" parameter is used to create a new user. On success its ID is filled in.
	//
	// If the username is already stored, models.ErrUsernameTaken is returned.
	// If some other error occurs during user creation, the error will be returned.
	Create(ctx context.Context, user *models.User) error
	// Method GetByUsername retrieves a user by username.
	//
	// "username" parameter is matched exactly.
	//
	// If user with such username does not exist, models.ErrUserNotFound will be returned together with "nil" value.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// Method ExistsByUsername checks if a user with such username exists.
	//
	// If some error occurs during check, the error will be returned together with "false" value.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// bcrypt ignores every byte after the 72nd
const maxPasswordBytes = 72

type authService struct {
	userRepo       UserRepository
	tokenGenerator *service.TokenGenerator
	bcryptCost     int
	logger         *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo UserRepository,
	tokenGenerator *service.TokenGenerator,
	bcryptCost int,
	logger *zap.Logger,
) *authService {
	return &authService{
		userRepo:       userRepo,
		tokenGenerator: tokenGenerator,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

// Register creates a new user account. No token is issued; the caller logs in afterwards.
func (s *authService) Register(ctx context.Context, req *models.CredentialsRequest) error {
	username := strings.TrimSpace(req.Username)
	if username == "" || strings.TrimSpace(req.Password) == "" {
		return models.ErrMissingCredentials
	}
	if len(req.Password) > maxPasswordBytes {
		return models.ErrPasswordTooLong
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return models.ErrUsernameTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(passwordHash),
	}

	// A concurrent registration can still win between the check and the insert; the repository maps that to ErrUsernameTaken.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user registered", zap.Int64("userId", user.ID))
	return nil
}

// Login verifies the credentials and returns a signed token carrying the user id and username
func (s *authService) Login(ctx context.Context, req *models.CredentialsRequest) (string, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return "", models.ErrMissingCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", models.ErrInvalidCredentials
		}
		s.logger.Error("failed to compare password hash", zap.Error(err), zap.Int64("userId", user.ID))
		return "", fmt.Errorf("failed to compare password hash: %w", err)
	}

	token, err := s.tokenGenerator.GenerateToken(user.ID, user.Username)
	if err != nil {
		s.logger.Error("failed to generate token", zap.Error(err), zap.Int64("userId", user.ID))
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}
