package user

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userRepo "fixflow/database/repository/user"
	"fixflow/models"
	"fixflow/services/notification"
	"fixflow/utils"
)

// Session tokens expire after this duration.
const sessionTTL = 24 * time.Hour

// ErrInvalidCredentials is returned when email or password do not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserService manages accounts and sessions.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (string, *models.User, error)
	Revoke(ctx context.Context, token string) error
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Sessions *redis.Client
	Notifier notification.NotificationService
}

func (s *DefaultUserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	logger := utils.GetLogger()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.Notifier.AccountCreated(ctx, user); err != nil {
		logger.Warn("failed to enqueue welcome email",
			zap.String("userID", user.ID), zap.Error(err))
	}
	return user, nil
}

// Authenticate verifies the credentials and mints a session token. The
// token hash is stored in the session cache so it can be revoked before
// expiry.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, sessionTTL)
	if err != nil {
		return "", nil, err
	}
	if err := s.Sessions.Set(ctx, sessionKey(token), user.ID, sessionTTL).Err(); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *DefaultUserService) Revoke(ctx context.Context, token string) error {
	return s.Sessions.Del(ctx, sessionKey(token)).Err()
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// SessionActive reports whether the token still has a live session entry.
func (s *DefaultUserService) SessionActive(ctx context.Context, token string) bool {
	n, err := s.Sessions.Exists(ctx, sessionKey(token)).Result()
	return err == nil && n > 0
}

func sessionKey(token string) string {
	return "session:" + utils.HashToken(token)
}
