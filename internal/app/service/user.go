package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/atinyakov/second-brain/internal/models"
	"github.com/atinyakov/second-brain/internal/storage"
)

// UserService handles signup and signin.
type UserService struct {
	repo   Storage
	hasher PasswordHasher
	auth   AuthIface
	logger *zap.Logger

	dummyOnce   sync.Once
	dummyDigest string
}

func NewUserService(repo Storage, hasher PasswordHasher, auth AuthIface, logger *zap.Logger) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		auth:   auth,
		logger: logger,
	}
}

// Signup creates an account. A taken username yields storage.ErrConflict and
// leaves the existing record untouched.
func (s *UserService) Signup(ctx context.Context, creds models.Credentials) (*models.User, error) {
	if err := ValidateRequest(creds); err != nil {
		return nil, err
	}
	if len(creds.Password) > MaxPasswordBytes {
		return nil, &ValidationError{Fields: []string{"password (max)"}}
	}

	digest, err := s.hasher.Hash(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.repo.CreateUser(ctx, storage.UserRecord{
		Username: creds.Username,
		Password: digest,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user signed up", zap.String("user_id", u.ID))

	return &models.User{ID: u.ID, Username: u.Username}, nil
}

// Signin returns a session token. Unknown username and wrong password both
// yield ErrInvalidCredentials.
func (s *UserService) Signin(ctx context.Context, creds models.Credentials) (string, error) {
	if err := ValidateRequest(creds); err != nil {
		return "", err
	}
	// no stored digest can come from a longer password
	if len(creds.Password) > MaxPasswordBytes {
		return "", ErrInvalidCredentials
	}

	u, err := s.repo.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// spend the same bcrypt time as a real mismatch
			s.hasher.Verify(creds.Password, s.dummy())
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(creds.Password, u.Password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.auth.BuildJWTString(u.ID)
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	return token, nil
}

func (s *UserService) dummy() string {
	s.dummyOnce.Do(func() {
		d, err := s.hasher.Hash("dummy-password")
		if err != nil {
			s.logger.Warn("cannot build dummy digest", zap.Error(err))
			return
		}
		s.dummyDigest = d
	})

	return s.dummyDigest
}
