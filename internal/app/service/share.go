package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atinyakov/second-brain/internal/models"
	"github.com/atinyakov/second-brain/internal/storage"
)

const maxHashAttempts = 3

// ShareService manages the single public share link of each user.
type ShareService struct {
	repo    Storage
	logger  *zap.Logger
	newHash func() string
}

func NewShareService(repo Storage, logger *zap.Logger) *ShareService {
	return &ShareService{
		repo:    repo,
		logger:  logger,
		newHash: uuid.NewString,
	}
}

// Enable returns the share hash of userID, creating the link on first use.
// Concurrent calls for one user all get the same hash.
func (s *ShareService) Enable(ctx context.Context, userID string) (string, error) {
	var lastErr error

	for i := 0; i < maxHashAttempts; i++ {
		link, err := s.repo.FindOrCreateShareLink(ctx, storage.ShareLinkRecord{
			Hash:   s.newHash(),
			UserID: userID,
		})
		if err == nil {
			return link.Hash, nil
		}

		// hash collision with another owner, draw again
		if !errors.Is(err, storage.ErrConflict) {
			return "", err
		}
		lastErr = err
		s.logger.Warn("share hash collision", zap.String("user_id", userID), zap.Int("attempt", i+1))
	}

	return "", fmt.Errorf("enable share link: %w", lastErr)
}

// Disable deletes the share link of userID. It succeeds when there is none.
func (s *ShareService) Disable(ctx context.Context, userID string) error {
	return s.repo.DeleteShareLinkByUserID(ctx, userID)
}

// Resolve returns the owner's username and content for a share hash.
func (s *ShareService) Resolve(ctx context.Context, hash string) (*models.SharedBrain, error) {
	link, err := s.repo.FindShareLinkByHash(ctx, hash)
	if err != nil {
		return nil, err
	}

	owner, err := s.repo.FindUserByID(ctx, link.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error("dangling share link",
				zap.String("hash", hash),
				zap.String("user_id", link.UserID),
			)
		}
		return nil, err
	}

	contents, err := listContents(ctx, s.repo, owner.ID)
	if err != nil {
		return nil, err
	}

	return &models.SharedBrain{
		Username: owner.Username,
		Contents: contents,
	}, nil
}
