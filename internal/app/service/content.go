package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/atinyakov/second-brain/internal/models"
	"github.com/atinyakov/second-brain/internal/storage"
)

// ContentService applies owner-only access rules to content items.
type ContentService struct {
	repo   Storage
	logger *zap.Logger
}

func NewContentService(repo Storage, logger *zap.Logger) *ContentService {
	return &ContentService{
		repo:   repo,
		logger: logger,
	}
}

// Create stores a content item owned by userID. Tag names are trimmed,
// de-duplicated and resolved to tag records.
func (s *ContentService) Create(ctx context.Context, userID string, req models.ContentRequest) (*models.Content, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	names := uniqueTagNames(req.Tags)
	tagIDs := make([]string, 0, len(names))
	for _, name := range names {
		tag, err := s.repo.FindOrCreateTag(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("resolve tag %q: %w", name, err)
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	c, err := s.repo.CreateContent(ctx, storage.ContentRecord{
		Title:  req.Title,
		Type:   req.Type,
		Link:   req.Link,
		Tags:   tagIDs,
		UserID: userID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("content created", zap.String("user_id", userID), zap.String("content_id", c.ID))

	return &models.Content{
		ID:     c.ID,
		Title:  c.Title,
		Type:   c.Type,
		Link:   c.Link,
		Tags:   names,
		UserID: c.UserID,
	}, nil
}

// ListOwn returns the content of userID with tag names expanded.
func (s *ContentService) ListOwn(ctx context.Context, userID string) ([]models.Content, error) {
	return listContents(ctx, s.repo, userID)
}

// DeleteOwn removes a content item. An unknown id is storage.ErrNotFound,
// someone else's item is ErrForbidden.
func (s *ContentService) DeleteOwn(ctx context.Context, userID string, contentID string) error {
	c, err := s.repo.FindContentByID(ctx, contentID)
	if err != nil {
		return err
	}

	if c.UserID != userID {
		s.logger.Info("foreign content delete rejected",
			zap.String("user_id", userID),
			zap.String("content_id", contentID),
		)
		return ErrForbidden
	}

	return s.repo.DeleteContent(ctx, contentID, userID)
}

func listContents(ctx context.Context, repo Storage, userID string) ([]models.Content, error) {
	records, err := repo.FindContentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var ids []string
	seen := make(map[string]struct{})
	for _, r := range records {
		for _, id := range r.Tags {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	names := make(map[string]string, len(ids))
	if len(ids) > 0 {
		tags, err := repo.FindTagsByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, t := range tags {
			names[t.ID] = t.Name
		}
	}

	result := make([]models.Content, 0, len(records))
	for _, r := range records {
		tagNames := make([]string, 0, len(r.Tags))
		for _, id := range r.Tags {
			if name, ok := names[id]; ok {
				tagNames = append(tagNames, name)
			}
		}

		result = append(result, models.Content{
			ID:     r.ID,
			Title:  r.Title,
			Type:   r.Type,
			Link:   r.Link,
			Tags:   tagNames,
			UserID: r.UserID,
		})
	}

	return result, nil
}

func uniqueTagNames(tags []string) []string {
	names := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))

	for _, t := range tags {
		name := strings.TrimSpace(t)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names
}
