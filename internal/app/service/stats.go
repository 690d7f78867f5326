package service

import (
	"context"

	"github.com/atinyakov/second-brain/internal/storage"
)

// StatsService exposes storage health and counters to operators.
type StatsService struct {
	repo Storage
}

func NewStatsService(repo Storage) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) GetStats(ctx context.Context) (*storage.Stats, error) {
	return s.repo.GetStats(ctx)
}

func (s *StatsService) PingContext(ctx context.Context) error {
	return s.repo.PingContext(ctx)
}
