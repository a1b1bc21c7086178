package services

import (
	"context"

	"github.com/forkthisidea/ideahub/internal/core/ports"
)

type statsService struct {
	repo ports.IdeaRepository
}

func NewStatsService(repo ports.IdeaRepository) ports.StatsService {
	return &statsService{
		repo: repo,
	}
}

func (s *statsService) CountIdeas(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx, "")
}

func (s *statsService) CountIdeasByAuthor(ctx context.Context, authorID string) (int64, error) {
	return s.repo.Count(ctx, authorID)
}
