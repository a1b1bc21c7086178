package services

import (
	"context"

	"github.com/forkthisidea/ideahub/internal/core/domain"
	"github.com/forkthisidea/ideahub/internal/core/ports"
)

type rankingService struct {
	repo ports.IdeaRepository
}

func NewRankingService(repo ports.IdeaRepository) ports.RankingService {
	return &rankingService{
		repo: repo,
	}
}

// Top orders by vote count descending; earlier ideas rank higher among equal
// counts.
func (s *rankingService) Top(ctx context.Context, limit int) ([]*domain.Idea, error) {
	limit, ok := clampLimit(limit)
	if !ok {
		return []*domain.Idea{}, nil
	}

	return s.repo.List(ctx, domain.OrderTop, limit)
}

// Recent orders by submission time descending, newest first.
func (s *rankingService) Recent(ctx context.Context, limit int) ([]*domain.Idea, error) {
	limit, ok := clampLimit(limit)
	if !ok {
		return []*domain.Idea{}, nil
	}

	return s.repo.List(ctx, domain.OrderRecent, limit)
}
