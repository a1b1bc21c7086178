package ports

import (
	"context"

	"github.com/forkthisidea/ideahub/internal/core/domain"
)

type RankingService interface {
	Top(ctx context.Context, limit int) ([]*domain.Idea, error)
	Recent(ctx context.Context, limit int) ([]*domain.Idea, error)
}
