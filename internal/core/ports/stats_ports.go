package ports

import "context"

type StatsService interface {
	CountIdeas(ctx context.Context) (int64, error)
	CountIdeasByAuthor(ctx context.Context, authorID string) (int64, error)
}
