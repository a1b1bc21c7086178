package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/forkthisidea/ideahub/internal/core/domain"
)

type IdeaRepository interface {
	Save(ctx context.Context, idea *domain.Idea) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	List(ctx context.Context, order domain.IdeaOrder, limit int) ([]*domain.Idea, error)
	ListByAuthor(ctx context.Context, authorID string, limit int) ([]*domain.Idea, error)
	ListSince(ctx context.Context, since time.Time, limit int) ([]*domain.Idea, error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	Count(ctx context.Context, authorID string) (int64, error)
}

type SubmitIdeaInput struct {
	AuthorID string
	Text     string
}

type ListIdeasInput struct {
	Order domain.IdeaOrder
	Limit int
}

type IdeaService interface {
	Submit(ctx context.Context, input SubmitIdeaInput) (*domain.Idea, error)
	Get(ctx context.Context, id string) (*domain.Idea, error)
	List(ctx context.Context, input ListIdeasInput) ([]*domain.Idea, error)
	ListByAuthor(ctx context.Context, authorID string, limit int) ([]*domain.Idea, error)
	ListSince(ctx context.Context, since time.Time, limit int) ([]*domain.Idea, error)
}
