package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/forkthisidea/ideahub/internal/core/domain"
	"github.com/forkthisidea/ideahub/internal/core/ports"
)

const (
	// DefaultMaxIdeaLength bounds submitted idea text, in runes.
	DefaultMaxIdeaLength = 500

	maxListLimit = 100
)

type ideaService struct {
	repo    ports.IdeaRepository
	maxLen  int
	nowFunc func() time.Time
}

func NewIdeaService(repo ports.IdeaRepository, maxLen int) ports.IdeaService {
	if maxLen <= 0 {
		maxLen = DefaultMaxIdeaLength
	}
	return &ideaService{
		repo:    repo,
		maxLen:  maxLen,
		nowFunc: time.Now,
	}
}

func (s *ideaService) Submit(ctx context.Context, input ports.SubmitIdeaInput) (*domain.Idea, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, domain.ErrEmptyIdeaText
	}
	if utf8.RuneCountInString(text) > s.maxLen {
		return nil, domain.ErrIdeaTextTooLong
	}

	idea := &domain.Idea{
		ID:        uuid.New(),
		Text:      text,
		AuthorID:  input.AuthorID,
		CreatedAt: s.nowFunc().UTC(),
		VoteCount: 0,
	}

	if err := s.repo.Save(ctx, idea); err != nil {
		return nil, err
	}

	return idea, nil
}

func (s *ideaService) Get(ctx context.Context, id string) (*domain.Idea, error) {
	ideaID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidIdeaID
	}

	return s.repo.GetByID(ctx, ideaID)
}

func (s *ideaService) List(ctx context.Context, input ports.ListIdeasInput) ([]*domain.Idea, error) {
	order := input.Order
	if order == "" {
		order = domain.OrderRecent
	}
	if order != domain.OrderRecent && order != domain.OrderTop {
		return nil, domain.ErrInvalidOrder
	}

	limit, ok := clampLimit(input.Limit)
	if !ok {
		return []*domain.Idea{}, nil
	}

	return s.repo.List(ctx, order, limit)
}

func (s *ideaService) ListByAuthor(ctx context.Context, authorID string, limit int) ([]*domain.Idea, error) {
	limit, ok := clampLimit(limit)
	if !ok {
		return []*domain.Idea{}, nil
	}

	return s.repo.ListByAuthor(ctx, authorID, limit)
}

func (s *ideaService) ListSince(ctx context.Context, since time.Time, limit int) ([]*domain.Idea, error) {
	limit, ok := clampLimit(limit)
	if !ok {
		return []*domain.Idea{}, nil
	}

	return s.repo.ListSince(ctx, since, limit)
}

// clampLimit reports whether the listing should hit the store at all. A
// non-positive limit yields an empty result, not an error.
func clampLimit(limit int) (int, bool) {
	if limit <= 0 {
		return 0, false
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return limit, true
}
