package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/forkthisidea/ideahub/internal/core/domain"
	"github.com/forkthisidea/ideahub/internal/core/ports"
)

type voteService struct {
	ideaRepo ports.IdeaRepository
	voteRepo ports.VoteRepository
	nowFunc  func() time.Time
}

func NewVoteService(ideaRepo ports.IdeaRepository, voteRepo ports.VoteRepository) ports.VoteService {
	return &voteService{
		ideaRepo: ideaRepo,
		voteRepo: voteRepo,
		nowFunc:  time.Now,
	}
}

// Cast records a vote for the given idea. Casting twice with the same voter
// reports a duplicate outcome instead of failing; the repository linearizes
// the uniqueness check and the counter increment.
func (s *voteService) Cast(ctx context.Context, ideaID string, voterID string) (*domain.VoteResult, error) {
	id, err := uuid.Parse(ideaID)
	if err != nil {
		return nil, domain.ErrInvalidIdeaID
	}

	if _, err := s.ideaRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	return s.voteRepo.Cast(ctx, id, voterID, s.nowFunc().UTC())
}
