package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/forkthisidea/ideahub/internal/core/ports"
)

type recountService struct {
	ideaRepo ports.IdeaRepository
	voteRepo ports.VoteRepository
}

func NewRecountService(ideaRepo ports.IdeaRepository, voteRepo ports.VoteRepository) ports.RecountService {
	return &recountService{
		ideaRepo: ideaRepo,
		voteRepo: voteRepo,
	}
}

// RecountAllVotes rewrites every idea's vote counter from the vote records,
// repairing any drift in the denormalized counts.
func (s *recountService) RecountAllVotes(ctx context.Context) error {
	ids, err := s.ideaRepo.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch idea ids: %w", err)
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(ids))

	for _, id := range ids {
		wg.Add(1)
		go func(ideaID uuid.UUID) {
			defer wg.Done()
			if err := s.voteRepo.Recount(ctx, ideaID); err != nil {
				errChan <- fmt.Errorf("failed to recount idea %s: %w", ideaID, err)
			}
		}(id)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return err
		}
	}

	return nil
}
