package memory

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/forkthisidea/ideahub/internal/core/domain"
)

type voteKey struct {
	ideaID  uuid.UUID
	voterID string
}

// Store is an in-memory store adapter implementing both the idea and the vote
// repository ports. A single mutex guards ideas and votes together, so a cast
// observes the uniqueness check and the counter increment as one step.
type Store struct {
	mu    sync.RWMutex
	ideas map[uuid.UUID]domain.Idea
	votes map[voteKey]domain.Vote
}

func NewStore() *Store {
	return &Store{
		ideas: make(map[uuid.UUID]domain.Idea),
		votes: make(map[voteKey]domain.Vote),
	}
}

func (s *Store) Save(_ context.Context, idea *domain.Idea) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ideas[idea.ID] = *idea
	return nil
}

func (s *Store) GetByID(_ context.Context, id uuid.UUID) (*domain.Idea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idea, ok := s.ideas[id]
	if !ok {
		return nil, domain.ErrIdeaNotFound
	}
	return &idea, nil
}

func (s *Store) List(_ context.Context, order domain.IdeaOrder, limit int) ([]*domain.Idea, error) {
	s.mu.RLock()
	ideas := s.snapshot(func(domain.Idea) bool { return true })
	s.mu.RUnlock()

	switch order {
	case domain.OrderTop:
		sort.Slice(ideas, func(i, j int) bool { return lessByVotes(ideas[i], ideas[j]) })
	default:
		sort.Slice(ideas, func(i, j int) bool { return lessByRecency(ideas[i], ideas[j]) })
	}

	return truncate(ideas, limit), nil
}

func (s *Store) ListByAuthor(_ context.Context, authorID string, limit int) ([]*domain.Idea, error) {
	s.mu.RLock()
	ideas := s.snapshot(func(idea domain.Idea) bool { return idea.AuthorID == authorID })
	s.mu.RUnlock()

	sort.Slice(ideas, func(i, j int) bool { return lessByRecency(ideas[i], ideas[j]) })
	return truncate(ideas, limit), nil
}

func (s *Store) ListSince(_ context.Context, since time.Time, limit int) ([]*domain.Idea, error) {
	s.mu.RLock()
	ideas := s.snapshot(func(idea domain.Idea) bool { return !idea.CreatedAt.Before(since) })
	s.mu.RUnlock()

	sort.Slice(ideas, func(i, j int) bool { return lessByRecency(ideas[i], ideas[j]) })
	return truncate(ideas, limit), nil
}

func (s *Store) ListIDs(_ context.Context) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]uuid.UUID, 0, len(s.ideas))
	for id := range s.ideas {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Store) Count(_ context.Context, authorID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if authorID == "" {
		return int64(len(s.ideas)), nil
	}
	var count int64
	for _, idea := range s.ideas {
		if idea.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

func (s *Store) Cast(_ context.Context, ideaID uuid.UUID, voterID string, castAt time.Time) (*domain.VoteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idea, ok := s.ideas[ideaID]
	if !ok {
		return nil, domain.ErrIdeaNotFound
	}

	key := voteKey{ideaID: ideaID, voterID: voterID}
	if _, voted := s.votes[key]; voted {
		return &domain.VoteResult{Status: domain.VoteDuplicate, VoteCount: idea.VoteCount}, nil
	}

	s.votes[key] = domain.Vote{IdeaID: ideaID, VoterID: voterID, CastAt: castAt}
	idea.VoteCount++
	s.ideas[ideaID] = idea

	return &domain.VoteResult{Status: domain.VoteRecorded, VoteCount: idea.VoteCount}, nil
}

func (s *Store) Recount(_ context.Context, ideaID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idea, ok := s.ideas[ideaID]
	if !ok {
		return domain.ErrIdeaNotFound
	}

	var count int64
	for key := range s.votes {
		if key.ideaID == ideaID {
			count++
		}
	}
	idea.VoteCount = count
	s.ideas[ideaID] = idea
	return nil
}

// VoteRecords returns the number of stored votes for an idea. Test helper.
func (s *Store) VoteRecords(ideaID uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for key := range s.votes {
		if key.ideaID == ideaID {
			count++
		}
	}
	return count
}

// SetVoteCount overwrites an idea's counter, bypassing the cast path. Test
// helper for exercising recount.
func (s *Store) SetVoteCount(ideaID uuid.UUID, count int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idea, ok := s.ideas[ideaID]
	if !ok {
		return
	}
	idea.VoteCount = count
	s.ideas[ideaID] = idea
}

// snapshot copies matching ideas out under the caller's read lock.
func (s *Store) snapshot(match func(domain.Idea) bool) []*domain.Idea {
	ideas := make([]*domain.Idea, 0, len(s.ideas))
	for _, idea := range s.ideas {
		if match(idea) {
			copied := idea
			ideas = append(ideas, &copied)
		}
	}
	return ideas
}

func lessByVotes(a, b *domain.Idea) bool {
	if a.VoteCount != b.VoteCount {
		return a.VoteCount > b.VoteCount
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return bytes.Compare(a.ID[:], b.ID[:]) < 0
}

func lessByRecency(a, b *domain.Idea) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return bytes.Compare(a.ID[:], b.ID[:]) < 0
}

func truncate(ideas []*domain.Idea, limit int) []*domain.Idea {
	if limit >= 0 && len(ideas) > limit {
		return ideas[:limit]
	}
	return ideas
}
