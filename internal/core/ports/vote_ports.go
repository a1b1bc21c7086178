package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/forkthisidea/ideahub/internal/core/domain"
)

// VoteRepository owns the (idea_id, voter_id) uniqueness and the denormalized
// vote counter on ideas. Cast must be atomic: either a new vote exists and the
// counter moved by exactly one, or the duplicate outcome is reported and
// nothing changed.
type VoteRepository interface {
	Cast(ctx context.Context, ideaID uuid.UUID, voterID string, castAt time.Time) (*domain.VoteResult, error)
	Recount(ctx context.Context, ideaID uuid.UUID) error
}

type VoteService interface {
	Cast(ctx context.Context, ideaID string, voterID string) (*domain.VoteResult, error)
}
