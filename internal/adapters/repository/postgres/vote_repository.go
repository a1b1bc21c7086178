package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/forkthisidea/ideahub/internal/core/domain"
	"github.com/forkthisidea/ideahub/internal/core/ports"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// Cast inserts the vote and bumps the idea's counter in one transaction. The
// votes primary key on (idea_id, voter_id) is what enforces one vote per
// voter: a unique violation means the pair already voted and nothing is
// written. Concurrent casts for the same pair serialize on that constraint.
func (r *voteRepository) Cast(ctx context.Context, ideaID uuid.UUID, voterID string, castAt time.Time) (*domain.VoteResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryVote := `
		INSERT INTO votes (idea_id, voter_id, cast_at)
		VALUES ($1, $2, $3)
	`
	if _, err := tx.ExecContext(ctx, queryVote, ideaID, voterID, castAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case pqUniqueViolation:
				// The failed insert aborted the transaction; read the
				// unchanged count outside of it.
				tx.Rollback()
				return r.duplicateResult(ctx, ideaID)
			case pqForeignKeyViolation:
				return nil, domain.ErrIdeaNotFound
			}
		}
		return nil, fmt.Errorf("failed to insert vote: %w", err)
	}

	queryCount := `
		UPDATE ideas
		SET vote_count = vote_count + 1
		WHERE id = $1
		RETURNING vote_count
	`
	var count int64
	if err := tx.QueryRowContext(ctx, queryCount, ideaID).Scan(&count); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to increment vote count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &domain.VoteResult{Status: domain.VoteRecorded, VoteCount: count}, nil
}

func (r *voteRepository) duplicateResult(ctx context.Context, ideaID uuid.UUID) (*domain.VoteResult, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT vote_count FROM ideas WHERE id = $1`, ideaID).Scan(&count)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to read vote count: %w", err)
	}
	return &domain.VoteResult{Status: domain.VoteDuplicate, VoteCount: count}, nil
}

// Recount rewrites the denormalized counter from the vote records themselves.
func (r *voteRepository) Recount(ctx context.Context, ideaID uuid.UUID) error {
	query := `
		UPDATE ideas
		SET vote_count = (
			SELECT COUNT(*) FROM votes WHERE votes.idea_id = ideas.id
		)
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, ideaID); err != nil {
		return fmt.Errorf("failed to recount votes for idea %s: %w", ideaID, err)
	}
	return nil
}
