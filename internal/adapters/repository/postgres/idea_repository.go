package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/forkthisidea/ideahub/internal/core/domain"
	"github.com/forkthisidea/ideahub/internal/core/ports"
)

type ideaRepository struct {
	db *sql.DB
}

func NewIdeaRepository(db *sql.DB) ports.IdeaRepository {
	return &ideaRepository{
		db: db,
	}
}

func (r *ideaRepository) Save(ctx context.Context, idea *domain.Idea) error {
	query := `
		INSERT INTO ideas (id, text, author_id, created_at, vote_count)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, idea.ID, idea.Text, idea.AuthorID, idea.CreatedAt, idea.VoteCount)
	if err != nil {
		return fmt.Errorf("failed to save idea: %w", err)
	}
	return nil
}

func (r *ideaRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	query := `
		SELECT id, text, author_id, created_at, vote_count
		FROM ideas
		WHERE id = $1
	`

	var idea domain.Idea
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&idea.ID, &idea.Text, &idea.AuthorID, &idea.CreatedAt, &idea.VoteCount,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to get idea: %w", err)
	}

	return &idea, nil
}

func (r *ideaRepository) List(ctx context.Context, order domain.IdeaOrder, limit int) ([]*domain.Idea, error) {
	// Both orderings are total: ties on vote_count fall back to submission
	// time (earlier ranks higher), ties on submission time fall back to id.
	orderClause := "created_at DESC, id ASC"
	if order == domain.OrderTop {
		orderClause = "vote_count DESC, created_at ASC, id ASC"
	}

	query := fmt.Sprintf(`
		SELECT id, text, author_id, created_at, vote_count
		FROM ideas
		ORDER BY %s
		LIMIT $1
	`, orderClause)

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	defer rows.Close()

	return scanIdeas(rows)
}

func (r *ideaRepository) ListByAuthor(ctx context.Context, authorID string, limit int) ([]*domain.Idea, error) {
	query := `
		SELECT id, text, author_id, created_at, vote_count
		FROM ideas
		WHERE author_id = $1
		ORDER BY created_at DESC, id ASC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, authorID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas by author: %w", err)
	}
	defer rows.Close()

	return scanIdeas(rows)
}

func (r *ideaRepository) ListSince(ctx context.Context, since time.Time, limit int) ([]*domain.Idea, error) {
	query := `
		SELECT id, text, author_id, created_at, vote_count
		FROM ideas
		WHERE created_at >= $1
		ORDER BY created_at DESC, id ASC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas since %s: %w", since, err)
	}
	defer rows.Close()

	return scanIdeas(rows)
}

func (r *ideaRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	query := `SELECT id FROM ideas`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list idea ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan idea id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating idea ids: %w", err)
	}
	return ids, nil
}

func (r *ideaRepository) Count(ctx context.Context, authorID string) (int64, error) {
	var count int64
	var err error
	if authorID == "" {
		err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ideas`).Scan(&count)
	} else {
		err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ideas WHERE author_id = $1`, authorID).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count ideas: %w", err)
	}
	return count, nil
}

func scanIdeas(rows *sql.Rows) ([]*domain.Idea, error) {
	ideas := []*domain.Idea{}
	for rows.Next() {
		var idea domain.Idea
		if err := rows.Scan(&idea.ID, &idea.Text, &idea.AuthorID, &idea.CreatedAt, &idea.VoteCount); err != nil {
			return nil, fmt.Errorf("failed to scan idea: %w", err)
		}
		ideas = append(ideas, &idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ideas: %w", err)
	}
	return ideas, nil
}
