package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkthisidea/ideahub/internal/adapters/repository/memory"
)

func TestCountIdeas(t *testing.T) {
	store := memory.NewStore()
	svc := NewStatsService(store)
	ctx := context.Background()

	seedIdea(t, store, "one", "u1", time.Now(), 0)
	seedIdea(t, store, "two", "u1", time.Now(), 0)
	seedIdea(t, store, "three", "u2", time.Now(), 0)

	total, err := svc.CountIdeas(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	byAuthor, err := svc.CountIdeasByAuthor(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), byAuthor)

	none, err := svc.CountIdeasByAuthor(ctx, "u9")
	require.NoError(t, err)
	assert.Equal(t, int64(0), none)
}
