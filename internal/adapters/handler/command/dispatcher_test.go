package command

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkthisidea/ideahub/internal/adapters/repository/memory"
	"github.com/forkthisidea/ideahub/internal/core/services"
)

func newTestDispatcher() (*Dispatcher, *memory.Store) {
	store := memory.NewStore()
	ideaSvc := services.NewIdeaService(store, 0)
	voteSvc := services.NewVoteService(store, store)
	rankingSvc := services.NewRankingService(store)
	statsSvc := services.NewStatsService(store)
	return NewDispatcher(ideaSvc, voteSvc, rankingSvc, statsSvc), store
}

func submitIdeaID(t *testing.T, d *Dispatcher, userID, text string) string {
	t.Helper()
	reply := d.Dispatch(context.Background(), userID, "submit "+text)
	require.Contains(t, reply, "has been submitted")

	// The reply embeds the new id as "(id <uuid>)".
	start := strings.Index(reply, "(id ")
	require.GreaterOrEqual(t, start, 0)
	id := strings.TrimSuffix(reply[start+4:], ").")
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	return id
}

func TestDispatchSubmit(t *testing.T) {
	d, store := newTestDispatcher()
	ctx := context.Background()

	reply := d.Dispatch(ctx, "u1", "submit Build a widget")
	assert.Contains(t, reply, "Thank you <@u1>!")

	count, err := store.Count(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDispatchSubmitViaIdeaMarker(t *testing.T) {
	d, store := newTestDispatcher()
	ctx := context.Background()

	for _, text := range []string{"PI: Marker idea", "pi marker idea", "Pi: another one"} {
		reply := d.Dispatch(ctx, "u1", text)
		assert.Contains(t, reply, "has been submitted")
	}

	count, err := store.Count(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// The marker itself must not survive into the stored text.
	ideas, err := store.ListByAuthor(ctx, "u1", 10)
	require.NoError(t, err)
	for _, idea := range ideas {
		assert.NotRegexp(t, `(?i)^pi`, idea.Text)
	}
}

func TestDispatchSubmitEmpty(t *testing.T) {
	d, _ := newTestDispatcher()

	reply := d.Dispatch(context.Background(), "u1", "submit")
	assert.Equal(t, "Hello <@u1>! Please provide an idea with your command.", reply)
}

func TestDispatchVote(t *testing.T) {
	d, _ := newTestDispatcher()
	ctx := context.Background()

	id := submitIdeaID(t, d, "u1", "Build a widget")

	reply := d.Dispatch(ctx, "u2", "vote "+id)
	assert.Contains(t, reply, "Your vote is in, <@u2>!")
	assert.Contains(t, reply, "1 vote")

	reply = d.Dispatch(ctx, "u2", "vote "+id)
	assert.Contains(t, reply, "already voted")
	assert.Contains(t, reply, "1 vote")

	reply = d.Dispatch(ctx, "u3", "vote "+id)
	assert.Contains(t, reply, "2 votes")
}

func TestDispatchVoteErrors(t *testing.T) {
	d, _ := newTestDispatcher()
	ctx := context.Background()

	assert.Contains(t, d.Dispatch(ctx, "u1", "vote"), "Please provide an idea id")
	assert.Contains(t, d.Dispatch(ctx, "u1", "vote garbage"), "no idea with that id")
	assert.Contains(t, d.Dispatch(ctx, "u1", "vote "+uuid.NewString()), "no idea with that id")
}

func TestDispatchList(t *testing.T) {
	d, _ := newTestDispatcher()
	ctx := context.Background()

	assert.Equal(t, "No ideas found.", d.Dispatch(ctx, "u1", "list"))

	idA := submitIdeaID(t, d, "u1", "Idea A")
	submitIdeaID(t, d, "u2", "Idea B")

	d.Dispatch(ctx, "u2", "vote "+idA)
	d.Dispatch(ctx, "u3", "vote "+idA)

	top := d.Dispatch(ctx, "u1", "list top 1")
	assert.Contains(t, top, "Idea A")
	assert.Contains(t, top, "2 votes")
	assert.NotContains(t, top, "Idea B")

	recent := d.Dispatch(ctx, "u1", "list recent")
	lines := strings.Split(recent, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Idea B")
	assert.Contains(t, lines[1], "Idea A")

	mine := d.Dispatch(ctx, "u1", "list mine")
	assert.Contains(t, mine, "Idea A")
	assert.NotContains(t, mine, "Idea B")

	mentioned := d.Dispatch(ctx, "u1", "list <@u2>")
	assert.Contains(t, mentioned, "Idea B")
	assert.NotContains(t, mentioned, "Idea A")

	today := d.Dispatch(ctx, "u1", "list today")
	assert.Contains(t, today, "Idea A")
	assert.Contains(t, today, "Idea B")
}

func TestDispatchListDefaultLimit(t *testing.T) {
	d, _ := newTestDispatcher()
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		submitIdeaID(t, d, "u1", fmt.Sprintf("Idea %d", i))
	}

	reply := d.Dispatch(ctx, "u1", "list")
	assert.Len(t, strings.Split(reply, "\n"), defaultListLimit)
}

func TestDispatchCount(t *testing.T) {
	d, _ := newTestDispatcher()
	ctx := context.Background()

	submitIdeaID(t, d, "u1", "one")
	submitIdeaID(t, d, "u1", "two")
	submitIdeaID(t, d, "u2", "three")

	assert.Equal(t, "There are a total of 3 ideas submitted.", d.Dispatch(ctx, "u1", "count"))
	assert.Equal(t, "You have submitted 2 ideas.", d.Dispatch(ctx, "u1", "count me"))
	assert.Equal(t, "<@u2> has submitted 1 ideas.", d.Dispatch(ctx, "u1", "count <@u2>"))
}

func TestDispatchHelpAndUsage(t *testing.T) {
	d, _ := newTestDispatcher()
	ctx := context.Background()

	help := d.Dispatch(ctx, "u1", "help")
	assert.Contains(t, help, "available commands")

	for _, text := range []string{"", "bogus", "fetchh now"} {
		reply := d.Dispatch(ctx, "u1", text)
		assert.Contains(t, reply, "invalid command", "input %q", text)
	}
}
