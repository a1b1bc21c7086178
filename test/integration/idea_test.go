package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkthisidea/ideahub/internal/core/domain"
)

func (app *TestApp) createIdea(t *testing.T, authorID, text string) domain.Idea {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"author_id": authorID, "text": text})
	resp, err := app.Client.Post(app.Server.URL+"/api/ideas", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var idea domain.Idea
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&idea))
	return idea
}

func (app *TestApp) castVote(t *testing.T, ideaID uuid.UUID, voterID string) (int, domain.VoteResult) {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"voter_id": voterID})
	resp, err := app.Client.Post(fmt.Sprintf("%s/api/ideas/%s/votes", app.Server.URL, ideaID), "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var result domain.VoteResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// TestIdeaFlow covers the basic lifecycle: submit -> get -> list recent.
func TestIdeaFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	ideaA := app.createIdea(t, "u1", "Idea A")
	assert.Equal(t, int64(0), ideaA.VoteCount)
	ideaB := app.createIdea(t, "u1", "Idea B")

	resp, err := app.Client.Get(app.Server.URL + "/api/ideas/" + ideaA.ID.String())
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched domain.Idea
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fetched))
	resp.Body.Close()
	assert.Equal(t, ideaA.ID, fetched.ID)
	assert.Equal(t, "Idea A", fetched.Text)

	// recentIdeas(2) returns [B, A]: B was submitted later.
	resp, err = app.Client.Get(app.Server.URL + "/api/ideas?order=recent&limit=2")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ideas []domain.Idea
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ideas))
	resp.Body.Close()
	require.Len(t, ideas, 2)
	assert.Equal(t, ideaB.ID, ideas[0].ID)
	assert.Equal(t, ideaA.ID, ideas[1].ID)
}

func TestSubmitEmptyIdeaCreatesNoRecord(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	body, _ := json.Marshal(map[string]string{"author_id": "u1", "text": "   "})
	resp, err := app.Client.Post(app.Server.URL+"/api/ideas", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int
	require.NoError(t, app.DB.QueryRow("SELECT COUNT(*) FROM ideas").Scan(&count))
	assert.Equal(t, 0, count)
}
