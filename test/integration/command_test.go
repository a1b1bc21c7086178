package integration

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (app *TestApp) postCommand(t *testing.T, userID, text string) string {
	t.Helper()

	resp, err := app.Client.PostForm(app.Server.URL+"/commands", url.Values{
		"user_id": {userID},
		"text":    {text},
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

// TestCommandFlow drives the whole engine through the platform webhook only.
func TestCommandFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	reply := app.postCommand(t, "u1", "PI: Build a widget")
	require.Contains(t, reply, "Thank you <@u1>!")

	start := strings.Index(reply, "(id ")
	require.GreaterOrEqual(t, start, 0)
	ideaID := strings.TrimSuffix(reply[start+4:], ").")

	reply = app.postCommand(t, "u2", "vote "+ideaID)
	assert.Contains(t, reply, "1 vote")

	reply = app.postCommand(t, "u2", "vote "+ideaID)
	assert.Contains(t, reply, "already voted")

	reply = app.postCommand(t, "u1", "list top")
	assert.Contains(t, reply, "Build a widget")
	assert.Contains(t, reply, "1 vote")

	reply = app.postCommand(t, "u1", "count me")
	assert.Equal(t, "You have submitted 1 ideas.", reply)

	reply = app.postCommand(t, "u1", "definitely not a command")
	assert.Contains(t, reply, "invalid command")
}
