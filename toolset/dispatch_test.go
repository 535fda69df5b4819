package toolset

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkanban/planka-mcp/planka"
)

func TestBoardToolsetCreateProject(t *testing.T) {
	mux, client := newTestClient(t)
	mux.HandleFunc("POST /api/projects", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(r)
		assert.Equal(t, "Roadmap", body["name"])
		writeItem(w, planka.Project{ID: "p1", Name: "Roadmap"})
	})

	ts := NewBoardToolset(client)
	result, err := ts.Call(context.Background(), "create_project", map[string]any{"name": "Roadmap"})
	require.NoError(t, err)

	project, ok := result.(*planka.Project)
	require.True(t, ok)
	assert.Equal(t, "p1", project.ID)
}

func TestBoardToolsetDeleteResultShape(t *testing.T) {
	mux, client := newTestClient(t)
	mux.HandleFunc("DELETE /api/boards/b1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ts := NewBoardToolset(client)
	result, err := ts.Call(context.Background(), "delete_board", map[string]any{"boardId": "b1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"deleted": true, "id": "b1"}, result)
}

func TestBoardToolsetAddMemberDefaults(t *testing.T) {
	mux, client := newTestClient(t)
	mux.HandleFunc("POST /api/boards/b1/memberships", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(r)
		assert.Equal(t, "editor", body["role"])
		assert.Equal(t, true, body["canComment"])
		writeItem(w, planka.BoardMembership{ID: "m1", BoardID: "b1", UserID: "u1", Role: "editor"})
	})

	ts := NewBoardToolset(client)
	_, err := ts.Call(context.Background(), "add_board_member", map[string]any{
		"boardId": "b1",
		"userId":  "u1",
	})
	require.NoError(t, err)
}

func TestCardToolsetMoveCard(t *testing.T) {
	mux, client := newTestClient(t)
	mux.HandleFunc("PATCH /api/cards/c1", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(r)
		assert.Equal(t, "l2", body["listId"])
		_, hasBoard := body["boardId"]
		assert.False(t, hasBoard)
		writeItem(w, planka.Card{ID: "c1", ListID: "l2"})
	})

	ts := NewCardToolset(client)
	result, err := ts.Call(context.Background(), "move_card", map[string]any{
		"cardId":   "c1",
		"listId":   "l2",
		"position": 42.0,
	})
	require.NoError(t, err)
	card, ok := result.(*planka.Card)
	require.True(t, ok)
	assert.Equal(t, "l2", card.ListID)
}

func TestCardToolsetUpdateCardBadDueDate(t *testing.T) {
	_, client := newTestClient(t)

	ts := NewCardToolset(client)
	_, err := ts.Call(context.Background(), "update_card", map[string]any{
		"cardId":  "c1",
		"dueDate": "next week",
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "RFC3339")
}

func TestCardToolsetStopwatchReturnsStatus(t *testing.T) {
	mux, client := newTestClient(t)
	mux.HandleFunc("GET /api/cards/c1", func(w http.ResponseWriter, r *http.Request) {
		writeItem(w, planka.Card{ID: "c1", Stopwatch: &planka.Stopwatch{Total: 90}})
	})

	ts := NewCardToolset(client)
	result, err := ts.Call(context.Background(), "get_stopwatch", map[string]any{"cardId": "c1"})
	require.NoError(t, err)

	status, ok := result.(*planka.StopwatchStatus)
	require.True(t, ok)
	assert.False(t, status.IsRunning)
	assert.Equal(t, "1m30s", status.FormattedTotal)
}

func TestTaskToolsetBatch(t *testing.T) {
	mux, client := newTestClient(t)
	mux.HandleFunc("POST /api/cards/c1/tasks", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(r)
		writeItem(w, planka.Task{ID: "t1", Name: body["name"].(string), CardID: "c1"})
	})

	ts := NewTaskToolset(client)
	result, err := ts.Call(context.Background(), "create_tasks", map[string]any{
		"tasks": []any{
			map[string]any{"cardId": "c1", "name": "one"},
			map[string]any{"cardId": "c1", "name": ""},
		},
	})
	require.NoError(t, err)

	batch, ok := result.(*planka.BatchResult)
	require.True(t, ok)
	assert.Equal(t, 1, batch.Succeeded)
	assert.Equal(t, 1, batch.Failed)
}

func TestLabelToolsetPalette(t *testing.T) {
	_, client := newTestClient(t)

	ts := NewLabelToolset(client)
	result, err := ts.Call(context.Background(), "list_label_colors", nil)
	require.NoError(t, err)

	colors := result.(map[string]any)["colors"].([]string)
	assert.Len(t, colors, 25)
}

func TestUserToolsetFindUserNeedsIdentifier(t *testing.T) {
	_, client := newTestClient(t)

	ts := NewUserToolset(client)
	_, err := ts.Call(context.Background(), "find_user", map[string]any{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "email or username")
}
