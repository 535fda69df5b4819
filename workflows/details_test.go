package workflows

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkanban/planka-mcp/planka"
)

func detailsCardHandler(tasks []planka.Task) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeItemIncluded(w,
			planka.Card{ID: "c1", Name: "Build", ListID: "l2", BoardID: "b1"},
			map[string]any{"tasks": tasks})
	}
}

func detailsBoardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeItemIncluded(w, planka.Board{ID: "b1"}, map[string]any{
			"labels": []planka.Label{
				{ID: "lb1", Name: "Urgent", BoardID: "b1"},
				{ID: "lb2", Name: "Bug", BoardID: "b1"},
			},
			"cardLabels": []planka.CardLabel{
				{ID: "cl1", CardID: "c1", LabelID: "lb1"},
				{ID: "cl2", CardID: "other", LabelID: "lb2"},
			},
		})
	}
}

func commentActions(texts ...string) []planka.Action {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	actions := make([]planka.Action, 0, len(texts))
	for i, text := range texts {
		at := base.Add(time.Duration(i) * time.Minute)
		action := planka.Action{ID: text, Type: "commentCard", CardID: "c1", CreatedAt: &at}
		action.Data.Text = text
		actions = append(actions, action)
	}
	return actions
}

func TestAnalyzeCard(t *testing.T) {
	mux, engine := newTestEngine(t)
	mux.HandleFunc("GET /api/cards/c1", detailsCardHandler([]planka.Task{
		{ID: "t1", CardID: "c1", IsCompleted: true},
		{ID: "t2", CardID: "c1", IsCompleted: false},
	}))
	mux.HandleFunc("GET /api/boards/b1", detailsBoardHandler())
	mux.HandleFunc("GET /api/cards/c1/actions", func(w http.ResponseWriter, r *http.Request) {
		writeItems(w, commentActions("kicked off "+automatedSignature, "please also update the docs"))
	})

	details, err := engine.AnalyzeCard(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, 2, details.TaskTotal)
	assert.Equal(t, 1, details.TaskCompleted)
	assert.Equal(t, 50, details.CompletionPercentage)
	assert.False(t, details.IsComplete)

	// Newest comment first, and it reads human.
	require.Len(t, details.Comments, 2)
	assert.Equal(t, "please also update the docs", details.Comments[0].Text)
	assert.True(t, details.LikelyHumanFeedback)
	assert.True(t, details.NeedsAttention)

	// Only this card's labels, not the board's whole palette.
	require.Len(t, details.Labels, 1)
	assert.Equal(t, "Urgent", details.Labels[0].Name)
}

func TestAnalyzeCardCompleteNeedsNoAttention(t *testing.T) {
	mux, engine := newTestEngine(t)
	mux.HandleFunc("GET /api/cards/c1", detailsCardHandler([]planka.Task{
		{ID: "t1", CardID: "c1", IsCompleted: true},
	}))
	mux.HandleFunc("GET /api/boards/b1", detailsBoardHandler())
	mux.HandleFunc("GET /api/cards/c1/actions", func(w http.ResponseWriter, r *http.Request) {
		writeItems(w, commentActions("ship it"))
	})

	details, err := engine.AnalyzeCard(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, details.IsComplete)
	assert.True(t, details.LikelyHumanFeedback)
	assert.False(t, details.NeedsAttention)
}

func TestAnalyzeCardAutomatedCommentsOnly(t *testing.T) {
	mux, engine := newTestEngine(t)
	mux.HandleFunc("GET /api/cards/c1", detailsCardHandler(nil))
	mux.HandleFunc("GET /api/boards/b1", detailsBoardHandler())
	mux.HandleFunc("GET /api/cards/c1/actions", func(w http.ResponseWriter, r *http.Request) {
		writeItems(w, commentActions(
			"please also update the docs",
			taskCommentPrefix+" wire it "+automatedSignature,
		))
	})

	details, err := engine.AnalyzeCard(context.Background(), "c1")
	require.NoError(t, err)

	// The automated comment is the newest one, so no human feedback.
	assert.False(t, details.LikelyHumanFeedback)
	assert.False(t, details.NeedsAttention)

	// A card without tasks is never complete.
	assert.False(t, details.IsComplete)
	assert.Equal(t, 0, details.CompletionPercentage)
}

func TestLikelyHumanFeedback(t *testing.T) {
	assert.False(t, likelyHumanFeedback(nil))
	assert.True(t, likelyHumanFeedback([]planka.Comment{{Text: "needs work"}}))
	assert.False(t, likelyHumanFeedback([]planka.Comment{{Text: "moved " + automatedSignature}}))
	assert.False(t, likelyHumanFeedback([]planka.Comment{{Text: taskCommentPrefix + " x"}}))
}
