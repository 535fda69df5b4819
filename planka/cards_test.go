package planka

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCard(t *testing.T) {
	mux, client := newTestMux(t)
	mux.HandleFunc("POST /api/lists/l1/cards", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(r)
		assert.Equal(t, "Ship it", body["name"])
		assert.Equal(t, float64(PositionGap), body["position"])
		writeItem(w, Card{ID: "c1", Name: "Ship it", ListID: "l1", BoardID: "b1"})
	})

	card, err := client.CreateCard(context.Background(), "l1", CardInput{Name: "  Ship it  "})
	require.NoError(t, err)
	assert.Equal(t, "c1", card.ID)
	assert.Equal(t, "Ship it", card.Name)
}

func TestCreateCardRequiresName(t *testing.T) {
	_, client := newTestMux(t)

	_, err := client.CreateCard(context.Background(), "l1", CardInput{Name: " "})
	require.Error(t, err)
	assert.True(t, IsSchemaError(err))
	assert.Contains(t, err.Error(), "create card")
}

func TestMoveCard(t *testing.T) {
	mux, client := newTestMux(t)
	mux.HandleFunc("PATCH /api/cards/c1", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(r)
		assert.Equal(t, "l2", body["listId"])
		assert.Equal(t, float64(42), body["position"])
		_, hasBoard := body["boardId"]
		assert.False(t, hasBoard, "same-board move must not send boardId")
		writeItem(w, Card{ID: "c1", ListID: "l2", Position: 42})
	})

	card, err := client.MoveCard(context.Background(), "c1", "l2", 42, "", "")
	require.NoError(t, err)
	assert.Equal(t, "l2", card.ListID)
}

func TestMoveCardCrossBoard(t *testing.T) {
	mux, client := newTestMux(t)
	mux.HandleFunc("PATCH /api/cards/c1", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(r)
		assert.Equal(t, "b2", body["boardId"])
		assert.Equal(t, "p2", body["projectId"])
		writeItem(w, Card{ID: "c1", ListID: "l9", BoardID: "b2"})
	})

	_, err := client.MoveCard(context.Background(), "c1", "l9", 1, "b2", "p2")
	require.NoError(t, err)
}

func TestDuplicateCard(t *testing.T) {
	mux, client := newTestMux(t)
	mux.HandleFunc("POST /api/cards/c1/duplicate", func(w http.ResponseWriter, r *http.Request) {
		writeItem(w, Card{ID: "c2", Name: "Ship it"})
	})

	copy, err := client.DuplicateCard(context.Background(), "c1", 0)
	require.NoError(t, err)
	assert.Equal(t, "c2", copy.ID)
}

func TestUpdateCardPatchesOnlyProvidedFields(t *testing.T) {
	mux, client := newTestMux(t)
	mux.HandleFunc("PATCH /api/cards/c1", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(r)
		assert.Equal(t, map[string]any{"description": "new"}, body)
		writeItem(w, Card{ID: "c1", Description: "new"})
	})

	desc := "new"
	card, err := client.UpdateCard(context.Background(), "c1", CardPatch{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "new", card.Description)
}

func TestCreateAttachmentSendsMultipart(t *testing.T) {
	mux, client := newTestMux(t)
	mux.HandleFunc("POST /api/cards/c1/attachments", func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "notes.txt", header.Filename)
		writeItem(w, Attachment{ID: "a1", Name: "notes.txt", CardID: "c1"})
	})

	att, err := client.CreateAttachment(context.Background(), "c1", "notes.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, "a1", att.ID)
}

func TestCommentsByCardFiltersActions(t *testing.T) {
	mux, client := newTestMux(t)
	mux.HandleFunc("GET /api/cards/c1/actions", func(w http.ResponseWriter, r *http.Request) {
		comment := Action{ID: "a1", Type: actionTypeComment, CardID: "c1"}
		comment.Data.Text = "looks good"
		move := Action{ID: "a2", Type: "moveCard", CardID: "c1"}
		writeItems(w, []Action{comment, move})
	})

	comments, err := client.CommentsByCard(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "looks good", comments[0].Text)
}

func TestCreateComment(t *testing.T) {
	mux, client := newTestMux(t)
	mux.HandleFunc("POST /api/cards/c1/comment-actions", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(r)
		action := Action{ID: "a1", Type: actionTypeComment, CardID: "c1"}
		action.Data.Text = body["text"].(string)
		writeItem(w, action)
	})

	comment, err := client.CreateComment(context.Background(), "c1", "done")
	require.NoError(t, err)
	assert.Equal(t, "done", comment.Text)
	assert.Equal(t, "c1", comment.CardID)

	_, err = client.CreateComment(context.Background(), "c1", "  ")
	assert.True(t, IsSchemaError(err))
}
