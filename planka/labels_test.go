package planka

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelPalette(t *testing.T) {
	assert.Len(t, LabelColors, 25)
	assert.True(t, ValidLabelColor("berry-red"))
	assert.False(t, ValidLabelColor("hot-pink"))
	assert.False(t, ValidLabelColor(""))
}

func TestCreateLabelRejectsBadColorBeforeNetwork(t *testing.T) {
	requests := 0
	mux, client := newTestMux(t)
	mux.HandleFunc("POST /api/boards/b1/labels", func(w http.ResponseWriter, r *http.Request) {
		requests++
		writeItem(w, Label{ID: "lb1"})
	})

	_, err := client.CreateLabel(context.Background(), "b1", "Urgent", "hot-pink", 0)
	require.Error(t, err)
	assert.True(t, IsSchemaError(err))
	assert.Equal(t, 0, requests, "invalid color must fail before any network call")

	_, err = client.CreateLabel(context.Background(), "b1", "Urgent", "berry-red", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
}

func TestCardLabelLinks(t *testing.T) {
	mux, client := newTestMux(t)
	mux.HandleFunc("POST /api/cards/c1/labels", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(r)
		assert.Equal(t, "lb1", body["labelId"])
		writeItem(w, CardLabel{ID: "cl1", CardID: "c1", LabelID: "lb1"})
	})
	mux.HandleFunc("DELETE /api/cards/c1/labels/lb1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.AddLabelToCard(context.Background(), "c1", "lb1"))
	require.NoError(t, client.RemoveLabelFromCard(context.Background(), "c1", "lb1"))

	err := client.AddLabelToCard(context.Background(), "c1", "")
	assert.True(t, IsSchemaError(err))
}
