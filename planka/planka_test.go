package planka

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestMux returns a mux preloaded with the login endpoint and a client
// pointed at it.
func newTestMux(t *testing.T, opts ...Option) (*http.ServeMux, *Client) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/access-tokens", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			http.Error(w, "bad login", http.StatusBadRequest)
			return
		}
		writeItem(w, "test-token")
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, "agent@example.com", "secret", opts...)
	return mux, client
}

func writeItem(w http.ResponseWriter, item any) {
	writeEnvelope(w, map[string]any{"item": item})
}

func writeItemIncluded(w http.ResponseWriter, item any, included map[string]any) {
	writeEnvelope(w, map[string]any{"item": item, "included": included})
}

func writeItems(w http.ResponseWriter, items any) {
	writeEnvelope(w, map[string]any{"items": items})
}

func writeEnvelope(w http.ResponseWriter, envelope map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(envelope)
}
