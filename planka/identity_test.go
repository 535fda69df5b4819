package planka

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminUserIDDirect(t *testing.T) {
	_, client := newTestMux(t, WithAdminID("u-42"))
	assert.Equal(t, "u-42", client.AdminUserID(context.Background()))
}

func TestAdminUserIDByEmail(t *testing.T) {
	mux, client := newTestMux(t, WithAdminEmail("boss@example.com"))
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
		writeItems(w, []User{
			{ID: "u1", Email: "dev@example.com", Username: "dev"},
			{ID: "u2", Email: "boss@example.com", Username: "boss"},
		})
	})

	assert.Equal(t, "u2", client.AdminUserID(context.Background()))
}

func TestAdminUserIDByUsernameFallback(t *testing.T) {
	mux, client := newTestMux(t,
		WithAdminEmail("nobody@example.com"),
		WithAdminUsername("boss"))
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
		writeItems(w, []User{
			{ID: "u2", Email: "boss@example.com", Username: "boss"},
		})
	})

	assert.Equal(t, "u2", client.AdminUserID(context.Background()))
}

func TestAdminUserIDNotFoundIsSoft(t *testing.T) {
	mux, client := newTestMux(t, WithAdminEmail("ghost@example.com"))
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
		writeItems(w, []User{})
	})

	assert.Equal(t, "", client.AdminUserID(context.Background()))
}

func TestAdminUserIDResolvedOnce(t *testing.T) {
	lookups := 0
	mux, client := newTestMux(t, WithAdminEmail("boss@example.com"))
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
		lookups++
		writeItems(w, []User{{ID: "u2", Email: "boss@example.com"}})
	})

	ctx := context.Background()
	assert.Equal(t, "u2", client.AdminUserID(ctx))
	assert.Equal(t, "u2", client.AdminUserID(ctx))
	assert.Equal(t, 1, lookups)
}
