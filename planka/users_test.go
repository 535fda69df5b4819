package planka

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserValidation(t *testing.T) {
	_, client := newTestMux(t)

	cases := []struct {
		name string
		in   UserInput
		want string
	}{
		{"bad email", UserInput{Email: "not-an-email", Username: "bot", Password: "secret1"}, "malformed email"},
		{"no username", UserInput{Email: "bot@example.com", Password: "secret1"}, "username is required"},
		{"short password", UserInput{Email: "bot@example.com", Username: "bot", Password: "12345"}, "at least 6"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := client.CreateUser(context.Background(), tc.in)
			require.Error(t, err)
			assert.True(t, IsSchemaError(err))
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestCreateUser(t *testing.T) {
	mux, client := newTestMux(t)
	mux.HandleFunc("POST /api/users", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(r)
		assert.Equal(t, "bot@example.com", body["email"])
		assert.Equal(t, "Build Bot", body["name"])
		writeItem(w, User{ID: "u1", Email: "bot@example.com", Username: "bot"})
	})

	user, err := client.CreateUser(context.Background(), UserInput{
		Email:    "bot@example.com",
		Username: "bot",
		Password: "secret1",
		Name:     "Build Bot",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestUserLookups(t *testing.T) {
	mux, client := newTestMux(t)
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
		writeItems(w, []User{
			{ID: "u1", Email: "a@example.com", Username: "alpha"},
			{ID: "u2", Email: "b@example.com", Username: "beta"},
		})
	})

	byEmail, err := client.UserByEmail(context.Background(), "b@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u2", byEmail.ID)

	byUsername, err := client.UserByUsername(context.Background(), "alpha")
	require.NoError(t, err)
	assert.Equal(t, "u1", byUsername.ID)

	_, err = client.UserByEmail(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}
