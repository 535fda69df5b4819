package planka

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minPasswordLength = 6

// UserInput holds the fields required to create a user.
type UserInput struct {
	Email    string
	Username string
	Password string
	Name     string
}

// CreateUser creates an upstream account. Requires admin rights on the
// agent credential.
func (c *Client) CreateUser(ctx context.Context, in UserInput) (*User, error) {
	if !emailPattern.MatchString(in.Email) {
		return nil, newSchemaError("create user: malformed email %q", in.Email)
	}
	if strings.TrimSpace(in.Username) == "" {
		return nil, newSchemaError("create user: username is required")
	}
	if len(in.Password) < minPasswordLength {
		return nil, newSchemaError("create user: password must be at least %d characters", minPasswordLength)
	}

	body := map[string]string{
		"email":    in.Email,
		"username": in.Username,
		"password": in.Password,
	}
	if in.Name != "" {
		body["name"] = in.Name
	}

	var env itemEnvelope[User]
	if err := c.post(ctx, "users", body, &env); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &env.Item, nil
}

// Users lists every account. The upstream API has no server-side filter;
// lookup helpers scan client-side.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var env itemsEnvelope[User]
	if err := c.get(ctx, "users", &env); err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	if env.Items == nil {
		return []User{}, nil
	}
	return env.Items, nil
}

// UserByEmail scans for an exact email match.
func (c *Client) UserByEmail(ctx context.Context, email string) (*User, error) {
	users, err := c.Users(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("find user: %w", &APIError{
		Kind:    KindNotFound,
		Status:  404,
		Message: fmt.Sprintf("no user with email %s", email),
	})
}

// UserByUsername scans for an exact username match.
func (c *Client) UserByUsername(ctx context.Context, username string) (*User, error) {
	users, err := c.Users(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("find user: %w", &APIError{
		Kind:    KindNotFound,
		Status:  404,
		Message: fmt.Sprintf("no user with username %s", username),
	})
}

// UserPatch holds the optional fields of a user update.
type UserPatch struct {
	Email    *string `json:"email,omitempty"`
	Username *string `json:"username,omitempty"`
	Name     *string `json:"name,omitempty"`
}

// UpdateUser applies a partial update and returns the updated user.
func (c *Client) UpdateUser(ctx context.Context, id string, patch UserPatch) (*User, error) {
	if patch.Email != nil && !emailPattern.MatchString(*patch.Email) {
		return nil, newSchemaError("update user: malformed email %q", *patch.Email)
	}
	if patch.Username != nil && strings.TrimSpace(*patch.Username) == "" {
		return nil, newSchemaError("update user: username must be non-empty")
	}

	var env itemEnvelope[User]
	if err := c.patch(ctx, "users/"+id, patch, &env); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &env.Item, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := c.delete(ctx, "users/"+id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
