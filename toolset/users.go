package toolset

import (
	"context"
	"fmt"

	"github.com/openkanban/planka-mcp/planka"
)

// UserToolset covers account management. Most of these require the agent
// credential to have admin rights upstream.
type UserToolset struct {
	client *planka.Client
}

// NewUserToolset creates the user toolset.
func NewUserToolset(client *planka.Client) *UserToolset {
	return &UserToolset{client: client}
}

func (t *UserToolset) Name() string { return "users" }

func (t *UserToolset) Tools() []Tool {
	return []Tool{
		{
			Name:        "list_users",
			Description: "List every account on the server.",
			Parameters:  schema(map[string]any{}),
		},
		{
			Name:        "find_user",
			Description: "Find an account by exact email or username.",
			Parameters: schema(map[string]any{
				"email":    prop("string", "Email to match (one of email/username required)"),
				"username": prop("string", "Username to match"),
			}),
		},
		{
			Name:        "create_user",
			Description: "Create an account. Requires admin rights.",
			Parameters: schema(map[string]any{
				"email":    prop("string", "Account email"),
				"username": prop("string", "Account username"),
				"password": prop("string", "Password, at least 6 characters"),
				"name":     prop("string", "Display name (optional)"),
			}, "email", "username", "password"),
		},
		{
			Name:        "update_user",
			Description: "Change an account's email, username or display name.",
			Parameters: schema(map[string]any{
				"userId":   prop("string", "User ID"),
				"email":    prop("string", "New email (optional)"),
				"username": prop("string", "New username (optional)"),
				"name":     prop("string", "New display name (optional)"),
			}, "userId"),
		},
		{
			Name:        "delete_user",
			Description: "Delete an account. Irreversible.",
			Parameters: schema(map[string]any{
				"userId": prop("string", "User ID"),
			}, "userId"),
		},
	}
}

func (t *UserToolset) Call(ctx context.Context, toolName string, args map[string]any) (any, error) {
	switch toolName {
	case "list_users":
		return t.client.Users(ctx)
	case "find_user":
		if email := optString(args, "email"); email != "" {
			return t.client.UserByEmail(ctx, email)
		}
		if username := optString(args, "username"); username != "" {
			return t.client.UserByUsername(ctx, username)
		}
		return nil, fmt.Errorf("find_user needs email or username")
	case "create_user":
		return t.client.CreateUser(ctx, planka.UserInput{
			Email:    optString(args, "email"),
			Username: optString(args, "username"),
			Password: optString(args, "password"),
			Name:     optString(args, "name"),
		})
	case "update_user":
		id, err := stringArg(args, "userId")
		if err != nil {
			return nil, err
		}
		return t.client.UpdateUser(ctx, id, planka.UserPatch{
			Email:    optStringPtr(args, "email"),
			Username: optStringPtr(args, "username"),
			Name:     optStringPtr(args, "name"),
		})
	case "delete_user":
		id, err := stringArg(args, "userId")
		if err != nil {
			return nil, err
		}
		return deleted(id, t.client.DeleteUser(ctx, id))
	default:
		return nil, &ErrUnknownTool{Toolset: t.Name(), Tool: toolName}
	}
}
