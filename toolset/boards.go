package toolset

import (
	"context"

	"github.com/openkanban/planka-mcp/planka"
)

// BoardToolset covers projects, boards, lists and board memberships.
type BoardToolset struct {
	client *planka.Client
}

// NewBoardToolset creates the board toolset.
func NewBoardToolset(client *planka.Client) *BoardToolset {
	return &BoardToolset{client: client}
}

func (t *BoardToolset) Name() string { return "boards" }

func (t *BoardToolset) Tools() []Tool {
	return []Tool{
		{
			Name:        "list_projects",
			Description: "List every project visible to the agent.",
			Parameters:  schema(map[string]any{}),
		},
		{
			Name:        "create_project",
			Description: "Create a new project.",
			Parameters: schema(map[string]any{
				"name": prop("string", "Project name"),
			}, "name"),
		},
		{
			Name:        "get_project",
			Description: "Get one project by ID.",
			Parameters: schema(map[string]any{
				"projectId": prop("string", "Project ID"),
			}, "projectId"),
		},
		{
			Name:        "update_project",
			Description: "Rename a project.",
			Parameters: schema(map[string]any{
				"projectId": prop("string", "Project ID"),
				"name":      prop("string", "New project name"),
			}, "projectId", "name"),
		},
		{
			Name:        "delete_project",
			Description: "Delete a project and everything in it. Irreversible.",
			Parameters: schema(map[string]any{
				"projectId": prop("string", "Project ID"),
			}, "projectId"),
		},
		{
			Name:        "list_boards",
			Description: "List the boards of a project.",
			Parameters: schema(map[string]any{
				"projectId": prop("string", "Project ID"),
			}, "projectId"),
		},
		{
			Name: "create_board",
			Description: "Create a board in a project. The new board is seeded " +
				"with the default lists and labels, and the admin user is added as editor.",
			Parameters: schema(map[string]any{
				"projectId": prop("string", "Project ID"),
				"name":      prop("string", "Board name"),
				"position":  prop("number", "Board position (optional)"),
			}, "projectId", "name"),
		},
		{
			Name:        "get_board",
			Description: "Get a board with its lists, cards, tasks, labels and members.",
			Parameters: schema(map[string]any{
				"boardId": prop("string", "Board ID"),
			}, "boardId"),
		},
		{
			Name:        "update_board",
			Description: "Rename or reposition a board.",
			Parameters: schema(map[string]any{
				"boardId":  prop("string", "Board ID"),
				"name":     prop("string", "New board name (optional)"),
				"position": prop("number", "New position (optional)"),
			}, "boardId"),
		},
		{
			Name:        "delete_board",
			Description: "Delete a board and everything on it. Irreversible.",
			Parameters: schema(map[string]any{
				"boardId": prop("string", "Board ID"),
			}, "boardId"),
		},
		{
			Name:        "list_lists",
			Description: "List the lists (lanes) of a board.",
			Parameters: schema(map[string]any{
				"boardId": prop("string", "Board ID"),
			}, "boardId"),
		},
		{
			Name:        "create_list",
			Description: "Create a list on a board.",
			Parameters: schema(map[string]any{
				"boardId":  prop("string", "Board ID"),
				"name":     prop("string", "List name"),
				"position": prop("number", "List position (optional)"),
			}, "boardId", "name"),
		},
		{
			Name:        "update_list",
			Description: "Rename or reposition a list.",
			Parameters: schema(map[string]any{
				"listId":   prop("string", "List ID"),
				"name":     prop("string", "New list name (optional)"),
				"position": prop("number", "New position (optional)"),
			}, "listId"),
		},
		{
			Name:        "delete_list",
			Description: "Delete a list and every card on it. Irreversible.",
			Parameters: schema(map[string]any{
				"listId": prop("string", "List ID"),
			}, "listId"),
		},
		{
			Name:        "list_cards_in_list",
			Description: "List the cards on one list of a board.",
			Parameters: schema(map[string]any{
				"boardId": prop("string", "Board ID owning the list"),
				"listId":  prop("string", "List ID"),
			}, "boardId", "listId"),
		},
		{
			Name:        "list_board_members",
			Description: "List the memberships of a board.",
			Parameters: schema(map[string]any{
				"boardId": prop("string", "Board ID"),
			}, "boardId"),
		},
		{
			Name:        "add_board_member",
			Description: "Grant a user access to a board as editor or viewer.",
			Parameters: schema(map[string]any{
				"boardId":    prop("string", "Board ID"),
				"userId":     prop("string", "User ID to add"),
				"role":       prop("string", "Role: editor or viewer (default editor)"),
				"canComment": prop("boolean", "Whether a viewer may comment (default true)"),
			}, "boardId", "userId"),
		},
		{
			Name:        "remove_board_member",
			Description: "Revoke a board membership by its membership ID.",
			Parameters: schema(map[string]any{
				"membershipId": prop("string", "Board membership ID"),
			}, "membershipId"),
		},
	}
}

func (t *BoardToolset) Call(ctx context.Context, toolName string, args map[string]any) (any, error) {
	switch toolName {
	case "list_projects":
		return t.client.Projects(ctx)
	case "create_project":
		name, err := stringArg(args, "name")
		if err != nil {
			return nil, err
		}
		return t.client.CreateProject(ctx, name)
	case "get_project":
		id, err := stringArg(args, "projectId")
		if err != nil {
			return nil, err
		}
		return t.client.GetProject(ctx, id)
	case "update_project":
		id, err := stringArg(args, "projectId")
		if err != nil {
			return nil, err
		}
		name, err := stringArg(args, "name")
		if err != nil {
			return nil, err
		}
		return t.client.UpdateProject(ctx, id, planka.ProjectPatch{Name: &name})
	case "delete_project":
		id, err := stringArg(args, "projectId")
		if err != nil {
			return nil, err
		}
		return deleted(id, t.client.DeleteProject(ctx, id))
	case "list_boards":
		id, err := stringArg(args, "projectId")
		if err != nil {
			return nil, err
		}
		return t.client.BoardsByProject(ctx, id)
	case "create_board":
		return t.createBoard(ctx, args)
	case "get_board":
		id, err := stringArg(args, "boardId")
		if err != nil {
			return nil, err
		}
		return t.client.GetBoardContents(ctx, id)
	case "update_board":
		return t.updateBoard(ctx, args)
	case "delete_board":
		id, err := stringArg(args, "boardId")
		if err != nil {
			return nil, err
		}
		return deleted(id, t.client.DeleteBoard(ctx, id))
	case "list_lists":
		id, err := stringArg(args, "boardId")
		if err != nil {
			return nil, err
		}
		return t.client.ListsByBoard(ctx, id)
	case "create_list":
		return t.createList(ctx, args)
	case "update_list":
		return t.updateList(ctx, args)
	case "delete_list":
		id, err := stringArg(args, "listId")
		if err != nil {
			return nil, err
		}
		return deleted(id, t.client.DeleteList(ctx, id))
	case "list_cards_in_list":
		boardID, err := stringArg(args, "boardId")
		if err != nil {
			return nil, err
		}
		listID, err := stringArg(args, "listId")
		if err != nil {
			return nil, err
		}
		return t.client.CardsByList(ctx, boardID, listID)
	case "list_board_members":
		id, err := stringArg(args, "boardId")
		if err != nil {
			return nil, err
		}
		return t.client.MembershipsByBoard(ctx, id)
	case "add_board_member":
		return t.addBoardMember(ctx, args)
	case "remove_board_member":
		id, err := stringArg(args, "membershipId")
		if err != nil {
			return nil, err
		}
		return deleted(id, t.client.RemoveBoardMembership(ctx, id))
	default:
		return nil, &ErrUnknownTool{Toolset: t.Name(), Tool: toolName}
	}
}

func (t *BoardToolset) createBoard(ctx context.Context, args map[string]any) (any, error) {
	projectID, err := stringArg(args, "projectId")
	if err != nil {
		return nil, err
	}
	name, err := stringArg(args, "name")
	if err != nil {
		return nil, err
	}
	position, err := floatArg(args, "position")
	if err != nil {
		return nil, err
	}
	return t.client.CreateBoard(ctx, projectID, name, position)
}

func (t *BoardToolset) updateBoard(ctx context.Context, args map[string]any) (any, error) {
	id, err := stringArg(args, "boardId")
	if err != nil {
		return nil, err
	}
	position, err := optFloatPtr(args, "position")
	if err != nil {
		return nil, err
	}
	return t.client.UpdateBoard(ctx, id, planka.BoardPatch{
		Name:     optStringPtr(args, "name"),
		Position: position,
	})
}

func (t *BoardToolset) createList(ctx context.Context, args map[string]any) (any, error) {
	boardID, err := stringArg(args, "boardId")
	if err != nil {
		return nil, err
	}
	name, err := stringArg(args, "name")
	if err != nil {
		return nil, err
	}
	position, err := floatArg(args, "position")
	if err != nil {
		return nil, err
	}
	return t.client.CreateList(ctx, boardID, name, position)
}

func (t *BoardToolset) updateList(ctx context.Context, args map[string]any) (any, error) {
	id, err := stringArg(args, "listId")
	if err != nil {
		return nil, err
	}
	position, err := optFloatPtr(args, "position")
	if err != nil {
		return nil, err
	}
	return t.client.UpdateList(ctx, id, planka.ListPatch{
		Name:     optStringPtr(args, "name"),
		Position: position,
	})
}

func (t *BoardToolset) addBoardMember(ctx context.Context, args map[string]any) (any, error) {
	boardID, err := stringArg(args, "boardId")
	if err != nil {
		return nil, err
	}
	userID, err := stringArg(args, "userId")
	if err != nil {
		return nil, err
	}
	role := optString(args, "role")
	if role == "" {
		role = planka.RoleEditor
	}
	canComment := true
	if b := optBoolPtr(args, "canComment"); b != nil {
		canComment = *b
	}
	return t.client.AddBoardMembership(ctx, boardID, userID, role, canComment)
}

// deleted is the uniform result of delete tools.
func deleted(id string, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return map[string]any{"deleted": true, "id": id}, nil
}
