package toolset

import (
	"context"
	"strings"

	"github.com/openkanban/planka-mcp/planka"
)

// CardToolset covers cards, comments, attachments, card labels, card
// members and the per-card stopwatch.
type CardToolset struct {
	client *planka.Client
}

// NewCardToolset creates the card toolset.
func NewCardToolset(client *planka.Client) *CardToolset {
	return &CardToolset{client: client}
}

func (t *CardToolset) Name() string { return "cards" }

func (t *CardToolset) Tools() []Tool {
	return []Tool{
		{
			Name:        "create_card",
			Description: "Create a card on a list.",
			Parameters: schema(map[string]any{
				"listId":      prop("string", "List ID"),
				"name":        prop("string", "Card name"),
				"description": prop("string", "Card description (optional)"),
				"position":    prop("number", "Card position (optional)"),
				"dueDate":     prop("string", "Due date, RFC3339 (optional)"),
			}, "listId", "name"),
		},
		{
			Name:        "get_card",
			Description: "Get one card by ID.",
			Parameters: schema(map[string]any{
				"cardId": prop("string", "Card ID"),
			}, "cardId"),
		},
		{
			Name:        "update_card",
			Description: "Update a card's name, description, due date or completion flag.",
			Parameters: schema(map[string]any{
				"cardId":      prop("string", "Card ID"),
				"name":        prop("string", "New name (optional)"),
				"description": prop("string", "New description (optional)"),
				"dueDate":     prop("string", "New due date, RFC3339 (optional)"),
				"isCompleted": prop("boolean", "Due-date completion flag (optional)"),
			}, "cardId"),
		},
		{
			Name:        "delete_card",
			Description: "Delete a card. Irreversible.",
			Parameters: schema(map[string]any{
				"cardId": prop("string", "Card ID"),
			}, "cardId"),
		},
		{
			Name: "move_card",
			Description: "Move a card to another list, optionally across boards. " +
				"Pass boardId and projectId only for cross-board moves.",
			Parameters: schema(map[string]any{
				"cardId":    prop("string", "Card ID"),
				"listId":    prop("string", "Target list ID"),
				"position":  prop("number", "Position in the target list (optional)"),
				"boardId":   prop("string", "Target board ID (cross-board only)"),
				"projectId": prop("string", "Target project ID (cross-project only)"),
			}, "cardId", "listId"),
		},
		{
			Name:        "duplicate_card",
			Description: "Duplicate a card in place.",
			Parameters: schema(map[string]any{
				"cardId":   prop("string", "Card ID"),
				"position": prop("number", "Position for the copy (optional)"),
			}, "cardId"),
		},
		{
			Name:        "assign_card_member",
			Description: "Assign a user to a card.",
			Parameters: schema(map[string]any{
				"cardId": prop("string", "Card ID"),
				"userId": prop("string", "User ID"),
			}, "cardId", "userId"),
		},
		{
			Name:        "unassign_card_member",
			Description: "Unassign a user from a card.",
			Parameters: schema(map[string]any{
				"cardId": prop("string", "Card ID"),
				"userId": prop("string", "User ID"),
			}, "cardId", "userId"),
		},
		{
			Name:        "add_card_label",
			Description: "Attach a board label to a card.",
			Parameters: schema(map[string]any{
				"cardId":  prop("string", "Card ID"),
				"labelId": prop("string", "Label ID"),
			}, "cardId", "labelId"),
		},
		{
			Name:        "remove_card_label",
			Description: "Detach a label from a card.",
			Parameters: schema(map[string]any{
				"cardId":  prop("string", "Card ID"),
				"labelId": prop("string", "Label ID"),
			}, "cardId", "labelId"),
		},
		{
			Name:        "add_comment",
			Description: "Add a comment to a card.",
			Parameters: schema(map[string]any{
				"cardId": prop("string", "Card ID"),
				"text":   prop("string", "Comment text"),
			}, "cardId", "text"),
		},
		{
			Name:        "list_comments",
			Description: "List the comments of a card.",
			Parameters: schema(map[string]any{
				"cardId": prop("string", "Card ID"),
			}, "cardId"),
		},
		{
			Name:        "update_comment",
			Description: "Edit a comment's text.",
			Parameters: schema(map[string]any{
				"commentId": prop("string", "Comment ID"),
				"text":      prop("string", "New comment text"),
			}, "commentId", "text"),
		},
		{
			Name:        "delete_comment",
			Description: "Delete a comment. Irreversible.",
			Parameters: schema(map[string]any{
				"commentId": prop("string", "Comment ID"),
			}, "commentId"),
		},
		{
			Name:        "attach_file",
			Description: "Attach a text file to a card.",
			Parameters: schema(map[string]any{
				"cardId":   prop("string", "Card ID"),
				"filename": prop("string", "File name"),
				"content":  prop("string", "File content"),
			}, "cardId", "filename", "content"),
		},
		{
			Name: "start_stopwatch",
			Description: "Start a card's stopwatch. The accumulated total is " +
				"preserved; starting an already-running stopwatch is a no-op.",
			Parameters: schema(map[string]any{
				"cardId": prop("string", "Card ID"),
			}, "cardId"),
		},
		{
			Name:        "stop_stopwatch",
			Description: "Stop a card's stopwatch, folding the elapsed time into the total.",
			Parameters: schema(map[string]any{
				"cardId": prop("string", "Card ID"),
			}, "cardId"),
		},
		{
			Name:        "get_stopwatch",
			Description: "Get a card's stopwatch status with formatted durations.",
			Parameters: schema(map[string]any{
				"cardId": prop("string", "Card ID"),
			}, "cardId"),
		},
		{
			Name:        "reset_stopwatch",
			Description: "Reset a card's stopwatch to zero, stopped.",
			Parameters: schema(map[string]any{
				"cardId": prop("string", "Card ID"),
			}, "cardId"),
		},
	}
}

func (t *CardToolset) Call(ctx context.Context, toolName string, args map[string]any) (any, error) {
	switch toolName {
	case "create_card":
		return t.createCard(ctx, args)
	case "get_card":
		id, err := stringArg(args, "cardId")
		if err != nil {
			return nil, err
		}
		return t.client.GetCard(ctx, id)
	case "update_card":
		return t.updateCard(ctx, args)
	case "delete_card":
		id, err := stringArg(args, "cardId")
		if err != nil {
			return nil, err
		}
		return deleted(id, t.client.DeleteCard(ctx, id))
	case "move_card":
		return t.moveCard(ctx, args)
	case "duplicate_card":
		id, err := stringArg(args, "cardId")
		if err != nil {
			return nil, err
		}
		position, err := floatArg(args, "position")
		if err != nil {
			return nil, err
		}
		return t.client.DuplicateCard(ctx, id, position)
	case "assign_card_member", "unassign_card_member":
		return t.cardMember(ctx, toolName, args)
	case "add_card_label", "remove_card_label":
		return t.cardLabel(ctx, toolName, args)
	case "add_comment":
		cardID, err := stringArg(args, "cardId")
		if err != nil {
			return nil, err
		}
		text, err := stringArg(args, "text")
		if err != nil {
			return nil, err
		}
		return t.client.CreateComment(ctx, cardID, text)
	case "list_comments":
		id, err := stringArg(args, "cardId")
		if err != nil {
			return nil, err
		}
		return t.client.CommentsByCard(ctx, id)
	case "update_comment":
		id, err := stringArg(args, "commentId")
		if err != nil {
			return nil, err
		}
		text, err := stringArg(args, "text")
		if err != nil {
			return nil, err
		}
		return t.client.UpdateComment(ctx, id, text)
	case "delete_comment":
		id, err := stringArg(args, "commentId")
		if err != nil {
			return nil, err
		}
		return deleted(id, t.client.DeleteComment(ctx, id))
	case "attach_file":
		return t.attachFile(ctx, args)
	case "start_stopwatch":
		id, err := stringArg(args, "cardId")
		if err != nil {
			return nil, err
		}
		if _, err := t.client.StartStopwatch(ctx, id); err != nil {
			return nil, err
		}
		return t.client.GetStopwatch(ctx, id)
	case "stop_stopwatch":
		id, err := stringArg(args, "cardId")
		if err != nil {
			return nil, err
		}
		if _, err := t.client.StopStopwatch(ctx, id); err != nil {
			return nil, err
		}
		return t.client.GetStopwatch(ctx, id)
	case "get_stopwatch":
		id, err := stringArg(args, "cardId")
		if err != nil {
			return nil, err
		}
		return t.client.GetStopwatch(ctx, id)
	case "reset_stopwatch":
		id, err := stringArg(args, "cardId")
		if err != nil {
			return nil, err
		}
		if _, err := t.client.ResetStopwatch(ctx, id); err != nil {
			return nil, err
		}
		return t.client.GetStopwatch(ctx, id)
	default:
		return nil, &ErrUnknownTool{Toolset: t.Name(), Tool: toolName}
	}
}

func (t *CardToolset) createCard(ctx context.Context, args map[string]any) (any, error) {
	listID, err := stringArg(args, "listId")
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
	dueDate, err := timeArg(args, "dueDate")
	if err != nil {
		return nil, err
	}
	return t.client.CreateCard(ctx, listID, planka.CardInput{
		Name:        name,
		Description: optString(args, "description"),
		Position:    position,
		DueDate:     dueDate,
	})
}

func (t *CardToolset) updateCard(ctx context.Context, args map[string]any) (any, error) {
	id, err := stringArg(args, "cardId")
	if err != nil {
		return nil, err
	}
	dueDate, err := timeArg(args, "dueDate")
	if err != nil {
		return nil, err
	}
	return t.client.UpdateCard(ctx, id, planka.CardPatch{
		Name:        optStringPtr(args, "name"),
		Description: optStringPtr(args, "description"),
		DueDate:     dueDate,
		IsCompleted: optBoolPtr(args, "isCompleted"),
	})
}

func (t *CardToolset) moveCard(ctx context.Context, args map[string]any) (any, error) {
	id, err := stringArg(args, "cardId")
	if err != nil {
		return nil, err
	}
	listID, err := stringArg(args, "listId")
	if err != nil {
		return nil, err
	}
	position, err := floatArg(args, "position")
	if err != nil {
		return nil, err
	}
	return t.client.MoveCard(ctx, id, listID, position,
		optString(args, "boardId"), optString(args, "projectId"))
}

func (t *CardToolset) cardMember(ctx context.Context, toolName string, args map[string]any) (any, error) {
	cardID, err := stringArg(args, "cardId")
	if err != nil {
		return nil, err
	}
	userID, err := stringArg(args, "userId")
	if err != nil {
		return nil, err
	}
	if toolName == "assign_card_member" {
		err = t.client.AddCardMembership(ctx, cardID, userID)
	} else {
		err = t.client.RemoveCardMembership(ctx, cardID, userID)
	}
	if err != nil {
		return nil, err
	}
	return map[string]any{"cardId": cardID, "userId": userID}, nil
}

func (t *CardToolset) cardLabel(ctx context.Context, toolName string, args map[string]any) (any, error) {
	cardID, err := stringArg(args, "cardId")
	if err != nil {
		return nil, err
	}
	labelID, err := stringArg(args, "labelId")
	if err != nil {
		return nil, err
	}
	if toolName == "add_card_label" {
		err = t.client.AddLabelToCard(ctx, cardID, labelID)
	} else {
		err = t.client.RemoveLabelFromCard(ctx, cardID, labelID)
	}
	if err != nil {
		return nil, err
	}
	return map[string]any{"cardId": cardID, "labelId": labelID}, nil
}

func (t *CardToolset) attachFile(ctx context.Context, args map[string]any) (any, error) {
	cardID, err := stringArg(args, "cardId")
	if err != nil {
		return nil, err
	}
	filename, err := stringArg(args, "filename")
	if err != nil {
		return nil, err
	}
	content, err := stringArg(args, "content")
	if err != nil {
		return nil, err
	}
	return t.client.CreateAttachment(ctx, cardID, filename, strings.NewReader(content))
}
