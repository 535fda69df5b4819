package toolset

import (
	"context"

	"github.com/openkanban/planka-mcp/planka"
)

// LabelToolset covers board labels and the fixed color palette.
type LabelToolset struct {
	client *planka.Client
}

// NewLabelToolset creates the label toolset.
func NewLabelToolset(client *planka.Client) *LabelToolset {
	return &LabelToolset{client: client}
}

func (t *LabelToolset) Name() string { return "labels" }

func (t *LabelToolset) Tools() []Tool {
	return []Tool{
		{
			Name:        "list_label_colors",
			Description: "List the fixed label color palette accepted by the server.",
			Parameters:  schema(map[string]any{}),
		},
		{
			Name:        "list_labels",
			Description: "List the labels of a board.",
			Parameters: schema(map[string]any{
				"boardId": prop("string", "Board ID"),
			}, "boardId"),
		},
		{
			Name:        "create_label",
			Description: "Create a board label. The color must come from the fixed palette.",
			Parameters: schema(map[string]any{
				"boardId":  prop("string", "Board ID"),
				"name":     prop("string", "Label name"),
				"color":    prop("string", "Palette color name, e.g. berry-red"),
				"position": prop("number", "Label position (optional)"),
			}, "boardId", "name", "color"),
		},
		{
			Name:        "update_label",
			Description: "Rename, recolor or reposition a label.",
			Parameters: schema(map[string]any{
				"labelId":  prop("string", "Label ID"),
				"name":     prop("string", "New name (optional)"),
				"color":    prop("string", "New palette color (optional)"),
				"position": prop("number", "New position (optional)"),
			}, "labelId"),
		},
		{
			Name:        "delete_label",
			Description: "Delete a label from its board and every card carrying it.",
			Parameters: schema(map[string]any{
				"labelId": prop("string", "Label ID"),
			}, "labelId"),
		},
	}
}

func (t *LabelToolset) Call(ctx context.Context, toolName string, args map[string]any) (any, error) {
	switch toolName {
	case "list_label_colors":
		return map[string]any{"colors": planka.LabelColors}, nil
	case "list_labels":
		id, err := stringArg(args, "boardId")
		if err != nil {
			return nil, err
		}
		return t.client.LabelsByBoard(ctx, id)
	case "create_label":
		return t.createLabel(ctx, args)
	case "update_label":
		return t.updateLabel(ctx, args)
	case "delete_label":
		id, err := stringArg(args, "labelId")
		if err != nil {
			return nil, err
		}
		return deleted(id, t.client.DeleteLabel(ctx, id))
	default:
		return nil, &ErrUnknownTool{Toolset: t.Name(), Tool: toolName}
	}
}

func (t *LabelToolset) createLabel(ctx context.Context, args map[string]any) (any, error) {
	boardID, err := stringArg(args, "boardId")
	if err != nil {
		return nil, err
	}
	name, err := stringArg(args, "name")
	if err != nil {
		return nil, err
	}
	color, err := stringArg(args, "color")
	if err != nil {
		return nil, err
	}
	position, err := floatArg(args, "position")
	if err != nil {
		return nil, err
	}
	return t.client.CreateLabel(ctx, boardID, name, color, position)
}

func (t *LabelToolset) updateLabel(ctx context.Context, args map[string]any) (any, error) {
	id, err := stringArg(args, "labelId")
	if err != nil {
		return nil, err
	}
	position, err := optFloatPtr(args, "position")
	if err != nil {
		return nil, err
	}
	return t.client.UpdateLabel(ctx, id, planka.LabelPatch{
		Name:     optStringPtr(args, "name"),
		Color:    optStringPtr(args, "color"),
		Position: position,
	})
}
