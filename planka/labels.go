package planka

import (
	"context"
	"fmt"
	"strings"
)

// LabelColors is the fixed palette accepted by the upstream API.
var LabelColors = []string{
	"berry-red",
	"pumpkin-orange",
	"lagoon-blue",
	"pink-tulip",
	"red-burgundy",
	"light-mud",
	"orange-peel",
	"bright-moss",
	"antique-blue",
	"dark-granite",
	"lagune-blue",
	"sunny-grass",
	"morning-sky",
	"light-orange",
	"midnight-blue",
	"tank-green",
	"gun-metal",
	"wet-moss",
	"red-curtain",
	"fresh-salmon",
	"desert-sand",
	"light-cocoa",
	"egg-yellow",
	"coral-green",
	"light-concrete",
}

var labelColorSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(LabelColors))
	for _, c := range LabelColors {
		set[c] = struct{}{}
	}
	return set
}()

// ValidLabelColor reports whether color is in the fixed palette.
func ValidLabelColor(color string) bool {
	_, ok := labelColorSet[color]
	return ok
}

// CreateLabel creates a board label. The color is validated against the
// palette before any network call.
func (c *Client) CreateLabel(ctx context.Context, boardID, name, color string, position float64) (*Label, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newSchemaError("create label: name is required")
	}
	if !ValidLabelColor(color) {
		return nil, newSchemaError("create label: invalid color %q", color)
	}
	if position == 0 {
		position = PositionGap
	}

	var env itemEnvelope[Label]
	err := c.post(ctx, "boards/"+boardID+"/labels", map[string]any{
		"name":     name,
		"color":    color,
		"position": position,
	}, &env)
	if err != nil {
		return nil, fmt.Errorf("create label: %w", err)
	}
	return &env.Item, nil
}

// LabelPatch holds the optional fields of a label update.
type LabelPatch struct {
	Name     *string  `json:"name,omitempty"`
	Color    *string  `json:"color,omitempty"`
	Position *float64 `json:"position,omitempty"`
}

// UpdateLabel applies a partial update and returns the updated label.
func (c *Client) UpdateLabel(ctx context.Context, id string, patch LabelPatch) (*Label, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, newSchemaError("update label: name must be non-empty")
	}
	if patch.Color != nil && !ValidLabelColor(*patch.Color) {
		return nil, newSchemaError("update label: invalid color %q", *patch.Color)
	}

	var env itemEnvelope[Label]
	if err := c.patch(ctx, "labels/"+id, patch, &env); err != nil {
		return nil, fmt.Errorf("update label: %w", err)
	}
	return &env.Item, nil
}

// DeleteLabel removes a label from its board and every card carrying it.
func (c *Client) DeleteLabel(ctx context.Context, id string) error {
	if err := c.delete(ctx, "labels/"+id); err != nil {
		return fmt.Errorf("delete label: %w", err)
	}
	return nil
}

// AddLabelToCard attaches a board label to a card.
func (c *Client) AddLabelToCard(ctx context.Context, cardID, labelID string) error {
	if labelID == "" {
		return newSchemaError("add card label: labelId is required")
	}
	err := c.post(ctx, "cards/"+cardID+"/labels", map[string]string{
		"labelId": labelID,
	}, nil)
	if err != nil {
		return fmt.Errorf("add card label: %w", err)
	}
	return nil
}

// RemoveLabelFromCard detaches a label from a card.
func (c *Client) RemoveLabelFromCard(ctx context.Context, cardID, labelID string) error {
	if err := c.delete(ctx, "cards/"+cardID+"/labels/"+labelID); err != nil {
		return fmt.Errorf("remove card label: %w", err)
	}
	return nil
}
