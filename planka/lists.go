package planka

import (
	"context"
	"fmt"
	"strings"
)

// CreateList creates a list on a board.
func (c *Client) CreateList(ctx context.Context, boardID, name string, position float64) (*List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newSchemaError("create list: name is required")
	}
	if position == 0 {
		position = PositionGap
	}

	var env itemEnvelope[List]
	err := c.post(ctx, "boards/"+boardID+"/lists", map[string]any{
		"name":     name,
		"position": position,
	}, &env)
	if err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}
	return &env.Item, nil
}

// CardsByList filters the board's embedded cards down to one list. The
// upstream API has no per-list cards endpoint; cards are read through the
// owning board.
func (c *Client) CardsByList(ctx context.Context, boardID, listID string) ([]Card, error) {
	cards, err := c.CardsByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("get list cards: %w", err)
	}
	filtered := []Card{}
	for _, card := range cards {
		if card.ListID == listID {
			filtered = append(filtered, card)
		}
	}
	return filtered, nil
}

// ListPatch holds the optional fields of a list update.
type ListPatch struct {
	Name     *string  `json:"name,omitempty"`
	Position *float64 `json:"position,omitempty"`
}

// UpdateList applies a partial update and returns the updated list.
func (c *Client) UpdateList(ctx context.Context, id string, patch ListPatch) (*List, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, newSchemaError("update list: name must be non-empty")
	}

	var env itemEnvelope[List]
	if err := c.patch(ctx, "lists/"+id, patch, &env); err != nil {
		return nil, fmt.Errorf("update list: %w", err)
	}
	return &env.Item, nil
}

// DeleteList removes a list and every card on it.
func (c *Client) DeleteList(ctx context.Context, id string) error {
	if err := c.delete(ctx, "lists/"+id); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}
