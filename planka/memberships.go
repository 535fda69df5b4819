package planka

import (
	"context"
	"fmt"
)

// AddBoardMembership grants a user access to a board as editor or viewer.
func (c *Client) AddBoardMembership(ctx context.Context, boardID, userID, role string, canComment bool) (*BoardMembership, error) {
	if userID == "" {
		return nil, newSchemaError("add board member: userId is required")
	}
	if role != RoleEditor && role != RoleViewer {
		return nil, newSchemaError("add board member: role must be %q or %q", RoleEditor, RoleViewer)
	}

	var env itemEnvelope[BoardMembership]
	err := c.post(ctx, "boards/"+boardID+"/memberships", map[string]any{
		"userId":     userID,
		"role":       role,
		"canComment": canComment,
	}, &env)
	if err != nil {
		return nil, fmt.Errorf("add board member: %w", err)
	}
	return &env.Item, nil
}

// MembershipsByBoard reads the memberships embedded in the board response.
func (c *Client) MembershipsByBoard(ctx context.Context, boardID string) ([]BoardMembership, error) {
	env, err := c.boardDetail(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("get board members: %w", err)
	}
	if env.Included.BoardMemberships == nil {
		return []BoardMembership{}, nil
	}
	return env.Included.BoardMemberships, nil
}

// RemoveBoardMembership revokes a user's board access.
func (c *Client) RemoveBoardMembership(ctx context.Context, membershipID string) error {
	if err := c.delete(ctx, "board-memberships/" + membershipID); err != nil {
		return fmt.Errorf("remove board member: %w", err)
	}
	return nil
}
