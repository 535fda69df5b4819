package planka

import (
	"context"
	"fmt"
	"strings"
)

// PositionGap is the spacing the upstream UI uses between ordered items.
const PositionGap = 65535

// defaultListNames are created on every new board, in this order.
var defaultListNames = []string{
	"Backlog",
	"To Do",
	"In Progress",
	"On Hold",
	"Review",
	"Done",
}

// defaultLabels seed a new board: four priorities, four types, three statuses.
var defaultLabels = []struct {
	Name  string
	Color string
}{
	{"Critical", "berry-red"},
	{"High Priority", "pumpkin-orange"},
	{"Medium Priority", "egg-yellow"},
	{"Low Priority", "bright-moss"},
	{"Bug", "red-burgundy"},
	{"Feature", "lagoon-blue"},
	{"Enhancement", "morning-sky"},
	{"Documentation", "light-mud"},
	{"Blocked", "dark-granite"},
	{"Needs Review", "pink-tulip"},
	{"Ready", "coral-green"},
}

// CreateBoard creates a board, then best-effort populates it: the admin
// user (when resolvable) is added as an editor member, and the default
// lists and labels are created at spaced positions. Population failures
// are logged and never fail the board creation itself.
func (c *Client) CreateBoard(ctx context.Context, projectID, name string, position float64) (*Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newSchemaError("create board: name is required")
	}
	if position == 0 {
		position = PositionGap
	}

	var env itemEnvelope[Board]
	err := c.post(ctx, "projects/"+projectID+"/boards", map[string]any{
		"name":     name,
		"position": position,
	}, &env)
	if err != nil {
		return nil, fmt.Errorf("create board: %w", err)
	}
	board := env.Item

	c.populateBoard(ctx, board.ID)
	return &board, nil
}

// populateBoard applies the default membership, lists and labels to a
// fresh board. Every step is best-effort.
func (c *Client) populateBoard(ctx context.Context, boardID string) {
	if adminID := c.AdminUserID(ctx); adminID != "" {
		if _, err := c.AddBoardMembership(ctx, boardID, adminID, RoleEditor, true); err != nil {
			c.logger.Warn("add admin board member", "board_id", boardID, "error", err)
		}
	} else {
		c.logger.Warn("board created without admin member", "board_id", boardID)
	}

	for i, name := range defaultListNames {
		pos := float64((i + 1) * PositionGap)
		if _, err := c.CreateList(ctx, boardID, name, pos); err != nil {
			c.logger.Warn("create default list",
				"board_id", boardID, "list", name, "error", err)
		}
	}

	for i, l := range defaultLabels {
		pos := float64((i + 1) * PositionGap)
		if _, err := c.CreateLabel(ctx, boardID, l.Name, l.Color, pos); err != nil {
			c.logger.Warn("create default label",
				"board_id", boardID, "label", l.Name, "error", err)
		}
	}
}

// boardDetail fetches a board with its embedded child collections.
func (c *Client) boardDetail(ctx context.Context, id string) (*itemEnvelope[Board], error) {
	var env itemEnvelope[Board]
	if err := c.get(ctx, "boards/"+id, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// GetBoard fetches one board by ID.
func (c *Client) GetBoard(ctx context.Context, id string) (*Board, error) {
	env, err := c.boardDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get board: %w", err)
	}
	return &env.Item, nil
}

// ListsByBoard reads the lists embedded in the board response.
func (c *Client) ListsByBoard(ctx context.Context, boardID string) ([]List, error) {
	env, err := c.boardDetail(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("get board lists: %w", err)
	}
	if env.Included.Lists == nil {
		return []List{}, nil
	}
	return env.Included.Lists, nil
}

// CardsByBoard reads the cards embedded in the board response.
func (c *Client) CardsByBoard(ctx context.Context, boardID string) ([]Card, error) {
	env, err := c.boardDetail(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("get board cards: %w", err)
	}
	if env.Included.Cards == nil {
		return []Card{}, nil
	}
	return env.Included.Cards, nil
}

// LabelsByBoard reads the labels embedded in the board response.
func (c *Client) LabelsByBoard(ctx context.Context, boardID string) ([]Label, error) {
	env, err := c.boardDetail(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("get board labels: %w", err)
	}
	if env.Included.Labels == nil {
		return []Label{}, nil
	}
	return env.Included.Labels, nil
}

// TasksByBoard reads the tasks embedded in the board response.
func (c *Client) TasksByBoard(ctx context.Context, boardID string) ([]Task, error) {
	env, err := c.boardDetail(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("get board tasks: %w", err)
	}
	if env.Included.Tasks == nil {
		return []Task{}, nil
	}
	return env.Included.Tasks, nil
}

// CardLabelsByBoard reads the card-label links embedded in the board response.
func (c *Client) CardLabelsByBoard(ctx context.Context, boardID string) ([]CardLabel, error) {
	env, err := c.boardDetail(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("get board card labels: %w", err)
	}
	if env.Included.CardLabels == nil {
		return []CardLabel{}, nil
	}
	return env.Included.CardLabels, nil
}

// BoardContents is a board together with every child collection the
// upstream embeds in its response. Absent collections come back as empty
// slices.
type BoardContents struct {
	Board       Board             `json:"board"`
	Lists       []List            `json:"lists"`
	Cards       []Card            `json:"cards"`
	Tasks       []Task            `json:"tasks"`
	Labels      []Label           `json:"labels"`
	CardLabels  []CardLabel       `json:"cardLabels"`
	Memberships []BoardMembership `json:"memberships"`
}

// GetBoardContents fetches a board and all of its embedded children in a
// single upstream call.
func (c *Client) GetBoardContents(ctx context.Context, id string) (*BoardContents, error) {
	env, err := c.boardDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get board contents: %w", err)
	}

	contents := &BoardContents{
		Board:       env.Item,
		Lists:       env.Included.Lists,
		Cards:       env.Included.Cards,
		Tasks:       env.Included.Tasks,
		Labels:      env.Included.Labels,
		CardLabels:  env.Included.CardLabels,
		Memberships: env.Included.BoardMemberships,
	}
	if contents.Lists == nil {
		contents.Lists = []List{}
	}
	if contents.Cards == nil {
		contents.Cards = []Card{}
	}
	if contents.Tasks == nil {
		contents.Tasks = []Task{}
	}
	if contents.Labels == nil {
		contents.Labels = []Label{}
	}
	if contents.CardLabels == nil {
		contents.CardLabels = []CardLabel{}
	}
	if contents.Memberships == nil {
		contents.Memberships = []BoardMembership{}
	}
	return contents, nil
}

// BoardPatch holds the optional fields of a board update.
type BoardPatch struct {
	Name     *string  `json:"name,omitempty"`
	Position *float64 `json:"position,omitempty"`
}

// UpdateBoard applies a partial update and returns the updated board.
func (c *Client) UpdateBoard(ctx context.Context, id string, patch BoardPatch) (*Board, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, newSchemaError("update board: name must be non-empty")
	}

	var env itemEnvelope[Board]
	if err := c.patch(ctx, "boards/"+id, patch, &env); err != nil {
		return nil, fmt.Errorf("update board: %w", err)
	}
	return &env.Item, nil
}

// DeleteBoard removes a board.
func (c *Client) DeleteBoard(ctx context.Context, id string) error {
	if err := c.delete(ctx, "boards/"+id); err != nil {
		return fmt.Errorf("delete board: %w", err)
	}
	return nil
}
