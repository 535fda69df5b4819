package planka

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// CardInput holds the fields accepted when creating a card.
type CardInput struct {
	Name        string
	Description string
	Position    float64
	DueDate     *time.Time
}

// CreateCard creates a card on a list.
func (c *Client) CreateCard(ctx context.Context, listID string, in CardInput) (*Card, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, newSchemaError("create card: name is required")
	}
	position := in.Position
	if position == 0 {
		position = PositionGap
	}

	body := map[string]any{
		"name":     name,
		"position": position,
	}
	if in.Description != "" {
		body["description"] = in.Description
	}
	if in.DueDate != nil {
		body["dueDate"] = in.DueDate.Format(time.RFC3339)
	}

	var env itemEnvelope[Card]
	if err := c.post(ctx, "lists/"+listID+"/cards", body, &env); err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	return &env.Item, nil
}

// cardDetail fetches a card with its embedded child collections.
func (c *Client) cardDetail(ctx context.Context, id string) (*itemEnvelope[Card], error) {
	var env itemEnvelope[Card]
	if err := c.get(ctx, "cards/"+id, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// GetCard fetches one card by ID.
func (c *Client) GetCard(ctx context.Context, id string) (*Card, error) {
	env, err := c.cardDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}
	return &env.Item, nil
}

// CardPatch holds the optional fields of a card update.
type CardPatch struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	ListID      *string    `json:"listId,omitempty"`
	BoardID     *string    `json:"boardId,omitempty"`
	Position    *float64   `json:"position,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	IsCompleted *bool      `json:"isDueDateCompleted,omitempty"`
	Stopwatch   *Stopwatch `json:"stopwatch,omitempty"`
}

// UpdateCard applies a partial update and returns the updated card.
func (c *Client) UpdateCard(ctx context.Context, id string, patch CardPatch) (*Card, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, newSchemaError("update card: name must be non-empty")
	}

	var env itemEnvelope[Card]
	if err := c.patch(ctx, "cards/"+id, patch, &env); err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}
	return &env.Item, nil
}

// DeleteCard removes a card.
func (c *Client) DeleteCard(ctx context.Context, id string) error {
	if err := c.delete(ctx, "cards/"+id); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	return nil
}

// MoveCard moves a card to another list, and optionally across boards or
// projects when boardID/projectID are non-empty.
func (c *Client) MoveCard(ctx context.Context, id, listID string, position float64, boardID, projectID string) (*Card, error) {
	if listID == "" {
		return nil, newSchemaError("move card: listId is required")
	}
	if position == 0 {
		position = PositionGap
	}

	body := map[string]any{
		"listId":   listID,
		"position": position,
	}
	if boardID != "" {
		body["boardId"] = boardID
	}
	if projectID != "" {
		body["projectId"] = projectID
	}

	var env itemEnvelope[Card]
	if err := c.patch(ctx, "cards/"+id, body, &env); err != nil {
		return nil, fmt.Errorf("move card: %w", err)
	}
	return &env.Item, nil
}

// DuplicateCard copies a card in place, optionally at a given position.
func (c *Client) DuplicateCard(ctx context.Context, id string, position float64) (*Card, error) {
	body := map[string]any{}
	if position != 0 {
		body["position"] = position
	}

	var env itemEnvelope[Card]
	if err := c.post(ctx, "cards/"+id+"/duplicate", body, &env); err != nil {
		return nil, fmt.Errorf("duplicate card: %w", err)
	}
	return &env.Item, nil
}

// AddCardMembership assigns a user to a card.
func (c *Client) AddCardMembership(ctx context.Context, cardID, userID string) error {
	if userID == "" {
		return newSchemaError("add card member: userId is required")
	}
	err := c.post(ctx, "cards/"+cardID+"/memberships", map[string]string{
		"userId": userID,
	}, nil)
	if err != nil {
		return fmt.Errorf("add card member: %w", err)
	}
	return nil
}

// RemoveCardMembership unassigns a user from a card.
func (c *Client) RemoveCardMembership(ctx context.Context, cardID, userID string) error {
	err := c.do(ctx, http.MethodDelete, "cards/"+cardID+"/memberships", map[string]string{
		"userId": userID,
	}, nil, reqOptions{})
	if err != nil {
		return fmt.Errorf("remove card member: %w", err)
	}
	return nil
}

// Attachment is a file uploaded to a card.
type Attachment struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	CardID string `json:"cardId"`
	URL    string `json:"url,omitempty"`
}

// CreateAttachment uploads a file to a card as a multipart request. The
// multipart body bypasses JSON encoding entirely.
func (c *Client) CreateAttachment(ctx context.Context, cardID, filename string, r io.Reader) (*Attachment, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, newSchemaError("create attachment: filename is required")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create attachment: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("create attachment: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("create attachment: %w", err)
	}

	var env itemEnvelope[Attachment]
	err = c.do(ctx, http.MethodPost, "cards/"+cardID+"/attachments", nil, &env, reqOptions{
		multipart: &Multipart{Body: &buf, ContentType: w.FormDataContentType()},
	})
	if err != nil {
		return nil, fmt.Errorf("create attachment: %w", err)
	}
	return &env.Item, nil
}
