package planka

import (
	"context"
	"fmt"
	"strings"
)

// CreateComment posts a comment on a card. Comments are commentCard
// actions upstream.
func (c *Client) CreateComment(ctx context.Context, cardID, text string) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, newSchemaError("create comment: text is required")
	}

	var env itemEnvelope[Action]
	err := c.post(ctx, "cards/"+cardID+"/comment-actions", map[string]string{
		"text": text,
	}, &env)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	comment, ok := commentFromAction(env.Item)
	if !ok {
		// Some upstream versions return the comment without an action type.
		comment = Comment{
			ID:        env.Item.ID,
			Text:      env.Item.Data.Text,
			CardID:    env.Item.CardID,
			UserID:    env.Item.UserID,
			CreatedAt: env.Item.CreatedAt,
		}
	}
	if comment.CardID == "" {
		comment.CardID = cardID
	}
	return &comment, nil
}

// CommentsByCard lists a card's comments by filtering its action feed.
// An absent or malformed feed yields an empty slice.
func (c *Client) CommentsByCard(ctx context.Context, cardID string) ([]Comment, error) {
	var env itemsEnvelope[Action]
	if err := c.get(ctx, "cards/"+cardID+"/actions", &env); err != nil {
		return nil, fmt.Errorf("get card comments: %w", err)
	}

	comments := []Comment{}
	for _, action := range env.Items {
		if comment, ok := commentFromAction(action); ok {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

// GetComment finds a comment by ID. There is no direct endpoint, so this
// walks projects, boards and cards scanning each action feed. Worst case
// O(projects x boards x cards) upstream calls.
func (c *Client) GetComment(ctx context.Context, id string) (*Comment, error) {
	projects, err := c.Projects(ctx)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	for _, project := range projects {
		boards, err := c.BoardsByProject(ctx, project.ID)
		if err != nil {
			continue
		}
		for _, board := range boards {
			cards, err := c.CardsByBoard(ctx, board.ID)
			if err != nil {
				continue
			}
			for _, card := range cards {
				comments, err := c.CommentsByCard(ctx, card.ID)
				if err != nil {
					continue
				}
				for _, comment := range comments {
					if comment.ID == id {
						return &comment, nil
					}
				}
			}
		}
	}
	return nil, fmt.Errorf("get comment: %w", &APIError{
		Kind:    KindNotFound,
		Status:  404,
		Message: fmt.Sprintf("comment %s not found", id),
	})
}

// UpdateComment changes a comment's text.
func (c *Client) UpdateComment(ctx context.Context, id, text string) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, newSchemaError("update comment: text is required")
	}

	var env itemEnvelope[Action]
	err := c.patch(ctx, "comment-actions/"+id, map[string]string{"text": text}, &env)
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	comment := Comment{
		ID:        env.Item.ID,
		Text:      env.Item.Data.Text,
		CardID:    env.Item.CardID,
		UserID:    env.Item.UserID,
		CreatedAt: env.Item.CreatedAt,
	}
	return &comment, nil
}

// DeleteComment removes a comment.
func (c *Client) DeleteComment(ctx context.Context, id string) error {
	if err := c.delete(ctx, "comment-actions/"+id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
