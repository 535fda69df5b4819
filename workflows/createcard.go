package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/openkanban/planka-mcp/planka"
)

// CreateCardInput describes a card plus the checklist, members and
// comment to attach to it.
type CreateCardInput struct {
	ListID      string
	Name        string
	Description string
	Position    float64
	DueDate     *time.Time

	// MemberIDs are assigned to the card best-effort, one by one.
	MemberIDs []string

	// Tasks are created in order at spaced positions.
	Tasks []string

	// TaskComments adds a comment on the card for each created task.
	TaskComments bool

	// Comment is an optional closing comment.
	Comment string
}

// CreateCardResult is the combined outcome of CreateCardWithTasks.
type CreateCardResult struct {
	Card    *planka.Card    `json:"card"`
	Tasks   []planka.Task   `json:"tasks"`
	Comment *planka.Comment `json:"comment,omitempty"`
}

// CreateCardWithTasks creates a card, then attaches members, tasks and
// comments. Only the card creation itself is fatal; every later step is
// best-effort and the card is never rolled back.
func (e *Engine) CreateCardWithTasks(ctx context.Context, in CreateCardInput) (*CreateCardResult, error) {
	card, err := e.client.CreateCard(ctx, in.ListID, planka.CardInput{
		Name:        in.Name,
		Description: in.Description,
		Position:    in.Position,
		DueDate:     in.DueDate,
	})
	if err != nil {
		return nil, fmt.Errorf("create card with tasks: %w", err)
	}

	for _, userID := range in.MemberIDs {
		if err := e.client.AddCardMembership(ctx, card.ID, userID); err != nil {
			e.logger.Warn("assign card member",
				"card_id", card.ID, "user_id", userID, "error", err)
		}
	}

	tasks := []planka.Task{}
	for i, name := range in.Tasks {
		position := float64((i + 1) * planka.PositionGap)
		task, err := e.client.CreateTask(ctx, card.ID, name, position)
		if err != nil {
			e.logger.Warn("create card task",
				"card_id", card.ID, "task", name, "error", err)
			continue
		}
		tasks = append(tasks, *task)

		if in.TaskComments {
			text := fmt.Sprintf("%s %s %s", taskCommentPrefix, task.Name, automatedSignature)
			if _, err := e.client.CreateComment(ctx, card.ID, text); err != nil {
				e.logger.Warn("comment on card task",
					"card_id", card.ID, "task", name, "error", err)
			}
		}
	}

	result := &CreateCardResult{Card: card, Tasks: tasks}

	if in.Comment != "" {
		comment, err := e.client.CreateComment(ctx, card.ID, in.Comment)
		if err != nil {
			e.logger.Warn("add card comment", "card_id", card.ID, "error", err)
		} else {
			result.Comment = comment
		}
	}

	return result, nil
}
