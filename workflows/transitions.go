package workflows

import (
	"context"
	"fmt"

	"github.com/openkanban/planka-mcp/planka"
)

// Transition names the supported lane moves.
type Transition string

const (
	// TransitionStart moves a card to the "In Progress" list.
	TransitionStart Transition = "start-working"

	// TransitionTesting moves a card to the "Testing" list, falling back
	// to "Review" on boards that use that name.
	TransitionTesting Transition = "move-to-testing"

	// TransitionDone moves a card to the "Done" list.
	TransitionDone Transition = "move-to-done"

	// TransitionComplete marks the given tasks complete without moving
	// the card.
	TransitionComplete Transition = "mark-completed"
)

// TransitionInput drives ApplyTransition.
type TransitionInput struct {
	CardID     string
	Transition Transition

	// TaskIDs are required by TransitionComplete and ignored otherwise.
	TaskIDs []string

	// Comment overrides the default comment for the transition. Empty
	// keeps the default; for TransitionComplete empty means no comment.
	Comment string
}

// TransitionResult reports what a transition changed.
type TransitionResult struct {
	Card           *planka.Card    `json:"card"`
	MovedToList    *planka.List    `json:"movedToList,omitempty"`
	CompletedTasks []planka.Task   `json:"completedTasks,omitempty"`
	Comment        *planka.Comment `json:"comment,omitempty"`
}

// defaultTransitionComment is posted when the caller supplies none.
func defaultTransitionComment(t Transition) string {
	switch t {
	case TransitionStart:
		return "Started working on this card " + automatedSignature
	case TransitionTesting:
		return "Moved to testing " + automatedSignature
	case TransitionDone:
		return "Marked as done " + automatedSignature
	default:
		return ""
	}
}

// targetListNames maps a move transition to the list names it accepts,
// tried in order.
func targetListNames(t Transition) []string {
	switch t {
	case TransitionStart:
		return []string{"In Progress"}
	case TransitionTesting:
		return []string{"Testing", "Review"}
	case TransitionDone:
		return []string{"Done"}
	default:
		return nil
	}
}

// ApplyTransition runs a named transition on a card. Move transitions
// find the target list by name on the card's board and place the card at
// the end of it; mark-completed flips the given tasks without moving the
// card. A comment is posted afterwards, best-effort.
func (e *Engine) ApplyTransition(ctx context.Context, in TransitionInput) (*TransitionResult, error) {
	if in.Transition == TransitionComplete {
		return e.markCompleted(ctx, in)
	}

	names := targetListNames(in.Transition)
	if names == nil {
		return nil, fmt.Errorf("apply transition: unknown transition %q", in.Transition)
	}

	card, err := e.client.GetCard(ctx, in.CardID)
	if err != nil {
		return nil, fmt.Errorf("apply transition: %w", err)
	}

	contents, err := e.client.GetBoardContents(ctx, card.BoardID)
	if err != nil {
		return nil, fmt.Errorf("apply transition: %w", err)
	}

	target := findListByName(contents.Lists, names...)
	if target == nil {
		return nil, fmt.Errorf("apply transition: board %s has no %q list",
			card.BoardID, names[0])
	}

	position := endOfListPosition(contents.Cards, target.ID)
	moved, err := e.client.MoveCard(ctx, card.ID, target.ID, position, "", "")
	if err != nil {
		return nil, fmt.Errorf("apply transition: %w", err)
	}

	result := &TransitionResult{Card: moved, MovedToList: target}
	result.Comment = e.transitionComment(ctx, card.ID, in)
	return result, nil
}

// markCompleted flips the named tasks to complete and leaves the card in
// place. A task ID that fails does not stop the rest.
func (e *Engine) markCompleted(ctx context.Context, in TransitionInput) (*TransitionResult, error) {
	if len(in.TaskIDs) == 0 {
		return nil, fmt.Errorf("apply transition: mark-completed needs at least one task ID")
	}

	card, err := e.client.GetCard(ctx, in.CardID)
	if err != nil {
		return nil, fmt.Errorf("apply transition: %w", err)
	}

	done := true
	completed := []planka.Task{}
	for _, taskID := range in.TaskIDs {
		task, err := e.client.UpdateTask(ctx, taskID, planka.TaskPatch{IsCompleted: &done})
		if err != nil {
			e.logger.Warn("mark task completed",
				"card_id", in.CardID, "task_id", taskID, "error", err)
			continue
		}
		completed = append(completed, *task)
	}

	result := &TransitionResult{Card: card, CompletedTasks: completed}
	if in.Comment != "" {
		comment, err := e.client.CreateComment(ctx, in.CardID, in.Comment)
		if err != nil {
			e.logger.Warn("transition comment", "card_id", in.CardID, "error", err)
		} else {
			result.Comment = comment
		}
	}
	return result, nil
}

// transitionComment posts the caller's comment or the transition default.
func (e *Engine) transitionComment(ctx context.Context, cardID string, in TransitionInput) *planka.Comment {
	text := in.Comment
	if text == "" {
		text = defaultTransitionComment(in.Transition)
	}
	if text == "" {
		return nil
	}
	comment, err := e.client.CreateComment(ctx, cardID, text)
	if err != nil {
		e.logger.Warn("transition comment", "card_id", cardID, "error", err)
		return nil
	}
	return comment
}

// endOfListPosition is one gap past the last card in the list.
func endOfListPosition(cards []planka.Card, listID string) float64 {
	max := 0.0
	for _, card := range cards {
		if card.ListID == listID && card.Position > max {
			max = card.Position
		}
	}
	return max + planka.PositionGap
}
