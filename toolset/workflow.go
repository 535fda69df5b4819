package toolset

import (
	"context"

	"github.com/openkanban/planka-mcp/workflows"
)

// WorkflowToolset exposes the aggregation helpers: each tool batches
// several upstream calls into one result.
type WorkflowToolset struct {
	engine *workflows.Engine
}

// NewWorkflowToolset creates the workflow toolset.
func NewWorkflowToolset(engine *workflows.Engine) *WorkflowToolset {
	return &WorkflowToolset{engine: engine}
}

func (t *WorkflowToolset) Name() string { return "workflows" }

func (t *WorkflowToolset) Tools() []Tool {
	return []Tool{
		{
			Name: "create_card_with_tasks",
			Description: "Create a card and attach members, checklist tasks and a " +
				"comment in one call. Only the card creation can fail; later steps " +
				"are best-effort.",
			Parameters: schema(map[string]any{
				"listId":      prop("string", "List ID"),
				"name":        prop("string", "Card name"),
				"description": prop("string", "Card description (optional)"),
				"position":    prop("number", "Card position (optional)"),
				"dueDate":     prop("string", "Due date, RFC3339 (optional)"),
				"memberIds": map[string]any{
					"type":        "array",
					"description": "User IDs to assign (optional)",
					"items":       map[string]any{"type": "string"},
				},
				"tasks": map[string]any{
					"type":        "array",
					"description": "Checklist task names, in order (optional)",
					"items":       map[string]any{"type": "string"},
				},
				"taskComments": prop("boolean", "Post a comment per created task (optional)"),
				"comment":      prop("string", "Closing comment (optional)"),
			}, "listId", "name"),
		},
		{
			Name: "board_summary",
			Description: "Summarize a board: lists with their cards, per-card task " +
				"completion, board stats and a suggested next action.",
			Parameters: schema(map[string]any{
				"boardId":        prop("string", "Board ID"),
				"includeDetails": prop("boolean", "Include per-card tasks and comments (slower)"),
			}, "boardId"),
		},
		{
			Name: "card_details",
			Description: "Analyze one card: tasks, comments (newest first), labels, " +
				"completion percentage and whether it needs attention.",
			Parameters: schema(map[string]any{
				"cardId": prop("string", "Card ID"),
			}, "cardId"),
		},
		{
			Name: "apply_transition",
			Description: "Run a named workflow transition on a card: start-working, " +
				"move-to-testing, move-to-done (each moves the card to the matching " +
				"list and comments), or mark-completed (marks the given tasks " +
				"complete without moving).",
			Parameters: schema(map[string]any{
				"cardId": prop("string", "Card ID"),
				"transition": prop("string",
					"One of start-working, move-to-testing, move-to-done, mark-completed"),
				"taskIds": map[string]any{
					"type":        "array",
					"description": "Task IDs to complete (mark-completed only)",
					"items":       map[string]any{"type": "string"},
				},
				"comment": prop("string", "Comment overriding the default (optional)"),
			}, "cardId", "transition"),
		},
	}
}

func (t *WorkflowToolset) Call(ctx context.Context, toolName string, args map[string]any) (any, error) {
	switch toolName {
	case "create_card_with_tasks":
		return t.createCardWithTasks(ctx, args)
	case "board_summary":
		id, err := stringArg(args, "boardId")
		if err != nil {
			return nil, err
		}
		return t.engine.Summarize(ctx, id, boolArg(args, "includeDetails"))
	case "card_details":
		id, err := stringArg(args, "cardId")
		if err != nil {
			return nil, err
		}
		return t.engine.AnalyzeCard(ctx, id)
	case "apply_transition":
		return t.applyTransition(ctx, args)
	default:
		return nil, &ErrUnknownTool{Toolset: t.Name(), Tool: toolName}
	}
}

func (t *WorkflowToolset) createCardWithTasks(ctx context.Context, args map[string]any) (any, error) {
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
	memberIDs, err := stringSliceArg(args, "memberIds")
	if err != nil {
		return nil, err
	}
	tasks, err := stringSliceArg(args, "tasks")
	if err != nil {
		return nil, err
	}
	return t.engine.CreateCardWithTasks(ctx, workflows.CreateCardInput{
		ListID:       listID,
		Name:         name,
		Description:  optString(args, "description"),
		Position:     position,
		DueDate:      dueDate,
		MemberIDs:    memberIDs,
		Tasks:        tasks,
		TaskComments: boolArg(args, "taskComments"),
		Comment:      optString(args, "comment"),
	})
}

func (t *WorkflowToolset) applyTransition(ctx context.Context, args map[string]any) (any, error) {
	cardID, err := stringArg(args, "cardId")
	if err != nil {
		return nil, err
	}
	transition, err := stringArg(args, "transition")
	if err != nil {
		return nil, err
	}
	taskIDs, err := stringSliceArg(args, "taskIds")
	if err != nil {
		return nil, err
	}
	return t.engine.ApplyTransition(ctx, workflows.TransitionInput{
		CardID:     cardID,
		Transition: workflows.Transition(transition),
		TaskIDs:    taskIDs,
		Comment:    optString(args, "comment"),
	})
}
