package toolset

import (
	"context"
	"fmt"

	"github.com/openkanban/planka-mcp/planka"
)

// TaskToolset covers card checklist tasks, including batch creation.
type TaskToolset struct {
	client *planka.Client
}

// NewTaskToolset creates the task toolset.
func NewTaskToolset(client *planka.Client) *TaskToolset {
	return &TaskToolset{client: client}
}

func (t *TaskToolset) Name() string { return "tasks" }

func (t *TaskToolset) Tools() []Tool {
	return []Tool{
		{
			Name:        "create_task",
			Description: "Add a checklist task to a card.",
			Parameters: schema(map[string]any{
				"cardId":   prop("string", "Card ID"),
				"name":     prop("string", "Task name"),
				"position": prop("number", "Task position (optional)"),
			}, "cardId", "name"),
		},
		{
			Name: "create_tasks",
			Description: "Add several checklist tasks in one call. Each item " +
				"succeeds or fails independently; the result reports both counts.",
			Parameters: schema(map[string]any{
				"tasks": map[string]any{
					"type":        "array",
					"description": "Tasks to create, in order",
					"items": schema(map[string]any{
						"cardId":   prop("string", "Card ID"),
						"name":     prop("string", "Task name"),
						"position": prop("number", "Task position (optional)"),
					}, "cardId", "name"),
				},
			}, "tasks"),
		},
		{
			Name:        "list_tasks",
			Description: "List the checklist tasks of a card.",
			Parameters: schema(map[string]any{
				"cardId": prop("string", "Card ID"),
			}, "cardId"),
		},
		{
			Name:        "get_task",
			Description: "Get one task by ID. May be slow: the upstream has no direct task endpoint.",
			Parameters: schema(map[string]any{
				"taskId": prop("string", "Task ID"),
			}, "taskId"),
		},
		{
			Name:        "update_task",
			Description: "Rename, reposition or complete a task.",
			Parameters: schema(map[string]any{
				"taskId":      prop("string", "Task ID"),
				"name":        prop("string", "New name (optional)"),
				"position":    prop("number", "New position (optional)"),
				"isCompleted": prop("boolean", "Completion flag (optional)"),
			}, "taskId"),
		},
		{
			Name:        "delete_task",
			Description: "Delete a task. Irreversible.",
			Parameters: schema(map[string]any{
				"taskId": prop("string", "Task ID"),
			}, "taskId"),
		},
	}
}

func (t *TaskToolset) Call(ctx context.Context, toolName string, args map[string]any) (any, error) {
	switch toolName {
	case "create_task":
		cardID, err := stringArg(args, "cardId")
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
		return t.client.CreateTask(ctx, cardID, name, position)
	case "create_tasks":
		return t.createTasks(ctx, args)
	case "list_tasks":
		id, err := stringArg(args, "cardId")
		if err != nil {
			return nil, err
		}
		return t.client.TasksByCard(ctx, id)
	case "get_task":
		id, err := stringArg(args, "taskId")
		if err != nil {
			return nil, err
		}
		return t.client.GetTask(ctx, id)
	case "update_task":
		return t.updateTask(ctx, args)
	case "delete_task":
		id, err := stringArg(args, "taskId")
		if err != nil {
			return nil, err
		}
		return deleted(id, t.client.DeleteTask(ctx, id))
	default:
		return nil, &ErrUnknownTool{Toolset: t.Name(), Tool: toolName}
	}
}

func (t *TaskToolset) createTasks(ctx context.Context, args map[string]any) (any, error) {
	raw, ok := args["tasks"].([]any)
	if !ok {
		return nil, fmt.Errorf("tasks must be an array of objects")
	}

	inputs := make([]planka.TaskInput, 0, len(raw))
	for i, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("tasks[%d] must be an object, got %T", i, item)
		}
		position, err := floatArg(obj, "position")
		if err != nil {
			return nil, fmt.Errorf("tasks[%d]: %w", i, err)
		}
		inputs = append(inputs, planka.TaskInput{
			CardID:   optString(obj, "cardId"),
			Name:     optString(obj, "name"),
			Position: position,
		})
	}

	return t.client.CreateTasks(ctx, inputs), nil
}

func (t *TaskToolset) updateTask(ctx context.Context, args map[string]any) (any, error) {
	id, err := stringArg(args, "taskId")
	if err != nil {
		return nil, err
	}
	position, err := optFloatPtr(args, "position")
	if err != nil {
		return nil, err
	}
	return t.client.UpdateTask(ctx, id, planka.TaskPatch{
		Name:        optStringPtr(args, "name"),
		Position:    position,
		IsCompleted: optBoolPtr(args, "isCompleted"),
	})
}
