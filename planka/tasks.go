package planka

import (
	"context"
	"fmt"
	"strings"
)

// CreateTask creates a checklist task on a card.
func (c *Client) CreateTask(ctx context.Context, cardID, name string, position float64) (*Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newSchemaError("create task: name is required")
	}
	if cardID == "" {
		return nil, newSchemaError("create task: cardId is required")
	}
	if position == 0 {
		position = PositionGap
	}

	var env itemEnvelope[Task]
	err := c.post(ctx, "cards/"+cardID+"/tasks", map[string]any{
		"name":     name,
		"position": position,
	}, &env)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &env.Item, nil
}

// TasksByCard reads the tasks embedded in the card response.
func (c *Client) TasksByCard(ctx context.Context, cardID string) ([]Task, error) {
	env, err := c.cardDetail(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("get card tasks: %w", err)
	}
	if env.Included.Tasks == nil {
		return []Task{}, nil
	}
	return env.Included.Tasks, nil
}

// GetTask finds a task by ID. The upstream API has no direct task
// endpoint, so this walks every project, board and embedded task until it
// finds a match: O(projects x boards) upstream calls in the worst case.
func (c *Client) GetTask(ctx context.Context, id string) (*Task, error) {
	projects, err := c.Projects(ctx)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	for _, project := range projects {
		boards, err := c.BoardsByProject(ctx, project.ID)
		if err != nil {
			continue
		}
		for _, board := range boards {
			tasks, err := c.TasksByBoard(ctx, board.ID)
			if err != nil {
				continue
			}
			for _, task := range tasks {
				if task.ID == id {
					return &task, nil
				}
			}
		}
	}
	return nil, fmt.Errorf("get task: %w", &APIError{
		Kind:    KindNotFound,
		Status:  404,
		Message: fmt.Sprintf("task %s not found", id),
	})
}

// TaskPatch holds the optional fields of a task update.
type TaskPatch struct {
	Name        *string  `json:"name,omitempty"`
	Position    *float64 `json:"position,omitempty"`
	IsCompleted *bool    `json:"isCompleted,omitempty"`
}

// UpdateTask applies a partial update and returns the updated task.
func (c *Client) UpdateTask(ctx context.Context, id string, patch TaskPatch) (*Task, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, newSchemaError("update task: name must be non-empty")
	}

	var env itemEnvelope[Task]
	if err := c.patch(ctx, "tasks/"+id, patch, &env); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return &env.Item, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if err := c.delete(ctx, "tasks/"+id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// TaskInput is one item of a batch task creation.
type TaskInput struct {
	CardID   string  `json:"cardId"`
	Name     string  `json:"name"`
	Position float64 `json:"position,omitempty"`
}

// TaskResult is the per-item outcome of a batch task creation.
type TaskResult struct {
	Index int    `json:"index"`
	Task  *Task  `json:"task,omitempty"`
	Error string `json:"error,omitempty"`
}

// BatchResult summarizes a batch task creation.
type BatchResult struct {
	Results   []TaskResult `json:"results"`
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
}

// CreateTasks creates each task independently, in order. A failing item
// is recorded and never aborts the rest.
func (c *Client) CreateTasks(ctx context.Context, inputs []TaskInput) *BatchResult {
	result := &BatchResult{Results: make([]TaskResult, 0, len(inputs))}

	for i, in := range inputs {
		position := in.Position
		if position == 0 {
			position = float64((i + 1) * PositionGap)
		}

		task, err := c.CreateTask(ctx, in.CardID, in.Name, position)
		if err != nil {
			c.logger.Warn("batch task failed", "index", i, "error", err)
			result.Results = append(result.Results, TaskResult{Index: i, Error: err.Error()})
			result.Failed++
			continue
		}
		result.Results = append(result.Results, TaskResult{Index: i, Task: task})
		result.Succeeded++
	}

	return result
}
