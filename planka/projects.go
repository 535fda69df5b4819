package planka

import (
	"context"
	"fmt"
	"strings"
)

// CreateProject creates a project. The name must be non-empty after trimming.
func (c *Client) CreateProject(ctx context.Context, name string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newSchemaError("create project: name is required")
	}

	var env itemEnvelope[Project]
	if err := c.post(ctx, "projects", map[string]string{"name": name}, &env); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &env.Item, nil
}

// Projects lists every project visible to the agent.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var env itemsEnvelope[Project]
	if err := c.get(ctx, "projects", &env); err != nil {
		return nil, fmt.Errorf("get projects: %w", err)
	}
	if env.Items == nil {
		return []Project{}, nil
	}
	return env.Items, nil
}

// GetProject fetches one project by ID.
func (c *Client) GetProject(ctx context.Context, id string) (*Project, error) {
	var env itemEnvelope[Project]
	if err := c.get(ctx, "projects/"+id, &env); err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &env.Item, nil
}

// BoardsByProject reads the boards embedded in the project response.
// An absent collection yields an empty slice, not an error.
func (c *Client) BoardsByProject(ctx context.Context, projectID string) ([]Board, error) {
	var env itemEnvelope[Project]
	if err := c.get(ctx, "projects/"+projectID, &env); err != nil {
		return nil, fmt.Errorf("get project boards: %w", err)
	}
	if env.Included.Boards == nil {
		return []Board{}, nil
	}
	return env.Included.Boards, nil
}

// ProjectPatch holds the optional fields of a project update.
type ProjectPatch struct {
	Name *string `json:"name,omitempty"`
}

// UpdateProject applies a partial update and returns the updated project.
func (c *Client) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*Project, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, newSchemaError("update project: name must be non-empty")
	}

	var env itemEnvelope[Project]
	if err := c.patch(ctx, "projects/"+id, patch, &env); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return &env.Item, nil
}

// DeleteProject removes a project. Deletion is immediate and irreversible.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	if err := c.delete(ctx, "projects/"+id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
