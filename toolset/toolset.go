// Package toolset exposes the planka client and workflow engine as named,
// schema-described tools, grouped by resource, and wraps them as MCP
// servers.
package toolset

import (
	"context"
	"fmt"
)

// Tool describes a single capability offered by a toolset.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any // JSON Schema
}

// Toolset groups related tools behind one dispatcher. Implementations
// translate JSON-compatible arguments into typed client calls.
type Toolset interface {
	// Name returns the toolset identifier (e.g. "cards").
	Name() string

	// Tools returns the list of tools this toolset provides.
	Tools() []Tool

	// Call invokes a tool by name with JSON-compatible arguments.
	// Returns a JSON-serializable result.
	Call(ctx context.Context, toolName string, args map[string]any) (any, error)
}

// ErrUnknownTool is returned when a tool name is not recognized.
type ErrUnknownTool struct {
	Toolset string
	Tool    string
}

func (e *ErrUnknownTool) Error() string {
	return fmt.Sprintf("toolset %q has no tool %q", e.Toolset, e.Tool)
}

// schema builds an object JSON schema from named properties.
func schema(props map[string]any, required ...string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// prop is one schema property.
func prop(typ, description string) map[string]any {
	return map[string]any{"type": typ, "description": description}
}
