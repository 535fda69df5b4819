package toolset

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverVersion = "1.0.0"

// WrapAsMCP creates an MCP server that exposes the toolset's tools.
// Each tool is registered with the low-level API.
func WrapAsMCP(ts Toolset) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    ts.Name(),
		Version: serverVersion,
	}, nil)

	addTools(srv, ts)
	return srv
}

// CombinedServer registers every toolset onto one MCP server, for stdio
// serving where a single endpoint carries all tools.
func CombinedServer(name string, toolsets ...Toolset) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    name,
		Version: serverVersion,
	}, nil)

	for _, ts := range toolsets {
		addTools(srv, ts)
	}
	return srv
}

func addTools(srv *mcp.Server, ts Toolset) {
	for _, tool := range ts.Tools() {
		srv.AddTool(
			&mcp.Tool{
				Name:        tool.Name,
				Description: tool.Description,
				InputSchema: tool.Parameters,
			},
			makeHandler(ts, tool.Name),
		)
	}
}

// makeHandler creates a ToolHandler that delegates to the Toolset.Call method.
func makeHandler(ts Toolset, toolName string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args map[string]any
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return errorResult("invalid arguments: %v", err), nil
			}
		}
		if args == nil {
			args = make(map[string]any)
		}

		result, err := ts.Call(ctx, toolName, args)
		if err != nil {
			return errorResult("error: %v", err), nil
		}

		data, err := json.Marshal(result)
		if err != nil {
			return errorResult("failed to marshal result: %v", err), nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: string(data)},
			},
		}, nil
	}
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
		IsError: true,
	}
}
