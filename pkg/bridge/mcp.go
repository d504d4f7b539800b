package bridge

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func init() {
	RegisterHost("mcp", func() (HostClient, error) {
		return &MCPHost{}, nil
	})
}

// MCPHost exposes an agent's tools over the Model Context Protocol. It is
// the one concrete host integration shipped with the core; other hosts
// plug in through RegisterHost.
type MCPHost struct{}

// CreateAgent builds an MCP server carrying the request's tools. The
// returned handle is a *MCPAgent.
func (h *MCPHost) CreateAgent(_ context.Context, req HostRequest) (any, error) {
	srv := server.NewMCPServer(req.Name, req.Model)
	for _, t := range req.Tools {
		tool := t
		def := mcp.NewTool(tool.Name(), mcp.WithDescription(tool.Description()))
		srv.AddTool(def, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})
			result, err := tool.Call(ctx, args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			raw, err := json.Marshal(result)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(string(raw)), nil
		})
	}
	return &MCPAgent{server: srv, name: req.Name}, nil
}

// MCPAgent is the handle returned by MCPHost.
type MCPAgent struct {
	server *server.MCPServer
	name   string
}

// Name returns the exported agent name.
func (a *MCPAgent) Name() string { return a.name }

// ServeStdio serves the agent's tools on stdio until the client hangs up.
func (a *MCPAgent) ServeStdio() error {
	return server.ServeStdio(a.server)
}
