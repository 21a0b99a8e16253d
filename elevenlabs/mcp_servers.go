package elevenlabs

import (
	"context"
	"fmt"
	"net/http"
)

// MCPServersService manages Model Context Protocol servers available to agents
type MCPServersService struct{ service }

// Approval policies for MCP server tools
const (
	ApprovalAutoApproveAll         = "auto_approve_all"
	ApprovalRequireApprovalAll     = "require_approval_all"
	ApprovalRequireApprovalPerTool = "require_approval_per_tool"
)

// ToolApprovalParams approves one tool of an MCP server
type ToolApprovalParams struct {
	ToolName        string
	ToolDescription string
	InputSchema     Object
	ApprovalPolicy  string
}

// List returns every MCP server in the workspace
func (s *MCPServersService) List(ctx context.Context) (Object, error) {
	return s.object(ctx, http.MethodGet, "/v1/convai/mcp-servers", nil, nil)
}

// Create registers an MCP server from its configuration (url, name,
// transport, approval_policy, ...)
func (s *MCPServersService) Create(ctx context.Context, cfg Object) (Object, error) {
	if cfg == nil {
		cfg = Object{}
	}
	return s.object(ctx, http.MethodPost, "/v1/convai/mcp-servers", Object{"config": cfg}, nil)
}

// Get retrieves an MCP server
func (s *MCPServersService) Get(ctx context.Context, serverID string) (Object, error) {
	if serverID == "" {
		return nil, missing("mcp_server_id")
	}
	return s.object(ctx, http.MethodGet, "/v1/convai/mcp-servers/"+esc(serverID), nil, nil)
}

// UpdateApprovalPolicy changes how the server's tool calls are approved
func (s *MCPServersService) UpdateApprovalPolicy(ctx context.Context, serverID, policy string) (Object, error) {
	if serverID == "" {
		return nil, missing("mcp_server_id")
	}
	path := fmt.Sprintf("/v1/convai/mcp-servers/%s/approval-policy", esc(serverID))
	return s.object(ctx, http.MethodPatch, path, Object{"approval_policy": policy}, nil)
}

// CreateToolApproval approves a single tool of the server
func (s *MCPServersService) CreateToolApproval(ctx context.Context, serverID string, params ToolApprovalParams) (Object, error) {
	if serverID == "" {
		return nil, missing("mcp_server_id")
	}
	body := newPayload(nil).
		set("tool_name", params.ToolName).
		set("tool_description", params.ToolDescription).
		set("input_schema", params.InputSchema).
		set("approval_policy", params.ApprovalPolicy)
	path := fmt.Sprintf("/v1/convai/mcp-servers/%s/tool-approvals", esc(serverID))
	return s.object(ctx, http.MethodPost, path, body, nil)
}

// DeleteToolApproval revokes the approval of a tool
func (s *MCPServersService) DeleteToolApproval(ctx context.Context, serverID, toolName string) (Object, error) {
	if err := requireIDs("mcp_server_id", serverID, "tool_name", toolName); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/v1/convai/mcp-servers/%s/tool-approvals/%s", esc(serverID), esc(toolName))
	return s.object(ctx, http.MethodDelete, path, nil, nil)
}
