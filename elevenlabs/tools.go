package elevenlabs

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ToolsService manages workspace tools agents can call
type ToolsService struct{ service }

// List returns every tool in the workspace
func (s *ToolsService) List(ctx context.Context) (Object, error) {
	return s.object(ctx, http.MethodGet, "/v1/convai/tools", nil, nil)
}

// Get retrieves a tool
func (s *ToolsService) Get(ctx context.Context, toolID string) (Object, error) {
	if toolID == "" {
		return nil, missing("tool_id")
	}
	return s.object(ctx, http.MethodGet, "/v1/convai/tools/"+esc(toolID), nil, nil)
}

// Create registers a tool from its configuration (webhook, client or system)
func (s *ToolsService) Create(ctx context.Context, toolConfig Object) (Object, error) {
	if toolConfig == nil {
		toolConfig = Object{}
	}
	return s.object(ctx, http.MethodPost, "/v1/convai/tools", Object{"tool_config": toolConfig}, nil)
}

// Update replaces a tool's configuration
func (s *ToolsService) Update(ctx context.Context, toolID string, toolConfig Object) (Object, error) {
	if toolID == "" {
		return nil, missing("tool_id")
	}
	if toolConfig == nil {
		toolConfig = Object{}
	}
	return s.object(ctx, http.MethodPatch, "/v1/convai/tools/"+esc(toolID), Object{"tool_config": toolConfig}, nil)
}

// Delete removes a tool
func (s *ToolsService) Delete(ctx context.Context, toolID string) error {
	if toolID == "" {
		return missing("tool_id")
	}
	return s.delete(ctx, "/v1/convai/tools/"+esc(toolID), nil)
}

// GetDependentAgents lists the agents that use a tool
func (s *ToolsService) GetDependentAgents(ctx context.Context, toolID string, page Pagination) (Object, error) {
	if toolID == "" {
		return nil, missing("tool_id")
	}
	q := url.Values{}
	page.apply(q)
	return s.object(ctx, http.MethodGet, fmt.Sprintf("/v1/convai/tools/%s/dependent-agents", esc(toolID)), nil, q)
}
