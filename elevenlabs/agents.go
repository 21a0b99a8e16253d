package elevenlabs

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/s0up4200/convai/client"
)

// AgentsService manages conversational agents
type AgentsService struct{ service }

// CreateAgentParams describes a new agent. ConversationConfig is required
// by the API and sent as an empty object when nil.
type CreateAgentParams struct {
	Name               string
	ConversationConfig Object
	PlatformSettings   Object
	WorkflowConfig     Object
	Tags               []string
	Extra              Object
}

func (p CreateAgentParams) body() payload {
	conv := p.ConversationConfig
	if conv == nil {
		conv = Object{}
	}
	return newPayload(p.Extra).
		set("conversation_config", conv).
		set("name", p.Name).
		set("platform_settings", p.PlatformSettings).
		set("workflow", p.WorkflowConfig).
		set("tags", p.Tags)
}

// UpdateAgentParams holds the fields to change; unset fields are left alone
type UpdateAgentParams struct {
	Name               string
	ConversationConfig Object
	PlatformSettings   Object
	WorkflowConfig     Object
	Tags               []string
	Extra              Object
}

func (p UpdateAgentParams) body() payload {
	return newPayload(p.Extra).
		set("name", p.Name).
		set("conversation_config", p.ConversationConfig).
		set("platform_settings", p.PlatformSettings).
		set("workflow", p.WorkflowConfig).
		set("tags", p.Tags)
}

// ListAgentsParams filters the agent listing
type ListAgentsParams struct {
	Pagination
	Sorting
}

// SimulateConversationParams drives a simulated conversation
type SimulateConversationParams struct {
	SimulationSpecification Object
	ExtraEvaluationCriteria []Object
	NewTurnsLimit           *int
}

func (p SimulateConversationParams) body() payload {
	spec := p.SimulationSpecification
	if spec == nil {
		spec = Object{}
	}
	return newPayload(nil).
		set("simulation_specification", spec).
		set("extra_evaluation_criteria", p.ExtraEvaluationCriteria).
		set("new_turns_limit", p.NewTurnsLimit)
}

// AgentLLMUsageParams estimates LLM cost for an existing agent
type AgentLLMUsageParams struct {
	PromptLength  *int
	NumberOfPages *int
	RAGEnabled    *bool
}

// Create creates an agent and returns {"agent_id": ...}
func (s *AgentsService) Create(ctx context.Context, params CreateAgentParams) (Object, error) {
	return s.object(ctx, http.MethodPost, "/v1/convai/agents/create", params.body(), nil)
}

// Get retrieves an agent's full configuration
func (s *AgentsService) Get(ctx context.Context, agentID string) (Object, error) {
	if agentID == "" {
		return nil, missing("agent_id")
	}
	return s.object(ctx, http.MethodGet, "/v1/convai/agents/"+esc(agentID), nil, nil)
}

// List returns a page of agents
func (s *AgentsService) List(ctx context.Context, params ListAgentsParams) (Object, error) {
	q := url.Values{}
	params.Pagination.apply(q)
	params.Sorting.apply(q)
	return s.object(ctx, http.MethodGet, "/v1/convai/agents", nil, q)
}

// Update patches an agent
func (s *AgentsService) Update(ctx context.Context, agentID string, params UpdateAgentParams) (Object, error) {
	if agentID == "" {
		return nil, missing("agent_id")
	}
	return s.object(ctx, http.MethodPatch, "/v1/convai/agents/"+esc(agentID), params.body(), nil)
}

// Delete removes an agent
func (s *AgentsService) Delete(ctx context.Context, agentID string) error {
	if agentID == "" {
		return missing("agent_id")
	}
	return s.delete(ctx, "/v1/convai/agents/"+esc(agentID), nil)
}

// Duplicate copies an agent, optionally under a new name
func (s *AgentsService) Duplicate(ctx context.Context, agentID, name string) (Object, error) {
	if agentID == "" {
		return nil, missing("agent_id")
	}
	body := newPayload(nil).set("name", name)
	return s.object(ctx, http.MethodPost, fmt.Sprintf("/v1/convai/agents/%s/duplicate", esc(agentID)), body, nil)
}

// Link returns the shareable link for an agent
func (s *AgentsService) Link(ctx context.Context, agentID string) (Object, error) {
	if agentID == "" {
		return nil, missing("agent_id")
	}
	return s.object(ctx, http.MethodGet, fmt.Sprintf("/v1/convai/agents/%s/link", esc(agentID)), nil, nil)
}

// SimulateConversation runs a simulated user against the agent and returns
// the transcript and analysis
func (s *AgentsService) SimulateConversation(ctx context.Context, agentID string, params SimulateConversationParams) (Object, error) {
	if agentID == "" {
		return nil, missing("agent_id")
	}
	path := fmt.Sprintf("/v1/convai/agents/%s/simulate-conversation", esc(agentID))
	return s.object(ctx, http.MethodPost, path, params.body(), nil)
}

// SimulateConversationStream is SimulateConversation with the result
// delivered incrementally. The caller must drain or Close the stream. The
// client timeout covers only the response headers; bound the transfer with ctx.
func (s *AgentsService) SimulateConversationStream(ctx context.Context, agentID string, params SimulateConversationParams) (*client.Stream, error) {
	if agentID == "" {
		return nil, missing("agent_id")
	}
	path := fmt.Sprintf("/v1/convai/agents/%s/simulate-conversation/stream", esc(agentID))
	return s.d.Stream(ctx, http.MethodPost, path, params.body(), nil)
}

// CalculateLLMUsage estimates per-minute LLM cost for the agent's configuration
func (s *AgentsService) CalculateLLMUsage(ctx context.Context, agentID string, params AgentLLMUsageParams) (Object, error) {
	if agentID == "" {
		return nil, missing("agent_id")
	}
	body := newPayload(nil).
		set("prompt_length", params.PromptLength).
		set("number_of_pages", params.NumberOfPages).
		set("rag_enabled", params.RAGEnabled)
	path := fmt.Sprintf("/v1/convai/agent/%s/llm-usage/calculate", esc(agentID))
	return s.object(ctx, http.MethodPost, path, body, nil)
}

// GetMany fetches several agents concurrently. Results are keyed by id; the
// first failure cancels the remaining requests.
func (s *AgentsService) GetMany(ctx context.Context, agentIDs []string) (map[string]Object, error) {
	return getMany(ctx, agentIDs, s.Get)
}
