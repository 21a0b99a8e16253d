package elevenlabs

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// TestsService manages agent tests and their invocations
type TestsService struct{ service }

// ListTestsParams filters the test listing
type ListTestsParams struct {
	Pagination
	Search string
}

// TestParams describes an agent test. ChatHistory, SuccessCondition and the
// example responses make up a response test; Extra carries tool-call test
// fields.
type TestParams struct {
	Name             string
	ChatHistory      []Object
	SuccessCondition string
	SuccessExamples  []Object
	FailureExamples  []Object
	Type             string
	DynamicVariables Object
	Extra            Object
}

func (p TestParams) body() payload {
	return newPayload(p.Extra).
		set("name", p.Name).
		set("chat_history", p.ChatHistory).
		set("success_condition", p.SuccessCondition).
		set("success_examples", p.SuccessExamples).
		set("failure_examples", p.FailureExamples).
		set("type", p.Type).
		set("dynamic_variables", p.DynamicVariables)
}

// RunTestsParams selects the tests to run against an agent
type RunTestsParams struct {
	TestIDs             []string
	AgentConfigOverride Object
}

// ResubmitParams re-runs selected test runs of an invocation
type ResubmitParams struct {
	TestRunIDs          []string
	AgentID             string
	AgentConfigOverride Object
}

// List returns a page of tests
func (s *TestsService) List(ctx context.Context, params ListTestsParams) (Object, error) {
	q := url.Values{}
	params.Pagination.apply(q)
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	return s.object(ctx, http.MethodGet, "/v1/convai/agent-testing", nil, q)
}

// Get retrieves a test
func (s *TestsService) Get(ctx context.Context, testID string) (Object, error) {
	if testID == "" {
		return nil, missing("test_id")
	}
	return s.object(ctx, http.MethodGet, "/v1/convai/agent-testing/"+esc(testID), nil, nil)
}

// Create creates a test and returns {"id": ...}
func (s *TestsService) Create(ctx context.Context, params TestParams) (Object, error) {
	return s.object(ctx, http.MethodPost, "/v1/convai/agent-testing/create", params.body(), nil)
}

// Update replaces a test definition
func (s *TestsService) Update(ctx context.Context, testID string, params TestParams) (Object, error) {
	if testID == "" {
		return nil, missing("test_id")
	}
	return s.object(ctx, http.MethodPut, "/v1/convai/agent-testing/"+esc(testID), params.body(), nil)
}

// Delete removes a test
func (s *TestsService) Delete(ctx context.Context, testID string) error {
	if testID == "" {
		return missing("test_id")
	}
	return s.delete(ctx, "/v1/convai/agent-testing/"+esc(testID), nil)
}

// Summaries returns summaries for the given tests
func (s *TestsService) Summaries(ctx context.Context, testIDs []string) (Object, error) {
	if testIDs == nil {
		testIDs = []string{}
	}
	return s.object(ctx, http.MethodPost, "/v1/convai/agent-testing/summaries", Object{"test_ids": testIDs}, nil)
}

// RunOnAgent runs tests against an agent and returns the invocation
func (s *TestsService) RunOnAgent(ctx context.Context, agentID string, params RunTestsParams) (Object, error) {
	if agentID == "" {
		return nil, missing("agent_id")
	}
	tests := make([]Object, 0, len(params.TestIDs))
	for _, id := range params.TestIDs {
		tests = append(tests, Object{"test_id": id})
	}
	body := newPayload(nil).
		set("tests", tests).
		set("agent_config_override", params.AgentConfigOverride)
	return s.object(ctx, http.MethodPost, fmt.Sprintf("/v1/convai/agents/%s/run-tests", esc(agentID)), body, nil)
}

// GetInvocation retrieves a test invocation with its runs
func (s *TestsService) GetInvocation(ctx context.Context, invocationID string) (Object, error) {
	if invocationID == "" {
		return nil, missing("test_invocation_id")
	}
	return s.object(ctx, http.MethodGet, "/v1/convai/test-invocations/"+esc(invocationID), nil, nil)
}

// ResubmitInvocation re-runs selected test runs of an invocation
func (s *TestsService) ResubmitInvocation(ctx context.Context, invocationID string, params ResubmitParams) (Object, error) {
	if err := requireIDs("test_invocation_id", invocationID, "agent_id", params.AgentID); err != nil {
		return nil, err
	}
	runIDs := params.TestRunIDs
	if runIDs == nil {
		runIDs = []string{}
	}
	body := newPayload(nil).
		set("test_run_ids", runIDs).
		set("agent_id", params.AgentID).
		set("agent_config_override", params.AgentConfigOverride)
	path := fmt.Sprintf("/v1/convai/test-invocations/%s/resubmit", esc(invocationID))
	return s.object(ctx, http.MethodPost, path, body, nil)
}
