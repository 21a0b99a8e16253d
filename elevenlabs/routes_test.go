package elevenlabs

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeCase struct {
	name      string
	method    string
	path      string
	response  any
	call      func(ctx context.Context, c *Client) (any, error)
	wantQuery url.Values
	wantBody  map[string]any
}

func runRouteCases(t *testing.T, cases []routeCase) {
	t.Helper()
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			c, srv := newTestClient(t)

			response := tt.response
			if response == nil {
				response = map[string]any{"ok": true}
			}
			srv.JSON(tt.method, tt.path, http.StatusOK, response)

			got, err := tt.call(context.Background(), c)
			require.NoError(t, err)

			req := srv.Only()
			assert.Equal(t, tt.method, req.Method)
			assert.Equal(t, tt.path, req.Path)

			wantQuery := tt.wantQuery
			if wantQuery == nil {
				wantQuery = url.Values{}
			}
			assert.Equal(t, wantQuery, req.Query)

			if tt.wantBody == nil {
				assert.Empty(t, req.Body)
			} else {
				assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
				assert.Equal(t, tt.wantBody, req.JSON(t))
			}

			if obj, ok := got.(Object); ok {
				assert.Equal(t, response, obj)
			}
		})
	}
}

func TestAgentsRoutes(t *testing.T) {
	runRouteCases(t, []routeCase{
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/v1/convai/agents/create",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Agents.Create(ctx, CreateAgentParams{
					Name:               "Support",
					ConversationConfig: Object{"agent": Object{"first_message": "Hi"}},
					Tags:               []string{"prod"},
					Extra:              Object{"name": "overridden", "custom": true},
				})
			},
			wantBody: map[string]any{
				"name":                "Support",
				"conversation_config": map[string]any{"agent": map[string]any{"first_message": "Hi"}},
				"tags":                []any{"prod"},
				"custom":              true,
			},
		},
		{
			name:   "create with defaults",
			method: http.MethodPost,
			path:   "/v1/convai/agents/create",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Agents.Create(ctx, CreateAgentParams{})
			},
			wantBody: map[string]any{"conversation_config": map[string]any{}},
		},
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/v1/convai/agents/agent_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Agents.Get(ctx, "agent_1")
			},
		},
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/v1/convai/agents",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Agents.List(ctx, ListAgentsParams{
					Pagination: Pagination{PageSize: 10, Cursor: "next"},
					Sorting:    Sorting{Search: "sup", SortBy: "created_at", SortDirection: "desc"},
				})
			},
			wantQuery: url.Values{
				"page_size":      {"10"},
				"cursor":         {"next"},
				"search":         {"sup"},
				"sort_by":        {"created_at"},
				"sort_direction": {"desc"},
			},
		},
		{
			name:   "update",
			method: http.MethodPatch,
			path:   "/v1/convai/agents/agent_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Agents.Update(ctx, "agent_1", UpdateAgentParams{Name: "Renamed"})
			},
			wantBody: map[string]any{"name": "Renamed"},
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/v1/convai/agents/agent_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.Agents.Delete(ctx, "agent_1")
			},
		},
		{
			name:   "duplicate",
			method: http.MethodPost,
			path:   "/v1/convai/agents/agent_1/duplicate",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Agents.Duplicate(ctx, "agent_1", "Copy")
			},
			wantBody: map[string]any{"name": "Copy"},
		},
		{
			name:   "link",
			method: http.MethodGet,
			path:   "/v1/convai/agents/agent_1/link",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Agents.Link(ctx, "agent_1")
			},
		},
		{
			name:   "simulate conversation",
			method: http.MethodPost,
			path:   "/v1/convai/agents/agent_1/simulate-conversation",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Agents.SimulateConversation(ctx, "agent_1", SimulateConversationParams{
					SimulationSpecification: Object{"simulated_user_config": Object{"first_message": "Hello"}},
					NewTurnsLimit:           Int(3),
				})
			},
			wantBody: map[string]any{
				"simulation_specification": map[string]any{"simulated_user_config": map[string]any{"first_message": "Hello"}},
				"new_turns_limit":          float64(3),
			},
		},
		{
			name:   "calculate llm usage",
			method: http.MethodPost,
			path:   "/v1/convai/agent/agent_1/llm-usage/calculate",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Agents.CalculateLLMUsage(ctx, "agent_1", AgentLLMUsageParams{
					PromptLength: Int(500),
					RAGEnabled:   Bool(false),
				})
			},
			wantBody: map[string]any{"prompt_length": float64(500), "rag_enabled": false},
		},
	})
}

func TestConversationsRoutes(t *testing.T) {
	runRouteCases(t, []routeCase{
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/v1/convai/conversations",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Conversations.List(ctx, ListConversationsParams{
					Pagination:          Pagination{PageSize: 30},
					AgentID:             "agent_1",
					CallSuccessful:      "success",
					CallStartBeforeUnix: Int64(1700000000),
					CallStartAfterUnix:  Int64(1600000000),
					UserID:              "u1",
					SummaryMode:         "include",
				})
			},
			wantQuery: url.Values{
				"page_size":              {"30"},
				"agent_id":               {"agent_1"},
				"call_successful":        {"success"},
				"call_start_before_unix": {"1700000000"},
				"call_start_after_unix":  {"1600000000"},
				"user_id":                {"u1"},
				"summary_mode":           {"include"},
			},
		},
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/v1/convai/conversations/conv_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Conversations.Get(ctx, "conv_1")
			},
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/v1/convai/conversations/conv_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.Conversations.Delete(ctx, "conv_1")
			},
		},
		{
			name:     "signed url",
			method:   http.MethodGet,
			path:     "/v1/convai/conversation/get-signed-url",
			response: map[string]any{"signed_url": "wss://api.elevenlabs.io/v1/convai/conversation?agent_id=agent_1&token=t"},
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Conversations.GetSignedURL(ctx, "agent_1")
			},
			wantQuery: url.Values{"agent_id": {"agent_1"}},
		},
		{
			name:   "token",
			method: http.MethodGet,
			path:   "/v1/convai/conversation/token",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Conversations.GetToken(ctx, "agent_1")
			},
			wantQuery: url.Values{"agent_id": {"agent_1"}},
		},
		{
			name:   "feedback",
			method: http.MethodPost,
			path:   "/v1/convai/conversations/conv_1/feedback",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Conversations.SendFeedback(ctx, "conv_1", FeedbackLike)
			},
			wantBody: map[string]any{"feedback": "like"},
		},
	})
}

func TestToolsRoutes(t *testing.T) {
	cfg := Object{"type": "webhook", "name": "lookup"}
	wantCfg := map[string]any{"tool_config": map[string]any{"type": "webhook", "name": "lookup"}}

	runRouteCases(t, []routeCase{
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/v1/convai/tools",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Tools.List(ctx)
			},
		},
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/v1/convai/tools/tool_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Tools.Get(ctx, "tool_1")
			},
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/v1/convai/tools",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Tools.Create(ctx, cfg)
			},
			wantBody: wantCfg,
		},
		{
			name:   "update",
			method: http.MethodPatch,
			path:   "/v1/convai/tools/tool_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Tools.Update(ctx, "tool_1", cfg)
			},
			wantBody: wantCfg,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/v1/convai/tools/tool_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.Tools.Delete(ctx, "tool_1")
			},
		},
		{
			name:   "dependent agents",
			method: http.MethodGet,
			path:   "/v1/convai/tools/tool_1/dependent-agents",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Tools.GetDependentAgents(ctx, "tool_1", Pagination{PageSize: 5})
			},
			wantQuery: url.Values{"page_size": {"5"}},
		},
	})
}

func TestKnowledgeBaseRoutes(t *testing.T) {
	runRouteCases(t, []routeCase{
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/v1/convai/knowledge-base",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.KnowledgeBase.List(ctx, ListKnowledgeBaseParams{
					Sorting:                Sorting{Search: "faq"},
					ShowOnlyOwnedDocuments: Bool(true),
					Types:                  []string{DocumentTypeURL, DocumentTypeText},
				})
			},
			wantQuery: url.Values{
				"search":                    {"faq"},
				"show_only_owned_documents": {"true"},
				"types":                     {"url", "text"},
			},
		},
		{
			name:   "get document",
			method: http.MethodGet,
			path:   "/v1/convai/knowledge-base/doc_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.KnowledgeBase.GetDocument(ctx, "doc_1")
			},
		},
		{
			name:   "update document",
			method: http.MethodPatch,
			path:   "/v1/convai/knowledge-base/doc_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.KnowledgeBase.UpdateDocument(ctx, "doc_1", "FAQ v2")
			},
			wantBody: map[string]any{"name": "FAQ v2"},
		},
		{
			name:   "delete document",
			method: http.MethodDelete,
			path:   "/v1/convai/knowledge-base/doc_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.KnowledgeBase.DeleteDocument(ctx, "doc_1", false)
			},
		},
		{
			name:   "force delete document",
			method: http.MethodDelete,
			path:   "/v1/convai/knowledge-base/doc_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.KnowledgeBase.DeleteDocument(ctx, "doc_1", true)
			},
			wantQuery: url.Values{"force": {"true"}},
		},
		{
			name:   "create from url",
			method: http.MethodPost,
			path:   "/v1/convai/knowledge-base/url",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.KnowledgeBase.CreateFromURL(ctx, "https://example.com/faq", "")
			},
			wantBody: map[string]any{"url": "https://example.com/faq"},
		},
		{
			name:   "create from text",
			method: http.MethodPost,
			path:   "/v1/convai/knowledge-base/text",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.KnowledgeBase.CreateFromText(ctx, "Opening hours: 9-5", "Hours")
			},
			wantBody: map[string]any{"text": "Opening hours: 9-5", "name": "Hours"},
		},
		{
			name:   "compute rag index",
			method: http.MethodPost,
			path:   "/v1/convai/knowledge-base/doc_1/rag-index",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.KnowledgeBase.ComputeRAGIndex(ctx, "doc_1", "e5_mistral_7b_instruct")
			},
			wantBody: map[string]any{"model": "e5_mistral_7b_instruct"},
		},
		{
			name:   "get rag index",
			method: http.MethodGet,
			path:   "/v1/convai/knowledge-base/doc_1/rag-index",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.KnowledgeBase.GetRAGIndex(ctx, "doc_1")
			},
		},
		{
			name:   "rag index overview",
			method: http.MethodGet,
			path:   "/v1/convai/knowledge-base/rag-index",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.KnowledgeBase.RAGIndexOverview(ctx)
			},
		},
		{
			name:   "delete rag index",
			method: http.MethodDelete,
			path:   "/v1/convai/knowledge-base/doc_1/rag-index/idx_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.KnowledgeBase.DeleteRAGIndex(ctx, "doc_1", "idx_1")
			},
		},
		{
			name:   "dependent agents",
			method: http.MethodGet,
			path:   "/v1/convai/knowledge-base/doc_1/dependent-agents",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.KnowledgeBase.GetDependentAgents(ctx, "doc_1", Pagination{Cursor: "c2"})
			},
			wantQuery: url.Values{"cursor": {"c2"}},
		},
		{
			name:   "chunk",
			method: http.MethodGet,
			path:   "/v1/convai/knowledge-base/doc_1/chunk/chunk_9",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.KnowledgeBase.GetChunk(ctx, "doc_1", "chunk_9")
			},
		},
	})
}

func TestAgentTestingRoutes(t *testing.T) {
	runRouteCases(t, []routeCase{
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/v1/convai/agent-testing",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Tests.List(ctx, ListTestsParams{Pagination: Pagination{PageSize: 2}, Search: "greet"})
			},
			wantQuery: url.Values{"page_size": {"2"}, "search": {"greet"}},
		},
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/v1/convai/agent-testing/test_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Tests.Get(ctx, "test_1")
			},
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/v1/convai/agent-testing/create",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Tests.Create(ctx, TestParams{
					Name:             "greets",
					ChatHistory:      []Object{{"role": "user", "message": "hi"}},
					SuccessCondition: "agent greets the user",
					SuccessExamples:  []Object{},
				})
			},
			wantBody: map[string]any{
				"name":              "greets",
				"chat_history":      []any{map[string]any{"role": "user", "message": "hi"}},
				"success_condition": "agent greets the user",
				"success_examples":  []any{},
			},
		},
		{
			name:   "update",
			method: http.MethodPut,
			path:   "/v1/convai/agent-testing/test_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Tests.Update(ctx, "test_1", TestParams{Name: "greets politely"})
			},
			wantBody: map[string]any{"name": "greets politely"},
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/v1/convai/agent-testing/test_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.Tests.Delete(ctx, "test_1")
			},
		},
		{
			name:   "summaries",
			method: http.MethodPost,
			path:   "/v1/convai/agent-testing/summaries",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Tests.Summaries(ctx, []string{"test_1", "test_2"})
			},
			wantBody: map[string]any{"test_ids": []any{"test_1", "test_2"}},
		},
		{
			name:   "run on agent",
			method: http.MethodPost,
			path:   "/v1/convai/agents/agent_1/run-tests",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Tests.RunOnAgent(ctx, "agent_1", RunTestsParams{TestIDs: []string{"test_1"}})
			},
			wantBody: map[string]any{"tests": []any{map[string]any{"test_id": "test_1"}}},
		},
		{
			name:   "get invocation",
			method: http.MethodGet,
			path:   "/v1/convai/test-invocations/inv_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Tests.GetInvocation(ctx, "inv_1")
			},
		},
		{
			name:   "resubmit invocation",
			method: http.MethodPost,
			path:   "/v1/convai/test-invocations/inv_1/resubmit",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Tests.ResubmitInvocation(ctx, "inv_1", ResubmitParams{
					TestRunIDs: []string{"run_1"},
					AgentID:    "agent_1",
				})
			},
			wantBody: map[string]any{"test_run_ids": []any{"run_1"}, "agent_id": "agent_1"},
		},
	})
}

func TestPhoneNumbersRoutes(t *testing.T) {
	runRouteCases(t, []routeCase{
		{
			name:   "import twilio",
			method: http.MethodPost,
			path:   "/v1/convai/phone-numbers",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.PhoneNumbers.Import(ctx, ImportPhoneNumberParams{
					PhoneNumber: "+15550100",
					Label:       "Support line",
					SID:         "AC123",
					Token:       "secret",
				})
			},
			wantBody: map[string]any{
				"phone_number": "+15550100",
				"label":        "Support line",
				"provider":     "twilio",
				"sid":          "AC123",
				"token":        "secret",
			},
		},
		{
			name:   "import sip trunk",
			method: http.MethodPost,
			path:   "/v1/convai/phone-numbers",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.PhoneNumbers.Import(ctx, ImportPhoneNumberParams{
					PhoneNumber: "+15550101",
					Label:       "SIP",
					Provider:    ProviderSIPTrunk,
					Extra:       Object{"outbound_trunk_config": Object{"address": "sip.example.com"}},
				})
			},
			wantBody: map[string]any{
				"phone_number":          "+15550101",
				"label":                 "SIP",
				"provider":              "sip_trunk",
				"outbound_trunk_config": map[string]any{"address": "sip.example.com"},
			},
		},
		{
			name:     "list",
			method:   http.MethodGet,
			path:     "/v1/convai/phone-numbers",
			response: []any{map[string]any{"phone_number_id": "pn_1"}},
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.PhoneNumbers.List(ctx)
			},
		},
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/v1/convai/phone-numbers/pn_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.PhoneNumbers.Get(ctx, "pn_1")
			},
		},
		{
			name:   "assign agent",
			method: http.MethodPatch,
			path:   "/v1/convai/phone-numbers/pn_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.PhoneNumbers.Update(ctx, "pn_1", "agent_1")
			},
			wantBody: map[string]any{"agent_id": "agent_1"},
		},
		{
			name:   "detach agent",
			method: http.MethodPatch,
			path:   "/v1/convai/phone-numbers/pn_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.PhoneNumbers.Update(ctx, "pn_1", "")
			},
			wantBody: map[string]any{"agent_id": nil},
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/v1/convai/phone-numbers/pn_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.PhoneNumbers.Delete(ctx, "pn_1")
			},
		},
	})
}

func TestCallingRoutes(t *testing.T) {
	call := OutboundCallParams{
		AgentID:            "agent_1",
		AgentPhoneNumberID: "pn_1",
		ToNumber:           "+15550199",
		ConversationInitiationClientData: Object{
			"dynamic_variables": Object{"customer": "Ada"},
		},
	}
	wantCall := map[string]any{
		"agent_id":              "agent_1",
		"agent_phone_number_id": "pn_1",
		"to_number":             "+15550199",
		"conversation_initiation_client_data": map[string]any{
			"dynamic_variables": map[string]any{"customer": "Ada"},
		},
	}

	runRouteCases(t, []routeCase{
		{
			name:   "sip trunk call",
			method: http.MethodPost,
			path:   "/v1/convai/sip-trunk/outbound-call",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.OutboundCalling.SIPTrunkCall(ctx, call)
			},
			wantBody: wantCall,
		},
		{
			name:   "twilio call",
			method: http.MethodPost,
			path:   "/v1/convai/twilio/outbound-call",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.OutboundCalling.TwilioCall(ctx, call)
			},
			wantBody: wantCall,
		},
		{
			name:   "batch list workspace",
			method: http.MethodGet,
			path:   "/v1/convai/batch-calling/workspace",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.BatchCalling.ListWorkspace(ctx, ListBatchParams{Limit: 50, LastDoc: "doc_x"})
			},
			wantQuery: url.Values{"limit": {"50"}, "last_doc": {"doc_x"}},
		},
		{
			name:   "batch get",
			method: http.MethodGet,
			path:   "/v1/convai/batch-calling/batch_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.BatchCalling.Get(ctx, "batch_1")
			},
		},
		{
			name:   "batch cancel",
			method: http.MethodPost,
			path:   "/v1/convai/batch-calling/batch_1/cancel",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.BatchCalling.Cancel(ctx, "batch_1")
			},
		},
		{
			name:   "batch retry",
			method: http.MethodPost,
			path:   "/v1/convai/batch-calling/batch_1/retry",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.BatchCalling.Retry(ctx, "batch_1")
			},
		},
		{
			name:   "batch delete",
			method: http.MethodDelete,
			path:   "/v1/convai/batch-calling/batch_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.BatchCalling.Delete(ctx, "batch_1")
			},
		},
	})
}

func TestWorkspaceRoutes(t *testing.T) {
	runRouteCases(t, []routeCase{
		{
			name:   "widget",
			method: http.MethodGet,
			path:   "/v1/convai/agents/agent_1/widget",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Widgets.Get(ctx, "agent_1", "sig")
			},
			wantQuery: url.Values{"conversation_signature": {"sig"}},
		},
		{
			name:   "get settings",
			method: http.MethodGet,
			path:   "/v1/convai/settings",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Workspace.GetSettings(ctx)
			},
		},
		{
			name:   "update settings",
			method: http.MethodPatch,
			path:   "/v1/convai/settings",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Workspace.UpdateSettings(ctx, Object{"can_use_mcp_servers": true})
			},
			wantBody: map[string]any{"can_use_mcp_servers": true},
		},
		{
			name:   "list secrets",
			method: http.MethodGet,
			path:   "/v1/convai/secrets",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Workspace.ListSecrets(ctx)
			},
		},
		{
			name:   "create secret",
			method: http.MethodPost,
			path:   "/v1/convai/secrets",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Workspace.CreateSecret(ctx, "crm_token", "s3cr3t")
			},
			wantBody: map[string]any{"type": "new", "name": "crm_token", "value": "s3cr3t"},
		},
		{
			name:   "update secret",
			method: http.MethodPatch,
			path:   "/v1/convai/secrets/sec_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Workspace.UpdateSecret(ctx, "sec_1", "crm_token", "rotated")
			},
			wantBody: map[string]any{"type": "update", "name": "crm_token", "value": "rotated"},
		},
		{
			name:   "delete secret",
			method: http.MethodDelete,
			path:   "/v1/convai/secrets/sec_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return nil, c.Workspace.DeleteSecret(ctx, "sec_1")
			},
		},
		{
			name:   "get dashboard",
			method: http.MethodGet,
			path:   "/v1/convai/settings/dashboard",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Workspace.GetDashboardSettings(ctx)
			},
		},
		{
			name:   "update dashboard",
			method: http.MethodPatch,
			path:   "/v1/convai/settings/dashboard",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Workspace.UpdateDashboardSettings(ctx, Object{"charts": []any{}})
			},
			wantBody: map[string]any{"charts": []any{}},
		},
	})
}

func TestMCPServersRoutes(t *testing.T) {
	runRouteCases(t, []routeCase{
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/v1/convai/mcp-servers",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.MCPServers.List(ctx)
			},
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/v1/convai/mcp-servers",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.MCPServers.Create(ctx, Object{"url": "https://mcp.example.com/sse", "name": "crm"})
			},
			wantBody: map[string]any{"config": map[string]any{"url": "https://mcp.example.com/sse", "name": "crm"}},
		},
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/v1/convai/mcp-servers/mcp_1",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.MCPServers.Get(ctx, "mcp_1")
			},
		},
		{
			name:   "approval policy",
			method: http.MethodPatch,
			path:   "/v1/convai/mcp-servers/mcp_1/approval-policy",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.MCPServers.UpdateApprovalPolicy(ctx, "mcp_1", ApprovalRequireApprovalPerTool)
			},
			wantBody: map[string]any{"approval_policy": "require_approval_per_tool"},
		},
		{
			name:   "create tool approval",
			method: http.MethodPost,
			path:   "/v1/convai/mcp-servers/mcp_1/tool-approvals",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.MCPServers.CreateToolApproval(ctx, "mcp_1", ToolApprovalParams{
					ToolName:        "lookup_order",
					ToolDescription: "Find an order",
				})
			},
			wantBody: map[string]any{"tool_name": "lookup_order", "tool_description": "Find an order"},
		},
		{
			name:   "delete tool approval",
			method: http.MethodDelete,
			path:   "/v1/convai/mcp-servers/mcp_1/tool-approvals/lookup_order",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.MCPServers.DeleteToolApproval(ctx, "mcp_1", "lookup_order")
			},
		},
	})
}

func TestMiscRoutes(t *testing.T) {
	runRouteCases(t, []routeCase{
		{
			name:   "llm usage",
			method: http.MethodPost,
			path:   "/v1/convai/llm-usage/calculate",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.LLMUsage.Calculate(ctx, LLMUsageParams{PromptLength: 1000, NumberOfPages: 2, RAGEnabled: true})
			},
			wantBody: map[string]any{"prompt_length": float64(1000), "number_of_pages": float64(2), "rag_enabled": true},
		},
		{
			name:   "audio native settings",
			method: http.MethodGet,
			path:   "/v1/audio-native/proj_1/settings",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.AudioNative.GetSettings(ctx, "proj_1")
			},
		},
		{
			name:     "models",
			method:   http.MethodGet,
			path:     "/v1/models",
			response: []any{map[string]any{"model_id": "eleven_flash_v2_5"}},
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Models.List(ctx)
			},
		},
	})
}
