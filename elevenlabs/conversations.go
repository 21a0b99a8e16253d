package elevenlabs

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ConversationsService reads and manages conversation history
type ConversationsService struct{ service }

// Feedback values accepted by SendFeedback
const (
	FeedbackLike    = "like"
	FeedbackDislike = "dislike"
)

// ListConversationsParams filters the conversation listing
type ListConversationsParams struct {
	Pagination
	AgentID             string
	CallSuccessful      string
	CallStartBeforeUnix *int64
	CallStartAfterUnix  *int64
	UserID              string
	SummaryMode         string
}

func (p ListConversationsParams) query() url.Values {
	q := url.Values{}
	p.Pagination.apply(q)
	if p.AgentID != "" {
		q.Set("agent_id", p.AgentID)
	}
	if p.CallSuccessful != "" {
		q.Set("call_successful", p.CallSuccessful)
	}
	if p.CallStartBeforeUnix != nil {
		q.Set("call_start_before_unix", strconv.FormatInt(*p.CallStartBeforeUnix, 10))
	}
	if p.CallStartAfterUnix != nil {
		q.Set("call_start_after_unix", strconv.FormatInt(*p.CallStartAfterUnix, 10))
	}
	if p.UserID != "" {
		q.Set("user_id", p.UserID)
	}
	if p.SummaryMode != "" {
		q.Set("summary_mode", p.SummaryMode)
	}
	return q
}

// List returns a page of conversations
func (s *ConversationsService) List(ctx context.Context, params ListConversationsParams) (Object, error) {
	return s.object(ctx, http.MethodGet, "/v1/convai/conversations", nil, params.query())
}

// Get retrieves a conversation with its transcript and analysis
func (s *ConversationsService) Get(ctx context.Context, conversationID string) (Object, error) {
	if conversationID == "" {
		return nil, missing("conversation_id")
	}
	return s.object(ctx, http.MethodGet, "/v1/convai/conversations/"+esc(conversationID), nil, nil)
}

// Delete removes a conversation
func (s *ConversationsService) Delete(ctx context.Context, conversationID string) error {
	if conversationID == "" {
		return missing("conversation_id")
	}
	return s.delete(ctx, "/v1/convai/conversations/"+esc(conversationID), nil)
}

// GetAudio downloads the conversation recording byte-for-byte
func (s *ConversationsService) GetAudio(ctx context.Context, conversationID string) ([]byte, error) {
	if conversationID == "" {
		return nil, missing("conversation_id")
	}
	path := fmt.Sprintf("/v1/convai/conversations/%s/audio", esc(conversationID))
	return s.raw(ctx, http.MethodGet, path, nil, nil)
}

// GetSignedURL returns {"signed_url": ...} for starting a websocket
// conversation with a private agent
func (s *ConversationsService) GetSignedURL(ctx context.Context, agentID string) (Object, error) {
	if agentID == "" {
		return nil, missing("agent_id")
	}
	q := url.Values{"agent_id": {agentID}}
	return s.object(ctx, http.MethodGet, "/v1/convai/conversation/get-signed-url", nil, q)
}

// GetToken returns a WebRTC conversation token for the agent
func (s *ConversationsService) GetToken(ctx context.Context, agentID string) (Object, error) {
	if agentID == "" {
		return nil, missing("agent_id")
	}
	q := url.Values{"agent_id": {agentID}}
	return s.object(ctx, http.MethodGet, "/v1/convai/conversation/token", nil, q)
}

// SendFeedback records a like or dislike for a conversation
func (s *ConversationsService) SendFeedback(ctx context.Context, conversationID, feedback string) (Object, error) {
	if conversationID == "" {
		return nil, missing("conversation_id")
	}
	path := fmt.Sprintf("/v1/convai/conversations/%s/feedback", esc(conversationID))
	return s.object(ctx, http.MethodPost, path, Object{"feedback": feedback}, nil)
}

// GetMany fetches several conversations concurrently
func (s *ConversationsService) GetMany(ctx context.Context, conversationIDs []string) (map[string]Object, error) {
	return getMany(ctx, conversationIDs, s.Get)
}
