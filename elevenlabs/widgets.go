package elevenlabs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/s0up4200/convai/client"
)

// WidgetsService reads an agent's embeddable widget configuration
type WidgetsService struct{ service }

// Get returns the widget configuration. conversationSignature is optional.
func (s *WidgetsService) Get(ctx context.Context, agentID, conversationSignature string) (Object, error) {
	if agentID == "" {
		return nil, missing("agent_id")
	}
	var q url.Values
	if conversationSignature != "" {
		q = url.Values{"conversation_signature": {conversationSignature}}
	}
	return s.object(ctx, http.MethodGet, fmt.Sprintf("/v1/convai/agents/%s/widget", esc(agentID)), nil, q)
}

// CreateAvatar uploads the widget avatar image and returns {"avatar_url": ...}
func (s *WidgetsService) CreateAvatar(ctx context.Context, agentID, filename string, image io.Reader) (Object, error) {
	if agentID == "" {
		return nil, missing("agent_id")
	}
	form := client.NewForm().AddFile("avatar_file", filename, image)
	return s.object(ctx, http.MethodPost, fmt.Sprintf("/v1/convai/agents/%s/avatar", esc(agentID)), form, nil)
}
