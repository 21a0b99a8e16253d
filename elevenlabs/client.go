package elevenlabs

import (
	"context"
	"net/url"

	"github.com/s0up4200/convai/client"
	"github.com/s0up4200/convai/config"
)

// Dispatcher is the transport the services issue requests through.
// *client.Client implements it.
type Dispatcher interface {
	Send(ctx context.Context, method, path string, body any, query url.Values) (*client.Response, error)
	Stream(ctx context.Context, method, path string, body any, query url.Values) (*client.Stream, error)
}

// Client groups every Conversational AI endpoint module behind one handle.
// It is immutable after construction and safe for concurrent use.
type Client struct {
	dispatcher Dispatcher
	creds      config.Credentials

	Agents          *AgentsService
	Conversations   *ConversationsService
	Tools           *ToolsService
	KnowledgeBase   *KnowledgeBaseService
	Tests           *TestsService
	PhoneNumbers    *PhoneNumbersService
	OutboundCalling *OutboundCallingService
	BatchCalling    *BatchCallingService
	Widgets         *WidgetsService
	Workspace       *WorkspaceService
	MCPServers      *MCPServersService
	LLMUsage        *LLMUsageService
	AudioIsolation  *AudioIsolationService
	AudioNative     *AudioNativeService
	Models          *ModelsService
}

// New resolves credentials against settings and builds a client. Explicit
// credential fields take priority over configured properties and the
// environment. A nil settings uses config.Default().
func New(settings *config.Settings, creds config.Credentials, opts ...client.Option) (*Client, error) {
	if settings == nil {
		settings = config.Default()
	}

	resolved, err := settings.Resolve(creds)
	if err != nil {
		return nil, err
	}

	d, err := client.New(resolved.APIKey, resolved.BaseURL, opts...)
	if err != nil {
		return nil, err
	}

	c := NewWithDispatcher(d)
	c.creds = config.Credentials{APIKey: resolved.APIKey, BaseURL: d.BaseURL()}
	return c, nil
}

// NewFromEnv builds a client from the process-wide settings and the
// ELEVENLABS_API_KEY / ELEVENLABS_BASE_URL environment variables.
func NewFromEnv(opts ...client.Option) (*Client, error) {
	return New(config.Default(), config.Credentials{}, opts...)
}

// NewWithDispatcher wires every service to an existing dispatcher
func NewWithDispatcher(d Dispatcher) *Client {
	s := service{d: d}
	return &Client{
		dispatcher:      d,
		Agents:          &AgentsService{s},
		Conversations:   &ConversationsService{s},
		Tools:           &ToolsService{s},
		KnowledgeBase:   &KnowledgeBaseService{s},
		Tests:           &TestsService{s},
		PhoneNumbers:    &PhoneNumbersService{s},
		OutboundCalling: &OutboundCallingService{s},
		BatchCalling:    &BatchCallingService{s},
		Widgets:         &WidgetsService{s},
		Workspace:       &WorkspaceService{s},
		MCPServers:      &MCPServersService{s},
		LLMUsage:        &LLMUsageService{s},
		AudioIsolation:  &AudioIsolationService{s},
		AudioNative:     &AudioNativeService{s},
		Models:          &ModelsService{s},
	}
}

// Dispatcher returns the underlying transport
func (c *Client) Dispatcher() Dispatcher {
	return c.dispatcher
}

// BaseURL returns the resolved base URL, or "" when the client was built
// from an existing dispatcher
func (c *Client) BaseURL() string {
	return c.creds.BaseURL
}
