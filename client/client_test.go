package client

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/convai/apierr"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := New("test-key", server.URL, opts...)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		baseURL string
		wantURL string
		wantErr bool
		errKind apierr.Kind
	}{
		{
			name:    "default base URL",
			apiKey:  "key",
			wantURL: DefaultBaseURL,
		},
		{
			name:    "trailing slash trimmed",
			apiKey:  "key",
			baseURL: "https://eu.api.elevenlabs.io/",
			wantURL: "https://eu.api.elevenlabs.io",
		},
		{
			name:    "missing API key",
			baseURL: "https://api.elevenlabs.io",
			wantErr: true,
			errKind: apierr.KindAuthentication,
		},
		{
			name:    "invalid base URL",
			apiKey:  "key",
			baseURL: "not a url",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.apiKey, tt.baseURL)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errKind != apierr.KindUnknown {
					assert.Equal(t, tt.errKind, apierr.KindOf(err))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, c.BaseURL())
		})
	}
}

func TestClientOptions(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		c, err := New("key", "", WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, c.httpClient.Timeout)
	})

	t.Run("default timeout", func(t *testing.T) {
		c, err := New("key", "")
		require.NoError(t, err)
		assert.Equal(t, defaultTimeout, c.httpClient.Timeout)
		assert.Zero(t, c.streamClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		c, err := New("key", "", WithHTTPClient(custom), WithTimeout(time.Second))
		require.NoError(t, err)
		assert.Same(t, custom, c.httpClient)
		assert.Same(t, custom, c.streamClient)
	})

	t.Run("with rate limit", func(t *testing.T) {
		c, err := New("key", "", WithRateLimit(5, 0))
		require.NoError(t, err)
		require.NotNil(t, c.limiter)
		assert.Equal(t, 1, c.limiter.Burst())
	})

	t.Run("with user agent", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "my-app/1.0", r.Header.Get("User-Agent"))
		}, WithUserAgent("my-app/1.0"), WithLogger(zerolog.Nop()))
		_, err := c.Do(context.Background(), http.MethodGet, "/v1/models", nil, nil)
		require.NoError(t, err)
	})
}

func TestDoJSONRequest(t *testing.T) {
	payload := map[string]any{
		"agent_id": "agent_123",
		"name":     "Support",
		"tags":     []any{"a", "b"},
		"nested":   map[string]any{"n": 1.5, "ok": true, "none": nil},
	}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/v1/convai/agents/agent_123", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("page_size"))
		assert.Equal(t, "test-key", r.Header.Get(APIKeyHeader))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Renamed", body["name"])

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		json.NewEncoder(w).Encode(payload)
	})

	got, err := c.Do(context.Background(), http.MethodPatch, "/v1/convai/agents/agent_123",
		map[string]any{"name": "Renamed"}, url.Values{"page_size": {"20"}})
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDoWithoutBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Content-Type"))
		b, _ := io.ReadAll(r.Body)
		assert.Empty(t, b)
		w.WriteHeader(http.StatusNoContent)
	})

	got, err := c.Do(context.Background(), http.MethodDelete, "v1/convai/tools/t1", nil, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBinaryPassthrough(t *testing.T) {
	audio := make([]byte, 3*1024*1024+17)
	_, err := rand.Read(audio)
	require.NoError(t, err)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write(audio)
	})

	got, err := c.Do(context.Background(), http.MethodGet, "/v1/convai/conversations/c1/audio", nil, nil)
	require.NoError(t, err)
	raw, ok := got.([]byte)
	require.True(t, ok, "expected []byte, got %T", got)
	assert.Equal(t, audio, raw)

	raw, err = c.DoRaw(context.Background(), http.MethodGet, "/v1/convai/conversations/c1/audio", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, audio, raw)
}

func TestStatusMapping(t *testing.T) {
	bodies := []string{
		``,
		`{"detail":{"status":"x","message":"y"}}`,
		`{"detail":[{"loc":["body","a"],"msg":"bad","type":"value_error"}]}`,
		`not json at all`,
	}

	tests := []struct {
		status   int
		sentinel error
	}{
		{401, apierr.ErrAuthentication},
		{402, apierr.ErrPaymentRequired},
		{403, apierr.ErrForbidden},
		{404, apierr.ErrNotFound},
		{422, apierr.ErrUnprocessableEntity},
		{429, apierr.ErrRateLimit},
		{503, apierr.ErrServiceUnavailable},
		{400, apierr.ErrAPI},
		{500, apierr.ErrAPI},
	}

	others := []error{
		apierr.ErrAuthentication, apierr.ErrPaymentRequired, apierr.ErrForbidden,
		apierr.ErrNotFound, apierr.ErrUnprocessableEntity, apierr.ErrRateLimit,
		apierr.ErrServiceUnavailable, apierr.ErrAPI, apierr.ErrParse, apierr.ErrTransport,
	}

	for _, tt := range tests {
		for _, body := range bodies {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				io.WriteString(w, body)
			})

			_, err := c.Do(context.Background(), http.MethodGet, "/v1/models", nil, nil)
			require.Error(t, err)

			for _, s := range others {
				assert.Equal(t, s == tt.sentinel, errors.Is(err, s),
					"status %d body %q sentinel %v", tt.status, body, s)
			}

			var apiErr *apierr.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, []byte(body), apiErr.Body)
		}
	}
}

func TestParseFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"agent_id": "a1",`)
	})

	_, err := c.Do(context.Background(), http.MethodGet, "/v1/convai/agents/a1", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apierr.ErrParse)
	assert.False(t, errors.Is(err, apierr.ErrAPI))
	assert.False(t, errors.Is(err, apierr.ErrTransport))

	var out map[string]any
	err = c.DoJSON(context.Background(), http.MethodGet, "/v1/convai/agents/a1", nil, nil, &out)
	assert.ErrorIs(t, err, apierr.ErrParse)
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-time.After(2 * time.Second):
		}
	}, WithTimeout(50*time.Millisecond))
	defer close(release)

	_, err := c.Do(context.Background(), http.MethodGet, "/v1/models", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apierr.ErrTransport)
	assert.False(t, errors.Is(err, apierr.ErrParse))
	assert.False(t, errors.Is(err, apierr.ErrAPI))

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Timeout())
}

func TestConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	c, err := New("key", addr)
	require.NoError(t, err)

	_, err = c.Do(context.Background(), http.MethodGet, "/v1/models", nil, nil)
	assert.ErrorIs(t, err, apierr.ErrTransport)
}

func TestCancelledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {}, WithRateLimit(1, 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Do(ctx, http.MethodGet, "/v1/models", nil, nil)
	assert.ErrorIs(t, err, apierr.ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDoJSONDecodesIntoStruct(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"signed_url":"wss://example/abc"}`)
	})

	var out struct {
		SignedURL string `json:"signed_url"`
	}
	err := c.DoJSON(context.Background(), http.MethodGet, "/v1/convai/conversation/get-signed-url", nil, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "wss://example/abc", out.SignedURL)
}

func TestMarshalFailureIsNotAnAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not be sent")
	})

	_, err := c.Do(context.Background(), http.MethodPost, "/v1/x", map[string]any{"ch": make(chan int)}, nil)
	require.Error(t, err)
	assert.Equal(t, apierr.KindUnknown, apierr.KindOf(err))
}

func TestIsJSONContentType(t *testing.T) {
	assert.True(t, isJSONContentType("application/json"))
	assert.True(t, isJSONContentType("application/json; charset=utf-8"))
	assert.True(t, isJSONContentType("application/problem+json"))
	assert.False(t, isJSONContentType("audio/mpeg"))
	assert.False(t, isJSONContentType("text/plain"))
	assert.False(t, isJSONContentType(""))
}
