package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/s0up4200/convai/apierr"
)

const (
	// DefaultBaseURL is used when no base URL is configured
	DefaultBaseURL = "https://api.elevenlabs.io"
	// APIKeyHeader carries the API key on every request
	APIKeyHeader = "xi-api-key"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "convai-go"
)

// Client dispatches requests to the ElevenLabs API. It holds no mutable
// state after construction and is safe for concurrent use.
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	streamClient *http.Client // no overall timeout, see Stream
	userAgent    string
	limiter      *rate.Limiter
	logger       zerolog.Logger
}

// New creates a new dispatcher for the given API key and base URL. An empty
// base URL falls back to DefaultBaseURL.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, apierr.New(apierr.KindAuthentication, "API key is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	// Ensure baseURL doesn't have trailing slash
	baseURL = strings.TrimRight(baseURL, "/")
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}

	o := clientOptions{
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: o.httpClient,
		userAgent:  o.userAgent,
		logger:     o.logger,
	}
	if c.httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.ResponseHeaderTimeout = o.timeout
		c.httpClient = &http.Client{Timeout: o.timeout, Transport: transport}
		c.streamClient = &http.Client{Transport: transport}
	} else {
		c.streamClient = c.httpClient
	}
	if o.rateLimit > 0 {
		burst := o.burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(o.rateLimit), burst)
	}

	return c, nil
}

// BaseURL returns the resolved base URL without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs a request and returns the decoded JSON value for JSON
// responses, or the raw body bytes for anything else. A *Form body is sent
// as multipart/form-data; any other non-nil body is sent as JSON.
func (c *Client) Do(ctx context.Context, method, path string, body any, query url.Values) (any, error) {
	resp, err := c.Send(ctx, method, path, body, query)
	if err != nil {
		return nil, err
	}
	return resp.Value()
}

// DoJSON performs a request and decodes the JSON response into out. A nil
// out discards the body.
func (c *Client) DoJSON(ctx context.Context, method, path string, body any, query url.Values, out any) error {
	resp, err := c.Send(ctx, method, path, body, query)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return resp.Decode(out)
}

// DoRaw performs a request and returns the response body untouched
func (c *Client) DoRaw(ctx context.Context, method, path string, body any, query url.Values) ([]byte, error) {
	resp, err := c.Send(ctx, method, path, body, query)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Multipart posts a multipart/form-data body built from form
func (c *Client) Multipart(ctx context.Context, path string, form *Form) (any, error) {
	return c.Do(ctx, http.MethodPost, path, form, nil)
}

// Send performs a request and returns the fully read response. Non-2xx
// responses are returned as *apierr.Error.
func (c *Client) Send(ctx context.Context, method, path string, body any, query url.Values) (*Response, error) {
	httpResp, reqID, start, err := c.roundTrip(ctx, c.httpClient, method, path, body, query)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, apierr.NewTransportError(fmt.Errorf("failed to read response body: %w", err))
	}

	c.logger.Debug().
		Str("request_id", reqID).
		Str("method", method).
		Str("path", path).
		Int("status", httpResp.StatusCode).
		Int("bytes", len(data)).
		Dur("duration", time.Since(start)).
		Msg("ElevenLabs API response")

	if apiErr := apierr.FromResponse(httpResp.StatusCode, data); apiErr != nil {
		return nil, apiErr
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       data,
	}, nil
}

// roundTrip builds and issues the request. On success the caller owns the
// response body.
func (c *Client) roundTrip(ctx context.Context, hc *http.Client, method, path string, body any, query url.Values) (*http.Response, string, time.Time, error) {
	reqID := uuid.NewString()
	start := time.Now()

	reader, contentType, err := encodeBody(body)
	if err != nil {
		return nil, reqID, start, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), reader)
	if err != nil {
		return nil, reqID, start, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(APIKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json, */*")
	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, reqID, start, apierr.NewTransportError(fmt.Errorf("rate limiter: %w", err))
		}
	}

	c.logger.Debug().
		Str("request_id", reqID).
		Str("method", method).
		Str("path", path).
		Msg("ElevenLabs API request")

	resp, err := hc.Do(req)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("request_id", reqID).
			Dur("duration", time.Since(start)).
			Msg("ElevenLabs API request failed")
		return nil, reqID, start, apierr.NewTransportError(err)
	}

	return resp, reqID, start, nil
}

func (c *Client) url(path string, query url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case *Form:
		if b == nil {
			return nil, "", nil
		}
		return b.encode()
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body: %w", err)
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

// Response is a successful API response with its body fully read
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsJSON reports whether the response declares a JSON content type
func (r *Response) IsJSON() bool {
	return isJSONContentType(r.Header.Get("Content-Type"))
}

// Value returns the decoded JSON body for JSON responses and the raw bytes
// otherwise. An empty body yields nil.
func (r *Response) Value() (any, error) {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil, nil
	}
	if !r.IsJSON() {
		return r.Body, nil
	}
	var v any
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return nil, apierr.NewParseError(r.StatusCode, r.Body, err)
	}
	return v, nil
}

// Decode unmarshals the JSON body into out. An empty body leaves out untouched.
func (r *Response) Decode(out any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, out); err != nil {
		return apierr.NewParseError(r.StatusCode, r.Body, err)
	}
	return nil
}

func isJSONContentType(ct string) bool {
	if ct == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
