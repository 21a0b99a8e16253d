// Package client implements the request dispatcher shared by every
// ElevenLabs endpoint module.
//
// The dispatcher turns a logical request (method, path, body, query) into an
// HTTP request carrying the xi-api-key header, then turns the response into
// either a decoded value or an *apierr.Error.
//
// # Request bodies
//
//   - nil: no body
//   - *Form: multipart/form-data, boundary set by the writer
//   - anything else: JSON with Content-Type application/json
//
// # Responses
//
// Do returns decoded JSON (map[string]any, []any, ...) when the response
// declares a JSON content type and the raw []byte otherwise, so audio and
// video payloads pass through untouched. DoJSON decodes into a caller value,
// DoRaw always returns bytes. Stream hands back a *Stream whose Chunks channel
// yields the body as it arrives.
//
// # Usage
//
//	c, err := client.New(apiKey, "",
//		client.WithTimeout(60*time.Second),
//		client.WithLogger(logger),
//	)
//	if err != nil {
//		return err
//	}
//	models, err := c.Do(ctx, http.MethodGet, "/v1/models", nil, nil)
//
// # Thread Safety
//
// A Client is immutable after New and may be shared between goroutines.
// The dispatcher never retries and never caches.
package client
