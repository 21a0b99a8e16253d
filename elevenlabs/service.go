package elevenlabs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/s0up4200/convai/client"
)

// Object is a remote entity as returned by the API, field names unchanged
type Object = map[string]any

// ErrMissingID is returned before any request is made when a required
// identifier is empty.
var ErrMissingID = errors.New("required identifier is empty")

func missing(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingID, name)
}

func requireIDs(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return missing(pairs[i])
		}
	}
	return nil
}

func esc(segment string) string {
	return url.PathEscape(segment)
}

type service struct {
	d Dispatcher
}

func (s service) object(ctx context.Context, method, path string, body any, query url.Values) (Object, error) {
	resp, err := s.d.Send(ctx, method, path, body, query)
	if err != nil {
		return nil, err
	}
	var out Object
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s service) list(ctx context.Context, method, path string, body any, query url.Values) ([]Object, error) {
	resp, err := s.d.Send(ctx, method, path, body, query)
	if err != nil {
		return nil, err
	}
	var out []Object
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s service) raw(ctx context.Context, method, path string, body any, query url.Values) ([]byte, error) {
	resp, err := s.d.Send(ctx, method, path, body, query)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (s service) delete(ctx context.Context, path string, query url.Values) error {
	_, err := s.d.Send(ctx, http.MethodDelete, path, nil, query)
	return err
}

// Pagination selects a page of a cursor-paginated listing
type Pagination struct {
	PageSize int
	Cursor   string
}

func (p Pagination) apply(q url.Values) {
	if p.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(p.PageSize))
	}
	if p.Cursor != "" {
		q.Set("cursor", p.Cursor)
	}
}

// Sorting narrows and orders a listing
type Sorting struct {
	Search        string
	SortBy        string
	SortDirection string
}

func (s Sorting) apply(q url.Values) {
	if s.Search != "" {
		q.Set("search", s.Search)
	}
	if s.SortBy != "" {
		q.Set("sort_by", s.SortBy)
	}
	if s.SortDirection != "" {
		q.Set("sort_direction", s.SortDirection)
	}
}

// payload is a JSON request body assembled from optional fields
type payload Object

// newPayload starts a body from a copy of extra, so named fields set later
// take precedence over the escape hatch.
func newPayload(extra Object) payload {
	p := make(payload, len(extra))
	for k, v := range extra {
		p[k] = v
	}
	return p
}

// set stores v unless it is an empty string or a nil reference
func (p payload) set(key string, v any) payload {
	switch x := v.(type) {
	case nil:
		return p
	case string:
		if x == "" {
			return p
		}
	case Object:
		if x == nil {
			return p
		}
	case []Object:
		if x == nil {
			return p
		}
	case []string:
		if x == nil {
			return p
		}
	case *bool:
		if x == nil {
			return p
		}
	case *int:
		if x == nil {
			return p
		}
	case *int64:
		if x == nil {
			return p
		}
	}
	p[key] = v
	return p
}

func boolString(b bool) string {
	return strconv.FormatBool(b)
}

// Bool returns a pointer to b, for optional boolean parameters
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n, for optional integer parameters
func Int(n int) *int { return &n }

// Int64 returns a pointer to n, for optional unix timestamps
func Int64(n int64) *int64 { return &n }

var _ Dispatcher = (*client.Client)(nil)
