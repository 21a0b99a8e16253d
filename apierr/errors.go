package apierr

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Kind classifies an API failure by cause
type Kind int

const (
	// KindUnknown is the zero value and is never produced by the dispatcher
	KindUnknown Kind = iota
	// KindAuthentication indicates a missing or rejected API key (401)
	KindAuthentication
	// KindPaymentRequired indicates the account is out of quota (402)
	KindPaymentRequired
	// KindForbidden indicates the key lacks permission for the resource (403)
	KindForbidden
	// KindNotFound indicates the resource does not exist (404)
	KindNotFound
	// KindUnprocessableEntity indicates request validation failed (422)
	KindUnprocessableEntity
	// KindRateLimit indicates too many requests (429)
	KindRateLimit
	// KindServiceUnavailable indicates the API is temporarily down (503)
	KindServiceUnavailable
	// KindAPI covers every other 4xx/5xx response
	KindAPI
	// KindParse indicates a 2xx response whose JSON body could not be decoded
	KindParse
	// KindTransport indicates the request never produced a response
	KindTransport
)

// Sentinel errors, one per kind. An *Error matches its kind's sentinel
// through errors.Is.
var (
	ErrAuthentication      = errors.New("authentication failed")
	ErrPaymentRequired     = errors.New("payment required")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("resource not found")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrRateLimit           = errors.New("rate limit exceeded")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrAPI                 = errors.New("api error")
	ErrParse               = errors.New("failed to parse response")
	ErrTransport           = errors.New("transport failure")
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication_error"
	case KindPaymentRequired:
		return "payment_required"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindUnprocessableEntity:
		return "unprocessable_entity"
	case KindRateLimit:
		return "rate_limit"
	case KindServiceUnavailable:
		return "service_unavailable"
	case KindAPI:
		return "api_error"
	case KindParse:
		return "parse_error"
	case KindTransport:
		return "transport_error"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindAuthentication:
		return ErrAuthentication
	case KindPaymentRequired:
		return ErrPaymentRequired
	case KindForbidden:
		return ErrForbidden
	case KindNotFound:
		return ErrNotFound
	case KindUnprocessableEntity:
		return ErrUnprocessableEntity
	case KindRateLimit:
		return ErrRateLimit
	case KindServiceUnavailable:
		return ErrServiceUnavailable
	case KindAPI:
		return ErrAPI
	case KindParse:
		return ErrParse
	case KindTransport:
		return ErrTransport
	default:
		return nil
	}
}

// ValidationDetail is one field-level entry of a 422 response
type ValidationDetail struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

// Field returns the dotted location of the offending field, e.g. "body.prompt_length"
func (d ValidationDetail) Field() string {
	var out string
	for i, part := range d.Loc {
		if i > 0 {
			out += "."
		}
		out += fmt.Sprint(part)
	}
	return out
}

// Error is the single error type returned by the dispatcher
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	// Body is the raw response body, nil for transport failures
	Body []byte
	// Details is only populated for KindUnprocessableEntity
	Details []ValidationDetail
	// Err is the underlying cause for parse and transport failures
	Err error
}

// New creates an error of the given kind without an HTTP response attached
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewParseError wraps a decode failure of a successful response
func NewParseError(statusCode int, body []byte, err error) *Error {
	return &Error{
		Kind:       KindParse,
		StatusCode: statusCode,
		Message:    "response body is not valid JSON",
		Body:       body,
		Err:        err,
	}
}

// NewTransportError wraps a failure to obtain a response
func NewTransportError(err error) *Error {
	msg := "request failed"
	if isTimeout(err) {
		msg = "request timed out"
	}
	return &Error{
		Kind:    KindTransport,
		Message: msg,
		Err:     err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Kind == KindTransport || e.Kind == KindParse:
		if e.Err != nil {
			return fmt.Sprintf("elevenlabs %s: %s: %v", e.Kind, e.Message, e.Err)
		}
		return fmt.Sprintf("elevenlabs %s: %s", e.Kind, e.Message)
	case e.StatusCode == 0:
		return fmt.Sprintf("elevenlabs %s: %s", e.Kind, e.Message)
	default:
		return fmt.Sprintf("elevenlabs %s: status %d: %s", e.Kind, e.StatusCode, e.Message)
	}
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// Timeout reports whether a transport failure was caused by a deadline
func (e *Error) Timeout() bool {
	return e.Kind == KindTransport && isTimeout(e.Err)
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// IsNotFound checks if the error indicates a not found response
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized checks if the error indicates an authentication or permission failure
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrAuthentication) || errors.Is(err, ErrForbidden)
}

// IsRateLimited checks if the error indicates the caller should slow down
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimit)
}

// IsTransport checks if the request failed before a response was received
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
