package apierr

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
)

// maxMessageLen bounds how much of a non-JSON body ends up in Message
const maxMessageLen = 512

// KindForStatus maps an HTTP status code to a Kind. Codes below 400 map to
// KindUnknown since they are not failures.
func KindForStatus(statusCode int) Kind {
	switch statusCode {
	case http.StatusUnauthorized:
		return KindAuthentication
	case http.StatusPaymentRequired:
		return KindPaymentRequired
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusUnprocessableEntity:
		return KindUnprocessableEntity
	case http.StatusTooManyRequests:
		return KindRateLimit
	case http.StatusServiceUnavailable:
		return KindServiceUnavailable
	}
	if statusCode >= 400 {
		return KindAPI
	}
	return KindUnknown
}

// FromResponse builds the error for a non-2xx response. It returns nil for
// status codes below 400.
func FromResponse(statusCode int, body []byte) *Error {
	kind := KindForStatus(statusCode)
	if kind == KindUnknown {
		return nil
	}

	msg, details := extractMessage(body)
	if msg == "" {
		msg = http.StatusText(statusCode)
	}

	apiErr := &Error{
		Kind:       kind,
		StatusCode: statusCode,
		Message:    msg,
		Body:       body,
	}
	if kind == KindUnprocessableEntity {
		apiErr.Details = details
	}
	return apiErr
}

// UnexpectedStatus builds a KindAPI error for a non-2xx status that
// FromResponse does not classify, such as a 304 where a body was required
func UnexpectedStatus(statusCode int, body []byte) *Error {
	if apiErr := FromResponse(statusCode, body); apiErr != nil {
		return apiErr
	}
	msg := http.StatusText(statusCode)
	if msg == "" {
		msg = "unexpected status"
	}
	return &Error{
		Kind:       KindAPI,
		StatusCode: statusCode,
		Message:    msg,
		Body:       body,
	}
}

// errorBody covers the shapes the API uses for error payloads:
//
//	{"detail": "text"}
//	{"detail": {"status": "...", "message": "..."}}
//	{"detail": [{"loc": [...], "msg": "...", "type": "..."}]}
//	{"message": "..."} / {"error": "..."}
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
	Error   any             `json:"error"`
}

func extractMessage(body []byte) (string, []ValidationDetail) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return "", nil
	}

	var eb errorBody
	if err := json.Unmarshal(trimmed, &eb); err != nil {
		return truncate(string(trimmed)), nil
	}

	if len(eb.Detail) > 0 {
		if msg, details, ok := parseDetail(eb.Detail); ok {
			return msg, details
		}
	}
	if eb.Message != "" {
		return eb.Message, nil
	}
	switch v := eb.Error.(type) {
	case string:
		if v != "" {
			return v, nil
		}
	case map[string]any:
		if m, ok := v["message"].(string); ok && m != "" {
			return m, nil
		}
	}
	return truncate(string(trimmed)), nil
}

func parseDetail(raw json.RawMessage) (string, []ValidationDetail, bool) {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text, nil, text != ""
	}

	var obj struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		if obj.Message != "" {
			return obj.Message, nil, true
		}
		if obj.Status != "" {
			return obj.Status, nil, true
		}
		return "", nil, false
	}

	var details []ValidationDetail
	if err := json.Unmarshal(raw, &details); err == nil && len(details) > 0 {
		msgs := make([]string, 0, len(details))
		for _, d := range details {
			if field := d.Field(); field != "" {
				msgs = append(msgs, field+": "+d.Msg)
			} else {
				msgs = append(msgs, d.Msg)
			}
		}
		return strings.Join(msgs, "; "), details, true
	}

	return "", nil, false
}

func truncate(s string) string {
	if len(s) <= maxMessageLen {
		return s
	}
	return s[:maxMessageLen] + "..."
}
