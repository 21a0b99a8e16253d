package elevenlabs

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// BatchCallingService schedules and manages batches of outbound calls
type BatchCallingService struct{ service }

// SubmitBatchParams describes a batch call job. Recipients are sent as
// given, including an empty list.
type SubmitBatchParams struct {
	CallName           string
	AgentID            string
	AgentPhoneNumberID string
	ScheduledTimeUnix  *int64
	Recipients         []Object
}

// ListBatchParams pages through the workspace's batch jobs
type ListBatchParams struct {
	Limit   int
	LastDoc string
}

// Submit schedules a batch call job
func (s *BatchCallingService) Submit(ctx context.Context, params SubmitBatchParams) (Object, error) {
	recipients := params.Recipients
	if recipients == nil {
		recipients = []Object{}
	}
	body := newPayload(nil).
		set("call_name", params.CallName).
		set("agent_id", params.AgentID).
		set("agent_phone_number_id", params.AgentPhoneNumberID).
		set("scheduled_time_unix", params.ScheduledTimeUnix).
		set("recipients", recipients)
	return s.object(ctx, http.MethodPost, "/v1/convai/batch-calling/submit", body, nil)
}

// ListWorkspace returns the workspace's batch jobs
func (s *BatchCallingService) ListWorkspace(ctx context.Context, params ListBatchParams) (Object, error) {
	q := url.Values{}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.LastDoc != "" {
		q.Set("last_doc", params.LastDoc)
	}
	return s.object(ctx, http.MethodGet, "/v1/convai/batch-calling/workspace", nil, q)
}

// Get retrieves a batch job with per-recipient status
func (s *BatchCallingService) Get(ctx context.Context, batchID string) (Object, error) {
	if batchID == "" {
		return nil, missing("batch_id")
	}
	return s.object(ctx, http.MethodGet, "/v1/convai/batch-calling/"+esc(batchID), nil, nil)
}

// Cancel stops a running batch job
func (s *BatchCallingService) Cancel(ctx context.Context, batchID string) (Object, error) {
	if batchID == "" {
		return nil, missing("batch_id")
	}
	return s.object(ctx, http.MethodPost, fmt.Sprintf("/v1/convai/batch-calling/%s/cancel", esc(batchID)), nil, nil)
}

// Retry re-dials the failed and unanswered recipients of a batch job
func (s *BatchCallingService) Retry(ctx context.Context, batchID string) (Object, error) {
	if batchID == "" {
		return nil, missing("batch_id")
	}
	return s.object(ctx, http.MethodPost, fmt.Sprintf("/v1/convai/batch-calling/%s/retry", esc(batchID)), nil, nil)
}

// Delete removes a batch job
func (s *BatchCallingService) Delete(ctx context.Context, batchID string) error {
	if batchID == "" {
		return missing("batch_id")
	}
	return s.delete(ctx, "/v1/convai/batch-calling/"+esc(batchID), nil)
}
