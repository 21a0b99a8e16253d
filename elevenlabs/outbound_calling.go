package elevenlabs

import (
	"context"
	"net/http"
)

// OutboundCallingService places single outbound calls
type OutboundCallingService struct{ service }

// OutboundCallParams describes one call from an agent's phone number
type OutboundCallParams struct {
	AgentID                          string
	AgentPhoneNumberID               string
	ToNumber                         string
	ConversationInitiationClientData Object
}

func (p OutboundCallParams) body() payload {
	return newPayload(nil).
		set("agent_id", p.AgentID).
		set("agent_phone_number_id", p.AgentPhoneNumberID).
		set("to_number", p.ToNumber).
		set("conversation_initiation_client_data", p.ConversationInitiationClientData)
}

// SIPTrunkCall places a call through a SIP trunk number
func (s *OutboundCallingService) SIPTrunkCall(ctx context.Context, params OutboundCallParams) (Object, error) {
	return s.object(ctx, http.MethodPost, "/v1/convai/sip-trunk/outbound-call", params.body(), nil)
}

// TwilioCall places a call through a Twilio number
func (s *OutboundCallingService) TwilioCall(ctx context.Context, params OutboundCallParams) (Object, error) {
	return s.object(ctx, http.MethodPost, "/v1/convai/twilio/outbound-call", params.body(), nil)
}
