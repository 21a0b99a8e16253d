package elevenlabs

import (
	"context"
	"net/http"
)

// PhoneNumbersService manages phone numbers attached to agents
type PhoneNumbersService struct{ service }

// Phone number providers
const (
	ProviderTwilio   = "twilio"
	ProviderSIPTrunk = "sip_trunk"
)

// ImportPhoneNumberParams imports a Twilio number (SID and Token) or a SIP
// trunk number (trunk settings in Extra)
type ImportPhoneNumberParams struct {
	PhoneNumber string
	Label       string
	Provider    string
	SID         string
	Token       string
	Extra       Object
}

// Import registers a phone number and returns {"phone_number_id": ...}
func (s *PhoneNumbersService) Import(ctx context.Context, params ImportPhoneNumberParams) (Object, error) {
	provider := params.Provider
	if provider == "" {
		provider = ProviderTwilio
	}
	body := newPayload(params.Extra).
		set("phone_number", params.PhoneNumber).
		set("label", params.Label).
		set("provider", provider).
		set("sid", params.SID).
		set("token", params.Token)
	return s.object(ctx, http.MethodPost, "/v1/convai/phone-numbers", body, nil)
}

// List returns every phone number in the workspace
func (s *PhoneNumbersService) List(ctx context.Context) ([]Object, error) {
	return s.list(ctx, http.MethodGet, "/v1/convai/phone-numbers", nil, nil)
}

// Get retrieves a phone number
func (s *PhoneNumbersService) Get(ctx context.Context, phoneNumberID string) (Object, error) {
	if phoneNumberID == "" {
		return nil, missing("phone_number_id")
	}
	return s.object(ctx, http.MethodGet, "/v1/convai/phone-numbers/"+esc(phoneNumberID), nil, nil)
}

// Update assigns the phone number to an agent. An empty agentID detaches it.
func (s *PhoneNumbersService) Update(ctx context.Context, phoneNumberID, agentID string) (Object, error) {
	if phoneNumberID == "" {
		return nil, missing("phone_number_id")
	}
	var agent any
	if agentID != "" {
		agent = agentID
	}
	return s.object(ctx, http.MethodPatch, "/v1/convai/phone-numbers/"+esc(phoneNumberID), Object{"agent_id": agent}, nil)
}

// Delete removes a phone number
func (s *PhoneNumbersService) Delete(ctx context.Context, phoneNumberID string) error {
	if phoneNumberID == "" {
		return missing("phone_number_id")
	}
	return s.delete(ctx, "/v1/convai/phone-numbers/"+esc(phoneNumberID), nil)
}
