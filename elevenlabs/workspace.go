package elevenlabs

import (
	"context"
	"net/http"
)

// WorkspaceService manages Conversational AI workspace settings and secrets
type WorkspaceService struct{ service }

// GetSettings returns the workspace settings
func (s *WorkspaceService) GetSettings(ctx context.Context) (Object, error) {
	return s.object(ctx, http.MethodGet, "/v1/convai/settings", nil, nil)
}

// UpdateSettings patches the workspace settings
func (s *WorkspaceService) UpdateSettings(ctx context.Context, settings Object) (Object, error) {
	return s.object(ctx, http.MethodPatch, "/v1/convai/settings", newPayload(settings), nil)
}

// ListSecrets returns the workspace secrets (values are never returned)
func (s *WorkspaceService) ListSecrets(ctx context.Context) (Object, error) {
	return s.object(ctx, http.MethodGet, "/v1/convai/secrets", nil, nil)
}

// CreateSecret stores a new secret that tools can reference
func (s *WorkspaceService) CreateSecret(ctx context.Context, name, value string) (Object, error) {
	body := Object{"type": "new", "name": name, "value": value}
	return s.object(ctx, http.MethodPost, "/v1/convai/secrets", body, nil)
}

// UpdateSecret replaces a secret's name and value
func (s *WorkspaceService) UpdateSecret(ctx context.Context, secretID, name, value string) (Object, error) {
	if secretID == "" {
		return nil, missing("secret_id")
	}
	body := Object{"type": "update", "name": name, "value": value}
	return s.object(ctx, http.MethodPatch, "/v1/convai/secrets/"+esc(secretID), body, nil)
}

// DeleteSecret removes a secret
func (s *WorkspaceService) DeleteSecret(ctx context.Context, secretID string) error {
	if secretID == "" {
		return missing("secret_id")
	}
	return s.delete(ctx, "/v1/convai/secrets/"+esc(secretID), nil)
}

// GetDashboardSettings returns the dashboard chart configuration
func (s *WorkspaceService) GetDashboardSettings(ctx context.Context) (Object, error) {
	return s.object(ctx, http.MethodGet, "/v1/convai/settings/dashboard", nil, nil)
}

// UpdateDashboardSettings replaces the dashboard chart configuration
func (s *WorkspaceService) UpdateDashboardSettings(ctx context.Context, settings Object) (Object, error) {
	return s.object(ctx, http.MethodPatch, "/v1/convai/settings/dashboard", newPayload(settings), nil)
}
