package elevenlabs

import (
	"context"
	"net/http"
)

// ModelsService lists the models available to the account
type ModelsService struct{ service }

// List returns every available model
func (s *ModelsService) List(ctx context.Context) ([]Object, error) {
	return s.list(ctx, http.MethodGet, "/v1/models", nil, nil)
}
