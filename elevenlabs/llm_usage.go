package elevenlabs

import (
	"context"
	"net/http"
)

// LLMUsageService estimates LLM cost for a hypothetical agent configuration
type LLMUsageService struct{ service }

// LLMUsageParams is sent as given; the API validates the values
type LLMUsageParams struct {
	PromptLength  int
	NumberOfPages int
	RAGEnabled    bool
}

// Calculate returns the per-minute price of each available LLM
func (s *LLMUsageService) Calculate(ctx context.Context, params LLMUsageParams) (Object, error) {
	body := Object{
		"prompt_length":   params.PromptLength,
		"number_of_pages": params.NumberOfPages,
		"rag_enabled":     params.RAGEnabled,
	}
	return s.object(ctx, http.MethodPost, "/v1/convai/llm-usage/calculate", body, nil)
}
