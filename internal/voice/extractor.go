package voice

import (
	"context"
	"fmt"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
)

// APIExtractor resolves transcripts through the backend's
// intent-extraction endpoint.
type APIExtractor struct {
	client *api.Client
}

// NewAPIExtractor creates an extractor using the given API client.
func NewAPIExtractor(client *api.Client) *APIExtractor {
	return &APIExtractor{client: client}
}

// Extract submits the transcript, step id, and target field and returns
// the extracted field-value mapping.
func (e *APIExtractor) Extract(ctx context.Context, req ExtractRequest) (map[string]string, error) {
	if e.client == nil {
		return nil, fmt.Errorf("api client not configured")
	}
	var out map[string]string
	if err := e.client.Post(ctx, "/ai/onboarding/extract", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DefaultSteps is the standard onboarding sequence. Each answer fills one
// business-profile field; the last step is marked final.
func DefaultSteps() []StepConfig {
	return []StepConfig{
		{ID: "business-name", Prompt: "What's the name of your business?", Field: "businessName"},
		{ID: "business-type", Prompt: "What kind of services do you offer?", Field: "businessType"},
		{ID: "business-hours", Prompt: "What are your usual working hours?", Field: "workingHours"},
		{ID: "team-size", Prompt: "How many people work with you?", Field: "teamSize", Final: true},
	}
}
