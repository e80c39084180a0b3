package ports

import "context"

// LLMClient is the boundary to the generative-language backend.
// Complete returns the raw text of a single chat completion; callers own
// parsing and schema validation of the content.
type LLMClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error)
}
