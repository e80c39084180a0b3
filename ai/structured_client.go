package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"mindwell/ports"
)

// StructuredClient provides typed JSON responses from LLM calls
type StructuredClient[T any] struct {
	Client        ports.LLMClient
	SystemContext string
}

// NewStructuredClient creates a structured client over a raw LLM client
func NewStructuredClient[T any](client ports.LLMClient, systemContext string) *StructuredClient[T] {
	return &StructuredClient[T]{
		Client:        client,
		SystemContext: systemContext,
	}
}

// GetJSONResponse makes a typed LLM call and parses the JSON response
func (c *StructuredClient[T]) GetJSONResponse(ctx context.Context, prompt string, temperature float64) (*T, error) {
	content, err := c.Client.Complete(ctx, c.SystemContext, prompt, temperature)
	if err != nil {
		return nil, err
	}

	content = cleanJSONContent(content)

	var result T
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON content into result type: %w", err)
	}
	return &result, nil
}

// cleanJSONContent removes markdown code blocks and chatter around JSON
func cleanJSONContent(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") && strings.HasSuffix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	} else if strings.HasPrefix(content, "```") && strings.HasSuffix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	// Trim a leading line of chatter before the JSON document
	if strings.Contains(content, "\n{") {
		parts := strings.SplitN(content, "\n{", 2)
		if len(parts) == 2 && !strings.Contains(parts[0], "{") && !strings.Contains(parts[0], "[") {
			content = "{" + parts[1]
		}
	} else if strings.Contains(content, "\n[") {
		parts := strings.SplitN(content, "\n[", 2)
		if len(parts) == 2 && !strings.Contains(parts[0], "{") && !strings.Contains(parts[0], "[") {
			content = "[" + parts[1]
		}
	}

	return strings.TrimSpace(content)
}
