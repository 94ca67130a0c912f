package ai

import (
	"context"
)

// Provider defines the interface for a chat-completion backend (OpenAI, Azure OpenAI).
type Provider interface {
	// Complete sends prompt as a single user message and returns the reply text.
	Complete(ctx context.Context, prompt string) (string, error)
}
