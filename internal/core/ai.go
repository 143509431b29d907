package core

import "context"

// CompletionRequest is a single chat-completion style call.
type CompletionRequest struct {
	Prompt      string
	System      string
	MaxTokens   int
	Temperature float64
}

// Provider is an external text-generation service. A failed call
// returns an error, never a partial answer.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
