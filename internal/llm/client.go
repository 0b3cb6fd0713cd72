package llm

import (
	"context"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

// CompletionClient sends one completion request to a provider.
// This allows mocking in tests without making real API calls
type CompletionClient interface {
	Complete(ctx context.Context, request CompletionRequest) (*CompletionResponse, error)
}
